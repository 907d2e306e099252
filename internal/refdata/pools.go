package refdata

var authors = []string{
	"Sarah Mitchell",
	"James Chen",
	"Elena Rodriguez",
	"Michael O'Brien",
	"Priya Sharma",
	"David Kim",
	"Anna Kowalski",
	"Robert Taylor",
	"Yuki Tanaka",
	"Laura Bennett",
	"Carlos Mendez",
	"Sophie Laurent",
	"Thomas Wright",
	"Nadia Hassan",
	"Peter Novak",
	"Grace Liu",
}

var tickers = []string{
	"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "META", "TSLA", "JPM",
	"V", "JNJ", "WMT", "XOM", "UNH", "MA", "PG", "HD",
	"CVX", "MRK", "KO", "PEP", "COST", "AVGO", "ADBE", "CSCO",
	"CRM", "NFLX", "ORCL", "INTC", "AMD", "QCOM", "GS", "BAC",
}

var categories = []string{
	"markets",
	"economy",
	"technology",
	"politics",
	"business",
	"energy",
	"finance",
	"world",
}

var publishers = []string{
	"Reuters",
	"Bloomberg",
	"CNN",
	"BBC",
	"NYTimes",
}
