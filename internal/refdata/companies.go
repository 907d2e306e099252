package refdata

var companies = []Company{
	{Ticker: "AAPL", Name: "Apple Inc.", BasePrice: 182.50},
	{Ticker: "MSFT", Name: "Microsoft Corporation", BasePrice: 415.30},
	{Ticker: "GOOGL", Name: "Alphabet Inc.", BasePrice: 152.20},
	{Ticker: "AMZN", Name: "Amazon.com Inc.", BasePrice: 178.90},
	{Ticker: "NVDA", Name: "NVIDIA Corporation", BasePrice: 875.40},
	{Ticker: "META", Name: "Meta Platforms Inc.", BasePrice: 485.60},
	{Ticker: "TSLA", Name: "Tesla Inc.", BasePrice: 175.80},
	{Ticker: "BRK.B", Name: "Berkshire Hathaway Inc.", BasePrice: 408.70},
	{Ticker: "JPM", Name: "JPMorgan Chase & Co.", BasePrice: 195.40},
	{Ticker: "V", Name: "Visa Inc.", BasePrice: 276.30},
	{Ticker: "JNJ", Name: "Johnson & Johnson", BasePrice: 158.20},
	{Ticker: "WMT", Name: "Walmart Inc.", BasePrice: 60.80},
	{Ticker: "XOM", Name: "Exxon Mobil Corporation", BasePrice: 113.50},
	{Ticker: "UNH", Name: "UnitedHealth Group Inc.", BasePrice: 492.10},
	{Ticker: "MA", Name: "Mastercard Incorporated", BasePrice: 465.90},
	{Ticker: "PG", Name: "Procter & Gamble Co.", BasePrice: 161.40},
	{Ticker: "HD", Name: "Home Depot Inc.", BasePrice: 345.20},
	{Ticker: "CVX", Name: "Chevron Corporation", BasePrice: 155.70},
	{Ticker: "MRK", Name: "Merck & Co. Inc.", BasePrice: 126.80},
	{Ticker: "ABBV", Name: "AbbVie Inc.", BasePrice: 168.30},
	{Ticker: "KO", Name: "Coca-Cola Company", BasePrice: 60.20},
	{Ticker: "PEP", Name: "PepsiCo Inc.", BasePrice: 168.90},
	{Ticker: "COST", Name: "Costco Wholesale Corporation", BasePrice: 730.60},
	{Ticker: "AVGO", Name: "Broadcom Inc.", BasePrice: 1305.40},
	{Ticker: "ADBE", Name: "Adobe Inc.", BasePrice: 505.80},
	{Ticker: "CSCO", Name: "Cisco Systems Inc.", BasePrice: 49.30},
	{Ticker: "CRM", Name: "Salesforce Inc.", BasePrice: 298.60},
	{Ticker: "NFLX", Name: "Netflix Inc.", BasePrice: 605.50},
	{Ticker: "ORCL", Name: "Oracle Corporation", BasePrice: 125.10},
	{Ticker: "INTC", Name: "Intel Corporation", BasePrice: 42.70},
	{Ticker: "AMD", Name: "Advanced Micro Devices Inc.", BasePrice: 178.40},
	{Ticker: "QCOM", Name: "QUALCOMM Incorporated", BasePrice: 168.20},
	{Ticker: "TXN", Name: "Texas Instruments Incorporated", BasePrice: 171.80},
	{Ticker: "IBM", Name: "International Business Machines", BasePrice: 188.50},
	{Ticker: "GS", Name: "Goldman Sachs Group Inc.", BasePrice: 401.30},
	{Ticker: "MS", Name: "Morgan Stanley", BasePrice: 93.60},
	{Ticker: "BAC", Name: "Bank of America Corporation", BasePrice: 36.90},
	{Ticker: "DIS", Name: "Walt Disney Company", BasePrice: 111.20},
	{Ticker: "NKE", Name: "NIKE Inc.", BasePrice: 93.80},
	{Ticker: "MCD", Name: "McDonald's Corporation", BasePrice: 292.40},
	{Ticker: "PFE", Name: "Pfizer Inc.", BasePrice: 27.50},
	{Ticker: "T", Name: "AT&T Inc.", BasePrice: 17.20},
	{Ticker: "VZ", Name: "Verizon Communications Inc.", BasePrice: 40.60},
	{Ticker: "BA", Name: "Boeing Company", BasePrice: 184.30},
	{Ticker: "CAT", Name: "Caterpillar Inc.", BasePrice: 358.90},
	{Ticker: "GE", Name: "General Electric Company", BasePrice: 161.70},
	{Ticker: "UBER", Name: "Uber Technologies Inc.", BasePrice: 77.40},
	{Ticker: "SHOP", Name: "Shopify Inc.", BasePrice: 76.90},
	{Ticker: "SQ", Name: "Block Inc.", BasePrice: 74.50},
	{Ticker: "PLTR", Name: "Palantir Technologies Inc.", BasePrice: 24.10},
}
