package refdata

var funds = []Fund{
	{Name: "Berkshire Hathaway Holdings LP", Manager: "Warren Buffett", CIK: "0001067983"},
	{Name: "Bridgewater Associates LP", Manager: "Ray Dalio", CIK: "0001350694"},
	{Name: "Renaissance Technologies LLC", Manager: "James Simons", CIK: "0001037389"},
	{Name: "Citadel Advisors LLC", Manager: "Kenneth C. Griffin", CIK: "0001423053"},
	{Name: "Viking Global Investors LP", Manager: "Andreas Halvorsen", CIK: "0001372787"},
	{Name: "Two Sigma Investments LP", Manager: "John Overdeck / David Siegel", CIK: "0001261576"},
	{Name: "Point72 Asset Management LP", Manager: "Steven A. Cohen", CIK: "0001624996"},
	{Name: "BlackRock Capital Growth Fund", Manager: "Larry Fink", CIK: "0001364742"},
	{Name: "Fidelity Contrafund", Manager: "William Danoff", CIK: "0000027086"},
	{Name: "T. Rowe Price Equity Income Fund", Manager: "John D. Linehan", CIK: "0000088053"},
	{Name: "JPMorgan Large Cap Growth Fund", Manager: "Joseph Wilson", CIK: "0000920305"},
	{Name: "Invesco QQQ Trust Portfolio", Manager: "Ryan McCormack", CIK: "0001067839"},
	{Name: "Ark Innovation ETF", Manager: "Cathie Wood", CIK: "0001587982"},
	{Name: "Tiger Global Management LLC", Manager: "Chase Coleman", CIK: "0001167483"},
	{Name: "Lone Pine Capital LLC", Manager: "Stephen Mandel", CIK: "0001082324"},
}
