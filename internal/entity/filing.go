package entity

import "time"

// Holding is one position inside a quarterly filing. Weights are percentages
// of the fund's AUM and sum to 100 across the filing's top holdings.
type Holding struct {
	Ticker        string   `json:"ticker"`
	CompanyName   string   `json:"company_name"`
	SharesHeld    float64  `json:"shares_held"`
	MarketValue   float64  `json:"market_value"`
	Weight        float64  `json:"weight"`
	ChangePercent *float64 `json:"change_percent"`
}

// FilingRecord represents one fund's quarterly holdings report.
// The natural key is (fund_name, quarter).
type FilingRecord struct {
	FundName           string    `json:"fund_name"`
	FundManager        string    `json:"fund_manager"`
	CIK                string    `json:"cik"`
	Quarter            string    `json:"quarter"`
	FilingDate         time.Time `json:"filing_date"`
	ReportDate         time.Time `json:"report_date"`
	Return1M           float64   `json:"return_1m"`
	Return3M           float64   `json:"return_3m"`
	Return6M           float64   `json:"return_6m"`
	Return1Y           float64   `json:"return_1y"`
	TopHoldings        []Holding `json:"top_holdings"`
	NewPositions       []Holding `json:"new_positions"`
	DecreasedPositions []Holding `json:"decreased_positions"`
	SoldOutPositions   []Holding `json:"sold_out_positions"`
	Source             string    `json:"source"`
}

// Key returns the natural key used for gap detection and de-duplication.
func (r *FilingRecord) Key() string {
	return r.FundName + "|" + r.Quarter
}

// QuarterDef describes one fiscal quarter: the period it reports on and the
// date the filing for it is published.
type QuarterDef struct {
	Quarter    string    `json:"quarter"`
	ReportDate time.Time `json:"report_date"`
	FilingDate time.Time `json:"filing_date"`
}
