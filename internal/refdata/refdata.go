// Package refdata provides the static reference catalogs that seed record
// generation. Catalog order is part of the determinism contract: the seeded
// selector indexes into these slices, so reordering an entry changes every
// record derived from it.
package refdata

// Fund identifies one hedge fund or investment vehicle.
type Fund struct {
	Name    string
	Manager string
	CIK     string
}

// Company is one entry in the holdings universe.
type Company struct {
	Ticker    string
	Name      string
	BasePrice float64
}

// Subtopic is a headline template; {ENTITY} is substituted at generation time.
type Subtopic struct {
	Template string
}

// Topic groups entities and headline templates for article generation.
type Topic struct {
	Name      string
	Entities  []string
	Subtopics []Subtopic
}

// Provider exposes read-only, order-stable reference catalogs.
type Provider interface {
	Funds() []Fund
	Companies() []Company
	Topics() []Topic
	Authors() []string
	Tickers() []string
	Categories() []string
	Publishers() []string
}

// Static returns the built-in catalogs.
func Static() Provider {
	return staticProvider{}
}

type staticProvider struct{}

func (staticProvider) Funds() []Fund { return funds }

func (staticProvider) Companies() []Company { return companies }

func (staticProvider) Topics() []Topic { return topics }

func (staticProvider) Authors() []string { return authors }

func (staticProvider) Tickers() []string { return tickers }

func (staticProvider) Categories() []string { return categories }

func (staticProvider) Publishers() []string { return publishers }
