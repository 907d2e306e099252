package gen

import (
	"math"
	"sort"

	"golang-mockdata-provider/internal/entity"
	"golang-mockdata-provider/internal/refdata"
)

// FilingSource tags every generated filing record.
const FilingSource = "mock-hedgefund-api"

// decreasedThreshold is the relative weight change (percent) below which a
// carried-over position is classified as decreased.
const decreasedThreshold = -5

// FilingSynthesizer deterministically generates quarterly filing records.
// The seed is derived from "fundName|quarter", so a fund-quarter pair always
// reproduces the same record.
type FilingSynthesizer struct {
	ref refdata.Provider
}

// NewFilingSynthesizer creates a FilingSynthesizer over the given catalogs.
func NewFilingSynthesizer(ref refdata.Provider) *FilingSynthesizer {
	return &FilingSynthesizer{ref: ref}
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
func round3(v float64) float64 { return math.Round(v*1000) / 1000 }

// Synthesize generates the filing for one fund and quarter. prev is the
// fund's most recent earlier filing, or nil for the first known quarter;
// position classification diffs against it.
func (s *FilingSynthesizer) Synthesize(fund refdata.Fund, q entity.QuarterDef, prev *entity.FilingRecord) entity.FilingRecord {
	seed := Derive(fund.Name + "|" + q.Quarter)

	// AUM in a fixed 5-50 billion band.
	fundAUM := (float64(seed%46) + 5) * 1_000_000_000

	holdingsCount := int(seed%16) + 10

	companies := s.ref.Companies()
	used := make(map[string]bool, holdingsCount)

	type rawHolding struct {
		company refdata.Company
		units   uint32
	}
	var raw []rawHolding

	// Walk the universe in a seeded stride, collecting distinct tickers.
	for i := 0; i < len(companies) && len(raw) < holdingsCount; i++ {
		idx := (uint64(seed) + uint64(i)*13) % uint64(len(companies))
		company := companies[idx]
		if used[company.Ticker] {
			continue
		}
		used[company.Ticker] = true

		units := ((seed >> (i % 16)) & 0xf) + 1
		raw = append(raw, rawHolding{company: company, units: units})
	}

	var totalUnits uint32
	for _, h := range raw {
		totalUnits += h.units
	}

	holdings := make([]entity.Holding, 0, len(raw))
	for i, h := range raw {
		weight := float64(h.units) / float64(totalUnits) * 100
		marketValue := fundAUM * weight / 100

		price := h.company.BasePrice
		if price == 0 {
			price = float64(50 + (uint64(seed)+uint64(i)*17)%250)
		}

		holdings = append(holdings, entity.Holding{
			Ticker:      h.company.Ticker,
			CompanyName: h.company.Name,
			SharesHeld:  round2(marketValue / price),
			MarketValue: round2(marketValue),
			Weight:      round3(weight),
		})
	}

	// Top-holdings contract: weight descending. Stable so equal weights keep
	// the seeded selection order.
	sort.SliceStable(holdings, func(i, j int) bool {
		return holdings[i].Weight > holdings[j].Weight
	})

	newPositions, decreasedPositions, soldOutPositions := classifyPositions(holdings, prev)

	return entity.FilingRecord{
		FundName:           fund.Name,
		FundManager:        fund.Manager,
		CIK:                fund.CIK,
		Quarter:            q.Quarter,
		FilingDate:         q.FilingDate,
		ReportDate:         q.ReportDate,
		Return1M:           round2(float64(seed%800)/100 - 4),
		Return3M:           round2(float64(seed%1500)/100 - 7.5),
		Return6M:           round2(float64(seed%2200)/100 - 11),
		Return1Y:           round2(float64(seed%3000)/100 - 15),
		TopHoldings:        holdings,
		NewPositions:       newPositions,
		DecreasedPositions: decreasedPositions,
		SoldOutPositions:   soldOutPositions,
		Source:             FilingSource,
	}
}

// classifyPositions diffs the current holdings against the previous quarter,
// filling change_percent in place. With no previous record every holding is
// new and change_percent stays unset.
func classifyPositions(holdings []entity.Holding, prev *entity.FilingRecord) (newPos, decreased, soldOut []entity.Holding) {
	if prev == nil || len(prev.TopHoldings) == 0 {
		newPos = append(newPos, holdings...)
		return newPos, decreased, soldOut
	}

	prevByTicker := make(map[string]entity.Holding, len(prev.TopHoldings))
	for _, h := range prev.TopHoldings {
		prevByTicker[h.Ticker] = h
	}

	matched := make(map[string]bool, len(holdings))
	for i := range holdings {
		h := &holdings[i]
		prevHolding, ok := prevByTicker[h.Ticker]
		if !ok {
			newPos = append(newPos, *h)
			continue
		}
		matched[h.Ticker] = true

		if prevHolding.Weight > 0 {
			diff := (h.Weight - prevHolding.Weight) / prevHolding.Weight * 100
			rounded := round2(diff)
			h.ChangePercent = &rounded
			if diff < decreasedThreshold {
				decreased = append(decreased, *h)
			}
		}
	}

	// Previous-quarter tickers absent now were sold out. Iterate the previous
	// holdings slice so the output order is deterministic.
	for _, prevHolding := range prev.TopHoldings {
		if matched[prevHolding.Ticker] {
			continue
		}
		sold := prevHolding
		change := float64(-100)
		sold.ChangePercent = &change
		soldOut = append(soldOut, sold)
	}

	return newPos, decreased, soldOut
}
