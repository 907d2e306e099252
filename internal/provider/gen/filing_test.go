package gen

import (
	"testing"
	"time"

	"golang-mockdata-provider/internal/entity"
	"golang-mockdata-provider/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFund() refdata.Fund {
	return refdata.Static().Funds()[0]
}

func quarterDef(label string, y int, m time.Month, d int) entity.QuarterDef {
	filing := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return entity.QuarterDef{
		Quarter:    label,
		ReportDate: filing.AddDate(0, 0, -45),
		FilingDate: filing,
	}
}

func TestFilingSynthesize_Deterministic(t *testing.T) {
	synth := NewFilingSynthesizer(refdata.Static())
	q := quarterDef("2023Q1", 2023, time.May, 15)

	first := synth.Synthesize(testFund(), q, nil)
	second := synth.Synthesize(testFund(), q, nil)

	assert.Equal(t, first, second)
}

func TestFilingSynthesize_WeightsSumTo100(t *testing.T) {
	synth := NewFilingSynthesizer(refdata.Static())
	q := quarterDef("2023Q2", 2023, time.August, 15)

	for _, fund := range refdata.Static().Funds() {
		record := synth.Synthesize(fund, q, nil)

		var sum float64
		for _, h := range record.TopHoldings {
			sum += h.Weight
		}
		assert.InDelta(t, 100.0, sum, 0.01, "fund %s", fund.Name)
	}
}

func TestFilingSynthesize_HoldingsShape(t *testing.T) {
	synth := NewFilingSynthesizer(refdata.Static())
	q := quarterDef("2024Q1", 2024, time.May, 15)
	record := synth.Synthesize(testFund(), q, nil)

	require.GreaterOrEqual(t, len(record.TopHoldings), 10)
	require.LessOrEqual(t, len(record.TopHoldings), 25)

	seen := make(map[string]bool)
	for i, h := range record.TopHoldings {
		assert.False(t, seen[h.Ticker], "duplicate ticker %s", h.Ticker)
		seen[h.Ticker] = true
		assert.Positive(t, h.SharesHeld)
		assert.Positive(t, h.MarketValue)
		if i > 0 {
			assert.LessOrEqual(t, h.Weight, record.TopHoldings[i-1].Weight, "top holdings must be sorted by weight descending")
		}
	}
}

func TestFilingSynthesize_ReturnsWithinBands(t *testing.T) {
	synth := NewFilingSynthesizer(refdata.Static())
	q := quarterDef("2023Q3", 2023, time.November, 15)

	for _, fund := range refdata.Static().Funds() {
		record := synth.Synthesize(fund, q, nil)
		assert.GreaterOrEqual(t, record.Return1M, -4.0)
		assert.Less(t, record.Return1M, 4.0)
		assert.GreaterOrEqual(t, record.Return3M, -7.5)
		assert.Less(t, record.Return3M, 7.5)
		assert.GreaterOrEqual(t, record.Return6M, -11.0)
		assert.Less(t, record.Return6M, 11.0)
		assert.GreaterOrEqual(t, record.Return1Y, -15.0)
		assert.Less(t, record.Return1Y, 15.0)
	}
}

func TestFilingSynthesize_NoPreviousRecord(t *testing.T) {
	synth := NewFilingSynthesizer(refdata.Static())
	q := quarterDef("2023Q1", 2023, time.May, 15)
	record := synth.Synthesize(testFund(), q, nil)

	assert.Len(t, record.NewPositions, len(record.TopHoldings))
	assert.Empty(t, record.DecreasedPositions)
	assert.Empty(t, record.SoldOutPositions)
	for _, h := range record.TopHoldings {
		assert.Nil(t, h.ChangePercent)
	}
}

func TestFilingSynthesize_ClassificationCompleteness(t *testing.T) {
	synth := NewFilingSynthesizer(refdata.Static())
	fund := testFund()

	prev := synth.Synthesize(fund, quarterDef("2023Q1", 2023, time.May, 15), nil)
	current := synth.Synthesize(fund, quarterDef("2023Q2", 2023, time.August, 15), &prev)

	currentTickers := make(map[string]bool)
	for _, h := range current.TopHoldings {
		currentTickers[h.Ticker] = true
	}
	prevTickers := make(map[string]bool)
	for _, h := range prev.TopHoldings {
		prevTickers[h.Ticker] = true
	}

	soldOut := make(map[string]*float64)
	for _, h := range current.SoldOutPositions {
		soldOut[h.Ticker] = h.ChangePercent
	}
	newPos := make(map[string]bool)
	for _, h := range current.NewPositions {
		newPos[h.Ticker] = true
	}

	// Every previous ticker absent now is sold out with -100.
	for ticker := range prevTickers {
		if currentTickers[ticker] {
			continue
		}
		change, ok := soldOut[ticker]
		require.True(t, ok, "ticker %s missing from sold_out_positions", ticker)
		require.NotNil(t, change)
		assert.Equal(t, -100.0, *change)
	}

	// Every current ticker absent previously is new.
	for ticker := range currentTickers {
		if prevTickers[ticker] {
			continue
		}
		assert.True(t, newPos[ticker], "ticker %s missing from new_positions", ticker)
	}

	// Carried-over positions have their relative change filled in.
	for _, h := range current.TopHoldings {
		if prevTickers[h.Ticker] {
			assert.NotNil(t, h.ChangePercent, "ticker %s should have change_percent", h.Ticker)
		}
	}
}

func TestFilingSynthesize_DecreasedThreshold(t *testing.T) {
	synth := NewFilingSynthesizer(refdata.Static())
	fund := testFund()

	prev := synth.Synthesize(fund, quarterDef("2023Q3", 2023, time.November, 15), nil)
	current := synth.Synthesize(fund, quarterDef("2023Q4", 2024, time.February, 15), &prev)

	for _, h := range current.DecreasedPositions {
		require.NotNil(t, h.ChangePercent)
		assert.Less(t, *h.ChangePercent, -5.0+0.01, "decreased positions shrink by more than 5%% relatively")
	}
}
