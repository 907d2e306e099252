package service

import (
	"context"
	"testing"
	"time"

	"golang-mockdata-provider/internal/provider/gen"
	"golang-mockdata-provider/internal/provider/repository"
	"golang-mockdata-provider/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHedgeFundService(t *testing.T, store *memStore) HedgeFundService {
	t.Helper()
	ref := refdata.Static()
	return NewHedgeFundService(store, repository.NewLocalLocker(), gen.NewFilingSynthesizer(ref), ref, testLogger(t))
}

func TestHedgeFundGetRange_InvalidRange(t *testing.T) {
	svc := newTestHedgeFundService(t, &memStore{})
	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetRange(context.Background(), start, start)
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestHedgeFundGetRange_FullYearGeneratesAllFundQuarters(t *testing.T) {
	store := &memStore{}
	svc := newTestHedgeFundService(t, store)

	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	resp, err := svc.GetRange(context.Background(), start, end)
	require.NoError(t, err)

	// Four filing dates fall inside 2023 (Feb, May, Aug, Nov), one record
	// per fund for each.
	funds := refdata.Static().Funds()
	assert.Equal(t, 4*len(funds), resp.Count)
	require.Len(t, resp.Records, resp.Count)

	perFund := make(map[string]int)
	for _, r := range resp.Records {
		assert.False(t, r.FilingDate.Before(start))
		assert.False(t, r.FilingDate.After(end))
		perFund[r.FundName]++
	}
	require.Len(t, perFund, len(funds))
	for name, n := range perFund {
		assert.Equal(t, 4, n, "fund %s", name)
	}
	assert.Equal(t, 1, store.filingSaves)
}

func TestHedgeFundGetRange_Idempotent(t *testing.T) {
	store := &memStore{}
	svc := newTestHedgeFundService(t, store)

	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	first, err := svc.GetRange(context.Background(), start, end)
	require.NoError(t, err)
	require.Equal(t, 1, store.filingSaves)

	second, err := svc.GetRange(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, first.Count, second.Count)
	assert.Equal(t, first.Records, second.Records)
	assert.Equal(t, 1, store.filingSaves, "a fully covered re-request must not write")
}

func TestHedgeFundGetRange_SortedByFilingDate(t *testing.T) {
	svc := newTestHedgeFundService(t, &memStore{})

	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	resp, err := svc.GetRange(context.Background(), start, end)
	require.NoError(t, err)

	for i := 1; i < len(resp.Records); i++ {
		assert.False(t, resp.Records[i].FilingDate.Before(resp.Records[i-1].FilingDate))
	}
}

func TestHedgeFundGetRange_ChainsAgainstPreviousQuarter(t *testing.T) {
	store := &memStore{}
	svc := newTestHedgeFundService(t, store)

	start := time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 31, 0, 0, 0, 0, time.UTC)

	resp, err := svc.GetRange(context.Background(), start, end)
	require.NoError(t, err)

	byFund := make(map[string][]int)
	for i, r := range resp.Records {
		byFund[r.FundName] = append(byFund[r.FundName], i)
	}

	for fund, idxs := range byFund {
		require.GreaterOrEqual(t, len(idxs), 2, "fund %s", fund)
		first := resp.Records[idxs[0]]
		later := resp.Records[idxs[1]]

		// The first record a fund ever files has no predecessor to diff
		// against. Later quarters chain against the prior one, so every
		// holding is either carried over with a change or brand new.
		assert.Empty(t, first.SoldOutPositions, "fund %s first quarter", fund)
		assert.Len(t, first.NewPositions, len(first.TopHoldings), "fund %s first quarter", fund)
		for _, h := range first.TopHoldings {
			assert.Nil(t, h.ChangePercent, "fund %s first quarter", fund)
		}

		carried := 0
		for _, h := range later.TopHoldings {
			if h.ChangePercent != nil {
				carried++
			}
		}
		assert.Equal(t, len(later.TopHoldings), carried+len(later.NewPositions),
			"fund %s second quarter", fund)
	}
}

func TestHedgeFundGetRange_SubsequentQuarterExtendsStore(t *testing.T) {
	store := &memStore{}
	svc := newTestHedgeFundService(t, store)

	q1Start := time.Date(2023, time.May, 1, 0, 0, 0, 0, time.UTC)
	q1End := time.Date(2023, time.May, 31, 0, 0, 0, 0, time.UTC)
	first, err := svc.GetRange(context.Background(), q1Start, q1End)
	require.NoError(t, err)
	funds := refdata.Static().Funds()
	require.Equal(t, len(funds), first.Count)

	q2Start := time.Date(2023, time.August, 1, 0, 0, 0, 0, time.UTC)
	q2End := time.Date(2023, time.August, 31, 0, 0, 0, 0, time.UTC)
	second, err := svc.GetRange(context.Background(), q2Start, q2End)
	require.NoError(t, err)
	require.Equal(t, len(funds), second.Count)

	// Q2 records chain against the stored Q1 filings.
	for _, r := range second.Records {
		carried := 0
		for _, h := range r.TopHoldings {
			if h.ChangePercent != nil {
				carried++
			}
		}
		assert.Greater(t, carried+len(r.NewPositions), 0, "fund %s", r.FundName)
	}
	assert.Equal(t, 2, store.filingSaves)
	assert.Len(t, store.filings, 2*len(funds))
}
