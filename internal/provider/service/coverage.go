package service

import (
	"time"

	"golang-mockdata-provider/internal/entity"
	"golang-mockdata-provider/internal/provider/gen"
	"golang-mockdata-provider/pkg/utils"
)

// timeRange is one gap to fill: [From, To).
type timeRange struct {
	From time.Time
	To   time.Time
}

// articleGaps computes the sub-ranges of [start, end) not yet covered by the
// stored timeline. The timeline has no interior holes by construction (the
// generation cursor always advances contiguously), so coverage is fully
// described by the first stored instant and a coverage end derived from the
// last stored instant plus its seeded cadence interval. At most two gaps
// result: a prefix before the first stored article and a suffix after the
// coverage end. The suffix always starts at the coverage end, even when the
// request starts later, to keep the timeline contiguous.
func articleGaps(stored []entity.Article, start, end time.Time, maxIntervalMinutes int) []timeRange {
	if len(stored) == 0 {
		return []timeRange{{From: start, To: end}}
	}

	first := utils.TruncateToMinute(stored[0].PublishedAt)
	last := utils.TruncateToMinute(stored[len(stored)-1].PublishedAt)
	coverageEnd := last.Add(gen.NextInterval(last, maxIntervalMinutes))

	if !end.After(first) {
		return []timeRange{{From: start, To: first}}
	}
	if start.After(coverageEnd) {
		return []timeRange{{From: coverageEnd, To: end}}
	}

	var gaps []timeRange
	if start.Before(first) {
		gaps = append(gaps, timeRange{From: start, To: first})
	}
	if end.After(coverageEnd) {
		gaps = append(gaps, timeRange{From: coverageEnd, To: end})
	}
	return gaps
}

// buildFilingIndex maps natural keys to stored filings for O(1) gap lookups.
func buildFilingIndex(stored []entity.FilingRecord) map[string]struct{} {
	index := make(map[string]struct{}, len(stored))
	for i := range stored {
		index[stored[i].Key()] = struct{}{}
	}
	return index
}

// latestFilingBefore returns the fund's record with the greatest filing date
// strictly before cutoff, searching stored and in-call generated records.
// Quarters have distinct filing dates, so ties cannot occur.
func latestFilingBefore(records []entity.FilingRecord, fundName string, cutoff time.Time) *entity.FilingRecord {
	var best *entity.FilingRecord
	for i := range records {
		r := &records[i]
		if r.FundName != fundName || !r.FilingDate.Before(cutoff) {
			continue
		}
		if best == nil || r.FilingDate.After(best.FilingDate) {
			best = r
		}
	}
	return best
}
