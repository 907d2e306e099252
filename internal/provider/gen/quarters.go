package gen

import (
	"fmt"
	"sort"
	"time"

	"golang-mockdata-provider/internal/entity"
)

// quarterDates returns the fixed report and filing dates for quarter q (1-4)
// of year y. Filings trail the report date by 45 days; a Q4 filing therefore
// lands in the following calendar year.
func quarterDates(y, q int) (report, filing time.Time) {
	switch q {
	case 1:
		report = time.Date(y, time.March, 31, 0, 0, 0, 0, time.UTC)
		filing = time.Date(y, time.May, 15, 0, 0, 0, 0, time.UTC)
	case 2:
		report = time.Date(y, time.June, 30, 0, 0, 0, 0, time.UTC)
		filing = time.Date(y, time.August, 15, 0, 0, 0, 0, time.UTC)
	case 3:
		report = time.Date(y, time.September, 30, 0, 0, 0, 0, time.UTC)
		filing = time.Date(y, time.November, 15, 0, 0, 0, 0, time.UTC)
	case 4:
		report = time.Date(y, time.December, 31, 0, 0, 0, 0, time.UTC)
		filing = time.Date(y+1, time.February, 15, 0, 0, 0, 0, time.UTC)
	}
	return report, filing
}

// QuartersBetween enumerates every quarter whose filing date falls inside
// [start, end] inclusive, sorted ascending by filing date. The scan begins
// one year before start so the previous year's Q4 (filed in February of
// start's year) is not missed.
func QuartersBetween(start, end time.Time) []entity.QuarterDef {
	defs := make([]entity.QuarterDef, 0, 8)

	for y := start.Year() - 1; y <= end.Year(); y++ {
		for q := 1; q <= 4; q++ {
			report, filing := quarterDates(y, q)
			if filing.Before(start) || filing.After(end) {
				continue
			}
			defs = append(defs, entity.QuarterDef{
				Quarter:    fmt.Sprintf("%dQ%d", y, q),
				ReportDate: report,
				FilingDate: filing,
			})
		}
	}

	sort.Slice(defs, func(i, j int) bool {
		return defs[i].FilingDate.Before(defs[j].FilingDate)
	})

	return defs
}
