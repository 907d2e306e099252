package gen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestQuartersBetween_FullYear(t *testing.T) {
	defs := QuartersBetween(date(2023, time.January, 1), date(2023, time.December, 31))

	require.Len(t, defs, 4)

	labels := make([]string, len(defs))
	for i, d := range defs {
		labels[i] = d.Quarter
	}
	// 2022Q4 is filed 2023-02-15 and must not be missed; 2023Q4 is filed
	// 2024-02-15 and must not appear.
	assert.Equal(t, []string{"2022Q4", "2023Q1", "2023Q2", "2023Q3"}, labels)

	assert.Equal(t, date(2023, time.February, 15), defs[0].FilingDate)
	assert.Equal(t, date(2022, time.December, 31), defs[0].ReportDate)
}

func TestQuartersBetween_SortedAscending(t *testing.T) {
	defs := QuartersBetween(date(2021, time.June, 1), date(2024, time.March, 1))
	require.NotEmpty(t, defs)
	for i := 1; i < len(defs); i++ {
		assert.True(t, defs[i-1].FilingDate.Before(defs[i].FilingDate))
	}
}

func TestQuartersBetween_InclusiveBounds(t *testing.T) {
	// Range boundaries exactly on filing dates are included on both ends.
	defs := QuartersBetween(date(2023, time.May, 15), date(2023, time.August, 15))
	require.Len(t, defs, 2)
	assert.Equal(t, "2023Q1", defs[0].Quarter)
	assert.Equal(t, "2023Q2", defs[1].Quarter)
}

func TestQuartersBetween_EmptyWindow(t *testing.T) {
	// No filing date falls between mid-February and mid-May.
	defs := QuartersBetween(date(2023, time.February, 20), date(2023, time.May, 10))
	assert.Empty(t, defs)
}

func TestQuartersBetween_FilingTrailsReport(t *testing.T) {
	defs := QuartersBetween(date(2023, time.January, 1), date(2024, time.December, 31))
	require.NotEmpty(t, defs)
	for _, d := range defs {
		trail := d.FilingDate.Sub(d.ReportDate)
		assert.GreaterOrEqual(t, trail, 45*24*time.Hour, "quarter %s", d.Quarter)
		assert.LessOrEqual(t, trail, 46*24*time.Hour, "quarter %s", d.Quarter)
	}
}
