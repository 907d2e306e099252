package gen

import (
	"testing"
	"time"

	"golang-mockdata-provider/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyRef is a catalog provider with nothing in it.
type emptyRef struct{}

func (emptyRef) Funds() []refdata.Fund        { return nil }
func (emptyRef) Companies() []refdata.Company { return nil }
func (emptyRef) Topics() []refdata.Topic      { return nil }
func (emptyRef) Authors() []string            { return nil }
func (emptyRef) Tickers() []string            { return nil }
func (emptyRef) Categories() []string         { return nil }
func (emptyRef) Publishers() []string         { return nil }

func TestArticleSynthesize_Deterministic(t *testing.T) {
	synth := NewArticleSynthesizer(refdata.Static())
	instant := time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

	first := synth.Synthesize(instant)
	second := synth.Synthesize(instant)

	assert.Equal(t, first, second)
}

func TestArticleSynthesize_Fields(t *testing.T) {
	synth := NewArticleSynthesizer(refdata.Static())
	a := synth.Synthesize(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC))

	assert.NotEmpty(t, a.Title)
	assert.NotContains(t, a.Title, "{ENTITY}")
	assert.NotEmpty(t, a.Summary)
	assert.NotEmpty(t, a.Content)
	assert.NotEmpty(t, a.URL)
	assert.Equal(t, ArticleSource, a.Source)
	assert.Contains(t, []string{"Reuters", "Bloomberg", "CNN", "BBC", "NYTimes"}, a.Publisher)
	assert.LessOrEqual(t, len(a.Authors), 1)
	assert.GreaterOrEqual(t, len(a.Tickers), 1)
	assert.LessOrEqual(t, len(a.Tickers), 3)
	assert.Contains(t, []string{"positive", "neutral", "negative"}, a.Sentiment)
}

func TestArticleSynthesize_EmptyReferenceData(t *testing.T) {
	synth := NewArticleSynthesizer(emptyRef{})
	instant := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	a := synth.Synthesize(instant)

	// Empty catalogs blank out fields instead of failing.
	assert.Empty(t, a.Title)
	assert.Empty(t, a.Publisher)
	assert.Empty(t, a.Authors)
	assert.Empty(t, a.Tickers)
	assert.Contains(t, []string{"positive", "neutral", "negative"}, a.Sentiment)
	assert.Equal(t, instant, a.PublishedAt)
}

func TestFillRange_MonotonicCadence(t *testing.T) {
	synth := NewArticleSynthesizer(refdata.Static())
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(24 * time.Hour)

	articles := synth.FillRange(from, to, 60)
	require.NotEmpty(t, articles)

	assert.Equal(t, from, articles[0].PublishedAt)
	for i := 1; i < len(articles); i++ {
		gap := articles[i].PublishedAt.Sub(articles[i-1].PublishedAt)
		assert.Greater(t, gap, time.Duration(0), "timestamps must be strictly increasing")
		assert.LessOrEqual(t, gap, 60*time.Minute, "cadence must stay within the configured bound")
	}
	last := articles[len(articles)-1].PublishedAt
	assert.True(t, last.Before(to), "all instants must stay inside the half-open range")
}

func TestFillRange_Reproducible(t *testing.T) {
	synth := NewArticleSynthesizer(refdata.Static())
	from := time.Date(2024, time.June, 1, 12, 0, 30, 0, time.UTC) // mid-minute start
	to := from.Add(6 * time.Hour)

	first := synth.FillRange(from, to, 60)
	second := synth.FillRange(from, to, 60)

	assert.Equal(t, first, second)
}

func TestFillRange_EmptyRange(t *testing.T) {
	synth := NewArticleSynthesizer(refdata.Static())
	from := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.Empty(t, synth.FillRange(from, from, 60))
}

func TestNextInterval_Bounds(t *testing.T) {
	cursor := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 500; i++ {
		interval := NextInterval(cursor, 60)
		assert.GreaterOrEqual(t, interval, time.Minute)
		assert.LessOrEqual(t, interval, 60*time.Minute)
		cursor = cursor.Add(interval)
	}
}

func TestSeededText_Stable(t *testing.T) {
	assert.Equal(t, Sentences(123, 888, 2), Sentences(123, 888, 2))
	assert.Equal(t, Paragraphs(123, 999, 3), Paragraphs(123, 999, 3))
	assert.NotEqual(t, Sentences(123, 888, 2), Sentences(124, 888, 2))
}
