package gen

import (
	"strings"
	"time"

	"golang-mockdata-provider/internal/entity"
	"golang-mockdata-provider/internal/refdata"
	"golang-mockdata-provider/pkg/utils"
)

// Disjoint salts so every selection varies independently under one seed.
const (
	saltTopic     = 11
	saltSubtopic  = 111
	saltEntity    = 222
	saltPublisher = 333
	saltAuthor    = 444
	saltTicker    = 555
	saltCategory  = 666
	saltSentiment = 777
	saltSummary   = 888
	saltContent   = 999
)

var sentiments = []string{
	entity.SentimentPositive,
	entity.SentimentNeutral,
	entity.SentimentNegative,
}

// ArticleSource tags every generated article.
const ArticleSource = "mock-news-api"

// ArticleSynthesizer deterministically generates news articles from
// timestamps. Same instant in, same article out, always.
type ArticleSynthesizer struct {
	ref refdata.Provider
}

// NewArticleSynthesizer creates an ArticleSynthesizer over the given catalogs.
func NewArticleSynthesizer(ref refdata.Provider) *ArticleSynthesizer {
	return &ArticleSynthesizer{ref: ref}
}

// Synthesize generates the article for one instant. An empty catalog leaves
// the corresponding field blank rather than failing.
func (s *ArticleSynthesizer) Synthesize(instant time.Time) entity.Article {
	publishedAt := instant.UTC()
	seed := Derive(utils.FormatISO(publishedAt))

	var title string
	if topic, ok := Pick(s.ref.Topics(), seed, saltTopic); ok {
		sub, subOK := Pick(topic.Subtopics, seed, saltSubtopic)
		ent, entOK := Pick(topic.Entities, seed, saltEntity)
		if subOK && entOK {
			title = strings.ReplaceAll(sub.Template, "{ENTITY}", ent)
		}
	}

	publisher, _ := Pick(s.ref.Publishers(), seed, saltPublisher)

	var articleAuthors []string
	noAuthor := (seed>>11)%4 == 0
	if !noAuthor {
		if author, ok := Pick(s.ref.Authors(), seed, saltAuthor); ok {
			articleAuthors = []string{author}
		}
	}

	tickerCount := int((seed>>15)%3) + 1
	var articleTickers []string
	for i := 0; i < tickerCount; i++ {
		if ticker, ok := Pick(s.ref.Tickers(), seed, uint32(saltTicker+i)); ok {
			articleTickers = append(articleTickers, ticker)
		}
	}

	category, _ := Pick(s.ref.Categories(), seed, saltCategory)
	sentiment, _ := Pick(sentiments, seed, saltSentiment)
	if sentiment == "" {
		sentiment = entity.SentimentNeutral
	}

	var imageURL *string
	if (seed>>21)%3 != 0 {
		u := ImageURL(seed)
		imageURL = &u
	}

	paragraphs := int((seed>>7)%3) + 1

	return entity.Article{
		Title:       title,
		Summary:     Sentences(seed, saltSummary, 2),
		Content:     Paragraphs(seed, saltContent, paragraphs),
		URL:         ArticleURL(seed),
		ImageURL:    imageURL,
		Source:      ArticleSource,
		Publisher:   publisher,
		Authors:     articleAuthors,
		Tickers:     articleTickers,
		Category:    category,
		Sentiment:   sentiment,
		PublishedAt: publishedAt,
	}
}

// NextInterval returns the seeded cadence step after the article at cursor,
// in [1, maxIntervalMinutes] minutes. Coverage tracking and gap filling must
// use the same derivation or re-runs stop being idempotent.
func NextInterval(cursor time.Time, maxIntervalMinutes int) time.Duration {
	seed := Derive(utils.FormatISO(cursor))
	minutes := int(seed%uint32(maxIntervalMinutes)) + 1
	return time.Duration(minutes) * time.Minute
}

// FillRange generates the article sequence covering [from, to). The cursor
// starts at from truncated to the minute, emits one article per stop, and
// advances by the seeded interval, so the same range always yields the same
// timestamps and articles.
func (s *ArticleSynthesizer) FillRange(from, to time.Time, maxIntervalMinutes int) []entity.Article {
	var articles []entity.Article

	cursor := utils.TruncateToMinute(from)
	endExclusive := utils.TruncateToMinute(to)

	for cursor.Before(endExclusive) {
		articles = append(articles, s.Synthesize(cursor))
		cursor = cursor.Add(NextInterval(cursor, maxIntervalMinutes))
	}

	return articles
}
