package entity

import (
	"time"

	"golang-mockdata-provider/pkg/utils"
)

// Sentiment labels assigned to generated articles.
const (
	SentimentPositive = "positive"
	SentimentNeutral  = "neutral"
	SentimentNegative = "negative"
)

// Article represents one synthetic news article. Once persisted, an article
// for a given published_at instant is never regenerated or mutated.
type Article struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	ImageURL    *string   `json:"image_url"`
	Source      string    `json:"source"`
	Publisher   string    `json:"publisher"`
	Authors     []string  `json:"authors"`
	Tickers     []string  `json:"tickers"`
	Category    string    `json:"category"`
	Sentiment   string    `json:"sentiment"`
	PublishedAt time.Time `json:"published_at"`
}

// Key returns the natural key of the article within the stored timeline.
func (a *Article) Key() string {
	return utils.FormatISO(a.PublishedAt)
}
