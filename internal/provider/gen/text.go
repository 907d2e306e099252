package gen

import (
	"fmt"
	"strings"
)

// Seeded replacement for a faker-style text source. Output is a pure
// function of (seed, salt): unlike faker libraries, the word stream is
// guaranteed stable across releases, which the regeneration contract needs.

var loremWords = []string{
	"market", "growth", "policy", "report", "investor", "quarter", "global",
	"rate", "capital", "index", "trade", "outlook", "earnings", "forecast",
	"sector", "demand", "supply", "risk", "value", "asset", "equity", "bond",
	"yield", "margin", "revenue", "profit", "loss", "volume", "price",
	"analyst", "economy", "inflation", "currency", "fund", "stock", "share",
	"gain", "decline", "surge", "rally", "pressure", "momentum", "signal",
	"trend", "volatility", "liquidity", "exposure", "position",
}

// textRand is a tiny xorshift stream; never used for anything but seeded
// word selection.
type textRand struct {
	state uint32
}

func newTextRand(seed, salt uint32) *textRand {
	s := seed ^ (salt * 0x9e3779b9)
	if s == 0 {
		s = 0x811c9dc5
	}
	return &textRand{state: s}
}

func (r *textRand) next() uint32 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 17
	r.state ^= r.state << 5
	return r.state
}

func (r *textRand) sentence() string {
	n := int(r.next()%9) + 6
	words := make([]string, n)
	for i := range words {
		words[i] = loremWords[r.next()%uint32(len(loremWords))]
	}
	s := strings.Join(words, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

// Sentences produces n seeded sentences joined by a space.
func Sentences(seed, salt uint32, n int) string {
	r := newTextRand(seed, salt)
	parts := make([]string, n)
	for i := range parts {
		parts[i] = r.sentence()
	}
	return strings.Join(parts, " ")
}

// Paragraphs produces n seeded paragraphs of three sentences each,
// separated by blank lines.
func Paragraphs(seed, salt uint32, n int) string {
	r := newTextRand(seed, salt)
	paras := make([]string, n)
	for i := range paras {
		paras[i] = r.sentence() + " " + r.sentence() + " " + r.sentence()
	}
	return strings.Join(paras, "\n\n")
}

// ArticleURL derives a stable synthetic article URL from the seed.
func ArticleURL(seed uint32) string {
	return fmt.Sprintf("https://news.example.com/articles/%08x", seed)
}

// ImageURL derives a stable synthetic image URL from the seed.
func ImageURL(seed uint32) string {
	return fmt.Sprintf("https://images.example.com/news/%08x.jpg", seed)
}
