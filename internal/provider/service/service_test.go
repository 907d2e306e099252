package service

import (
	"context"
	"sync"
	"testing"

	"golang-mockdata-provider/internal/entity"
	"golang-mockdata-provider/pkg/logger"

	"github.com/stretchr/testify/require"
)

// memStore is an in-memory TabularStore recording save counts, so tests can
// assert write avoidance on fully covered ranges.
type memStore struct {
	mu           sync.Mutex
	articles     []entity.Article
	filings      []entity.FilingRecord
	articleSaves int
	filingSaves  int
}

func (s *memStore) LoadArticles(_ context.Context) ([]entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.Article, len(s.articles))
	copy(out, s.articles)
	return out, nil
}

func (s *memStore) SaveArticles(_ context.Context, articles []entity.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.articles = make([]entity.Article, len(articles))
	copy(s.articles, articles)
	s.articleSaves++
	return nil
}

func (s *memStore) LoadFilings(_ context.Context) ([]entity.FilingRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]entity.FilingRecord, len(s.filings))
	copy(out, s.filings)
	return out, nil
}

func (s *memStore) SaveFilings(_ context.Context, records []entity.FilingRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filings = make([]entity.FilingRecord, len(records))
	copy(s.filings, records)
	s.filingSaves++
	return nil
}

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("error", "console")
	require.NoError(t, err)
	return log
}
