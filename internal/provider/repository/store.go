package repository

import (
	"context"

	"golang-mockdata-provider/internal/entity"
)

// Dataset names, also used as advisory lock keys.
const (
	DatasetNews       = "news"
	DatasetHedgeFunds = "hedgefunds"
)

// TabularStore persists generated records partitioned by the year of their
// primary time field. Save methods receive the complete merged set and
// rewrite every affected partition atomically; a partition is never appended
// to in place.
type TabularStore interface {
	LoadArticles(ctx context.Context) ([]entity.Article, error)
	SaveArticles(ctx context.Context, articles []entity.Article) error
	LoadFilings(ctx context.Context) ([]entity.FilingRecord, error)
	SaveFilings(ctx context.Context, records []entity.FilingRecord) error
}
