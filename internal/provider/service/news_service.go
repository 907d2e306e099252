package service

import (
	"context"
	"sort"
	"time"

	"golang-mockdata-provider/internal/entity"
	"golang-mockdata-provider/internal/provider/dto"
	"golang-mockdata-provider/internal/provider/gen"
	"golang-mockdata-provider/internal/provider/repository"
	"golang-mockdata-provider/pkg/logger"
	"golang-mockdata-provider/pkg/utils"

	"golang.org/x/sync/singleflight"
)

// NewsService serves article range queries, generating and persisting any
// articles the store does not yet cover.
type NewsService interface {
	GetRange(ctx context.Context, start, end time.Time) (*dto.NewsRangeResponse, error)
}

// NewNewsService creates a new news service. maxIntervalMinutes bounds the
// seeded cadence between consecutive generated articles.
func NewNewsService(store repository.TabularStore, locker repository.Locker, synth *gen.ArticleSynthesizer, log *logger.Logger, maxIntervalMinutes int) NewsService {
	if maxIntervalMinutes <= 0 {
		maxIntervalMinutes = 60
	}
	return &newsService{
		store:       store,
		locker:      locker,
		synth:       synth,
		logger:      log,
		maxInterval: maxIntervalMinutes,
	}
}

type newsService struct {
	store       repository.TabularStore
	locker      repository.Locker
	synth       *gen.ArticleSynthesizer
	logger      *logger.Logger
	maxInterval int
	group       singleflight.Group
}

// GetRange returns every article with start <= published_at < end, filling
// and persisting gaps first. Identical concurrent requests are collapsed
// into one execution.
func (s *newsService) GetRange(ctx context.Context, start, end time.Time) (*dto.NewsRangeResponse, error) {
	start = utils.TruncateToMinute(start)
	end = utils.TruncateToMinute(end)
	if !end.After(start) {
		return nil, ErrInvalidRange
	}

	key := repository.DatasetNews + "|" + utils.FormatISO(start) + "|" + utils.FormatISO(end)
	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.getRange(ctx, start, end)
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.NewsRangeResponse), nil
}

func (s *newsService) getRange(ctx context.Context, start, end time.Time) (*dto.NewsRangeResponse, error) {
	release, err := s.locker.Lock(ctx, repository.DatasetNews)
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := s.store.LoadArticles(ctx)
	if err != nil {
		return nil, err
	}

	var generated []entity.Article
	for _, gap := range articleGaps(rows, start, end, s.maxInterval) {
		generated = append(generated, s.synth.FillRange(gap.From, gap.To, s.maxInterval)...)
	}

	if len(generated) > 0 {
		rows = mergeArticles(rows, generated)

		// A cancelled request must not partially persist.
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.store.SaveArticles(ctx, rows); err != nil {
			s.logger.Error("Failed to persist generated articles", logger.ErrorField(err))
			return nil, err
		}
		s.logger.Info("Generated articles persisted",
			logger.IntField("generated", len(generated)),
			logger.IntField("total", len(rows)))
	}

	filtered := make([]entity.Article, 0)
	for _, a := range rows {
		t := a.PublishedAt
		if !t.Before(start) && t.Before(end) {
			filtered = append(filtered, a)
		}
	}

	return &dto.NewsRangeResponse{
		Start:    utils.FormatISO(start),
		End:      utils.FormatISO(end),
		Count:    len(filtered),
		Articles: filtered,
	}, nil
}

// mergeArticles combines stored and generated articles, de-duplicated by
// natural key and sorted ascending by published_at.
func mergeArticles(existing, generated []entity.Article) []entity.Article {
	merged := make([]entity.Article, 0, len(existing)+len(generated))
	seen := make(map[string]struct{}, len(existing)+len(generated))

	for _, a := range append(existing, generated...) {
		key := a.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		merged = append(merged, a)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.Before(merged[j].PublishedAt)
	})
	return merged
}
