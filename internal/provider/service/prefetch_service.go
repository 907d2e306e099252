package service

import (
	"context"
	"time"

	"golang-mockdata-provider/pkg/logger"

	"github.com/robfig/cron/v3"
)

// PrefetchService periodically extends the article timeline up to the
// current time so interactive queries near "now" rarely pay generation cost.
type PrefetchService interface {
	Start(ctx context.Context)
}

// NewPrefetchService creates a prefetch service running on the given cron
// expression.
func NewPrefetchService(news NewsService, log *logger.Logger, cronExpr string) PrefetchService {
	return &prefetchService{
		news:     news,
		logger:   log,
		cronExpr: cronExpr,
	}
}

type prefetchService struct {
	news     NewsService
	logger   *logger.Logger
	cronExpr string
}

// Start runs the cron loop until the context is cancelled.
func (s *prefetchService) Start(ctx context.Context) {
	c := cron.New()

	_, err := c.AddFunc(s.cronExpr, func() {
		// Any request ending at now extends coverage to now; the suffix gap
		// is computed from the stored coverage end regardless of start.
		now := time.Now().UTC()
		resp, err := s.news.GetRange(ctx, now.Add(-time.Minute), now)
		if err != nil {
			if ctx.Err() == nil {
				s.logger.Error("Article prefetch failed", logger.ErrorField(err))
			}
			return
		}
		s.logger.Info("Article prefetch completed", logger.IntField("count", resp.Count))
	})
	if err != nil {
		s.logger.Error("Invalid prefetch cron expression", logger.StringField("cron", s.cronExpr), logger.ErrorField(err))
		return
	}

	s.logger.Info("Prefetch scheduler started", logger.StringField("cron", s.cronExpr))
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
}
