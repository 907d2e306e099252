package service

import (
	"context"
	"sort"
	"time"

	"golang-mockdata-provider/internal/entity"
	"golang-mockdata-provider/internal/provider/dto"
	"golang-mockdata-provider/internal/provider/gen"
	"golang-mockdata-provider/internal/provider/repository"
	"golang-mockdata-provider/internal/refdata"
	"golang-mockdata-provider/pkg/logger"
	"golang-mockdata-provider/pkg/utils"

	"golang.org/x/sync/singleflight"
)

// HedgeFundService serves filing range queries, generating and persisting
// any fund-quarter records the store does not yet cover.
type HedgeFundService interface {
	GetRange(ctx context.Context, start, end time.Time) (*dto.HedgeFundRangeResponse, error)
}

// NewHedgeFundService creates a new hedge fund filings service.
func NewHedgeFundService(store repository.TabularStore, locker repository.Locker, synth *gen.FilingSynthesizer, ref refdata.Provider, log *logger.Logger) HedgeFundService {
	return &hedgeFundService{
		store:  store,
		locker: locker,
		synth:  synth,
		ref:    ref,
		logger: log,
	}
}

type hedgeFundService struct {
	store  repository.TabularStore
	locker repository.Locker
	synth  *gen.FilingSynthesizer
	ref    refdata.Provider
	logger *logger.Logger
	group  singleflight.Group
}

// GetRange returns every filing with start <= filing_date <= end, filling
// and persisting gaps first. Quarters are processed in filing-date order so
// each generated record can diff against its immediate predecessor, stored
// or generated earlier in the same call.
func (s *hedgeFundService) GetRange(ctx context.Context, start, end time.Time) (*dto.HedgeFundRangeResponse, error) {
	if !end.After(start) {
		return nil, ErrInvalidRange
	}

	key := repository.DatasetHedgeFunds + "|" + utils.FormatISO(start) + "|" + utils.FormatISO(end)
	result, err, _ := s.group.Do(key, func() (interface{}, error) {
		return s.getRange(ctx, start, end)
	})
	if err != nil {
		return nil, err
	}
	return result.(*dto.HedgeFundRangeResponse), nil
}

func (s *hedgeFundService) getRange(ctx context.Context, start, end time.Time) (*dto.HedgeFundRangeResponse, error) {
	release, err := s.locker.Lock(ctx, repository.DatasetHedgeFunds)
	if err != nil {
		return nil, err
	}
	defer release()

	rows, err := s.store.LoadFilings(ctx)
	if err != nil {
		return nil, err
	}

	index := buildFilingIndex(rows)
	quarters := gen.QuartersBetween(start, end)

	generatedCount := 0
	for _, q := range quarters {
		for _, fund := range s.ref.Funds() {
			key := fund.Name + "|" + q.Quarter
			if _, ok := index[key]; ok {
				continue
			}

			prev := latestFilingBefore(rows, fund.Name, q.FilingDate)
			record := s.synth.Synthesize(fund, q, prev)

			index[key] = struct{}{}
			rows = append(rows, record)
			generatedCount++
		}
	}

	if generatedCount > 0 {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].FilingDate.Before(rows[j].FilingDate)
		})

		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := s.store.SaveFilings(ctx, rows); err != nil {
			s.logger.Error("Failed to persist generated filings", logger.ErrorField(err))
			return nil, err
		}
		s.logger.Info("Generated filings persisted",
			logger.IntField("generated", generatedCount),
			logger.IntField("total", len(rows)))
	}

	filtered := make([]entity.FilingRecord, 0)
	for _, r := range rows {
		t := r.FilingDate
		if !t.Before(start) && !t.After(end) {
			filtered = append(filtered, r)
		}
	}

	return &dto.HedgeFundRangeResponse{
		Start:   utils.FormatISO(start),
		End:     utils.FormatISO(end),
		Count:   len(filtered),
		Records: filtered,
	}, nil
}
