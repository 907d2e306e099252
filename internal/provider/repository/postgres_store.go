package repository

import (
	"context"
	"encoding/json"
	"time"

	"golang-mockdata-provider/internal/entity"

	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// articleRow is the relational shape of an entity.Article.
type articleRow struct {
	ID          uint           `gorm:"primaryKey"`
	PublishedAt time.Time      `gorm:"uniqueIndex;not null"`
	Title       string         `gorm:"not null"`
	Summary     string         `gorm:"type:text"`
	Content     string         `gorm:"type:text"`
	URL         string
	ImageURL    *string `gorm:"column:image_url"`
	Source      string
	Publisher   string
	Authors     pq.StringArray `gorm:"type:text[]"`
	Tickers     pq.StringArray `gorm:"type:text[]"`
	Category    string
	Sentiment   string
}

func (articleRow) TableName() string {
	return "news_articles"
}

// filingRow is the relational shape of an entity.FilingRecord. Holdings
// lists are stored as JSON documents.
type filingRow struct {
	ID                 uint           `gorm:"primaryKey"`
	FundName           string         `gorm:"not null;uniqueIndex:idx_fund_quarter"`
	Quarter            string         `gorm:"not null;uniqueIndex:idx_fund_quarter"`
	FundManager        string
	CIK                string         `gorm:"column:cik"`
	FilingDate         time.Time      `gorm:"index;not null"`
	ReportDate         time.Time      `gorm:"not null"`
	Return1M           float64        `gorm:"column:return_1m"`
	Return3M           float64        `gorm:"column:return_3m"`
	Return6M           float64        `gorm:"column:return_6m"`
	Return1Y           float64        `gorm:"column:return_1y"`
	TopHoldings        datatypes.JSON `gorm:"column:top_holdings"`
	NewPositions       datatypes.JSON `gorm:"column:new_positions"`
	DecreasedPositions datatypes.JSON `gorm:"column:decreased_positions"`
	SoldOutPositions   datatypes.JSON `gorm:"column:sold_out_positions"`
	Source             string
}

func (filingRow) TableName() string {
	return "hedge_fund_filings"
}

// PostgresStore is the database-backed TabularStore. Year partitions map to
// row ranges on the primary time column; a save rewrites each affected year
// inside one transaction.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore creates a PostgresStore over the given connection.
func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// LoadArticles retrieves all stored articles ordered by published_at.
func (s *PostgresStore) LoadArticles(ctx context.Context) ([]entity.Article, error) {
	var rows []articleRow
	if err := s.db.WithContext(ctx).Order("published_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	articles := make([]entity.Article, 0, len(rows))
	for _, r := range rows {
		articles = append(articles, entity.Article{
			Title:       r.Title,
			Summary:     r.Summary,
			Content:     r.Content,
			URL:         r.URL,
			ImageURL:    r.ImageURL,
			Source:      r.Source,
			Publisher:   r.Publisher,
			Authors:     r.Authors,
			Tickers:     r.Tickers,
			Category:    r.Category,
			Sentiment:   r.Sentiment,
			PublishedAt: r.PublishedAt.UTC(),
		})
	}
	return articles, nil
}

// SaveArticles rewrites every year partition present in articles.
func (s *PostgresStore) SaveArticles(ctx context.Context, articles []entity.Article) error {
	byYear := make(map[int][]articleRow)
	for _, a := range articles {
		y := a.PublishedAt.UTC().Year()
		byYear[y] = append(byYear[y], articleRow{
			PublishedAt: a.PublishedAt.UTC(),
			Title:       a.Title,
			Summary:     a.Summary,
			Content:     a.Content,
			URL:         a.URL,
			ImageURL:    a.ImageURL,
			Source:      a.Source,
			Publisher:   a.Publisher,
			Authors:     pq.StringArray(a.Authors),
			Tickers:     pq.StringArray(a.Tickers),
			Category:    a.Category,
			Sentiment:   a.Sentiment,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for year, rows := range byYear {
			from, to := yearBounds(year)
			if err := tx.Where("published_at >= ? AND published_at < ?", from, to).Delete(&articleRow{}).Error; err != nil {
				return err
			}
			if err := tx.CreateInBatches(rows, 500).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// LoadFilings retrieves all stored filings ordered by filing_date.
func (s *PostgresStore) LoadFilings(ctx context.Context) ([]entity.FilingRecord, error) {
	var rows []filingRow
	if err := s.db.WithContext(ctx).Order("filing_date asc").Find(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]entity.FilingRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, entity.FilingRecord{
			FundName:           r.FundName,
			FundManager:        r.FundManager,
			CIK:                r.CIK,
			Quarter:            r.Quarter,
			FilingDate:         r.FilingDate.UTC(),
			ReportDate:         r.ReportDate.UTC(),
			Return1M:           r.Return1M,
			Return3M:           r.Return3M,
			Return6M:           r.Return6M,
			Return1Y:           r.Return1Y,
			TopHoldings:        unmarshalHoldingsJSON(r.TopHoldings),
			NewPositions:       unmarshalHoldingsJSON(r.NewPositions),
			DecreasedPositions: unmarshalHoldingsJSON(r.DecreasedPositions),
			SoldOutPositions:   unmarshalHoldingsJSON(r.SoldOutPositions),
			Source:             r.Source,
		})
	}
	return records, nil
}

// SaveFilings rewrites every year partition present in records.
func (s *PostgresStore) SaveFilings(ctx context.Context, records []entity.FilingRecord) error {
	byYear := make(map[int][]filingRow)
	for _, r := range records {
		y := r.FilingDate.UTC().Year()
		byYear[y] = append(byYear[y], filingRow{
			FundName:           r.FundName,
			FundManager:        r.FundManager,
			CIK:                r.CIK,
			Quarter:            r.Quarter,
			FilingDate:         r.FilingDate.UTC(),
			ReportDate:         r.ReportDate.UTC(),
			Return1M:           r.Return1M,
			Return3M:           r.Return3M,
			Return6M:           r.Return6M,
			Return1Y:           r.Return1Y,
			TopHoldings:        marshalHoldingsJSON(r.TopHoldings),
			NewPositions:       marshalHoldingsJSON(r.NewPositions),
			DecreasedPositions: marshalHoldingsJSON(r.DecreasedPositions),
			SoldOutPositions:   marshalHoldingsJSON(r.SoldOutPositions),
			Source:             r.Source,
		})
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for year, rows := range byYear {
			from, to := yearBounds(year)
			if err := tx.Where("filing_date >= ? AND filing_date < ?", from, to).Delete(&filingRow{}).Error; err != nil {
				return err
			}
			if err := tx.CreateInBatches(rows, 500).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func yearBounds(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

func unmarshalHoldingsJSON(doc datatypes.JSON) []entity.Holding {
	if len(doc) == 0 {
		return nil
	}
	var holdings []entity.Holding
	if err := json.Unmarshal(doc, &holdings); err != nil {
		return nil
	}
	return holdings
}

func marshalHoldingsJSON(holdings []entity.Holding) datatypes.JSON {
	if holdings == nil {
		holdings = []entity.Holding{}
	}
	b, _ := json.Marshal(holdings)
	return datatypes.JSON(b)
}

var _ TabularStore = (*PostgresStore)(nil)
