package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang-mockdata-provider/internal/entity"
	"golang-mockdata-provider/pkg/logger"
	"golang-mockdata-provider/pkg/utils"

	"github.com/xuri/excelize/v2"
)

const (
	newsSheet      = "News"
	hedgeFundSheet = "HedgeFunds"
)

var (
	newsFilePattern      = regexp.MustCompile(`^news_\d{4}\.xlsx$`)
	hedgeFundFilePattern = regexp.MustCompile(`^hedgefund_\d{4}\.xlsx$`)
)

var articleHeader = []string{
	"published_at", "title", "summary", "content", "url", "image_url",
	"source", "publisher", "authors", "tickers", "category", "sentiment",
}

var filingHeader = []string{
	"fund_name", "fund_manager", "cik", "quarter", "filing_date", "report_date",
	"return_1m", "return_3m", "return_6m", "return_1y", "source",
	"top_holdings_json", "new_positions_json", "decreased_positions_json", "sold_out_positions_json",
}

// XLSXStore persists records as spreadsheet files, one per calendar year.
// A partition that cannot be read is treated as empty with a warning, since
// regeneration is idempotent and will heal it on the next write.
type XLSXStore struct {
	dir    string
	logger *logger.Logger
}

// NewXLSXStore creates the store rooted at dir, creating it if needed.
func NewXLSXStore(dir string, log *logger.Logger) (*XLSXStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage dir: %w", err)
	}
	return &XLSXStore{dir: dir, logger: log}, nil
}

// LoadArticles reads every news partition, sorted ascending by published_at.
func (s *XLSXStore) LoadArticles(ctx context.Context) ([]entity.Article, error) {
	var all []entity.Article

	err := s.eachPartition(ctx, newsFilePattern, newsSheet, func(row map[string]string) {
		publishedAt, err := utils.ParseTimestamp(row["published_at"])
		if err != nil {
			s.logger.Warn("Skipping article row with bad timestamp", logger.StringField("published_at", row["published_at"]))
			return
		}

		var imageURL *string
		if v := row["image_url"]; v != "" {
			imageURL = &v
		}

		all = append(all, entity.Article{
			Title:       row["title"],
			Summary:     row["summary"],
			Content:     row["content"],
			URL:         row["url"],
			ImageURL:    imageURL,
			Source:      row["source"],
			Publisher:   row["publisher"],
			Authors:     splitList(row["authors"]),
			Tickers:     splitList(row["tickers"]),
			Category:    row["category"],
			Sentiment:   row["sentiment"],
			PublishedAt: publishedAt,
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].PublishedAt.Before(all[j].PublishedAt)
	})
	return all, nil
}

// SaveArticles rewrites every year partition present in articles.
func (s *XLSXStore) SaveArticles(ctx context.Context, articles []entity.Article) error {
	byYear := make(map[int][]entity.Article)
	for _, a := range articles {
		y := a.PublishedAt.UTC().Year()
		byYear[y] = append(byYear[y], a)
	}

	for year, yearArticles := range byYear {
		if err := ctx.Err(); err != nil {
			return err
		}

		sort.SliceStable(yearArticles, func(i, j int) bool {
			return yearArticles[i].PublishedAt.Before(yearArticles[j].PublishedAt)
		})

		rows := make([][]interface{}, 0, len(yearArticles))
		for _, a := range yearArticles {
			imageURL := ""
			if a.ImageURL != nil {
				imageURL = *a.ImageURL
			}
			rows = append(rows, []interface{}{
				utils.FormatISO(a.PublishedAt), a.Title, a.Summary, a.Content, a.URL, imageURL,
				a.Source, a.Publisher, strings.Join(a.Authors, ", "), strings.Join(a.Tickers, ", "),
				a.Category, a.Sentiment,
			})
		}

		path := filepath.Join(s.dir, fmt.Sprintf("news_%d.xlsx", year))
		if err := writePartition(path, newsSheet, articleHeader, rows); err != nil {
			return fmt.Errorf("failed to write news partition %d: %w", year, err)
		}
	}

	return nil
}

// LoadFilings reads every hedge fund partition, sorted ascending by filing_date.
func (s *XLSXStore) LoadFilings(ctx context.Context) ([]entity.FilingRecord, error) {
	var all []entity.FilingRecord

	err := s.eachPartition(ctx, hedgeFundFilePattern, hedgeFundSheet, func(row map[string]string) {
		filingDate, err := utils.ParseTimestamp(row["filing_date"])
		if err != nil {
			s.logger.Warn("Skipping filing row with bad filing_date", logger.StringField("filing_date", row["filing_date"]))
			return
		}
		reportDate, err := utils.ParseTimestamp(row["report_date"])
		if err != nil {
			s.logger.Warn("Skipping filing row with bad report_date", logger.StringField("report_date", row["report_date"]))
			return
		}

		all = append(all, entity.FilingRecord{
			FundName:           row["fund_name"],
			FundManager:        row["fund_manager"],
			CIK:                row["cik"],
			Quarter:            row["quarter"],
			FilingDate:         filingDate,
			ReportDate:         reportDate,
			Return1M:           parseFloat(row["return_1m"]),
			Return3M:           parseFloat(row["return_3m"]),
			Return6M:           parseFloat(row["return_6m"]),
			Return1Y:           parseFloat(row["return_1y"]),
			TopHoldings:        parseHoldings(row["top_holdings_json"]),
			NewPositions:       parseHoldings(row["new_positions_json"]),
			DecreasedPositions: parseHoldings(row["decreased_positions_json"]),
			SoldOutPositions:   parseHoldings(row["sold_out_positions_json"]),
			Source:             row["source"],
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].FilingDate.Before(all[j].FilingDate)
	})
	return all, nil
}

// SaveFilings rewrites every year partition present in records.
func (s *XLSXStore) SaveFilings(ctx context.Context, records []entity.FilingRecord) error {
	byYear := make(map[int][]entity.FilingRecord)
	for _, r := range records {
		y := r.FilingDate.UTC().Year()
		byYear[y] = append(byYear[y], r)
	}

	for year, yearRecords := range byYear {
		if err := ctx.Err(); err != nil {
			return err
		}

		sort.SliceStable(yearRecords, func(i, j int) bool {
			return yearRecords[i].FilingDate.Before(yearRecords[j].FilingDate)
		})

		rows := make([][]interface{}, 0, len(yearRecords))
		for _, r := range yearRecords {
			rows = append(rows, []interface{}{
				r.FundName, r.FundManager, r.CIK, r.Quarter,
				utils.FormatISO(r.FilingDate), utils.FormatISO(r.ReportDate),
				formatFloat(r.Return1M), formatFloat(r.Return3M),
				formatFloat(r.Return6M), formatFloat(r.Return1Y),
				r.Source,
				marshalHoldings(r.TopHoldings), marshalHoldings(r.NewPositions),
				marshalHoldings(r.DecreasedPositions), marshalHoldings(r.SoldOutPositions),
			})
		}

		path := filepath.Join(s.dir, fmt.Sprintf("hedgefund_%d.xlsx", year))
		if err := writePartition(path, hedgeFundSheet, filingHeader, rows); err != nil {
			return fmt.Errorf("failed to write hedgefund partition %d: %w", year, err)
		}
	}

	return nil
}

// eachPartition streams every data row of every partition matching pattern
// to fn, keyed by header name. Unreadable partitions are skipped with a
// warning.
func (s *XLSXStore) eachPartition(ctx context.Context, pattern *regexp.Regexp, sheet string, fn func(row map[string]string)) error {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read storage dir: %w", err)
	}

	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if e.IsDir() || !pattern.MatchString(e.Name()) {
			continue
		}

		path := filepath.Join(s.dir, e.Name())
		f, err := excelize.OpenFile(path)
		if err != nil {
			s.logger.Warn("Treating unreadable partition as empty", logger.StringField("file", e.Name()), logger.ErrorField(err))
			continue
		}

		rows, err := f.GetRows(sheet)
		_ = f.Close()
		if err != nil {
			s.logger.Warn("Treating partition without expected sheet as empty", logger.StringField("file", e.Name()), logger.ErrorField(err))
			continue
		}
		if len(rows) < 2 {
			continue
		}

		header := rows[0]
		for _, cells := range rows[1:] {
			row := make(map[string]string, len(header))
			for i, name := range header {
				if i < len(cells) {
					row[name] = cells[i]
				}
			}
			fn(row)
		}
	}

	return nil
}

// writePartition writes a whole partition to a temp file and renames it into
// place, so readers never observe a half-written file.
func writePartition(path, sheet string, header []string, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}

	headerRow := make([]interface{}, len(header))
	for i, h := range header {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return err
		}
	}

	// The temp name must keep the .xlsx extension: SaveAs infers the
	// workbook format from it.
	tmp := strings.TrimSuffix(path, ".xlsx") + ".tmp.xlsx"
	if err := f.SaveAs(tmp); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func splitList(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseFloat(v string) float64 {
	f, _ := strconv.ParseFloat(v, 64)
	return f
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseHoldings(v string) []entity.Holding {
	if v == "" {
		return nil
	}
	var holdings []entity.Holding
	if err := json.Unmarshal([]byte(v), &holdings); err != nil {
		return nil
	}
	return holdings
}

func marshalHoldings(holdings []entity.Holding) string {
	if holdings == nil {
		holdings = []entity.Holding{}
	}
	b, _ := json.Marshal(holdings)
	return string(b)
}

var _ TabularStore = (*XLSXStore)(nil)
