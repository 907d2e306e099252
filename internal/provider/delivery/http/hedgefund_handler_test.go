package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang-mockdata-provider/internal/entity"
	"golang-mockdata-provider/internal/provider/dto"
	"golang-mockdata-provider/internal/provider/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubHedgeFundService struct {
	resp *dto.HedgeFundRangeResponse
	err  error
}

func (s *stubHedgeFundService) GetRange(_ context.Context, _, _ time.Time) (*dto.HedgeFundRangeResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.resp, nil
}

func performFilingsRequest(t *testing.T, svc service.HedgeFundService, query string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/hedgefunds"+query, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHedgeFundHandler(svc, testHandlerLogger(t))
	require.NoError(t, h.GetFilings(c))
	return rec
}

func TestGetFilings_MissingParams(t *testing.T) {
	rec := performFilingsRequest(t, &stubHedgeFundService{}, "?start=2023-01-01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "start and end query params required")
}

func TestGetFilings_InvalidTimestamp(t *testing.T) {
	rec := performFilingsRequest(t, &stubHedgeFundService{}, "?start=2023-01-01&end=soon")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid start/end timestamp")
}

func TestGetFilings_InvalidRange(t *testing.T) {
	svc := &stubHedgeFundService{err: service.ErrInvalidRange}
	rec := performFilingsRequest(t, svc, "?start=2023-06-01&end=2023-01-01")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "end must be > start", body.Error)
}

func TestGetFilings_ServiceError(t *testing.T) {
	svc := &stubHedgeFundService{err: errors.New("store unavailable")}
	rec := performFilingsRequest(t, svc, "?start=2023-01-01&end=2023-12-31")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetFilings_OK(t *testing.T) {
	svc := &stubHedgeFundService{
		resp: &dto.HedgeFundRangeResponse{
			Start: "2023-01-01T00:00:00Z",
			End:   "2023-12-31T00:00:00Z",
			Count: 1,
			Records: []entity.FilingRecord{
				{
					FundName:   "Citadel Advisors",
					Quarter:    "2023Q1",
					FilingDate: time.Date(2023, time.May, 15, 0, 0, 0, 0, time.UTC),
					Source:     "mock-hedgefund-api",
				},
			},
		},
	}

	rec := performFilingsRequest(t, svc, "?start=2023-01-01&end=2023-12-31")
	require.Equal(t, http.StatusOK, rec.Code)

	var body dto.HedgeFundRangeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Records, 1)
	assert.Equal(t, "Citadel Advisors", body.Records[0].FundName)
	assert.Equal(t, "2023Q1", body.Records[0].Quarter)
}
