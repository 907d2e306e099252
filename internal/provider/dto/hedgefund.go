package dto

import "golang-mockdata-provider/internal/entity"

// HedgeFundRangeResponse is the response body for GET /hedgefunds.
type HedgeFundRangeResponse struct {
	Start   string                `json:"start"`
	End     string                `json:"end"`
	Count   int                   `json:"count"`
	Records []entity.FilingRecord `json:"records"`
}
