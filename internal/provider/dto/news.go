package dto

import "golang-mockdata-provider/internal/entity"

// NewsRangeResponse is the response body for GET /news.
type NewsRangeResponse struct {
	Start    string           `json:"start"`
	End      string           `json:"end"`
	Count    int              `json:"count"`
	Articles []entity.Article `json:"articles"`
}
