package search

import "realty-service/internal/apperr"

// Page is the envelope returned by every paginated endpoint.
type Page struct {
	Data  interface{} `json:"data"`
	Total int64       `json:"total"`
	Page  int         `json:"page"`
	Pages int         `json:"pages"`
}

// NewPage wraps a fetched page of rows with its count metadata.
// Pages is ceil(total/limit).
func NewPage(rows interface{}, total int64, page, limit int) (Page, error) {
	if limit <= 0 {
		return Page{}, apperr.Validation("limit", "must be a positive integer")
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	return Page{Data: rows, Total: total, Page: page, Pages: pages}, nil
}
