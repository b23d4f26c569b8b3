package search

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"realty-service/internal/apperr"
)

// Pagination defaults.
const (
	DefaultLimit = 20
	DefaultPage  = 1
)

// Filter is the typed form of the listing search parameters. Pointer fields
// distinguish "absent" from a zero value. All conditions AND together;
// Search ORs across the text columns and each amenity contributes its own
// containment check.
type Filter struct {
	Region          string
	TransactionType string
	PropertyType    string
	BHK             *int
	Featured        *bool
	MinPrice        *float64
	MaxPrice        *float64
	Search          string
	Amenities       []string
	IDs             []uint
	Limit           int
	Page            int
}

// ParseParams validates raw query parameters into a Filter. Numeric
// parameters fail closed: a non-numeric value is a ValidationError naming
// the field, never a silent coercion. Unknown keys are ignored.
func ParseParams(params map[string]string) (Filter, error) {
	f := Filter{
		Region:          params["region"],
		TransactionType: params["transactionType"],
		PropertyType:    params["propertyType"],
		Search:          params["search"],
		Limit:           DefaultLimit,
		Page:            DefaultPage,
	}

	if v := params["bhk"]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Filter{}, apperr.Validation("bhk", "must be a positive integer")
		}
		f.BHK = &n
	}

	if v := params["featured"]; v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Filter{}, apperr.Validation("featured", "must be true or false")
		}
		f.Featured = &b
	}

	if v := params["minPrice"]; v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			return Filter{}, apperr.Validation("minPrice", "must be a non-negative number")
		}
		f.MinPrice = &p
	}

	if v := params["maxPrice"]; v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil || p < 0 {
			return Filter{}, apperr.Validation("maxPrice", "must be a non-negative number")
		}
		f.MaxPrice = &p
	}

	// Empty tokens are dropped so "amenities=" filters nothing rather than
	// matching nothing.
	if v := params["amenities"]; v != "" {
		for _, tok := range strings.Split(v, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				f.Amenities = append(f.Amenities, tok)
			}
		}
	}

	if v := params["ids"]; v != "" {
		for _, tok := range strings.Split(v, ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			id, err := strconv.ParseUint(tok, 10, 64)
			if err != nil || id == 0 {
				return Filter{}, apperr.Validation("ids", "must be a comma-separated list of numeric ids")
			}
			f.IDs = append(f.IDs, uint(id))
		}
	}

	if v := params["limit"]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Filter{}, apperr.Validation("limit", "must be a positive integer")
		}
		f.Limit = n
	}

	if v := params["page"]; v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return Filter{}, apperr.Validation("page", "must be a positive integer")
		}
		f.Page = n
	}

	return f, nil
}

// Offset converts page/limit into a row offset.
func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

// Apply translates the filter into WHERE clauses on tx. Ordering and
// pagination are the caller's concern so the same chain can count and
// fetch.
func (f Filter) Apply(tx *gorm.DB) *gorm.DB {
	if f.Region != "" {
		tx = tx.Where("region = ?", f.Region)
	}
	if f.TransactionType != "" {
		tx = tx.Where("transaction_type = ?", f.TransactionType)
	}
	if f.PropertyType != "" {
		tx = tx.Where("property_type = ?", f.PropertyType)
	}
	if f.BHK != nil {
		tx = tx.Where("bhk = ?", *f.BHK)
	}
	if f.Featured != nil {
		tx = tx.Where("featured = ?", *f.Featured)
	}
	if f.MinPrice != nil {
		tx = tx.Where("price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		tx = tx.Where("price <= ?", *f.MaxPrice)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		tx = tx.Where(
			"LOWER(title) LIKE ? OR LOWER(description) LIKE ? OR LOWER(address) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	// Amenities are stored as a JSON array, so a tag is always present as a
	// quoted token; matching on the quotes keeps "Gym" from matching
	// "Gymnasium".
	for _, a := range f.Amenities {
		tx = tx.Where("amenities LIKE ?", `%"`+a+`"%`)
	}
	if len(f.IDs) > 0 {
		tx = tx.Where("id IN ?", f.IDs)
	}
	return tx
}
