package model

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction types a listing can be offered under.
const (
	TransactionRent = "Rent"
	TransactionSell = "Sell"
	TransactionSold = "Sold"
)

// Furnishing states.
const (
	FurnishingFull = "Furnished"
	FurnishingSemi = "Semi-Furnished"
	FurnishingNone = "Unfurnished"
)

// Listing statuses.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Listing is a single property record. Slug is derived from Title and is
// never accepted from the client; the unique index backs the retry loop in
// the service layer.
type Listing struct {
	ID              uint              `gorm:"primaryKey" json:"id"`
	Slug            string            `gorm:"uniqueIndex;size:255;not null" json:"slug"`
	Title           string            `gorm:"not null" json:"title"`
	Description     string            `json:"description"`
	Address         string            `json:"address"`
	Region          string            `gorm:"index" json:"region"`
	PropertyType    string            `gorm:"index" json:"propertyType"`
	TransactionType string            `gorm:"index" json:"transactionType"`
	Furnishing      string            `json:"furnishing"`
	Price           float64           `json:"price"`
	Area            float64           `json:"area"`
	BHK             int               `gorm:"column:bhk" json:"bhk"`
	Floor           int               `json:"floor"`
	TotalFloors     int               `json:"totalFloors"`
	Latitude        float64           `json:"latitude"`
	Longitude       float64           `json:"longitude"`
	Amenities       []string          `gorm:"serializer:json;type:text" json:"amenities"`
	Images          []string          `gorm:"serializer:json;type:text" json:"images"`
	NearbyPlaces    datatypes.JSONMap `json:"nearbyPlaces"`
	Featured        bool              `gorm:"index" json:"featured"`
	Status          string            `gorm:"default:Active" json:"status"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// ValidTransactionType reports whether s is one of Rent/Sell/Sold.
func ValidTransactionType(s string) bool {
	return s == TransactionRent || s == TransactionSell || s == TransactionSold
}

// ValidFurnishing reports whether s is a known furnishing state.
func ValidFurnishing(s string) bool {
	return s == FurnishingFull || s == FurnishingSemi || s == FurnishingNone
}

// ValidStatus reports whether s is Active or Inactive.
func ValidStatus(s string) bool {
	return s == StatusActive || s == StatusInactive
}
