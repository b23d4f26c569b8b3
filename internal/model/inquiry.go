package model

import "time"

// Inquiry is a contact-form submission, optionally tied to a listing.
// Reference is a UUID handed back to the visitor for follow-up.
type Inquiry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Reference string    `gorm:"uniqueIndex;size:36;not null" json:"reference"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null" json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `gorm:"not null" json:"message"`
	ListingID *uint     `gorm:"index" json:"listingId,omitempty"`
	Resolved  bool      `json:"resolved"`
	CreatedAt time.Time `json:"createdAt"`
}
