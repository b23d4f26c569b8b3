package model

import "time"

// Job posting types.
const (
	JobFullTime = "Full-Time"
	JobPartTime = "Part-Time"
	JobContract = "Contract"
)

// Job is a careers-board posting managed from the back office. Only active
// postings are shown publicly.
type Job struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	Type        string    `gorm:"default:Full-Time" json:"type"`
	Description string    `json:"description"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ValidJobType reports whether s is a known posting type.
func ValidJobType(s string) bool {
	return s == JobFullTime || s == JobPartTime || s == JobContract
}
