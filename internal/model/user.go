package model

import "time"

// Back-office roles.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

// User is a back-office account. PasswordHash holds a bcrypt digest and is
// never serialized.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `json:"name"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Role         string    `gorm:"default:editor" json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
