package models

import "time"

// SavedAddress is an address-book entry. At most one row per user carries
// IsDefault=true; the address controller keeps that invariant.
type SavedAddress struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Label     string    `gorm:"not null" json:"label"`
	Address   string    `gorm:"type:text;not null" json:"address"`
	IsDefault bool      `gorm:"default:false" json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
