package models

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           string         `gorm:"primaryKey" json:"id"`
	Email        string         `gorm:"unique;not null" json:"email"`
	Name         string         `json:"name"`
	Phone        string         `json:"phone"`
	PasswordHash string         `gorm:"not null" json:"-"`
	Role         Role           `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	Cart         Cart           `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"cart"`
	Orders       []Order        `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Addresses    []SavedAddress `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"addresses,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}
