package models

import "time"

type Category struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	EName     string    `gorm:"unique;not null" json:"ename"`
	ARName    string    `gorm:"unique;not null" json:"arname"`
	Image     string    `json:"image"`
	Active    bool      `gorm:"default:true" json:"active"`
	Products  []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
