package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	EName         string         `gorm:"not null" json:"ename"` // English Name
	ARName        string         `json:"arname"`                // Arabic Name
	EDescription  string         `json:"edescription"`
	ARDescription string         `json:"ardescription"`
	Price         float64        `gorm:"not null" json:"price"`
	SalePrice     *float64       `json:"sale_price,omitempty"` // must be < Price when set
	SaleEndsAt    *time.Time     `json:"sale_ends_at,omitempty"`
	InStock       bool           `gorm:"default:true" json:"in_stock"`
	CategoryID    *uint          `gorm:"index" json:"category_id,omitempty"`
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Image         string         `json:"image"`
	Active        bool           `gorm:"default:true" json:"active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// EffectivePrice returns the unit price an order captures right now:
// the sale price while a sale is set and not expired, the regular price
// otherwise.
func (p *Product) EffectivePrice(now time.Time) float64 {
	if p.SalePrice != nil && (p.SaleEndsAt == nil || p.SaleEndsAt.After(now)) {
		return *p.SalePrice
	}
	return p.Price
}
