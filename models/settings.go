package models

import "time"

// SettingsID is the fixed primary key of the StoreSettings singleton row.
const SettingsID = 1

type StoreSettings struct {
	ID                    uint      `gorm:"primaryKey" json:"id"`
	StoreNameEn           string    `json:"store_name_en"`
	StoreNameAr           string    `json:"store_name_ar"`
	ContactEmail          string    `json:"contact_email"`
	ContactPhone          string    `json:"contact_phone"`
	DeliveryFee           float64   `json:"delivery_fee"`
	FreeDeliveryThreshold float64   `json:"free_delivery_threshold"` // 0 disables free delivery
	CashEnabled           bool      `gorm:"default:true" json:"cash_enabled"`
	InstapayEnabled       bool      `gorm:"default:true" json:"instapay_enabled"`
	InstapayNumber        string    `json:"instapay_number"`
	FacebookURL           string    `json:"facebook_url"`
	InstagramURL          string    `json:"instagram_url"`
	WhatsappNumber        string    `json:"whatsapp_number"`
	HeroImage             string    `json:"hero_image"`
	ActiveTheme           string    `gorm:"default:'classic'" json:"active_theme"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// DefaultSettings is the row seeded on first boot.
func DefaultSettings() StoreSettings {
	return StoreSettings{
		ID:              SettingsID,
		StoreNameEn:     "St. Mary Gift Shop",
		StoreNameAr:     "مكتبة السيدة العذراء",
		DeliveryFee:     50,
		CashEnabled:     true,
		InstapayEnabled: true,
		ActiveTheme:     "classic",
	}
}
