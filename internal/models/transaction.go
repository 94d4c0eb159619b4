package models

import "time"

// PaymentMethod represents how a transaction was paid
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "cash"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodNetbanking PaymentMethod = "netbanking"
	PaymentMethodWallet     PaymentMethod = "wallet"
	PaymentMethodOther      PaymentMethod = "other"
)

// Transaction represents a recorded expense
type Transaction struct {
	Base
	UserID        uint          `gorm:"not null;index" json:"user_id"`
	CategoryID    uint          `gorm:"not null;index" json:"category_id"`
	Amount        float64       `gorm:"not null" json:"amount"`
	Date          time.Time     `gorm:"not null;index" json:"date"`
	PaymentMethod PaymentMethod `gorm:"default:other" json:"payment_method"`
	Note          string        `json:"note"`

	// Relationships
	Category Category `gorm:"foreignKey:CategoryID" json:"category"`
}
