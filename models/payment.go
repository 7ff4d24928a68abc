package models

import "time"

// PaymentType defines the accepted payment method kinds
type PaymentType string

const (
	PaymentCard       PaymentType = "card"
	PaymentUPI        PaymentType = "upi"
	PaymentNetbanking PaymentType = "netbanking"
)

// ValidPaymentType reports whether t is one of the known payment kinds.
func ValidPaymentType(t PaymentType) bool {
	switch t {
	case PaymentCard, PaymentUPI, PaymentNetbanking:
		return true
	}
	return false
}

type PaymentMethod struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	UserID    uint        `json:"user_id" gorm:"not null;index"`
	Type      PaymentType `json:"type" gorm:"not null"`
	LastFour  string      `json:"last_four" gorm:"size:4;not null"`
	IsDefault bool        `json:"is_default" gorm:"default:false"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
