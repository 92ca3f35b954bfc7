package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	PaymentMethodCard = "card"
	PaymentMethodUPI  = "upi"

	PurchaseStatusCompleted = "completed"
)

// Purchase — запись о покупке. Append-only, после создания не меняется.
type Purchase struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID `gorm:"type:uuid;index"`
	Amount        int
	PaymentMethod string // "card" или "upi"
	Status        string `gorm:"default:'completed'"`
	PurchaseDate  time.Time
}
