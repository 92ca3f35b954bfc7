package domain

import (
	"time"

	"github.com/google/uuid"
)

type ContactMessage struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Email   string
	Message string

	CreatedAt time.Time
}
