package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username string
	Email    string `gorm:"unique"`
	Password string // bcrypt hash

	CreatedAt time.Time
	UpdatedAt time.Time
}
