package domain

import (
	"time"

	"github.com/google/uuid"
)

// CourseReview — максимум один отзыв на пару (user, course), повторная отправка перезаписывает.
type CourseReview struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_review_user_course"`
	CourseID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_review_user_course"`

	Rating     int // 1..5
	ReviewText string

	CreatedAt time.Time
	UpdatedAt time.Time
}
