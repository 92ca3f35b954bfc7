package domain

import (
	"time"

	"github.com/google/uuid"
)

// CourseProgress создается только при покупке курса (чекаут),
// поэтому наличие записи == пользователь купил курс.
type CourseProgress struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_progress_user_course"`
	CourseID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_progress_user_course"`
	Course   Course    `gorm:"foreignKey:CourseID"`

	CompletedLectures  int `gorm:"default:0"`
	ProgressPercentage int `gorm:"default:0"` // 0..100
	LastAccessed       time.Time
	PurchaseDate       time.Time
}
