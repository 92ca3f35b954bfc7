package domain

import (
	"time"

	"github.com/google/uuid"
)

type Course struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title           string    `gorm:"index"`
	Description     string
	LongDescription string
	Price           int    `gorm:"not null;default:0"` // Цена в рупиях
	Category        string `gorm:"index"`
	ImageURL        string
	TotalLectures   int
	DurationHours   float64

	// Связь один-ко-многим: у курса много лекций
	Lessons []Lesson `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE;"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Lesson struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourseID uuid.UUID `gorm:"type:uuid;index"`
	Title    string
	Order    int // Для сортировки (1, 2, 3...)

	CreatedAt time.Time
}
