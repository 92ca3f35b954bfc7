package domain

import (
	"time"

	"github.com/google/uuid"
)

type CartItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID   uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_course"`
	CourseID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_cart_user_course"`
	Course   Course    `gorm:"foreignKey:CourseID"`

	CreatedAt time.Time
}

// ComputeTotal суммирует цены курсов в корзине.
// Если курс не подгружен (удалили из каталога), считаем его цену нулём.
func ComputeTotal(items []CartItem) int {
	total := 0
	for _, item := range items {
		total += item.Course.Price
	}
	return total
}
