package repository

import (
	"context"

	"coursemarket/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CheckoutRepository struct {
	db *gorm.DB
}

func NewCheckoutRepository(db *gorm.DB) *CheckoutRepository {
	return &CheckoutRepository{db: db}
}

// Commit проводит покупку одной транзакцией: запись о покупке, прогресс по каждому
// курсу, очистка корзины. Если что-то падает (например, прогресс уже существует
// после параллельного чекаута во второй вкладке) — откатывается всё целиком.
func (r *CheckoutRepository) Commit(ctx context.Context, purchase *domain.Purchase, progress []domain.CourseProgress, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(purchase).Error; err != nil {
			return err
		}
		if err := tx.Omit("Course").Create(&progress).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&domain.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
}
