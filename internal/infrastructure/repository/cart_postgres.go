package repository

import (
	"context"
	"errors"

	"coursemarket/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Add — добавление в корзину. Если пара (user, course) уже есть, возвращаем ErrAlreadyInCart.
// Уникальный индекс в БД страхует от гонки двух вкладок.
func (r *CartRepository) Add(ctx context.Context, userID, courseID uuid.UUID) (*domain.CartItem, error) {
	var existing domain.CartItem
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&existing).Error
	if err == nil {
		return nil, domain.ErrAlreadyInCart
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item := &domain.CartItem{
		ID:       uuid.New(),
		UserID:   userID,
		CourseID: courseID,
	}
	if err := r.db.WithContext(ctx).Omit("Course").Create(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// Remove удаляет позицию корзины, но только свою (скоуп по user_id).
func (r *CartRepository) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&domain.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("user_id = ?", userID).
		Find(&items).Error
	return items, err
}

// CountByUser — счетчик для бейджа корзины в шапке.
func (r *CartRepository) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CartItem{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
