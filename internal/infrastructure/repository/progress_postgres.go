package repository

import (
	"context"
	"errors"
	"time"

	"coursemarket/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

func (r *ProgressRepository) GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*domain.CourseProgress, error) {
	var progress domain.CourseProgress
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotEnrolled
	}
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *ProgressRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CourseProgress, error) {
	var progress []domain.CourseProgress
	err := r.db.WithContext(ctx).
		Preload("Course").
		Where("user_id = ?", userID).
		Order("last_accessed desc"). // Сначала последние открытые
		Find(&progress).Error
	return progress, err
}

// UpdateProgress пишет процент и пересчитанное число лекций, обновляет last_accessed.
func (r *ProgressRepository) UpdateProgress(ctx context.Context, userID, courseID uuid.UUID, percentage, completedLectures int) error {
	result := r.db.WithContext(ctx).Model(&domain.CourseProgress{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Updates(map[string]interface{}{
			"progress_percentage": percentage,
			"completed_lectures":  completedLectures,
			"last_accessed":       time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotEnrolled
	}
	return nil
}

// HasProgress — куплен ли курс (нужно для отзывов: отзыв только на купленный курс).
func (r *ProgressRepository) HasProgress(ctx context.Context, userID, courseID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CourseProgress{}).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Count(&count).Error
	return count > 0, err
}
