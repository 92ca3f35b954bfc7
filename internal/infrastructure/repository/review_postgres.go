package repository

import (
	"context"

	"coursemarket/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Upsert: второй отзыв того же пользователя на тот же курс перезаписывает первый.
func (r *ReviewRepository) Upsert(ctx context.Context, review *domain.CourseReview) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"rating", "review_text", "updated_at"}),
		}).
		Create(review).Error
}

func (r *ReviewRepository) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.CourseReview, error) {
	var reviews []domain.CourseReview
	err := r.db.WithContext(ctx).
		Where("course_id = ?", courseID).
		Order("updated_at desc").
		Find(&reviews).Error
	return reviews, err
}

func (r *ReviewRepository) GetByUserAndCourse(ctx context.Context, userID, courseID uuid.UUID) (*domain.CourseReview, error) {
	var review domain.CourseReview
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}
