package usecase

import (
	"context"
	"testing"

	"coursemarket/internal/domain"
	"coursemarket/internal/infrastructure/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newReviewUseCase(db *gorm.DB) *ReviewUseCase {
	return NewReviewUseCase(
		repository.NewReviewRepository(db),
		repository.NewProgressRepository(db),
	)
}

func TestSubmitReview_RatingBounds(t *testing.T) {
	db := newTestDB(t)
	uc := newReviewUseCase(db)
	ctx := context.Background()

	userID := uuid.New()
	course := seedCourse(t, db, "Go Basics", 499, 20)
	enroll(t, db, userID, course)

	assert.ErrorIs(t, uc.SubmitReview(ctx, userID, course.ID, 0, "bad"), domain.ErrInvalidRating)
	assert.ErrorIs(t, uc.SubmitReview(ctx, userID, course.ID, 6, "too good"), domain.ErrInvalidRating)
	assert.NoError(t, uc.SubmitReview(ctx, userID, course.ID, 5, "great"))
}

func TestSubmitReview_RequiresEnrollment(t *testing.T) {
	db := newTestDB(t)
	uc := newReviewUseCase(db)

	course := seedCourse(t, db, "Go Basics", 499, 20)
	err := uc.SubmitReview(context.Background(), uuid.New(), course.ID, 4, "nice")
	assert.ErrorIs(t, err, domain.ErrNotEnrolled)
}

// Повторная отправка перезаписывает отзыв, строка остается одна
func TestSubmitReview_UpsertIdempotent(t *testing.T) {
	db := newTestDB(t)
	uc := newReviewUseCase(db)
	ctx := context.Background()

	userID := uuid.New()
	course := seedCourse(t, db, "Go Basics", 499, 20)
	enroll(t, db, userID, course)

	require.NoError(t, uc.SubmitReview(ctx, userID, course.ID, 3, "ok"))
	require.NoError(t, uc.SubmitReview(ctx, userID, course.ID, 5, "changed my mind"))

	reviews, err := uc.ListByCourse(ctx, course.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "changed my mind", reviews[0].ReviewText)
}
