package usecase

import (
	"context"

	"coursemarket/internal/domain"
	"coursemarket/internal/infrastructure/repository"

	"github.com/google/uuid"
)

type ReviewUseCase struct {
	reviewRepo   *repository.ReviewRepository
	progressRepo *repository.ProgressRepository
}

func NewReviewUseCase(rr *repository.ReviewRepository, pr *repository.ProgressRepository) *ReviewUseCase {
	return &ReviewUseCase{reviewRepo: rr, progressRepo: pr}
}

// SubmitReview — один отзыв на пару (user, course), повтор перезаписывает.
// Оценка строго 1..5, отзыв только на купленный курс.
func (uc *ReviewUseCase) SubmitReview(ctx context.Context, userID, courseID uuid.UUID, rating int, text string) error {
	if rating < 1 || rating > 5 {
		return domain.ErrInvalidRating
	}

	enrolled, err := uc.progressRepo.HasProgress(ctx, userID, courseID)
	if err != nil {
		return err
	}
	if !enrolled {
		return domain.ErrNotEnrolled
	}

	review := &domain.CourseReview{
		ID:         uuid.New(),
		UserID:     userID,
		CourseID:   courseID,
		Rating:     rating,
		ReviewText: text,
	}
	return uc.reviewRepo.Upsert(ctx, review)
}

func (uc *ReviewUseCase) ListByCourse(ctx context.Context, courseID uuid.UUID) ([]domain.CourseReview, error) {
	return uc.reviewRepo.ListByCourse(ctx, courseID)
}
