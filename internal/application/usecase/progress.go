package usecase

import (
	"context"

	"coursemarket/internal/domain"
	"coursemarket/internal/infrastructure/repository"

	"github.com/google/uuid"
)

type ProgressUseCase struct {
	progressRepo *repository.ProgressRepository
}

func NewProgressUseCase(pr *repository.ProgressRepository) *ProgressUseCase {
	return &ProgressUseCase{progressRepo: pr}
}

func (uc *ProgressUseCase) List(ctx context.Context, userID uuid.UUID) ([]domain.CourseProgress, error) {
	return uc.progressRepo.ListByUser(ctx, userID)
}

// MarkProgress пишет новый процент прохождения. Процент зажимается в [0, 100],
// completed_lectures пересчитывается как floor(pct/100 * total_lectures).
// Откат прогресса назад разрешен: пользователь может пересматривать лекции заново.
func (uc *ProgressUseCase) MarkProgress(ctx context.Context, userID, courseID uuid.UUID, percentage int) (*domain.CourseProgress, error) {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}

	progress, err := uc.progressRepo.GetByUserAndCourse(ctx, userID, courseID)
	if err != nil {
		return nil, err
	}

	completed := percentage * progress.Course.TotalLectures / 100

	if err := uc.progressRepo.UpdateProgress(ctx, userID, courseID, percentage, completed); err != nil {
		return nil, err
	}

	return uc.progressRepo.GetByUserAndCourse(ctx, userID, courseID)
}
