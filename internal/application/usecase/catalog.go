package usecase

import (
	"context"

	"coursemarket/internal/domain"
	"coursemarket/internal/infrastructure/repository"

	"github.com/google/uuid"
)

type CatalogUseCase struct {
	courseRepo *repository.CourseRepository
}

func NewCatalogUseCase(cr *repository.CourseRepository) *CatalogUseCase {
	return &CatalogUseCase{courseRepo: cr}
}

func (uc *CatalogUseCase) List(ctx context.Context, search, category string, limit, offset int) ([]domain.Course, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return uc.courseRepo.List(ctx, search, category, limit, offset)
}

func (uc *CatalogUseCase) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	return uc.courseRepo.GetByID(ctx, id)
}

func (uc *CatalogUseCase) Create(ctx context.Context, course *domain.Course) error {
	if course.ID == uuid.Nil {
		course.ID = uuid.New()
	}
	return uc.courseRepo.Create(ctx, course)
}

func (uc *CatalogUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.courseRepo.Delete(ctx, id)
}
