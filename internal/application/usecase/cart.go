package usecase

import (
	"context"

	"coursemarket/internal/domain"
	"coursemarket/internal/infrastructure/repository"

	"github.com/google/uuid"
)

type CartUseCase struct {
	cartRepo   *repository.CartRepository
	courseRepo *repository.CourseRepository
}

func NewCartUseCase(cr *repository.CartRepository, co *repository.CourseRepository) *CartUseCase {
	return &CartUseCase{cartRepo: cr, courseRepo: co}
}

// Add кладет курс в корзину. Повторное добавление того же курса — ErrAlreadyInCart,
// в корзине остается ровно одна позиция.
func (uc *CartUseCase) Add(ctx context.Context, userID, courseID uuid.UUID) (*domain.CartItem, error) {
	// Курс должен существовать в каталоге
	if _, err := uc.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return uc.cartRepo.Add(ctx, userID, courseID)
}

func (uc *CartUseCase) Remove(ctx context.Context, userID, itemID uuid.UUID) error {
	return uc.cartRepo.Remove(ctx, userID, itemID)
}

func (uc *CartUseCase) List(ctx context.Context, userID uuid.UUID) ([]domain.CartItem, int, error) {
	items, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return items, domain.ComputeTotal(items), nil
}

func (uc *CartUseCase) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	return uc.cartRepo.CountByUser(ctx, userID)
}
