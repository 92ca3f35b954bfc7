package usecase

import (
	"context"
	"fmt"
	"time"

	"coursemarket/internal/domain"
	"coursemarket/internal/infrastructure/repository"

	"github.com/google/uuid"
)

type CheckoutUseCase struct {
	cartRepo     *repository.CartRepository
	checkoutRepo *repository.CheckoutRepository
	purchaseRepo *repository.PurchaseRepository
}

func NewCheckoutUseCase(
	cart *repository.CartRepository,
	checkout *repository.CheckoutRepository,
	purchase *repository.PurchaseRepository,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:     cart,
		checkoutRepo: checkout,
		purchaseRepo: purchase,
	}
}

// Checkout превращает корзину в покупку:
// 1. Проверка реквизитов (до любых записей в БД).
// 2. Сумма по текущим ценам корзины.
// 3. Одна транзакция: покупка + прогресс по каждому курсу (0%) + очистка корзины.
func (uc *CheckoutUseCase) Checkout(ctx context.Context, userID uuid.UUID, method string, details domain.PaymentDetails) (*domain.Purchase, error) {
	if !domain.ValidatePaymentDetails(method, details) {
		return nil, domain.ErrInvalidPaymentDetails
	}

	items, err := uc.cartRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCheckoutFailed, err)
	}
	if len(items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	now := time.Now()
	purchase := &domain.Purchase{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        domain.ComputeTotal(items),
		PaymentMethod: method,
		Status:        domain.PurchaseStatusCompleted,
		PurchaseDate:  now,
	}

	progress := make([]domain.CourseProgress, 0, len(items))
	for _, item := range items {
		progress = append(progress, domain.CourseProgress{
			ID:                 uuid.New(),
			UserID:             userID,
			CourseID:           item.CourseID,
			CompletedLectures:  0,
			ProgressPercentage: 0,
			LastAccessed:       now,
			PurchaseDate:       now,
		})
	}

	if err := uc.checkoutRepo.Commit(ctx, purchase, progress, userID); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCheckoutFailed, err)
	}

	return purchase, nil
}

// История покупок для дашборда
func (uc *CheckoutUseCase) ListPurchases(ctx context.Context, userID uuid.UUID) ([]domain.Purchase, error) {
	return uc.purchaseRepo.ListByUser(ctx, userID)
}
