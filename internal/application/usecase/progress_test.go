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

// покупаем курс через полный чекаут, чтобы прогресс появился как в проде
func enroll(t *testing.T, db *gorm.DB, userID uuid.UUID, course domain.Course) {
	t.Helper()
	ctx := context.Background()

	cartUC := newCartUseCase(db)
	_, err := cartUC.Add(ctx, userID, course.ID)
	require.NoError(t, err)

	_, err = newCheckoutUseCase(db).Checkout(ctx, userID, domain.PaymentMethodUPI, domain.PaymentDetails{UPIID: "user@bank"})
	require.NoError(t, err)
}

func TestMarkProgress_ClampsAndRecomputes(t *testing.T) {
	db := newTestDB(t)
	uc := NewProgressUseCase(repository.NewProgressRepository(db))
	ctx := context.Background()

	userID := uuid.New()
	course := seedCourse(t, db, "Go Basics", 499, 20)
	enroll(t, db, userID, course)

	// 50% от 20 лекций = 10
	p, err := uc.MarkProgress(ctx, userID, course.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, p.ProgressPercentage)
	assert.Equal(t, 10, p.CompletedLectures)

	// Выше 100 зажимается
	p, err = uc.MarkProgress(ctx, userID, course.ID, 250)
	require.NoError(t, err)
	assert.Equal(t, 100, p.ProgressPercentage)
	assert.Equal(t, 20, p.CompletedLectures)

	// Ниже 0 зажимается; откат назад разрешен
	p, err = uc.MarkProgress(ctx, userID, course.ID, -5)
	require.NoError(t, err)
	assert.Equal(t, 0, p.ProgressPercentage)
	assert.Equal(t, 0, p.CompletedLectures)
}

func TestMarkProgress_FloorsLectureCount(t *testing.T) {
	db := newTestDB(t)
	uc := NewProgressUseCase(repository.NewProgressRepository(db))
	ctx := context.Background()

	userID := uuid.New()
	course := seedCourse(t, db, "Odd Lectures", 299, 7)
	enroll(t, db, userID, course)

	// floor(33/100 * 7) = 2
	p, err := uc.MarkProgress(ctx, userID, course.ID, 33)
	require.NoError(t, err)
	assert.Equal(t, 2, p.CompletedLectures)
}

func TestMarkProgress_NotEnrolled(t *testing.T) {
	db := newTestDB(t)
	uc := NewProgressUseCase(repository.NewProgressRepository(db))

	course := seedCourse(t, db, "Go Basics", 499, 20)
	_, err := uc.MarkProgress(context.Background(), uuid.New(), course.ID, 50)
	assert.ErrorIs(t, err, domain.ErrNotEnrolled)
}

func TestProgressList(t *testing.T) {
	db := newTestDB(t)
	uc := NewProgressUseCase(repository.NewProgressRepository(db))
	ctx := context.Background()

	userID := uuid.New()
	course := seedCourse(t, db, "Go Basics", 499, 20)
	enroll(t, db, userID, course)

	list, err := uc.List(ctx, userID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, course.ID, list[0].CourseID)
	assert.Equal(t, course.Title, list[0].Course.Title)
}
