package usecase

import (
	"fmt"
	"testing"

	"coursemarket/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB поднимает изолированную in-memory SQLite на тест.
// cache=shared нужен, чтобы пул соединений gorm смотрел в одну и ту же базу.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Course{},
		&domain.Lesson{},
		&domain.CartItem{},
		&domain.Purchase{},
		&domain.CourseProgress{},
		&domain.CourseReview{},
		&domain.ContactMessage{},
	))

	return db
}

func seedCourse(t *testing.T, db *gorm.DB, title string, price, lectures int) domain.Course {
	t.Helper()

	course := domain.Course{
		ID:            uuid.New(),
		Title:         title,
		Price:         price,
		Category:      "Programming",
		TotalLectures: lectures,
		DurationHours: 10,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}
