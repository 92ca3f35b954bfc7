package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"coursemarket/internal/domain"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const listVersionKey = "courses:list:ver"

type CourseRepository struct {
	db  *gorm.DB
	rdb *redis.Client
}

// rdb может быть nil — тогда работаем без кеша (тесты, локальный запуск без Redis).
func NewCourseRepository(db *gorm.DB, rdb *redis.Client) *CourseRepository {
	return &CourseRepository{db: db, rdb: rdb}
}

// === КЕШИРУЕМ СПИСОК КУРСОВ ===
// Ключ списка включает версию каталога: мутация каталога поднимает версию,
// и все старые списки перестают находиться, не дожидаясь TTL.
func (r *CourseRepository) List(ctx context.Context, search, category string, limit, offset int) ([]domain.Course, int64, error) {
	key := fmt.Sprintf("courses:list:%s:%s:%s:%d:%d", r.listVersion(ctx), search, category, limit, offset)

	// 1. Читаем из кеша
	if r.rdb != nil {
		val, err := r.rdb.Get(ctx, key).Result()
		if err == nil {
			var result struct {
				Courses []domain.Course
				Total   int64
			}
			if json.Unmarshal([]byte(val), &result) == nil {
				return result.Courses, result.Total, nil
			}
		}
	}

	// 2. Читаем из БД
	var courses []domain.Course
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Course{})
	if search != "" {
		// LOWER/LIKE вместо ILIKE: на Postgres то же самое, но работает и на SQLite
		query = query.Where("LOWER(title) LIKE LOWER(?)", "%"+search+"%")
	}
	if category != "" && category != "All" {
		query = query.Where("category = ?", category)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := query.Limit(limit).Offset(offset).Order("created_at desc").Find(&courses).Error; err != nil {
		return nil, 0, err
	}

	// 3. Пишем в кеш на 10 минут (курсы добавляются не часто)
	if r.rdb != nil {
		cacheData := struct {
			Courses []domain.Course
			Total   int64
		}{courses, total}

		if data, err := json.Marshal(cacheData); err == nil {
			r.rdb.Set(ctx, key, data, 10*time.Minute)
		}
	}

	return courses, total, nil
}

// === КЕШИРУЕМ ОДИН КУРС (С ЛЕКЦИЯМИ) ===
func (r *CourseRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	key := "course:detail:" + id.String()

	if r.rdb != nil {
		val, err := r.rdb.Get(ctx, key).Result()
		if err == nil {
			var c domain.Course
			if json.Unmarshal([]byte(val), &c) == nil {
				return &c, nil
			}
		}
	}

	var course domain.Course
	err := r.db.WithContext(ctx).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("\"order\" asc")
		}).
		First(&course, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCourseNotFound
	}
	if err != nil {
		return nil, err
	}

	// Кеш детали живет час
	if r.rdb != nil {
		if data, err := json.Marshal(course); err == nil {
			r.rdb.Set(ctx, key, data, 1*time.Hour)
		}
	}

	return &course, nil
}

// GetAll — полный каталог без пагинации (нужен ассистенту для промпта).
func (r *CourseRepository) GetAll(ctx context.Context) ([]domain.Course, error) {
	var courses []domain.Course
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) Create(ctx context.Context, c *domain.Course) error {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return err
	}
	r.invalidateLists(ctx)
	return nil
}

func (r *CourseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := r.db.WithContext(ctx).Delete(&domain.Course{}, "id = ?", id).Error; err != nil {
		return err
	}
	if r.rdb != nil {
		r.rdb.Del(ctx, "course:detail:"+id.String())
	}
	r.invalidateLists(ctx)
	return nil
}

func (r *CourseRepository) listVersion(ctx context.Context) string {
	if r.rdb == nil {
		return "0"
	}
	ver, err := r.rdb.Get(ctx, listVersionKey).Result()
	if err != nil {
		return "0"
	}
	return ver
}

// Инвалидация списков: Redis не удаляет по маске без SCAN, поэтому
// просто поднимаем версию — старые ключи умрут по своему TTL.
func (r *CourseRepository) invalidateLists(ctx context.Context) {
	if r.rdb == nil {
		return
	}
	r.rdb.Incr(ctx, listVersionKey)
}
