package food

import (
	"FoodShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	FoodRepository interface {
		AddFoodLog(ctx context.Context, foodLog *entities.FoodLog) error
		GetFoodLogByID(ctx context.Context, id string) (*entities.FoodLog, error)
		UpdateFoodLog(ctx context.Context, foodLog *entities.FoodLog) error
		DeleteFoodLog(ctx context.Context, id string) error
		GetFoodLogs(ctx context.Context, userID string, status string, page, limit int) ([]*entities.FoodLog, int64, error)

		AddCategory(ctx context.Context, category *entities.FoodCategory) error
		GetCategoryByID(ctx context.Context, id string) (*entities.FoodCategory, error)
		GetCategories(ctx context.Context) ([]*entities.FoodCategory, error)
		UpdateCategory(ctx context.Context, category *entities.FoodCategory) error
		DeleteCategory(ctx context.Context, id string) error
	}

	foodRepository struct {
		db *gorm.DB
	}
)

func NewFoodRepository(db *gorm.DB) FoodRepository {
	return &foodRepository{db: db}
}

func (r *foodRepository) AddFoodLog(ctx context.Context, foodLog *entities.FoodLog) error {
	return r.db.WithContext(ctx).Create(foodLog).Error
}

func (r *foodRepository) GetFoodLogByID(ctx context.Context, id string) (*entities.FoodLog, error) {
	var foodLog entities.FoodLog
	if err := r.db.WithContext(ctx).
		Preload("Category").
		Where("id = ?", id).
		First(&foodLog).Error; err != nil {
		return nil, err
	}
	return &foodLog, nil
}

func (r *foodRepository) UpdateFoodLog(ctx context.Context, foodLog *entities.FoodLog) error {
	return r.db.WithContext(ctx).Save(foodLog).Error
}

func (r *foodRepository) DeleteFoodLog(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodLog{}).Error
}

// GetFoodLogs lists food logs newest first. An empty userID lists every
// user's logs; an empty or "all" status skips the status filter.
func (r *foodRepository) GetFoodLogs(ctx context.Context, userID string, status string, page, limit int) ([]*entities.FoodLog, int64, error) {
	var foodLogs []*entities.FoodLog
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.FoodLog{})

	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	if status != "all" && status != "" {
		query = query.Where("status = ?", status)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Category").
		Offset(offset).Limit(limit).
		Order("created_at desc").
		Find(&foodLogs).Error; err != nil {
		return nil, 0, err
	}

	return foodLogs, count, nil
}

func (r *foodRepository) AddCategory(ctx context.Context, category *entities.FoodCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *foodRepository) GetCategoryByID(ctx context.Context, id string) (*entities.FoodCategory, error) {
	var category entities.FoodCategory
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *foodRepository) GetCategories(ctx context.Context) ([]*entities.FoodCategory, error) {
	var categories []*entities.FoodCategory
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *foodRepository) UpdateCategory(ctx context.Context, category *entities.FoodCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *foodRepository) DeleteCategory(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.FoodCategory{}).Error
}
