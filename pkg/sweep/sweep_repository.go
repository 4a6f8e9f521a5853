package sweep

import (
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/reconcile"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	SweepRepository interface {
		FindExpiredFoodLogs(ctx context.Context, today time.Time) ([]*entities.FoodLog, error)
	}

	sweepRepository struct {
		db *gorm.DB
	}
)

func NewSweepRepository(db *gorm.DB) SweepRepository {
	return &sweepRepository{db: db}
}

// FindExpiredFoodLogs selects every food log past its expiration date that
// has not been fully donated, including logs already marked Expired so a
// re-run can settle any remainder.
func (r *sweepRepository) FindExpiredFoodLogs(ctx context.Context, today time.Time) ([]*entities.FoodLog, error) {
	var foodLogs []*entities.FoodLog

	startOfDay := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())

	if err := r.db.WithContext(ctx).
		Where("status != ?", reconcile.StatusDonated).
		Where("expiration_date IS NOT NULL AND expiration_date < ?", startOfDay).
		Order("expiration_date asc").
		Find(&foodLogs).Error; err != nil {
		return nil, err
	}

	return foodLogs, nil
}
