package reconcile

import (
	"FoodShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	// LedgerRepository is the persistence surface the engine needs: the food
	// log itself and the live disposition sums. There is no stored counter to
	// keep in sync; sums are always read from the child records.
	LedgerRepository interface {
		GetFoodLogByID(ctx context.Context, id string) (*entities.FoodLog, error)
		QuantitySums(ctx context.Context, foodLogID string) (donated int, wasted int, err error)
		UpdateFoodLogStatus(ctx context.Context, foodLogID string, status string) error
	}

	ledgerRepository struct {
		db *gorm.DB
	}
)

func NewLedgerRepository(db *gorm.DB) LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) GetFoodLogByID(ctx context.Context, id string) (*entities.FoodLog, error) {
	var foodLog entities.FoodLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&foodLog).Error; err != nil {
		return nil, err
	}
	return &foodLog, nil
}

func (r *ledgerRepository) QuantitySums(ctx context.Context, foodLogID string) (int, int, error) {
	var donated, wasted int64

	if err := r.db.WithContext(ctx).
		Model(&entities.DonationRecord{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("food_log_id = ?", foodLogID).
		Scan(&donated).Error; err != nil {
		return 0, 0, err
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.WasteLog{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("food_log_id = ?", foodLogID).
		Scan(&wasted).Error; err != nil {
		return 0, 0, err
	}

	return int(donated), int(wasted), nil
}

func (r *ledgerRepository) UpdateFoodLogStatus(ctx context.Context, foodLogID string, status string) error {
	return r.db.WithContext(ctx).
		Model(&entities.FoodLog{}).
		Where("id = ?", foodLogID).
		Update("status", status).Error
}
