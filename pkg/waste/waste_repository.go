package waste

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/reconcile"
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	WasteRepository interface {
		CreateWasteLog(ctx context.Context, wasteLog *entities.WasteLog) error
		GetWasteLogByID(ctx context.Context, id string) (*entities.WasteLog, error)
		GetWasteLogs(ctx context.Context, userID string, page, limit int) ([]*entities.WasteLog, int64, error)
		DeleteWasteLog(ctx context.Context, id string) error
	}

	wasteRepository struct {
		db *gorm.DB
	}
)

func NewWasteRepository(db *gorm.DB) WasteRepository {
	return &wasteRepository{db: db}
}

// CreateWasteLog commits the waste entry. When a food log is referenced the
// row is locked, the availability cap is re-checked under the lock (waived
// once the log is expired) and the derived status is persisted in the same
// transaction. Ad-hoc entries without a reference are a plain insert.
func (r *wasteRepository) CreateWasteLog(ctx context.Context, wasteLog *entities.WasteLog) error {
	if wasteLog.FoodLogID == nil {
		return r.db.WithContext(ctx).Create(wasteLog).Error
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var foodLog entities.FoodLog
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", *wasteLog.FoodLogID).
			First(&foodLog).Error; err != nil {
			return err
		}

		now := time.Now()
		donated, wasted, err := quantitySumsTx(tx, foodLog.ID.String())
		if err != nil {
			return err
		}

		expired := foodLog.ExpirationDate != nil &&
			dateOnly(*foodLog.ExpirationDate).Before(dateOnly(now))

		// Expired stock may be over-reported as waste; unexpired stock is
		// capped at whatever is still available.
		if !expired {
			available, err := reconcile.AvailableQuantity(foodLog.Quantity, donated, wasted)
			if err != nil {
				return err
			}
			if wasteLog.Quantity > available {
				return domain.ErrInsufficientQuantity
			}
		}

		if err := tx.Create(wasteLog).Error; err != nil {
			return err
		}

		status, err := reconcile.DeriveStatus(
			foodLog.Quantity, donated, wasted+wasteLog.Quantity, foodLog.ExpirationDate, now,
		)
		if err != nil {
			return err
		}

		if status == foodLog.Status {
			return nil
		}

		return tx.Model(&entities.FoodLog{}).
			Where("id = ?", foodLog.ID).
			Update("status", status).Error
	})
}

func (r *wasteRepository) GetWasteLogByID(ctx context.Context, id string) (*entities.WasteLog, error) {
	var wasteLog entities.WasteLog
	if err := r.db.WithContext(ctx).
		Preload("FoodLog").
		Where("id = ?", id).
		First(&wasteLog).Error; err != nil {
		return nil, err
	}
	return &wasteLog, nil
}

func (r *wasteRepository) GetWasteLogs(ctx context.Context, userID string, page, limit int) ([]*entities.WasteLog, int64, error) {
	var wasteLogs []*entities.WasteLog
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.WasteLog{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("FoodLog").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&wasteLogs).Error; err != nil {
		return nil, 0, err
	}

	return wasteLogs, count, nil
}

func (r *wasteRepository) DeleteWasteLog(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.WasteLog{}).Error
}

func quantitySumsTx(tx *gorm.DB, foodLogID string) (int, int, error) {
	var donated, wasted int64

	if err := tx.Model(&entities.DonationRecord{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("food_log_id = ?", foodLogID).
		Scan(&donated).Error; err != nil {
		return 0, 0, err
	}

	if err := tx.Model(&entities.WasteLog{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("food_log_id = ?", foodLogID).
		Scan(&wasted).Error; err != nil {
		return 0, 0, err
	}

	return int(donated), int(wasted), nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
