package donation

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/reconcile"
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	// MultiDonationItem is one (food log, quantity) pair of a batch donation.
	MultiDonationItem struct {
		FoodLogID uuid.UUID
		Quantity  int
	}

	DonationRepository interface {
		CreateCenter(ctx context.Context, center *entities.DonationCenter) error
		GetCenterByID(ctx context.Context, id string) (*entities.DonationCenter, error)
		GetCenters(ctx context.Context) ([]*entities.DonationCenter, error)
		GetNearbyCenters(ctx context.Context, lat, lng, radius float64) ([]*entities.DonationCenter, error)
		UpdateCenter(ctx context.Context, center *entities.DonationCenter) error
		DeleteCenter(ctx context.Context, id string) error

		CreateDonationRecord(ctx context.Context, record *entities.DonationRecord) error
		GetDonationRecordByID(ctx context.Context, id string) (*entities.DonationRecord, error)
		GetDonationRecords(ctx context.Context, userID string, page, limit int) ([]*entities.DonationRecord, int64, error)
		DeleteDonationRecord(ctx context.Context, id string) error

		CreateMultiDonation(ctx context.Context, userID, centerID uuid.UUID, items []MultiDonationItem) ([]*entities.DonationRecord, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) CreateCenter(ctx context.Context, center *entities.DonationCenter) error {
	return r.db.WithContext(ctx).Create(center).Error
}

func (r *donationRepository) GetCenterByID(ctx context.Context, id string) (*entities.DonationCenter, error) {
	var center entities.DonationCenter
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&center).Error; err != nil {
		return nil, err
	}
	return &center, nil
}

func (r *donationRepository) GetCenters(ctx context.Context) ([]*entities.DonationCenter, error) {
	var centers []*entities.DonationCenter
	if err := r.db.WithContext(ctx).Order("name asc").Find(&centers).Error; err != nil {
		return nil, err
	}
	return centers, nil
}

func (r *donationRepository) GetNearbyCenters(ctx context.Context, lat, lng, radius float64) ([]*entities.DonationCenter, error) {
	var centers []*entities.DonationCenter

	// Uses PostgreSQL's earthdistance extension, installed by the migration:
	// CREATE EXTENSION IF NOT EXISTS "earthdistance" CASCADE;
	// CREATE EXTENSION IF NOT EXISTS "cube";
	query := `
		SELECT *,
		       earth_distance(ll_to_earth(?, ?), ll_to_earth(latitude, longitude)) as distance
		FROM donation_centers
		WHERE earth_box(ll_to_earth(?, ?), ?) @> ll_to_earth(latitude, longitude)
		ORDER BY distance ASC
	`

	// radius in km, the extension works in meters
	radiusMeters := radius * 1000

	if err := r.db.WithContext(ctx).Raw(query, lat, lng, lat, lng, radiusMeters).Scan(&centers).Error; err != nil {
		return nil, err
	}

	return centers, nil
}

func (r *donationRepository) UpdateCenter(ctx context.Context, center *entities.DonationCenter) error {
	return r.db.WithContext(ctx).Save(center).Error
}

func (r *donationRepository) DeleteCenter(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.DonationCenter{}).Error
}

// CreateDonationRecord commits one donation inside a transaction: the food
// log row is locked, availability is re-checked under the lock and the
// derived status is persisted together with the record. A concurrent request
// that drained the balance first makes this one fail with
// domain.ErrInsufficientQuantity and nothing is written.
func (r *donationRepository) CreateDonationRecord(ctx context.Context, record *entities.DonationRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		foodLog, err := lockFoodLog(tx, record.FoodLogID)
		if err != nil {
			return err
		}

		if err := checkAndCreateDonation(tx, foodLog, record); err != nil {
			return err
		}

		return reconcileFoodLogTx(tx, foodLog)
	})
}

func (r *donationRepository) GetDonationRecordByID(ctx context.Context, id string) (*entities.DonationRecord, error) {
	var record entities.DonationRecord
	if err := r.db.WithContext(ctx).
		Preload("Center").
		Preload("FoodLog").
		Where("id = ?", id).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *donationRepository) GetDonationRecords(ctx context.Context, userID string, page, limit int) ([]*entities.DonationRecord, int64, error) {
	var records []*entities.DonationRecord
	var count int64

	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.DonationRecord{})
	if userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Center").
		Preload("FoodLog").
		Order("created_at desc").
		Offset(offset).Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, count, nil
}

func (r *donationRepository) DeleteDonationRecord(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.DonationRecord{}).Error
}

// CreateMultiDonation commits a batch of donations against one center as a
// single transaction. Availability is re-checked per item under a row lock;
// any failure rolls back the whole batch. Records come back in input order.
func (r *donationRepository) CreateMultiDonation(ctx context.Context, userID, centerID uuid.UUID, items []MultiDonationItem) ([]*entities.DonationRecord, error) {
	records := make([]*entities.DonationRecord, 0, len(items))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range items {
			foodLog, err := lockFoodLog(tx, item.FoodLogID)
			if err != nil {
				return err
			}

			record := &entities.DonationRecord{
				ID:        uuid.New(),
				UserID:    userID,
				CenterID:  centerID,
				FoodLogID: item.FoodLogID,
				Quantity:  item.Quantity,
			}

			if err := checkAndCreateDonation(tx, foodLog, record); err != nil {
				return err
			}

			if err := reconcileFoodLogTx(tx, foodLog); err != nil {
				return err
			}

			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func lockFoodLog(tx *gorm.DB, foodLogID uuid.UUID) (*entities.FoodLog, error) {
	var foodLog entities.FoodLog
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", foodLogID).
		First(&foodLog).Error; err != nil {
		return nil, err
	}
	return &foodLog, nil
}

func checkAndCreateDonation(tx *gorm.DB, foodLog *entities.FoodLog, record *entities.DonationRecord) error {
	donated, wasted, err := quantitySumsTx(tx, foodLog.ID)
	if err != nil {
		return err
	}

	available, err := reconcile.AvailableQuantity(foodLog.Quantity, donated, wasted)
	if err != nil {
		return err
	}
	if record.Quantity > available {
		return domain.ErrInsufficientQuantity
	}

	return tx.Create(record).Error
}

// reconcileFoodLogTx re-derives the status from the sums visible inside the
// transaction so the record and the status change commit or roll back as one.
func reconcileFoodLogTx(tx *gorm.DB, foodLog *entities.FoodLog) error {
	donated, wasted, err := quantitySumsTx(tx, foodLog.ID)
	if err != nil {
		return err
	}

	status, err := reconcile.DeriveStatus(foodLog.Quantity, donated, wasted, foodLog.ExpirationDate, time.Now())
	if err != nil {
		return err
	}

	if status == foodLog.Status {
		return nil
	}

	return tx.Model(&entities.FoodLog{}).
		Where("id = ?", foodLog.ID).
		Update("status", status).Error
}

func quantitySumsTx(tx *gorm.DB, foodLogID uuid.UUID) (int, int, error) {
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
