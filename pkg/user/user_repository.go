package user

import (
	"FoodShare-Backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByID(ctx context.Context, id string) (*entities.User, error)
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		UpdateUser(ctx context.Context, user *entities.User) error
		DeleteUser(ctx context.Context, id string) error

		CountFoodLogs(ctx context.Context, userID string) (int64, error)
		CountWasteLogs(ctx context.Context, userID string) (int64, error)
		CountDonations(ctx context.Context, userID string) (int64, error)
		RecentFoodLogs(ctx context.Context, userID string, limit int) ([]*entities.FoodLog, error)
		RecentWasteLogs(ctx context.Context, userID string, limit int) ([]*entities.WasteLog, error)
		RecentDonations(ctx context.Context, userID string, limit int) ([]*entities.DonationRecord, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

// DeleteUser removes the account; cascade delete takes the user's food logs,
// donations and waste logs with it.
func (r *userRepository) DeleteUser(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.User{}).Error
}

func (r *userRepository) CountFoodLogs(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.FoodLog{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userRepository) CountWasteLogs(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.WasteLog{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userRepository) CountDonations(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.DonationRecord{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *userRepository) RecentFoodLogs(ctx context.Context, userID string, limit int) ([]*entities.FoodLog, error) {
	var foodLogs []*entities.FoodLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&foodLogs).Error; err != nil {
		return nil, err
	}
	return foodLogs, nil
}

func (r *userRepository) RecentWasteLogs(ctx context.Context, userID string, limit int) ([]*entities.WasteLog, error) {
	var wasteLogs []*entities.WasteLog
	if err := r.db.WithContext(ctx).
		Preload("FoodLog").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&wasteLogs).Error; err != nil {
		return nil, err
	}
	return wasteLogs, nil
}

func (r *userRepository) RecentDonations(ctx context.Context, userID string, limit int) ([]*entities.DonationRecord, error) {
	var records []*entities.DonationRecord
	if err := r.db.WithContext(ctx).
		Preload("FoodLog").
		Preload("Center").
		Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
