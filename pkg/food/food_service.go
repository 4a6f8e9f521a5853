package food

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/reconcile"
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	FoodService interface {
		AddFoodLog(ctx context.Context, req domain.AddFoodLogRequest, userID string) (domain.FoodLogResponse, error)
		UpdateFoodLog(ctx context.Context, id string, req domain.UpdateFoodLogRequest, userID string) (domain.FoodLogResponse, error)
		DeleteFoodLog(ctx context.Context, id string, userID string) error
		GetFoodLogByID(ctx context.Context, id string) (domain.FoodLogResponse, error)
		GetFoodLogs(ctx context.Context, userID string, status string, page, limit int) ([]domain.FoodLogResponse, int64, error)

		AddCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error)
		GetCategories(ctx context.Context) ([]domain.CategoryResponse, error)
		UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (domain.CategoryResponse, error)
		DeleteCategory(ctx context.Context, id string) error
	}

	foodService struct {
		foodRepository FoodRepository
		engine         reconcile.Engine
	}
)

func NewFoodService(foodRepository FoodRepository, engine reconcile.Engine) FoodService {
	return &foodService{
		foodRepository: foodRepository,
		engine:         engine,
	}
}

func (s *foodService) AddFoodLog(ctx context.Context, req domain.AddFoodLogRequest, userID string) (domain.FoodLogResponse, error) {
	if req.Quantity <= 0 {
		return domain.FoodLogResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodLogResponse{}, domain.ErrParseUUID
	}

	var expirationDate *time.Time
	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.FoodLogResponse{}, domain.ErrInvalidExpirationDate
		}
		expirationDate = &parsed
	}

	var categoryID *uuid.UUID
	if req.CategoryID != "" {
		category, err := s.foodRepository.GetCategoryByID(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.FoodLogResponse{}, domain.ErrCategoryNotFound
			}
			return domain.FoodLogResponse{}, err
		}
		categoryID = &category.ID
	}

	// A log created with an already-past expiration date starts out Expired.
	status, err := reconcile.DeriveStatus(req.Quantity, 0, 0, expirationDate, time.Now())
	if err != nil {
		return domain.FoodLogResponse{}, err
	}

	foodLog := &entities.FoodLog{
		ID:             uuid.New(),
		UserID:         userUUID,
		FoodName:       req.FoodName,
		Quantity:       req.Quantity,
		CategoryID:     categoryID,
		ExpirationDate: expirationDate,
		Status:         status,
	}

	if err := s.foodRepository.AddFoodLog(ctx, foodLog); err != nil {
		return domain.FoodLogResponse{}, err
	}

	return s.toResponse(ctx, foodLog)
}

func (s *foodService) UpdateFoodLog(ctx context.Context, id string, req domain.UpdateFoodLogRequest, userID string) (domain.FoodLogResponse, error) {
	foodLog, err := s.foodRepository.GetFoodLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodLogResponse{}, domain.ErrFoodLogNotFound
		}
		return domain.FoodLogResponse{}, err
	}

	if foodLog.UserID.String() != userID {
		return domain.FoodLogResponse{}, domain.ErrUnauthorizedFoodAccess
	}

	if req.FoodName != "" {
		foodLog.FoodName = req.FoodName
	}

	// The logged quantity is the ledger's starting balance and stays fixed
	// after creation. Adjustments flow through donation and waste records.

	if req.CategoryID != "" {
		category, err := s.foodRepository.GetCategoryByID(ctx, req.CategoryID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.FoodLogResponse{}, domain.ErrCategoryNotFound
			}
			return domain.FoodLogResponse{}, err
		}
		foodLog.CategoryID = &category.ID
	}

	if req.ExpirationDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpirationDate)
		if err != nil {
			return domain.FoodLogResponse{}, domain.ErrInvalidExpirationDate
		}
		foodLog.ExpirationDate = &parsed
	}

	if err := s.foodRepository.UpdateFoodLog(ctx, foodLog); err != nil {
		return domain.FoodLogResponse{}, err
	}

	// Expiration edits can flip the derived status.
	status, err := s.engine.Reconcile(ctx, id)
	if err != nil {
		return domain.FoodLogResponse{}, err
	}
	foodLog.Status = status

	return s.toResponse(ctx, foodLog)
}

func (s *foodService) DeleteFoodLog(ctx context.Context, id string, userID string) error {
	foodLog, err := s.foodRepository.GetFoodLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodLogNotFound
		}
		return err
	}

	if foodLog.UserID.String() != userID {
		return domain.ErrUnauthorizedFoodAccess
	}

	// Cascade delete removes the disposition records referencing the log.
	return s.foodRepository.DeleteFoodLog(ctx, id)
}

func (s *foodService) GetFoodLogByID(ctx context.Context, id string) (domain.FoodLogResponse, error) {
	foodLog, err := s.foodRepository.GetFoodLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodLogResponse{}, domain.ErrFoodLogNotFound
		}
		return domain.FoodLogResponse{}, err
	}

	return s.toResponse(ctx, foodLog)
}

func (s *foodService) GetFoodLogs(ctx context.Context, userID string, status string, page, limit int) ([]domain.FoodLogResponse, int64, error) {
	foodLogs, count, err := s.foodRepository.GetFoodLogs(ctx, userID, status, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.FoodLogResponse, 0, len(foodLogs))
	for _, foodLog := range foodLogs {
		res, err := s.toResponse(ctx, foodLog)
		if err != nil {
			return nil, 0, err
		}
		result = append(result, res)
	}

	return result, count, nil
}

// toResponse recomputes the ledger balance for every read; availability is
// never served from a stored counter.
func (s *foodService) toResponse(ctx context.Context, foodLog *entities.FoodLog) (domain.FoodLogResponse, error) {
	totals, err := s.engine.Totals(ctx, foodLog.ID.String())
	if err != nil {
		return domain.FoodLogResponse{}, err
	}

	res := domain.FoodLogResponse{
		ID:                foodLog.ID.String(),
		UserID:            foodLog.UserID.String(),
		FoodName:          foodLog.FoodName,
		Quantity:          foodLog.Quantity,
		DateLogged:        foodLog.CreatedAt,
		ExpirationDate:    foodLog.ExpirationDate,
		Status:            foodLog.Status,
		DonatedQuantity:   totals.Donated,
		WastedQuantity:    totals.Wasted,
		AvailableQuantity: totals.Available,
	}

	if foodLog.CategoryID != nil {
		res.CategoryID = foodLog.CategoryID.String()
	}
	if foodLog.Category != nil {
		res.CategoryName = foodLog.Category.Name
	}

	return res, nil
}

func (s *foodService) AddCategory(ctx context.Context, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	category := &entities.FoodCategory{
		ID:   uuid.New(),
		Name: req.Name,
	}

	if err := s.foodRepository.AddCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return domain.CategoryResponse{ID: category.ID.String(), Name: category.Name}, nil
}

func (s *foodService) GetCategories(ctx context.Context) ([]domain.CategoryResponse, error) {
	categories, err := s.foodRepository.GetCategories(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		result = append(result, domain.CategoryResponse{ID: category.ID.String(), Name: category.Name})
	}
	return result, nil
}

func (s *foodService) UpdateCategory(ctx context.Context, id string, req domain.CategoryRequest) (domain.CategoryResponse, error) {
	category, err := s.foodRepository.GetCategoryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CategoryResponse{}, domain.ErrCategoryNotFound
		}
		return domain.CategoryResponse{}, err
	}

	category.Name = req.Name
	if err := s.foodRepository.UpdateCategory(ctx, category); err != nil {
		return domain.CategoryResponse{}, err
	}

	return domain.CategoryResponse{ID: category.ID.String(), Name: category.Name}, nil
}

func (s *foodService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.foodRepository.GetCategoryByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCategoryNotFound
		}
		return err
	}
	return s.foodRepository.DeleteCategory(ctx, id)
}
