package waste

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/reconcile"
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	WasteService interface {
		AddWasteLog(ctx context.Context, req domain.AddWasteLogRequest, userID string) (*domain.WasteLogResponse, error)
		GetWasteLogs(ctx context.Context, userID string, page, limit int) ([]*domain.WasteLogResponse, int64, error)
		DeleteWasteLog(ctx context.Context, id string, userID string) error
	}

	wasteService struct {
		wasteRepository WasteRepository
		engine          reconcile.Engine
	}
)

func NewWasteService(wasteRepository WasteRepository, engine reconcile.Engine) WasteService {
	return &wasteService{
		wasteRepository: wasteRepository,
		engine:          engine,
	}
}

func (s *wasteService) AddWasteLog(ctx context.Context, req domain.AddWasteLogRequest, userID string) (*domain.WasteLogResponse, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	var foodLogID *uuid.UUID
	if req.FoodLogID != "" {
		parsed, err := uuid.Parse(req.FoodLogID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		foodLogID = &parsed
	}

	reason := req.Reason
	if reason == "" {
		reason = domain.DefaultWasteReason
	}

	wasteLog := &entities.WasteLog{
		ID:        uuid.New(),
		UserID:    userUUID,
		FoodLogID: foodLogID,
		Quantity:  req.Quantity,
		Reason:    reason,
	}

	if err := s.wasteRepository.CreateWasteLog(ctx, wasteLog); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodLogNotFound
		}
		return nil, err
	}

	created, err := s.wasteRepository.GetWasteLogByID(ctx, wasteLog.ID.String())
	if err != nil {
		return nil, err
	}

	return toResponse(created), nil
}

func (s *wasteService) GetWasteLogs(ctx context.Context, userID string, page, limit int) ([]*domain.WasteLogResponse, int64, error) {
	wasteLogs, count, err := s.wasteRepository.GetWasteLogs(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.WasteLogResponse, 0, len(wasteLogs))
	for _, wasteLog := range wasteLogs {
		result = append(result, toResponse(wasteLog))
	}
	return result, count, nil
}

// DeleteWasteLog removes the entry and re-derives the referenced food log's
// status. Ad-hoc entries reference nothing, so there is nothing to reconcile.
func (s *wasteService) DeleteWasteLog(ctx context.Context, id string, userID string) error {
	wasteLog, err := s.wasteRepository.GetWasteLogByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrWasteLogNotFound
		}
		return err
	}

	if wasteLog.UserID.String() != userID {
		return domain.ErrUnauthorizedWasteAccess
	}

	if err := s.wasteRepository.DeleteWasteLog(ctx, id); err != nil {
		return err
	}

	if wasteLog.FoodLogID == nil {
		return nil
	}

	_, err = s.engine.Reconcile(ctx, wasteLog.FoodLogID.String())
	return err
}

func toResponse(wasteLog *entities.WasteLog) *domain.WasteLogResponse {
	res := &domain.WasteLogResponse{
		ID:         wasteLog.ID.String(),
		UserID:     wasteLog.UserID.String(),
		Quantity:   wasteLog.Quantity,
		Reason:     wasteLog.Reason,
		DateLogged: wasteLog.CreatedAt,
	}

	if wasteLog.FoodLogID != nil {
		res.FoodLogID = wasteLog.FoodLogID.String()
	}
	if wasteLog.FoodLog != nil {
		res.FoodName = wasteLog.FoodLog.FoodName
	}

	return res
}
