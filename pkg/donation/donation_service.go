package donation

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/food"
	"FoodShare-Backend/pkg/reconcile"
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		CreateCenter(ctx context.Context, req domain.DonationCenterRequest) (*domain.DonationCenterResponse, error)
		GetCenters(ctx context.Context, lat, lng, radius float64) ([]*domain.DonationCenterResponse, error)
		UpdateCenter(ctx context.Context, id string, req domain.DonationCenterRequest) (*domain.DonationCenterResponse, error)
		DeleteCenter(ctx context.Context, id string) error

		CreateDonation(ctx context.Context, req domain.DonationRequest, userID string) (*domain.DonationResponse, error)
		GetDonationByID(ctx context.Context, id string, userID string) (*domain.DonationResponse, error)
		GetDonations(ctx context.Context, userID string, page, limit int) ([]*domain.DonationResponse, int64, error)
		DeleteDonation(ctx context.Context, id string, userID string) error

		CreateMultiDonation(ctx context.Context, req domain.MultiDonationRequest, userID string) ([]*domain.DonationResponse, error)
	}

	donationService struct {
		donationRepository DonationRepository
		foodRepository     food.FoodRepository
		engine             reconcile.Engine
	}
)

func NewDonationService(donationRepository DonationRepository, foodRepository food.FoodRepository, engine reconcile.Engine) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		foodRepository:     foodRepository,
		engine:             engine,
	}
}

func (s *donationService) CreateCenter(ctx context.Context, req domain.DonationCenterRequest) (*domain.DonationCenterResponse, error) {
	center := &entities.DonationCenter{
		ID:            uuid.New(),
		Name:          req.Name,
		Address:       req.Address,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		ContactNumber: req.ContactNumber,
		Email:         req.Email,
	}

	if err := s.donationRepository.CreateCenter(ctx, center); err != nil {
		return nil, err
	}

	return centerToResponse(center), nil
}

// GetCenters lists donation centers. When coordinates and a radius are given
// the listing narrows to centers within that radius, nearest first.
func (s *donationService) GetCenters(ctx context.Context, lat, lng, radius float64) ([]*domain.DonationCenterResponse, error) {
	var centers []*entities.DonationCenter
	var err error

	if radius > 0 {
		if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
			return nil, domain.ErrInvalidCoordinates
		}
		centers, err = s.donationRepository.GetNearbyCenters(ctx, lat, lng, radius)
	} else {
		centers, err = s.donationRepository.GetCenters(ctx)
	}
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DonationCenterResponse, 0, len(centers))
	for _, center := range centers {
		res := centerToResponse(center)
		if radius > 0 {
			res.Distance = haversineKm(lat, lng, center.Latitude, center.Longitude)
		}
		result = append(result, res)
	}
	return result, nil
}

func (s *donationService) UpdateCenter(ctx context.Context, id string, req domain.DonationCenterRequest) (*domain.DonationCenterResponse, error) {
	center, err := s.donationRepository.GetCenterByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationCenterNotFound
		}
		return nil, err
	}

	center.Name = req.Name
	center.Address = req.Address
	center.Latitude = req.Latitude
	center.Longitude = req.Longitude
	center.ContactNumber = req.ContactNumber
	center.Email = req.Email

	if err := s.donationRepository.UpdateCenter(ctx, center); err != nil {
		return nil, err
	}

	return centerToResponse(center), nil
}

func (s *donationService) DeleteCenter(ctx context.Context, id string) error {
	if _, err := s.donationRepository.GetCenterByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationCenterNotFound
		}
		return err
	}
	return s.donationRepository.DeleteCenter(ctx, id)
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.DonationRequest, userID string) (*domain.DonationResponse, error) {
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	center, err := s.donationRepository.GetCenterByID(ctx, req.CenterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationCenterNotFound
		}
		return nil, err
	}

	foodLogUUID, err := uuid.Parse(req.FoodLogID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	foodLog, err := s.foodRepository.GetFoodLogByID(ctx, req.FoodLogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodLogNotFound
		}
		return nil, err
	}
	if foodLog.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedFoodAccess
	}

	totals, err := s.engine.Totals(ctx, req.FoodLogID)
	if err != nil {
		return nil, err
	}
	if req.Quantity > totals.Available {
		return nil, domain.ErrInsufficientQuantity
	}

	record := &entities.DonationRecord{
		ID:        uuid.New(),
		UserID:    userUUID,
		CenterID:  center.ID,
		FoodLogID: foodLogUUID,
		Quantity:  req.Quantity,
	}

	// The repository re-checks availability under a row lock, so a racing
	// donation loses with ErrInsufficientQuantity instead of over-donating.
	if err := s.donationRepository.CreateDonationRecord(ctx, record); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodLogNotFound
		}
		return nil, err
	}

	created, err := s.donationRepository.GetDonationRecordByID(ctx, record.ID.String())
	if err != nil {
		return nil, err
	}

	return recordToResponse(created), nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string, userID string) (*domain.DonationResponse, error) {
	record, err := s.donationRepository.GetDonationRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, err
	}

	if record.UserID.String() != userID {
		return nil, domain.ErrUnauthorizedDonationAccess
	}

	return recordToResponse(record), nil
}

func (s *donationService) GetDonations(ctx context.Context, userID string, page, limit int) ([]*domain.DonationResponse, int64, error) {
	records, count, err := s.donationRepository.GetDonationRecords(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.DonationResponse, 0, len(records))
	for _, record := range records {
		result = append(result, recordToResponse(record))
	}
	return result, count, nil
}

// DeleteDonation removes the record and re-derives the food log's status, so
// the donated quantity flows back into availability.
func (s *donationService) DeleteDonation(ctx context.Context, id string, userID string) error {
	record, err := s.donationRepository.GetDonationRecordByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrDonationNotFound
		}
		return err
	}

	if record.UserID.String() != userID {
		return domain.ErrUnauthorizedDonationAccess
	}

	if err := s.donationRepository.DeleteDonationRecord(ctx, id); err != nil {
		return err
	}

	_, err = s.engine.Reconcile(ctx, record.FoodLogID.String())
	return err
}

// CreateMultiDonation validates the whole batch first, collecting every
// failure keyed by item position, and only then commits all records in one
// transaction. A commit-time race on any item rolls back the entire batch.
func (s *donationService) CreateMultiDonation(ctx context.Context, req domain.MultiDonationRequest, userID string) ([]*domain.DonationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	center, err := s.donationRepository.GetCenterByID(ctx, req.CenterID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationCenterNotFound
		}
		return nil, err
	}

	items := make([]MultiDonationItem, 0, len(req.Items))
	itemErrors := make(map[int]string)

	for idx, item := range req.Items {
		if item.Quantity <= 0 {
			itemErrors[idx] = fmt.Sprintf("quantity for food log %s must be positive", item.FoodLogID)
			continue
		}

		foodLogUUID, err := uuid.Parse(item.FoodLogID)
		if err != nil {
			itemErrors[idx] = fmt.Sprintf("invalid food log id %s", item.FoodLogID)
			continue
		}

		foodLog, err := s.foodRepository.GetFoodLogByID(ctx, item.FoodLogID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				itemErrors[idx] = fmt.Sprintf("food log %s not found", item.FoodLogID)
			} else {
				itemErrors[idx] = err.Error()
			}
			continue
		}

		if foodLog.UserID.String() != userID {
			itemErrors[idx] = fmt.Sprintf("food log %s does not belong to the authenticated user", item.FoodLogID)
			continue
		}

		totals, err := s.engine.Totals(ctx, item.FoodLogID)
		if err != nil {
			itemErrors[idx] = err.Error()
			continue
		}

		if item.Quantity > totals.Available {
			itemErrors[idx] = fmt.Sprintf(
				"donation quantity for food log %s cannot exceed available quantity (%d)",
				item.FoodLogID, totals.Available,
			)
			continue
		}

		items = append(items, MultiDonationItem{FoodLogID: foodLogUUID, Quantity: item.Quantity})
	}

	if len(itemErrors) > 0 {
		return nil, &domain.MultiDonationValidationError{Items: itemErrors}
	}

	records, err := s.donationRepository.CreateMultiDonation(ctx, userUUID, center.ID, items)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrFoodLogNotFound
		}
		return nil, err
	}

	result := make([]*domain.DonationResponse, 0, len(records))
	for _, record := range records {
		res := recordToResponse(record)
		res.CenterName = center.Name
		result = append(result, res)
	}
	return result, nil
}

// haversineKm is the great-circle distance in kilometers.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

func centerToResponse(center *entities.DonationCenter) *domain.DonationCenterResponse {
	return &domain.DonationCenterResponse{
		ID:            center.ID.String(),
		Name:          center.Name,
		Address:       center.Address,
		Latitude:      center.Latitude,
		Longitude:     center.Longitude,
		ContactNumber: center.ContactNumber,
		Email:         center.Email,
		CreatedAt:     center.CreatedAt,
	}
}

func recordToResponse(record *entities.DonationRecord) *domain.DonationResponse {
	res := &domain.DonationResponse{
		ID:          record.ID.String(),
		UserID:      record.UserID.String(),
		CenterID:    record.CenterID.String(),
		FoodLogID:   record.FoodLogID.String(),
		Quantity:    record.Quantity,
		DateDonated: record.CreatedAt,
	}

	if record.Center != nil {
		res.CenterName = record.Center.Name
	}
	if record.FoodLog != nil {
		res.FoodLogName = record.FoodLog.FoodName
		res.FoodLogQuantity = record.FoodLog.Quantity
	}

	return res
}
