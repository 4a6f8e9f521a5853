package waste

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"FoodShare-Backend/pkg/reconcile"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeWasteRepository mirrors the cap check the real repository runs under
// its row lock: unexpired logs are capped at availability, expired logs are
// not.
type fakeWasteRepository struct {
	foodLogs  map[string]*entities.FoodLog
	wasteLogs map[string]*entities.WasteLog
}

func newFakeWasteRepository() *fakeWasteRepository {
	return &fakeWasteRepository{
		foodLogs:  make(map[string]*entities.FoodLog),
		wasteLogs: make(map[string]*entities.WasteLog),
	}
}

func (f *fakeWasteRepository) addFoodLog(userID uuid.UUID, quantity int, expiration *time.Time) *entities.FoodLog {
	foodLog := &entities.FoodLog{
		ID:             uuid.New(),
		UserID:         userID,
		FoodName:       "bread",
		Quantity:       quantity,
		ExpirationDate: expiration,
		Status:         reconcile.StatusAvailable,
	}
	f.foodLogs[foodLog.ID.String()] = foodLog
	return foodLog
}

func (f *fakeWasteRepository) wastedSum(foodLogID string) int {
	sum := 0
	for _, wasteLog := range f.wasteLogs {
		if wasteLog.FoodLogID != nil && wasteLog.FoodLogID.String() == foodLogID {
			sum += wasteLog.Quantity
		}
	}
	return sum
}

func (f *fakeWasteRepository) CreateWasteLog(_ context.Context, wasteLog *entities.WasteLog) error {
	if wasteLog.FoodLogID == nil {
		f.wasteLogs[wasteLog.ID.String()] = wasteLog
		return nil
	}

	foodLog, ok := f.foodLogs[wasteLog.FoodLogID.String()]
	if !ok {
		return gorm.ErrRecordNotFound
	}

	now := time.Now()
	expired := foodLog.ExpirationDate != nil && foodLog.ExpirationDate.Before(now.Truncate(24*time.Hour))
	wasted := f.wastedSum(foodLog.ID.String())

	if !expired {
		available, err := reconcile.AvailableQuantity(foodLog.Quantity, 0, wasted)
		if err != nil {
			return err
		}
		if wasteLog.Quantity > available {
			return domain.ErrInsufficientQuantity
		}
	}

	f.wasteLogs[wasteLog.ID.String()] = wasteLog

	status, err := reconcile.DeriveStatus(foodLog.Quantity, 0, wasted+wasteLog.Quantity, foodLog.ExpirationDate, now)
	if err != nil {
		return err
	}
	foodLog.Status = status
	return nil
}

func (f *fakeWasteRepository) GetWasteLogByID(_ context.Context, id string) (*entities.WasteLog, error) {
	wasteLog, ok := f.wasteLogs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return wasteLog, nil
}

func (f *fakeWasteRepository) GetWasteLogs(_ context.Context, userID string, _, _ int) ([]*entities.WasteLog, int64, error) {
	var result []*entities.WasteLog
	for _, wasteLog := range f.wasteLogs {
		if userID == "" || wasteLog.UserID.String() == userID {
			result = append(result, wasteLog)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeWasteRepository) DeleteWasteLog(_ context.Context, id string) error {
	delete(f.wasteLogs, id)
	return nil
}

type wasteFakeEngine struct {
	repo       *fakeWasteRepository
	reconciled []string
}

func (f *wasteFakeEngine) Reconcile(_ context.Context, foodLogID string) (string, error) {
	f.reconciled = append(f.reconciled, foodLogID)
	foodLog, ok := f.repo.foodLogs[foodLogID]
	if !ok {
		return "", domain.ErrFoodLogNotFound
	}
	status, err := reconcile.DeriveStatus(foodLog.Quantity, 0, f.repo.wastedSum(foodLogID), foodLog.ExpirationDate, time.Now())
	if err != nil {
		return "", err
	}
	foodLog.Status = status
	return status, nil
}

func (f *wasteFakeEngine) Totals(_ context.Context, foodLogID string) (reconcile.Totals, error) {
	foodLog, ok := f.repo.foodLogs[foodLogID]
	if !ok {
		return reconcile.Totals{}, domain.ErrFoodLogNotFound
	}
	wasted := f.repo.wastedSum(foodLogID)
	available, err := reconcile.AvailableQuantity(foodLog.Quantity, 0, wasted)
	if err != nil {
		return reconcile.Totals{}, err
	}
	return reconcile.Totals{Logged: foodLog.Quantity, Wasted: wasted, Available: available}, nil
}

func TestAddWasteLog(t *testing.T) {
	ctx := context.Background()

	t.Run("unexpired waste is capped at availability", func(t *testing.T) {
		repo := newFakeWasteRepository()
		userID := uuid.New()
		foodLog := repo.addFoodLog(userID, 5, nil)
		service := NewWasteService(repo, &wasteFakeEngine{repo: repo})

		_, err := service.AddWasteLog(ctx, domain.AddWasteLogRequest{
			FoodLogID: foodLog.ID.String(),
			Quantity:  6,
		}, userID.String())
		assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
		assert.Empty(t, repo.wasteLogs)
	})

	t.Run("expired waste is not capped", func(t *testing.T) {
		repo := newFakeWasteRepository()
		userID := uuid.New()
		lastWeek := time.Now().AddDate(0, 0, -7)
		foodLog := repo.addFoodLog(userID, 5, &lastWeek)
		service := NewWasteService(repo, &wasteFakeEngine{repo: repo})

		res, err := service.AddWasteLog(ctx, domain.AddWasteLogRequest{
			FoodLogID: foodLog.ID.String(),
			Quantity:  8,
		}, userID.String())
		require.NoError(t, err)
		assert.Equal(t, 8, res.Quantity)
		assert.Equal(t, reconcile.StatusExpired, foodLog.Status)
	})

	t.Run("ad-hoc waste needs no food log", func(t *testing.T) {
		repo := newFakeWasteRepository()
		userID := uuid.New()
		service := NewWasteService(repo, &wasteFakeEngine{repo: repo})

		res, err := service.AddWasteLog(ctx, domain.AddWasteLogRequest{Quantity: 3, Reason: "spoiled leftovers"}, userID.String())
		require.NoError(t, err)
		assert.Empty(t, res.FoodLogID)
		assert.Equal(t, "spoiled leftovers", res.Reason)
	})

	t.Run("reason defaults to expired", func(t *testing.T) {
		repo := newFakeWasteRepository()
		userID := uuid.New()
		service := NewWasteService(repo, &wasteFakeEngine{repo: repo})

		res, err := service.AddWasteLog(ctx, domain.AddWasteLogRequest{Quantity: 1}, userID.String())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultWasteReason, res.Reason)
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		repo := newFakeWasteRepository()
		userID := uuid.New()
		service := NewWasteService(repo, &wasteFakeEngine{repo: repo})

		_, err := service.AddWasteLog(ctx, domain.AddWasteLogRequest{Quantity: 0}, userID.String())
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	})

	t.Run("unknown food log", func(t *testing.T) {
		repo := newFakeWasteRepository()
		userID := uuid.New()
		service := NewWasteService(repo, &wasteFakeEngine{repo: repo})

		_, err := service.AddWasteLog(ctx, domain.AddWasteLogRequest{
			FoodLogID: uuid.NewString(),
			Quantity:  1,
		}, userID.String())
		assert.ErrorIs(t, err, domain.ErrFoodLogNotFound)
	})
}

func TestDeleteWasteLog(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting referenced waste reconciles the food log", func(t *testing.T) {
		repo := newFakeWasteRepository()
		userID := uuid.New()
		foodLog := repo.addFoodLog(userID, 5, nil)
		engine := &wasteFakeEngine{repo: repo}
		service := NewWasteService(repo, engine)

		res, err := service.AddWasteLog(ctx, domain.AddWasteLogRequest{
			FoodLogID: foodLog.ID.String(),
			Quantity:  5,
		}, userID.String())
		require.NoError(t, err)
		require.Equal(t, reconcile.StatusDonated, foodLog.Status)

		require.NoError(t, service.DeleteWasteLog(ctx, res.ID, userID.String()))
		assert.Equal(t, []string{foodLog.ID.String()}, engine.reconciled)
		assert.Equal(t, reconcile.StatusAvailable, foodLog.Status)
	})

	t.Run("deleting ad-hoc waste skips reconciliation", func(t *testing.T) {
		repo := newFakeWasteRepository()
		userID := uuid.New()
		engine := &wasteFakeEngine{repo: repo}
		service := NewWasteService(repo, engine)

		res, err := service.AddWasteLog(ctx, domain.AddWasteLogRequest{Quantity: 2}, userID.String())
		require.NoError(t, err)

		require.NoError(t, service.DeleteWasteLog(ctx, res.ID, userID.String()))
		assert.Empty(t, engine.reconciled)
	})

	t.Run("only the owner may delete", func(t *testing.T) {
		repo := newFakeWasteRepository()
		userID := uuid.New()
		service := NewWasteService(repo, &wasteFakeEngine{repo: repo})

		res, err := service.AddWasteLog(ctx, domain.AddWasteLogRequest{Quantity: 2}, userID.String())
		require.NoError(t, err)

		err = service.DeleteWasteLog(ctx, res.ID, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrUnauthorizedWasteAccess)
	})
}
