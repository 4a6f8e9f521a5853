package reconcile

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/entities"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeLedgerRepository struct {
	foodLogs      map[string]*entities.FoodLog
	donated       map[string]int
	wasted        map[string]int
	statusUpdates int
}

func newFakeLedgerRepository() *fakeLedgerRepository {
	return &fakeLedgerRepository{
		foodLogs: make(map[string]*entities.FoodLog),
		donated:  make(map[string]int),
		wasted:   make(map[string]int),
	}
}

func (f *fakeLedgerRepository) GetFoodLogByID(_ context.Context, id string) (*entities.FoodLog, error) {
	foodLog, ok := f.foodLogs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return foodLog, nil
}

func (f *fakeLedgerRepository) QuantitySums(_ context.Context, foodLogID string) (int, int, error) {
	return f.donated[foodLogID], f.wasted[foodLogID], nil
}

func (f *fakeLedgerRepository) UpdateFoodLogStatus(_ context.Context, foodLogID string, status string) error {
	f.statusUpdates++
	f.foodLogs[foodLogID].Status = status
	return nil
}

func (f *fakeLedgerRepository) addFoodLog(quantity int, expiration *time.Time, status string) string {
	id := uuid.New()
	f.foodLogs[id.String()] = &entities.FoodLog{
		ID:             id,
		UserID:         uuid.New(),
		FoodName:       "rice",
		Quantity:       quantity,
		ExpirationDate: expiration,
		Status:         status,
	}
	return id.String()
}

func TestEngineReconcile(t *testing.T) {
	ctx := context.Background()

	t.Run("drained log becomes donated", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		id := repo.addFoodLog(10, nil, StatusAvailable)
		repo.donated[id] = 10

		status, err := NewEngine(repo).Reconcile(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, StatusDonated, status)
		assert.Equal(t, StatusDonated, repo.foodLogs[id].Status)
	})

	t.Run("consistent log writes nothing", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		id := repo.addFoodLog(10, nil, StatusAvailable)
		repo.donated[id] = 4

		engine := NewEngine(repo)
		_, err := engine.Reconcile(ctx, id)
		require.NoError(t, err)
		_, err = engine.Reconcile(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 0, repo.statusUpdates)
	})

	t.Run("stale expiration is picked up", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		yesterday := time.Now().AddDate(0, 0, -1)
		id := repo.addFoodLog(10, &yesterday, StatusAvailable)

		status, err := NewEngine(repo).Reconcile(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, StatusExpired, status)
	})

	t.Run("unknown log", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		_, err := NewEngine(repo).Reconcile(ctx, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrFoodLogNotFound)
	})

	t.Run("negative balance aborts", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		id := repo.addFoodLog(10, nil, StatusAvailable)
		repo.donated[id] = 8
		repo.wasted[id] = 5

		_, err := NewEngine(repo).Reconcile(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNegativeAvailability)
		assert.Equal(t, 0, repo.statusUpdates)
	})
}

func TestEngineTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("sums recomputed from child records", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		id := repo.addFoodLog(10, nil, StatusAvailable)
		repo.donated[id] = 3
		repo.wasted[id] = 2

		totals, err := NewEngine(repo).Totals(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, Totals{Logged: 10, Donated: 3, Wasted: 2, Available: 5}, totals)
	})

	t.Run("over-reported waste bottoms out for expired logs", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		yesterday := time.Now().AddDate(0, 0, -1)
		id := repo.addFoodLog(10, &yesterday, StatusExpired)
		repo.wasted[id] = 15

		totals, err := NewEngine(repo).Totals(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, 0, totals.Available)
		assert.Equal(t, 15, totals.Wasted)
	})

	t.Run("over-disposition on an unexpired log is an error", func(t *testing.T) {
		repo := newFakeLedgerRepository()
		id := repo.addFoodLog(10, nil, StatusAvailable)
		repo.donated[id] = 12

		_, err := NewEngine(repo).Totals(ctx, id)
		assert.ErrorIs(t, err, domain.ErrNegativeAvailability)
	})
}
