package food

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

type fakeFoodRepository struct {
	foodLogs   map[string]*entities.FoodLog
	categories map[string]*entities.FoodCategory
}

func newFakeFoodRepository() *fakeFoodRepository {
	return &fakeFoodRepository{
		foodLogs:   make(map[string]*entities.FoodLog),
		categories: make(map[string]*entities.FoodCategory),
	}
}

func (f *fakeFoodRepository) AddFoodLog(_ context.Context, foodLog *entities.FoodLog) error {
	f.foodLogs[foodLog.ID.String()] = foodLog
	return nil
}

func (f *fakeFoodRepository) GetFoodLogByID(_ context.Context, id string) (*entities.FoodLog, error) {
	foodLog, ok := f.foodLogs[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return foodLog, nil
}

func (f *fakeFoodRepository) UpdateFoodLog(_ context.Context, foodLog *entities.FoodLog) error {
	f.foodLogs[foodLog.ID.String()] = foodLog
	return nil
}

func (f *fakeFoodRepository) DeleteFoodLog(_ context.Context, id string) error {
	delete(f.foodLogs, id)
	return nil
}

func (f *fakeFoodRepository) GetFoodLogs(_ context.Context, userID string, status string, _, _ int) ([]*entities.FoodLog, int64, error) {
	var result []*entities.FoodLog
	for _, foodLog := range f.foodLogs {
		if userID != "" && foodLog.UserID.String() != userID {
			continue
		}
		if status != "all" && status != "" && foodLog.Status != status {
			continue
		}
		result = append(result, foodLog)
	}
	return result, int64(len(result)), nil
}

func (f *fakeFoodRepository) AddCategory(_ context.Context, category *entities.FoodCategory) error {
	f.categories[category.ID.String()] = category
	return nil
}

func (f *fakeFoodRepository) GetCategoryByID(_ context.Context, id string) (*entities.FoodCategory, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return category, nil
}

func (f *fakeFoodRepository) GetCategories(_ context.Context) ([]*entities.FoodCategory, error) {
	var result []*entities.FoodCategory
	for _, category := range f.categories {
		result = append(result, category)
	}
	return result, nil
}

func (f *fakeFoodRepository) UpdateCategory(_ context.Context, category *entities.FoodCategory) error {
	f.categories[category.ID.String()] = category
	return nil
}

func (f *fakeFoodRepository) DeleteCategory(_ context.Context, id string) error {
	delete(f.categories, id)
	return nil
}

// fakeEngine derives totals and status straight from the fake repository so
// the service under test sees a consistent ledger.
type fakeEngine struct {
	repo    *fakeFoodRepository
	donated map[string]int
	wasted  map[string]int
}

func newFakeEngine(repo *fakeFoodRepository) *fakeEngine {
	return &fakeEngine{
		repo:    repo,
		donated: make(map[string]int),
		wasted:  make(map[string]int),
	}
}

func (f *fakeEngine) Reconcile(ctx context.Context, foodLogID string) (string, error) {
	foodLog, err := f.repo.GetFoodLogByID(ctx, foodLogID)
	if err != nil {
		return "", domain.ErrFoodLogNotFound
	}
	status, err := reconcile.DeriveStatus(foodLog.Quantity, f.donated[foodLogID], f.wasted[foodLogID], foodLog.ExpirationDate, time.Now())
	if err != nil {
		return "", err
	}
	foodLog.Status = status
	return status, nil
}

func (f *fakeEngine) Totals(ctx context.Context, foodLogID string) (reconcile.Totals, error) {
	foodLog, err := f.repo.GetFoodLogByID(ctx, foodLogID)
	if err != nil {
		return reconcile.Totals{}, domain.ErrFoodLogNotFound
	}
	available, err := reconcile.AvailableQuantity(foodLog.Quantity, f.donated[foodLogID], f.wasted[foodLogID])
	if err != nil {
		return reconcile.Totals{}, err
	}
	return reconcile.Totals{
		Logged:    foodLog.Quantity,
		Donated:   f.donated[foodLogID],
		Wasted:    f.wasted[foodLogID],
		Available: available,
	}, nil
}

func TestAddFoodLog(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("new log starts available with full balance", func(t *testing.T) {
		repo := newFakeFoodRepository()
		service := NewFoodService(repo, newFakeEngine(repo))

		res, err := service.AddFoodLog(ctx, domain.AddFoodLogRequest{
			FoodName: "rice", Quantity: 5,
		}, userID)
		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusAvailable, res.Status)
		assert.Equal(t, 5, res.AvailableQuantity)
		assert.Equal(t, 0, res.DonatedQuantity)
		assert.Equal(t, 0, res.WastedQuantity)
	})

	t.Run("past expiration date starts expired", func(t *testing.T) {
		repo := newFakeFoodRepository()
		service := NewFoodService(repo, newFakeEngine(repo))

		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		res, err := service.AddFoodLog(ctx, domain.AddFoodLogRequest{
			FoodName: "milk", Quantity: 2, ExpirationDate: yesterday,
		}, userID)
		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusExpired, res.Status)
	})

	t.Run("quantity must be positive", func(t *testing.T) {
		repo := newFakeFoodRepository()
		service := NewFoodService(repo, newFakeEngine(repo))

		_, err := service.AddFoodLog(ctx, domain.AddFoodLogRequest{FoodName: "rice", Quantity: 0}, userID)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

		_, err = service.AddFoodLog(ctx, domain.AddFoodLogRequest{FoodName: "rice", Quantity: -3}, userID)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.Empty(t, repo.foodLogs)
	})

	t.Run("malformed expiration date", func(t *testing.T) {
		repo := newFakeFoodRepository()
		service := NewFoodService(repo, newFakeEngine(repo))

		_, err := service.AddFoodLog(ctx, domain.AddFoodLogRequest{
			FoodName: "rice", Quantity: 1, ExpirationDate: "31-12-2026",
		}, userID)
		assert.ErrorIs(t, err, domain.ErrInvalidExpirationDate)
	})

	t.Run("unknown category", func(t *testing.T) {
		repo := newFakeFoodRepository()
		service := NewFoodService(repo, newFakeEngine(repo))

		_, err := service.AddFoodLog(ctx, domain.AddFoodLogRequest{
			FoodName: "rice", Quantity: 1, CategoryID: uuid.NewString(),
		}, userID)
		assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
	})
}

func TestUpdateFoodLog(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	addLog := func(t *testing.T, service FoodService) string {
		t.Helper()
		res, err := service.AddFoodLog(ctx, domain.AddFoodLogRequest{FoodName: "rice", Quantity: 5}, userID)
		require.NoError(t, err)
		return res.ID
	}

	t.Run("rename keeps the quantity fixed", func(t *testing.T) {
		repo := newFakeFoodRepository()
		service := NewFoodService(repo, newFakeEngine(repo))
		id := addLog(t, service)

		res, err := service.UpdateFoodLog(ctx, id, domain.UpdateFoodLogRequest{FoodName: "brown rice"}, userID)
		require.NoError(t, err)
		assert.Equal(t, "brown rice", res.FoodName)
		assert.Equal(t, 5, res.Quantity)
	})

	t.Run("moving expiration into the past flips status", func(t *testing.T) {
		repo := newFakeFoodRepository()
		service := NewFoodService(repo, newFakeEngine(repo))
		id := addLog(t, service)

		yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
		res, err := service.UpdateFoodLog(ctx, id, domain.UpdateFoodLogRequest{ExpirationDate: yesterday}, userID)
		require.NoError(t, err)
		assert.Equal(t, reconcile.StatusExpired, res.Status)
	})

	t.Run("only the owner may edit", func(t *testing.T) {
		repo := newFakeFoodRepository()
		service := NewFoodService(repo, newFakeEngine(repo))
		id := addLog(t, service)

		_, err := service.UpdateFoodLog(ctx, id, domain.UpdateFoodLogRequest{FoodName: "oats"}, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrUnauthorizedFoodAccess)
	})

	t.Run("unknown log", func(t *testing.T) {
		repo := newFakeFoodRepository()
		service := NewFoodService(repo, newFakeEngine(repo))

		_, err := service.UpdateFoodLog(ctx, uuid.NewString(), domain.UpdateFoodLogRequest{FoodName: "oats"}, userID)
		assert.ErrorIs(t, err, domain.ErrFoodLogNotFound)
	})
}

func TestDeleteFoodLog(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	t.Run("owner can delete", func(t *testing.T) {
		repo := newFakeFoodRepository()
		service := NewFoodService(repo, newFakeEngine(repo))
		res, err := service.AddFoodLog(ctx, domain.AddFoodLogRequest{FoodName: "rice", Quantity: 5}, userID)
		require.NoError(t, err)

		require.NoError(t, service.DeleteFoodLog(ctx, res.ID, userID))
		assert.Empty(t, repo.foodLogs)
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		repo := newFakeFoodRepository()
		service := NewFoodService(repo, newFakeEngine(repo))
		res, err := service.AddFoodLog(ctx, domain.AddFoodLogRequest{FoodName: "rice", Quantity: 5}, userID)
		require.NoError(t, err)

		err = service.DeleteFoodLog(ctx, res.ID, uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrUnauthorizedFoodAccess)
		assert.Len(t, repo.foodLogs, 1)
	})
}

func TestFoodLogResponseBalance(t *testing.T) {
	ctx := context.Background()
	userID := uuid.NewString()

	repo := newFakeFoodRepository()
	engine := newFakeEngine(repo)
	service := NewFoodService(repo, engine)

	res, err := service.AddFoodLog(ctx, domain.AddFoodLogRequest{FoodName: "rice", Quantity: 10}, userID)
	require.NoError(t, err)

	engine.donated[res.ID] = 3
	engine.wasted[res.ID] = 2

	got, err := service.GetFoodLogByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
	assert.Equal(t, 3, got.DonatedQuantity)
	assert.Equal(t, 2, got.WastedQuantity)
	assert.Equal(t, 5, got.AvailableQuantity)
}
