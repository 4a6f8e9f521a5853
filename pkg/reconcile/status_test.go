package reconcile

import (
	"FoodShare-Backend/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestAvailableQuantity(t *testing.T) {
	t.Run("conservation", func(t *testing.T) {
		available, err := AvailableQuantity(10, 3, 2)
		require.NoError(t, err)
		assert.Equal(t, 5, available)
		assert.Equal(t, 10, 3+2+available)
	})

	t.Run("fully disposed", func(t *testing.T) {
		available, err := AvailableQuantity(10, 6, 4)
		require.NoError(t, err)
		assert.Equal(t, 0, available)
	})

	t.Run("negative balance is an error not a clamp", func(t *testing.T) {
		_, err := AvailableQuantity(10, 8, 5)
		assert.ErrorIs(t, err, domain.ErrNegativeAvailability)
	})
}

func TestDeriveStatus(t *testing.T) {
	today := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	t.Run("available when stock remains", func(t *testing.T) {
		status, err := DeriveStatus(10, 2, 3, nil, today)
		require.NoError(t, err)
		assert.Equal(t, StatusAvailable, status)
	})

	t.Run("donated when drained", func(t *testing.T) {
		status, err := DeriveStatus(10, 7, 3, nil, today)
		require.NoError(t, err)
		assert.Equal(t, StatusDonated, status)
	})

	t.Run("expired beats donated", func(t *testing.T) {
		status, err := DeriveStatus(10, 10, 0, datePtr(yesterday), today)
		require.NoError(t, err)
		assert.Equal(t, StatusExpired, status)
	})

	t.Run("expiring today is not yet expired", func(t *testing.T) {
		status, err := DeriveStatus(10, 0, 0, datePtr(today), today)
		require.NoError(t, err)
		assert.Equal(t, StatusAvailable, status)
	})

	t.Run("date granularity ignores time of day", func(t *testing.T) {
		lateToday := time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)
		earlyToday := time.Date(2026, 3, 15, 0, 1, 0, 0, time.UTC)
		status, err := DeriveStatus(10, 0, 0, datePtr(earlyToday), lateToday)
		require.NoError(t, err)
		assert.Equal(t, StatusAvailable, status)
	})

	t.Run("future expiration stays available", func(t *testing.T) {
		status, err := DeriveStatus(10, 0, 0, datePtr(tomorrow), today)
		require.NoError(t, err)
		assert.Equal(t, StatusAvailable, status)
	})

	t.Run("negative balance fails for unexpired logs", func(t *testing.T) {
		_, err := DeriveStatus(10, 8, 5, datePtr(tomorrow), today)
		assert.ErrorIs(t, err, domain.ErrNegativeAvailability)
	})

	t.Run("negative balance is waived once expired", func(t *testing.T) {
		status, err := DeriveStatus(10, 0, 15, datePtr(yesterday), today)
		require.NoError(t, err)
		assert.Equal(t, StatusExpired, status)
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := DeriveStatus(10, 7, 3, nil, today)
		require.NoError(t, err)
		second, err := DeriveStatus(10, 7, 3, nil, today)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}
