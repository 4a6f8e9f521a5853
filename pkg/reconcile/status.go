package reconcile

import (
	"FoodShare-Backend/domain"
	"time"
)

const (
	StatusAvailable = "Available"
	StatusDonated   = "Donated"
	StatusExpired   = "Expired"
)

// AvailableQuantity computes the remaining balance of a food log. A negative
// result means disposition records sum past the logged quantity, which is a
// reconciliation bug; it is reported as domain.ErrNegativeAvailability instead
// of being clamped to zero.
func AvailableQuantity(logged, donated, wasted int) (int, error) {
	available := logged - donated - wasted
	if available < 0 {
		return 0, domain.ErrNegativeAvailability
	}
	return available, nil
}

// DeriveStatus derives a food log's status from its logged quantity, the
// current disposition sums and its expiration date. Evaluation order:
// expired beats donated beats available. The function is pure and idempotent.
//
// An expired food log may legitimately carry waste beyond its availability
// (estimation-based waste reporting), so the negative-balance check is waived
// once the log is expired.
func DeriveStatus(logged, donated, wasted int, expiration *time.Time, today time.Time) (string, error) {
	if expiredBy(expiration, today) {
		return StatusExpired, nil
	}
	available, err := AvailableQuantity(logged, donated, wasted)
	if err != nil {
		return "", err
	}
	if available == 0 {
		return StatusDonated, nil
	}
	return StatusAvailable, nil
}

// expiredBy reports whether the expiration date falls strictly before today,
// compared at date granularity.
func expiredBy(expiration *time.Time, today time.Time) bool {
	if expiration == nil {
		return false
	}
	ey, em, ed := expiration.Date()
	ty, tm, td := today.Date()
	expDay := time.Date(ey, em, ed, 0, 0, 0, 0, time.UTC)
	todayDay := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	return expDay.Before(todayDay)
}
