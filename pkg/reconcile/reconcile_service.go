package reconcile

import (
	"FoodShare-Backend/domain"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type (
	// Engine keeps a food log's persisted status consistent with its
	// disposition records. Every create or delete of a donation or waste
	// record, and every direct edit of a food log, must be followed by a
	// Reconcile call for the referenced log.
	Engine interface {
		Reconcile(ctx context.Context, foodLogID string) (string, error)
		Totals(ctx context.Context, foodLogID string) (Totals, error)
	}

	// Totals is a point-in-time snapshot of a food log's ledger balance.
	Totals struct {
		Logged    int
		Donated   int
		Wasted    int
		Available int
	}

	engine struct {
		ledgerRepository LedgerRepository
	}
)

func NewEngine(ledgerRepository LedgerRepository) Engine {
	return &engine{ledgerRepository: ledgerRepository}
}

// Reconcile re-derives the food log's status from the current disposition
// sums and persists it when it changed. Re-reconciling an already-consistent
// log writes nothing. Returns the derived status.
func (e *engine) Reconcile(ctx context.Context, foodLogID string) (string, error) {
	foodLog, err := e.ledgerRepository.GetFoodLogByID(ctx, foodLogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrFoodLogNotFound
		}
		return "", err
	}

	donated, wasted, err := e.ledgerRepository.QuantitySums(ctx, foodLogID)
	if err != nil {
		return "", err
	}

	status, err := DeriveStatus(foodLog.Quantity, donated, wasted, foodLog.ExpirationDate, time.Now())
	if err != nil {
		return "", err
	}

	if status != foodLog.Status {
		if err := e.ledgerRepository.UpdateFoodLogStatus(ctx, foodLogID, status); err != nil {
			return "", err
		}
	}

	return status, nil
}

// Totals recomputes the ledger balance from the child records. Expired logs
// may carry waste past their logged quantity (over-reported waste); their
// availability bottoms out at zero instead of failing the read.
func (e *engine) Totals(ctx context.Context, foodLogID string) (Totals, error) {
	foodLog, err := e.ledgerRepository.GetFoodLogByID(ctx, foodLogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Totals{}, domain.ErrFoodLogNotFound
		}
		return Totals{}, err
	}

	donated, wasted, err := e.ledgerRepository.QuantitySums(ctx, foodLogID)
	if err != nil {
		return Totals{}, err
	}

	available, err := AvailableQuantity(foodLog.Quantity, donated, wasted)
	if err != nil {
		if !expiredBy(foodLog.ExpirationDate, time.Now()) {
			return Totals{}, err
		}
		available = 0
	}

	return Totals{
		Logged:    foodLog.Quantity,
		Donated:   donated,
		Wasted:    wasted,
		Available: available,
	}, nil
}
