package sweep

import (
	"FoodShare-Backend/domain"
	"FoodShare-Backend/pkg/logger"
	"FoodShare-Backend/pkg/reconcile"
	"FoodShare-Backend/pkg/waste"
	"context"
	"time"
)

type (
	// SweepService converts expired, undonated stock into waste records. It is
	// meant to run on a daily schedule and is safe to run more often: a log
	// whose balance is already settled produces no new waste record.
	SweepService interface {
		Run(ctx context.Context) (SweepResult, error)
	}

	SweepResult struct {
		Processed int // expired food logs examined
		Wasted    int // waste records created
		Skipped   int // nothing left to waste
		Failed    int // per-item failures, run continues past them
	}

	sweepService struct {
		sweepRepository SweepRepository
		wasteService    waste.WasteService
		engine          reconcile.Engine
	}
)

func NewSweepService(sweepRepository SweepRepository, wasteService waste.WasteService, engine reconcile.Engine) SweepService {
	return &sweepService{
		sweepRepository: sweepRepository,
		wasteService:    wasteService,
		engine:          engine,
	}
}

func (s *sweepService) Run(ctx context.Context) (SweepResult, error) {
	var result SweepResult

	foodLogs, err := s.sweepRepository.FindExpiredFoodLogs(ctx, time.Now())
	if err != nil {
		return result, err
	}

	for _, foodLog := range foodLogs {
		result.Processed++
		id := foodLog.ID.String()

		// Re-read the balance right before writing: the log may have been
		// donated or swept between selection and now.
		totals, err := s.engine.Totals(ctx, id)
		if err != nil {
			result.Failed++
			logger.Logger.Error().Err(err).Str("food_log_id", id).Msg("sweep: failed to read balance")
			continue
		}

		if totals.Available > 0 {
			req := domain.AddWasteLogRequest{
				FoodLogID: id,
				Quantity:  totals.Available,
				Reason:    domain.DefaultWasteReason,
			}
			if _, err := s.wasteService.AddWasteLog(ctx, req, foodLog.UserID.String()); err != nil {
				result.Failed++
				logger.Logger.Error().Err(err).Str("food_log_id", id).Msg("sweep: failed to create waste log")
				continue
			}
			result.Wasted++
		} else {
			result.Skipped++
		}

		// The waste-creation path already reconciles; this settles logs that
		// needed no new waste record but still show a stale status.
		if _, err := s.engine.Reconcile(ctx, id); err != nil {
			result.Failed++
			logger.Logger.Error().Err(err).Str("food_log_id", id).Msg("sweep: failed to reconcile")
		}
	}

	logger.Logger.Info().
		Int("processed", result.Processed).
		Int("wasted", result.Wasted).
		Int("skipped", result.Skipped).
		Int("failed", result.Failed).
		Msg("expiration sweep finished")

	return result, nil
}
