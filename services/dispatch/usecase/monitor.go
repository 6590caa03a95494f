package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/logger"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
)

const autoCancelReason = "no driver found in time"

// AutoCancelSweep cancels every unclaimed, non-terminal request older than the
// configured age. Scheduled requests age from their scheduled time, so a
// future-dated request is never cancelled before its matching window opens.
func (uc *DispatchUC) AutoCancelSweep(ctx context.Context) (int, error) {
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return 0, err
	}

	stale, err := uc.requestRepo.ListUnclaimedOlderThan(ctx, settings.AutoCancelAge(), time.Now())
	if err != nil {
		return 0, err
	}

	cancelled := 0
	for _, req := range stale {
		applied, err := uc.autoCancel(ctx, req.ID)
		if err != nil {
			logger.Warn("auto-cancel failed for request",
				logger.String("request_id", req.ID.String()),
				logger.Err(err))
			continue
		}
		if !applied {
			// a concurrent claim or cancel beat the sweep to this row
			continue
		}
		cancelled++
	}

	if cancelled > 0 {
		logger.Info("auto-cancel sweep completed",
			logger.Int("examined", len(stale)),
			logger.Int("cancelled", cancelled))
	}
	return cancelled, nil
}

// autoCancel cancels one unclaimed request. The cancel re-asserts
// driver_id IS NULL in its own conditional write, so a claim slipping in
// after the sweep's listing leaves the request with its driver.
func (uc *DispatchUC) autoCancel(ctx context.Context, requestID uuid.UUID) (bool, error) {
	now := time.Now()
	applied, err := uc.requestRepo.CancelUnclaimed(ctx, requestID, autoCancelReason, "system", now)
	if err != nil || !applied {
		return false, err
	}

	cancelled := models.CancelledNotification{
		Version:   1,
		RequestID: requestID,
		Reason:    autoCancelReason,
	}
	revoked, err := uc.offerRepo.CancelNotified(ctx, requestID, now)
	if err != nil {
		logger.Warn("failed to revoke outstanding offers",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
	}
	for _, driverID := range revoked {
		uc.pushCancelled(ctx, driverID, cancelled)
	}

	if err := uc.dispatchGW.PublishRequestCancelled(ctx, models.RequestCancelledEvent{
		RequestID:   requestID,
		Reason:      autoCancelReason,
		CancelledBy: "system",
		CancelledAt: now,
	}); err != nil {
		logger.Warn("failed to publish cancellation event",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
	}
	return true, nil
}

// RunAutoCancelMonitor runs the sweep on a fixed interval until the context
// is cancelled. Meant to be launched as a goroutine from main.
func (uc *DispatchUC) RunAutoCancelMonitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("auto-cancel monitor started", logger.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("auto-cancel monitor stopped")
			return
		case <-ticker.C:
			if _, err := uc.AutoCancelSweep(ctx); err != nil {
				logger.Error("auto-cancel sweep failed", logger.Err(err))
			}
		}
	}
}
