package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/logger"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
)

// GetCourier fetches one courier profile
func (uc *CourierUC) GetCourier(ctx context.Context, id uuid.UUID) (*models.Courier, error) {
	return uc.courierRepo.GetCourier(ctx, id)
}

// SetAvailability flips the courier's availability flag and publishes the
// status event when the flip actually happened. An in-progress delivery is
// untouched either way: on_delivery belongs to the dispatch lifecycle.
func (uc *CourierUC) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	now := time.Now()
	flipped, err := uc.courierRepo.SetAvailability(ctx, id, available, now)
	if err != nil {
		return err
	}
	if !flipped {
		// repeated toggle, nothing to announce
		return nil
	}

	if err := uc.courierGW.PublishCourierStatus(ctx, models.CourierStatusEvent{
		CourierID: id,
		Available: available,
		Cause:     "toggle",
		ChangedAt: now,
	}); err != nil {
		logger.Warn("failed to publish courier status",
			logger.String("courier_id", id.String()),
			logger.Err(err))
	}
	return nil
}

// Heartbeat records proof of life, optionally refreshing the pool position
func (uc *CourierUC) Heartbeat(ctx context.Context, id uuid.UUID, loc *models.Location) error {
	return uc.courierRepo.Heartbeat(ctx, id, loc, time.Now())
}

// UpdatePosition refreshes the courier's geo pool entry
func (uc *CourierUC) UpdatePosition(ctx context.Context, id uuid.UUID, loc models.Location) error {
	return uc.courierRepo.UpdatePosition(ctx, id, loc)
}

// RegisterPushToken stores the courier's push endpoint
func (uc *CourierUC) RegisterPushToken(ctx context.Context, id uuid.UUID, token string) error {
	return uc.courierRepo.RegisterPushToken(ctx, id, token)
}

// LivenessSweep flips every silent available courier offline so the matcher
// stops offering them work. Couriers mid-delivery are exempt; their requests
// finish or get cancelled through the lifecycle.
func (uc *CourierUC) LivenessSweep(ctx context.Context) (int, error) {
	settings, err := uc.settings.Get(ctx)
	if err != nil {
		return 0, err
	}

	stale, err := uc.courierRepo.ListStaleAvailable(ctx, settings.HeartbeatTimeout(), time.Now())
	if err != nil {
		return 0, err
	}

	flipped := 0
	for _, courier := range stale {
		now := time.Now()
		applied, err := uc.courierRepo.SetAvailability(ctx, courier.ID, false, now)
		if err != nil {
			logger.Warn("liveness sweep skipped courier",
				logger.String("courier_id", courier.ID.String()),
				logger.Err(err))
			continue
		}
		if !applied {
			continue
		}
		flipped++

		if err := uc.courierGW.PublishCourierStatus(ctx, models.CourierStatusEvent{
			CourierID: courier.ID,
			Available: false,
			Cause:     "liveness_timeout",
			ChangedAt: now,
		}); err != nil {
			logger.Warn("failed to publish courier status",
				logger.String("courier_id", courier.ID.String()),
				logger.Err(err))
		}
	}

	if flipped > 0 {
		logger.Info("liveness sweep completed",
			logger.Int("examined", len(stale)),
			logger.Int("flipped_offline", flipped))
	}
	return flipped, nil
}

// RunLivenessMonitor runs the sweep on a fixed interval until the context is
// cancelled. Meant to be launched as a goroutine from main.
func (uc *CourierUC) RunLivenessMonitor(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("liveness monitor started", logger.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("liveness monitor stopped")
			return
		case <-ticker.C:
			if _, err := uc.LivenessSweep(ctx); err != nil {
				logger.Error("liveness sweep failed", logger.Err(err))
			}
		}
	}
}
