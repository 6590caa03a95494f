package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/logger"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	"github.com/halarumdigital/traki-dispatch/services/dispatch"
	dispatcherrors "github.com/halarumdigital/traki-dispatch/services/dispatch/errors"
)

// Advance applies one lifecycle transition on behalf of the assigned driver.
// Repeating the transition the request is already past returns the current
// state with Applied=false instead of an error; only out-of-order jumps fail.
func (uc *DispatchUC) Advance(ctx context.Context, requestID, driverID uuid.UUID, transition models.Transition) (*dispatch.TransitionResult, error) {
	req, err := uc.requestRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	// an unassigned or foreign request is invisible to this driver
	if req.DriverID == nil || *req.DriverID != driverID {
		return nil, dispatcherrors.ErrRequestNotFound
	}
	if req.IsCancelled {
		return nil, dispatcherrors.ErrAlreadyTerminal
	}
	if req.IsCompleted {
		if transition == models.TransitionDelivered || transition == models.TransitionReturned {
			return &dispatch.TransitionResult{Status: req.Status, Applied: false}, nil
		}
		return nil, dispatcherrors.ErrAlreadyTerminal
	}

	now := time.Now()

	switch transition {
	case models.TransitionArrivedPickup:
		return uc.advanceArrived(ctx, req, now)
	case models.TransitionPickedUp:
		return uc.advancePickedUp(ctx, req, now)
	case models.TransitionDelivered:
		return uc.advanceDelivered(ctx, req, now)
	case models.TransitionReturnStarted:
		return uc.advanceReturnStarted(ctx, req, now)
	case models.TransitionReturned:
		return uc.advanceReturned(ctx, req, now)
	default:
		return nil, fmt.Errorf("%w: unknown transition %q", dispatcherrors.ErrInvalidTransition, transition)
	}
}

func (uc *DispatchUC) advanceArrived(ctx context.Context, req *models.DeliveryRequest, now time.Time) (*dispatch.TransitionResult, error) {
	applied, err := uc.requestRepo.MarkArrivedPickup(ctx, req.ID, *req.DriverID, now)
	if err != nil {
		return nil, err
	}
	if !applied {
		// already at or past arrived_pickup is an idempotent repeat; a request
		// that was never accepted cannot record a pickup arrival
		if req.Status == models.RequestStatusPending || req.Status == models.RequestStatusNotifying {
			return nil, dispatcherrors.ErrInvalidTransition
		}
		return &dispatch.TransitionResult{Status: req.Status, Applied: false}, nil
	}
	uc.publishStatus(ctx, req, models.RequestStatusArrivedPickup, now)
	return &dispatch.TransitionResult{Status: models.RequestStatusArrivedPickup, Applied: true}, nil
}

func (uc *DispatchUC) advancePickedUp(ctx context.Context, req *models.DeliveryRequest, now time.Time) (*dispatch.TransitionResult, error) {
	applied, err := uc.requestRepo.MarkPickedUp(ctx, req.ID, *req.DriverID, now)
	if err != nil {
		return nil, err
	}
	if !applied {
		// picked_up strictly requires a recorded pickup arrival
		switch req.Status {
		case models.RequestStatusPending, models.RequestStatusNotifying, models.RequestStatusAccepted:
			return nil, dispatcherrors.ErrInvalidTransition
		}
		return &dispatch.TransitionResult{Status: req.Status, Applied: false}, nil
	}
	uc.publishStatus(ctx, req, models.RequestStatusPickedUp, now)
	return &dispatch.TransitionResult{Status: models.RequestStatusPickedUp, Applied: true}, nil
}

// advanceDelivered completes the next pending stop. Completing the last stop
// either finishes the request outright or parks it awaiting the return leg.
func (uc *DispatchUC) advanceDelivered(ctx context.Context, req *models.DeliveryRequest, now time.Time) (*dispatch.TransitionResult, error) {
	switch req.Status {
	case models.RequestStatusPickedUp:
	case models.RequestStatusAwaitingReturn, models.RequestStatusReturnStarted:
		// the final delivered already landed; the return leg owns the rest
		return &dispatch.TransitionResult{Status: req.Status, Applied: false}, nil
	default:
		return nil, dispatcherrors.ErrInvalidTransition
	}

	completed, next, err := uc.requestRepo.CompleteNextStop(ctx, req.ID, now)
	if err != nil {
		return nil, err
	}
	if completed == nil {
		// no pending stop left; treat as a repeat of the final delivered
		return &dispatch.TransitionResult{Status: req.Status, Applied: false}, nil
	}

	uc.publishStopCompleted(ctx, req, completed, next, now)

	if next != nil {
		return &dispatch.TransitionResult{Status: req.Status, NextStop: next, Applied: true}, nil
	}

	// last stop done
	if req.NeedsReturn {
		if _, err := uc.requestRepo.MarkAwaitingReturn(ctx, req.ID, *req.DriverID, now); err != nil {
			return nil, err
		}
		uc.publishStatus(ctx, req, models.RequestStatusAwaitingReturn, now)
		return &dispatch.TransitionResult{Status: models.RequestStatusAwaitingReturn, Applied: true}, nil
	}

	applied, err := uc.requestRepo.CompleteDelivery(ctx, req.ID, *req.DriverID, now, false)
	if err != nil {
		return nil, err
	}
	if !applied {
		return &dispatch.TransitionResult{Status: models.RequestStatusCompleted, Applied: false}, nil
	}
	uc.publishStatus(ctx, req, models.RequestStatusCompleted, now)
	return &dispatch.TransitionResult{Status: models.RequestStatusCompleted, Applied: true}, nil
}

func (uc *DispatchUC) advanceReturnStarted(ctx context.Context, req *models.DeliveryRequest, now time.Time) (*dispatch.TransitionResult, error) {
	if !req.NeedsReturn {
		return nil, dispatcherrors.ErrInvalidTransition
	}
	applied, err := uc.requestRepo.StartReturn(ctx, req.ID, *req.DriverID, now)
	if err != nil {
		return nil, err
	}
	if !applied {
		if req.Status == models.RequestStatusReturnStarted {
			return &dispatch.TransitionResult{Status: req.Status, Applied: false}, nil
		}
		return nil, dispatcherrors.ErrInvalidTransition
	}
	uc.publishStatus(ctx, req, models.RequestStatusReturnStarted, now)
	return &dispatch.TransitionResult{Status: models.RequestStatusReturnStarted, Applied: true}, nil
}

func (uc *DispatchUC) advanceReturned(ctx context.Context, req *models.DeliveryRequest, now time.Time) (*dispatch.TransitionResult, error) {
	if !req.NeedsReturn {
		return nil, dispatcherrors.ErrInvalidTransition
	}
	if req.Status != models.RequestStatusReturnStarted {
		return nil, dispatcherrors.ErrInvalidTransition
	}
	applied, err := uc.requestRepo.CompleteDelivery(ctx, req.ID, *req.DriverID, now, true)
	if err != nil {
		return nil, err
	}
	if !applied {
		return &dispatch.TransitionResult{Status: models.RequestStatusCompleted, Applied: false}, nil
	}
	uc.publishStatus(ctx, req, models.RequestStatusCompleted, now)
	return &dispatch.TransitionResult{Status: models.RequestStatusCompleted, Applied: true}, nil
}

func (uc *DispatchUC) publishStatus(ctx context.Context, req *models.DeliveryRequest, status models.RequestStatus, now time.Time) {
	var driverID uuid.UUID
	if req.DriverID != nil {
		driverID = *req.DriverID
	}
	if err := uc.dispatchGW.PublishRequestStatus(ctx, models.RequestStatusEvent{
		RequestID: req.ID,
		DriverID:  driverID,
		Status:    status,
		ChangedAt: now,
	}); err != nil {
		logger.Warn("failed to publish status event",
			logger.String("request_id", req.ID.String()),
			logger.String("status", string(status)),
			logger.Err(err))
	}
}

func (uc *DispatchUC) publishStopCompleted(ctx context.Context, req *models.DeliveryRequest, completed, next *models.Stop, now time.Time) {
	if err := uc.dispatchGW.PublishStopCompleted(ctx, models.StopCompletedEvent{
		RequestID:     req.ID,
		DriverID:      *req.DriverID,
		CompletedRank: completed.Rank,
		NextStop:      next,
		CompletedAt:   now,
	}); err != nil {
		logger.Warn("failed to publish stop completed event",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}
}

// Cancel terminates a request that has not completed yet. Depending on how far
// dispatch got, it either revokes every outstanding offer or notifies the one
// assigned driver, and always frees the courier.
func (uc *DispatchUC) Cancel(ctx context.Context, requestID uuid.UUID, cancelledBy, reason string) error {
	req, err := uc.requestRepo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.IsTerminal() {
		return dispatcherrors.ErrAlreadyTerminal
	}

	now := time.Now()
	applied, err := uc.requestRepo.CancelRequest(ctx, requestID, reason, cancelledBy, now)
	if err != nil {
		return err
	}
	if !applied {
		return dispatcherrors.ErrAlreadyTerminal
	}

	// re-read for the driver that held the request when the cancel landed
	assignedDriver := req.DriverID
	if fresh, err := uc.requestRepo.GetRequest(ctx, requestID); err == nil {
		assignedDriver = fresh.DriverID
	}

	cancelled := models.CancelledNotification{
		Version:   1,
		RequestID: requestID,
		Reason:    reason,
	}

	if assignedDriver != nil {
		uc.pushCancelled(ctx, *assignedDriver, cancelled)
	} else {
		revoked, err := uc.offerRepo.CancelNotified(ctx, requestID, now)
		if err != nil {
			logger.Warn("failed to revoke outstanding offers",
				logger.String("request_id", requestID.String()),
				logger.Err(err))
		}
		for _, driverID := range revoked {
			uc.pushCancelled(ctx, driverID, cancelled)
		}
	}

	if err := uc.dispatchGW.PublishRequestCancelled(ctx, models.RequestCancelledEvent{
		RequestID:   requestID,
		DriverID:    assignedDriver,
		Reason:      reason,
		CancelledBy: cancelledBy,
		CancelledAt: now,
	}); err != nil {
		logger.Warn("failed to publish cancellation event",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
	}

	logger.Info("request cancelled",
		logger.String("request_id", requestID.String()),
		logger.String("cancelled_by", cancelledBy),
		logger.String("reason", reason))
	return nil
}

func (uc *DispatchUC) pushCancelled(ctx context.Context, driverID uuid.UUID, payload models.CancelledNotification) {
	courier, err := uc.courierRepo.GetCourier(ctx, driverID)
	if err != nil {
		logger.Warn("failed to load courier for cancel push",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
		return
	}
	if !courier.Reachable() {
		return
	}
	if err := uc.dispatchGW.SendPush(ctx, models.PushMessage{
		Token:   courier.PushToken,
		Title:   "Delivery cancelled",
		Body:    payload.Reason,
		Payload: payload,
	}); err != nil {
		logger.Warn("push delivery failed",
			logger.String("driver_id", driverID.String()),
			logger.Err(err))
	}
}
