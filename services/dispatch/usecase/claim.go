package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/logger"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	dispatcherrors "github.com/halarumdigital/traki-dispatch/services/dispatch/errors"
)

// Accept resolves the claim race for one driver. Validation happens up front
// on a snapshot; the decisive assignment is a single conditional transaction
// in the repository, so two concurrent accepts can both pass validation and
// still only one of them wins.
func (uc *DispatchUC) Accept(ctx context.Context, requestID, driverID uuid.UUID) (*models.DeliveryRequest, error) {
	req, err := uc.requestRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.IsTerminal() {
		return nil, dispatcherrors.ErrAlreadyTerminal
	}
	if req.DriverID != nil {
		return nil, dispatcherrors.ErrAlreadyClaimed
	}

	offer, err := uc.offerRepo.GetOffer(ctx, requestID, driverID)
	if err != nil {
		return nil, err
	}
	if offer.Status != models.OfferStatusNotified {
		return nil, dispatcherrors.ErrAlreadyResponded
	}

	now := time.Now()
	if offer.IsExpired(now) {
		if err := uc.offerRepo.MarkExpired(ctx, offer.ID, now); err != nil {
			logger.Warn("failed to mark offer expired",
				logger.String("offer_id", offer.ID.String()),
				logger.Err(err))
		}
		return nil, dispatcherrors.ErrOfferExpired
	}

	// fast-path workload check; the claim transaction re-asserts it in the
	// same conditional write that assigns the driver
	busy, err := uc.requestRepo.DriverHasUnpickedActive(ctx, driverID, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to check driver workload: %w", err)
	}
	if busy {
		return nil, dispatcherrors.ErrDriverBusy
	}

	losers, err := uc.requestRepo.Claim(ctx, requestID, driverID, now)
	if err != nil {
		return nil, err
	}

	logger.Info("request claimed",
		logger.String("request_id", requestID.String()),
		logger.String("driver_id", driverID.String()),
		logger.Int("losing_offers", len(losers)))

	uc.notifyLosers(ctx, requestID, driverID, losers)

	return uc.requestRepo.GetRequest(ctx, requestID)
}

// notifyLosers tells every other notified driver the request is gone. Pushes
// are best effort; a courier we cannot reach simply sees the offer vanish
// from their pending list.
func (uc *DispatchUC) notifyLosers(ctx context.Context, requestID, winnerID uuid.UUID, losers []uuid.UUID) {
	taken := models.TakenNotification{Version: 1, RequestID: requestID}

	for _, loserID := range losers {
		courier, err := uc.courierRepo.GetCourier(ctx, loserID)
		if err != nil {
			logger.Warn("failed to load losing courier",
				logger.String("driver_id", loserID.String()),
				logger.Err(err))
			continue
		}
		if !courier.Reachable() {
			continue
		}
		if err := uc.dispatchGW.SendPush(ctx, models.PushMessage{
			Token:   courier.PushToken,
			Title:   "Request taken",
			Body:    "Another driver accepted this delivery",
			Payload: taken,
		}); err != nil {
			logger.Warn("push delivery failed",
				logger.String("driver_id", loserID.String()),
				logger.Err(err))
		}
	}

	if err := uc.dispatchGW.PublishOfferTaken(ctx, models.OfferTakenEvent{
		RequestID: requestID,
		DriverID:  winnerID,
		TakenAt:   time.Now(),
	}); err != nil {
		logger.Warn("failed to publish offer taken event",
			logger.String("request_id", requestID.String()),
			logger.Err(err))
	}
}

// Reject records a driver declining their offer. Rejection only affects the
// driver's own offer row; the request keeps waiting on the rest of the pool.
func (uc *DispatchUC) Reject(ctx context.Context, requestID, driverID uuid.UUID) error {
	offer, err := uc.offerRepo.GetOffer(ctx, requestID, driverID)
	if err != nil {
		return err
	}
	if offer.Status != models.OfferStatusNotified {
		return dispatcherrors.ErrAlreadyResponded
	}

	applied, err := uc.offerRepo.MarkRejected(ctx, requestID, driverID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to reject offer: %w", err)
	}
	if !applied {
		return dispatcherrors.ErrAlreadyResponded
	}
	return nil
}

// ListPendingOffers returns the driver's live offers: notified and not yet
// past their acceptance window.
func (uc *DispatchUC) ListPendingOffers(ctx context.Context, driverID uuid.UUID) ([]models.DriverOffer, error) {
	return uc.offerRepo.ListPendingByDriver(ctx, driverID, time.Now())
}

// GetActiveRequest returns the driver's current in-progress request, if any
func (uc *DispatchUC) GetActiveRequest(ctx context.Context, driverID uuid.UUID) (*models.DeliveryRequest, error) {
	return uc.requestRepo.GetActiveByDriver(ctx, driverID)
}

// GetRequestByID returns one request with its stops
func (uc *DispatchUC) GetRequestByID(ctx context.Context, requestID uuid.UUID) (*models.DeliveryRequest, error) {
	return uc.requestRepo.GetRequest(ctx, requestID)
}
