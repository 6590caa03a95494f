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

// CreateAndDispatch persists the request and runs the fan-out cycle unless
// the request is scheduled for later, in which case the external scheduler
// triggers Dispatch at the right time.
func (uc *DispatchUC) CreateAndDispatch(ctx context.Context, req *models.DeliveryRequest) (*models.DeliveryRequest, error) {
	if len(req.Stops) == 0 {
		return nil, fmt.Errorf("delivery request needs at least one stop")
	}

	if err := uc.requestRepo.CreateRequest(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create delivery request: %w", err)
	}

	if req.IsScheduled(time.Now()) {
		logger.Info("request scheduled, deferring fan-out",
			logger.String("request_id", req.ID.String()),
			logger.Time("scheduled_at", *req.ScheduledAt))
		return req, nil
	}

	if _, err := uc.Dispatch(ctx, req.ID); err != nil {
		// The request row stays persisted either way; the caller learns no
		// dispatch cycle began.
		return req, err
	}
	return req, nil
}

// Dispatch selects eligible nearby couriers and fans a time-boxed offer out
// to all of them. Returns how many offers were created.
func (uc *DispatchUC) Dispatch(ctx context.Context, requestID uuid.UUID) (int, error) {
	req, err := uc.requestRepo.GetRequest(ctx, requestID)
	if err != nil {
		return 0, err
	}
	if req.IsTerminal() {
		return 0, dispatcherrors.ErrAlreadyTerminal
	}
	if req.DriverID != nil {
		return 0, dispatcherrors.ErrAlreadyClaimed
	}

	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load dispatch settings: %w", err)
	}

	candidates, err := uc.findCandidates(ctx, req, settings)
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		return 0, dispatcherrors.ErrNoDriversAvailable
	}

	if err := uc.requestRepo.MarkNotifying(ctx, req.ID); err != nil {
		logger.Warn("failed to mark request notifying",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
	}

	return uc.fanOut(ctx, req, candidates, settings), nil
}

// candidate pairs a courier profile with its distance from the pickup point
type candidate struct {
	courier    models.Courier
	distanceKm float64
}

// findCandidates runs the geo matcher: radius search over the available pool,
// then the busy-driver exclusion. The pool query already filters on
// availability, vehicle category, push reachability and position freshness
// and returns candidates by ascending distance with ties broken by id.
func (uc *DispatchUC) findCandidates(ctx context.Context, req *models.DeliveryRequest, settings models.DispatchSettings) ([]candidate, error) {
	origin := models.Location{
		Latitude:  req.PickupLatitude,
		Longitude: req.PickupLongitude,
	}

	positions, err := uc.courierRepo.FindNearbyAvailable(
		ctx, origin, settings.SearchRadiusKm, req.VehicleType, settings.HeartbeatTimeout(), time.Now(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby couriers: %w", err)
	}
	if len(positions) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(positions))
	distances := make(map[uuid.UUID]float64, len(positions))
	for _, p := range positions {
		id, err := uuid.Parse(p.CourierID)
		if err != nil {
			logger.Warn("skipping courier with malformed id", logger.String("courier_id", p.CourierID))
			continue
		}
		ids = append(ids, id)
		distances[id] = p.Distance
	}

	busy, err := uc.requestRepo.BusyDrivers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to filter busy drivers: %w", err)
	}

	couriers, err := uc.courierRepo.GetCouriers(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate couriers: %w", err)
	}
	profiles := make(map[uuid.UUID]models.Courier, len(couriers))
	for _, c := range couriers {
		profiles[c.ID] = c
	}

	// preserve the distance ordering from the pool query
	eligible := make([]candidate, 0, len(ids))
	for _, id := range ids {
		if _, isBusy := busy[id]; isBusy {
			continue
		}
		courier, ok := profiles[id]
		if !ok || !courier.Available || !courier.Reachable() {
			continue
		}
		eligible = append(eligible, candidate{courier: courier, distanceKm: distances[id]})
	}
	return eligible, nil
}

// fanOut creates one offer row per candidate and pushes an alert to each.
// Row creation is idempotent per (request, driver); a push transport failure
// for one candidate never blocks the others.
func (uc *DispatchUC) fanOut(ctx context.Context, req *models.DeliveryRequest, candidates []candidate, settings models.DispatchSettings) int {
	now := time.Now()
	expiresAt := now.Add(settings.AcceptanceTimeout())

	created := 0
	for _, cand := range candidates {
		courier := cand.courier
		offer := &models.DriverOffer{
			RequestID: req.ID,
			DriverID:  courier.ID,
			Status:    models.OfferStatusNotified,
			ExpiresAt: expiresAt,
			CreatedAt: now,
		}
		inserted, err := uc.offerRepo.CreateOffer(ctx, offer)
		if err != nil {
			logger.Error("failed to create offer",
				logger.String("request_id", req.ID.String()),
				logger.String("driver_id", courier.ID.String()),
				logger.Err(err))
			continue
		}
		if !inserted {
			// already notified in an earlier fan-out
			continue
		}
		created++

		notification := models.OfferNotification{
			Version:       1,
			RequestID:     req.ID,
			PickupAddress: req.PickupAddress,
			StopCount:     len(req.Stops),
			NeedsReturn:   req.NeedsReturn,
			VehicleType:   req.VehicleType,
			DriverPayout:  req.DriverPayout,
			Currency:      req.Currency,
			DistanceKm:    cand.distanceKm,
			ExpiresAt:     expiresAt,
		}

		if err := uc.dispatchGW.SendPush(ctx, models.PushMessage{
			Token:   courier.PushToken,
			Title:   "New delivery request",
			Body:    fmt.Sprintf("Pickup at %s", req.PickupAddress),
			Payload: notification,
		}); err != nil {
			logger.Warn("push delivery failed",
				logger.String("driver_id", courier.ID.String()),
				logger.Err(err))
		}

		if err := uc.dispatchGW.PublishOfferNotified(ctx, models.OfferNotifiedEvent{
			DriverID:     courier.ID,
			Notification: notification,
		}); err != nil {
			logger.Warn("failed to publish offer event",
				logger.String("driver_id", courier.ID.String()),
				logger.Err(err))
		}
	}

	logger.Info("offer fan-out completed",
		logger.String("request_id", req.ID.String()),
		logger.Int("candidates", len(candidates)),
		logger.Int("offers_created", created))
	return created
}
