package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	dispatcherrors "github.com/halarumdigital/traki-dispatch/services/dispatch/errors"
	"github.com/jmoiron/sqlx"
)

// RequestRepo implements the delivery request repository against Postgres.
// Every mutation of the contended fields is a single conditional UPDATE so
// concurrent writers race on commit order, never on stale reads.
type RequestRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewRequestRepository creates a new delivery request repository
func NewRequestRepository(cfg *models.Config, db *sqlx.DB) *RequestRepo {
	return &RequestRepo{cfg: cfg, db: db}
}

const requestColumns = `
	id, company_id, driver_id, vehicle_type, needs_return,
	pickup_address, pickup_latitude, pickup_longitude, pickup_contact,
	driver_payout, currency, status, cancel_reason, cancelled_by,
	is_completed, is_cancelled,
	scheduled_at, accepted_at, arrived_at, trip_started_at, delivered_at,
	return_started_at, returned_at, completed_at, cancelled_at,
	created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRequest(row rowScanner) (*models.DeliveryRequest, error) {
	req := &models.DeliveryRequest{}
	var driverID uuid.NullUUID
	var cancelReason, cancelledBy sql.NullString
	var scheduledAt, acceptedAt, arrivedAt, tripStartedAt, deliveredAt sql.NullTime
	var returnStartedAt, returnedAt, completedAt, cancelledAt sql.NullTime

	err := row.Scan(
		&req.ID, &req.CompanyID, &driverID, &req.VehicleType, &req.NeedsReturn,
		&req.PickupAddress, &req.PickupLatitude, &req.PickupLongitude, &req.PickupContact,
		&req.DriverPayout, &req.Currency, &req.Status, &cancelReason, &cancelledBy,
		&req.IsCompleted, &req.IsCancelled,
		&scheduledAt, &acceptedAt, &arrivedAt, &tripStartedAt, &deliveredAt,
		&returnStartedAt, &returnedAt, &completedAt, &cancelledAt,
		&req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if driverID.Valid {
		id := driverID.UUID
		req.DriverID = &id
	}
	req.CancelReason = cancelReason.String
	req.CancelledBy = cancelledBy.String
	req.ScheduledAt = nullTimePtr(scheduledAt)
	req.AcceptedAt = nullTimePtr(acceptedAt)
	req.ArrivedAt = nullTimePtr(arrivedAt)
	req.TripStartedAt = nullTimePtr(tripStartedAt)
	req.DeliveredAt = nullTimePtr(deliveredAt)
	req.ReturnStartedAt = nullTimePtr(returnStartedAt)
	req.ReturnedAt = nullTimePtr(returnedAt)
	req.CompletedAt = nullTimePtr(completedAt)
	req.CancelledAt = nullTimePtr(cancelledAt)

	return req, nil
}

func nullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// CreateRequest inserts a request with its stops in one transaction
func (r *RequestRepo) CreateRequest(ctx context.Context, req *models.DeliveryRequest) error {
	if req.ID == uuid.Nil {
		req.ID = uuid.New()
	}
	now := time.Now()
	if req.CreatedAt.IsZero() {
		req.CreatedAt = now
	}
	req.UpdatedAt = now
	if req.Status == "" {
		req.Status = models.RequestStatusPending
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO delivery_requests (
			id, company_id, vehicle_type, needs_return,
			pickup_address, pickup_latitude, pickup_longitude, pickup_contact,
			driver_payout, currency, status, scheduled_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err = tx.ExecContext(ctx, insertQuery,
		req.ID, req.CompanyID, req.VehicleType, req.NeedsReturn,
		req.PickupAddress, req.PickupLatitude, req.PickupLongitude, req.PickupContact,
		req.DriverPayout, req.Currency, req.Status, req.ScheduledAt, req.CreatedAt, req.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert delivery request: %w", err)
	}

	stopQuery := `
		INSERT INTO delivery_stops (
			id, request_id, rank, address, latitude, longitude,
			contact_name, contact_phone, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for i := range req.Stops {
		stop := &req.Stops[i]
		if stop.ID == uuid.Nil {
			stop.ID = uuid.New()
		}
		stop.RequestID = req.ID
		if stop.Status == "" {
			stop.Status = models.StopStatusPending
		}
		_, err = tx.ExecContext(ctx, stopQuery,
			stop.ID, stop.RequestID, stop.Rank, stop.Address, stop.Latitude, stop.Longitude,
			stop.ContactName, stop.ContactPhone, stop.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert stop %d: %w", stop.Rank, err)
		}
	}

	return tx.Commit()
}

// GetRequest retrieves a request with its stops
func (r *RequestRepo) GetRequest(ctx context.Context, id uuid.UUID) (*models.DeliveryRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM delivery_requests WHERE id = $1`

	req, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatcherrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get delivery request: %w", err)
	}

	stops, err := r.getStops(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Stops = stops
	return req, nil
}

func (r *RequestRepo) getStops(ctx context.Context, requestID uuid.UUID) ([]models.Stop, error) {
	query := `
		SELECT id, request_id, rank, address, latitude, longitude,
			contact_name, contact_phone, status, arrived_at, completed_at
		FROM delivery_stops
		WHERE request_id = $1
		ORDER BY rank ASC
	`
	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stops: %w", err)
	}
	defer rows.Close()

	var stops []models.Stop
	for rows.Next() {
		var stop models.Stop
		var arrivedAt, completedAt sql.NullTime
		err := rows.Scan(
			&stop.ID, &stop.RequestID, &stop.Rank, &stop.Address, &stop.Latitude, &stop.Longitude,
			&stop.ContactName, &stop.ContactPhone, &stop.Status, &arrivedAt, &completedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stop: %w", err)
		}
		stop.ArrivedAt = nullTimePtr(arrivedAt)
		stop.CompletedAt = nullTimePtr(completedAt)
		stops = append(stops, stop)
	}
	return stops, rows.Err()
}

// GetActiveByDriver returns the driver's most recent non-terminal request
func (r *RequestRepo) GetActiveByDriver(ctx context.Context, driverID uuid.UUID) (*models.DeliveryRequest, error) {
	query := `SELECT ` + requestColumns + `
		FROM delivery_requests
		WHERE driver_id = $1 AND is_completed = false AND is_cancelled = false
		ORDER BY accepted_at DESC
		LIMIT 1`

	req, err := scanRequest(r.db.QueryRowContext(ctx, query, driverID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatcherrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("failed to get active request: %w", err)
	}

	stops, err := r.getStops(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	req.Stops = stops
	return req, nil
}

// DriverHasUnpickedActive reports whether the driver owns another non-terminal
// request whose pickup has not happened yet. Pickup is the cutover point:
// carrying two parcels is allowed, carrying two unretrieved ones is not.
func (r *RequestRepo) DriverHasUnpickedActive(ctx context.Context, driverID uuid.UUID, excludeRequest uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM delivery_requests
			WHERE driver_id = $1
				AND id <> $2
				AND is_completed = false
				AND is_cancelled = false
				AND trip_started_at IS NULL
		)
	`
	var busy bool
	if err := r.db.QueryRowContext(ctx, query, driverID, excludeRequest).Scan(&busy); err != nil {
		return false, fmt.Errorf("failed to check driver load: %w", err)
	}
	return busy, nil
}

// BusyDrivers returns the candidates currently holding an unpicked active request
func (r *RequestRepo) BusyDrivers(ctx context.Context, candidates []uuid.UUID) (map[uuid.UUID]struct{}, error) {
	busy := make(map[uuid.UUID]struct{})
	if len(candidates) == 0 {
		return busy, nil
	}

	query, args, err := sqlx.In(`
		SELECT DISTINCT driver_id FROM delivery_requests
		WHERE driver_id IN (?)
			AND is_completed = false
			AND is_cancelled = false
			AND trip_started_at IS NULL
	`, candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to build busy driver query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list busy drivers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan busy driver: %w", err)
		}
		busy[id] = struct{}{}
	}
	return busy, rows.Err()
}

// MarkNotifying flips a pending request to notifying once fan-out begins
func (r *RequestRepo) MarkNotifying(ctx context.Context, requestID uuid.UUID) error {
	query := `
		UPDATE delivery_requests
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
	`
	_, err := r.db.ExecContext(ctx, query, models.RequestStatusNotifying, time.Now(), requestID, models.RequestStatusPending)
	if err != nil {
		return fmt.Errorf("failed to mark request notifying: %w", err)
	}
	return nil
}

// Claim commits the accept as one atomic unit. The driver_id-is-null
// precondition makes first-committed-write-wins correct under concurrent
// accepts: a losing driver's update matches zero rows and surfaces as
// ErrAlreadyClaimed, never a silent success.
func (r *RequestRepo) Claim(ctx context.Context, requestID, driverID uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// the NOT EXISTS clause keeps the busy-driver exclusion inside the same
	// conditional write: a driver racing two accepts cannot win both
	claimQuery := `
		UPDATE delivery_requests
		SET driver_id = $1, accepted_at = $2, status = $3, updated_at = $2
		WHERE id = $4 AND driver_id IS NULL AND is_completed = false AND is_cancelled = false
			AND NOT EXISTS (
				SELECT 1 FROM delivery_requests other
				WHERE other.driver_id = $1
					AND other.id <> $4
					AND other.is_completed = false
					AND other.is_cancelled = false
					AND other.trip_started_at IS NULL
			)
	`
	result, err := tx.ExecContext(ctx, claimQuery, driverID, now, models.RequestStatusAccepted, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to claim request: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		if busy, berr := r.DriverHasUnpickedActive(ctx, driverID, requestID); berr == nil && busy {
			return nil, dispatcherrors.ErrDriverBusy
		}
		return nil, dispatcherrors.ErrAlreadyClaimed
	}

	acceptQuery := `
		UPDATE driver_offers
		SET status = $1, responded_at = $2
		WHERE request_id = $3 AND driver_id = $4 AND status = $5
	`
	result, err = tx.ExecContext(ctx, acceptQuery, models.OfferStatusAccepted, now, requestID, driverID, models.OfferStatusNotified)
	if err != nil {
		return nil, fmt.Errorf("failed to accept offer: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return nil, dispatcherrors.ErrAlreadyResponded
	}

	// Expire every sibling offer in the same commit so no second accept can
	// slip through between assignment and expiry.
	expireQuery := `
		UPDATE driver_offers
		SET status = $1
		WHERE request_id = $2 AND status = $3
		RETURNING driver_id
	`
	rows, err := tx.QueryContext(ctx, expireQuery, models.OfferStatusExpired, requestID, models.OfferStatusNotified)
	if err != nil {
		return nil, fmt.Errorf("failed to expire sibling offers: %w", err)
	}

	var losers []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return nil, fmt.Errorf("failed to scan expired offer: %w", err)
		}
		losers = append(losers, id)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	busyQuery := `UPDATE couriers SET on_delivery = true WHERE id = $1`
	if _, err := tx.ExecContext(ctx, busyQuery, driverID); err != nil {
		return nil, fmt.Errorf("failed to mark courier on delivery: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return losers, nil
}

// MarkArrivedPickup records pickup arrival for the assigned driver
func (r *RequestRepo) MarkArrivedPickup(ctx context.Context, requestID, driverID uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE delivery_requests
		SET status = $1, arrived_at = $2, updated_at = $2
		WHERE id = $3 AND driver_id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query, models.RequestStatusArrivedPickup, now, requestID, driverID, models.RequestStatusAccepted)
	if err != nil {
		return false, fmt.Errorf("failed to mark arrived at pickup: %w", err)
	}
	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// MarkPickedUp records the pickup. From here on the geo matcher considers the
// driver again for new offers.
func (r *RequestRepo) MarkPickedUp(ctx context.Context, requestID, driverID uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE delivery_requests
		SET status = $1, trip_started_at = $2, updated_at = $2
		WHERE id = $3 AND driver_id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query, models.RequestStatusPickedUp, now, requestID, driverID, models.RequestStatusArrivedPickup)
	if err != nil {
		return false, fmt.Errorf("failed to mark picked up: %w", err)
	}
	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// CompleteNextStop completes the first stop by ascending rank that is still
// pending or arrived, and returns the stop that follows it, if any.
func (r *RequestRepo) CompleteNextStop(ctx context.Context, requestID uuid.UUID, now time.Time) (*models.Stop, *models.Stop, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	selectQuery := `
		SELECT id, request_id, rank, address, latitude, longitude,
			contact_name, contact_phone, status
		FROM delivery_stops
		WHERE request_id = $1 AND status <> $2
		ORDER BY rank ASC
		LIMIT 1
		FOR UPDATE
	`
	var completed models.Stop
	err = tx.QueryRowContext(ctx, selectQuery, requestID, models.StopStatusCompleted).Scan(
		&completed.ID, &completed.RequestID, &completed.Rank, &completed.Address,
		&completed.Latitude, &completed.Longitude,
		&completed.ContactName, &completed.ContactPhone, &completed.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// every stop already completed
			return nil, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to select next stop: %w", err)
	}

	updateQuery := `UPDATE delivery_stops SET status = $1, completed_at = $2 WHERE id = $3`
	if _, err := tx.ExecContext(ctx, updateQuery, models.StopStatusCompleted, now, completed.ID); err != nil {
		return nil, nil, fmt.Errorf("failed to complete stop: %w", err)
	}
	completed.Status = models.StopStatusCompleted
	completed.CompletedAt = &now

	nextQuery := `
		SELECT id, request_id, rank, address, latitude, longitude,
			contact_name, contact_phone, status
		FROM delivery_stops
		WHERE request_id = $1 AND status <> $2
		ORDER BY rank ASC
		LIMIT 1
	`
	var next models.Stop
	err = tx.QueryRowContext(ctx, nextQuery, requestID, models.StopStatusCompleted).Scan(
		&next.ID, &next.RequestID, &next.Rank, &next.Address,
		&next.Latitude, &next.Longitude,
		&next.ContactName, &next.ContactPhone, &next.Status,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if err := tx.Commit(); err != nil {
				return nil, nil, fmt.Errorf("failed to commit stop completion: %w", err)
			}
			return &completed, nil, nil
		}
		return nil, nil, fmt.Errorf("failed to select following stop: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit stop completion: %w", err)
	}
	return &completed, &next, nil
}

// MarkAwaitingReturn moves a picked-up request with a return leg into
// delivered_awaiting_return; the courier stays occupied.
func (r *RequestRepo) MarkAwaitingReturn(ctx context.Context, requestID, driverID uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE delivery_requests
		SET status = $1, delivered_at = $2, updated_at = $2
		WHERE id = $3 AND driver_id = $4 AND status = $5 AND is_completed = false AND is_cancelled = false
	`
	result, err := r.db.ExecContext(ctx, query, models.RequestStatusAwaitingReturn, now, requestID, driverID, models.RequestStatusPickedUp)
	if err != nil {
		return false, fmt.Errorf("failed to mark awaiting return: %w", err)
	}
	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// StartReturn begins the return-to-origin leg
func (r *RequestRepo) StartReturn(ctx context.Context, requestID, driverID uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE delivery_requests
		SET status = $1, return_started_at = $2, updated_at = $2
		WHERE id = $3 AND driver_id = $4 AND status = $5 AND is_completed = false AND is_cancelled = false
	`
	result, err := r.db.ExecContext(ctx, query, models.RequestStatusReturnStarted, now, requestID, driverID, models.RequestStatusAwaitingReturn)
	if err != nil {
		return false, fmt.Errorf("failed to start return: %w", err)
	}
	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// CompleteDelivery terminates the request and frees the courier in one
// transaction. The courier's delivery counter is incremented in the same
// conditional step that flips is_completed, so a repeated call can never
// double-count.
func (r *RequestRepo) CompleteDelivery(ctx context.Context, requestID, driverID uuid.UUID, now time.Time, withReturn bool) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var result sql.Result
	if withReturn {
		query := `
			UPDATE delivery_requests
			SET status = $1, returned_at = $2, completed_at = $2, is_completed = true, updated_at = $2
			WHERE id = $3 AND driver_id = $4 AND status = $5 AND is_completed = false AND is_cancelled = false
		`
		result, err = tx.ExecContext(ctx, query, models.RequestStatusCompleted, now, requestID, driverID, models.RequestStatusReturnStarted)
	} else {
		query := `
			UPDATE delivery_requests
			SET status = $1, delivered_at = COALESCE(delivered_at, $2), completed_at = $2, is_completed = true, updated_at = $2
			WHERE id = $3 AND driver_id = $4 AND status = $5 AND is_completed = false AND is_cancelled = false
		`
		result, err = tx.ExecContext(ctx, query, models.RequestStatusCompleted, now, requestID, driverID, models.RequestStatusPickedUp)
	}
	if err != nil {
		return false, fmt.Errorf("failed to complete delivery: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return false, nil
	}

	freeQuery := `UPDATE couriers SET on_delivery = false, completed_deliveries = completed_deliveries + 1 WHERE id = $1`
	if _, err := tx.ExecContext(ctx, freeQuery, driverID); err != nil {
		return false, fmt.Errorf("failed to free courier: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit completion: %w", err)
	}
	return true, nil
}

// CancelRequest conditionally cancels a non-terminal request and frees the
// assigned courier, if any, in the same transaction
func (r *RequestRepo) CancelRequest(ctx context.Context, requestID uuid.UUID, reason, cancelledBy string, now time.Time) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE delivery_requests
		SET status = $1, is_cancelled = true, cancelled_at = $2, cancel_reason = $3, cancelled_by = $4, updated_at = $2
		WHERE id = $5 AND is_completed = false AND is_cancelled = false
		RETURNING driver_id
	`
	var driverID uuid.NullUUID
	err = tx.QueryRowContext(ctx, query, models.RequestStatusCancelled, now, reason, cancelledBy, requestID).Scan(&driverID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to cancel request: %w", err)
	}

	if driverID.Valid {
		freeQuery := `UPDATE couriers SET on_delivery = false WHERE id = $1`
		if _, err := tx.ExecContext(ctx, freeQuery, driverID.UUID); err != nil {
			return false, fmt.Errorf("failed to free courier: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit cancellation: %w", err)
	}
	return true, nil
}

// CancelUnclaimed cancels a request only while it is still unclaimed. The
// auto-cancel sweep uses this instead of CancelRequest so a claim committing
// between the sweep's listing and its cancel makes this update match zero
// rows rather than cancelling a request a driver now owns.
func (r *RequestRepo) CancelUnclaimed(ctx context.Context, requestID uuid.UUID, reason, cancelledBy string, now time.Time) (bool, error) {
	query := `
		UPDATE delivery_requests
		SET status = $1, is_cancelled = true, cancelled_at = $2, cancel_reason = $3, cancelled_by = $4, updated_at = $2
		WHERE id = $5 AND driver_id IS NULL AND is_completed = false AND is_cancelled = false
	`
	result, err := r.db.ExecContext(ctx, query, models.RequestStatusCancelled, now, reason, cancelledBy, requestID)
	if err != nil {
		return false, fmt.Errorf("failed to cancel unclaimed request: %w", err)
	}
	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// ListUnclaimedOlderThan returns unclaimed, non-terminal requests whose
// dispatch age exceeds maxAge. Scheduled requests age from their scheduled
// time so they keep their full search window.
func (r *RequestRepo) ListUnclaimedOlderThan(ctx context.Context, maxAge time.Duration, now time.Time) ([]models.DeliveryRequest, error) {
	cutoff := now.Add(-maxAge)
	query := `SELECT ` + requestColumns + `
		FROM delivery_requests
		WHERE driver_id IS NULL
			AND is_completed = false
			AND is_cancelled = false
			AND COALESCE(scheduled_at, created_at) < $1
		ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to list unclaimed requests: %w", err)
	}
	defer rows.Close()

	var requests []models.DeliveryRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan unclaimed request: %w", err)
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}
