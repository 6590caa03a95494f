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
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
)

const pgUniqueViolation = "23505"

// OfferRepo implements the driver offer repository against Postgres
type OfferRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewOfferRepository creates a new driver offer repository
func NewOfferRepository(cfg *models.Config, db *sqlx.DB) *OfferRepo {
	return &OfferRepo{cfg: cfg, db: db}
}

// CreateOffer inserts one offer row. The unique (request_id, driver_id) index
// makes fan-out idempotent: a duplicate insert reports false, not an error.
func (r *OfferRepo) CreateOffer(ctx context.Context, offer *models.DriverOffer) (bool, error) {
	if offer.ID == uuid.Nil {
		offer.ID = uuid.New()
	}
	if offer.CreatedAt.IsZero() {
		offer.CreatedAt = time.Now()
	}
	if offer.Status == "" {
		offer.Status = models.OfferStatusNotified
	}

	query := `
		INSERT INTO driver_offers (id, request_id, driver_id, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query,
		offer.ID, offer.RequestID, offer.DriverID, offer.Status, offer.ExpiresAt, offer.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return false, nil
		}
		return false, fmt.Errorf("failed to insert offer: %w", err)
	}
	return true, nil
}

// GetOffer retrieves the offer for a (request, driver) pair
func (r *OfferRepo) GetOffer(ctx context.Context, requestID, driverID uuid.UUID) (*models.DriverOffer, error) {
	query := `
		SELECT id, request_id, driver_id, status, expires_at, responded_at, created_at
		FROM driver_offers
		WHERE request_id = $1 AND driver_id = $2
	`
	offer := &models.DriverOffer{}
	var respondedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, requestID, driverID).Scan(
		&offer.ID, &offer.RequestID, &offer.DriverID, &offer.Status,
		&offer.ExpiresAt, &respondedAt, &offer.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dispatcherrors.ErrOfferNotFound
		}
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	offer.RespondedAt = nullTimePtr(respondedAt)
	return offer, nil
}

// MarkExpired lazily expires a notified offer whose window has passed. The
// condition keeps a concurrent accept from being clobbered.
func (r *OfferRepo) MarkExpired(ctx context.Context, offerID uuid.UUID, now time.Time) error {
	query := `
		UPDATE driver_offers
		SET status = $1
		WHERE id = $2 AND status = $3
	`
	_, err := r.db.ExecContext(ctx, query, models.OfferStatusExpired, offerID, models.OfferStatusNotified)
	if err != nil {
		return fmt.Errorf("failed to expire offer: %w", err)
	}
	return nil
}

// MarkRejected flips a notified offer to rejected
func (r *OfferRepo) MarkRejected(ctx context.Context, requestID, driverID uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE driver_offers
		SET status = $1, responded_at = $2
		WHERE request_id = $3 AND driver_id = $4 AND status = $5
	`
	result, err := r.db.ExecContext(ctx, query, models.OfferStatusRejected, now, requestID, driverID, models.OfferStatusNotified)
	if err != nil {
		return false, fmt.Errorf("failed to reject offer: %w", err)
	}
	affected, _ := result.RowsAffected()
	return affected > 0, nil
}

// CancelNotified marks every notified offer of a request cancelled and
// returns the affected driver ids so they can be told
func (r *OfferRepo) CancelNotified(ctx context.Context, requestID uuid.UUID, now time.Time) ([]uuid.UUID, error) {
	query := `
		UPDATE driver_offers
		SET status = $1
		WHERE request_id = $2 AND status = $3
		RETURNING driver_id
	`
	rows, err := r.db.QueryContext(ctx, query, models.OfferStatusCancelled, requestID, models.OfferStatusNotified)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel offers: %w", err)
	}
	defer rows.Close()

	var drivers []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan cancelled offer: %w", err)
		}
		drivers = append(drivers, id)
	}
	return drivers, rows.Err()
}

// ListPendingByDriver returns a driver's notified, unexpired offers
func (r *OfferRepo) ListPendingByDriver(ctx context.Context, driverID uuid.UUID, now time.Time) ([]models.DriverOffer, error) {
	query := `
		SELECT id, request_id, driver_id, status, expires_at, responded_at, created_at
		FROM driver_offers
		WHERE driver_id = $1 AND status = $2 AND expires_at > $3
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, driverID, models.OfferStatusNotified, now)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending offers: %w", err)
	}
	defer rows.Close()

	var offers []models.DriverOffer
	for rows.Next() {
		var offer models.DriverOffer
		var respondedAt sql.NullTime
		err := rows.Scan(
			&offer.ID, &offer.RequestID, &offer.DriverID, &offer.Status,
			&offer.ExpiresAt, &respondedAt, &offer.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan offer: %w", err)
		}
		offer.RespondedAt = nullTimePtr(respondedAt)
		offers = append(offers, offer)
	}
	return offers, rows.Err()
}
