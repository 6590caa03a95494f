package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/constants"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/database"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	"github.com/halarumdigital/traki-dispatch/internal/utils"
	couriererrors "github.com/halarumdigital/traki-dispatch/services/couriers/errors"
)

const (
	// PositionTTL bounds how long a stale position hash survives in Redis
	PositionTTL = 24 * time.Hour

	geohashPrecision = 9
)

const courierColumns = `id, fullname, vehicle_type, vehicle_plate, push_token, available, on_delivery, completed_deliveries, last_seen_at`

// CourierRepo keeps courier profiles in Postgres and the availability pool in
// Redis: one GEO set of available couriers plus one position hash per courier.
type CourierRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewCourierRepo creates a new courier repository
func NewCourierRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *CourierRepo {
	return &CourierRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}

type courierRow struct {
	ID                  uuid.UUID      `db:"id"`
	FullName            string         `db:"fullname"`
	VehicleType         string         `db:"vehicle_type"`
	VehiclePlate        string         `db:"vehicle_plate"`
	PushToken           sql.NullString `db:"push_token"`
	Available           bool           `db:"available"`
	OnDelivery          bool           `db:"on_delivery"`
	CompletedDeliveries int            `db:"completed_deliveries"`
	LastSeenAt          sql.NullTime   `db:"last_seen_at"`
}

func (row courierRow) toModel() models.Courier {
	c := models.Courier{
		ID:                  row.ID,
		FullName:            row.FullName,
		VehicleType:         row.VehicleType,
		VehiclePlate:        row.VehiclePlate,
		PushToken:           row.PushToken.String,
		Available:           row.Available,
		OnDelivery:          row.OnDelivery,
		CompletedDeliveries: row.CompletedDeliveries,
	}
	if row.LastSeenAt.Valid {
		t := row.LastSeenAt.Time
		c.LastSeenAt = &t
	}
	return c
}

// GetCourier fetches a single courier profile
func (r *CourierRepo) GetCourier(ctx context.Context, id uuid.UUID) (*models.Courier, error) {
	var row courierRow
	query := `SELECT ` + courierColumns + ` FROM couriers WHERE id = $1`
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, couriererrors.ErrCourierNotFound
		}
		return nil, fmt.Errorf("failed to get courier: %w", err)
	}
	courier := row.toModel()
	return &courier, nil
}

// GetCouriers fetches a batch of courier profiles
func (r *CourierRepo) GetCouriers(ctx context.Context, ids []uuid.UUID) ([]models.Courier, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(`SELECT `+courierColumns+` FROM couriers WHERE id IN (?)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to build courier batch query: %w", err)
	}
	query = r.db.Rebind(query)

	var rows []courierRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to get couriers: %w", err)
	}
	couriers := make([]models.Courier, 0, len(rows))
	for _, row := range rows {
		couriers = append(couriers, row.toModel())
	}
	return couriers, nil
}

// SetAvailability flips the availability flag and syncs the Redis pool. The
// flip is conditional so a repeated toggle reports false without touching the
// pool twice.
func (r *CourierRepo) SetAvailability(ctx context.Context, id uuid.UUID, available bool, now time.Time) (bool, error) {
	query := `UPDATE couriers SET available = $1, last_seen_at = $2 WHERE id = $3 AND available != $1`
	result, err := r.db.ExecContext(ctx, query, available, now, id)
	if err != nil {
		return false, fmt.Errorf("failed to set availability: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read availability result: %w", err)
	}
	if affected == 0 {
		// verify the courier exists before reporting a no-op flip
		var exists bool
		if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM couriers WHERE id = $1)`, id); err != nil {
			return false, fmt.Errorf("failed to check courier: %w", err)
		}
		if !exists {
			return false, couriererrors.ErrCourierNotFound
		}
		return false, nil
	}

	if available {
		if err := r.redisClient.SAdd(ctx, constants.KeyAvailableCourier, id.String()); err != nil {
			return true, fmt.Errorf("failed to add courier to available pool: %w", err)
		}
	} else {
		if err := r.removeFromPool(ctx, id); err != nil {
			return true, err
		}
	}
	return true, nil
}

func (r *CourierRepo) removeFromPool(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.SRem(ctx, constants.KeyAvailableCourier, id.String()); err != nil {
		return fmt.Errorf("failed to remove courier from available pool: %w", err)
	}
	if err := r.redisClient.ZRem(ctx, constants.KeyCourierGeo, id.String()); err != nil {
		return fmt.Errorf("failed to remove courier from geo pool: %w", err)
	}
	return nil
}

// UpdatePosition refreshes the geo pool entry and the per-courier position hash
func (r *CourierRepo) UpdatePosition(ctx context.Context, id uuid.UUID, loc models.Location) error {
	if loc.Timestamp.IsZero() {
		loc.Timestamp = time.Now()
	}

	if err := r.redisClient.GeoAdd(ctx, constants.KeyCourierGeo, loc.Longitude, loc.Latitude, id.String()); err != nil {
		return fmt.Errorf("failed to update geo pool: %w", err)
	}

	locationKey := fmt.Sprintf(constants.KeyCourierLocation, id.String())
	locationData := map[string]interface{}{
		constants.FieldLatitude:  strconv.FormatFloat(loc.Latitude, 'f', -1, 64),
		constants.FieldLongitude: strconv.FormatFloat(loc.Longitude, 'f', -1, 64),
		constants.FieldGeohash:   utils.EncodeLocation(loc, geohashPrecision),
		constants.FieldTimestamp: strconv.FormatInt(loc.Timestamp.Unix(), 10),
	}
	if err := r.redisClient.HMSet(ctx, locationKey, locationData); err != nil {
		return fmt.Errorf("failed to store courier position: %w", err)
	}
	if err := r.redisClient.Expire(ctx, locationKey, PositionTTL); err != nil {
		return fmt.Errorf("failed to set position TTL: %w", err)
	}
	return nil
}

// Heartbeat bumps last_seen_at and, when a position rode along, refreshes it
func (r *CourierRepo) Heartbeat(ctx context.Context, id uuid.UUID, loc *models.Location, now time.Time) error {
	result, err := r.db.ExecContext(ctx, `UPDATE couriers SET last_seen_at = $1 WHERE id = $2`, now, id)
	if err != nil {
		return fmt.Errorf("failed to record heartbeat: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read heartbeat result: %w", err)
	}
	if affected == 0 {
		return couriererrors.ErrCourierNotFound
	}

	if loc != nil {
		return r.UpdatePosition(ctx, id, *loc)
	}
	return nil
}

// RegisterPushToken stores the courier's push endpoint
func (r *CourierRepo) RegisterPushToken(ctx context.Context, id uuid.UUID, token string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE couriers SET push_token = $1 WHERE id = $2`, token, id)
	if err != nil {
		return fmt.Errorf("failed to register push token: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read push token result: %w", err)
	}
	if affected == 0 {
		return couriererrors.ErrCourierNotFound
	}
	return nil
}

// ListStaleAvailable returns available couriers silent past the staleness
// window. A courier with no recorded signal at all counts as stale.
func (r *CourierRepo) ListStaleAvailable(ctx context.Context, staleness time.Duration, now time.Time) ([]models.Courier, error) {
	cutoff := now.Add(-staleness)
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE available = true
			AND (last_seen_at IS NULL OR last_seen_at < $1)`

	var rows []courierRow
	if err := r.db.SelectContext(ctx, &rows, query, cutoff); err != nil {
		return nil, fmt.Errorf("failed to list stale couriers: %w", err)
	}
	couriers := make([]models.Courier, 0, len(rows))
	for _, row := range rows {
		couriers = append(couriers, row.toModel())
	}
	return couriers, nil
}

// FindNearbyAvailable is the geo matcher's candidate query: GEO radius search
// over the pool, availability and vehicle checks against Postgres, position
// freshness against the location hashes. Results come back ordered by
// ascending distance with ties broken by courier id.
func (r *CourierRepo) FindNearbyAvailable(ctx context.Context, origin models.Location, radiusKm float64, vehicleType string, staleness time.Duration, now time.Time) ([]models.CourierPosition, error) {
	hits, err := r.redisClient.GeoRadius(ctx, constants.KeyCourierGeo, origin.Longitude, origin.Latitude, radiusKm)
	if err != nil {
		return nil, fmt.Errorf("failed to run geo search: %w", err)
	}
	if len(hits) == 0 {
		return nil, nil
	}

	ids := make([]uuid.UUID, 0, len(hits))
	byID := make(map[uuid.UUID]models.CourierPosition, len(hits))
	for _, hit := range hits {
		id, err := uuid.Parse(hit.Name)
		if err != nil {
			continue
		}
		ids = append(ids, id)
		byID[id] = models.CourierPosition{
			CourierID: hit.Name,
			Location: models.Location{
				Latitude:  hit.Latitude,
				Longitude: hit.Longitude,
			},
			Distance: hit.Dist,
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	couriers, err := r.GetCouriers(ctx, ids)
	if err != nil {
		return nil, err
	}

	cutoff := now.Add(-staleness)
	positions := make([]models.CourierPosition, 0, len(couriers))
	for _, courier := range couriers {
		// on_delivery is not checked here: a courier who already picked up
		// their parcel is matchable again, and the dispatcher filters the
		// ones still holding an unpicked request
		if !courier.Available {
			continue
		}
		if vehicleType != "" && courier.VehicleType != vehicleType {
			continue
		}
		if !courier.Reachable() {
			continue
		}
		pos := byID[courier.ID]
		ts, err := r.positionTimestamp(ctx, courier.ID)
		if err != nil || ts.Before(cutoff) {
			continue
		}
		pos.Location.Timestamp = ts
		positions = append(positions, pos)
	}

	sort.SliceStable(positions, func(i, j int) bool {
		if positions[i].Distance != positions[j].Distance {
			return positions[i].Distance < positions[j].Distance
		}
		return positions[i].CourierID < positions[j].CourierID
	})
	return positions, nil
}

func (r *CourierRepo) positionTimestamp(ctx context.Context, id uuid.UUID) (time.Time, error) {
	locationKey := fmt.Sprintf(constants.KeyCourierLocation, id.String())
	values, err := r.redisClient.HMGet(ctx, locationKey, constants.FieldTimestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read position timestamp: %w", err)
	}
	if len(values) == 0 || values[0] == "" {
		return time.Time{}, fmt.Errorf("no position recorded for courier %s", id)
	}
	ts, err := strconv.ParseInt(values[0], 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid position timestamp: %w", err)
	}
	return time.Unix(ts, 0), nil
}
