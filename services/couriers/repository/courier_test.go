package repository_test

import (
	"context"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/constants"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/database"
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	couriererrors "github.com/halarumdigital/traki-dispatch/services/couriers/errors"
	"github.com/halarumdigital/traki-dispatch/services/couriers/repository"
)

var courierTestColumns = []string{
	"id", "fullname", "vehicle_type", "vehicle_plate", "push_token",
	"available", "on_delivery", "completed_deliveries", "last_seen_at",
}

func inPool(mr *miniredis.Miniredis, member string) bool {
	ok, _ := mr.SIsMember(constants.KeyAvailableCourier, member)
	return ok
}

func setupRepo(t *testing.T) (*repository.CourierRepo, sqlmock.Sqlmock, *miniredis.Miniredis) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	repo := repository.NewCourierRepo(&models.Config{}, db, database.NewRedisClientWithConn(client))
	return repo, mock, mr
}

func TestSetAvailability_OnlineJoinsPool(t *testing.T) {
	repo, mock, mr := setupRepo(t)

	courierID := uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE couriers")).
		WithArgs(true, now, courierID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	flipped, err := repo.SetAvailability(context.Background(), courierID, true, now)

	assert.NoError(t, err)
	assert.True(t, flipped)
	assert.True(t, inPool(mr, courierID.String()))
}

func TestSetAvailability_OfflineLeavesPool(t *testing.T) {
	repo, mock, mr := setupRepo(t)

	courierID := uuid.New()
	now := time.Now()

	// courier currently in both pools
	mr.SAdd(constants.KeyAvailableCourier, courierID.String())
	ctx := context.Background()
	require.NoError(t, repo.UpdatePosition(ctx, courierID, models.Location{Latitude: -6.2, Longitude: 106.8}))

	mock.ExpectExec(regexp.QuoteMeta("UPDATE couriers")).
		WithArgs(false, now, courierID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	flipped, err := repo.SetAvailability(ctx, courierID, false, now)

	assert.NoError(t, err)
	assert.True(t, flipped)
	assert.False(t, inPool(mr, courierID.String()))
}

func TestSetAvailability_RepeatedToggleSkipsPool(t *testing.T) {
	repo, mock, mr := setupRepo(t)

	courierID := uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE couriers")).
		WithArgs(true, now, courierID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(courierID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	flipped, err := repo.SetAvailability(context.Background(), courierID, true, now)

	assert.NoError(t, err)
	assert.False(t, flipped)
	assert.False(t, inPool(mr, courierID.String()))
}

func TestSetAvailability_UnknownCourier(t *testing.T) {
	repo, mock, _ := setupRepo(t)

	courierID := uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE couriers")).
		WithArgs(true, now, courierID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(courierID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	_, err := repo.SetAvailability(context.Background(), courierID, true, now)

	assert.ErrorIs(t, err, couriererrors.ErrCourierNotFound)
}

func TestUpdatePosition_StoresGeoAndHash(t *testing.T) {
	repo, _, mr := setupRepo(t)

	courierID := uuid.New()
	loc := models.Location{Latitude: -6.175392, Longitude: 106.827153}

	err := repo.UpdatePosition(context.Background(), courierID, loc)

	assert.NoError(t, err)
	locationKey := fmt.Sprintf(constants.KeyCourierLocation, courierID.String())
	assert.True(t, mr.Exists(locationKey))
	assert.True(t, mr.Exists(constants.KeyCourierGeo))
	assert.Greater(t, mr.TTL(locationKey), time.Duration(0))
}

func TestHeartbeat_UnknownCourier(t *testing.T) {
	repo, mock, _ := setupRepo(t)

	courierID := uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE couriers")).
		WithArgs(now, courierID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Heartbeat(context.Background(), courierID, nil, now)

	assert.ErrorIs(t, err, couriererrors.ErrCourierNotFound)
}

func TestListStaleAvailable_CutoffIsNowMinusStaleness(t *testing.T) {
	repo, mock, _ := setupRepo(t)

	staleness := 90 * time.Second
	now := time.Now()
	staleID := uuid.New()

	stalePattern := regexp.QuoteMeta("WHERE available = true") +
		`\s+` + regexp.QuoteMeta("AND (last_seen_at IS NULL OR last_seen_at < $1)")
	mock.ExpectQuery(stalePattern).
		WithArgs(now.Add(-staleness)).
		WillReturnRows(sqlmock.NewRows(courierTestColumns).
			AddRow(staleID.String(), "Silent", "motorcycle", "B 9 ZZ", "token", true, false, 2, now.Add(-2*staleness)))

	couriers, err := repo.ListStaleAvailable(context.Background(), staleness, now)

	assert.NoError(t, err)
	assert.Len(t, couriers, 1)
	assert.Equal(t, staleID, couriers[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListStaleAvailable_SweepsMidDeliveryCouriers(t *testing.T) {
	repo, mock, _ := setupRepo(t)

	staleness := 90 * time.Second
	now := time.Now()
	carryingID := uuid.New()

	// a silent courier mid-delivery still goes offline
	stalePattern := regexp.QuoteMeta("WHERE available = true") +
		`\s+` + regexp.QuoteMeta("AND (last_seen_at IS NULL OR last_seen_at < $1)")
	mock.ExpectQuery(stalePattern).
		WithArgs(now.Add(-staleness)).
		WillReturnRows(sqlmock.NewRows(courierTestColumns).
			AddRow(carryingID.String(), "Carrying", "motorcycle", "B 8 YY", "token", true, true, 5, nil))

	couriers, err := repo.ListStaleAvailable(context.Background(), staleness, now)

	assert.NoError(t, err)
	assert.Len(t, couriers, 1)
	assert.True(t, couriers[0].OnDelivery)
	assert.Nil(t, couriers[0].LastSeenAt)
}

func TestFindNearbyAvailable_FiltersAndOrders(t *testing.T) {
	repo, mock, _ := setupRepo(t)

	ctx := context.Background()
	now := time.Now()
	origin := models.Location{Latitude: -6.1754, Longitude: 106.8272}

	nearID := uuid.New()
	farID := uuid.New()
	offlineID := uuid.New()

	// three couriers in the geo pool with fresh positions
	require.NoError(t, repo.UpdatePosition(ctx, nearID, models.Location{Latitude: -6.1760, Longitude: 106.8280}))
	require.NoError(t, repo.UpdatePosition(ctx, farID, models.Location{Latitude: -6.1900, Longitude: 106.8400}))
	require.NoError(t, repo.UpdatePosition(ctx, offlineID, models.Location{Latitude: -6.1755, Longitude: 106.8273}))

	seen := now
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, fullname")).
		WillReturnRows(sqlmock.NewRows(courierTestColumns).
			AddRow(nearID.String(), "Near", "motorcycle", "B 1 AA", "token-near", true, false, 10, seen).
			AddRow(farID.String(), "Far", "motorcycle", "B 2 BB", "token-far", true, false, 4, seen).
			AddRow(offlineID.String(), "Offline", "motorcycle", "B 3 CC", "token-off", false, false, 7, seen))

	positions, err := repo.FindNearbyAvailable(ctx, origin, 5.0, "motorcycle", time.Minute, now)

	assert.NoError(t, err)
	assert.Len(t, positions, 2)
	assert.Equal(t, nearID.String(), positions[0].CourierID)
	assert.Equal(t, farID.String(), positions[1].CourierID)
	assert.Less(t, positions[0].Distance, positions[1].Distance)
}

func TestFindNearbyAvailable_MidDeliveryCourierStaysMatchable(t *testing.T) {
	repo, mock, _ := setupRepo(t)

	ctx := context.Background()
	now := time.Now()
	origin := models.Location{Latitude: -6.1754, Longitude: 106.8272}

	carryingID := uuid.New()
	idleID := uuid.New()

	require.NoError(t, repo.UpdatePosition(ctx, carryingID, models.Location{Latitude: -6.1755, Longitude: 106.8273}))
	require.NoError(t, repo.UpdatePosition(ctx, idleID, models.Location{Latitude: -6.1760, Longitude: 106.8280}))

	// the carrying courier already picked up a parcel; on_delivery alone
	// does not exclude a candidate
	seen := now
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, fullname")).
		WillReturnRows(sqlmock.NewRows(courierTestColumns).
			AddRow(carryingID.String(), "Carrying", "motorcycle", "B 1 AA", "token-carry", true, true, 12, seen).
			AddRow(idleID.String(), "Idle", "motorcycle", "B 2 BB", "token-idle", true, false, 3, seen))

	positions, err := repo.FindNearbyAvailable(ctx, origin, 5.0, "motorcycle", time.Minute, now)

	assert.NoError(t, err)
	assert.Len(t, positions, 2)
	assert.Equal(t, carryingID.String(), positions[0].CourierID)
}

func TestFindNearbyAvailable_EmptyPool(t *testing.T) {
	repo, _, _ := setupRepo(t)

	positions, err := repo.FindNearbyAvailable(context.Background(),
		models.Location{Latitude: -6.2, Longitude: 106.8}, 5.0, "motorcycle", time.Minute, time.Now())

	assert.NoError(t, err)
	assert.Empty(t, positions)
}
