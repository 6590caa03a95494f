package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	dispatcherrors "github.com/halarumdigital/traki-dispatch/services/dispatch/errors"
	"github.com/halarumdigital/traki-dispatch/services/dispatch/repository"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestCreateRequest_InsertsRequestAndStops(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	req := &models.DeliveryRequest{
		CompanyID:     uuid.New(),
		VehicleType:   "motorcycle",
		PickupAddress: "Warehouse A",
		Currency:      "IDR",
		Stops: []models.Stop{
			{Rank: 1, Address: "Stop A"},
			{Rank: 2, Address: "Stop B"},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO delivery_requests")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO delivery_stops")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO delivery_stops")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.CreateRequest(context.Background(), req)

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, req.ID)
	assert.Equal(t, models.RequestStatusPending, req.Status)
	assert.Equal(t, req.ID, req.Stops[0].RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaim_WinnerCommitsAndCollectsLosers(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	requestID := uuid.New()
	driverID := uuid.New()
	loserID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE delivery_requests")).
		WithArgs(driverID, now, models.RequestStatusAccepted, requestID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE driver_offers")).
		WithArgs(models.OfferStatusAccepted, now, requestID, driverID, models.OfferStatusNotified).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE driver_offers")).
		WithArgs(models.OfferStatusExpired, requestID, models.OfferStatusNotified).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}).AddRow(loserID.String()))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE couriers")).
		WithArgs(driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	losers, err := repo.Claim(context.Background(), requestID, driverID, now)

	assert.NoError(t, err)
	assert.Equal(t, []uuid.UUID{loserID}, losers)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaim_LoserGetsAlreadyClaimed(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	requestID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE delivery_requests")).
		WithArgs(driverID, now, models.RequestStatusAccepted, requestID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(driverID, requestID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectRollback()

	_, err := repo.Claim(context.Background(), requestID, driverID, now)

	assert.ErrorIs(t, err, dispatcherrors.ErrAlreadyClaimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClaim_DriverWithUnpickedRequestIsRefused(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	requestID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	// the claim update carries the workload exclusion in its own WHERE, so
	// a second parallel accept by the same driver matches zero rows
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("AND NOT EXISTS")).
		WithArgs(driverID, now, models.RequestStatusAccepted, requestID).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(driverID, requestID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	_, err := repo.Claim(context.Background(), requestID, driverID, now)

	assert.ErrorIs(t, err, dispatcherrors.ErrDriverBusy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRequest_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	requestID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(requestID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetRequest(context.Background(), requestID)

	assert.ErrorIs(t, err, dispatcherrors.ErrRequestNotFound)
}

func TestMarkPickedUp_WrongStatusReportsNotApplied(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	requestID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE delivery_requests")).
		WithArgs(models.RequestStatusPickedUp, now, requestID, driverID, models.RequestStatusArrivedPickup).
		WillReturnResult(sqlmock.NewResult(0, 0))

	applied, err := repo.MarkPickedUp(context.Background(), requestID, driverID, now)

	assert.NoError(t, err)
	assert.False(t, applied)
}

func TestCompleteDelivery_FreesCourierOnce(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	requestID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE delivery_requests")).
		WithArgs(models.RequestStatusCompleted, now, requestID, driverID, models.RequestStatusPickedUp).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE couriers")).
		WithArgs(driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := repo.CompleteDelivery(context.Background(), requestID, driverID, now, false)

	assert.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteDelivery_RepeatedCallIsNoop(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	requestID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE delivery_requests")).
		WithArgs(models.RequestStatusCompleted, now, requestID, driverID, models.RequestStatusPickedUp).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	applied, err := repo.CompleteDelivery(context.Background(), requestID, driverID, now, false)

	assert.NoError(t, err)
	assert.False(t, applied)
}

func TestCancelRequest_FreesAssignedCourier(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	requestID := uuid.New()
	driverID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE delivery_requests")).
		WithArgs(models.RequestStatusCancelled, now, "reason", "company", requestID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}).AddRow(driverID.String()))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE couriers")).
		WithArgs(driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	applied, err := repo.CancelRequest(context.Background(), requestID, "reason", "company", now)

	assert.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelRequest_AlreadyTerminalReportsNotApplied(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	requestID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE delivery_requests")).
		WithArgs(models.RequestStatusCancelled, now, "reason", "company", requestID).
		WillReturnRows(sqlmock.NewRows([]string{"driver_id"}))
	mock.ExpectRollback()

	applied, err := repo.CancelRequest(context.Background(), requestID, "reason", "company", now)

	assert.NoError(t, err)
	assert.False(t, applied)
}

func TestCancelUnclaimed_RequiresNullDriver(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	requestID := uuid.New()
	now := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $5 AND driver_id IS NULL")).
		WithArgs(models.RequestStatusCancelled, now, "no driver found in time", "system", requestID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	applied, err := repo.CancelUnclaimed(context.Background(), requestID, "no driver found in time", "system", now)

	assert.NoError(t, err)
	assert.True(t, applied)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelUnclaimed_ClaimedRowIsLeftAlone(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	requestID := uuid.New()
	now := time.Now()

	// a claim committed after the sweep listed this row; the conditional
	// update no longer matches
	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $5 AND driver_id IS NULL")).
		WithArgs(models.RequestStatusCancelled, now, "no driver found in time", "system", requestID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	applied, err := repo.CancelUnclaimed(context.Background(), requestID, "no driver found in time", "system", now)

	assert.NoError(t, err)
	assert.False(t, applied)
}

var requestTestColumns = []string{
	"id", "company_id", "driver_id", "vehicle_type", "needs_return",
	"pickup_address", "pickup_latitude", "pickup_longitude", "pickup_contact",
	"driver_payout", "currency", "status", "cancel_reason", "cancelled_by",
	"is_completed", "is_cancelled",
	"scheduled_at", "accepted_at", "arrived_at", "trip_started_at", "delivered_at",
	"return_started_at", "returned_at", "completed_at", "cancelled_at",
	"created_at", "updated_at",
}

func TestListUnclaimedOlderThan_CutoffIsNowMinusMaxAge(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	requestID := uuid.New()
	maxAge := 7 * time.Minute
	now := time.Now()
	created := now.Add(-maxAge - time.Second)

	mock.ExpectQuery(regexp.QuoteMeta("COALESCE(scheduled_at, created_at) < $1")).
		WithArgs(now.Add(-maxAge)).
		WillReturnRows(sqlmock.NewRows(requestTestColumns).
			AddRow(requestID.String(), uuid.New().String(), nil, "motorcycle", false,
				"Warehouse A", -6.2, 106.8, "ops",
				20000, "IDR", string(models.RequestStatusNotifying), nil, nil,
				false, false,
				nil, nil, nil, nil, nil,
				nil, nil, nil, nil,
				created, created))

	requests, err := repo.ListUnclaimedOlderThan(context.Background(), maxAge, now)

	assert.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, requestID, requests[0].ID)
	assert.Nil(t, requests[0].DriverID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDriverHasUnpickedActive(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := repository.NewRequestRepository(&models.Config{}, db)

	driverID := uuid.New()
	excludeID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT EXISTS")).
		WithArgs(driverID, excludeID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	busy, err := repo.DriverHasUnpickedActive(context.Background(), driverID, excludeID)

	assert.NoError(t, err)
	assert.True(t, busy)
}
