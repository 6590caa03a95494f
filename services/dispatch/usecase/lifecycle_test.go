package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	dispatcherrors "github.com/halarumdigital/traki-dispatch/services/dispatch/errors"
)

func assignedRequest(requestID, driverID uuid.UUID, status models.RequestStatus) *models.DeliveryRequest {
	return &models.DeliveryRequest{
		ID:            requestID,
		CompanyID:     uuid.New(),
		DriverID:      &driverID,
		VehicleType:   "motorcycle",
		PickupAddress: "Jl. Sudirman 1",
		Status:        status,
		CreatedAt:     time.Now().Add(-10 * time.Minute),
		Stops: []models.Stop{
			{ID: uuid.New(), Rank: 1, Address: "Stop A", Status: models.StopStatusPending},
		},
	}
}

func TestAdvance_ArrivedPickup(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	driverID := uuid.New()
	req := assignedRequest(requestID, driverID, models.RequestStatusAccepted)

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)
	m.requestRepo.EXPECT().MarkArrivedPickup(gomock.Any(), requestID, driverID, gomock.Any()).Return(true, nil)
	m.dispatchGW.EXPECT().PublishRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Advance(context.Background(), requestID, driverID, models.TransitionArrivedPickup)

	assert.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, models.RequestStatusArrivedPickup, result.Status)
}

func TestAdvance_PickedUpRequiresArrival(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	driverID := uuid.New()
	req := assignedRequest(requestID, driverID, models.RequestStatusAccepted)

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)
	m.requestRepo.EXPECT().MarkPickedUp(gomock.Any(), requestID, driverID, gomock.Any()).Return(false, nil)

	_, err := uc.Advance(context.Background(), requestID, driverID, models.TransitionPickedUp)

	assert.ErrorIs(t, err, dispatcherrors.ErrInvalidTransition)
}

func TestAdvance_RepeatedArrivalIsIdempotent(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	driverID := uuid.New()
	req := assignedRequest(requestID, driverID, models.RequestStatusArrivedPickup)

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)
	m.requestRepo.EXPECT().MarkArrivedPickup(gomock.Any(), requestID, driverID, gomock.Any()).Return(false, nil)

	result, err := uc.Advance(context.Background(), requestID, driverID, models.TransitionArrivedPickup)

	assert.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Equal(t, models.RequestStatusArrivedPickup, result.Status)
}

func TestAdvance_DeliveredWithRemainingStops(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	driverID := uuid.New()
	req := assignedRequest(requestID, driverID, models.RequestStatusPickedUp)
	req.Stops = []models.Stop{
		{ID: uuid.New(), Rank: 1, Address: "Stop A", Status: models.StopStatusPending},
		{ID: uuid.New(), Rank: 2, Address: "Stop B", Status: models.StopStatusPending},
	}

	completed := &req.Stops[0]
	next := &req.Stops[1]

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)
	m.requestRepo.EXPECT().CompleteNextStop(gomock.Any(), requestID, gomock.Any()).Return(completed, next, nil)
	m.dispatchGW.EXPECT().PublishStopCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev models.StopCompletedEvent) error {
			assert.Equal(t, 1, ev.CompletedRank)
			assert.Equal(t, 2, ev.NextStop.Rank)
			return nil
		})

	result, err := uc.Advance(context.Background(), requestID, driverID, models.TransitionDelivered)

	assert.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, models.RequestStatusPickedUp, result.Status)
	assert.Equal(t, 2, result.NextStop.Rank)
}

func TestAdvance_FinalStopCompletesWithoutReturn(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	driverID := uuid.New()
	req := assignedRequest(requestID, driverID, models.RequestStatusPickedUp)
	completed := &req.Stops[0]

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)
	m.requestRepo.EXPECT().CompleteNextStop(gomock.Any(), requestID, gomock.Any()).Return(completed, nil, nil)
	m.dispatchGW.EXPECT().PublishStopCompleted(gomock.Any(), gomock.Any()).Return(nil)
	m.requestRepo.EXPECT().CompleteDelivery(gomock.Any(), requestID, driverID, gomock.Any(), false).Return(true, nil)
	m.dispatchGW.EXPECT().PublishRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Advance(context.Background(), requestID, driverID, models.TransitionDelivered)

	assert.NoError(t, err)
	assert.True(t, result.Applied)
	assert.Equal(t, models.RequestStatusCompleted, result.Status)
	assert.Nil(t, result.NextStop)
}

func TestAdvance_FinalStopParksAwaitingReturn(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	driverID := uuid.New()
	req := assignedRequest(requestID, driverID, models.RequestStatusPickedUp)
	req.NeedsReturn = true
	completed := &req.Stops[0]

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)
	m.requestRepo.EXPECT().CompleteNextStop(gomock.Any(), requestID, gomock.Any()).Return(completed, nil, nil)
	m.dispatchGW.EXPECT().PublishStopCompleted(gomock.Any(), gomock.Any()).Return(nil)
	m.requestRepo.EXPECT().MarkAwaitingReturn(gomock.Any(), requestID, driverID, gomock.Any()).Return(true, nil)
	m.dispatchGW.EXPECT().PublishRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Advance(context.Background(), requestID, driverID, models.TransitionDelivered)

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusAwaitingReturn, result.Status)
}

func TestAdvance_ReturnLeg(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	driverID := uuid.New()

	// start the return leg
	awaiting := assignedRequest(requestID, driverID, models.RequestStatusAwaitingReturn)
	awaiting.NeedsReturn = true
	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(awaiting, nil)
	m.requestRepo.EXPECT().StartReturn(gomock.Any(), requestID, driverID, gomock.Any()).Return(true, nil)
	m.dispatchGW.EXPECT().PublishRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

	result, err := uc.Advance(context.Background(), requestID, driverID, models.TransitionReturnStarted)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusReturnStarted, result.Status)

	// finish it
	returning := assignedRequest(requestID, driverID, models.RequestStatusReturnStarted)
	returning.NeedsReturn = true
	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(returning, nil)
	m.requestRepo.EXPECT().CompleteDelivery(gomock.Any(), requestID, driverID, gomock.Any(), true).Return(true, nil)
	m.dispatchGW.EXPECT().PublishRequestStatus(gomock.Any(), gomock.Any()).Return(nil)

	result, err = uc.Advance(context.Background(), requestID, driverID, models.TransitionReturned)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, result.Status)
}

func TestAdvance_ReturnTransitionsRejectedWithoutReturnLeg(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	driverID := uuid.New()
	req := assignedRequest(requestID, driverID, models.RequestStatusPickedUp)

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)

	_, err := uc.Advance(context.Background(), requestID, driverID, models.TransitionReturnStarted)

	assert.ErrorIs(t, err, dispatcherrors.ErrInvalidTransition)
}

func TestAdvance_ForeignDriverSeesNotFound(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	owner := uuid.New()
	stranger := uuid.New()
	req := assignedRequest(requestID, owner, models.RequestStatusAccepted)

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)

	_, err := uc.Advance(context.Background(), requestID, stranger, models.TransitionArrivedPickup)

	assert.ErrorIs(t, err, dispatcherrors.ErrRequestNotFound)
}

func TestAdvance_CancelledRequestIsTerminal(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	driverID := uuid.New()
	req := assignedRequest(requestID, driverID, models.RequestStatusCancelled)
	req.IsCancelled = true

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)

	_, err := uc.Advance(context.Background(), requestID, driverID, models.TransitionDelivered)

	assert.ErrorIs(t, err, dispatcherrors.ErrAlreadyTerminal)
}

func TestAdvance_RepeatedDeliveredOnCompletedRequest(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	driverID := uuid.New()
	req := assignedRequest(requestID, driverID, models.RequestStatusCompleted)
	req.IsCompleted = true

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)

	result, err := uc.Advance(context.Background(), requestID, driverID, models.TransitionDelivered)

	assert.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Equal(t, models.RequestStatusCompleted, result.Status)
}

func TestCancel_BeforeClaimRevokesOffers(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	notifiedID := uuid.New()
	req := unclaimedRequest(requestID)
	req.Status = models.RequestStatusNotifying

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)
	m.requestRepo.EXPECT().CancelRequest(gomock.Any(), requestID, "changed my mind", "company", gomock.Any()).Return(true, nil)
	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)
	m.offerRepo.EXPECT().CancelNotified(gomock.Any(), requestID, gomock.Any()).Return([]uuid.UUID{notifiedID}, nil)
	m.courierRepo.EXPECT().GetCourier(gomock.Any(), notifiedID).Return(&models.Courier{
		ID:        notifiedID,
		PushToken: "token",
	}, nil)
	m.dispatchGW.EXPECT().SendPush(gomock.Any(), gomock.Any()).Return(nil)
	m.dispatchGW.EXPECT().PublishRequestCancelled(gomock.Any(), gomock.Any()).Return(nil)

	err := uc.Cancel(context.Background(), requestID, "company", "changed my mind")

	assert.NoError(t, err)
}

func TestCancel_AfterClaimNotifiesAssignedDriver(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	driverID := uuid.New()
	req := assignedRequest(requestID, driverID, models.RequestStatusAccepted)

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)
	m.requestRepo.EXPECT().CancelRequest(gomock.Any(), requestID, "recipient unavailable", "company", gomock.Any()).Return(true, nil)
	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)
	m.courierRepo.EXPECT().GetCourier(gomock.Any(), driverID).Return(&models.Courier{
		ID:        driverID,
		PushToken: "driver-token",
	}, nil)
	m.dispatchGW.EXPECT().SendPush(gomock.Any(), gomock.Any()).Return(nil)
	m.dispatchGW.EXPECT().PublishRequestCancelled(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, ev models.RequestCancelledEvent) error {
			assert.Equal(t, driverID, *ev.DriverID)
			return nil
		})

	err := uc.Cancel(context.Background(), requestID, "company", "recipient unavailable")

	assert.NoError(t, err)
}

func TestCancel_TerminalRequest(t *testing.T) {
	uc, m, ctrl := newTestUC(t)
	defer ctrl.Finish()

	requestID := uuid.New()
	req := unclaimedRequest(requestID)
	req.IsCompleted = true

	m.requestRepo.EXPECT().GetRequest(gomock.Any(), requestID).Return(req, nil)

	err := uc.Cancel(context.Background(), requestID, "company", "too late")

	assert.ErrorIs(t, err, dispatcherrors.ErrAlreadyTerminal)
}
