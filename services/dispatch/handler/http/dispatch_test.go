package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	"github.com/halarumdigital/traki-dispatch/services/dispatch"
	dispatcherrors "github.com/halarumdigital/traki-dispatch/services/dispatch/errors"
	"github.com/halarumdigital/traki-dispatch/services/dispatch/mocks"
)

func newHandlerContext(t *testing.T, method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	request := httptest.NewRequest(method, path, &buf)
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestCreateRequest_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	companyID := uuid.New()
	created := &models.DeliveryRequest{ID: uuid.New(), CompanyID: companyID, Status: models.RequestStatusNotifying}

	mockUC.EXPECT().CreateAndDispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.DeliveryRequest) (*models.DeliveryRequest, error) {
			assert.Equal(t, companyID, req.CompanyID)
			assert.Len(t, req.Stops, 2)
			assert.Equal(t, 1, req.Stops[0].Rank)
			assert.Equal(t, 2, req.Stops[1].Rank)
			return created, nil
		})

	c, recorder := newHandlerContext(t, http.MethodPost, "/requests", map[string]interface{}{
		"company_id":     companyID.String(),
		"vehicle_type":   "motorcycle",
		"pickup_address": "Warehouse A",
		"stops": []map[string]interface{}{
			{"address": "Stop A"},
			{"address": "Stop B"},
		},
	})

	err := handler.CreateRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Request created", response["message"])
}

func TestCreateRequest_NoDriversStillCreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	companyID := uuid.New()
	created := &models.DeliveryRequest{ID: uuid.New(), CompanyID: companyID}

	mockUC.EXPECT().CreateAndDispatch(gomock.Any(), gomock.Any()).
		Return(created, dispatcherrors.ErrNoDriversAvailable)

	c, recorder := newHandlerContext(t, http.MethodPost, "/requests", map[string]interface{}{
		"company_id":     companyID.String(),
		"vehicle_type":   "motorcycle",
		"pickup_address": "Warehouse A",
		"stops":          []map[string]interface{}{{"address": "Stop A"}},
	})

	err := handler.CreateRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Request created, no drivers available yet", response["message"])
}

func TestCreateRequest_MissingStops(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	c, recorder := newHandlerContext(t, http.MethodPost, "/requests", map[string]interface{}{
		"company_id":     uuid.New().String(),
		"vehicle_type":   "motorcycle",
		"pickup_address": "Warehouse A",
	})

	err := handler.CreateRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "at least one stop is required", response["error"])
}

func TestCreateRequest_InvalidCompanyID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	c, recorder := newHandlerContext(t, http.MethodPost, "/requests", map[string]interface{}{
		"company_id":     "not-a-uuid",
		"vehicle_type":   "motorcycle",
		"pickup_address": "Warehouse A",
		"stops":          []map[string]interface{}{{"address": "Stop A"}},
	})

	err := handler.CreateRequest(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestRespond_AcceptWinsOffer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	requestID := uuid.New()
	driverID := uuid.New()
	claimed := &models.DeliveryRequest{ID: requestID, DriverID: &driverID, Status: models.RequestStatusAccepted}

	mockUC.EXPECT().Accept(gomock.Any(), requestID, driverID).Return(claimed, nil)

	c, recorder := newHandlerContext(t, http.MethodPost, "/", map[string]interface{}{
		"driver_id": driverID.String(),
		"response":  "accept",
	})
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.Respond(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRespond_AcceptLosesRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	requestID := uuid.New()
	driverID := uuid.New()

	mockUC.EXPECT().Accept(gomock.Any(), requestID, driverID).
		Return(nil, dispatcherrors.ErrAlreadyClaimed)

	c, recorder := newHandlerContext(t, http.MethodPost, "/", map[string]interface{}{
		"driver_id": driverID.String(),
		"response":  "accept",
	})
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.Respond(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Offer taken by another driver", response["error"])
}

func TestRespond_ExpiredOfferIsGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	requestID := uuid.New()
	driverID := uuid.New()

	mockUC.EXPECT().Accept(gomock.Any(), requestID, driverID).
		Return(nil, dispatcherrors.ErrOfferExpired)

	c, recorder := newHandlerContext(t, http.MethodPost, "/", map[string]interface{}{
		"driver_id": driverID.String(),
		"response":  "accept",
	})
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.Respond(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusGone, recorder.Code)
}

func TestRespond_InvalidResponseValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	c, recorder := newHandlerContext(t, http.MethodPost, "/", map[string]interface{}{
		"driver_id": uuid.New().String(),
		"response":  "maybe",
	})
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := handler.Respond(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestUpdateStatus_AdvancesLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	requestID := uuid.New()
	driverID := uuid.New()

	mockUC.EXPECT().Advance(gomock.Any(), requestID, driverID, models.TransitionPickedUp).
		Return(&dispatch.TransitionResult{Status: models.RequestStatusPickedUp, Applied: true}, nil)

	c, recorder := newHandlerContext(t, http.MethodPost, "/", map[string]interface{}{
		"driver_id":  driverID.String(),
		"transition": "picked_up",
	})
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.UpdateStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestUpdateStatus_OutOfOrderTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	requestID := uuid.New()
	driverID := uuid.New()

	mockUC.EXPECT().Advance(gomock.Any(), requestID, driverID, models.TransitionDelivered).
		Return(nil, dispatcherrors.ErrInvalidTransition)

	c, recorder := newHandlerContext(t, http.MethodPost, "/", map[string]interface{}{
		"driver_id":  driverID.String(),
		"transition": "delivered",
	})
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.UpdateStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestCancel_TerminalRequestConflicts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	requestID := uuid.New()

	mockUC.EXPECT().Cancel(gomock.Any(), requestID, "company", "too late").
		Return(dispatcherrors.ErrAlreadyTerminal)

	c, recorder := newHandlerContext(t, http.MethodPost, "/", map[string]interface{}{
		"reason": "too late",
	})
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.Cancel(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusConflict, recorder.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Request already completed or cancelled", response["error"])
}

func TestListOffers_EmptyListNotNull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	driverID := uuid.New()

	mockUC.EXPECT().ListPendingOffers(gomock.Any(), driverID).Return(nil, nil)

	c, recorder := newHandlerContext(t, http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(driverID.String())

	err := handler.ListOffers(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, []interface{}{}, response["data"])
}

func TestTriggerDispatch_ReportsOfferCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	requestID := uuid.New()

	mockUC.EXPECT().Dispatch(gomock.Any(), requestID).Return(3, nil)

	c, recorder := newHandlerContext(t, http.MethodPost, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(requestID.String())

	err := handler.TriggerDispatch(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["offers_created"])
}

func TestUpdateSettings_RejectsInvalidValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(mockUC)

	mockUC.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).
		Return(errors.New("search_radius_km must be positive"))

	c, recorder := newHandlerContext(t, http.MethodPut, "/", map[string]interface{}{
		"search_radius_km": -1.0,
	})

	err := handler.UpdateSettings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
