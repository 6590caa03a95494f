package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	couriererrors "github.com/halarumdigital/traki-dispatch/services/couriers/errors"
	"github.com/halarumdigital/traki-dispatch/services/couriers/mocks"
)

func newCourierContext(t *testing.T, method string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	var buf bytes.Buffer
	if body != nil {
		assert.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	request := httptest.NewRequest(method, "/", &buf)
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	return e.NewContext(request, recorder), recorder
}

func TestSetAvailability_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCourierUC(ctrl)
	handler := NewCourierHandler(mockUC)

	courierID := uuid.New()

	mockUC.EXPECT().SetAvailability(gomock.Any(), courierID, true).Return(nil)

	c, recorder := newCourierContext(t, http.MethodPost, map[string]interface{}{
		"available": true,
	})
	c.SetParamNames("id")
	c.SetParamValues(courierID.String())

	err := handler.SetAvailability(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestSetAvailability_UnknownCourier(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCourierUC(ctrl)
	handler := NewCourierHandler(mockUC)

	courierID := uuid.New()

	mockUC.EXPECT().SetAvailability(gomock.Any(), courierID, false).
		Return(couriererrors.ErrCourierNotFound)

	c, recorder := newCourierContext(t, http.MethodPost, map[string]interface{}{
		"available": false,
	})
	c.SetParamNames("id")
	c.SetParamValues(courierID.String())

	err := handler.SetAvailability(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "Courier not found", response["error"])
}

func TestHeartbeat_WithPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCourierUC(ctrl)
	handler := NewCourierHandler(mockUC)

	courierID := uuid.New()

	mockUC.EXPECT().Heartbeat(gomock.Any(), courierID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, loc *models.Location) error {
			assert.NotNil(t, loc)
			assert.InDelta(t, -6.2, loc.Latitude, 0.0001)
			assert.InDelta(t, 106.8, loc.Longitude, 0.0001)
			return nil
		})

	c, recorder := newCourierContext(t, http.MethodPost, map[string]interface{}{
		"latitude":  -6.2,
		"longitude": 106.8,
	})
	c.SetParamNames("id")
	c.SetParamValues(courierID.String())

	err := handler.Heartbeat(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHeartbeat_WithoutPosition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCourierUC(ctrl)
	handler := NewCourierHandler(mockUC)

	courierID := uuid.New()

	mockUC.EXPECT().Heartbeat(gomock.Any(), courierID, gomock.Nil()).Return(nil)

	c, recorder := newCourierContext(t, http.MethodPost, map[string]interface{}{})
	c.SetParamNames("id")
	c.SetParamValues(courierID.String())

	err := handler.Heartbeat(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestRegisterPushToken_MissingToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCourierUC(ctrl)
	handler := NewCourierHandler(mockUC)

	c, recorder := newCourierContext(t, http.MethodPost, map[string]interface{}{})
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())

	err := handler.RegisterPushToken(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestGetCourier_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUC := mocks.NewMockCourierUC(ctrl)
	handler := NewCourierHandler(mockUC)

	c, recorder := newCourierContext(t, http.MethodGet, nil)
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := handler.GetCourier(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
