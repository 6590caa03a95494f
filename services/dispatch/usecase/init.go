package usecase

import (
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	"github.com/halarumdigital/traki-dispatch/services/dispatch"
)

// DispatchUC implements the dispatch use case interface
type DispatchUC struct {
	cfg          *models.Config
	requestRepo  dispatch.RequestRepo
	offerRepo    dispatch.OfferRepo
	courierRepo  dispatch.CourierRepo
	settingsRepo dispatch.SettingsRepo
	dispatchGW   dispatch.DispatchGW
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	requestRepo dispatch.RequestRepo,
	offerRepo dispatch.OfferRepo,
	courierRepo dispatch.CourierRepo,
	settingsRepo dispatch.SettingsRepo,
	dispatchGW dispatch.DispatchGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:          cfg,
		requestRepo:  requestRepo,
		offerRepo:    offerRepo,
		courierRepo:  courierRepo,
		settingsRepo: settingsRepo,
		dispatchGW:   dispatchGW,
	}
}
