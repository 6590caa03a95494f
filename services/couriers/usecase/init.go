package usecase

import (
	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	"github.com/halarumdigital/traki-dispatch/services/couriers"
)

// CourierUC implements the courier use case interface
type CourierUC struct {
	cfg         *models.Config
	courierRepo couriers.CourierRepo
	settings    couriers.SettingsReader
	courierGW   couriers.CourierGW
}

// NewCourierUC creates a new courier use case
func NewCourierUC(
	cfg *models.Config,
	courierRepo couriers.CourierRepo,
	settings couriers.SettingsReader,
	courierGW couriers.CourierGW,
) *CourierUC {
	return &CourierUC{
		cfg:         cfg,
		courierRepo: courierRepo,
		settings:    settings,
		courierGW:   courierGW,
	}
}
