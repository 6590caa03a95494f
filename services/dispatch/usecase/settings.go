package usecase

import (
	"context"
	"fmt"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
)

// GetSettings returns the current dispatch tuning values
func (uc *DispatchUC) GetSettings(ctx context.Context) (models.DispatchSettings, error) {
	return uc.settingsRepo.Get(ctx)
}

// UpdateSettings persists new tuning values. They apply to dispatch cycles
// that start after the settings cache expires; in-flight offers keep the
// deadline they were created with.
func (uc *DispatchUC) UpdateSettings(ctx context.Context, settings models.DispatchSettings) error {
	if settings.SearchRadiusKm <= 0 {
		return fmt.Errorf("search_radius_km must be positive")
	}
	if settings.AcceptanceTimeoutSeconds <= 0 {
		return fmt.Errorf("acceptance_timeout_seconds must be positive")
	}
	if settings.MinSearchTimeSeconds < 0 {
		return fmt.Errorf("min_search_time_seconds must not be negative")
	}
	if settings.AutoCancelTimeoutMinutes <= 0 {
		return fmt.Errorf("auto_cancel_timeout_minutes must be positive")
	}
	if settings.HeartbeatTimeoutSeconds <= 0 {
		return fmt.Errorf("heartbeat_timeout_seconds must be positive")
	}
	return uc.settingsRepo.Update(ctx, settings)
}
