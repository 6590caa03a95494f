package models

import "time"

// DispatchSettings is the process-wide, hot-reloadable dispatch configuration.
// It is persisted in the dispatch_settings table and read through a cached
// repository so updates take effect without a restart.
type DispatchSettings struct {
	SearchRadiusKm           float64   `json:"search_radius_km" db:"search_radius_km"`
	AcceptanceTimeoutSeconds int       `json:"acceptance_timeout_seconds" db:"acceptance_timeout_seconds"`
	MinSearchTimeSeconds     int       `json:"min_search_time_seconds" db:"min_search_time_seconds"`
	AutoCancelTimeoutMinutes int       `json:"auto_cancel_timeout_minutes" db:"auto_cancel_timeout_minutes"`
	HeartbeatTimeoutSeconds  int       `json:"heartbeat_timeout_seconds" db:"heartbeat_timeout_seconds"`
	UpdatedAt                time.Time `json:"updated_at" db:"updated_at"`
}

// DefaultDispatchSettings are used until the settings row has been seeded
func DefaultDispatchSettings() DispatchSettings {
	return DispatchSettings{
		SearchRadiusKm:           5.0,
		AcceptanceTimeoutSeconds: 60,
		MinSearchTimeSeconds:     120,
		AutoCancelTimeoutMinutes: 30,
		HeartbeatTimeoutSeconds:  90,
	}
}

// AcceptanceTimeout returns the offer acceptance window as a duration
func (s DispatchSettings) AcceptanceTimeout() time.Duration {
	return time.Duration(s.AcceptanceTimeoutSeconds) * time.Second
}

// HeartbeatTimeout returns the liveness staleness window as a duration
func (s DispatchSettings) HeartbeatTimeout() time.Duration {
	return time.Duration(s.HeartbeatTimeoutSeconds) * time.Second
}

// AutoCancelAge returns the minimum age before an unclaimed request may be
// auto-cancelled. The minimum search time acts as a floor so a request always
// gets its full matching window.
func (s DispatchSettings) AutoCancelAge() time.Duration {
	age := time.Duration(s.AutoCancelTimeoutMinutes) * time.Minute
	if floor := time.Duration(s.MinSearchTimeSeconds) * time.Second; age < floor {
		return floor
	}
	return age
}
