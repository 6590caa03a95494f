package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	"github.com/jmoiron/sqlx"
)

// SettingsRepo reads and writes the dispatch settings singleton row. Reads go
// through a short-lived cache so the settings are hot-reloadable without
// hitting the database on every dispatch decision.
type SettingsRepo struct {
	db  *sqlx.DB
	ttl time.Duration

	mu        sync.RWMutex
	cached    models.DispatchSettings
	fetchedAt time.Time
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(cfg *models.Config, db *sqlx.DB) *SettingsRepo {
	ttl := time.Duration(cfg.Monitor.SettingsCacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 15 * time.Second
	}
	return &SettingsRepo{db: db, ttl: ttl}
}

// Get returns the current dispatch settings, from cache when fresh
func (r *SettingsRepo) Get(ctx context.Context) (models.DispatchSettings, error) {
	r.mu.RLock()
	if time.Since(r.fetchedAt) < r.ttl {
		settings := r.cached
		r.mu.RUnlock()
		return settings, nil
	}
	r.mu.RUnlock()

	query := `
		SELECT search_radius_km, acceptance_timeout_seconds, min_search_time_seconds,
			auto_cancel_timeout_minutes, heartbeat_timeout_seconds, updated_at
		FROM dispatch_settings
		WHERE id = 1
	`
	var settings models.DispatchSettings
	err := r.db.QueryRowContext(ctx, query).Scan(
		&settings.SearchRadiusKm, &settings.AcceptanceTimeoutSeconds, &settings.MinSearchTimeSeconds,
		&settings.AutoCancelTimeoutMinutes, &settings.HeartbeatTimeoutSeconds, &settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// settings row not seeded yet
			return models.DefaultDispatchSettings(), nil
		}
		return models.DispatchSettings{}, fmt.Errorf("failed to load dispatch settings: %w", err)
	}

	r.mu.Lock()
	r.cached = settings
	r.fetchedAt = time.Now()
	r.mu.Unlock()

	return settings, nil
}

// Update writes the settings row and invalidates the cache so the new values
// take effect on the next read
func (r *SettingsRepo) Update(ctx context.Context, settings models.DispatchSettings) error {
	query := `
		INSERT INTO dispatch_settings (
			id, search_radius_km, acceptance_timeout_seconds, min_search_time_seconds,
			auto_cancel_timeout_minutes, heartbeat_timeout_seconds, updated_at
		) VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			search_radius_km = EXCLUDED.search_radius_km,
			acceptance_timeout_seconds = EXCLUDED.acceptance_timeout_seconds,
			min_search_time_seconds = EXCLUDED.min_search_time_seconds,
			auto_cancel_timeout_minutes = EXCLUDED.auto_cancel_timeout_minutes,
			heartbeat_timeout_seconds = EXCLUDED.heartbeat_timeout_seconds,
			updated_at = EXCLUDED.updated_at
	`
	_, err := r.db.ExecContext(ctx, query,
		settings.SearchRadiusKm, settings.AcceptanceTimeoutSeconds, settings.MinSearchTimeSeconds,
		settings.AutoCancelTimeoutMinutes, settings.HeartbeatTimeoutSeconds, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("failed to update dispatch settings: %w", err)
	}

	r.mu.Lock()
	r.fetchedAt = time.Time{}
	r.mu.Unlock()

	return nil
}
