package newrelic

import (
	"log"

	"github.com/halarumdigital/traki-dispatch/internal/pkg/models"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// InitNewRelic initializes the New Relic application when enabled. A nil
// return simply disables APM; it is never fatal.
func InitNewRelic(cfg *models.Config) *newrelic.Application {
	if !cfg.NewRelic.Enabled || cfg.NewRelic.LicenseKey == "" {
		return nil
	}

	appName := cfg.NewRelic.AppName
	if appName == "" {
		appName = cfg.App.Name
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(appName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(cfg.NewRelic.ForwardLogs),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: failed to initialize New Relic: %v", err)
		return nil
	}

	return app
}
