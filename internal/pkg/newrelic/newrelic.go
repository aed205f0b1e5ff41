package newrelic

import (
	"log"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/vitrine-app/vitrine/internal/pkg/models"
)

// InitNewRelic creates the New Relic application when enabled. Returns nil
// when disabled or misconfigured; callers treat nil as "no instrumentation".
func InitNewRelic(configs *models.Config) *newrelic.Application {
	if !configs.NewRelic.Enabled || configs.NewRelic.LicenseKey == "" {
		return nil
	}

	nrApp, err := newrelic.NewApplication(
		newrelic.ConfigAppName(configs.NewRelic.AppName),
		newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(true),
	)
	if err != nil {
		log.Printf("Failed to initialize New Relic, continuing without it: %v", err)
		return nil
	}

	return nrApp
}
