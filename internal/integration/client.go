package integration

import (
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tinysteps/session-service/config"
)

// newRestyClient builds the shared HTTP client for service-to-service calls.
// Internal requests authenticate with the platform API key header.
func newRestyClient(cfg config.IntegrationConfig) *resty.Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	if cfg.InternalAPIKey != "" {
		client.SetHeader("X-Internal-Api-Key", cfg.InternalAPIKey)
	}

	return client
}
