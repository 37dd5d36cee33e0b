package config

import "fmt"

// Validate applies defaults and rejects configurations the service
// cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port == 0 {
		c.Server.Port = 8084
	}
	if c.Server.TimeoutSeconds == 0 {
		c.Server.TimeoutSeconds = 30
	}
	if c.Server.Environment == "" {
		c.Server.Environment = "development"
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port == 0 {
		c.Database.Port = 5432
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}

	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = "session-service"
	}

	switch c.Transfer.LedgerBackend {
	case "":
		c.Transfer.LedgerBackend = "memory"
	case "memory", "redis":
	default:
		return fmt.Errorf("transfer.ledger_backend must be \"memory\" or \"redis\", got %q", c.Transfer.LedgerBackend)
	}
	if c.Transfer.LedgerTTLHours <= 0 {
		c.Transfer.LedgerTTLHours = 72
	}

	if c.Integration.TimeoutSeconds <= 0 {
		c.Integration.TimeoutSeconds = 5
	}
	if c.Integration.Breaker.ErrorThreshold <= 0 {
		c.Integration.Breaker.ErrorThreshold = 3
	}
	if c.Integration.Breaker.SuccessThreshold <= 0 {
		c.Integration.Breaker.SuccessThreshold = 1
	}
	if c.Integration.Breaker.TimeoutSeconds <= 0 {
		c.Integration.Breaker.TimeoutSeconds = 30
	}

	return nil
}
