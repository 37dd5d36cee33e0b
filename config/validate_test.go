package config

import "testing"

func validBase() Config {
	var c Config
	c.Database.Host = "localhost"
	return c
}

func TestValidateAppliesDefaults(t *testing.T) {
	c := validBase()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if c.Server.Port != 8084 {
		t.Errorf("Server.Port = %d, want 8084", c.Server.Port)
	}
	if c.Server.Environment != "development" {
		t.Errorf("Server.Environment = %q, want development", c.Server.Environment)
	}
	if c.Database.Port != 5432 {
		t.Errorf("Database.Port = %d, want 5432", c.Database.Port)
	}
	if c.Transfer.LedgerBackend != "memory" {
		t.Errorf("Transfer.LedgerBackend = %q, want memory", c.Transfer.LedgerBackend)
	}
	if c.Transfer.LedgerTTLHours != 72 {
		t.Errorf("Transfer.LedgerTTLHours = %d, want 72", c.Transfer.LedgerTTLHours)
	}
	if c.Integration.Breaker.ErrorThreshold != 3 {
		t.Errorf("Breaker.ErrorThreshold = %d, want 3", c.Integration.Breaker.ErrorThreshold)
	}
}

func TestValidateRejections(t *testing.T) {
	t.Run("missing database host", func(t *testing.T) {
		var c Config
		if err := c.Validate(); err == nil {
			t.Error("Validate() accepted empty database.host")
		}
	})

	t.Run("unknown ledger backend", func(t *testing.T) {
		c := validBase()
		c.Transfer.LedgerBackend = "dynamo"
		if err := c.Validate(); err == nil {
			t.Error("Validate() accepted unknown ledger backend")
		}
	})
}

func TestValidateKeepsExplicitValues(t *testing.T) {
	c := validBase()
	c.Server.Port = 9000
	c.Transfer.LedgerBackend = "redis"

	if err := c.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if c.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", c.Server.Port)
	}
	if c.Transfer.LedgerBackend != "redis" {
		t.Errorf("Transfer.LedgerBackend = %q, want redis", c.Transfer.LedgerBackend)
	}
}
