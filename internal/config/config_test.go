package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	c := Load()

	if c.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", c.AppPort)
	}
	if c.IdempTTLSecs != 300 {
		t.Fatalf("IdempTTLSecs = %d, want 300", c.IdempTTLSecs)
	}
	if c.WaitlistStaleDays != 14 {
		t.Fatalf("WaitlistStaleDays = %d, want 14", c.WaitlistStaleDays)
	}
	if c.WaitlistReasonWeight != 100 || c.WaitlistAmountWeight != 10 || c.WaitlistAgeWeight != 1 {
		t.Fatalf("weights = %d/%d/%d, want 100/10/1",
			c.WaitlistReasonWeight, c.WaitlistAmountWeight, c.WaitlistAgeWeight)
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("MYSQL_DB", "loans")
	t.Setenv("WAITLIST_STALE_DAYS", "30")
	t.Setenv("IDEMPOTENCY_TTL_SECONDS", "60")

	c := Load()
	if c.AppPort != "9090" || c.MySQLDB != "loans" {
		t.Fatalf("env overrides not applied: %+v", c)
	}
	if c.WaitlistStaleDays != 30 || c.IdempTTLSecs != 60 {
		t.Fatalf("numeric overrides not applied: %+v", c)
	}
}

func TestValidate_Errors(t *testing.T) {
	c := Load()
	c.MySQLPort = "not-a-port"
	if err := c.Validate(); err == nil || !strings.Contains(err.Error(), "MYSQL_PORT") {
		t.Fatalf("expected MYSQL_PORT error, got %v", err)
	}

	c = Load()
	c.WaitlistStaleDays = 0
	if err := c.Validate(); err == nil {
		t.Fatal("expected stale-days error")
	}
}

func TestMySQLDSN(t *testing.T) {
	c := Load()
	dsn := c.MySQLDSN()
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("dsn missing parseTime: %s", dsn)
	}
	if !strings.Contains(dsn, c.MySQLDB) {
		t.Fatalf("dsn missing db name: %s", dsn)
	}
}
