package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %s", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "sqlite" {
		t.Fatalf("DBDriver = %s", cfg.DBDriver)
	}
	if cfg.AccessTTL != 30*time.Minute {
		t.Fatalf("AccessTTL = %s", cfg.AccessTTL)
	}
	if cfg.RefreshTTL != 14*24*time.Hour {
		t.Fatalf("RefreshTTL = %s", cfg.RefreshTTL)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("JWT_ACCESS_TTL_MIN", "5")
	t.Setenv("CORS_ORIGINS", "https://apply.example.com, https://admin.example.com")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("HTTPAddr = %s", cfg.HTTPAddr)
	}
	if cfg.DBDriver != "postgres" {
		t.Fatalf("DBDriver = %s", cfg.DBDriver)
	}
	if cfg.AccessTTL != 5*time.Minute {
		t.Fatalf("AccessTTL = %s", cfg.AccessTTL)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://admin.example.com" {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
}

func TestEnvDurationIgnoresGarbage(t *testing.T) {
	t.Setenv("JWT_ACCESS_TTL_MIN", "soon")
	if got := envDuration("JWT_ACCESS_TTL_MIN", 30); got != 30 {
		t.Fatalf("envDuration = %d, want default 30", got)
	}
	t.Setenv("JWT_ACCESS_TTL_MIN", "-5")
	if got := envDuration("JWT_ACCESS_TTL_MIN", 30); got != 30 {
		t.Fatalf("envDuration = %d, want default 30", got)
	}
}
