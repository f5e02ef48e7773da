package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"DATABASE_URL", "REDIS_ADDR", "REDIS_PREFIX", "USER_NAME",
		"CHARACTER_ID", "CACHE_TTL_SECONDS", "SNAPSHOT_TOP_K",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.UserName != "User" {
		t.Fatalf("expected default user name, got %q", cfg.UserName)
	}
	if cfg.SnapshotTopK != 5 {
		t.Fatalf("expected default top-k 5, got %d", cfg.SnapshotTopK)
	}
	if cfg.CacheTTL != 0 {
		t.Fatalf("expected no TTL by default, got %v", cfg.CacheTTL)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/simdb")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("USER_NAME", "Rizky")
	t.Setenv("CACHE_TTL_SECONDS", "90")
	t.Setenv("SNAPSHOT_TOP_K", "3")

	cfg := Load()
	if cfg.DatabaseURL != "postgres://localhost/simdb" {
		t.Fatalf("unexpected database url %q", cfg.DatabaseURL)
	}
	if cfg.UserName != "Rizky" {
		t.Fatalf("unexpected user name %q", cfg.UserName)
	}
	if cfg.CacheTTL != 90*time.Second {
		t.Fatalf("unexpected ttl %v", cfg.CacheTTL)
	}
	if cfg.SnapshotTopK != 3 {
		t.Fatalf("unexpected top-k %d", cfg.SnapshotTopK)
	}
}

func TestLoadIgnoresBadInt(t *testing.T) {
	t.Setenv("SNAPSHOT_TOP_K", "not-a-number")
	if cfg := Load(); cfg.SnapshotTopK != 5 {
		t.Fatalf("expected fallback to default, got %d", cfg.SnapshotTopK)
	}
}
