package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
env: staging
http:
  addr: ":9090"
postgres:
  dsn: postgres://mod:mod@db:5432/skynet
discord:
  token: file-token
enforcement:
  cooldown_ttl: 2m
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Env != "staging" {
		t.Fatalf("unexpected env: %s", cfg.Env)
	}
	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Postgres.DSN != "postgres://mod:mod@db:5432/skynet" {
		t.Fatalf("unexpected postgres dsn: %s", cfg.Postgres.DSN)
	}
	if cfg.Discord.Token != "file-token" {
		t.Fatalf("unexpected discord token: %s", cfg.Discord.Token)
	}
	if cfg.Enforcement.CooldownTTL.String() != "2m0s" {
		t.Fatalf("unexpected cooldown ttl: %s", cfg.Enforcement.CooldownTTL)
	}

	if cfg.HTTP.ReadTimeout.String() != "5s" {
		t.Fatalf("http read timeout default should stay 5s, got %s", cfg.HTTP.ReadTimeout)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("redis addr default should stay localhost:6379, got %s", cfg.Redis.Addr)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level default should stay debug, got %s", cfg.Log.Level)
	}
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load config with missing file: %v", err)
	}

	if cfg.Env != "dev" {
		t.Fatalf("unexpected default env: %s", cfg.Env)
	}
	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected default http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.Enforcement.CooldownTTL.String() != "5m0s" {
		t.Fatalf("unexpected default cooldown ttl: %s", cfg.Enforcement.CooldownTTL)
	}
	if cfg.Discord.Token != "" {
		t.Fatalf("discord token default should be empty, got %q", cfg.Discord.Token)
	}
}

func TestLoadAppliesEnvOverrides(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("APP_ENV", "prod")
	t.Setenv("DISCORD_TOKEN", "env-token")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("ENFORCEMENT_COOLDOWN_TTL", "90s")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.Env != "prod" {
		t.Fatalf("unexpected env: %s", cfg.Env)
	}
	if cfg.Discord.Token != "env-token" {
		t.Fatalf("unexpected discord token: %s", cfg.Discord.Token)
	}
	if cfg.Redis.DB != 3 {
		t.Fatalf("unexpected redis db: %d", cfg.Redis.DB)
	}
	if cfg.Enforcement.CooldownTTL.String() != "1m30s" {
		t.Fatalf("unexpected cooldown ttl: %s", cfg.Enforcement.CooldownTTL)
	}
}

func TestLoadRejectsMalformedEnvValues(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for malformed REDIS_DB")
	}

	clearConfigEnv(t)
	t.Setenv("ENFORCEMENT_COOLDOWN_TTL", "soon")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for malformed ENFORCEMENT_COOLDOWN_TTL")
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_ENV",
		"HTTP_ADDR",
		"HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT",
		"HTTP_IDLE_TIMEOUT",
		"LOG_LEVEL",
		"POSTGRES_DSN",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"DISCORD_TOKEN",
		"ENFORCEMENT_COOLDOWN_TTL",
	} {
		t.Setenv(key, "")
	}
}
