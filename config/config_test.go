package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var keys = []string{
	"PORT", "API_BASE_URL", "API_TIMEOUT", "BOLT_PATH", "REDIS_ADDR",
	"REDIS_PASSWORD", "REDIS_SESSION_TTL", "SIGNUP_REDIRECT_DELAY",
	"PHONE_PREFIX", "COOKIE_SECURE",
}

// clearEnv empties every key for the duration of the test. godotenv doesn't
// override variables that are set, so they are unset rather than emptied.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

// chdirTemp moves into an empty directory so no stray .env is picked up.
func chdirTemp(t *testing.T) {
	t.Helper()
	previous, err := os.Getwd()
	if err != nil {
		t.Fatalf("cant get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("cant change directory: %v", err)
	}
	t.Cleanup(func() { os.Chdir(previous) })
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port %q", cfg.Server.Port)
	}
	if cfg.Signup.RedirectDelay != 1500*time.Millisecond {
		t.Errorf("redirect delay %v", cfg.Signup.RedirectDelay)
	}
	if cfg.Signup.PhonePrefix != "+91" {
		t.Errorf("phone prefix %q", cfg.Signup.PhonePrefix)
	}
	if cfg.Redis.Addr != "" {
		t.Errorf("redis must be off by default, got %q", cfg.Redis.Addr)
	}
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	content := "API_BASE_URL=http://backend:9000\nAPI_TIMEOUT=3s\nCOOKIE_SECURE=true\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("cant write env file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.API.BaseURL != "http://backend:9000" {
		t.Errorf("base url %q", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 3*time.Second {
		t.Errorf("timeout %v", cfg.API.Timeout)
	}
	if !cfg.Server.CookieSecure {
		t.Errorf("cookie secure not applied")
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	clearEnv(t)
	chdirTemp(t)
	t.Setenv("SIGNUP_REDIRECT_DELAY", "soon")

	if _, err := Load(); err == nil {
		t.Fatalf("expected an error for an invalid duration")
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatalf("expected an error for a missing env file")
	}
}
