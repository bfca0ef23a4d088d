package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/Bios-Marcel/bookadoctor/data"
)

type Config struct {
	Server  ServerConfig
	API     APIConfig
	Storage StorageConfig
	Redis   RedisConfig
	Signup  SignupConfig
}

type ServerConfig struct {
	Port         string
	CookieSecure bool
}

// APIConfig points at the backend that owns the accounts.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type StorageConfig struct {
	BoltPath string
}

// RedisConfig is optional. Without an address sessions are shared through
// process memory only.
type RedisConfig struct {
	Addr     string
	Password string
	TTL      time.Duration
}

type SignupConfig struct {
	RedirectDelay time.Duration
	PhonePrefix   string
}

// Load reads the configuration from the environment. The given env files
// are loaded first, a missing ".env" is not an error. Variables that are
// already set win over the files.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cant load .env: %w", err)
		}
	} else if err := godotenv.Load(envFiles...); err != nil {
		return nil, fmt.Errorf("cant load env files: %w", err)
	}

	cfg := &Config{}
	cfg.Server.Port = getString("PORT", "8080")
	cfg.API.BaseURL = getString("API_BASE_URL", "http://localhost:5000/api")
	cfg.Storage.BoltPath = getString("BOLT_PATH", "bolt.db")
	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	cfg.Signup.PhonePrefix = getString("PHONE_PREFIX", data.DefaultPhonePrefix)

	var err error
	if cfg.Server.CookieSecure, err = getBool("COOKIE_SECURE", false); err != nil {
		return nil, err
	}
	if cfg.API.Timeout, err = getDuration("API_TIMEOUT", 10*time.Second); err != nil {
		return nil, err
	}
	if cfg.Redis.TTL, err = getDuration("REDIS_SESSION_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Signup.RedirectDelay, err = getDuration("SIGNUP_REDIRECT_DELAY", 1500*time.Millisecond); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
