package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	MemoryStore string = "memory"
	MongoStore  string = "mongo"

	DEFAULT_PORT       string        = "3000"
	DEFAULT_DATABASE   string        = "synergia"
	DEFAULT_COLLECTION string        = "bookings"
	DEFAULT_DB_TIMEOUT time.Duration = 5 * time.Second
)

var ErrMissingConnString = errors.New("MONGODB_URL is required for the mongo booking store")

type Config struct {
	Port        string
	Store       string
	MongoURL    string
	Database    string
	Collection  string
	LocalDBPath string
	DBTimeout   time.Duration
}

func GetSecret(key string) (string, error) {
	val, exist := os.LookupEnv(key)
	if exist {
		return val, nil
	}
	return "", fmt.Errorf("no env variable with key %v", key)
}

func getOrDefault(key, fallback string) string {
	val, err := GetSecret(key)
	if err != nil || val == "" {
		return fallback
	}
	return val
}

// Load reads an optional .env file from the working directory and then
// builds the configuration from the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("cannot read .env file: %v", err)
	}

	cfg := Config{
		Port:        getOrDefault("PORT", DEFAULT_PORT),
		Store:       getOrDefault("BOOKING_STORE", MongoStore),
		MongoURL:    getOrDefault("MONGODB_URL", ""),
		Database:    getOrDefault("MONGODB_DATABASE", DEFAULT_DATABASE),
		Collection:  getOrDefault("MONGODB_COLLECTION", DEFAULT_COLLECTION),
		LocalDBPath: getOrDefault("LOCAL_DB_PATH", ""),
		DBTimeout:   DEFAULT_DB_TIMEOUT,
	}

	if raw := getOrDefault("DB_TIMEOUT", ""); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DB_TIMEOUT %q: %v", raw, err)
		}
		if timeout <= 0 {
			return Config{}, fmt.Errorf("DB_TIMEOUT must be positive, got %v", timeout)
		}
		cfg.DBTimeout = timeout
	}

	if cfg.Store != MongoStore && cfg.Store != MemoryStore {
		return Config{}, fmt.Errorf("unknown BOOKING_STORE %q, expected %q or %q", cfg.Store, MongoStore, MemoryStore)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.Store == MongoStore && c.MongoURL == "" {
		return ErrMissingConnString
	}
	return nil
}
