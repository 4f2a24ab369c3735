package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	// CacheDir holds the local fallback snapshots (trips + route presets).
	CacheDir string

	// SlipPass is the shared passphrase guarding salary slips. A soft
	// deterrent, not real auth.
	SlipPass  string
	JWTSecret string

	// WatchInterval is how often the adapter polls the remote store for
	// changes. Zero disables the watcher.
	WatchInterval time.Duration
}

func LoadEnv() Env {
	env := Env{
		AppAddr:       getenv("APP_ADDR", ":8080"),
		GinMode:       getenv("GIN_MODE", ""),
		DBUser:        getenv("DB_USER", "root"),
		DBPass:        getenv("DB_PASS", ""),
		DBHost:        getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:        getenv("DB_NAME", "fleet_app"),
		CacheDir:      getenv("CACHE_DIR", "data"),
		SlipPass:      getenv("SLIP_PASS", "4565"),
		JWTSecret:     getenv("JWT_SECRET", "fleet-slip-secret-change-me"),
		WatchInterval: 15 * time.Second,
	}

	if raw := strings.TrimSpace(os.Getenv("WATCH_INTERVAL_SEC")); raw != "" {
		if sec, err := strconv.Atoi(raw); err == nil && sec >= 0 {
			env.WatchInterval = time.Duration(sec) * time.Second
		}
	}
	return env
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
