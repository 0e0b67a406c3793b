package config

import (
	"os"
	"strconv"
	"time"
)

// FromEnv loads balance configuration from environment variables,
// falling back to defaults for anything unset.
func FromEnv() Balance {
	cfg := Default()

	if v := getEnvFloat("EVOLUTION_COST_GROWTH_RATE"); v > 1 {
		cfg.CostGrowthRate = v
	}
	if v := getEnvFloat("EVOLUTION_HINT_FRACTION"); v > 0 && v < 1 {
		cfg.HintFraction = v
	}
	if v := getEnvFloat("EVOLUTION_REVEAL_FRACTION"); v > 0 && v < 1 {
		cfg.RevealFraction = v
	}
	if v := getEnvFloat("EVOLUTION_PRESTIGE_UNLOCK_KP"); v > 0 {
		cfg.PrestigeUnlockKP = v
	}
	if v := getEnvFloat("EVOLUTION_OFFLINE_RATE"); v > 0 && v <= 1 {
		cfg.OfflineRate = v
	}
	if v := getEnvInt("EVOLUTION_OFFLINE_CAP_HOURS"); v > 0 {
		cfg.OfflineCap = time.Duration(v) * time.Hour
	}

	return cfg
}

// App holds process-level configuration for the binaries.
type App struct {
	DataDir      string
	CatalogPath  string
	RemoteURL    string
	SyncInterval time.Duration
	ListenAddr   string
}

// AppFromEnv loads process configuration from environment variables.
func AppFromEnv() App {
	cfg := App{
		DataDir:      "data",
		SyncInterval: 30 * time.Second,
		ListenAddr:   ":8787",
	}
	if v := os.Getenv("EVOLUTION_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("EVOLUTION_CATALOG_PATH"); v != "" {
		cfg.CatalogPath = v
	}
	if v := os.Getenv("EVOLUTION_REMOTE_URL"); v != "" {
		cfg.RemoteURL = v
	}
	if v := getEnvInt("EVOLUTION_SYNC_INTERVAL_SECONDS"); v > 0 {
		cfg.SyncInterval = time.Duration(v) * time.Second
	}
	if v := os.Getenv("EVOLUTION_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvFloat(key string) float64 {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0
	}
	return num
}
