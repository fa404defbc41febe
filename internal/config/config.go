package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rotisserie/eris"
)

// Config holds all tunables the server reads at startup. Defaults can be
// overridden via environment variables (a .env file is honored if present):
//
//	PORT              listen port (default: 8080)
//	JWT_SECRET        token signing secret (required)
//	BOT_WAIT_MS       bot fallback delay (default: 1000)
//	ROUND_INTERVAL_MS delay between match rounds (default: 4000)
//	LOG_PRETTY        human-readable console logging (default: off)
type Config struct {
	ListenAddr    string
	JWTSecret     string
	BotWait       time.Duration
	RoundInterval time.Duration
	LogPretty     bool
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// Load reads the environment (and an optional .env file) into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		ListenAddr:    ":" + getenv("PORT", "8080"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		BotWait:       time.Duration(getenvInt("BOT_WAIT_MS", 1000)) * time.Millisecond,
		RoundInterval: time.Duration(getenvInt("ROUND_INTERVAL_MS", 4000)) * time.Millisecond,
		LogPretty:     os.Getenv("LOG_PRETTY") == "1",
	}
	if cfg.JWTSecret == "" {
		return Config{}, eris.New("JWT_SECRET is required, set it in your environment or .env")
	}
	return cfg, nil
}
