package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var Env = Environment{}

type Environment struct {
	LogLevel         string
	QuoteLogInterval time.Duration
	DemoRandomOrders int
}

func init() {
	godotenv.Load()
	Env.LogLevel = getString("LOG_LEVEL", "info")
	Env.QuoteLogInterval = getDuration("QUOTE_LOG_INTERVAL", 2*time.Second)
	Env.DemoRandomOrders = getInt("DEMO_RANDOM_ORDERS", 0)
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
