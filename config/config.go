package config

import (
	"fmt"
	"os"
)

// Config carries everything main needs to wire the two surfaces. Values are
// read once at startup and passed down; nothing reads the environment after
// Load returns.
type Config struct {
	DSN       string
	ShopAddr  string
	AdminAddr string
	RedisAddr string
}

func Load() Config {
	return Config{
		DSN: fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", "postgres"),
			getEnv("DB_NAME", "pup_shop"),
			getEnv("DB_PORT", "5432"),
		),
		ShopAddr:  getEnv("SHOP_ADDR", "127.0.0.1:5000"),
		AdminAddr: getEnv("ADMIN_ADDR", "127.0.0.1:5001"),
		RedisAddr: getEnv("REDIS_ADDR", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
