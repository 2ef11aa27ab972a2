package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/iskolardev/pupshop-api/config"
	"github.com/iskolardev/pupshop-api/routes"
	"github.com/iskolardev/pupshop-api/store"
)

func main() {
	log.Println("✅ Starting PUP Shop...")

	// Load environment variables
	_ = godotenv.Load()
	cfg := config.Load()

	// Open the store (migrates on open) and seed the sample catalog
	st, err := store.Open(cfg.DSN)
	if err != nil {
		log.Fatalf("❌ store: %v", err)
	}
	if err := st.Seed(); err != nil {
		log.Fatalf("❌ seed: %v", err)
	}

	// Redis is optional; without it the rate limiter is disabled
	rdb := connectRedis(cfg.RedisAddr)

	// Admin panel on its own port, shop in the main goroutine
	admin := routes.NewAdminRouter(st)
	go func() {
		log.Printf("✅ Admin panel listening on %s", cfg.AdminAddr)
		if err := admin.Run(cfg.AdminAddr); err != nil {
			log.Fatalf("❌ admin server: %v", err)
		}
	}()

	shop := routes.NewShopRouter(st, rdb)
	log.Printf("✅ Shop listening on %s", cfg.ShopAddr)
	if err := shop.Run(cfg.ShopAddr); err != nil {
		log.Fatalf("❌ shop server: %v", err)
	}
}

func connectRedis(addr string) *redis.Client {
	if addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis unreachable at %s, rate limiting disabled: %v", addr, err)
		return nil
	}
	return rdb
}
