package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis may be nil; callers must degrade gracefully (the quote cache falls
// back to the database when no client is available).
var Redis *redis.Client

// InitRedis connects using REDIS_ADDR / REDIS_PASSWORD / REDIS_DB. A failed
// ping leaves Redis nil rather than aborting startup.
func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	dbNum := 0
	if s := os.Getenv("REDIS_DB"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			dbNum = n
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       dbNum,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable at %s, quote cache disabled: %v", addr, err)
		return
	}
	Redis = client
}
