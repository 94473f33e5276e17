// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"serviciohogar/config"

	"github.com/go-redis/redis/v8"
)

var (
	// AuthCacheClient is the dedicated client for admin token hashes.
	AuthCacheClient *redis.Client
	// BookingCacheClient is the dedicated client for booking wizard sessions.
	BookingCacheClient *redis.Client
)

// InitRedis initializes all Redis clients up front.
func InitRedis() {
	InitAuthCache()
	InitBookingCache()
}

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitAuthCache initializes the Redis client for admin token caching.
func InitAuthCache() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
}

// GetAuthCacheClient returns the Redis client for admin token caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		InitAuthCache()
	}
	return AuthCacheClient
}

// InitBookingCache initializes the Redis client for booking sessions.
func InitBookingCache() {
	BookingCacheClient = newRedisClient(config.AppConfig.RedisBookingDB)
}

// GetBookingCacheClient returns the Redis client for booking sessions.
func GetBookingCacheClient() *redis.Client {
	if BookingCacheClient == nil {
		InitBookingCache()
	}
	return BookingCacheClient
}
