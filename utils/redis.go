// File: utils/redis.go
package utils

import (
	"context"
	"log"
	"time"

	"apptly/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionClient holds in-flight booking state, one hash per session.
	SessionClient *redis.Client
	// HistoryClient holds raw conversation history, one list per session.
	HistoryClient *redis.Client
)

// InitSessionStore initializes the Redis client for booking session state
// (using the session DB from AppConfig).
func InitSessionStore() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Session): %v", err)
	}
}

// GetSessionClient returns the session state client.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionStore()
	}
	return SessionClient
}

// InitHistoryStore initializes the Redis client for conversation history
// (using the history DB from AppConfig).
func InitHistoryStore() {
	HistoryClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisHistoryDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := HistoryClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (History): %v", err)
	}
}

// GetHistoryClient returns the conversation history client.
func GetHistoryClient() *redis.Client {
	if HistoryClient == nil {
		InitHistoryStore()
	}
	return HistoryClient
}
