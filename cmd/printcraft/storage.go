package main

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"printcraft/internal/adapter/bolt"
	"printcraft/internal/adapter/memory"
	"printcraft/internal/adapter/postgres"
	"printcraft/internal/adapter/redisstore"
	"printcraft/internal/adapter/sqlite"
	"printcraft/internal/config"
	"printcraft/internal/domain"
)

// openStorage opens the snapshot backend named by cfg. The returned close
// function releases it.
func openStorage(ctx context.Context, cfg config.Config) (domain.SnapshotRepository, func() error, error) {
	switch cfg.StorageBackend {
	case config.BackendBolt:
		s, err := bolt.Open(cfg.BoltPath)
		if err != nil {
			return nil, nil, fmt.Errorf("open bolt: %w", err)
		}
		return s, s.Close, nil

	case config.BackendSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		return s, s.Close, nil

	case config.BackendPostgres:
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("open postgres: %w", err)
		}
		return db, db.Close, nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		return redisstore.NewStore(client, cfg.RedisTTL), client.Close, nil

	case config.BackendMemory:
		return memory.New(), func() error { return nil }, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
