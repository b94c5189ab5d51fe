package cache

import (
	"context"
	"time"

	"autohub-service/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// InitRedis connects to Redis when an address is configured. Returns nil when
// Redis is not configured or unreachable; callers treat nil as cache disabled.
func InitRedis(config utils.RedisConfig, logger *zap.Logger) *redis.Client {
	if config.Addr == "" {
		logger.Info("Redis not configured, catalog cache disabled")
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn("Redis unreachable, catalog cache disabled",
			zap.Error(err),
			zap.String("addr", config.Addr))
		return nil
	}

	logger.Info("Redis connected", zap.String("addr", config.Addr))
	return rdb
}
