package database

import (
	"context"
	"fmt"
	"go-parking-management/config"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the client used for the OTP store and the mail stream.
func InitRedis(config *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", config.Host, config.Port),
		Password: config.Password,
		DB:       config.DB,
	})

	ctx := context.Background()
	err := rdb.Ping(ctx).Err()
	if err != nil {
		return nil, err
	}

	return rdb, nil
}
