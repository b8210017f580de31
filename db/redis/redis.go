package redis

import (
	"context"
	"errors"
	"fmt"
	"movie_discovery/configs"
	"time"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

var ErrNotConnected = errors.New("redis client is not connected")

func ConnectRedis() {
	time.Sleep(time.Duration(configs.GetConfigs().WaitForRedisConnectionSec) * time.Second)
	redisClient = redis.NewClient(&redis.Options{
		Addr:     configs.GetConfigs().RedisUrl,
		Password: configs.GetConfigs().RedisPassword,
		DB:       0,
	})
	ctx := context.Background()
	pong, err := redisClient.Ping(ctx).Result()
	fmt.Println("====> [[MovieDiscovery Redis Client:", pong, err, "]]")
}

func GetRedis(ctx context.Context, key string) (string, error) {
	if redisClient == nil {
		return "", ErrNotConnected
	}
	val, err := redisClient.Get(ctx, key).Result()
	return val, err
}

func SetRedis(ctx context.Context, key string, value interface{}, duration time.Duration) error {
	if redisClient == nil {
		return ErrNotConnected
	}
	err := redisClient.Set(ctx, key, value, duration).Err()
	return err
}

func DelRedis(ctx context.Context, keys ...string) error {
	if redisClient == nil {
		return ErrNotConnected
	}
	err := redisClient.Del(ctx, keys...).Err()
	return err
}

func IncrRedis(ctx context.Context, key string) (int64, error) {
	if redisClient == nil {
		return 0, ErrNotConnected
	}
	val, err := redisClient.Incr(ctx, key).Result()
	return val, err
}

func IsNilError(err error) bool {
	return errors.Is(err, redis.Nil)
}
