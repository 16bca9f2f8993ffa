package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"nextrade/conf"
	"nextrade/pkg/logger"
)

var redisClient *redis.Client

// InitRedis 初始化redisClient
func InitRedis(redisCfg conf.RedisConfig) {
	redisClient = redis.NewClient(&redis.Options{
		DB:           redisCfg.Db,
		Addr:         redisCfg.Addr,
		Password:     redisCfg.Password,
		PoolSize:     redisCfg.PoolSize,
		MinIdleConns: redisCfg.MinIdleConns,
		IdleTimeout:  time.Duration(redisCfg.IdleTimeout) * time.Second,
	})
	_, err := redisClient.Ping(context.TODO()).Result()
	if err != nil {
		// 启动时连不上只降级为直连上游，client保留，redis恢复后缓存自动续用
		logger.Errorf("Redis连接异常:%v", err)
	}
}

func GetRedisClient() *redis.Client {
	return redisClient
}

// 关闭redis client
func CloseRedis() {
	if nil != redisClient {
		_ = redisClient.Close()
	}
}
