package service

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	json "github.com/goccy/go-json"

	"nextrade/pkg/logger"
)

// redis读穿缓存的共用小函数，value统一存JSON
// rc为空（例如单测）时一律当miss

func cacheGetJSON(ctx context.Context, rc *redis.Client, key string, out interface{}) bool {
	if rc == nil {
		return false
	}
	bytes, err := rc.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Errorf("Redis连接异常:%v", err.Error())
		}
		return false
	}
	return json.Unmarshal(bytes, out) == nil
}

func cacheSetJSON(ctx context.Context, rc *redis.Client, key string, value interface{}, ttlSec int) {
	if rc == nil {
		return
	}
	bytes, err := json.Marshal(value)
	if err != nil {
		logger.Errorf("缓存序列化失败：%v", err.Error())
		return
	}
	if err = rc.Set(ctx, key, bytes, time.Duration(ttlSec)*time.Second).Err(); err != nil {
		logger.Errorf("存储Cache失败:%v", err.Error())
	}
}
