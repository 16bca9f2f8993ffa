package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nextrade/conf"
)

func TestInitRedisUnreachable(t *testing.T) {
	// redis连不上不能让进程退出，只降级
	require.NotPanics(t, func() {
		InitRedis(conf.RedisConfig{Addr: "127.0.0.1:1"})
	})
	assert.NotNil(t, GetRedisClient())
	CloseRedis()
}
