package cache

import (
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"
)

func CreateRedisPool(addr string) *redis.Pool {
	return &redis.Pool{
		MaxIdle:     10,
		IdleTimeout: 60 * time.Second,
		Dial:        func() (redis.Conn, error) { return dial(addr) },
	}
}

func CreateRedisConnection(addr string) (redis.Conn, error) {
	return dial(addr)
}

func dial(addr string) (redis.Conn, error) {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		return redis.DialURL(addr)
	}
	return redis.Dial("tcp", addr)
}
