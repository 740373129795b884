package cache

import (
	"errors"
	"fmt"

	"github.com/DedS3t/cashflow-backend/platform/saves"
	"github.com/gomodule/redigo/redis"
)

// Store serves save slots out of redis, one pooled connection per call.
type Store struct {
	pool *redis.Pool
}

func NewStore(pool *redis.Pool) *Store {
	return &Store{pool: pool}
}

func (s *Store) Get(key string) (string, error) {
	conn := s.pool.Get()
	defer conn.Close()
	val, err := Get(key, &conn)
	if errors.Is(err, ErrMissing) {
		return "", saves.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return val, nil
}

func (s *Store) Set(key string, value string) error {
	conn := s.pool.Get()
	defer conn.Close()
	if err := Set(key, value, &conn); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *Store) Del(key string) error {
	conn := s.pool.Get()
	defer conn.Close()
	if err := Del(key, &conn); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}

func (s *Store) Exists(key string) (bool, error) {
	conn := s.pool.Get()
	defer conn.Close()
	ok, err := Exists(key, &conn)
	if err != nil {
		return false, fmt.Errorf("redis exists %s: %w", key, err)
	}
	return ok, nil
}

// Ping checks that the pool can reach redis.
func (s *Store) Ping() error {
	conn := s.pool.Get()
	defer conn.Close()
	_, err := conn.Do("PING")
	return err
}
