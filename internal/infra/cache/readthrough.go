package cache

import (
	"context"
	"time"
)

// Store операции кеша, которыми пользуются сервисы
type Store interface {
	Get(ctx context.Context, key string, dst interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// GetOrLoad читает key из кеша, при промахе вызывает load и кладет результат с ttl.
// Ошибки кеша не прерывают запрос: они логируются, данные берутся из load.
func GetOrLoad[T any](ctx context.Context, store Store, log Logger, key string, ttl time.Duration, load func(ctx context.Context) (T, error)) (T, error) {
	var cached T
	found, err := store.Get(ctx, key, &cached)
	if err != nil {
		log.Warn("cache: get %s failed, loading from storage: %v", key, err)
	}
	if found {
		return cached, nil
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	if err := store.Set(ctx, key, value, ttl); err != nil {
		log.Warn("cache: set %s failed: %v", key, err)
	}

	return value, nil
}
