package cache

import (
	"context"
	"time"
)

// Cache байтовый кэш с TTL
// Используется для кэширования ответов со списком доступных слотов
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
}

// NoopCache заглушка, используется когда кэш выключен в конфигурации
type NoopCache struct{}

// NewNoop создает noop-кэш
func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	return nil, false, nil
}

func (n *NoopCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return nil
}

func (n *NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (n *NoopCache) DeleteByPrefix(ctx context.Context, prefix string) error {
	return nil
}
