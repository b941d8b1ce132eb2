package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/bookfront/internal/platform/logger"
)

// PageCache is a shared landing-page cache. Keys are namespaced with a prefix
// so several deployments can share one instance.
type PageCache struct {
	log    *logger.Logger
	rdb    goredis.UniversalClient
	prefix string
}

type Options struct {
	Addr   string
	Prefix string
}

func NewPageCache(log *logger.Logger, opts Options) (*PageCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	prefix := strings.TrimSpace(opts.Prefix)
	if prefix == "" {
		prefix = "bookfront"
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return newPageCache(log, rdb, prefix), nil
}

func newPageCache(log *logger.Logger, rdb goredis.UniversalClient, prefix string) *PageCache {
	return &PageCache{
		log:    log.With("service", "RedisPageCache"),
		rdb:    rdb,
		prefix: prefix,
	}
}

func (c *PageCache) key(k string) string { return c.prefix + ":" + k }

func (c *PageCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if c == nil || c.rdb == nil {
		return nil, false, fmt.Errorf("redis page cache not initialized")
	}
	raw, err := c.rdb.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (c *PageCache) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("redis page cache not initialized")
	}
	return c.rdb.Set(ctx, c.key(key), val, ttl).Err()
}

func (c *PageCache) Ping(ctx context.Context) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("redis page cache not initialized")
	}
	return c.rdb.Ping(ctx).Err()
}

func (c *PageCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
