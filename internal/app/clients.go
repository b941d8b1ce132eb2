package app

import (
	"fmt"

	"github.com/yungbote/bookfront/internal/clients/landingapi"
	"github.com/yungbote/bookfront/internal/clients/redis"
	"github.com/yungbote/bookfront/internal/observability"
	"github.com/yungbote/bookfront/internal/platform/logger"
)

type Clients struct {
	LandingAPI *landingapi.Client
	// PageCache is nil unless REDIS_ADDR and LANDING_PAGE_CACHE_TTL are set.
	PageCache *redis.PageCache
}

func wireClients(log *logger.Logger, cfg Config, metrics *observability.Metrics) (Clients, error) {
	log.Info("Wiring clients...")

	var cache *redis.PageCache
	opts := landingapi.Options{
		BaseURL:    cfg.APIURL,
		Timeout:    cfg.APITimeout,
		MaxRetries: cfg.APIMaxRetries,
		Metrics:    metrics,
	}
	if cfg.CacheEnabled() {
		c, err := redis.NewPageCache(log, redis.Options{Addr: cfg.RedisAddr, Prefix: cfg.RedisPrefix})
		if err != nil {
			return Clients{}, fmt.Errorf("init redis page cache: %w", err)
		}
		cache = c
		opts.Cache = c
		opts.CacheTTL = cfg.LandingPageCacheTTL
	}

	api, err := landingapi.New(log, opts)
	if err != nil {
		if cache != nil {
			_ = cache.Close()
		}
		return Clients{}, fmt.Errorf("init landing api client: %w", err)
	}
	return Clients{LandingAPI: api, PageCache: cache}, nil
}
