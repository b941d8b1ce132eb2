package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookfront/internal/http"
	"github.com/yungbote/bookfront/internal/observability"
	"github.com/yungbote/bookfront/internal/platform/logger"
)

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Clients  Clients
	Services Services
	Server   *http.Server
	Metrics  *observability.Metrics

	otelShutdown func(context.Context) error
}

// New wires the whole service from cfg. version is reported on traces.
func New(ctx context.Context, cfg Config, version string) (*App, error) {
	log, err := logger.NewWithOptions(logger.Options{
		Mode:     cfg.LogMode,
		Level:    cfg.LogLevel,
		Redact:   cfg.LogRedaction,
		HashSalt: cfg.LogHashSalt,
	})
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if mode := strings.ToLower(cfg.LogMode); mode == "prod" || mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	otelCfg := cfg.Otel
	otelCfg.Version = version
	otelShutdown := observability.InitOTel(ctx, log, otelCfg)
	metrics := observability.Init(log, cfg.MetricsEnabled)

	clients, err := wireClients(log, cfg, metrics)
	if err != nil {
		log.Sync()
		return nil, err
	}
	services, err := wireServices(log, cfg, clients)
	if err != nil {
		closeClients(log, clients)
		log.Sync()
		return nil, err
	}
	handlers := wireHandlers(log, cfg, clients, services, metrics)
	server := wireServer(log, cfg, handlers, metrics)

	return &App{
		Log:          log,
		Cfg:          cfg,
		Clients:      clients,
		Services:     services,
		Server:       server,
		Metrics:      metrics,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.Server == nil {
		return fmt.Errorf("app not initialized")
	}
	a.Log.Info("HTTP server listening", "addr", a.Server.Addr(), "api_url", a.Cfg.APIURL)
	return a.Server.Run(ctx)
}

func (a *App) Close() {
	if a == nil {
		return
	}
	closeClients(a.Log, a.Clients)
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.otelShutdown(ctx); err != nil {
			a.Log.Warn("otel shutdown failed", "error", err)
		}
		cancel()
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}

func closeClients(log *logger.Logger, c Clients) {
	if c.PageCache != nil {
		if err := c.PageCache.Close(); err != nil {
			log.Warn("close redis page cache failed", "error", err)
		}
	}
}
