package app

import (
	"github.com/yungbote/bookfront/internal/http"
	httpH "github.com/yungbote/bookfront/internal/http/handlers"
	"github.com/yungbote/bookfront/internal/observability"
	"github.com/yungbote/bookfront/internal/platform/logger"
	"github.com/yungbote/bookfront/internal/web/richtext"
	"github.com/yungbote/bookfront/internal/web/themes"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Landing  *httpH.LandingHandler
	Confirm  *httpH.ConfirmHandler
	Access   *httpH.AccessHandler
	Purchase *httpH.PurchaseHandler
	Cover    *httpH.CoverHandler
	PageAPI  *httpH.PageAPIHandler
}

func wireHandlers(log *logger.Logger, cfg Config, clients Clients, services Services, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	site := httpH.Site{Brand: cfg.BrandName, SupportEmail: cfg.SupportEmail}
	api := clients.LandingAPI
	checks := map[string]httpH.HealthCheck{}
	if clients.PageCache != nil {
		checks["redis"] = clients.PageCache.Ping
	}
	return Handlers{
		Health: httpH.NewHealthHandler(checks),
		Landing: httpH.NewLandingHandler(httpH.LandingDeps{
			Log:      log,
			Site:     site,
			Pages:    api,
			Links:    api,
			Resolver: services.Resolver,
			Chooser:  services.Chooser,
			Themes:   themes.Builtin(),
			Rich:     richtext.New(),
			Metrics:  metrics,
		}),
		Confirm:  httpH.NewConfirmHandler(log, site, api, services.Deliveries, services.Chooser, metrics),
		Access:   httpH.NewAccessHandler(log, site, api, services.Access, metrics),
		Purchase: httpH.NewPurchaseHandler(log, site, services.Purchase),
		Cover:    httpH.NewCoverHandler(log, services.Covers),
		PageAPI:  httpH.NewPageAPIHandler(log, api),
	}
}

func wireServer(log *logger.Logger, cfg Config, handlers Handlers, metrics *observability.Metrics) *http.Server {
	return http.NewServer(cfg.HTTPAddr, cfg.ShutdownTimeout, http.RouterConfig{
		Log:         log,
		ServiceName: cfg.ServiceName,
		CORSOrigins: cfg.CORSOrigins,
		Metrics:     metrics,

		LandingHandler:  handlers.Landing,
		ConfirmHandler:  handlers.Confirm,
		AccessHandler:   handlers.Access,
		PurchaseHandler: handlers.Purchase,
		CoverHandler:    handlers.Cover,
		PageAPIHandler:  handlers.PageAPI,
		HealthHandler:   handlers.Health,
	})
}
