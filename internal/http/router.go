package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/bookfront/internal/http/handlers"
	httpMW "github.com/yungbote/bookfront/internal/http/middleware"
	"github.com/yungbote/bookfront/internal/observability"
	"github.com/yungbote/bookfront/internal/platform/logger"
)

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string
	Metrics     *observability.Metrics

	LandingHandler  *httpH.LandingHandler
	ConfirmHandler  *httpH.ConfirmHandler
	AccessHandler   *httpH.AccessHandler
	PurchaseHandler *httpH.PurchaseHandler
	CoverHandler    *httpH.CoverHandler
	PageAPIHandler  *httpH.PageAPIHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachRequestContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	api.Use(httpMW.CORS(cfg.CORSOrigins))
	{
		if cfg.PageAPIHandler != nil {
			api.GET("/pages/:id", cfg.PageAPIHandler.Get)
			api.OPTIONS("/pages/:id", func(c *gin.Context) {})
		}
	}

	// Covers
	if cfg.CoverHandler != nil {
		r.GET("/covers/:bookID/placeholder.png", cfg.CoverHandler.Placeholder)
	}

	// Confirmed delivery
	if cfg.ConfirmHandler != nil {
		r.GET("/confirm/:token", cfg.ConfirmHandler.Show)
		r.GET("/confirm/:token/read", cfg.ConfirmHandler.Read)
		r.POST("/confirm/:token/send-book", cfg.ConfirmHandler.SendBook)
	}

	// Purchases
	if cfg.AccessHandler != nil {
		r.GET("/access/:token", cfg.AccessHandler.Show)
		r.POST("/access/:token/download", cfg.AccessHandler.Download)
	}
	if cfg.PurchaseHandler != nil {
		r.GET("/success/:slug", cfg.PurchaseHandler.Show)
		r.POST("/success/:slug", cfg.PurchaseHandler.Complete)
	}

	// Landing pages
	if cfg.LandingHandler != nil {
		r.GET("/", cfg.LandingHandler.Home)
		r.GET("/:id", cfg.LandingHandler.Show)
		r.POST("/:id/conversion", cfg.LandingHandler.Convert)
		r.POST("/:id/download", cfg.LandingHandler.Download)
		r.GET("/:id/direct", cfg.LandingHandler.Direct)
		r.GET("/:id/read", cfg.LandingHandler.Read)
	}

	return r
}
