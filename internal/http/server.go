package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bookfront/internal/platform/shutdown"
)

type Server struct {
	Engine *gin.Engine

	srv             *http.Server
	shutdownTimeout time.Duration
}

func NewServer(addr string, shutdownTimeout time.Duration, cfg RouterConfig) *Server {
	engine := NewRouter(cfg)
	return &Server{
		Engine: engine,
		srv: &http.Server{
			Addr:              addr,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (s *Server) Addr() string { return s.srv.Addr }

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	return shutdown.Serve(ctx, s.srv, s.shutdownTimeout)
}
