package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"city_pulse/internal/domain"
	"city_pulse/internal/service"
)

// Server is the admin HTTP surface: it triggers pipeline runs, reports their
// progress and serves the contact-sync dry run. It does no scheduling of its
// own; everything it exposes is also driven by the background scheduler.
type Server struct {
	runners     map[domain.Pipeline]*service.Runner
	publication *service.PublicationEngine
	discovery   *service.DiscoveryEngine
	contactSync *service.ContactSyncEngine
	reports     *service.ReportService
	cities      service.CitySource
	logger      *slog.Logger

	httpServer *http.Server
}

func NewServer(
	addr string,
	runners []*service.Runner,
	publication *service.PublicationEngine,
	discovery *service.DiscoveryEngine,
	contactSync *service.ContactSyncEngine,
	reports *service.ReportService,
	cities service.CitySource,
	logger *slog.Logger,
) *Server {
	byPipeline := make(map[domain.Pipeline]*service.Runner, len(runners))
	for _, r := range runners {
		byPipeline[r.Pipeline()] = r
	}

	s := &Server{
		runners:     byPipeline,
		publication: publication,
		discovery:   discovery,
		contactSync: contactSync,
		reports:     reports,
		cities:      cities,
		logger:      logger.With("component", "api"),
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())
	s.registerRoutes(router)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) registerRoutes(router *gin.Engine) {
	router.GET("/healthz", s.handleHealth)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/cities", s.handleCities)

		apiGroup.POST("/pipelines/:pipeline/enqueue", s.handleEnqueue)
		apiGroup.GET("/pipelines/:pipeline/status", s.handleStatus)
		apiGroup.DELETE("/pipelines/:pipeline", s.handleCancel)

		apiGroup.POST("/publication/run", s.handlePublicationRun)
		apiGroup.POST("/cities/:slug/seed", s.handleSeed)

		apiGroup.POST("/dry-run/start", s.handleDryRunStart)
		apiGroup.POST("/dry-run/step", s.handleDryRunStep)
		apiGroup.GET("/dry-run/export", s.handleDryRunExport)

		apiGroup.POST("/lists/reconcile", s.handleListsReconcile)
	}
}

func (s *Server) Start() error {
	s.logger.Info("http server listening", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
