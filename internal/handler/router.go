package handler

import (
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"storefront-api/internal/handler/api"
	"storefront-api/internal/handler/httperr"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const (
	indexFile  = "index.html"
	apiPrefix  = "/api/"
	msgNoRoute = "Sahifa topilmadi"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Contact *api.ContactHandler
	Order   *api.OrderHandler
	System  *api.SystemHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, rec *metrics.Recorder, h Handlers) {
	setupMiddleware(engine, cfg, logger, rec)
	setupRoutes(engine, rec, h)
	setupStatic(engine, cfg.Server.StaticDir, logger.GetSlogLogger())
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, rec *metrics.Recorder) {
	// Recovery sits inside logging and metrics so a panic is still recorded as a 500
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.MetricsMiddleware(rec))
	engine.Use(middleware.CustomRecovery(logger.GetSlogLogger()))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.GetSlogLogger()))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, rec *metrics.Recorder, h Handlers) {
	engine.GET("/metrics", gin.WrapH(rec.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/contact", Handler: h.Contact.Submit},
			{Method: http.MethodPost, Path: "/order", Handler: h.Order.Submit},
			{Method: http.MethodGet, Path: "/health", Handler: h.System.Health},
			{Method: http.MethodGet, Path: "/test-telegram", Handler: h.System.TestTelegram},
		})
	}
}

// setupStatic serves the storefront page from dir. API paths never fall through to files.
func setupStatic(engine *gin.Engine, dir string, logger *slog.Logger) {
	staticFS, ok := staticRoot(dir, logger)

	engine.NoRoute(func(c *gin.Context) {
		if !ok || strings.HasPrefix(c.Request.URL.Path, apiPrefix) ||
			(c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) {
			notFound(c)
			return
		}
		f, err := staticFS.Open(path.Clean(c.Request.URL.Path))
		if err != nil {
			notFound(c)
			return
		}
		_ = f.Close()
		http.FileServer(staticFS).ServeHTTP(c.Writer, c.Request)
	})

	if ok {
		engine.GET("/", func(c *gin.Context) {
			c.File(filepath.Join(dir, indexFile))
		})
	}
}

func staticRoot(dir string, logger *slog.Logger) (http.FileSystem, bool) {
	if dir == "" {
		return nil, false
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		logger.Warn("static directory not found, front-end will not be served", "dir", dir)
		return nil, false
	}
	return http.Dir(dir), true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, httperr.NewResponse(http.StatusNotFound, msgNoRoute))
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		g.Handle(r.Method, r.Path, r.Handler)
	}
}
