package middleware

import (
	"log/slog"
	"slices"

	"storefront-api/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const wildcardOrigin = "*"

func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	// the wildcard is expressed through AllowAllOrigins, never as a listed origin
	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, wildcardOrigin) {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}
	logger.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all_origins", corsCfg.AllowAllOrigins)
	return cors.New(corsCfg)
}
