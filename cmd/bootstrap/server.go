package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"storefront-api/internal/pkg/config"
	"storefront-api/internal/pkg/errs"
	"storefront-api/internal/pkg/netport"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

const readHeaderTimeout = 10 * time.Second

var ServerModule = fx.Module("server",
	fx.Provide(
		NewAllocator,
	),
	fx.Invoke(StartServer),
)

func NewAllocator(cfg config.Config, logger *slog.Logger) *netport.Allocator {
	return netport.NewAllocator(cfg.Server.Host, logger)
}

// StartServer binds the HTTP listener during OnStart so a port that cannot be bound fails the
// boot. Serve errors after startup shut the app down with exit code 1.
func StartServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, alloc *netport.Allocator, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			binding, err := alloc.Bind(cfg.Server.Port, cfg.Server.PortMaxAttempts)
			if err != nil {
				LogBindRemediation(logger, cfg.Server.Port, err)
				return errs.Wrap(err, "failed to bind HTTP listener")
			}

			if binding.Reassigned {
				logger.Warn("configured port was busy, listening on another port",
					"configured_port", cfg.Server.Port, "port", binding.Port)
			}
			logger.Info("🚀 server started",
				"url", fmt.Sprintf("http://localhost:%d", binding.Port),
				"address", binding.Listener.Addr().String(),
				"mode", gin.Mode(),
			)

			go func() {
				if err := srv.Serve(binding.Listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("server stopped unexpectedly", "error", err.Error())
					if serr := shutdowner.Shutdown(fx.ExitCode(1)); serr != nil {
						logger.Error("failed to request shutdown", "error", serr.Error())
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 stopping server")
			ctx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
			defer cancel()
			return srv.Shutdown(ctx)
		},
	})
}

// LogBindRemediation tells the operator how to free the port that could not be bound.
func LogBindRemediation(logger *slog.Logger, port int, err error) {
	p := strconv.Itoa(port)
	if errs.Is(err, netport.ErrPortExhausted) {
		logger.Error("no free port found near the configured port",
			"port", port,
			"error", err.Error(),
			"hint_pm2", "pm2 stop all",
			"hint_kill", "kill -9 $(lsof -t -i:"+p+")",
		)
	} else {
		logger.Error("failed to start server",
			"port", port,
			"error", err.Error(),
		)
	}
	logger.Error("check what is holding the port",
		"hint_lsof", "lsof -i :"+p,
		"hint_netstat", "netstat -tulpn | grep :"+p,
	)
}
