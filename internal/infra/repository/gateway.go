package repository

import (
	"context"
	"log/slog"

	"storefront-api/internal/infra/db"
	"storefront-api/internal/pkg/config"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is the part of *pgxpool.Pool the gateway uses.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Gateway is the only owner of the store connection. Without a connection string it stays
// disabled and every insert is a no-op that returns a nil record.
type Gateway struct {
	cfg     config.DBConfig
	db      DBTX
	cleanup func()
	logger  *slog.Logger
}

func NewGateway(cfg config.DBConfig, logger *slog.Logger) *Gateway {
	return &Gateway{cfg: cfg, logger: logger}
}

// NewGatewayWithDB wraps an already opened connection.
func NewGatewayWithDB(db DBTX, logger *slog.Logger) *Gateway {
	return &Gateway{db: db, logger: logger}
}

// Connect opens the pool and ensures the schema exists. It reports whether the store is ready.
// When the pool opens but the ping or schema step fails, the pool is kept so later inserts can
// still succeed once the database comes back; those inserts fail soft in the meantime.
func (g *Gateway) Connect(ctx context.Context) bool {
	if g.db != nil {
		return g.ensureSchema(ctx)
	}
	if !g.cfg.Enabled() {
		g.logger.Warn("database is not configured, submissions will not be persisted",
			"hint", "set DATABASE_URL (or POSTGRES_URL)")
		return false
	}

	pool, cleanup, err := db.Connect(ctx, g.cfg)
	if pool == nil {
		g.logger.Error("failed to open database pool", "error", err.Error())
		return false
	}
	g.db = pool
	g.cleanup = cleanup

	if err != nil {
		g.logger.Error("database is unreachable", "error", err.Error())
		return false
	}
	g.logger.Info("connected to PostgreSQL")

	return g.ensureSchema(ctx)
}

func (g *Gateway) ensureSchema(ctx context.Context) bool {
	if err := db.EnsureSchema(ctx, g.db); err != nil {
		g.logger.Error("failed to prepare database tables", "error", err.Error())
		return false
	}
	g.logger.Info("database tables are ready")
	return true
}

func (g *Gateway) Enabled() bool {
	return g.db != nil
}

func (g *Gateway) Close() {
	if g.cleanup != nil {
		g.cleanup()
	}
}
