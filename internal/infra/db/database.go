package db

import (
	"context"
	"fmt"

	"storefront-api/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Connect opens a pgx pool for cfg.DSN() and verifies it with a ping.
// A pool is returned even when the ping fails so callers can decide whether to keep it.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse database url: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	cleanup := func() {
		pool.Close()
	}

	if err := pool.Ping(ctx); err != nil {
		return pool, cleanup, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, cleanup, nil
}
