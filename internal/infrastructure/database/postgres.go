package database

import (
	"context"
	"fmt"

	"github.com/erickfunier/pdftotext-worker/internal/infrastructure/config"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresConnection manages PostgreSQL connection pool
type PostgresConnection struct {
	Pool *pgxpool.Pool
}

// NewPostgresConnection creates the pool. Connections are opened lazily;
// call Ping to fail fast.
func NewPostgresConnection(ctx context.Context, cfg config.PostgresConfig) (*PostgresConnection, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	return &PostgresConnection{Pool: pool}, nil
}

// Ping verifies the connection is alive
func (p *PostgresConnection) Ping(ctx context.Context) error {
	return p.Pool.Ping(ctx)
}

// Close closes the connection pool
func (p *PostgresConnection) Close() {
	p.Pool.Close()
}
