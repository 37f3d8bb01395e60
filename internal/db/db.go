package db

import (
	"context"
	"fmt"
	"time"

	"FredStoreAPI/internal/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Connect builds the shared pool and waits until the database answers a ping.
func Connect(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if cfg.DBMaxConns > 0 {
		poolCfg.MaxConns = cfg.DBMaxConns
	}
	poolCfg.MaxConnLifetime = 5 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("open pool: %w", err)
	}

	retries := cfg.DBConnectRetries
	if retries < 1 {
		retries = 1
	}
	for i := 1; i <= retries; i++ {
		if err = pool.Ping(ctx); err == nil {
			logger.Info("connected to database", zap.Int32("max_conns", poolCfg.MaxConns))
			return pool, nil
		}
		logger.Warn("database ping failed",
			zap.Int("attempt", i),
			zap.Int("max_attempts", retries),
			zap.Error(err))
		if i < retries {
			select {
			case <-ctx.Done():
				pool.Close()
				return nil, ctx.Err()
			case <-time.After(2 * time.Second):
			}
		}
	}
	pool.Close()
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", retries, err)
}
