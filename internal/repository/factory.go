package repository

import (
	"context"
	"fmt"

	"fintrack/pkg/config"
	"fintrack/pkg/postgres"

	"go.uber.org/zap"
)

// Backend bundles the repositories produced for one storage backend.
type Backend struct {
	Users    UserRepository
	Expenses ExpenseRepository
	Cleanup  func()
}

// NewBackend builds the repository set for the configured backend.
// "memory" keeps everything in process-local maps; "postgres" connects a
// pgx pool and returns SQL-backed repositories behind the same interfaces.
func NewBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Backend, error) {
	switch cfg.Storage.Backend {
	case "", "memory":
		logger.Info("Using in-memory storage backend")
		return &Backend{
			Users:    NewMemoryUserRepository(),
			Expenses: NewMemoryExpenseRepository(),
			Cleanup:  func() {},
		}, nil

	case "postgres":
		pool, err := postgres.NewPool(ctx, &cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres backend: %w", err)
		}
		logger.Info("Using postgres storage backend")
		return &Backend{
			Users:    NewPostgresUserRepository(pool, logger),
			Expenses: NewPostgresExpenseRepository(pool, logger),
			Cleanup:  pool.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported storage backend: %s", cfg.Storage.Backend)
	}
}
