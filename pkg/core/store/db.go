// Package store persists completed assessments in Postgres. Persistence is
// optional: the API keeps serving when no database is configured.
package store

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	pool *pgxpool.Pool
	once sync.Once
)

// schema is applied on startup so a fresh database serves assessments
// without a migration step.
const schema = `
	CREATE TABLE IF NOT EXISTS assessments (
		id UUID PRIMARY KEY,
		business_name TEXT,
		industry TEXT,
		health_score INT,
		risk_level TEXT,
		assessment_json JSONB,
		created_at TIMESTAMPTZ
	);
`

// InitDB initializes the connection pool from the DATABASE_URL environment
// variable and ensures the assessments table exists.
func InitDB(ctx context.Context) error {
	var err error
	once.Do(func() {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			err = fmt.Errorf("DATABASE_URL environment variable not set")
			return
		}

		config, parseErr := pgxpool.ParseConfig(dbURL)
		if parseErr != nil {
			err = fmt.Errorf("failed to parse database config: %w", parseErr)
			return
		}

		pool, err = pgxpool.NewWithConfig(ctx, config)
		if err != nil {
			return
		}

		if _, execErr := pool.Exec(ctx, schema); execErr != nil {
			err = fmt.Errorf("failed to ensure assessments schema: %w", execErr)
			pool.Close()
			pool = nil
		}
	})
	return err
}

// GetPool returns the connection pool, nil when persistence is disabled.
func GetPool() *pgxpool.Pool {
	return pool
}

// Close closes the connection pool.
func Close() {
	if pool != nil {
		pool.Close()
	}
}
