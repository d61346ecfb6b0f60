package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campuslink/backend/internal/config"
	"github.com/campuslink/backend/internal/pkg/logger"
)

// CreateDefaultData seeds the configured admin account with the systemadmin
// role. The seed is idempotent: an existing account only has its role
// raised, never its profile touched.
func CreateDefaultData(ctx context.Context, db *pgxpool.Pool, cfg *config.Config) error {
	if cfg.Admin.Email == "" {
		logger.Debug().Msg("No admin email configured, skipping seed")
		return nil
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrator"
	}

	query := `
		INSERT INTO users (email, name, role)
		VALUES ($1, $2, 'systemadmin')
		ON CONFLICT (email) DO UPDATE SET role = 'systemadmin'
	`
	if _, err := db.Exec(ctx, query, cfg.Admin.Email, name); err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	logger.Info().Str("email", cfg.Admin.Email).Msg("Admin account ensured")
	return nil
}
