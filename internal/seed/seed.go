package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/anupamk/vidyalaya/internal/app/models"
	appRepos "github.com/anupamk/vidyalaya/internal/app/repositories"
	"github.com/anupamk/vidyalaya/internal/config"
	pkgAuth "github.com/anupamk/vidyalaya/internal/pkg/auth"
)

// CreateDefaultAdmin creates the initial admin account when the users
// table is empty. Without it a fresh install has no principal that can
// publish content.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	count, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		lgr.Debug().Int64("users", count).Msg("Users already present, skipping admin seed")
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.Seed.AdminEmail))
	if email == "" || cfg.Seed.AdminPassword == "" {
		lgr.Warn().Msg("No seed admin configured and no users exist; mutations will be impossible until one is created")
		return nil
	}

	hash, err := pkgAuth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash seed admin password: %w", err)
	}

	id, err := userRepo.Create(ctx, &appModels.User{
		Email:        email,
		PasswordHash: hash,
		Name:         cfg.Seed.AdminName,
		Role:         appModels.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	lgr.Info().Str("userId", id).Str("email", email).Msg("Seed admin account created")
	return nil
}
