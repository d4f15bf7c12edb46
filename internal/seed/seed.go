package seed

import (
	"context"
	"errors"
	"fmt"

	appModels "github.com/karmachari/portal/internal/app/models"
	"github.com/karmachari/portal/internal/config"
	"github.com/karmachari/portal/internal/pkg/apperrors"
	"github.com/karmachari/portal/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// OfficialStore is the storage needed to seed the administrator account
type OfficialStore interface {
	GetByEmail(ctx context.Context, email string) (*appModels.Official, error)
	Create(ctx context.Context, official *appModels.Official) error
}

// CreateDefaultData creates the configured administrator official if it doesn't exist.
// Seeding is skipped when no admin email is configured.
func CreateDefaultData(ctx context.Context, officials OfficialStore, cfg *config.Config, lgr zerolog.Logger) error {
	email := cfg.Seed.AdminEmail
	if email == "" {
		lgr.Info().Msg("No seed admin configured, skipping default data")
		return nil
	}

	lgr.Info().Str("email", email).Msg("Checking/Creating default admin official...")

	_, err := officials.GetByEmail(ctx, email)
	if err == nil {
		lgr.Info().Msg("Admin official already exists, skipping creation")
		return nil
	}
	if !errors.Is(err, apperrors.ErrResourceNotFound) {
		lgr.Error().Err(err).Msg("Error checking if admin official exists")
		return fmt.Errorf("failed to look up admin official: %w", err)
	}

	hash, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &appModels.Official{
		FullName:     cfg.Seed.AdminName,
		Email:        email,
		Phone:        cfg.Seed.AdminPhone,
		Role:         cfg.Seed.AdminRole,
		PasswordHash: hash,
	}
	if err := officials.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin official")
		return fmt.Errorf("failed to create admin official: %w", err)
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin official created successfully")
	return nil
}
