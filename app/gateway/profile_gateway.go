package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"user-admin-service/app/domain"
	"user-admin-service/app/port"
)

// ProfileGateway implements port.ProfileGateway over the profiles repository.
type ProfileGateway struct {
	profileRepo port.ProfileRepositoryPort
	logger      *slog.Logger
}

// NewProfileGateway creates a new ProfileGateway instance
func NewProfileGateway(profileRepo port.ProfileRepositoryPort, logger *slog.Logger) port.ProfileGateway {
	return &ProfileGateway{
		profileRepo: profileRepo,
		logger:      logger.With("component", "profile_gateway"),
	}
}

// GetProfile retrieves a profile by user ID
func (g *ProfileGateway) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	g.logger.Info("retrieving profile", "user_id", userID)

	profile, err := g.profileRepo.GetByID(ctx, userID)
	if err != nil {
		g.logger.Error("failed to retrieve profile",
			"user_id", userID,
			"error", err)
		return nil, err
	}

	return profile, nil
}

// UpdateEmail updates the mirrored email for a profile
func (g *ProfileGateway) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error {
	g.logger.Info("updating profile email", "user_id", userID)

	if err := domain.ValidateEmail(email); err != nil {
		g.logger.Error("email validation failed",
			"user_id", userID,
			"error", err)
		return fmt.Errorf("email validation failed: %w", err)
	}

	if err := g.profileRepo.UpdateEmail(ctx, userID, email); err != nil {
		g.logger.Error("failed to update profile email",
			"user_id", userID,
			"error", err)
		return err
	}

	g.logger.Info("profile email updated successfully", "user_id", userID)

	return nil
}

// ListRoleAssignments returns the role of every profile in the mirror
func (g *ProfileGateway) ListRoleAssignments(ctx context.Context) ([]domain.RoleAssignment, error) {
	g.logger.Info("listing role assignments")

	assignments, err := g.profileRepo.ListRoleAssignments(ctx)
	if err != nil {
		g.logger.Error("failed to list role assignments", "error", err)
		return nil, err
	}

	g.logger.Info("role assignments listed successfully",
		"count", len(assignments))

	return assignments, nil
}
