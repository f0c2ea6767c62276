package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"user-admin-service/app/domain"
	"user-admin-service/app/port"
)

// ProfileRepository implements port.ProfileRepositoryPort for PostgreSQL
type ProfileRepository struct {
	db     DatabaseIface
	logger *slog.Logger
}

// NewProfileRepository creates a new PostgreSQL profile repository
func NewProfileRepository(db DatabaseIface, logger *slog.Logger) port.ProfileRepositoryPort {
	return &ProfileRepository{
		db:     db,
		logger: logger.With("component", "profile_repository"),
	}
}

// GetByID retrieves a profile by user ID
func (r *ProfileRepository) GetByID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, email, role, created_at, updated_at
		FROM profiles
		WHERE id = $1`

	profile := &domain.Profile{}
	var role string

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.Email,
		&role,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Warn("profile not found", "user_id", userID)
			return nil, domain.ErrProfileNotFound
		}
		r.logger.Error("failed to get profile", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	profile.Role = domain.Role(role)

	return profile, nil
}

// UpdateEmail updates the mirrored email for a profile
func (r *ProfileRepository) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error {
	query := `
		UPDATE profiles
		SET email = $1, updated_at = CURRENT_TIMESTAMP
		WHERE id = $2`

	result, err := r.db.Exec(ctx, query, email, userID)
	if err != nil {
		r.logger.Error("failed to update profile email", "user_id", userID, "error", err)
		return fmt.Errorf("failed to update profile email: %w", err)
	}

	if result.RowsAffected() == 0 {
		r.logger.Warn("profile not found for email update", "user_id", userID)
		return domain.ErrProfileNotFound
	}

	r.logger.Info("profile email updated", "user_id", userID)
	return nil
}

// ListRoleAssignments returns the id and role of every profile. Used by the
// metadata sync to walk the whole mirror.
func (r *ProfileRepository) ListRoleAssignments(ctx context.Context) ([]domain.RoleAssignment, error) {
	query := `
		SELECT id, role
		FROM profiles
		ORDER BY created_at`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.logger.Error("failed to list role assignments", "error", err)
		return nil, fmt.Errorf("failed to list role assignments: %w", err)
	}
	defer rows.Close()

	var assignments []domain.RoleAssignment
	for rows.Next() {
		var assignment domain.RoleAssignment
		var role string
		if err := rows.Scan(&assignment.UserID, &role); err != nil {
			r.logger.Error("failed to scan role assignment", "error", err)
			return nil, fmt.Errorf("failed to scan role assignment: %w", err)
		}
		assignment.Role = domain.Role(role)
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("failed to iterate role assignments", "error", err)
		return nil, fmt.Errorf("failed to iterate role assignments: %w", err)
	}

	r.logger.Info("role assignments listed", "count", len(assignments))
	return assignments, nil
}
