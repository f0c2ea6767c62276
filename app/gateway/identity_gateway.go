package gateway

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"user-admin-service/app/domain"
	"user-admin-service/app/port"
)

// IdentityGateway implements port.IdentityGateway
// It acts as an anti-corruption layer between the domain and the Kratos
// admin client, translating uuid user ids into the SDK's string ids and
// validating inputs before they reach the wire.
type IdentityGateway struct {
	kratosClient port.KratosIdentityClient
	logger       *slog.Logger
}

// NewIdentityGateway creates a new IdentityGateway instance
func NewIdentityGateway(kratosClient port.KratosIdentityClient, logger *slog.Logger) port.IdentityGateway {
	return &IdentityGateway{
		kratosClient: kratosClient,
		logger:       logger.With("component", "identity_gateway"),
	}
}

// UpdateEmail updates the provider-stored email for the user
func (g *IdentityGateway) UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error {
	g.logger.Info("updating user email",
		"user_id", userID)

	if err := domain.ValidateEmail(email); err != nil {
		g.logger.Error("email validation failed",
			"user_id", userID,
			"error", err)
		return fmt.Errorf("email validation failed: %w", err)
	}

	if err := g.kratosClient.UpdateIdentityEmail(ctx, userID.String(), email); err != nil {
		g.logger.Error("failed to update user email",
			"user_id", userID,
			"error", err)
		return fmt.Errorf("failed to update user email: %w", err)
	}

	g.logger.Info("user email updated successfully",
		"user_id", userID)

	return nil
}

// SendPasswordReset triggers the provider's password-reset flow for the email
func (g *IdentityGateway) SendPasswordReset(ctx context.Context, email string) error {
	g.logger.Info("sending password reset")

	if err := domain.ValidateEmail(email); err != nil {
		g.logger.Error("email validation failed", "error", err)
		return fmt.Errorf("email validation failed: %w", err)
	}

	if err := g.kratosClient.TriggerRecovery(ctx, email); err != nil {
		g.logger.Error("failed to send password reset", "error", err)
		return fmt.Errorf("failed to send password reset: %w", err)
	}

	g.logger.Info("password reset sent successfully")

	return nil
}

// SendOneTimeCode triggers a one-time-code email. With createUser the
// identity is created first when no identity exists for the address.
func (g *IdentityGateway) SendOneTimeCode(ctx context.Context, email string, createUser bool) error {
	g.logger.Info("sending one-time code",
		"create_user", createUser)

	if err := domain.ValidateEmail(email); err != nil {
		g.logger.Error("email validation failed", "error", err)
		return fmt.Errorf("email validation failed: %w", err)
	}

	if err := g.kratosClient.TriggerOneTimeCode(ctx, email, createUser); err != nil {
		g.logger.Error("failed to send one-time code", "error", err)
		return fmt.Errorf("failed to send one-time code: %w", err)
	}

	g.logger.Info("one-time code sent successfully")

	return nil
}

// InviteUser creates a pending identity with the role and sends an invite
func (g *IdentityGateway) InviteUser(ctx context.Context, email string, role domain.Role) (uuid.UUID, error) {
	g.logger.Info("inviting user",
		"role", role)

	if err := domain.ValidateEmail(email); err != nil {
		g.logger.Error("email validation failed", "error", err)
		return uuid.Nil, fmt.Errorf("email validation failed: %w", err)
	}

	if !role.Valid() {
		g.logger.Error("invalid role", "role", role)
		return uuid.Nil, fmt.Errorf("invalid role: %s", role)
	}

	identityID, err := g.kratosClient.CreateInvitedIdentity(ctx, email, string(role))
	if err != nil {
		g.logger.Error("failed to invite user", "error", err)
		return uuid.Nil, fmt.Errorf("failed to invite user: %w", err)
	}

	userID, err := uuid.Parse(identityID)
	if err != nil {
		g.logger.Error("invalid identity id from provider",
			"identity_id", identityID,
			"error", err)
		return uuid.Nil, fmt.Errorf("invalid identity id from provider: %w", err)
	}

	g.logger.Info("user invited successfully",
		"user_id", userID,
		"role", role)

	return userID, nil
}

// DeleteUser permanently removes the identity
func (g *IdentityGateway) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	g.logger.Info("deleting user",
		"user_id", userID)

	if err := g.kratosClient.DeleteIdentity(ctx, userID.String()); err != nil {
		g.logger.Error("failed to delete user",
			"user_id", userID,
			"error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	g.logger.Info("user deleted successfully",
		"user_id", userID)

	return nil
}

// UpdateAppMetadata overwrites the identity's authoritative role metadata
func (g *IdentityGateway) UpdateAppMetadata(ctx context.Context, userID uuid.UUID, role domain.Role) error {
	g.logger.Info("updating user app metadata",
		"user_id", userID,
		"role", role)

	if !role.Valid() {
		g.logger.Error("invalid role",
			"user_id", userID,
			"role", role)
		return fmt.Errorf("invalid role: %s", role)
	}

	if err := g.kratosClient.UpdateIdentityRole(ctx, userID.String(), string(role)); err != nil {
		g.logger.Error("failed to update user app metadata",
			"user_id", userID,
			"error", err)
		return fmt.Errorf("failed to update user app metadata: %w", err)
	}

	g.logger.Info("user app metadata updated successfully",
		"user_id", userID,
		"role", role)

	return nil
}
