package port

//go:generate mockgen -source=identity_port.go -destination=../mocks/mock_identity_port.go

import (
	"context"

	"github.com/google/uuid"

	"user-admin-service/app/domain"
)

// IdentityGateway is the domain-facing view of the identity provider's admin
// surface. Implementations carry elevated credentials; the caller's own
// session is never used.
type IdentityGateway interface {
	UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error
	SendPasswordReset(ctx context.Context, email string) error
	SendOneTimeCode(ctx context.Context, email string, createUser bool) error
	InviteUser(ctx context.Context, email string, role domain.Role) (uuid.UUID, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
	UpdateAppMetadata(ctx context.Context, userID uuid.UUID, role domain.Role) error
}

// KratosIdentityClient is the driver-level interface over the Kratos admin
// API, implemented by the kratos driver and consumed by the identity gateway.
// Identity ids cross this boundary as strings, matching the SDK.
type KratosIdentityClient interface {
	UpdateIdentityEmail(ctx context.Context, identityID string, email string) error
	UpdateIdentityRole(ctx context.Context, identityID string, role string) error
	CreateInvitedIdentity(ctx context.Context, email string, role string) (string, error)
	DeleteIdentity(ctx context.Context, identityID string) error
	TriggerRecovery(ctx context.Context, email string) error
	TriggerOneTimeCode(ctx context.Context, email string, createUser bool) error
}
