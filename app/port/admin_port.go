package port

//go:generate mockgen -source=admin_port.go -destination=../mocks/mock_admin_port.go

import (
	"context"

	"github.com/google/uuid"

	"user-admin-service/app/domain"
)

// UserAdminUsecase defines the administrative user-management actions. Every
// operation runs against the identity provider's admin surface with elevated
// credentials and reports its outcome as an ActionResult; operations never
// return a Go error.
type UserAdminUsecase interface {
	// ChangeUserEmail updates the identity provider's stored email for the
	// user and best-effort mirrors it into the profiles table.
	ChangeUserEmail(ctx context.Context, userID uuid.UUID, newEmail string) *domain.ActionResult

	// SendPasswordReset triggers the provider's password-reset email flow.
	SendPasswordReset(ctx context.Context, email string) *domain.ActionResult

	// RequestReauthentication triggers a one-time-code email for an existing
	// user; it never creates a new identity.
	RequestReauthentication(ctx context.Context, email string) *domain.ActionResult

	// SendMagicLink triggers a one-time-code email, creating the identity
	// first when none exists for the address.
	SendMagicLink(ctx context.Context, email string) *domain.ActionResult

	// InviteUser creates a pending identity carrying the role in both
	// metadata tiers and sends an invite email. An empty role defaults to
	// client.
	InviteUser(ctx context.Context, email string, role domain.Role) *domain.ActionResult

	// DeleteUser permanently removes the identity.
	DeleteUser(ctx context.Context, userID uuid.UUID) *domain.ActionResult

	// UpdateUserAppMetadata overwrites the identity's authoritative role
	// metadata.
	UpdateUserAppMetadata(ctx context.Context, userID uuid.UUID, role domain.Role) *domain.ActionResult

	// SyncAllUsersAppMetadata repairs drift between profiles.role and every
	// identity's app-level role metadata.
	SyncAllUsersAppMetadata(ctx context.Context) *domain.ActionResult
}
