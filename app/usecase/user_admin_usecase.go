package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"user-admin-service/app/domain"
	"user-admin-service/app/port"
)

// Fixed failure messages per operation. The same phrase is used whether the
// provider reported the error or the call faulted unexpectedly; the Error
// field carries the distinguishing diagnostic.
const (
	msgEmailUpdateFailed    = "Failed to update email"
	msgPasswordResetFailed  = "Failed to send password reset email"
	msgReauthFailed         = "Failed to send reauthentication email"
	msgMagicLinkFailed      = "Failed to send magic link"
	msgInviteFailed         = "Failed to send invitation"
	msgDeleteFailed         = "Failed to delete user"
	msgMetadataUpdateFailed = "Failed to update user app_metadata"
)

// UserAdminInteractor implements port.UserAdminUsecase. Every operation talks
// to the identity provider through elevated credentials and reports its
// outcome as an ActionResult; the boundary recovers panics into failure
// results so callers never observe a fault.
type UserAdminInteractor struct {
	identityGateway port.IdentityGateway
	profileGateway  port.ProfileGateway
	logger          *slog.Logger
}

// NewUserAdminInteractor creates a new UserAdminInteractor
func NewUserAdminInteractor(
	identityGateway port.IdentityGateway,
	profileGateway port.ProfileGateway,
	logger *slog.Logger,
) *UserAdminInteractor {
	return &UserAdminInteractor{
		identityGateway: identityGateway,
		profileGateway:  profileGateway,
		logger:          logger.With("component", "user_admin_usecase"),
	}
}

// ChangeUserEmail updates the provider-stored email and best-effort mirrors
// it into the profiles table. A mirror failure is logged at Warn only; the
// provider is the source of truth and its successful write decides the
// result.
func (u *UserAdminInteractor) ChangeUserEmail(ctx context.Context, userID uuid.UUID, newEmail string) (result *domain.ActionResult) {
	defer u.recoverToResult(&result, msgEmailUpdateFailed, "change_user_email")

	u.logger.Info("changing user email", "user_id", userID)

	if err := u.identityGateway.UpdateEmail(ctx, userID, newEmail); err != nil {
		u.logger.Error("email update failed",
			"user_id", userID,
			"error", err)
		return domain.Fail(msgEmailUpdateFailed, err)
	}

	if err := u.profileGateway.UpdateEmail(ctx, userID, newEmail); err != nil {
		u.logger.Warn("profile email mirror update failed",
			"user_id", userID,
			"error", err)
	}

	u.logger.Info("user email changed successfully", "user_id", userID)

	return domain.Succeed(fmt.Sprintf("Email updated to %s", newEmail))
}

// SendPasswordReset triggers the provider's password-reset email flow.
func (u *UserAdminInteractor) SendPasswordReset(ctx context.Context, email string) (result *domain.ActionResult) {
	defer u.recoverToResult(&result, msgPasswordResetFailed, "send_password_reset")

	u.logger.Info("sending password reset email")

	if err := u.identityGateway.SendPasswordReset(ctx, email); err != nil {
		u.logger.Error("password reset failed", "error", err)
		return domain.Fail(msgPasswordResetFailed, err)
	}

	u.logger.Info("password reset email sent successfully")

	return domain.Succeed(fmt.Sprintf("Password reset email sent to %s", email))
}

// RequestReauthentication triggers a one-time-code email for an existing
// user. An absent identity is an error; this flow never creates one.
func (u *UserAdminInteractor) RequestReauthentication(ctx context.Context, email string) (result *domain.ActionResult) {
	defer u.recoverToResult(&result, msgReauthFailed, "request_reauthentication")

	u.logger.Info("requesting reauthentication")

	if err := u.identityGateway.SendOneTimeCode(ctx, email, false); err != nil {
		u.logger.Error("reauthentication request failed", "error", err)
		return domain.Fail(msgReauthFailed, err)
	}

	u.logger.Info("reauthentication email sent successfully")

	return domain.Succeed(fmt.Sprintf("Reauthentication email sent to %s", email))
}

// SendMagicLink triggers a one-time-code email, creating the identity first
// when none exists for the address.
func (u *UserAdminInteractor) SendMagicLink(ctx context.Context, email string) (result *domain.ActionResult) {
	defer u.recoverToResult(&result, msgMagicLinkFailed, "send_magic_link")

	u.logger.Info("sending magic link")

	if err := u.identityGateway.SendOneTimeCode(ctx, email, true); err != nil {
		u.logger.Error("magic link send failed", "error", err)
		return domain.Fail(msgMagicLinkFailed, err)
	}

	u.logger.Info("magic link sent successfully")

	return domain.Succeed(fmt.Sprintf("Magic link sent to %s", email))
}

// InviteUser creates a pending identity carrying the role in both metadata
// tiers and sends an invite email. An empty role defaults to client.
func (u *UserAdminInteractor) InviteUser(ctx context.Context, email string, role domain.Role) (result *domain.ActionResult) {
	defer u.recoverToResult(&result, msgInviteFailed, "invite_user")

	if role == "" {
		role = domain.DefaultRole
	}

	u.logger.Info("inviting user", "role", role)

	userID, err := u.identityGateway.InviteUser(ctx, email, role)
	if err != nil {
		u.logger.Error("user invitation failed", "error", err)
		return domain.Fail(msgInviteFailed, err)
	}

	u.logger.Info("user invited successfully",
		"user_id", userID,
		"role", role)

	return domain.Succeed(fmt.Sprintf("Invitation sent to %s with role %s", email, role))
}

// DeleteUser permanently removes the identity.
func (u *UserAdminInteractor) DeleteUser(ctx context.Context, userID uuid.UUID) (result *domain.ActionResult) {
	defer u.recoverToResult(&result, msgDeleteFailed, "delete_user")

	u.logger.Info("deleting user", "user_id", userID)

	if err := u.identityGateway.DeleteUser(ctx, userID); err != nil {
		u.logger.Error("user deletion failed",
			"user_id", userID,
			"error", err)
		return domain.Fail(msgDeleteFailed, err)
	}

	u.logger.Info("user deleted successfully", "user_id", userID)

	return domain.Succeed(fmt.Sprintf("User %s deleted", userID))
}

// UpdateUserAppMetadata overwrites the identity's authoritative role
// metadata.
func (u *UserAdminInteractor) UpdateUserAppMetadata(ctx context.Context, userID uuid.UUID, role domain.Role) (result *domain.ActionResult) {
	defer u.recoverToResult(&result, msgMetadataUpdateFailed, "update_user_app_metadata")

	u.logger.Info("updating user app metadata",
		"user_id", userID,
		"role", role)

	if err := u.identityGateway.UpdateAppMetadata(ctx, userID, role); err != nil {
		u.logger.Error("app metadata update failed",
			"user_id", userID,
			"error", err)
		return domain.Fail(msgMetadataUpdateFailed, err)
	}

	u.logger.Info("user app metadata updated successfully",
		"user_id", userID,
		"role", role)

	return domain.Succeed(fmt.Sprintf("app_metadata updated with role %s", role))
}

// recoverToResult converts a panic escaping an operation into a failure
// result carrying the operation's fixed message.
func (u *UserAdminInteractor) recoverToResult(result **domain.ActionResult, message string, operation string) {
	if r := recover(); r != nil {
		u.logger.Error("unexpected fault in admin action",
			"operation", operation,
			"panic", r)
		*result = domain.Fail(message, fmt.Errorf("unexpected fault: %v", r))
	}
}
