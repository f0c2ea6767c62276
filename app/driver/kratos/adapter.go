package kratos

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	kratosclient "github.com/ory/kratos-client-go"

	"user-admin-service/app/config"
	"user-admin-service/app/domain"
	"user-admin-service/app/port"
)

// identitySchemaID is the Kratos identity schema used for created identities.
const identitySchemaID = "default"

// recoveryLinkExpiry bounds how long invite and reset links stay valid.
const recoveryLinkExpiry = "24h"

// IdentityClientAdapter adapts the kratos.Client to port.KratosIdentityClient.
type IdentityClientAdapter struct {
	client *Client
	cfg    *config.Config
	logger *slog.Logger
}

// NewIdentityClientAdapter creates a new adapter
func NewIdentityClientAdapter(client *Client, cfg *config.Config, logger *slog.Logger) port.KratosIdentityClient {
	return &IdentityClientAdapter{
		client: client,
		cfg:    cfg,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// UpdateIdentityEmail patches the email trait of the identity.
func (a *IdentityClientAdapter) UpdateIdentityEmail(ctx context.Context, identityID string, email string) error {
	a.logger.Info("updating identity email in Kratos",
		"identity_id", identityID)

	patch := []kratosclient.JsonPatch{
		{Op: "replace", Path: "/traits/email", Value: email},
	}

	_, httpResp, err := a.client.AdminAPI().IdentityAPI.
		PatchIdentity(ctx, identityID).
		JsonPatch(patch).
		Execute()

	if err != nil {
		a.logger.Error("kratos identity email update failed",
			"identity_id", identityID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return a.translateKratosError(err, httpResp, "update_identity_email")
	}

	a.logger.Info("identity email updated successfully",
		"identity_id", identityID)

	return nil
}

// UpdateIdentityRole overwrites the identity's admin-level metadata with the
// given role. Admin-level metadata is the authoritative copy consulted by
// access-control checks; the public-level copy is written on invite only.
func (a *IdentityClientAdapter) UpdateIdentityRole(ctx context.Context, identityID string, role string) error {
	a.logger.Info("updating identity role metadata in Kratos",
		"identity_id", identityID,
		"role", role)

	patch := []kratosclient.JsonPatch{
		{Op: "replace", Path: "/metadata_admin", Value: map[string]interface{}{"role": role}},
	}

	_, httpResp, err := a.client.AdminAPI().IdentityAPI.
		PatchIdentity(ctx, identityID).
		JsonPatch(patch).
		Execute()

	if err != nil {
		a.logger.Error("kratos identity role update failed",
			"identity_id", identityID,
			"role", role,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return a.translateKratosError(err, httpResp, "update_identity_role")
	}

	a.logger.Info("identity role metadata updated successfully",
		"identity_id", identityID,
		"role", role)

	return nil
}

// CreateInvitedIdentity creates a pending identity carrying the role in both
// metadata tiers and delivers the invite through a recovery link pointing at
// the site's auth callback.
func (a *IdentityClientAdapter) CreateInvitedIdentity(ctx context.Context, email string, role string) (string, error) {
	a.logger.Info("creating invited identity in Kratos",
		"email", email,
		"role", role)

	body := kratosclient.CreateIdentityBody{
		SchemaId: identitySchemaID,
		Traits: map[string]interface{}{
			"email": email,
		},
		// Public-level role kept for backward compatibility only; the
		// admin-level copy is authoritative.
		MetadataPublic: map[string]interface{}{"role": role},
		MetadataAdmin:  map[string]interface{}{"role": role},
	}

	identity, httpResp, err := a.client.AdminAPI().IdentityAPI.
		CreateIdentity(ctx).
		CreateIdentityBody(body).
		Execute()

	if err != nil {
		a.logger.Error("kratos identity creation failed",
			"email", email,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return "", a.translateKratosError(err, httpResp, "create_identity")
	}

	if err := a.deliverRecoveryLink(ctx, identity.Id, a.cfg.CallbackRedirectURL()); err != nil {
		a.logger.Error("invite delivery failed",
			"identity_id", identity.Id,
			"error", err)
		return "", fmt.Errorf("failed to deliver invite: %w", err)
	}

	a.logger.Info("invited identity created successfully",
		"identity_id", identity.Id,
		"email", email)

	return identity.Id, nil
}

// DeleteIdentity permanently removes the identity.
func (a *IdentityClientAdapter) DeleteIdentity(ctx context.Context, identityID string) error {
	a.logger.Info("deleting identity in Kratos",
		"identity_id", identityID)

	httpResp, err := a.client.AdminAPI().IdentityAPI.
		DeleteIdentity(ctx, identityID).
		Execute()

	if err != nil {
		a.logger.Error("kratos identity deletion failed",
			"identity_id", identityID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return a.translateKratosError(err, httpResp, "delete_identity")
	}

	a.logger.Info("identity deleted successfully",
		"identity_id", identityID)

	return nil
}

// TriggerRecovery resolves the identity by email and creates a recovery link
// pointing at the site's password-reset page.
func (a *IdentityClientAdapter) TriggerRecovery(ctx context.Context, email string) error {
	a.logger.Info("triggering recovery flow",
		"email", email)

	identityID, err := a.lookupIdentityID(ctx, email)
	if err != nil {
		return err
	}

	if err := a.deliverRecoveryLink(ctx, identityID, a.cfg.ResetRedirectURL()); err != nil {
		a.logger.Error("recovery delivery failed",
			"identity_id", identityID,
			"error", err)
		return err
	}

	a.logger.Info("recovery flow triggered successfully",
		"identity_id", identityID)

	return nil
}

// TriggerOneTimeCode issues a one-time recovery code for the identity bound
// to the email. With createUser the identity is created first when absent;
// without it an absent identity is an error.
func (a *IdentityClientAdapter) TriggerOneTimeCode(ctx context.Context, email string, createUser bool) error {
	a.logger.Info("triggering one-time code flow",
		"email", email,
		"create_user", createUser)

	identityID, err := a.lookupIdentityID(ctx, email)
	if err != nil {
		if !errors.Is(err, domain.ErrIdentityNotFound) || !createUser {
			return err
		}

		body := kratosclient.CreateIdentityBody{
			SchemaId: identitySchemaID,
			Traits: map[string]interface{}{
				"email": email,
			},
		}
		identity, httpResp, createErr := a.client.AdminAPI().IdentityAPI.
			CreateIdentity(ctx).
			CreateIdentityBody(body).
			Execute()
		if createErr != nil {
			a.logger.Error("kratos identity creation for magic link failed",
				"email", email,
				"error", createErr,
				"http_status", getHTTPStatus(httpResp))
			return a.translateKratosError(createErr, httpResp, "create_identity")
		}
		identityID = identity.Id
	}

	codeBody := kratosclient.CreateRecoveryCodeForIdentityBody{
		IdentityId: identityID,
	}

	_, httpResp, err := a.client.AdminAPI().IdentityAPI.
		CreateRecoveryCodeForIdentity(ctx).
		CreateRecoveryCodeForIdentityBody(codeBody).
		Execute()

	if err != nil {
		a.logger.Error("kratos recovery code creation failed",
			"identity_id", identityID,
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return a.translateKratosError(err, httpResp, "create_recovery_code")
	}

	a.logger.Info("one-time code issued successfully",
		"identity_id", identityID)

	return nil
}

// lookupIdentityID resolves an identity id from an email through the admin
// credentials-identifier filter.
func (a *IdentityClientAdapter) lookupIdentityID(ctx context.Context, email string) (string, error) {
	identities, httpResp, err := a.client.AdminAPI().IdentityAPI.
		ListIdentities(ctx).
		CredentialsIdentifier(email).
		Execute()

	if err != nil {
		a.logger.Error("kratos identity lookup failed",
			"error", err,
			"http_status", getHTTPStatus(httpResp))
		return "", a.translateKratosError(err, httpResp, "lookup_identity")
	}

	if len(identities) == 0 {
		return "", domain.ErrIdentityNotFound
	}

	return identities[0].Id, nil
}

// deliverRecoveryLink asks Kratos to create (and courier) a recovery link
// with the given redirect target.
func (a *IdentityClientAdapter) deliverRecoveryLink(ctx context.Context, identityID string, returnTo string) error {
	body := kratosclient.CreateRecoveryLinkForIdentityBody{
		IdentityId: identityID,
		ExpiresIn:  kratosclient.PtrString(recoveryLinkExpiry),
	}

	_, httpResp, err := a.client.AdminAPI().IdentityAPI.
		CreateRecoveryLinkForIdentity(ctx).
		CreateRecoveryLinkForIdentityBody(body).
		ReturnTo(returnTo).
		Execute()

	if err != nil {
		return a.translateKratosError(err, httpResp, "create_recovery_link")
	}

	return nil
}
