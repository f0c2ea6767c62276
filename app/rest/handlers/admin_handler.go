package handlers

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"user-admin-service/app/domain"
	"user-admin-service/app/port"
	"user-admin-service/app/utils/validator"
)

// AdminHandler handles administrative user-management HTTP requests. Every
// action route answers 200 with the ActionResult JSON; 400 is reserved for
// malformed or invalid request payloads.
type AdminHandler struct {
	adminUsecase port.UserAdminUsecase
	validator    *validator.Validator
	logger       *slog.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUsecase port.UserAdminUsecase, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		adminUsecase: adminUsecase,
		validator:    validator.New(),
		logger:       logger,
	}
}

// Request types
type ChangeEmailRequest struct {
	NewEmail string `json:"new_email" validate:"required,email"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type InviteUserRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,user_role"`
}

type UpdateMetadataRequest struct {
	Role string `json:"role" validate:"required,user_role"`
}

// ChangeUserEmail updates a user's email address
// @Summary Change user email
// @Description Update the identity provider's stored email for a user
// @Tags admin
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param body body ChangeEmailRequest true "New email"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ErrorResponse
// @Router /v1/admin/users/{userId}/email [post]
func (h *AdminHandler) ChangeUserEmail(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := h.parseUserID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid user id",
		})
	}

	var req ChangeEmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
	}

	result := h.adminUsecase.ChangeUserEmail(ctx, userID, req.NewEmail)
	return c.JSON(http.StatusOK, result)
}

// SendPasswordReset triggers a password-reset email
// @Summary Send password reset
// @Description Trigger the identity provider's password-reset email flow
// @Tags admin
// @Accept json
// @Produce json
// @Param body body EmailRequest true "Target email"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ErrorResponse
// @Router /v1/admin/users/password-reset [post]
func (h *AdminHandler) SendPasswordReset(c echo.Context) error {
	ctx := c.Request().Context()

	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
	}

	result := h.adminUsecase.SendPasswordReset(ctx, req.Email)
	return c.JSON(http.StatusOK, result)
}

// RequestReauthentication triggers a one-time-code email for an existing user
// @Summary Request reauthentication
// @Description Send a one-time-code email; the user must already exist
// @Tags admin
// @Accept json
// @Produce json
// @Param body body EmailRequest true "Target email"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ErrorResponse
// @Router /v1/admin/users/reauthenticate [post]
func (h *AdminHandler) RequestReauthentication(c echo.Context) error {
	ctx := c.Request().Context()

	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
	}

	result := h.adminUsecase.RequestReauthentication(ctx, req.Email)
	return c.JSON(http.StatusOK, result)
}

// SendMagicLink triggers a one-time-code email, creating the user if absent
// @Summary Send magic link
// @Description Send a one-time-code email, creating the identity when absent
// @Tags admin
// @Accept json
// @Produce json
// @Param body body EmailRequest true "Target email"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ErrorResponse
// @Router /v1/admin/users/magic-link [post]
func (h *AdminHandler) SendMagicLink(c echo.Context) error {
	ctx := c.Request().Context()

	var req EmailRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
	}

	result := h.adminUsecase.SendMagicLink(ctx, req.Email)
	return c.JSON(http.StatusOK, result)
}

// InviteUser creates a pending identity and sends an invite email
// @Summary Invite user
// @Description Create a pending identity with a role and send an invitation
// @Tags admin
// @Accept json
// @Produce json
// @Param body body InviteUserRequest true "Invite request"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ErrorResponse
// @Router /v1/admin/users/invite [post]
func (h *AdminHandler) InviteUser(c echo.Context) error {
	ctx := c.Request().Context()

	var req InviteUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
	}

	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
	}

	result := h.adminUsecase.InviteUser(ctx, req.Email, role)
	return c.JSON(http.StatusOK, result)
}

// DeleteUser permanently removes a user's identity
// @Summary Delete user
// @Description Permanently remove the identity from the identity provider
// @Tags admin
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ErrorResponse
// @Router /v1/admin/users/{userId} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := h.parseUserID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid user id",
		})
	}

	result := h.adminUsecase.DeleteUser(ctx, userID)
	return c.JSON(http.StatusOK, result)
}

// UpdateUserAppMetadata overwrites a user's authoritative role metadata
// @Summary Update app metadata
// @Description Overwrite the identity's authoritative role metadata
// @Tags admin
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Param body body UpdateMetadataRequest true "Role update"
// @Success 200 {object} domain.ActionResult
// @Failure 400 {object} ErrorResponse
// @Router /v1/admin/users/{userId}/app-metadata [post]
func (h *AdminHandler) UpdateUserAppMetadata(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := h.parseUserID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid user id",
		})
	}

	var req UpdateMetadataRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
	}

	if err := h.validator.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: err.Error(),
		})
	}

	result := h.adminUsecase.UpdateUserAppMetadata(ctx, userID, domain.Role(req.Role))
	return c.JSON(http.StatusOK, result)
}

// SyncAllUsersAppMetadata repairs role metadata for every profile
// @Summary Sync app metadata
// @Description Repair drift between profiles.role and identity metadata
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} domain.ActionResult
// @Router /v1/admin/users/sync-metadata [post]
func (h *AdminHandler) SyncAllUsersAppMetadata(c echo.Context) error {
	ctx := c.Request().Context()

	result := h.adminUsecase.SyncAllUsersAppMetadata(ctx)
	return c.JSON(http.StatusOK, result)
}

// parseUserID extracts and validates the userId path parameter
func (h *AdminHandler) parseUserID(c echo.Context) (uuid.UUID, error) {
	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		h.logger.Warn("invalid user id in request path",
			"user_id", c.Param("userId"),
			"error", err)
		return uuid.Nil, err
	}
	return userID, nil
}
