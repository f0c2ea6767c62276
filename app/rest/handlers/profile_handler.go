package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"user-admin-service/app/domain"
	"user-admin-service/app/port"
)

// ProfileHandler exposes read access to the profiles mirror for operators.
type ProfileHandler struct {
	profileGateway port.ProfileGateway
	logger         *slog.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileGateway port.ProfileGateway, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileGateway: profileGateway,
		logger:         logger,
	}
}

// GetProfile returns the mirrored profile for a user
// @Summary Get profile
// @Description Get the mirrored email and role for a user
// @Tags admin
// @Accept json
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /v1/admin/users/{userId} [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid user id",
		})
	}

	profile, err := h.profileGateway.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{
				Error: "profile not found",
			})
		}
		h.logger.Error("failed to get profile", "userId", userID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "failed to get profile",
		})
	}

	return c.JSON(http.StatusOK, profile)
}
