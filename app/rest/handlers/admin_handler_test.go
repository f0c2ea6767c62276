package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"user-admin-service/app/domain"
	"user-admin-service/app/mocks"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func createTestAdminHandler(t *testing.T) (*AdminHandler, *mocks.MockUserAdminUsecase) {
	t.Helper()

	ctrl := gomock.NewController(t)
	adminUsecase := mocks.NewMockUserAdminUsecase(ctrl)

	return NewAdminHandler(adminUsecase, testLogger()), adminUsecase
}

func newJSONContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeActionResult(t *testing.T, rec *httptest.ResponseRecorder) *domain.ActionResult {
	t.Helper()

	var result domain.ActionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return &result
}

func TestAdminHandler_ChangeUserEmail(t *testing.T) {
	userID := uuid.New()

	t.Run("successful change returns result with 200", func(t *testing.T) {
		handler, adminUsecase := createTestAdminHandler(t)

		adminUsecase.EXPECT().
			ChangeUserEmail(gomock.Any(), userID, "new@example.com").
			Return(domain.Succeed("Email updated to new@example.com"))

		c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/"+userID.String()+"/email",
			`{"new_email":"new@example.com"}`)
		c.SetParamNames("userId")
		c.SetParamValues(userID.String())

		require.NoError(t, handler.ChangeUserEmail(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		result := decodeActionResult(t, rec)
		assert.True(t, result.Success)
		assert.Equal(t, "Email updated to new@example.com", result.Message)
	})

	t.Run("failure result is still 200", func(t *testing.T) {
		handler, adminUsecase := createTestAdminHandler(t)

		adminUsecase.EXPECT().
			ChangeUserEmail(gomock.Any(), userID, "new@example.com").
			Return(domain.Fail("Failed to update email", assert.AnError))

		c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/"+userID.String()+"/email",
			`{"new_email":"new@example.com"}`)
		c.SetParamNames("userId")
		c.SetParamValues(userID.String())

		require.NoError(t, handler.ChangeUserEmail(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		result := decodeActionResult(t, rec)
		assert.False(t, result.Success)
		assert.Equal(t, assert.AnError.Error(), result.Error)
	})

	t.Run("invalid user id is 400", func(t *testing.T) {
		handler, _ := createTestAdminHandler(t)

		c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/not-a-uuid/email",
			`{"new_email":"new@example.com"}`)
		c.SetParamNames("userId")
		c.SetParamValues("not-a-uuid")

		require.NoError(t, handler.ChangeUserEmail(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("invalid email is 400", func(t *testing.T) {
		handler, _ := createTestAdminHandler(t)

		c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/"+userID.String()+"/email",
			`{"new_email":"not-an-email"}`)
		c.SetParamNames("userId")
		c.SetParamValues(userID.String())

		require.NoError(t, handler.ChangeUserEmail(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_SendPasswordReset(t *testing.T) {
	t.Run("successful reset", func(t *testing.T) {
		handler, adminUsecase := createTestAdminHandler(t)

		adminUsecase.EXPECT().
			SendPasswordReset(gomock.Any(), "user@example.com").
			Return(domain.Succeed("Password reset email sent to user@example.com"))

		c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/password-reset",
			`{"email":"user@example.com"}`)

		require.NoError(t, handler.SendPasswordReset(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		result := decodeActionResult(t, rec)
		assert.True(t, result.Success)
	})

	t.Run("missing email is 400", func(t *testing.T) {
		handler, _ := createTestAdminHandler(t)

		c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/password-reset", `{}`)

		require.NoError(t, handler.SendPasswordReset(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body is 400", func(t *testing.T) {
		handler, _ := createTestAdminHandler(t)

		c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/password-reset", `{not json`)

		require.NoError(t, handler.SendPasswordReset(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_InviteUser(t *testing.T) {
	t.Run("explicit role", func(t *testing.T) {
		handler, adminUsecase := createTestAdminHandler(t)

		adminUsecase.EXPECT().
			InviteUser(gomock.Any(), "invitee@example.com", domain.RoleAdmin).
			Return(domain.Succeed("Invitation sent to invitee@example.com with role admin"))

		c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/invite",
			`{"email":"invitee@example.com","role":"admin"}`)

		require.NoError(t, handler.InviteUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("omitted role defaults to client", func(t *testing.T) {
		handler, adminUsecase := createTestAdminHandler(t)

		adminUsecase.EXPECT().
			InviteUser(gomock.Any(), "invitee@example.com", domain.RoleClient).
			Return(domain.Succeed("Invitation sent to invitee@example.com with role client"))

		c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/invite",
			`{"email":"invitee@example.com"}`)

		require.NoError(t, handler.InviteUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown role is 400", func(t *testing.T) {
		handler, _ := createTestAdminHandler(t)

		c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/invite",
			`{"email":"invitee@example.com","role":"superuser"}`)

		require.NoError(t, handler.InviteUser(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_DeleteUser(t *testing.T) {
	userID := uuid.New()

	t.Run("successful deletion", func(t *testing.T) {
		handler, adminUsecase := createTestAdminHandler(t)

		adminUsecase.EXPECT().
			DeleteUser(gomock.Any(), userID).
			Return(domain.Succeed("User deleted"))

		c, rec := newJSONContext(t, http.MethodDelete, "/v1/admin/users/"+userID.String(), "")
		c.SetParamNames("userId")
		c.SetParamValues(userID.String())

		require.NoError(t, handler.DeleteUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("invalid user id is 400", func(t *testing.T) {
		handler, _ := createTestAdminHandler(t)

		c, rec := newJSONContext(t, http.MethodDelete, "/v1/admin/users/bogus", "")
		c.SetParamNames("userId")
		c.SetParamValues("bogus")

		require.NoError(t, handler.DeleteUser(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_UpdateUserAppMetadata(t *testing.T) {
	userID := uuid.New()

	t.Run("successful update", func(t *testing.T) {
		handler, adminUsecase := createTestAdminHandler(t)

		adminUsecase.EXPECT().
			UpdateUserAppMetadata(gomock.Any(), userID, domain.RoleAdmin).
			Return(domain.Succeed("app_metadata updated with role admin"))

		c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/"+userID.String()+"/app-metadata",
			`{"role":"admin"}`)
		c.SetParamNames("userId")
		c.SetParamValues(userID.String())

		require.NoError(t, handler.UpdateUserAppMetadata(c))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing role is 400", func(t *testing.T) {
		handler, _ := createTestAdminHandler(t)

		c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/"+userID.String()+"/app-metadata", `{}`)
		c.SetParamNames("userId")
		c.SetParamValues(userID.String())

		require.NoError(t, handler.UpdateUserAppMetadata(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminHandler_SyncAllUsersAppMetadata(t *testing.T) {
	handler, adminUsecase := createTestAdminHandler(t)

	syncResult := domain.Succeed("Synced app_metadata for 1 users. 1 errors.")
	syncResult.Details = []string{"Error updating user abc: boom"}

	adminUsecase.EXPECT().
		SyncAllUsersAppMetadata(gomock.Any()).
		Return(syncResult)

	c, rec := newJSONContext(t, http.MethodPost, "/v1/admin/users/sync-metadata", "")

	require.NoError(t, handler.SyncAllUsersAppMetadata(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	result := decodeActionResult(t, rec)
	assert.True(t, result.Success)
	assert.Equal(t, "Synced app_metadata for 1 users. 1 errors.", result.Message)
	assert.Len(t, result.Details, 1)
}
