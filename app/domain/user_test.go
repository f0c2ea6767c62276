package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Role
		wantErr bool
	}{
		{name: "client role", raw: "client", want: RoleClient},
		{name: "admin role", raw: "admin", want: RoleAdmin},
		{name: "empty defaults to client", raw: "", want: RoleClient},
		{name: "unknown role", raw: "superuser", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRole(tt.raw)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleClient.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("owner").Valid())
	assert.False(t, Role("").Valid())
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, ValidateEmail("user@example.com"))
	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
}

func TestActionResult_Succeed(t *testing.T) {
	result := Succeed("Email updated successfully")

	assert.True(t, result.Success)
	assert.Equal(t, "Email updated successfully", result.Message)
	assert.Empty(t, result.Error)
}

func TestActionResult_Fail(t *testing.T) {
	result := Fail("Failed to update email", errors.New("identity not found"))

	assert.False(t, result.Success)
	assert.Equal(t, "Failed to update email", result.Message)
	assert.Equal(t, "identity not found", result.Error)
}

func TestActionResult_FailWithoutCause(t *testing.T) {
	result := Fail("Failed to update email", nil)

	assert.False(t, result.Success)
	assert.Empty(t, result.Error)
}
