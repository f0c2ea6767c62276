package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testInviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,user_role"`
}

func TestNew(t *testing.T) {
	v := New()
	assert.NotNil(t, v)
	assert.NotNil(t, v.validator)
}

func TestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     interface{}
		wantError bool
		errField  string
	}{
		{
			name:      "valid invite",
			input:     testInviteRequest{Email: "user@example.com", Role: "client"},
			wantError: false,
		},
		{
			name:      "valid invite without role",
			input:     testInviteRequest{Email: "user@example.com"},
			wantError: false,
		},
		{
			name:      "invalid email",
			input:     testInviteRequest{Email: "not-an-email", Role: "client"},
			wantError: true,
			errField:  "email",
		},
		{
			name:      "missing email",
			input:     testInviteRequest{Role: "admin"},
			wantError: true,
			errField:  "email",
		},
		{
			name:      "unknown role",
			input:     testInviteRequest{Email: "user@example.com", Role: "superuser"},
			wantError: true,
			errField:  "role",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.input)

			if tt.wantError {
				require.Error(t, err)
				valErr, ok := err.(*ValidationError)
				require.True(t, ok)
				assert.Contains(t, valErr.Errors, tt.errField)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("user@example.com"))
	assert.False(t, IsValidEmail("user@"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("6ba7b814-9dad-41d1-80b4-00c04fd430c8"))
	assert.False(t, IsValidUUID("not-a-uuid"))
}
