package kratos

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-admin-service/app/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name        string
		publicURL   string
		adminURL    string
		expectError bool
	}{
		{
			name:        "valid URLs",
			publicURL:   "http://kratos-public:4433",
			adminURL:    "http://kratos-admin:4434",
			expectError: false,
		},
		{
			name:        "empty public URL",
			publicURL:   "",
			adminURL:    "http://kratos-admin:4434",
			expectError: true,
		},
		{
			name:        "empty admin URL",
			publicURL:   "http://kratos-public:4433",
			adminURL:    "",
			expectError: true,
		},
		{
			name:        "malformed public URL",
			publicURL:   "not-a-url",
			adminURL:    "http://kratos-admin:4434",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				KratosPublicURL: tt.publicURL,
				KratosAdminURL:  tt.adminURL,
				KratosTimeout:   30 * time.Second,
			}

			client, err := NewClient(cfg, testLogger())

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				require.NotNil(t, client)
				assert.Equal(t, tt.publicURL, client.GetPublicURL())
				assert.Equal(t, tt.adminURL, client.GetAdminURL())
				assert.NotNil(t, client.PublicAPI())
				assert.NotNil(t, client.AdminAPI())
			}
		})
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{"http URL", "http://localhost:4433", true},
		{"https URL", "https://kratos.example.com", true},
		{"empty", "", false},
		{"no scheme", "localhost:4433", false},
		{"no host", "http://", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, isValidURL(tt.url))
		})
	}
}
