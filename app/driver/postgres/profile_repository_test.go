package postgres

import (
	"context"
	"testing"
	"time"

	"user-admin-service/app/domain"
	"user-admin-service/app/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test profile repository with mocked database
func createTestProfileRepository(t *testing.T) (*ProfileRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	repo := NewProfileRepository(mockDB, testLogger).(*ProfileRepository)

	return repo, mockDB
}

func TestProfileRepository_GetByID(t *testing.T) {
	userID := uuid.New()
	now := time.Now()

	tests := []struct {
		name     string
		setupDB  func(pgxmock.PgxPoolIface)
		wantErr  bool
		checkErr func(*testing.T, error)
		check    func(*testing.T, *domain.Profile)
	}{
		{
			name: "successful profile retrieval",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "email", "role", "created_at", "updated_at"}).
					AddRow(userID, "user@example.com", "admin", now, now)
				mockDB.ExpectQuery("SELECT id, email, role, created_at, updated_at").
					WithArgs(userID).
					WillReturnRows(rows)
			},
			wantErr: false,
			check: func(t *testing.T, profile *domain.Profile) {
				assert.Equal(t, userID, profile.ID)
				assert.Equal(t, "user@example.com", profile.Email)
				assert.Equal(t, domain.RoleAdmin, profile.Role)
			},
		},
		{
			name: "profile not found",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT id, email, role, created_at, updated_at").
					WithArgs(userID).
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrProfileNotFound)
			},
		},
		{
			name: "database error",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT id, email, role, created_at, updated_at").
					WithArgs(userID).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "failed to get profile")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProfileRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			profile, err := repo.GetByID(context.Background(), userID)

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, profile)
				if tt.checkErr != nil {
					tt.checkErr(t, err)
				}
			} else {
				require.NoError(t, err)
				require.NotNil(t, profile)
				if tt.check != nil {
					tt.check(t, profile)
				}
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_UpdateEmail(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		setupDB  func(pgxmock.PgxPoolIface)
		wantErr  bool
		checkErr func(*testing.T, error)
	}{
		{
			name: "successful email update",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE profiles").
					WithArgs("new@example.com", userID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			wantErr: false,
		},
		{
			name: "profile not found",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE profiles").
					WithArgs("new@example.com", userID).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, domain.ErrProfileNotFound)
			},
		},
		{
			name: "database error",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectExec("UPDATE profiles").
					WithArgs("new@example.com", userID).
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: true,
			checkErr: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "failed to update profile email")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProfileRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			err := repo.UpdateEmail(context.Background(), userID, "new@example.com")

			if tt.wantErr {
				require.Error(t, err)
				if tt.checkErr != nil {
					tt.checkErr(t, err)
				}
			} else {
				require.NoError(t, err)
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}

func TestProfileRepository_ListRoleAssignments(t *testing.T) {
	firstID := uuid.New()
	secondID := uuid.New()

	tests := []struct {
		name    string
		setupDB func(pgxmock.PgxPoolIface)
		wantErr bool
		check   func(*testing.T, []domain.RoleAssignment)
	}{
		{
			name: "multiple assignments",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "role"}).
					AddRow(firstID, "client").
					AddRow(secondID, "admin")
				mockDB.ExpectQuery("SELECT id, role").
					WillReturnRows(rows)
			},
			wantErr: false,
			check: func(t *testing.T, assignments []domain.RoleAssignment) {
				require.Len(t, assignments, 2)
				assert.Equal(t, firstID, assignments[0].UserID)
				assert.Equal(t, domain.RoleClient, assignments[0].Role)
				assert.Equal(t, secondID, assignments[1].UserID)
				assert.Equal(t, domain.RoleAdmin, assignments[1].Role)
			},
		},
		{
			name: "no profiles",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				rows := pgxmock.NewRows([]string{"id", "role"})
				mockDB.ExpectQuery("SELECT id, role").
					WillReturnRows(rows)
			},
			wantErr: false,
			check: func(t *testing.T, assignments []domain.RoleAssignment) {
				assert.Empty(t, assignments)
			},
		},
		{
			name: "database error",
			setupDB: func(mockDB pgxmock.PgxPoolIface) {
				mockDB.ExpectQuery("SELECT id, role").
					WillReturnError(pgx.ErrTxClosed)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mockDB := createTestProfileRepository(t)
			defer mockDB.Close()

			tt.setupDB(mockDB)

			assignments, err := repo.ListRoleAssignments(context.Background())

			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, assignments)
			} else {
				require.NoError(t, err)
				if tt.check != nil {
					tt.check(t, assignments)
				}
			}

			assert.NoError(t, mockDB.ExpectationsWereMet())
		})
	}
}
