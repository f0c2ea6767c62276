package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"user-admin-service/app/domain"
	"user-admin-service/app/mocks"
)

func TestUserAdminInteractor_SyncAllUsersAppMetadata(t *testing.T) {
	userA := uuid.New()
	userB := uuid.New()

	tests := []struct {
		name        string
		setupMocks  func(*mocks.MockIdentityGateway, *mocks.MockProfileGateway)
		wantSuccess bool
		wantMessage string
		wantDetails int
	}{
		{
			name: "read failure is fatal",
			setupMocks: func(identity *mocks.MockIdentityGateway, profile *mocks.MockProfileGateway) {
				profile.EXPECT().
					ListRoleAssignments(gomock.Any()).
					Return(nil, assert.AnError)
			},
			wantSuccess: false,
			wantMessage: "Failed to fetch profiles",
		},
		{
			name: "empty set is an explicit success",
			setupMocks: func(identity *mocks.MockIdentityGateway, profile *mocks.MockProfileGateway) {
				profile.EXPECT().
					ListRoleAssignments(gomock.Any()).
					Return(nil, nil)
			},
			wantSuccess: true,
			wantMessage: "No profiles found to sync",
		},
		{
			name: "all updates succeed",
			setupMocks: func(identity *mocks.MockIdentityGateway, profile *mocks.MockProfileGateway) {
				profile.EXPECT().
					ListRoleAssignments(gomock.Any()).
					Return([]domain.RoleAssignment{
						{UserID: userA, Role: domain.RoleAdmin},
						{UserID: userB, Role: domain.RoleClient},
					}, nil)
				identity.EXPECT().
					UpdateAppMetadata(gomock.Any(), userA, domain.RoleAdmin).
					Return(nil)
				identity.EXPECT().
					UpdateAppMetadata(gomock.Any(), userB, domain.RoleClient).
					Return(nil)
			},
			wantSuccess: true,
			wantMessage: "Synced app_metadata for 2 users. 0 errors.",
		},
		{
			name: "one failure does not abort the batch",
			setupMocks: func(identity *mocks.MockIdentityGateway, profile *mocks.MockProfileGateway) {
				profile.EXPECT().
					ListRoleAssignments(gomock.Any()).
					Return([]domain.RoleAssignment{
						{UserID: userA, Role: domain.RoleAdmin},
						{UserID: userB, Role: domain.RoleClient},
					}, nil)
				identity.EXPECT().
					UpdateAppMetadata(gomock.Any(), userA, domain.RoleAdmin).
					Return(assert.AnError)
				identity.EXPECT().
					UpdateAppMetadata(gomock.Any(), userB, domain.RoleClient).
					Return(nil)
			},
			wantSuccess: true,
			wantMessage: "Synced app_metadata for 1 users. 1 errors.",
			wantDetails: 1,
		},
		{
			name: "every update failing still reports batch success",
			setupMocks: func(identity *mocks.MockIdentityGateway, profile *mocks.MockProfileGateway) {
				profile.EXPECT().
					ListRoleAssignments(gomock.Any()).
					Return([]domain.RoleAssignment{
						{UserID: userA, Role: domain.RoleAdmin},
						{UserID: userB, Role: domain.RoleClient},
					}, nil)
				identity.EXPECT().
					UpdateAppMetadata(gomock.Any(), userA, domain.RoleAdmin).
					Return(assert.AnError)
				identity.EXPECT().
					UpdateAppMetadata(gomock.Any(), userB, domain.RoleClient).
					Return(assert.AnError)
			},
			wantSuccess: true,
			wantMessage: "Synced app_metadata for 0 users. 2 errors.",
			wantDetails: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interactor, identityGateway, profileGateway := createTestInteractor(t)
			tt.setupMocks(identityGateway, profileGateway)

			result := interactor.SyncAllUsersAppMetadata(context.Background())

			require.NotNil(t, result)
			assert.Equal(t, tt.wantSuccess, result.Success)
			assert.Equal(t, tt.wantMessage, result.Message)
			assert.Len(t, result.Details, tt.wantDetails)
		})
	}
}

func TestUserAdminInteractor_SyncAllUsersAppMetadata_Details(t *testing.T) {
	userA := uuid.New()

	interactor, identityGateway, profileGateway := createTestInteractor(t)

	profileGateway.EXPECT().
		ListRoleAssignments(gomock.Any()).
		Return([]domain.RoleAssignment{{UserID: userA, Role: domain.RoleAdmin}}, nil)
	identityGateway.EXPECT().
		UpdateAppMetadata(gomock.Any(), userA, domain.RoleAdmin).
		Return(assert.AnError)

	result := interactor.SyncAllUsersAppMetadata(context.Background())

	require.NotNil(t, result)
	require.Len(t, result.Details, 1)
	assert.Equal(t,
		fmt.Sprintf("Error updating user %s: %s", userA, assert.AnError.Error()),
		result.Details[0])
}
