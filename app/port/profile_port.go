package port

//go:generate mockgen -source=profile_port.go -destination=../mocks/mock_profile_port.go

import (
	"context"

	"github.com/google/uuid"

	"user-admin-service/app/domain"
)

// ProfileGateway defines profile mirror access for the usecase layer.
type ProfileGateway interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error
	ListRoleAssignments(ctx context.Context) ([]domain.RoleAssignment, error)
}

// ProfileRepositoryPort defines profile data access against the relational
// store.
type ProfileRepositoryPort interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpdateEmail(ctx context.Context, userID uuid.UUID, email string) error
	ListRoleAssignments(ctx context.Context) ([]domain.RoleAssignment, error)
}
