package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/scrapline/scrapline/internal/pkg/models"
)

// UserRepo defines the interface for account data access. The Remaining and
// Decrement pair doubles as the lookup ledger consumed by the quote engine.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/scrapline/scrapline/services/users UserRepo
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context, filter models.UserListFilter) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	RefillChecks(ctx context.Context, userID uuid.UUID) (*models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	Remaining(ctx context.Context, userID uuid.UUID) (int, error)
	Decrement(ctx context.Context, userID uuid.UUID) error
}
