package users

import (
	"context"

	"github.com/google/uuid"
	"github.com/scrapline/scrapline/internal/pkg/models"
)

// UserUC defines the interface for account business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/scrapline/scrapline/services/users UserUC
type UserUC interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)

	ListUsers(ctx context.Context, filter models.UserListFilter) ([]*models.User, error)
	UpdateUser(ctx context.Context, userID uuid.UUID, req *models.UserUpdateRequest) (*models.User, error)
	RefillChecks(ctx context.Context, userID uuid.UUID) (*models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
