package users

import (
	"context"

	"github.com/scrapline/scrapline/internal/pkg/models"
)

// UserGW defines the interface for user gateway operations
// go:generate mockgen -destination=mocks/mock_gateways.go -package=mocks github.com/scrapline/scrapline/services/users UserGW
type UserGW interface {
	PublishUserRegistered(ctx context.Context, user *models.User) error
}
