package usecase

import (
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/services/users"
)

// userUC implements the users.UserUC interface
type userUC struct {
	cfg      *models.Config
	userRepo users.UserRepo
	userGW   users.UserGW
	checks   users.ChecksPolicy
}

// NewUserUC creates a new user use case
func NewUserUC(
	cfg *models.Config,
	userRepo users.UserRepo,
	userGW users.UserGW,
	checks users.ChecksPolicy,
) (users.UserUC, error) {
	return &userUC{
		cfg:      cfg,
		userRepo: userRepo,
		userGW:   userGW,
		checks:   checks,
	}, nil
}
