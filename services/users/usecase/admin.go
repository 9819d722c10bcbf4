package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/internal/utils"
)

const defaultUserListLimit = 50

// ListUsers returns accounts matching the admin filter
func (uc *userUC) ListUsers(ctx context.Context, filter models.UserListFilter) ([]*models.User, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultUserListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return uc.userRepo.ListUsers(ctx, filter)
}

// UpdateUser applies the non-nil fields of the request to the stored account
func (uc *userUC) UpdateUser(ctx context.Context, userID uuid.UUID, req *models.UserUpdateRequest) (*models.User, error) {
	if req == nil {
		return nil, errs.New(errs.InvalidInput, "request body is required")
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		if strings.TrimSpace(*req.FirstName) == "" {
			return nil, errs.New(errs.InvalidInput, "first name cannot be empty")
		}
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Phone != nil {
		if *req.Phone != "" && !utils.ValidatePhoneNumber(*req.Phone) {
			return nil, errs.New(errs.InvalidInput, "phone number is not valid")
		}
		user.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Role != nil {
		switch *req.Role {
		case models.RoleUser, models.RoleAdmin:
			user.Role = *req.Role
		default:
			return nil, errs.Newf(errs.InvalidInput, "unknown role %q", *req.Role)
		}
	}

	if err := uc.userRepo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// RefillChecks restores the account's lookup balance to its original grant
func (uc *userUC) RefillChecks(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := uc.userRepo.RefillChecks(ctx, userID)
	if err != nil {
		return nil, err
	}
	logger.InfoCtx(ctx, "lookup balance refilled",
		logger.String("user_id", userID.String()),
		logger.Int("checks_left", user.ChecksLeft))
	return user, nil
}

// DeleteUser removes the account; quotes are removed by cascade
func (uc *userUC) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return uc.userRepo.DeleteUser(ctx, userID)
}
