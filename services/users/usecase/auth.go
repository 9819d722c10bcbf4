package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/jwt"
	"github.com/scrapline/scrapline/internal/pkg/logger"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/internal/utils"
)

const minPasswordLength = 8

// Register creates a new account. The lookup allowance is granted from the
// live settings default, not a compile-time constant.
func (uc *userUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if req == nil {
		return nil, errs.New(errs.InvalidInput, "request body is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !utils.ValidateEmail(email) {
		return nil, errs.New(errs.InvalidInput, "a valid email address is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, errs.Newf(errs.InvalidInput, "password must be at least %d characters", minPasswordLength)
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return nil, errs.New(errs.InvalidInput, "first name is required")
	}
	if req.Phone != "" && !utils.ValidatePhoneNumber(req.Phone) {
		return nil, errs.New(errs.InvalidInput, "phone number is not valid")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to hash password", err)
	}

	checks, err := uc.checks.DefaultChecks(ctx)
	if err != nil {
		logger.WarnCtx(ctx, "falling back to default checks grant",
			logger.Err(err))
		checks = models.DefaultChecks
	}

	user := &models.User{
		ID:             uuid.New(),
		FirstName:      strings.TrimSpace(req.FirstName),
		LastName:       strings.TrimSpace(req.LastName),
		Email:          email,
		Phone:          strings.TrimSpace(req.Phone),
		PasswordHash:   string(hash),
		Role:           models.RoleUser,
		ChecksLeft:     checks,
		OriginalChecks: checks,
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.userGW.PublishUserRegistered(ctx, user); err != nil {
		logger.WarnCtx(ctx, "failed to publish registration event",
			logger.String("user_id", user.ID.String()),
			logger.Err(err))
	}

	logger.InfoCtx(ctx, "user registered",
		logger.String("user_id", user.ID.String()),
		logger.Int("checks_granted", checks))
	return uc.issueToken(user)
}

// Login verifies credentials and issues a JWT
func (uc *userUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req == nil {
		return nil, errs.New(errs.InvalidInput, "request body is required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return nil, errs.New(errs.InvalidInput, "email and password are required")
	}

	user, err := uc.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		// Do not leak which of the two credentials was wrong
		if errs.IsKind(err, errs.NotFound) {
			return nil, errs.New(errs.InvalidInput, "invalid email or password")
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errs.New(errs.InvalidInput, "invalid email or password")
	}

	return uc.issueToken(user)
}

// GetProfile returns the caller's own account
func (uc *userUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	return uc.userRepo.GetUserByID(ctx, userID)
}

func (uc *userUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwt.GenerateToken(user.ID, user.Email, user.Role, uc.cfg)
	if err != nil {
		return nil, errs.Wrap(errs.Internal, "failed to issue token", err)
	}
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}
