package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/models"
	"github.com/scrapline/scrapline/services/users"
	"github.com/scrapline/scrapline/services/users/mocks"
)

type testDeps struct {
	repo   *mocks.MockUserRepo
	gw     *mocks.MockUserGW
	checks *mocks.MockChecksPolicy
}

func newTestUC(t *testing.T) (users.UserUC, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	deps := testDeps{
		repo:   mocks.NewMockUserRepo(ctrl),
		gw:     mocks.NewMockUserGW(ctrl),
		checks: mocks.NewMockChecksPolicy(ctrl),
	}
	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "scrapline-test",
		},
	}
	uc, err := NewUserUC(cfg, deps.repo, deps.gw, deps.checks)
	require.NoError(t, err)
	return uc, deps
}

func registerRequest() *models.RegisterRequest {
	return &models.RegisterRequest{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "Ada@Example.com",
		Phone:     "+44 7700 900123",
		Password:  "correct-horse",
	}
}

func TestRegister_GrantsConfiguredChecks(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	deps.checks.EXPECT().DefaultChecks(ctx).Return(5, nil)

	var created *models.User
	deps.repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			created = u
			return nil
		})
	deps.gw.EXPECT().PublishUserRegistered(ctx, gomock.Any()).Return(nil)

	resp, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "ada@example.com", created.Email)
	assert.Equal(t, models.RoleUser, created.Role)
	assert.Equal(t, 5, created.ChecksLeft)
	assert.Equal(t, 5, created.OriginalChecks)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(created.PasswordHash), []byte("correct-horse")))

	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, int64(0))
	assert.Equal(t, created, resp.User)
}

func TestRegister_FallsBackWhenSettingsUnavailable(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	deps.checks.EXPECT().DefaultChecks(ctx).Return(0, errors.New("redis down"))
	deps.repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			assert.Equal(t, models.DefaultChecks, u.ChecksLeft)
			return nil
		})
	deps.gw.EXPECT().PublishUserRegistered(ctx, gomock.Any()).Return(nil)

	_, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)
}

func TestRegister_ValidationFailures(t *testing.T) {
	uc, _ := newTestUC(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*models.RegisterRequest)
	}{
		{"bad email", func(r *models.RegisterRequest) { r.Email = "not-an-email" }},
		{"short password", func(r *models.RegisterRequest) { r.Password = "short" }},
		{"missing first name", func(r *models.RegisterRequest) { r.FirstName = "  " }},
		{"bad phone", func(r *models.RegisterRequest) { r.Phone = "abc" }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := registerRequest()
			tc.mutate(req)
			_, err := uc.Register(ctx, req)
			require.Error(t, err)
			assert.Equal(t, errs.InvalidInput, errs.KindOf(err))
		})
	}
}

func TestRegister_PublishFailureDoesNotBlock(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	deps.checks.EXPECT().DefaultChecks(ctx).Return(10, nil)
	deps.repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil)
	deps.gw.EXPECT().PublishUserRegistered(ctx, gomock.Any()).
		Return(errors.New("nats unavailable"))

	resp, err := uc.Register(ctx, registerRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_Success(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := &models.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
	deps.repo.EXPECT().GetUserByEmail(ctx, "ada@example.com").Return(stored, nil)

	resp, err := uc.Login(ctx, &models.LoginRequest{
		Email:    " Ada@Example.com ",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, stored, resp.User)
}

func TestLogin_WrongPasswordAndUnknownEmailLookAlike(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	deps.repo.EXPECT().GetUserByEmail(ctx, "ada@example.com").Return(&models.User{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		PasswordHash: string(hash),
	}, nil)
	_, wrongPass := uc.Login(ctx, &models.LoginRequest{Email: "ada@example.com", Password: "nope"})

	deps.repo.EXPECT().GetUserByEmail(ctx, "ghost@example.com").
		Return(nil, errs.New(errs.NotFound, "user not found"))
	_, unknown := uc.Login(ctx, &models.LoginRequest{Email: "ghost@example.com", Password: "nope"})

	require.Error(t, wrongPass)
	require.Error(t, unknown)
	assert.Equal(t, errs.KindOf(wrongPass), errs.KindOf(unknown))
	assert.Equal(t, wrongPass.Error(), unknown.Error())
}

func TestUpdateUser_AppliesOnlyProvidedFields(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()
	userID := uuid.New()

	deps.repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{
		ID:        userID,
		FirstName: "Ada",
		LastName:  "Lovelace",
		Phone:     "+447700900123",
		Role:      models.RoleUser,
	}, nil)
	deps.repo.EXPECT().UpdateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u *models.User) error {
			assert.Equal(t, "Augusta", u.FirstName)
			assert.Equal(t, "Lovelace", u.LastName)
			assert.Equal(t, models.RoleAdmin, u.Role)
			return nil
		})

	firstName := "Augusta"
	role := models.RoleAdmin
	updated, err := uc.UpdateUser(ctx, userID, &models.UserUpdateRequest{
		FirstName: &firstName,
		Role:      &role,
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, updated.Role)
}

func TestUpdateUser_RejectsUnknownRole(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()
	userID := uuid.New()

	deps.repo.EXPECT().GetUserByID(ctx, userID).Return(&models.User{ID: userID}, nil)

	role := "superuser"
	_, err := uc.UpdateUser(ctx, userID, &models.UserUpdateRequest{Role: &role})
	require.Error(t, err)
	assert.Equal(t, errs.InvalidInput, errs.KindOf(err))
}

func TestRefillChecks_RestoresBalance(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()
	userID := uuid.New()

	deps.repo.EXPECT().RefillChecks(ctx, userID).Return(&models.User{
		ID:             userID,
		ChecksLeft:     10,
		OriginalChecks: 10,
	}, nil)

	user, err := uc.RefillChecks(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 10, user.ChecksLeft)
}

func TestListUsers_AppliesDefaultLimit(t *testing.T) {
	uc, deps := newTestUC(t)
	ctx := context.Background()

	deps.repo.EXPECT().ListUsers(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, f models.UserListFilter) ([]*models.User, error) {
			assert.Equal(t, 50, f.Limit)
			assert.Equal(t, 0, f.Offset)
			return nil, nil
		})

	_, err := uc.ListUsers(ctx, models.UserListFilter{Offset: -3})
	require.NoError(t, err)
}
