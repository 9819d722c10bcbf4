package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/scrapline/scrapline/internal/pkg/errs"
	"github.com/scrapline/scrapline/internal/pkg/models"
)

// UserRepo implements account persistence on Postgres
type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewUserRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

const userColumns = `
	id, first_name, last_name, email, phone, password_hash, role,
	checks_left, original_checks, created_at, updated_at`

// CreateUser inserts a new account. A duplicate email surfaces as InvalidInput.
func (r *UserRepo) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (
			id, first_name, last_name, email, phone, password_hash, role,
			checks_left, original_checks, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())`

	_, err := r.db.ExecContext(
		ctx,
		query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.Phone,
		user.PasswordHash,
		user.Role,
		user.ChecksLeft,
		user.OriginalChecks,
	)
	if err != nil {
		if strings.Contains(err.Error(), "duplicate key") {
			return errs.New(errs.InvalidInput, "email is already registered")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves an account by ID
func (r *UserRepo) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE id = $1`

	user := &models.User{}
	err := r.db.GetContext(ctx, user, query, userID)
	if err == sql.ErrNoRows {
		return nil, errs.New(errs.NotFound, "user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// GetUserByEmail retrieves an account by email for credential checks
func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT` + userColumns + ` FROM users WHERE email = $1`

	user := &models.User{}
	err := r.db.GetContext(ctx, user, query, email)
	if err == sql.ErrNoRows {
		return nil, errs.New(errs.NotFound, "user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// ListUsers is the admin account listing with optional name/email filters
func (r *UserRepo) ListUsers(ctx context.Context, filter models.UserListFilter) ([]*models.User, error) {
	var sb strings.Builder
	sb.WriteString(`SELECT` + userColumns + ` FROM users WHERE 1=1`)

	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.NameSearch != "" {
		sb.WriteString(" AND (first_name || ' ' || last_name) ILIKE " + arg("%"+filter.NameSearch+"%"))
	}
	if filter.EmailSearch != "" {
		sb.WriteString(" AND email ILIKE " + arg("%"+filter.EmailSearch+"%"))
	}
	if filter.Role != "" {
		sb.WriteString(" AND role = " + arg(filter.Role))
	}

	sortField := "created_at"
	switch filter.SortField {
	case "email":
		sortField = "email"
	case "name":
		sortField = "first_name"
	case "checks_left":
		sortField = "checks_left"
	}
	direction := "DESC"
	if filter.SortAsc {
		direction = "ASC"
	}
	sb.WriteString(fmt.Sprintf(" ORDER BY %s %s", sortField, direction))

	if filter.Limit > 0 {
		sb.WriteString(" LIMIT " + arg(filter.Limit))
		sb.WriteString(" OFFSET " + arg(filter.Offset))
	}

	var users []*models.User
	if err := r.db.SelectContext(ctx, &users, sb.String(), args...); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUser persists the mutable profile fields
func (r *UserRepo) UpdateUser(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users SET
			first_name = $2,
			last_name = $3,
			phone = $4,
			role = $5,
			updated_at = NOW()
		WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, user.ID, user.FirstName, user.LastName, user.Phone, user.Role)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return errs.New(errs.NotFound, "user not found")
	}
	return nil
}

// RefillChecks restores the account's lookup allowance to its original grant
func (r *UserRepo) RefillChecks(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	query := `
		UPDATE users SET
			checks_left = original_checks,
			updated_at = NOW()
		WHERE id = $1
		RETURNING` + userColumns

	user := &models.User{}
	err := r.db.GetContext(ctx, user, query, userID)
	if err == sql.ErrNoRows {
		return nil, errs.New(errs.NotFound, "user not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to refill checks: %w", err)
	}
	return user, nil
}

// DeleteUser removes an account and, via cascade, its quotes
func (r *UserRepo) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return errs.New(errs.NotFound, "user not found")
	}
	return nil
}

// Remaining reads the account's unused lookup allowance
func (r *UserRepo) Remaining(ctx context.Context, userID uuid.UUID) (int, error) {
	var remaining int
	err := r.db.GetContext(ctx, &remaining, `SELECT checks_left FROM users WHERE id = $1`, userID)
	if err == sql.ErrNoRows {
		return 0, errs.New(errs.NotFound, "user not found")
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read checks balance: %w", err)
	}
	return remaining, nil
}

// Decrement spends one lookup. The predicate makes the decrement atomic: two
// racing spends cannot take the balance below zero.
func (r *UserRepo) Decrement(ctx context.Context, userID uuid.UUID) error {
	query := `
		UPDATE users SET
			checks_left = checks_left - 1,
			updated_at = NOW()
		WHERE id = $1 AND checks_left > 0`

	result, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return fmt.Errorf("failed to decrement checks: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return errs.New(errs.QuotaExhausted, "no vehicle lookups remaining")
	}
	return nil
}
