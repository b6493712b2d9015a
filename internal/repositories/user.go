package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/rollodex/brandcentral/internal/logger"
	"github.com/rollodex/brandcentral/internal/models"
)

const userColumns = `
	user_id, email, password_hash, first_name, last_name, role,
	company_name, company_type, phone, title, is_active, email_verified,
	last_login_at, created_at, updated_at
`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByEmail returns the user with the given (already normalized) email,
// or nil if no such user exists.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, email)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID returns the user with the given id, or nil if absent.
func (r *UserReadRepository) GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	const query = `
		SELECT ` + userColumns + `
		FROM users
		WHERE user_id = $1
		LIMIT 1
	`

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, userID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{userID},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts a new user row.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (
			user_id, email, password_hash, first_name, last_name, role,
			company_name, company_type, phone, title, is_active, email_verified,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	args := []any{
		user.UserID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.Role, user.CompanyName, user.CompanyType, user.Phone, user.Title,
		user.IsActive, user.EmailVerified,
	}

	_, err := ext(ctx, r.db).ExecContext(ctx, query, args...)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", args,
		"error", err,
	)

	return err
}

// UpdateProfile applies a partial profile update. Nil fields keep their
// stored value. Returns nil if the user does not exist.
func (r *UserWriteRepository) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.UserProfileUpdate) (*models.UserDB, error) {
	const query = `
		UPDATE users SET
			first_name   = COALESCE($2, first_name),
			last_name    = COALESCE($3, last_name),
			company_name = COALESCE($4, company_name),
			phone        = COALESCE($5, phone),
			title        = COALESCE($6, title),
			updated_at   = NOW()
		WHERE user_id = $1
		RETURNING ` + userColumns

	args := []any{userID, upd.FirstName, upd.LastName, upd.CompanyName, upd.Phone, upd.Title}

	var user models.UserDB
	err := sqlx.GetContext(ctx, ext(ctx, r.db), &user, query, args...)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateLastLogin stamps the user's last successful login.
func (r *UserWriteRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	const query = `
		UPDATE users SET last_login_at = NOW(), updated_at = NOW()
		WHERE user_id = $1
	`

	_, err := ext(ctx, r.db).ExecContext(ctx, query, userID)

	logger.Log.Debugw("query executed",
		"query", collapse(query),
		"args", []any{userID},
		"error", err,
	)

	return err
}
