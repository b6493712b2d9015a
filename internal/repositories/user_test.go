package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/rollodex/brandcentral/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

var userRows = []string{
	"user_id", "email", "password_hash", "first_name", "last_name", "role",
	"company_name", "company_type", "phone", "title", "is_active", "email_verified",
	"last_login_at", "created_at", "updated_at",
}

func TestUserReadRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	userID := uuid.New()
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("user@acme.com").
		WillReturnRows(sqlmock.NewRows(userRows).AddRow(
			userID, "user@acme.com", "hash", "Jane", "Doe", "retailer_admin",
			"Corner Shop", "retailer", nil, nil, true, false,
			nil, now, now,
		))

	user, err := repo.GetByEmail(context.Background(), "user@acme.com")

	assert.NoError(t, err)
	assert.Equal(t, userID, user.UserID)
	assert.Nil(t, user.Phone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByEmail_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE email").
		WithArgs("ghost@acme.com").
		WillReturnRows(sqlmock.NewRows(userRows))

	user, err := repo.GetByEmail(context.Background(), "ghost@acme.com")

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	user := &models.UserDB{
		UserID:      uuid.New(),
		Email:       "user@acme.com",
		FirstName:   "Jane",
		LastName:    "Doe",
		Role:        "brand_admin",
		CompanyName: "Acme Goods",
		CompanyType: "brand",
		IsActive:    true,
	}

	mock.ExpectExec("INSERT INTO users").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Create(context.Background(), user))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UpdateProfile_Absent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db)

	mock.ExpectQuery("UPDATE users SET").
		WillReturnRows(sqlmock.NewRows(userRows))

	user, err := repo.UpdateProfile(context.Background(), uuid.New(), models.UserProfileUpdate{})

	assert.NoError(t, err)
	assert.Nil(t, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}
