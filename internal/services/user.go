package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rollodex/brandcentral/internal/models"
)

// ErrUserNotFound is returned when the requested user does not exist.
var ErrUserNotFound = errors.New("user not found")

// ProfileReader reads user records for the profile endpoints.
type ProfileReader interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// ProfileWriter applies partial profile updates.
type ProfileWriter interface {
	UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.UserProfileUpdate) (*models.UserDB, error)
}

// UserService implements the profile endpoints.
type UserService struct {
	reader   ProfileReader
	writer   ProfileWriter
	activity ActivityWriter
}

func NewUserService(reader ProfileReader, writer ProfileWriter, activity ActivityWriter) *UserService {
	return &UserService{reader: reader, writer: writer, activity: activity}
}

// GetProfile returns the user's own record.
func (svc *UserService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserDB, error) {
	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile applies the non-nil fields and returns the updated record.
// Email, role and company type are not updatable here.
func (svc *UserService) UpdateProfile(ctx context.Context, userID uuid.UUID, upd models.UserProfileUpdate) (*models.UserDB, error) {
	user, err := svc.writer.UpdateProfile(ctx, userID, upd)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	id := userID
	recordActivity(ctx, svc.activity, userID, "profile_updated", "user", &id, nil)

	return user, nil
}
