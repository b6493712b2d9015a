package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rollodex/brandcentral/internal/models"
)

func TestUserService_GetProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockProfileReader(ctrl)
	writer := NewMockProfileWriter(ctrl)
	activity := NewMockActivityWriter(ctrl)
	svc := NewUserService(reader, writer, activity)

	userID := uuid.New()
	reader.EXPECT().GetByID(gomock.Any(), userID).
		Return(&models.UserDB{UserID: userID, Email: "user@acme.com"}, nil)

	user, err := svc.GetProfile(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, "user@acme.com", user.Email)

	reader.EXPECT().GetByID(gomock.Any(), userID).Return(nil, nil)
	_, err = svc.GetProfile(context.Background(), userID)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockProfileReader(ctrl)
	writer := NewMockProfileWriter(ctrl)
	activity := NewMockActivityWriter(ctrl)
	svc := NewUserService(reader, writer, activity)

	userID := uuid.New()
	first := "Janet"

	writer.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).
		Return(&models.UserDB{UserID: userID, FirstName: first}, nil)
	activity.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	user, err := svc.UpdateProfile(context.Background(), userID, models.UserProfileUpdate{FirstName: &first})
	assert.NoError(t, err)
	assert.Equal(t, "Janet", user.FirstName)

	writer.EXPECT().UpdateProfile(gomock.Any(), userID, gomock.Any()).Return(nil, nil)
	_, err = svc.UpdateProfile(context.Background(), userID, models.UserProfileUpdate{})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
