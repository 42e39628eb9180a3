package service

import (
	"context"
	"testing"

	repoMocks "go-parking-management/internal/mocks/repositories"
	"go-parking-management/internal/model"
	apperrors "go-parking-management/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Success - password is stripped", func(t *testing.T) {
		userRepo := repoMocks.NewUserRepositoryMock()
		userService := NewUserService(userRepo)

		userRepo.On("FindByID", ctx, 7).Return(&model.User{ID: 7, Email: "jane@example.com", Password: "hashed"}, nil).Once()

		user, err := userService.GetByID(ctx, 7)

		require.NoError(t, err)
		assert.Empty(t, user.Password)
	})

	t.Run("Failed - ErrUserNotFound", func(t *testing.T) {
		userRepo := repoMocks.NewUserRepositoryMock()
		userService := NewUserService(userRepo)

		userRepo.On("FindByID", ctx, 99).Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := userService.GetByID(ctx, 99)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		userRepo := repoMocks.NewUserRepositoryMock()
		userService := NewUserService(userRepo)

		userRepo.On("FindByID", ctx, 7).Return(&model.User{ID: 7, Password: hashPassword(t, "old-pass")}, nil).Once()
		userRepo.On("UpdatePassword", ctx, 7, mock.Anything).Return(nil).Once()

		err := userService.ChangePassword(ctx, 7, model.ChangePasswordRequest{CurrentPassword: "old-pass", NewPassword: "new-pass"})

		require.NoError(t, err)
		stored := userRepo.Calls[1].Arguments.String(2)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored), []byte("new-pass")))
	})

	t.Run("Failed - wrong current password", func(t *testing.T) {
		userRepo := repoMocks.NewUserRepositoryMock()
		userService := NewUserService(userRepo)

		userRepo.On("FindByID", ctx, 7).Return(&model.User{ID: 7, Password: hashPassword(t, "old-pass")}, nil).Once()

		err := userService.ChangePassword(ctx, 7, model.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "new-pass"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		userRepo.AssertNotCalled(t, "UpdatePassword")
	})
}
