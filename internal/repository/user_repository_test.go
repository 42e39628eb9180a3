package repository

import (
	"context"
	"testing"

	"go-parking-management/internal/model"
	apperrors "go-parking-management/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(getTestDB())

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)

		created, err := repo.Create(ctx, &model.User{
			FirstName: "Jane",
			LastName:  "Doe",
			Email:     "jane@example.com",
			Password:  "hashed",
			Role:      model.RoleUser,
		})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.False(t, created.Verified)
	})

	t.Run("Failed - ErrEmailTaken", func(t *testing.T) {
		setupTestWithTruncate(t)
		createTestUser(t, "jane@example.com")

		_, err := repo.Create(ctx, &model.User{
			FirstName: "Other",
			LastName:  "Person",
			Email:     "jane@example.com",
			Password:  "hashed",
			Role:      model.RoleUser,
		})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})
}

func TestUserRepository_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(getTestDB())

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)
		id := createTestUser(t, "jane@example.com")

		user, err := repo.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.Equal(t, id, user.ID)
	})

	t.Run("Failed - ErrUserNotFound", func(t *testing.T) {
		setupTestWithTruncate(t)

		_, err := repo.FindByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserRepository_MarkVerified(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(getTestDB())

	t.Run("Success", func(t *testing.T) {
		setupTestWithTruncate(t)

		created, err := repo.Create(ctx, &model.User{
			FirstName: "Jane", LastName: "Doe", Email: "jane@example.com", Password: "hashed", Role: model.RoleUser,
		})
		require.NoError(t, err)

		require.NoError(t, repo.MarkVerified(ctx, created.ID))

		user, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, user.Verified)
	})

	t.Run("Failed - ErrUserNotFound", func(t *testing.T) {
		setupTestWithTruncate(t)
		assert.ErrorIs(t, repo.MarkVerified(ctx, 99999), apperrors.ErrUserNotFound)
	})
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(getTestDB())

	setupTestWithTruncate(t)
	id := createTestUser(t, "jane@example.com")

	require.NoError(t, repo.UpdatePassword(ctx, id, "new-hash"))

	user, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", user.Password)
}
