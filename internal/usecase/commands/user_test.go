//go:build unit

package commands_test

import (
	"context"
	"testing"

	"studyspot/internal/pkg/errs"
	"studyspot/internal/pkg/password"
	"studyspot/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCommands_Register(t *testing.T) {
	ctx := context.Background()

	request := commands.RegisterUserRequest{
		Username: "asha",
		Password: "s3cret-pass",
		FullName: "Asha Verma",
		Email:    "asha@example.com",
	}

	t.Run("stores a bcrypt hash, never the plaintext", func(t *testing.T) {
		store := newTestStore()
		uc := commands.NewUserCommands(store)

		created, err := uc.Register(ctx, request)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.NotEqual(t, request.Password, created.Password)
		assert.NoError(t, password.ComparePassword(created.Password, request.Password))
	})

	t.Run("duplicate username", func(t *testing.T) {
		store := newTestStore()
		uc := commands.NewUserCommands(store)

		_, err := uc.Register(ctx, request)
		require.NoError(t, err)

		dup := request
		dup.Email = "other@example.com"
		_, err = uc.Register(ctx, dup)
		assert.ErrorIs(t, err, errs.ErrDuplicateUsername)
	})

	t.Run("duplicate email", func(t *testing.T) {
		store := newTestStore()
		uc := commands.NewUserCommands(store)

		_, err := uc.Register(ctx, request)
		require.NoError(t, err)

		dup := request
		dup.Username = "asha2"
		_, err = uc.Register(ctx, dup)
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})
}
