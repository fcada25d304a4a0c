//go:build unit

package commands_test

import (
	"context"
	"testing"

	"studyspot/internal/pkg/config"
	"studyspot/internal/pkg/errs"
	"studyspot/internal/pkg/jwt"
	"studyspot/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminCommands_Login(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig()
	jwtService := jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration)
	uc := commands.NewAdminCommands(cfg, jwtService)

	t.Run("correct secret yields a validating admin token", func(t *testing.T) {
		result, err := uc.Login(ctx, cfg.Admin.Password)
		require.NoError(t, err)
		require.NotEmpty(t, result.Token)

		claims, err := jwtService.ValidateToken(result.Token)
		require.NoError(t, err)
		assert.Equal(t, jwt.RoleAdmin, claims.Role)
	})

	t.Run("wrong secret", func(t *testing.T) {
		_, err := uc.Login(ctx, "not-the-secret")
		assert.ErrorIs(t, err, errs.ErrInvalidAdminSecret)
	})

	t.Run("empty secret", func(t *testing.T) {
		_, err := uc.Login(ctx, "")
		assert.ErrorIs(t, err, errs.ErrInvalidAdminSecret)
	})
}
