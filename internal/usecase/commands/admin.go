package commands

import (
	"context"
	"crypto/subtle"

	"studyspot/internal/pkg/config"
	"studyspot/internal/pkg/errs"
	"studyspot/internal/pkg/jwt"
)

type AdminLoginResult struct {
	Token string
}

type AdminCommands interface {
	Login(ctx context.Context, secret string) (*AdminLoginResult, error)
}

type adminCommandsImpl struct {
	cfg config.AdminConfig
	jwt *jwt.Service
}

func NewAdminCommands(cfg config.Config, jwtService *jwt.Service) AdminCommands {
	return &adminCommandsImpl{cfg: cfg.Admin, jwt: jwtService}
}

// Login exchanges the shared admin secret for a short-lived admin token.
func (uc *adminCommandsImpl) Login(_ context.Context, secret string) (*AdminLoginResult, error) {
	if subtle.ConstantTimeCompare([]byte(secret), []byte(uc.cfg.Password)) != 1 {
		return nil, errs.ErrInvalidAdminSecret
	}

	token, err := uc.jwt.GenerateToken(jwt.RoleAdmin)
	if err != nil {
		return nil, errs.Wrap(err, "generating admin token")
	}
	return &AdminLoginResult{Token: token}, nil
}
