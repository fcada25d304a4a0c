package commands

import (
	"context"

	"studyspot/internal/domain/user"
	"studyspot/internal/pkg/errs"
	"studyspot/internal/pkg/password"
)

type RegisterUserRequest struct {
	Username string
	Password string
	FullName string
	Email    string
}

type UserCommands interface {
	Register(ctx context.Context, req RegisterUserRequest) (*user.User, error)
}

type userCommandsImpl struct {
	store UserStore
}

func NewUserCommands(store UserStore) UserCommands {
	return &userCommandsImpl{store: store}
}

func (uc *userCommandsImpl) Register(ctx context.Context, req RegisterUserRequest) (*user.User, error) {
	if existing, _ := uc.store.GetUserByUsername(ctx, req.Username); existing != nil {
		return nil, errs.ErrDuplicateUsername
	}
	if existing, _ := uc.store.GetUserByEmail(ctx, req.Email); existing != nil {
		return nil, errs.ErrDuplicateEmail
	}

	hashed, err := password.HashPassword(req.Password)
	if err != nil {
		return nil, errs.Wrap(err, "hashing password")
	}

	return uc.store.CreateUser(ctx, user.User{
		Username: req.Username,
		Password: hashed,
		FullName: req.FullName,
		Email:    req.Email,
	})
}
