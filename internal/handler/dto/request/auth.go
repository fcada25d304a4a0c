package request

import "studyspot/internal/usecase/commands"

type RegisterUserRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

func (r *RegisterUserRequest) ToCommand() commands.RegisterUserRequest {
	return commands.RegisterUserRequest{
		Username: r.Username,
		Password: r.Password,
		FullName: r.FullName,
		Email:    r.Email,
	}
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}
