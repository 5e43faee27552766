package dto

import (
	userModel "rooming/internal/domains/user/model"
	userDto "rooming/internal/domains/user/model/dto"
	"strings"
)

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	return userModel.User{
		Username: strings.TrimSpace(r.Username),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
	}
}

// LoginRequest accepts either the username or the email in Username.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string               `json:"token"`
	User  userDto.UserResponse `json:"user"`
}

func (a *AuthResponse) FromModel(token string, user userModel.User) {
	a.Token = token
	a.User.FromModel(user)
}
