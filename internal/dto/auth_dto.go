package dto

import (
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// RegisterUserRequest represents the payload for registering a new user
type RegisterUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the payload for email/password login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents a successful authentication response
type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	ExpiresAt   time.Time    `json:"expiresAt"`
	User        UserResponse `json:"user"`
}

// GoogleCallbackRequest represents the payload for the Google ID token flow
type GoogleCallbackRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// ToLoginResponse builds the authentication response for a signed-in user
func ToLoginResponse(user *domain.User, accessToken string, expiresAt time.Time) LoginResponse {
	return LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		User:        ToUserResponse(user),
	}
}
