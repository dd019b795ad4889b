package domain

import "time"

// UserRole distinguishes dashboard administrators from client accounts.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleClient UserRole = "client"
)

// User represents an account that can sign in to the dashboard.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	// Refresh token state; hash only, the raw token never persists.
	RefreshTokenHash       string     `json:"-"`
	RefreshTokenExpiryTime *time.Time `json:"-"`
	AuditFields
}

// GoogleUserInfo is the subset of the Google userinfo payload we consume.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
