package services

import (
	"context"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// UserSvcFacade manages dashboard user accounts.
type UserSvcFacade interface {
	CreateUser(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// AuthenticateUser verifies email+password credentials.
	AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error)
	// FindOrCreateFromGoogle resolves a user for a verified Google identity,
	// creating the account on first sign-in.
	FindOrCreateFromGoogle(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
	// StoreRefreshToken persists the hash of a freshly issued refresh token.
	StoreRefreshToken(ctx context.Context, userID, rawToken string, expiresAt time.Time) error
	// ClearRefreshToken invalidates any stored refresh token.
	ClearRefreshToken(ctx context.Context, userID string) error
}
