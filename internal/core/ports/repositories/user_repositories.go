package repositories

import (
	"context"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// UserRepository is the storage interface for dashboard user accounts.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) error
	// UpdateRefreshToken stores the hash and expiry of a newly issued refresh
	// token; empty hash clears it.
	UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt *time.Time) error
}
