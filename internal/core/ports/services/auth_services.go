package services

import (
	"context"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// TokenSvcFacade issues and validates access and refresh tokens.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	GenerateRefreshToken(ctx context.Context, user *domain.User) (string, time.Time, error)
	// ValidateAndParseRefreshToken checks a raw refresh token against the
	// user's stored hash and expiry.
	ValidateAndParseRefreshToken(ctx context.Context, userID, refreshToken string) (*domain.User, error)
}

// GoogleOAuthHandlerSvcFacade wraps the Google OAuth sign-in flow.
type GoogleOAuthHandlerSvcFacade interface {
	GenerateStateString(ctx context.Context) (string, error)
	GetGoogleLoginURL(ctx context.Context, state string) string
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)
	GetUserInfo(ctx context.Context, token *oauth2.Token) (*domain.GoogleUserInfo, error)
	ValidateGoogleIDToken(ctx context.Context, idToken string) (*idtoken.Payload, error)
}
