package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

// Ensure MockUserRepository implements portsrepo.UserRepository
var _ portsrepo.UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID, tokenHash string, expiresAt *time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindUserByEmail", ctx, "new@example.com").Return(nil, apperrors.ErrNotFound)

		var saved domain.User
		repo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(domain.User)
			}).
			Return(nil)

		svc := services.NewUserService(repo)

		user, err := svc.CreateUser(ctx, "New User", "new@example.com", "s3cret-password", domain.RoleAdmin)
		require.NoError(t, err)

		assert.NotEmpty(t, user.UserID)
		assert.Equal(t, domain.RoleAdmin, user.Role)
		assert.NotEqual(t, "s3cret-password", saved.PasswordHash)
		assert.True(t, utils.CheckPasswordHash("s3cret-password", saved.PasswordHash))
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindUserByEmail", ctx, "taken@example.com").
			Return(&domain.User{UserID: "user-1", Email: "taken@example.com"}, nil)

		svc := services.NewUserService(repo)

		_, err := svc.CreateUser(ctx, "Someone", "taken@example.com", "s3cret-password", domain.RoleAdmin)
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
		repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
	})

	t.Run("missing credentials fail validation", func(t *testing.T) {
		repo := new(MockUserRepository)
		svc := services.NewUserService(repo)

		_, err := svc.CreateUser(ctx, "Someone", "", "s3cret-password", domain.RoleAdmin)
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, err = svc.CreateUser(ctx, "Someone", "a@b.com", "", domain.RoleAdmin)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestAuthenticateUser(t *testing.T) {
	ctx := context.Background()

	hash, err := utils.HashPassword("correct-password")
	require.NoError(t, err)
	stored := &domain.User{
		UserID:       "user-1",
		Email:        "user@example.com",
		PasswordHash: hash,
	}

	t.Run("valid credentials return the user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindUserByEmail", ctx, "user@example.com").Return(stored, nil)

		svc := services.NewUserService(repo)

		user, err := svc.AuthenticateUser(ctx, "user@example.com", "correct-password")
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.UserID)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindUserByEmail", ctx, "user@example.com").Return(stored, nil)
		repo.On("FindUserByEmail", ctx, "ghost@example.com").Return(nil, apperrors.ErrNotFound)

		svc := services.NewUserService(repo)

		_, wrongPw := svc.AuthenticateUser(ctx, "user@example.com", "wrong-password")
		_, unknown := svc.AuthenticateUser(ctx, "ghost@example.com", "correct-password")

		assert.ErrorIs(t, wrongPw, apperrors.ErrUnauthorized)
		assert.ErrorIs(t, unknown, apperrors.ErrUnauthorized)
	})
}

func TestFindOrCreateFromGoogle(t *testing.T) {
	ctx := context.Background()

	info := domain.GoogleUserInfo{
		ID:            "google-sub-1",
		Email:         "google@example.com",
		VerifiedEmail: true,
		Name:          "Google User",
	}

	t.Run("existing user is returned as-is", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindUserByEmail", ctx, "google@example.com").
			Return(&domain.User{UserID: "user-1", Email: "google@example.com", Role: domain.RoleAdmin}, nil)

		svc := services.NewUserService(repo)

		user, err := svc.FindOrCreateFromGoogle(ctx, info)
		require.NoError(t, err)
		assert.Equal(t, "user-1", user.UserID)
		repo.AssertNotCalled(t, "SaveUser", mock.Anything, mock.Anything)
	})

	t.Run("first sign-in creates a client role user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindUserByEmail", ctx, "google@example.com").Return(nil, apperrors.ErrNotFound)

		var saved domain.User
		repo.On("SaveUser", ctx, mock.AnythingOfType("domain.User")).
			Run(func(args mock.Arguments) {
				saved = args.Get(1).(domain.User)
			}).
			Return(nil)

		svc := services.NewUserService(repo)

		user, err := svc.FindOrCreateFromGoogle(ctx, info)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleClient, user.Role)
		assert.Equal(t, "google@example.com", saved.Email)
		assert.Empty(t, saved.PasswordHash)
	})

	t.Run("unverified email is rejected", func(t *testing.T) {
		unverified := info
		unverified.VerifiedEmail = false

		repo := new(MockUserRepository)
		svc := services.NewUserService(repo)

		_, err := svc.FindOrCreateFromGoogle(ctx, unverified)
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
		repo.AssertNotCalled(t, "FindUserByEmail", mock.Anything, mock.Anything)
	})
}

func TestRefreshTokenStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("stores the token hash, never the raw token", func(t *testing.T) {
		expiry := time.Now().Add(24 * time.Hour)

		repo := new(MockUserRepository)
		repo.On("UpdateRefreshToken", ctx, "user-1", mock.MatchedBy(func(hash string) bool {
			return hash != "" && hash != "raw-refresh-token"
		}), mock.AnythingOfType("*time.Time")).Return(nil)

		svc := services.NewUserService(repo)

		require.NoError(t, svc.StoreRefreshToken(ctx, "user-1", "raw-refresh-token", expiry))
		repo.AssertExpectations(t)
	})

	t.Run("clearing wipes the hash and expiry", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("UpdateRefreshToken", ctx, "user-1", "", (*time.Time)(nil)).Return(nil)

		svc := services.NewUserService(repo)

		require.NoError(t, svc.ClearRefreshToken(ctx, "user-1"))
		repo.AssertExpectations(t)
	})
}
