package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
	"github.com/mcodevbytes/finance_dashboard_app/internal/utils"
)

// userService implements the UserSvcFacade interface
type userService struct {
	BaseService
	userRepo portsrepo.UserRepository
	now      func() time.Time
}

// NewUserService creates a new user service
func NewUserService(repo portsrepo.UserRepository) portssvc.UserSvcFacade {
	return &userService{
		userRepo: repo,
		now:      time.Now,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) CreateUser(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", apperrors.ErrValidation)
	}
	if existing, err := s.userRepo.FindUserByEmail(ctx, email); err == nil && existing != nil {
		return nil, fmt.Errorf("user with email %s: %w", email, apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		Role:         role,
		PasswordHash: hash,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to save user", slog.String("email", email))
		return nil, fmt.Errorf("failed to save user: %w", err)
	}

	s.LogInfo(ctx, "User created", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user %s: %w", userID, err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// AuthenticateUser verifies credentials. The same sentinel is returned for
// unknown emails and wrong passwords so callers cannot distinguish them.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user for authentication: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// FindOrCreateFromGoogle resolves a verified Google identity to a local user,
// creating an admin-less client account on first sign-in.
func (s *userService) FindOrCreateFromGoogle(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error) {
	if !info.VerifiedEmail {
		return nil, fmt.Errorf("google account email not verified: %w", apperrors.ErrUnauthorized)
	}
	user, err := s.userRepo.FindUserByEmail(ctx, info.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	now := s.now()
	created := domain.User{
		UserID: uuid.NewString(),
		Name:   info.Name,
		Email:  info.Email,
		Role:   domain.RoleClient,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, created); err != nil {
		s.LogError(ctx, err, "Failed to create user from google identity", slog.String("email", info.Email))
		return nil, fmt.Errorf("failed to create user from google identity: %w", err)
	}
	s.LogInfo(ctx, "User created from google sign-in", slog.String("user_id", created.UserID))
	return &created, nil
}

func (s *userService) StoreRefreshToken(ctx context.Context, userID, rawToken string, expiresAt time.Time) error {
	hash := utils.HashRefreshToken(rawToken)
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, hash, &expiresAt); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *userService) ClearRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.UpdateRefreshToken(ctx, userID, "", nil); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
