package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
	portssvc "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/services"
)

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepository
	now        func() time.Time
}

// NewClientService creates a new client service
func NewClientService(repo portsrepo.ClientRepository) portssvc.ClientSvcFacade {
	return &clientService{
		clientRepo: repo,
		now:        time.Now,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	if client.Name == "" || client.Email == "" {
		return nil, fmt.Errorf("client name and email are required: %w", apperrors.ErrValidation)
	}
	if client.ClientID == "" {
		client.ClientID = uuid.NewString()
	}
	now := s.now()
	client.CreatedAt = now
	client.LastUpdatedAt = now

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to save client", slog.String("client_id", client.ClientID))
		return nil, fmt.Errorf("failed to save client: %w", err)
	}

	s.LogInfo(ctx, "Client created", slog.String("client_id", client.ClientID))
	return &client, nil
}

func (s *clientService) GetClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, userID, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client %s: %w", clientID, err)
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (s *clientService) UpdateClient(ctx context.Context, client domain.Client) error {
	client.LastUpdatedAt = s.now()
	if err := s.clientRepo.UpdateClient(ctx, client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", client.ClientID))
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

func (s *clientService) DeleteClient(ctx context.Context, userID, clientID string) error {
	if err := s.clientRepo.DeleteClient(ctx, userID, clientID); err != nil {
		return fmt.Errorf("failed to delete client %s: %w", clientID, err)
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}
