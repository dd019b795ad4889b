package repositories

import (
	"context"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// ClientRepository is the storage interface for client records.
type ClientRepository interface {
	SaveClient(ctx context.Context, client domain.Client) error
	FindClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, userID string) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, userID, clientID string) error
}
