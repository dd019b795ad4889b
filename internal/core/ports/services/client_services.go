package services

import (
	"context"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// ClientSvcFacade manages client records.
type ClientSvcFacade interface {
	CreateClient(ctx context.Context, client domain.Client) (*domain.Client, error)
	GetClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context, userID string) ([]domain.Client, error)
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, userID, clientID string) error
}
