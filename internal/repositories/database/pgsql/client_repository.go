package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mcodevbytes/finance_dashboard_app/internal/apperrors"
	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
	portsrepo "github.com/mcodevbytes/finance_dashboard_app/internal/core/ports/repositories"
)

type PgxClientRepository struct {
	db *pgxpool.Pool
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{db: db}
}

// Ensure PgxClientRepository implements portsrepo.ClientRepository
var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

const clientColumns = `client_id, user_id, name, email, phone, address, company, created_at, created_by, last_updated_at, last_updated_by`

func scanClient(row pgx.Row) (*domain.Client, error) {
	var client domain.Client
	err := row.Scan(
		&client.ClientID,
		&client.UserID,
		&client.Name,
		&client.Email,
		&client.Phone,
		&client.Address,
		&client.Company,
		&client.CreatedAt,
		&client.CreatedBy,
		&client.LastUpdatedAt,
		&client.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	query := `
        INSERT INTO clients (client_id, user_id, name, email, phone, address, company, created_at, created_by, last_updated_at, last_updated_by)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
    `
	_, err := r.db.Exec(ctx, query,
		client.ClientID,
		client.UserID,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
		client.Company,
		client.CreatedAt,
		client.CreatedBy,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("client with email %s already exists: %w", client.Email, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save client: %w", err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, userID, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1 AND user_id = $2;`
	client, err := scanClient(r.db.QueryRow(ctx, query, clientID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("client %s not found: %w", clientID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find client by ID: %w", err)
	}
	return client, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context, userID string) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE user_id = $1 ORDER BY name;`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	defer rows.Close()

	clients := make([]domain.Client, 0)
	for rows.Next() {
		client, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, *client)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clients, nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
        UPDATE clients SET
            name = $3,
            email = $4,
            phone = $5,
            address = $6,
            company = $7,
            last_updated_at = $8,
            last_updated_by = $9
        WHERE client_id = $1 AND user_id = $2;
    `
	tag, err := r.db.Exec(ctx, query,
		client.ClientID,
		client.UserID,
		client.Name,
		client.Email,
		client.Phone,
		client.Address,
		client.Company,
		client.LastUpdatedAt,
		client.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client %s not found for update: %w", client.ClientID, apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, userID, clientID string) error {
	query := `DELETE FROM clients WHERE client_id = $1 AND user_id = $2;`
	tag, err := r.db.Exec(ctx, query, clientID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("client %s not found for delete: %w", clientID, apperrors.ErrNotFound)
	}
	return nil
}
