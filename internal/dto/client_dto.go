package dto

import (
	"time"

	"github.com/mcodevbytes/finance_dashboard_app/internal/core/domain"
)

// CreateClientRequest represents the payload for creating a client
type CreateClientRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Company string `json:"company"`
}

// UpdateClientRequest represents the payload for updating a client.
// Nil fields are left unchanged.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Company *string `json:"company"`
}

// ClientResponse represents a client in API responses
type ClientResponse struct {
	ClientID  string    `json:"clientID"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	Company   string    `json:"company,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListClientsResponse wraps a list of clients
type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToDomain converts the create request to a domain client
func (r CreateClientRequest) ToDomain() domain.Client {
	return domain.Client{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Address: r.Address,
		Company: r.Company,
	}
}

// Apply overlays the non-nil request fields onto an existing client
func (r UpdateClientRequest) Apply(client *domain.Client) {
	if r.Name != nil {
		client.Name = *r.Name
	}
	if r.Email != nil {
		client.Email = *r.Email
	}
	if r.Phone != nil {
		client.Phone = *r.Phone
	}
	if r.Address != nil {
		client.Address = *r.Address
	}
	if r.Company != nil {
		client.Company = *r.Company
	}
}

// ToClientResponse converts a domain client to its response representation
func ToClientResponse(client *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  client.ClientID,
		Name:      client.Name,
		Email:     client.Email,
		Phone:     client.Phone,
		Address:   client.Address,
		Company:   client.Company,
		CreatedAt: client.CreatedAt,
	}
}

// ToListClientsResponse converts a slice of domain clients
func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	resp := ListClientsResponse{Clients: make([]ClientResponse, len(clients))}
	for i := range clients {
		resp.Clients[i] = ToClientResponse(&clients[i])
	}
	return resp
}
