package dto

import (
	"time"

	"sanhaja/internal/domain/client"
	"sanhaja/internal/domain/supplier"
)

// --- Clients ---

// CreateClientRequest for POST /clients.
type CreateClientRequest struct {
	Name        string  `json:"name" binding:"required"`
	Phone       string  `json:"phone"`
	CinPassport string  `json:"cinPassport"`
	AgencyID    *string `json:"agencyId"`
}

// UpdateClientRequest for PUT /clients/:id.
type UpdateClientRequest struct {
	Name        string `json:"name" binding:"required"`
	Phone       string `json:"phone"`
	CinPassport string `json:"cinPassport"`
}

// ClientResponse contains client fields.
type ClientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	CinPassport string    `json:"cinPassport,omitempty"`
	AgencyID    string    `json:"agencyId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// FromClient creates ClientResponse from client.Client.
func FromClient(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Phone:       c.Phone,
		CinPassport: c.CinPassport,
		AgencyID:    c.AgencyID.String(),
		CreatedAt:   c.CreatedAt,
	}
}

// FromClients maps a client list.
func FromClients(list []*client.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromClient(c))
	}
	return out
}

// --- Suppliers ---

// CreateSupplierRequest for POST /suppliers.
type CreateSupplierRequest struct {
	Name     string  `json:"name" binding:"required"`
	Type     string  `json:"type" binding:"required"`
	Contact  string  `json:"contact"`
	AgencyID *string `json:"agencyId"`
}

// UpdateSupplierRequest for PUT /suppliers/:id.
type UpdateSupplierRequest struct {
	Name    string `json:"name" binding:"required"`
	Type    string `json:"type" binding:"required"`
	Contact string `json:"contact"`
}

// SupplierResponse contains supplier fields.
type SupplierResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Contact   string    `json:"contact,omitempty"`
	AgencyID  string    `json:"agencyId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromSupplier creates SupplierResponse from supplier.Supplier.
func FromSupplier(s *supplier.Supplier) SupplierResponse {
	return SupplierResponse{
		ID:        s.ID.String(),
		Name:      s.Name,
		Type:      s.Type,
		Contact:   s.Contact,
		AgencyID:  s.AgencyID.String(),
		CreatedAt: s.CreatedAt,
	}
}

// FromSuppliers maps a supplier list.
func FromSuppliers(list []*supplier.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromSupplier(s))
	}
	return out
}
