package client

import (
	"context"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
)

// Repository defines Client persistence.
type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByID(ctx context.Context, clientID id.ID) (*Client, error)
	Update(ctx context.Context, c *Client) error
	Delete(ctx context.Context, clientID id.ID) error

	// List returns clients of the scoped agencies, ordered by name then id.
	List(ctx context.Context, scope security.TenantScope) ([]*Client, error)
}
