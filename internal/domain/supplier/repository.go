package supplier

import (
	"context"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
)

// Repository defines Supplier persistence.
type Repository interface {
	Create(ctx context.Context, s *Supplier) error
	GetByID(ctx context.Context, supplierID id.ID) (*Supplier, error)
	Update(ctx context.Context, s *Supplier) error
	Delete(ctx context.Context, supplierID id.ID) error

	// List returns suppliers of the scoped agencies, ordered by name then id.
	List(ctx context.Context, scope security.TenantScope) ([]*Supplier, error)
}
