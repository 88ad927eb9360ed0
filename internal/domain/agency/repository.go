package agency

import (
	"context"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
)

// Repository defines Agency persistence.
// Exists makes it usable as the security.AgencyDirectory for scope resolution.
type Repository interface {
	Create(ctx context.Context, a *Agency) error
	GetByID(ctx context.Context, agencyID id.ID) (*Agency, error)
	Exists(ctx context.Context, agencyID id.ID) (bool, error)

	// List returns agencies inside scope, ordered by name then id.
	List(ctx context.Context, scope security.TenantScope) ([]*Agency, error)
}
