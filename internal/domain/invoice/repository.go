package invoice

import (
	"context"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
)

// Repository defines Invoice persistence.
type Repository interface {
	Create(ctx context.Context, inv *Invoice) error
	GetByID(ctx context.Context, invoiceID id.ID) (*Invoice, error)

	// SetStatus updates the settlement status only.
	SetStatus(ctx context.Context, invoiceID id.ID, status Status) error

	// List returns invoices of the scoped agencies, newest first.
	List(ctx context.Context, scope security.TenantScope) ([]*Invoice, error)

	// ClientBelongsTo reports whether clientID is registered with agencyID.
	ClientBelongsTo(ctx context.Context, clientID, agencyID id.ID) (bool, error)
}
