package booking

import (
	"context"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
)

// Repository defines Booking persistence.
type Repository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, bookingID id.ID) (*Booking, error)

	// List returns bookings of the scoped agencies, newest first.
	List(ctx context.Context, scope security.TenantScope) ([]*Booking, error)

	// ReferencesAgency reports whether both the client and the supplier of a
	// prospective booking belong to agencyID. Cross-tenant references are
	// invalid by construction.
	ReferencesAgency(ctx context.Context, clientID, supplierID, agencyID id.ID) (bool, error)
}
