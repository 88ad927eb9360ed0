package payment

import (
	"context"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/core/types"
)

// Repository defines Payment persistence.
type Repository interface {
	Create(ctx context.Context, p *Payment) error

	// List returns payments of the scoped agencies, newest first.
	List(ctx context.Context, scope security.TenantScope) ([]*Payment, error)

	// TotalForInvoice sums every payment recorded against the invoice.
	TotalForInvoice(ctx context.Context, invoiceID id.ID) (types.Money, error)
}
