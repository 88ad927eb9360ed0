package reports

import (
	"context"
	"time"

	"sanhaja/internal/core/security"
)

// Repository runs the aggregation queries. Every method takes a resolved
// tenant scope; repositories never widen or re-derive it.
type Repository interface {
	// SalesBuckets aggregates booking sell prices per period bucket inside
	// the window, keyed by booking start date. layout is the bucket key
	// layout (daily or monthly). When perAgency is true the rows split by
	// agency, otherwise agencies merge into shared buckets. Empty buckets
	// produce no rows.
	SalesBuckets(ctx context.Context, scope security.TenantScope, layout string, w Window, perAgency bool) ([]SalesRow, error)

	// AgingInvoices returns every pending invoice in scope with its client
	// name. Days is left for the caller to derive.
	AgingInvoices(ctx context.Context, scope security.TenantScope) ([]AgingRow, error)

	// Summary condenses the window into sales, booking and invoice counts.
	// When perAgency is true one row per active agency comes back, otherwise
	// a single merged row.
	Summary(ctx context.Context, scope security.TenantScope, w Window, perAgency bool) ([]SummaryRow, error)
}

// daysOverdue is the whole number of days the due date lies behind asOf,
// floored at zero for invoices not yet due.
func daysOverdue(due, asOf time.Time) int {
	d := int(asOf.Sub(due).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
