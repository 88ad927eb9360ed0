package dailyreport

import (
	"context"
	"time"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
)

// Repository defines DailyReport persistence.
type Repository interface {
	Create(ctx context.Context, r *DailyReport) error
	GetByID(ctx context.Context, rid id.ID) (*DailyReport, error)

	// ExistsForDate reports whether the agency already submitted a report for
	// the calendar date.
	ExistsForDate(ctx context.Context, agencyID id.ID, date time.Time) (bool, error)

	// List returns reports of the scoped agencies, newest date first.
	List(ctx context.Context, scope security.TenantScope) ([]*DailyReport, error)

	// Transition moves the report from pending to the given status in a single
	// compare-and-set update and returns false when no pending row matched.
	Transition(ctx context.Context, rid id.ID, to Status, reviewerID id.ID, reason string, at time.Time) (bool, error)
}
