// Package dashboard computes the headline stats shown on the landing screen.
package dashboard

import (
	"context"
	"time"

	appctx "sanhaja/internal/core/context"
	"sanhaja/internal/core/security"
	"sanhaja/internal/core/types"
)

// Stats is the headline snapshot for the caller's scope.
type Stats struct {
	TodayIncome    types.Money `json:"today_income"`
	UnpaidInvoices int64       `json:"unpaid_invoices"`
	WeekBookings   int64       `json:"week_bookings"`
	CashboxBalance types.Money `json:"cashbox_balance"`
}

// Repository runs the four stat queries against a resolved scope.
type Repository interface {
	// TodayIncome sums amount_ttc of invoices created inside [from, to).
	TodayIncome(ctx context.Context, scope security.TenantScope, from, to time.Time) (types.Money, error)

	// UnpaidInvoices counts invoices still in pending status.
	UnpaidInvoices(ctx context.Context, scope security.TenantScope) (int64, error)

	// BookingsSince counts bookings created at or after since.
	BookingsSince(ctx context.Context, scope security.TenantScope, since time.Time) (int64, error)

	// CashboxBalance sums the balance of each agency's most recent daily
	// report. Agencies with no reports contribute zero.
	CashboxBalance(ctx context.Context, scope security.TenantScope) (types.Money, error)
}

// Service assembles dashboard stats.
type Service struct {
	repo     Repository
	resolver *security.Resolver
	now      func() time.Time
}

// NewService creates a new dashboard service.
func NewService(repo Repository, resolver *security.Resolver) *Service {
	return &Service{repo: repo, resolver: resolver, now: time.Now}
}

// Stats computes the four headline numbers for the caller's scope. "Today"
// and the booking week both start at the server's local midnight.
func (s *Service) Stats(ctx context.Context, caller *appctx.UserContext, f security.Filter) (*Stats, error) {
	if err := security.Require(security.OpViewDashboard, caller.Role); err != nil {
		return nil, err
	}
	decision, err := s.resolver.Resolve(ctx, caller, f)
	if err != nil {
		return nil, err
	}
	scope := decision.Tenants

	now := s.now()
	today := localMidnight(now)
	tomorrow := today.AddDate(0, 0, 1)
	weekStart := today.AddDate(0, 0, -daysSinceMonday(today))

	st := &Stats{}
	if st.TodayIncome, err = s.repo.TodayIncome(ctx, scope, today, tomorrow); err != nil {
		return nil, err
	}
	if st.UnpaidInvoices, err = s.repo.UnpaidInvoices(ctx, scope); err != nil {
		return nil, err
	}
	if st.WeekBookings, err = s.repo.BookingsSince(ctx, scope, weekStart); err != nil {
		return nil, err
	}
	if st.CashboxBalance, err = s.repo.CashboxBalance(ctx, scope); err != nil {
		return nil, err
	}
	return st, nil
}

// daysSinceMonday maps Monday to 0 and Sunday to 6.
func daysSinceMonday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

func localMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
