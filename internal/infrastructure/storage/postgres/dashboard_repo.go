package postgres

import (
	"context"
	"fmt"
	"time"

	"sanhaja/internal/core/security"
	"sanhaja/internal/core/types"
	"sanhaja/internal/domain/dashboard"
)

var _ dashboard.Repository = (*DashboardRepo)(nil)

// DashboardRepo implements dashboard.Repository.
type DashboardRepo struct {
	txm *TxManager
}

// NewDashboardRepo creates a new dashboard repository.
func NewDashboardRepo(txm *TxManager) *DashboardRepo {
	return &DashboardRepo{txm: txm}
}

func (r *DashboardRepo) TodayIncome(ctx context.Context, scope security.TenantScope, from, to time.Time) (types.Money, error) {
	args := []any{from, to}
	scopeSQL, args := scopePredicate("", scope, args)

	query := fmt.Sprintf(
		"SELECT COALESCE(SUM(%s), 0) FROM invoices WHERE created_at >= $1 AND created_at < $2%s",
		ttcExpr, scopeSQL)

	var total types.Money
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return types.Zero(), fmt.Errorf("today income: %w", err)
	}
	return total, nil
}

func (r *DashboardRepo) UnpaidInvoices(ctx context.Context, scope security.TenantScope) (int64, error) {
	var args []any
	scopeSQL, args := scopePredicate("", scope, args)

	query := "SELECT COUNT(*) FROM invoices WHERE status = 'pending'" + scopeSQL

	var count int64
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("unpaid invoices: %w", err)
	}
	return count, nil
}

func (r *DashboardRepo) BookingsSince(ctx context.Context, scope security.TenantScope, since time.Time) (int64, error) {
	args := []any{since}
	scopeSQL, args := scopePredicate("", scope, args)

	query := "SELECT COUNT(*) FROM bookings WHERE created_at >= $1" + scopeSQL

	var count int64
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("week bookings: %w", err)
	}
	return count, nil
}

// CashboxBalance sums the most recent daily report balance of every agency
// in scope. Agencies without reports contribute nothing.
func (r *DashboardRepo) CashboxBalance(ctx context.Context, scope security.TenantScope) (types.Money, error) {
	var args []any
	scopeSQL, args := scopePredicate("", scope, args)

	query := fmt.Sprintf(`
		SELECT COALESCE(SUM(balance), 0) FROM (
			SELECT DISTINCT ON (agency_id) cashbox_balance AS balance
			FROM daily_reports
			WHERE TRUE%s
			ORDER BY agency_id, report_date DESC
		) latest`, scopeSQL)

	var total types.Money
	if err := r.txm.GetQuerier(ctx).QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return types.Zero(), fmt.Errorf("cashbox balance: %w", err)
	}
	return total, nil
}
