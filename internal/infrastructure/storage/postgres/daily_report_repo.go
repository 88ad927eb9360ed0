package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/domain/dailyreport"
)

var _ dailyreport.Repository = (*DailyReportRepo)(nil)

var dailyReportCols = []string{
	"id", "agency_id", "report_date", "income", "expenses", "cashbox_balance",
	"notes", "status", "rejection_reason", "created_by", "approved_by",
	"created_at", "approved_at",
}

// DailyReportRepo implements dailyreport.Repository.
type DailyReportRepo struct {
	txm *TxManager
}

// NewDailyReportRepo creates a new daily report repository.
func NewDailyReportRepo(txm *TxManager) *DailyReportRepo {
	return &DailyReportRepo{txm: txm}
}

func (r *DailyReportRepo) Create(ctx context.Context, dr *dailyreport.DailyReport) error {
	q := builder().Insert("daily_reports").
		Columns(dailyReportCols...).
		Values(dr.ID, dr.AgencyID, dr.ReportDate, dr.Income, dr.Expenses, dr.CashboxBalance,
			dr.Notes, dr.Status, dr.RejectionReason, dr.CreatedBy, dr.ApprovedBy,
			dr.CreatedAt, dr.ApprovedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert daily report: %w", err)
	}
	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert daily report: %w", err)
	}
	return nil
}

func (r *DailyReportRepo) GetByID(ctx context.Context, rid id.ID) (*dailyreport.DailyReport, error) {
	q := builder().Select(dailyReportCols...).From("daily_reports").Where("id = ?", rid)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select daily report: %w", err)
	}

	var dr dailyreport.DailyReport
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &dr, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("daily report", rid)
		}
		return nil, fmt.Errorf("select daily report: %w", err)
	}
	return &dr, nil
}

func (r *DailyReportRepo) ExistsForDate(ctx context.Context, agencyID id.ID, date time.Time) (bool, error) {
	var exists bool
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM daily_reports WHERE agency_id = $1 AND report_date = $2)",
			agencyID, date).
		Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("daily report exists: %w", err)
	}
	return exists, nil
}

func (r *DailyReportRepo) List(ctx context.Context, scope security.TenantScope) ([]*dailyreport.DailyReport, error) {
	q := withScope(
		builder().Select(dailyReportCols...).From("daily_reports"),
		"agency_id", scope,
	).OrderBy("report_date DESC", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list daily reports: %w", err)
	}

	var list []*dailyreport.DailyReport
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list daily reports: %w", err)
	}
	return list, nil
}

// Transition is a compare-and-set on the pending status. Two concurrent
// reviewers cannot both win: the second update matches zero rows.
func (r *DailyReportRepo) Transition(ctx context.Context, rid id.ID, to dailyreport.Status, reviewerID id.ID, reason string, at time.Time) (bool, error) {
	const q = `
		UPDATE daily_reports
		SET status = $1, approved_by = $2, rejection_reason = $3, approved_at = $4
		WHERE id = $5 AND status = 'pending'`

	tag, err := r.txm.GetQuerier(ctx).Exec(ctx, q, to, reviewerID, reason, at, rid)
	if err != nil {
		return false, fmt.Errorf("transition daily report: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
