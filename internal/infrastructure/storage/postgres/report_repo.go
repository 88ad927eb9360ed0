package postgres

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/core/types"
	"sanhaja/internal/domain/reports"
)

var _ reports.Repository = (*ReportRepo)(nil)

// ReportRepo implements reports.Repository with raw aggregation SQL.
// Sales figures come from the bookings ledger (sell_price by start_date);
// amount_ttc is always derived in the query, never read from a column.
type ReportRepo struct {
	txm *TxManager
}

// NewReportRepo creates a new report repository.
func NewReportRepo(txm *TxManager) *ReportRepo {
	return &ReportRepo{txm: txm}
}

// ttcExpr derives the tax-inclusive amount of an invoice row.
const ttcExpr = "amount_ht * (1 + tva_rate / 100)"

// zeroAgency stands in for the agency column on merged (ungrouped) rows.
const zeroAgency = "'00000000-0000-0000-0000-000000000000'::uuid"

// bucketPattern maps a Go time layout to the to_char pattern of the bucket.
func bucketPattern(layout string) string {
	if layout == "2006-01" {
		return "YYYY-MM"
	}
	return "YYYY-MM-DD"
}

// scopePredicate renders an agency filter for raw SQL, appending to args.
// The unrestricted scope renders no predicate.
func scopePredicate(alias string, scope security.TenantScope, args []any) (string, []any) {
	if scope.All {
		return "", args
	}
	args = append(args, scope.IDs)
	return fmt.Sprintf(" AND %sagency_id = ANY($%d)", alias, len(args)), args
}

// salesBucketsSQL aggregates bookings into period buckets: sell_price sums
// into sales and rows count into bookings, keyed by start_date. Buckets
// without bookings are simply absent.
func salesBucketsSQL(scope security.TenantScope, w reports.Window, layout string, perAgency bool) (string, []any) {
	args := []any{bucketPattern(layout), w.Start, w.End.AddDate(0, 0, 1)}
	scopeSQL, args := scopePredicate("", scope, args)

	agencyCol := zeroAgency
	groupBy := "1"
	if perAgency {
		agencyCol = "agency_id"
		groupBy = "1, 2"
	}

	query := fmt.Sprintf(`
		SELECT to_char(start_date, $1) AS period,
		       %s AS agency_id,
		       COALESCE(SUM(sell_price), 0) AS sales,
		       COUNT(*) AS bookings
		FROM bookings
		WHERE start_date >= $2 AND start_date < $3%s
		GROUP BY %s
		ORDER BY period, agency_id`,
		agencyCol, scopeSQL, groupBy)
	return query, args
}

func (r *ReportRepo) SalesBuckets(ctx context.Context, scope security.TenantScope, layout string, w reports.Window, perAgency bool) ([]reports.SalesRow, error) {
	query, args := salesBucketsSQL(scope, w, layout, perAgency)

	var rows []reports.SalesRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("sales buckets: %w", err)
	}
	return rows, nil
}

func (r *ReportRepo) AgingInvoices(ctx context.Context, scope security.TenantScope) ([]reports.AgingRow, error) {
	var args []any
	scopeSQL, args := scopePredicate("i.", scope, args)

	query := fmt.Sprintf(`
		SELECT i.agency_id,
		       i.id AS invoice_id,
		       i.invoice_no,
		       c.name AS client_name,
		       i.%s AS amount,
		       i.due_date
		FROM invoices i
		JOIN clients c ON c.id = i.client_id
		WHERE i.status = 'pending'%s
		ORDER BY i.due_date, i.invoice_no`,
		"amount_ht * (1 + i.tva_rate / 100)", scopeSQL)

	var rows []reports.AgingRow
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("aging invoices: %w", err)
	}
	return rows, nil
}

// summaryAgg is the scan target of the two summary aggregates.
type summaryAgg struct {
	AgencyID id.ID       `db:"agency_id"`
	Sales    types.Money `db:"sales"`
	Invoices int64       `db:"invoices"`
	Bookings int64       `db:"bookings"`
}

// summarySQL builds the two summary aggregates: sales and booking counts
// from the bookings ledger (windowed by start_date, matching the sales
// buckets), invoice counts from invoices created in range. Both share args.
func summarySQL(scope security.TenantScope, w reports.Window, perAgency bool) (bookingsQuery, invoicesQuery string, args []any) {
	agencyCol := zeroAgency
	groupBy := ""
	if perAgency {
		agencyCol = "agency_id"
		groupBy = " GROUP BY agency_id"
	}

	args = []any{w.Start, w.End.AddDate(0, 0, 1)}
	scopeSQL, args := scopePredicate("", scope, args)

	bookingsQuery = fmt.Sprintf(`
		SELECT %s AS agency_id, COALESCE(SUM(sell_price), 0) AS sales, 0::bigint AS invoices, COUNT(*) AS bookings
		FROM bookings
		WHERE start_date >= $1 AND start_date < $2%s%s`,
		agencyCol, scopeSQL, groupBy)

	invoicesQuery = fmt.Sprintf(`
		SELECT %s AS agency_id, 0::numeric AS sales, COUNT(*) AS invoices, 0::bigint AS bookings
		FROM invoices
		WHERE created_at >= $1 AND created_at < $2%s%s`,
		agencyCol, scopeSQL, groupBy)

	return bookingsQuery, invoicesQuery, args
}

func (r *ReportRepo) Summary(ctx context.Context, scope security.TenantScope, w reports.Window, perAgency bool) ([]reports.SummaryRow, error) {
	bkQuery, invQuery, args := summarySQL(scope, w, perAgency)

	querier := r.txm.GetQuerier(ctx)

	var bkAgg, invAgg []summaryAgg
	if err := pgxscan.Select(ctx, querier, &bkAgg, bkQuery, args...); err != nil {
		return nil, fmt.Errorf("summary bookings: %w", err)
	}
	if err := pgxscan.Select(ctx, querier, &invAgg, invQuery, args...); err != nil {
		return nil, fmt.Errorf("summary invoices: %w", err)
	}

	merged := make(map[id.ID]*reports.SummaryRow)
	order := make([]id.ID, 0, len(bkAgg)+len(invAgg))
	for _, agg := range append(bkAgg, invAgg...) {
		row, ok := merged[agg.AgencyID]
		if !ok {
			row = &reports.SummaryRow{AgencyID: agg.AgencyID}
			merged[agg.AgencyID] = row
			order = append(order, agg.AgencyID)
		}
		row.Sales = row.Sales.Add(agg.Sales)
		row.Invoices += agg.Invoices
		row.Bookings += agg.Bookings
	}

	rows := make([]reports.SummaryRow, 0, len(order))
	for _, aid := range order {
		rows = append(rows, *merged[aid])
	}
	return rows, nil
}
