package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/domain/invoice"
)

var _ invoice.Repository = (*InvoiceRepo)(nil)

var invoiceCols = []string{
	"id", "invoice_no", "client_id", "agency_id",
	"amount_ht", "tva_rate", "status", "due_date", "created_at",
}

// InvoiceRepo implements invoice.Repository. amount_ttc is never stored;
// reports derive it from amount_ht and tva_rate.
type InvoiceRepo struct {
	txm *TxManager
}

// NewInvoiceRepo creates a new invoice repository.
func NewInvoiceRepo(txm *TxManager) *InvoiceRepo {
	return &InvoiceRepo{txm: txm}
}

func (r *InvoiceRepo) Create(ctx context.Context, inv *invoice.Invoice) error {
	q := builder().Insert("invoices").
		Columns(invoiceCols...).
		Values(inv.ID, inv.InvoiceNo, inv.ClientID, inv.AgencyID,
			inv.AmountHT, inv.TVARate, inv.Status, inv.DueDate, inv.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert invoice: %w", err)
	}
	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepo) GetByID(ctx context.Context, invoiceID id.ID) (*invoice.Invoice, error) {
	q := builder().Select(invoiceCols...).From("invoices").Where("id = ?", invoiceID)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select invoice: %w", err)
	}

	var inv invoice.Invoice
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &inv, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("invoice", invoiceID)
		}
		return nil, fmt.Errorf("select invoice: %w", err)
	}
	return &inv, nil
}

func (r *InvoiceRepo) SetStatus(ctx context.Context, invoiceID id.ID, status invoice.Status) error {
	tag, err := r.txm.GetQuerier(ctx).
		Exec(ctx, "UPDATE invoices SET status = $1 WHERE id = $2", status, invoiceID)
	if err != nil {
		return fmt.Errorf("set invoice status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.NewNotFound("invoice", invoiceID)
	}
	return nil
}

func (r *InvoiceRepo) List(ctx context.Context, scope security.TenantScope) ([]*invoice.Invoice, error) {
	q := withScope(
		builder().Select(invoiceCols...).From("invoices"),
		"agency_id", scope,
	).OrderBy("created_at DESC", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list invoices: %w", err)
	}

	var list []*invoice.Invoice
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	return list, nil
}

func (r *InvoiceRepo) ClientBelongsTo(ctx context.Context, clientID, agencyID id.ID) (bool, error) {
	var ok bool
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1 AND agency_id = $2)", clientID, agencyID).
		Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("invoice client check: %w", err)
	}
	return ok, nil
}
