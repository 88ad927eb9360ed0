package postgres

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	"sanhaja/internal/core/id"
	"sanhaja/internal/core/security"
	"sanhaja/internal/core/types"
	"sanhaja/internal/domain/payment"
)

var _ payment.Repository = (*PaymentRepo)(nil)

var paymentCols = []string{
	"id", "payment_no", "invoice_id", "method",
	"amount", "payment_date", "agency_id", "created_at",
}

// PaymentRepo implements payment.Repository.
type PaymentRepo struct {
	txm *TxManager
}

// NewPaymentRepo creates a new payment repository.
func NewPaymentRepo(txm *TxManager) *PaymentRepo {
	return &PaymentRepo{txm: txm}
}

func (r *PaymentRepo) Create(ctx context.Context, p *payment.Payment) error {
	q := builder().Insert("payments").
		Columns(paymentCols...).
		Values(p.ID, p.PaymentNo, p.InvoiceID, p.Method,
			p.Amount, p.PaymentDate, p.AgencyID, p.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert payment: %w", err)
	}
	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

func (r *PaymentRepo) List(ctx context.Context, scope security.TenantScope) ([]*payment.Payment, error) {
	q := withScope(
		builder().Select(paymentCols...).From("payments"),
		"agency_id", scope,
	).OrderBy("created_at DESC", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list payments: %w", err)
	}

	var list []*payment.Payment
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return list, nil
}

func (r *PaymentRepo) TotalForInvoice(ctx context.Context, invoiceID id.ID) (types.Money, error) {
	var total types.Money
	err := r.txm.GetQuerier(ctx).
		QueryRow(ctx, "SELECT COALESCE(SUM(amount), 0) FROM payments WHERE invoice_id = $1", invoiceID).
		Scan(&total)
	if err != nil {
		return types.Zero(), fmt.Errorf("sum payments: %w", err)
	}
	return total, nil
}
