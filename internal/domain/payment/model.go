// Package payment provides the Payment document (money received against an
// invoice).
package payment

import (
	"context"
	"time"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/types"
)

// Method is the payment channel.
type Method string

const (
	MethodCash  Method = "cash"
	MethodBank  Method = "bank"
	MethodCard  Method = "card"
	MethodCheck Method = "check"
)

// Valid reports whether m is a known method.
func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodBank, MethodCard, MethodCheck:
		return true
	}
	return false
}

// Payment represents one received amount against an invoice of the same
// agency.
type Payment struct {
	ID          id.ID       `db:"id" json:"id"`
	PaymentNo   string      `db:"payment_no" json:"paymentNo"`
	InvoiceID   id.ID       `db:"invoice_id" json:"invoiceId"`
	Method      Method      `db:"method" json:"method"`
	Amount      types.Money `db:"amount" json:"amount"`
	PaymentDate time.Time   `db:"payment_date" json:"paymentDate"`
	AgencyID    id.ID       `db:"agency_id" json:"agencyId"`
	CreatedAt   time.Time   `db:"created_at" json:"createdAt"`
}

// Validate checks required fields.
func (p *Payment) Validate(ctx context.Context) error {
	if id.IsNil(p.InvoiceID) {
		return apperror.NewValidation("payment requires an invoice").WithDetail("field", "invoiceId")
	}
	if !p.Method.Valid() {
		return apperror.NewValidation("unknown payment method").WithDetail("field", "method").WithDetail("value", string(p.Method))
	}
	if !p.Amount.IsPositive() {
		return apperror.NewValidation("payment amount must be positive").WithDetail("field", "amount")
	}
	if p.PaymentDate.IsZero() {
		return apperror.NewValidation("payment date is required").WithDetail("field", "paymentDate")
	}
	if id.IsNil(p.AgencyID) {
		return apperror.NewValidation("payment must belong to an agency").WithDetail("field", "agencyId")
	}
	return nil
}
