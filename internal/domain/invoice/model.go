// Package invoice provides the Invoice document.
//
// amount_ttc is never stored: it is always recomputed from amount_ht and
// tva_rate so the two can never disagree.
package invoice

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/types"
)

// Status is the invoice lifecycle state.
type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusOverdue Status = "overdue"
	StatusPartial Status = "partial"
)

// Valid reports whether st is a known status.
func (st Status) Valid() bool {
	switch st {
	case StatusPending, StatusPaid, StatusOverdue, StatusPartial:
		return true
	}
	return false
}

// DefaultTVARate is the VAT rate applied when none is supplied.
var DefaultTVARate = types.MustMoney("20")

var one = decimal.NewFromInt(1)
var hundred = decimal.NewFromInt(100)

// Invoice represents a bill issued to a client.
type Invoice struct {
	ID        id.ID       `db:"id" json:"id"`
	InvoiceNo string      `db:"invoice_no" json:"invoiceNo"`
	ClientID  id.ID       `db:"client_id" json:"clientId"`
	AgencyID  id.ID       `db:"agency_id" json:"agencyId"`
	AmountHT  types.Money `db:"amount_ht" json:"amountHt"`
	TVARate   types.Money `db:"tva_rate" json:"tvaRate"`
	Status    Status      `db:"status" json:"status"`
	DueDate   time.Time   `db:"due_date" json:"dueDate"`
	CreatedAt time.Time   `db:"created_at" json:"createdAt"`
}

// AmountTTC derives the tax-inclusive amount: amount_ht * (1 + tva_rate/100).
// Pure and deterministic; re-aggregation always yields the same value.
func (i *Invoice) AmountTTC() types.Money {
	return i.AmountHT.Mul(one.Add(i.TVARate.Div(hundred)))
}

// DaysOverdue returns whole days past the due date as of asOf, never negative.
func (i *Invoice) DaysOverdue(asOf time.Time) int {
	d := int(asOf.Sub(i.DueDate).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}

// Validate checks required fields.
func (i *Invoice) Validate(ctx context.Context) error {
	if id.IsNil(i.ClientID) {
		return apperror.NewValidation("invoice requires a client").WithDetail("field", "clientId")
	}
	if i.AmountHT.IsNegative() {
		return apperror.NewValidation("amount_ht must not be negative").WithDetail("field", "amountHt")
	}
	if i.TVARate.IsNegative() {
		return apperror.NewValidation("tva_rate must not be negative").WithDetail("field", "tvaRate")
	}
	if !i.Status.Valid() {
		return apperror.NewValidation("unknown invoice status").WithDetail("field", "status")
	}
	if i.DueDate.IsZero() {
		return apperror.NewValidation("due date is required").WithDetail("field", "dueDate")
	}
	if id.IsNil(i.AgencyID) {
		return apperror.NewValidation("invoice must belong to an agency").WithDetail("field", "agencyId")
	}
	return nil
}
