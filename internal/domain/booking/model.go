// Package booking provides the Booking document (a sold travel service).
package booking

import (
	"context"
	"strings"
	"time"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/core/types"
)

// Type is the travel service category.
type Type string

const (
	TypeUmrah  Type = "umrah"
	TypeFlight Type = "flight"
	TypeHotel  Type = "hotel"
	TypeVisa   Type = "visa"
)

// Valid reports whether t is a known booking type.
func (t Type) Valid() bool {
	switch t {
	case TypeUmrah, TypeFlight, TypeHotel, TypeVisa:
		return true
	}
	return false
}

// Booking represents one sold service. Cost and sell price are stored;
// profit is always derived, never persisted.
type Booking struct {
	ID         id.ID       `db:"id" json:"id"`
	Ref        string      `db:"ref" json:"ref"`
	ClientID   id.ID       `db:"client_id" json:"clientId"`
	SupplierID id.ID       `db:"supplier_id" json:"supplierId"`
	Type       Type        `db:"type" json:"type"`
	Cost       types.Money `db:"cost" json:"cost"`
	SellPrice  types.Money `db:"sell_price" json:"sellPrice"`
	StartDate  time.Time   `db:"start_date" json:"startDate"`
	EndDate    time.Time   `db:"end_date" json:"endDate"`
	AgencyID   id.ID       `db:"agency_id" json:"agencyId"`
	CreatedAt  time.Time   `db:"created_at" json:"createdAt"`
}

// Profit is the derived margin: sell price minus cost.
func (b *Booking) Profit() types.Money {
	return b.SellPrice.Sub(b.Cost)
}

// Validate checks required fields and the date window.
func (b *Booking) Validate(ctx context.Context) error {
	if strings.TrimSpace(b.Ref) == "" {
		return apperror.NewValidation("booking ref is required").WithDetail("field", "ref")
	}
	if !b.Type.Valid() {
		return apperror.NewValidation("unknown booking type").WithDetail("field", "type").WithDetail("value", string(b.Type))
	}
	if id.IsNil(b.ClientID) {
		return apperror.NewValidation("booking requires a client").WithDetail("field", "clientId")
	}
	if id.IsNil(b.SupplierID) {
		return apperror.NewValidation("booking requires a supplier").WithDetail("field", "supplierId")
	}
	if b.Cost.IsNegative() || b.SellPrice.IsNegative() {
		return apperror.NewValidation("amounts must not be negative")
	}
	if b.StartDate.IsZero() || b.EndDate.IsZero() || b.EndDate.Before(b.StartDate) {
		return apperror.NewInvalidRange("booking dates are missing or inverted")
	}
	if id.IsNil(b.AgencyID) {
		return apperror.NewValidation("booking must belong to an agency").WithDetail("field", "agencyId")
	}
	return nil
}
