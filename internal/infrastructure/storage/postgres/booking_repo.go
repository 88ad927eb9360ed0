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
	"sanhaja/internal/domain/booking"
)

var _ booking.Repository = (*BookingRepo)(nil)

var bookingCols = []string{
	"id", "ref", "client_id", "supplier_id", "type",
	"cost", "sell_price", "start_date", "end_date", "agency_id", "created_at",
}

// BookingRepo implements booking.Repository.
type BookingRepo struct {
	txm *TxManager
}

// NewBookingRepo creates a new booking repository.
func NewBookingRepo(txm *TxManager) *BookingRepo {
	return &BookingRepo{txm: txm}
}

func (r *BookingRepo) Create(ctx context.Context, b *booking.Booking) error {
	q := builder().Insert("bookings").
		Columns(bookingCols...).
		Values(b.ID, b.Ref, b.ClientID, b.SupplierID, b.Type,
			b.Cost, b.SellPrice, b.StartDate, b.EndDate, b.AgencyID, b.CreatedAt)

	sql, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("build insert booking: %w", err)
	}
	if _, err := r.txm.GetQuerier(ctx).Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	return nil
}

func (r *BookingRepo) GetByID(ctx context.Context, bookingID id.ID) (*booking.Booking, error) {
	q := builder().Select(bookingCols...).From("bookings").Where("id = ?", bookingID)

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select booking: %w", err)
	}

	var b booking.Booking
	if err := pgxscan.Get(ctx, r.txm.GetQuerier(ctx), &b, sql, args...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("booking", bookingID)
		}
		return nil, fmt.Errorf("select booking: %w", err)
	}
	return &b, nil
}

func (r *BookingRepo) List(ctx context.Context, scope security.TenantScope) ([]*booking.Booking, error) {
	q := withScope(
		builder().Select(bookingCols...).From("bookings"),
		"agency_id", scope,
	).OrderBy("created_at DESC", "id")

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list bookings: %w", err)
	}

	var list []*booking.Booking
	if err := pgxscan.Select(ctx, r.txm.GetQuerier(ctx), &list, sql, args...); err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	return list, nil
}

func (r *BookingRepo) ReferencesAgency(ctx context.Context, clientID, supplierID, agencyID id.ID) (bool, error) {
	const q = `
		SELECT EXISTS (SELECT 1 FROM clients WHERE id = $1 AND agency_id = $3)
		   AND EXISTS (SELECT 1 FROM suppliers WHERE id = $2 AND agency_id = $3)`

	var ok bool
	err := r.txm.GetQuerier(ctx).QueryRow(ctx, q, clientID, supplierID, agencyID).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("booking references: %w", err)
	}
	return ok, nil
}
