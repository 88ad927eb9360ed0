package dto

import (
	"time"

	"sanhaja/internal/core/types"
	"sanhaja/internal/domain/booking"
)

// CreateBookingRequest for POST /bookings.
type CreateBookingRequest struct {
	Ref        string      `json:"ref" binding:"required"`
	ClientID   string      `json:"clientId" binding:"required"`
	SupplierID string      `json:"supplierId" binding:"required"`
	Type       string      `json:"type" binding:"required"`
	Cost       types.Money `json:"cost"`
	SellPrice  types.Money `json:"sellPrice"`
	StartDate  string      `json:"startDate" binding:"required"`
	EndDate    string      `json:"endDate" binding:"required"`
	AgencyID   *string     `json:"agencyId"`
}

// BookingResponse contains booking fields plus the derived profit.
type BookingResponse struct {
	ID         string      `json:"id"`
	Ref        string      `json:"ref"`
	ClientID   string      `json:"clientId"`
	SupplierID string      `json:"supplierId"`
	Type       string      `json:"type"`
	Cost       types.Money `json:"cost"`
	SellPrice  types.Money `json:"sellPrice"`
	Profit     types.Money `json:"profit"`
	StartDate  string      `json:"startDate"`
	EndDate    string      `json:"endDate"`
	AgencyID   string      `json:"agencyId"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// FromBooking creates BookingResponse from booking.Booking.
func FromBooking(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID.String(),
		Ref:        b.Ref,
		ClientID:   b.ClientID.String(),
		SupplierID: b.SupplierID.String(),
		Type:       string(b.Type),
		Cost:       b.Cost,
		SellPrice:  b.SellPrice,
		Profit:     b.Profit(),
		StartDate:  b.StartDate.Format(DateLayout),
		EndDate:    b.EndDate.Format(DateLayout),
		AgencyID:   b.AgencyID.String(),
		CreatedAt:  b.CreatedAt,
	}
}

// FromBookings maps a booking list.
func FromBookings(list []*booking.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBooking(b))
	}
	return out
}
