package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/domain/booking"
	"sanhaja/internal/infrastructure/http/v1/dto"
)

// BookingHandler handles booking endpoints.
type BookingHandler struct {
	*BaseHandler
	service *booking.Service
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(base *BaseHandler, service *booking.Service) *BookingHandler {
	return &BookingHandler{BaseHandler: base, service: service}
}

// Create handles POST /bookings
func (h *BookingHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if !h.BindJSON(c, &req) {
		return
	}

	clientID, err := id.Parse(req.ClientID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid client id").WithDetail("field", "clientId"))
		return
	}
	supplierID, err := id.Parse(req.SupplierID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid supplier id").WithDetail("field", "supplierId"))
		return
	}
	startDate, err := dto.ParseDate("startDate", req.StartDate)
	if err != nil {
		h.Error(c, err)
		return
	}
	endDate, err := dto.ParseDate("endDate", req.EndDate)
	if err != nil {
		h.Error(c, err)
		return
	}
	requestedAgency, ok := h.parseOptionalAgency(c, req.AgencyID)
	if !ok {
		return
	}

	b := &booking.Booking{
		ID:         id.New(),
		Ref:        req.Ref,
		ClientID:   clientID,
		SupplierID: supplierID,
		Type:       booking.Type(req.Type),
		Cost:       req.Cost,
		SellPrice:  req.SellPrice,
		StartDate:  startDate,
		EndDate:    endDate,
		CreatedAt:  time.Now().UTC(),
	}
	if err := h.service.Create(ctx, caller, b, requestedAgency); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromBooking(b))
}

// List handles GET /bookings
func (h *BookingHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var q dto.ScopeQuery
	if !h.BindQuery(c, &q) {
		return
	}
	f, err := q.ToFilter()
	if err != nil {
		h.Error(c, err)
		return
	}

	list, err := h.service.List(ctx, caller, f)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromBookings(list))
}
