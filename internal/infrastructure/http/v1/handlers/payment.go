package handlers

import (
	"github.com/gin-gonic/gin"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/domain/payment"
	"sanhaja/internal/infrastructure/http/v1/dto"
)

// PaymentHandler handles payment endpoints.
type PaymentHandler struct {
	*BaseHandler
	service *payment.Service
}

// NewPaymentHandler creates a new payment handler.
func NewPaymentHandler(base *BaseHandler, service *payment.Service) *PaymentHandler {
	return &PaymentHandler{BaseHandler: base, service: service}
}

// Create handles POST /payments
func (h *PaymentHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreatePaymentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	invoiceID, err := id.Parse(req.InvoiceID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid invoice id").WithDetail("field", "invoiceId"))
		return
	}
	paymentDate, err := dto.ParseDate("paymentDate", req.PaymentDate)
	if err != nil {
		h.Error(c, err)
		return
	}

	p, err := h.service.Create(ctx, caller, payment.CreateInput{
		InvoiceID:   invoiceID,
		Method:      payment.Method(req.Method),
		Amount:      req.Amount,
		PaymentDate: paymentDate,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromPayment(p))
}

// List handles GET /payments
func (h *PaymentHandler) List(c *gin.Context) {
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
	h.OK(c, dto.FromPayments(list))
}
