package handlers

import (
	"github.com/gin-gonic/gin"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/domain/invoice"
	"sanhaja/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	*BaseHandler
	service *invoice.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, service: service}
}

// Create handles POST /invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	clientID, err := id.Parse(req.ClientID)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid client id").WithDetail("field", "clientId"))
		return
	}
	dueDate, err := dto.ParseDate("dueDate", req.DueDate)
	if err != nil {
		h.Error(c, err)
		return
	}
	requestedAgency, ok := h.parseOptionalAgency(c, req.AgencyID)
	if !ok {
		return
	}

	inv, err := h.service.Create(ctx, caller, invoice.CreateInput{
		ClientID: clientID,
		AmountHT: req.AmountHT,
		TVARate:  req.TVARate,
		DueDate:  dueDate,
		AgencyID: requestedAgency,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromInvoice(inv))
}

// List handles GET /invoices
func (h *InvoiceHandler) List(c *gin.Context) {
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
	h.OK(c, dto.FromInvoices(list))
}
