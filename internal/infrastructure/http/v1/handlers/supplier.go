package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"sanhaja/internal/core/id"
	"sanhaja/internal/domain/supplier"
	"sanhaja/internal/infrastructure/http/v1/dto"
)

// SupplierHandler handles supplier endpoints.
type SupplierHandler struct {
	*BaseHandler
	service *supplier.Service
}

// NewSupplierHandler creates a new supplier handler.
func NewSupplierHandler(base *BaseHandler, service *supplier.Service) *SupplierHandler {
	return &SupplierHandler{BaseHandler: base, service: service}
}

// Create handles POST /suppliers
func (h *SupplierHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreateSupplierRequest
	if !h.BindJSON(c, &req) {
		return
	}

	requestedAgency, ok := h.parseOptionalAgency(c, req.AgencyID)
	if !ok {
		return
	}

	sup := &supplier.Supplier{
		ID:        id.New(),
		Name:      req.Name,
		Type:      req.Type,
		Contact:   req.Contact,
		CreatedAt: time.Now().UTC(),
	}
	if err := h.service.Create(ctx, caller, sup, requestedAgency); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromSupplier(sup))
}

// List handles GET /suppliers
func (h *SupplierHandler) List(c *gin.Context) {
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
	h.OK(c, dto.FromSuppliers(list))
}

// Update handles PUT /suppliers/:id
func (h *SupplierHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	supplierID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateSupplierRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(ctx, caller, supplierID, req.Name, req.Type, req.Contact)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromSupplier(updated))
}

// Delete handles DELETE /suppliers/:id
func (h *SupplierHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	supplierID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, caller, supplierID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
