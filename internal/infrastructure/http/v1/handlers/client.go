package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"sanhaja/internal/core/apperror"
	"sanhaja/internal/core/id"
	"sanhaja/internal/domain/client"
	"sanhaja/internal/infrastructure/http/v1/dto"
)

// ClientHandler handles client endpoints.
type ClientHandler struct {
	*BaseHandler
	service *client.Service
}

// NewClientHandler creates a new client handler.
func NewClientHandler(base *BaseHandler, service *client.Service) *ClientHandler {
	return &ClientHandler{BaseHandler: base, service: service}
}

// Create handles POST /clients
func (h *ClientHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreateClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	requestedAgency, ok := h.parseOptionalAgency(c, req.AgencyID)
	if !ok {
		return
	}

	cl := &client.Client{
		ID:          id.New(),
		Name:        req.Name,
		Phone:       req.Phone,
		CinPassport: req.CinPassport,
		CreatedAt:   time.Now().UTC(),
	}
	if err := h.service.Create(ctx, caller, cl, requestedAgency); err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, dto.FromClient(cl))
}

// List handles GET /clients
func (h *ClientHandler) List(c *gin.Context) {
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
	h.OK(c, dto.FromClients(list))
}

// Update handles PUT /clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	clientID, ok := h.parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateClientRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(ctx, caller, clientID, req.Name, req.Phone, req.CinPassport)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.FromClient(updated))
}

// Delete handles DELETE /clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	clientID, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, caller, clientID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// parseID parses the :id path parameter.
func (h *BaseHandler) parseID(c *gin.Context) (id.ID, bool) {
	parsed, err := id.Parse(c.Param("id"))
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid id").WithDetail("value", c.Param("id")))
		return id.Nil(), false
	}
	return parsed, true
}

// parseOptionalAgency parses an optional agencyId body field.
func (h *BaseHandler) parseOptionalAgency(c *gin.Context, raw *string) (*id.ID, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	parsed, err := id.Parse(*raw)
	if err != nil {
		h.Error(c, apperror.NewValidation("invalid agency id").WithDetail("field", "agencyId"))
		return nil, false
	}
	return &parsed, true
}
