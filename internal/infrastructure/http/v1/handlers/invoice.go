package handlers

import (
	"github.com/gin-gonic/gin"

	"tally/internal/domain/invoice"
	"tally/internal/infrastructure/http/v1/dto"
)

// InvoiceHandler serves the /invoices endpoints.
type InvoiceHandler struct {
	*BaseHandler
	service *invoice.Service
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(base *BaseHandler, service *invoice.Service) *InvoiceHandler {
	return &InvoiceHandler{BaseHandler: base, service: service}
}

// List handles GET /invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"invoices": dto.FromInvoiceSummaries(items)})
}

// Get handles GET /invoices/:id
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	result, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"invoice": dto.FromInvoiceWithCompany(*result)})
}

// Create handles POST /invoices
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.CompCode, req.Amt)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, gin.H{"invoice": dto.FromInvoice(*created)})
}

// Update handles PUT /invoices/:id
//
// The body's amt drives the payment transition: a non-zero amount marks
// an unpaid invoice paid, an absent or zero amount marks a paid one
// unpaid.
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateInvoiceRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, req.Amt)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"invoice": dto.FromInvoice(*updated)})
}

// Delete handles DELETE /invoices/:id
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := h.ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, dto.Deleted())
}
