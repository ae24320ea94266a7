package handlers

import (
	"github.com/gin-gonic/gin"

	"tally/internal/domain/industry"
	"tally/internal/infrastructure/http/v1/dto"
)

// IndustryHandler serves the /industries endpoints.
type IndustryHandler struct {
	*BaseHandler
	service *industry.Service
}

// NewIndustryHandler creates a new industry handler.
func NewIndustryHandler(base *BaseHandler, service *industry.Service) *IndustryHandler {
	return &IndustryHandler{BaseHandler: base, service: service}
}

// List handles GET /industries
func (h *IndustryHandler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}

	h.OK(c, gin.H{"industries": dto.FromIndustries(items)})
}

// Create handles POST /industries
func (h *IndustryHandler) Create(c *gin.Context) {
	var req dto.CreateIndustryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.Industry)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, gin.H{"industry": dto.FromIndustry(*created)})
}

// Associate handles POST /industries/:companyCode/:industryCode
func (h *IndustryHandler) Associate(c *gin.Context) {
	a, err := h.service.Associate(
		c.Request.Context(),
		c.Param("companyCode"),
		c.Param("industryCode"),
	)
	if err != nil {
		h.Error(c, err)
		return
	}

	h.Created(c, gin.H{"association": dto.FromAssociation(*a)})
}
