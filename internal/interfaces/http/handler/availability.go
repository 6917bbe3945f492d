package handler

import (
	applisting "github.com/erp/salechannel/internal/application/listing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AvailabilityHandler handles derived stock snapshot API endpoints
type AvailabilityHandler struct {
	BaseHandler
	availabilityService *applisting.AvailabilityService
}

// NewAvailabilityHandler creates a new AvailabilityHandler
func NewAvailabilityHandler(availabilityService *applisting.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{availabilityService: availabilityService}
}

// AvailabilityFieldsRequest represents a batch availability field request
type AvailabilityFieldsRequest struct {
	ListingIDs []string `json:"listing_ids" binding:"required,min=1,dive,uuid"`
	Names      []string `json:"names" binding:"required,min=1,dive,oneof=quantity availability_used availability_type_used"`
}

// GetAvailability returns the availability snapshot for one listing
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	listingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid listing ID format")
		return
	}

	availability, err := h.availabilityService.GetAvailability(c.Request.Context(), tenantID, listingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, availability)
}

// GetAvailabilityFields resolves availability fields for a batch of listings.
// The result maps field name -> listing ID -> value, with null entries for
// listings whose field could not be resolved.
func (h *AvailabilityHandler) GetAvailabilityFields(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req AvailabilityFieldsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	listingIDs := make([]uuid.UUID, len(req.ListingIDs))
	for i, raw := range req.ListingIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "Invalid listing ID format")
			return
		}
		listingIDs[i] = id
	}

	values, err := h.availabilityService.GetAvailabilityFields(c.Request.Context(), tenantID, listingIDs, req.Names)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, values)
}
