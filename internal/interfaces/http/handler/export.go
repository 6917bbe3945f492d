package handler

import (
	applisting "github.com/erp/salechannel/internal/application/listing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExportHandler handles inventory export and create-from API endpoints
type ExportHandler struct {
	BaseHandler
	exportService *applisting.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *applisting.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// BulkExportRequest represents a request to export several listings'
// inventory. Order is preserved; the first failure aborts the remainder.
type BulkExportRequest struct {
	ListingIDs []string `json:"listing_ids" binding:"required,min=1,dive,uuid"`
}

// CreateFromRequest carries the raw external channel payload for the
// create-from operations
type CreateFromRequest struct {
	Data map[string]any `json:"data" binding:"required"`
}

// CreateProductFromResponse returns the ID of a product created from
// external channel data
type CreateProductFromResponse struct {
	ProductID uuid.UUID `json:"product_id"`
}

// ExportInventory exports one listing's inventory to its channel
func (h *ExportHandler) ExportInventory(c *gin.Context) {
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

	if err := h.exportService.ExportInventory(c.Request.Context(), tenantID, listingID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ExportBulkInventory exports the listings' inventory in input order
func (h *ExportHandler) ExportBulkInventory(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req BulkExportRequest
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

	if err := h.exportService.ExportBulkInventory(c.Request.Context(), tenantID, listingIDs); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// CreateProductFrom creates a local product from external channel data
func (h *ExportHandler) CreateProductFrom(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	channelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid channel ID format")
		return
	}

	var req CreateFromRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	productID, err := h.exportService.CreateProductFrom(c.Request.Context(), tenantID, channelID, req.Data)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, CreateProductFromResponse{ProductID: productID})
}

// CreateListingFrom creates a product listing from external channel data
func (h *ExportHandler) CreateListingFrom(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	channelID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid channel ID format")
		return
	}

	var req CreateFromRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	l, err := h.exportService.CreateListingFrom(c.Request.Context(), tenantID, channelID, req.Data)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, toProductListingResponse(l))
}
