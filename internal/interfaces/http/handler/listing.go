package handler

import (
	"time"

	applisting "github.com/erp/salechannel/internal/application/listing"
	"github.com/erp/salechannel/internal/domain/listing"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/erp/salechannel/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ListingHandler handles party, template and product listing API endpoints
type ListingHandler struct {
	BaseHandler
	listingService *applisting.ListingService
}

// NewListingHandler creates a new ListingHandler
func NewListingHandler(listingService *applisting.ListingService) *ListingHandler {
	return &ListingHandler{listingService: listingService}
}

// CreatePartyListingRequest represents a request to link a party to a channel
type CreatePartyListingRequest struct {
	ChannelID         string `json:"channel_id" binding:"required,uuid"`
	ContactIdentifier string `json:"contact_identifier" binding:"required,min=1,max=255"`
}

// CreateTemplateListingRequest represents a request to link a product
// template to a channel
type CreateTemplateListingRequest struct {
	ChannelID          string `json:"channel_id" binding:"required,uuid"`
	TemplateIdentifier string `json:"template_identifier" binding:"required,min=1,max=255"`
}

// CreateProductListingRequest represents a request to list a product on a
// channel. ProductID may be omitted only for disabled placeholder listings.
type CreateProductListingRequest struct {
	ProductID         *string `json:"product_id" binding:"omitempty,uuid"`
	ProductIdentifier string  `json:"product_identifier" binding:"required,min=1,max=255"`
	State             string  `json:"state" binding:"omitempty,oneof=active disabled"`
}

// LinkProductRequest represents a request to attach a product to a
// placeholder listing
type LinkProductRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}

// PartyListingResponse represents a party listing in API responses
type PartyListingResponse struct {
	ID                uuid.UUID `json:"id"`
	ChannelID         uuid.UUID `json:"channel_id"`
	PartyID           uuid.UUID `json:"party_id"`
	ContactIdentifier string    `json:"contact_identifier"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TemplateListingResponse represents a template listing in API responses
type TemplateListingResponse struct {
	ID                 uuid.UUID `json:"id"`
	ChannelID          uuid.UUID `json:"channel_id"`
	TemplateID         uuid.UUID `json:"template_id"`
	TemplateIdentifier string    `json:"template_identifier"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ProductListingResponse represents a product listing in API responses
type ProductListingResponse struct {
	ID                uuid.UUID  `json:"id"`
	ChannelID         uuid.UUID  `json:"channel_id"`
	ProductID         *uuid.UUID `json:"product_id"`
	ProductIdentifier string     `json:"product_identifier"`
	State             string     `json:"state"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func toPartyListingResponse(l *listing.PartyListing) PartyListingResponse {
	return PartyListingResponse{
		ID:                l.ID,
		ChannelID:         l.ChannelID,
		PartyID:           l.PartyID,
		ContactIdentifier: l.ContactIdentifier,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

func toTemplateListingResponse(l *listing.TemplateListing) TemplateListingResponse {
	return TemplateListingResponse{
		ID:                 l.ID,
		ChannelID:          l.ChannelID,
		TemplateID:         l.TemplateID,
		TemplateIdentifier: l.TemplateIdentifier,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

func toProductListingResponse(l *listing.ProductListing) ProductListingResponse {
	return ProductListingResponse{
		ID:                l.ID,
		ChannelID:         l.ChannelID,
		ProductID:         l.ProductID,
		ProductIdentifier: l.ProductIdentifier,
		State:             string(l.State),
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Party listings
// ---------------------------------------------------------------------------

// CreatePartyListing links a party to a channel
func (h *ListingHandler) CreatePartyListing(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid party ID format")
		return
	}

	var req CreatePartyListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	channelID, err := uuid.Parse(req.ChannelID)
	if err != nil {
		h.BadRequest(c, "Invalid channel ID format")
		return
	}

	l, err := h.listingService.CreatePartyListing(c.Request.Context(), tenantID, channelID, partyID, req.ContactIdentifier)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, toPartyListingResponse(l))
}

// ListPartyListings lists a party's channel listings
func (h *ListingHandler) ListPartyListings(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	partyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid party ID format")
		return
	}

	listings, err := h.listingService.ListPartyListings(c.Request.Context(), tenantID, partyID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	responses := make([]PartyListingResponse, len(listings))
	for i := range listings {
		responses[i] = toPartyListingResponse(&listings[i])
	}
	h.Success(c, responses)
}

// DeletePartyListing removes one party listing
func (h *ListingHandler) DeletePartyListing(c *gin.Context) {
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

	if err := h.listingService.DeletePartyListing(c.Request.Context(), tenantID, listingID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ---------------------------------------------------------------------------
// Template listings
// ---------------------------------------------------------------------------

// CreateTemplateListing links a product template to a channel
func (h *ListingHandler) CreateTemplateListing(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid template ID format")
		return
	}

	var req CreateTemplateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	channelID, err := uuid.Parse(req.ChannelID)
	if err != nil {
		h.BadRequest(c, "Invalid channel ID format")
		return
	}

	l, err := h.listingService.CreateTemplateListing(c.Request.Context(), tenantID, channelID, templateID, req.TemplateIdentifier)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, toTemplateListingResponse(l))
}

// ListTemplateListings lists a template's channel listings
func (h *ListingHandler) ListTemplateListings(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	templateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid template ID format")
		return
	}

	listings, err := h.listingService.ListTemplateListings(c.Request.Context(), tenantID, templateID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	responses := make([]TemplateListingResponse, len(listings))
	for i := range listings {
		responses[i] = toTemplateListingResponse(&listings[i])
	}
	h.Success(c, responses)
}

// DeleteTemplateListing removes one template listing
func (h *ListingHandler) DeleteTemplateListing(c *gin.Context) {
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

	if err := h.listingService.DeleteTemplateListing(c.Request.Context(), tenantID, listingID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// ---------------------------------------------------------------------------
// Product listings
// ---------------------------------------------------------------------------

// CreateProductListing lists a product on a channel
func (h *ListingHandler) CreateProductListing(c *gin.Context) {
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

	var req CreateProductListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	var productID *uuid.UUID
	if req.ProductID != nil {
		id, err := uuid.Parse(*req.ProductID)
		if err != nil {
			h.BadRequest(c, "Invalid product ID format")
			return
		}
		productID = &id
	}

	state := listing.ListingState(req.State)
	if req.State == "" {
		state = listing.ListingStateActive
	}

	l, err := h.listingService.CreateProductListing(c.Request.Context(), tenantID, channelID, productID, req.ProductIdentifier, state)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, toProductListingResponse(l))
}

// GetProductListing retrieves one product listing
func (h *ListingHandler) GetProductListing(c *gin.Context) {
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

	l, err := h.listingService.GetProductListing(c.Request.Context(), tenantID, listingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toProductListingResponse(l))
}

// ListProductListings lists a channel's product listings with pagination
func (h *ListingHandler) ListProductListings(c *gin.Context) {
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

	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	if req.PageSize <= 0 {
		req.PageSize = 20
	}

	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		OrderBy:  req.OrderBy,
		OrderDir: req.OrderDir,
		Search:   req.Search,
	}

	listings, total, err := h.listingService.ListProductListings(c.Request.Context(), tenantID, channelID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	responses := make([]ProductListingResponse, len(listings))
	for i := range listings {
		responses[i] = toProductListingResponse(&listings[i])
	}
	h.SuccessWithMeta(c, responses, total, filter.Page, filter.PageSize)
}

// Activate transitions a listing to the active state
func (h *ListingHandler) Activate(c *gin.Context) {
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

	l, err := h.listingService.ActivateProductListing(c.Request.Context(), tenantID, listingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toProductListingResponse(l))
}

// Disable transitions a listing to the disabled state
func (h *ListingHandler) Disable(c *gin.Context) {
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

	l, err := h.listingService.DisableProductListing(c.Request.Context(), tenantID, listingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toProductListingResponse(l))
}

// LinkProduct attaches a product to a placeholder listing
func (h *ListingHandler) LinkProduct(c *gin.Context) {
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

	var req LinkProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	l, err := h.listingService.LinkProduct(c.Request.Context(), tenantID, listingID, productID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toProductListingResponse(l))
}

// DeleteProductListing removes one product listing
func (h *ListingHandler) DeleteProductListing(c *gin.Context) {
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

	if err := h.listingService.DeleteProductListing(c.Request.Context(), tenantID, listingID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
