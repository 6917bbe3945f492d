package handler

import (
	"time"

	appchannel "github.com/erp/salechannel/internal/application/channel"
	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/erp/salechannel/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ChannelHandler handles sale channel API endpoints
type ChannelHandler struct {
	BaseHandler
	channelService *appchannel.ChannelService
}

// NewChannelHandler creates a new ChannelHandler
func NewChannelHandler(channelService *appchannel.ChannelService) *ChannelHandler {
	return &ChannelHandler{channelService: channelService}
}

// CreateChannelRequest represents a request to create a sale channel
type CreateChannelRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=200"`
	Code        string `json:"code" binding:"max=50"`
	Source      string `json:"source" binding:"required,min=1,max=50"`
	WarehouseID string `json:"warehouse_id" binding:"required,uuid"`
}

// UpdateChannelRequest represents a request to update a sale channel
type UpdateChannelRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Code        *string `json:"code" binding:"omitempty,max=50"`
	WarehouseID *string `json:"warehouse_id" binding:"omitempty,uuid"`
}

// ChannelResponse represents a sale channel in API responses
type ChannelResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Source      string    `json:"source"`
	WarehouseID uuid.UUID `json:"warehouse_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toChannelResponse(ch *channel.SaleChannel) ChannelResponse {
	return ChannelResponse{
		ID:          ch.ID,
		Name:        ch.Name,
		Code:        ch.Code,
		Source:      ch.Source.String(),
		WarehouseID: ch.WarehouseID,
		CreatedAt:   ch.CreatedAt,
		UpdatedAt:   ch.UpdatedAt,
	}
}

// Create creates a new sale channel
func (h *ChannelHandler) Create(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req CreateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	warehouseID, err := uuid.Parse(req.WarehouseID)
	if err != nil {
		h.BadRequest(c, "Invalid warehouse ID format")
		return
	}

	ch, err := h.channelService.CreateChannel(c.Request.Context(), tenantID, req.Name, req.Code, channel.Source(req.Source), warehouseID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, toChannelResponse(ch))
}

// GetByID retrieves a channel by ID
func (h *ChannelHandler) GetByID(c *gin.Context) {
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

	ch, err := h.channelService.GetChannel(c.Request.Context(), tenantID, channelID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toChannelResponse(ch))
}

// List retrieves a paginated list of channels
func (h *ChannelHandler) List(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
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

	channels, total, err := h.channelService.ListChannels(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	responses := make([]ChannelResponse, len(channels))
	for i := range channels {
		responses[i] = toChannelResponse(&channels[i])
	}
	h.SuccessWithMeta(c, responses, total, filter.Page, filter.PageSize)
}

// Update updates an existing channel. The source is immutable after
// creation; integrations key their behavior off it.
func (h *ChannelHandler) Update(c *gin.Context) {
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

	var req UpdateChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	ch, err := h.channelService.GetChannel(c.Request.Context(), tenantID, channelID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	if req.Name != nil {
		ch.Name = *req.Name
	}
	if req.Code != nil {
		ch.Code = *req.Code
	}
	if req.WarehouseID != nil {
		warehouseID, err := uuid.Parse(*req.WarehouseID)
		if err != nil {
			h.BadRequest(c, "Invalid warehouse ID format")
			return
		}
		ch.WarehouseID = warehouseID
	}

	if err := h.channelService.UpdateChannel(c.Request.Context(), ch); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toChannelResponse(ch))
}

// Delete deletes a channel. Fails with 409 while listings reference it.
func (h *ChannelHandler) Delete(c *gin.Context) {
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

	if err := h.channelService.DeleteChannel(c.Request.Context(), tenantID, channelID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
