package handler

import (
	"time"

	appchannel "github.com/erp/salechannel/internal/application/channel"
	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CarrierHandler handles channel carrier mapping API endpoints
type CarrierHandler struct {
	BaseHandler
	carrierService *appchannel.CarrierService
}

// NewCarrierHandler creates a new CarrierHandler
func NewCarrierHandler(carrierService *appchannel.CarrierService) *CarrierHandler {
	return &CarrierHandler{carrierService: carrierService}
}

// CreateCarrierMappingRequest represents a request to map a channel shipping
// method to a carrier
type CreateCarrierMappingRequest struct {
	Name string `json:"name" binding:"required,min=1,max=200"`
	Code string `json:"code" binding:"max=50"`
}

// AssignCarrierRequest represents a request to assign a carrier to a mapping
type AssignCarrierRequest struct {
	CarrierID string `json:"carrier_id" binding:"required,uuid"`
}

// AssignServiceRequest represents a request to assign a carrier service
type AssignServiceRequest struct {
	CarrierServiceID string `json:"carrier_service_id" binding:"required,uuid"`
}

// CarrierMappingResponse represents a carrier mapping in API responses
type CarrierMappingResponse struct {
	ID               uuid.UUID  `json:"id"`
	ChannelID        uuid.UUID  `json:"channel_id"`
	Name             string     `json:"name"`
	Code             string     `json:"code"`
	CarrierID        *uuid.UUID `json:"carrier_id"`
	CarrierServiceID *uuid.UUID `json:"carrier_service_id"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

// CarrierServiceResponse represents one carrier service in the
// available-services picklist
type CarrierServiceResponse struct {
	ID        uuid.UUID `json:"id"`
	CarrierID uuid.UUID `json:"carrier_id"`
	Name      string    `json:"name"`
	Code      string    `json:"code"`
}

func toCarrierMappingResponse(m *channel.CarrierMapping) CarrierMappingResponse {
	return CarrierMappingResponse{
		ID:               m.ID,
		ChannelID:        m.ChannelID,
		Name:             m.Name,
		Code:             m.Code,
		CarrierID:        m.CarrierID,
		CarrierServiceID: m.CarrierServiceID,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
	}
}

// Create creates a carrier mapping for a channel
func (h *CarrierHandler) Create(c *gin.Context) {
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

	var req CreateCarrierMappingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	m, err := h.carrierService.CreateMapping(c.Request.Context(), tenantID, channelID, req.Name, req.Code)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, toCarrierMappingResponse(m))
}

// List lists a channel's carrier mappings
func (h *CarrierHandler) List(c *gin.Context) {
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

	mappings, err := h.carrierService.ListMappings(c.Request.Context(), tenantID, channelID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	responses := make([]CarrierMappingResponse, len(mappings))
	for i := range mappings {
		responses[i] = toCarrierMappingResponse(&mappings[i])
	}
	h.Success(c, responses)
}

// GetByID retrieves a carrier mapping by ID
func (h *CarrierHandler) GetByID(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	mappingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid mapping ID format")
		return
	}

	m, err := h.carrierService.GetMapping(c.Request.Context(), tenantID, mappingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toCarrierMappingResponse(m))
}

// AssignCarrier sets the carrier on a mapping. Changing the carrier clears
// a previously selected service.
func (h *CarrierHandler) AssignCarrier(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	mappingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid mapping ID format")
		return
	}

	var req AssignCarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	carrierID, err := uuid.Parse(req.CarrierID)
	if err != nil {
		h.BadRequest(c, "Invalid carrier ID format")
		return
	}

	m, err := h.carrierService.AssignCarrier(c.Request.Context(), tenantID, mappingID, carrierID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toCarrierMappingResponse(m))
}

// AssignService sets the carrier service on a mapping
func (h *CarrierHandler) AssignService(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	mappingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid mapping ID format")
		return
	}

	var req AssignServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	serviceID, err := uuid.Parse(req.CarrierServiceID)
	if err != nil {
		h.BadRequest(c, "Invalid carrier service ID format")
		return
	}

	m, err := h.carrierService.AssignService(c.Request.Context(), tenantID, mappingID, serviceID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toCarrierMappingResponse(m))
}

// AvailableServices returns the service picklist for a mapping's currently
// selected carrier. Empty while no carrier is assigned.
func (h *CarrierHandler) AvailableServices(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	mappingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid mapping ID format")
		return
	}

	services, err := h.carrierService.AvailableServices(c.Request.Context(), tenantID, mappingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	responses := make([]CarrierServiceResponse, len(services))
	for i, svc := range services {
		responses[i] = CarrierServiceResponse{
			ID:        svc.ID,
			CarrierID: svc.CarrierID,
			Name:      svc.Name,
			Code:      svc.Code,
		}
	}
	h.Success(c, responses)
}

// Delete removes a carrier mapping
func (h *CarrierHandler) Delete(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	mappingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid mapping ID format")
		return
	}

	if err := h.carrierService.DeleteMapping(c.Request.Context(), tenantID, mappingID); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
