package handler

import (
	applisting "github.com/erp/salechannel/internal/application/listing"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WizardHandler handles the guided add-listing flow API endpoints
type WizardHandler struct {
	BaseHandler
	wizard *applisting.ListingWizard
}

// NewWizardHandler creates a new WizardHandler
func NewWizardHandler(wizard *applisting.ListingWizard) *WizardHandler {
	return &WizardHandler{wizard: wizard}
}

// StartWizardRequest represents a request to open an add-listing session for
// a product
type StartWizardRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
}

// WizardNextRequest carries the channel selection of the start state
type WizardNextRequest struct {
	ChannelID string `json:"channel_id" binding:"required,uuid"`
}

// WizardSessionResponse represents a wizard session in API responses
type WizardSessionResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"product_id"`
	ChannelID uuid.UUID `json:"channel_id,omitempty"`
	Source    string    `json:"source,omitempty"`
	State     string    `json:"state"`
	Finished  bool      `json:"finished"`
}

func toWizardSessionResponse(s *applisting.WizardSession) WizardSessionResponse {
	return WizardSessionResponse{
		ID:        s.ID,
		ProductID: s.ProductID,
		ChannelID: s.ChannelID,
		Source:    s.Source.String(),
		State:     s.State,
		Finished:  s.Finished(),
	}
}

// Start opens a new add-listing session pre-populated with the product
func (h *WizardHandler) Start(c *gin.Context) {
	tenantID, err := getTenantID(c)
	if err != nil {
		h.BadRequest(c, "Invalid tenant ID")
		return
	}

	var req StartWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID format")
		return
	}

	session := h.wizard.Start(tenantID, productID)
	h.Created(c, toWizardSessionResponse(session))
}

// Get returns a session's current state
func (h *WizardHandler) Get(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID format")
		return
	}

	session, err := h.wizard.Session(sessionID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toWizardSessionResponse(session))
}

// Next applies the channel selection and advances the session into the
// channel-specific continuation state
func (h *WizardHandler) Next(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID format")
		return
	}

	var req WizardNextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	channelID, err := uuid.Parse(req.ChannelID)
	if err != nil {
		h.BadRequest(c, "Invalid channel ID format")
		return
	}

	session, err := h.wizard.Next(c.Request.Context(), sessionID, channelID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, toWizardSessionResponse(session))
}

// Cancel discards a session
func (h *WizardHandler) Cancel(c *gin.Context) {
	sessionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid session ID format")
		return
	}

	h.wizard.Cancel(sessionID)
	h.NoContent(c)
}

// Sources lists the channel sources enabled for the wizard
func (h *WizardHandler) Sources(c *gin.Context) {
	sources := h.wizard.AllowedSources()
	names := make([]string, len(sources))
	for i, s := range sources {
		names[i] = s.String()
	}
	h.Success(c, names)
}
