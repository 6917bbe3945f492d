package handler

import (
	"errors"
	"net/http"

	applisting "github.com/erp/salechannel/internal/application/listing"
	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/listing"
	"github.com/erp/salechannel/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the context key for request ID
const RequestIDKey = "X-Request-ID"

// TenantIDHeader carries the tenant scope of a request. Authentication is
// handled upstream by the platform gateway; this service trusts the header.
const TenantIDHeader = "X-Tenant-ID"

// BaseHandler provides common handler utilities
type BaseHandler struct{}

// getRequestID extracts the request ID from the context
func getRequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDKey); id != "" {
		return id
	}
	if id := c.GetString("request_id"); id != "" {
		return id
	}
	if id := c.GetHeader(RequestIDKey); id != "" {
		return id
	}
	return ""
}

// getTenantID extracts tenant ID from the request header
func getTenantID(c *gin.Context) (uuid.UUID, error) {
	tenantIDStr := c.GetHeader(TenantIDHeader)
	if tenantIDStr == "" {
		// Default development tenant
		return uuid.MustParse("00000000-0000-0000-0000-000000000001"), nil
	}
	return uuid.Parse(tenantIDStr)
}

// Success sends a success response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a success response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize))
}

// Created sends a 201 created response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 no content response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error sends an error response with the appropriate status code
func (h *BaseHandler) Error(c *gin.Context, statusCode int, code, message string) {
	requestID := getRequestID(c)
	c.JSON(statusCode, dto.NewErrorResponseWithRequestID(code, message, requestID))
}

// BadRequest sends a 400 bad request response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	h.Error(c, http.StatusBadRequest, dto.ErrCodeBadRequest, message)
}

// NotFound sends a 404 not found response
func (h *BaseHandler) NotFound(c *gin.Context, message string) {
	h.Error(c, http.StatusNotFound, dto.ErrCodeNotFound, message)
}

// Conflict sends a 409 conflict response
func (h *BaseHandler) Conflict(c *gin.Context, message string) {
	h.Error(c, http.StatusConflict, dto.ErrCodeConflict, message)
}

// InternalError sends a 500 internal server error response
func (h *BaseHandler) InternalError(c *gin.Context, message string) {
	h.Error(c, http.StatusInternalServerError, dto.ErrCodeInternal, message)
}

// HandleDomainError converts domain errors to HTTP responses
func (h *BaseHandler) HandleDomainError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	code := domainErrorCode(err)
	if code == dto.ErrCodeInternal {
		h.InternalError(c, "An unexpected error occurred")
		return
	}
	h.Error(c, dto.GetHTTPStatus(code), code, err.Error())
}

// domainErrorCode classifies a domain error into an API error code
func domainErrorCode(err error) string {
	var notSupported *listing.NotSupportedError
	if errors.As(err, &notSupported) {
		return dto.ErrCodeNotSupported
	}
	var wizardState *applisting.WizardStateError
	if errors.As(err, &wizardState) {
		return dto.ErrCodeNotSupported
	}

	switch {
	case errors.Is(err, channel.ErrChannelNotFound),
		errors.Is(err, channel.ErrCarrierNotFound),
		errors.Is(err, channel.ErrCarrierMappingNotFound),
		errors.Is(err, listing.ErrListingNotFound),
		errors.Is(err, listing.ErrProductListingNotFound),
		errors.Is(err, applisting.ErrWizardSessionNotFound):
		return dto.ErrCodeNotFound

	case errors.Is(err, listing.ErrListingDuplicate):
		return dto.ErrCodeAlreadyExists

	case errors.Is(err, channel.ErrChannelInUse):
		return dto.ErrCodeConflict

	case errors.Is(err, listing.ErrProductRequired),
		errors.Is(err, listing.ErrListingManualChannel),
		errors.Is(err, applisting.ErrWizardFinished),
		errors.Is(err, applisting.ErrWizardSourceExcluded):
		return dto.ErrCodeInvalidState

	case errors.Is(err, channel.ErrChannelInvalidTenantID),
		errors.Is(err, channel.ErrChannelInvalidName),
		errors.Is(err, channel.ErrChannelInvalidSource),
		errors.Is(err, channel.ErrChannelInvalidWarehouse),
		errors.Is(err, channel.ErrCarrierMappingInvalidTenantID),
		errors.Is(err, channel.ErrCarrierMappingInvalidChannel),
		errors.Is(err, channel.ErrCarrierMappingInvalidName),
		errors.Is(err, listing.ErrListingInvalidTenantID),
		errors.Is(err, listing.ErrListingInvalidChannel),
		errors.Is(err, listing.ErrListingInvalidEntity),
		errors.Is(err, listing.ErrListingInvalidIdentifier),
		errors.Is(err, listing.ErrInvalidListingState):
		return dto.ErrCodeInvalidInput
	}

	return dto.ErrCodeInternal
}
