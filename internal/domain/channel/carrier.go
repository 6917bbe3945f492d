package channel

import (
	"context"
	"errors"

	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Carrier Errors
// ---------------------------------------------------------------------------

var (
	ErrCarrierNotFound               = errors.New("channel: carrier not found")
	ErrCarrierMappingNotFound        = errors.New("channel: carrier mapping not found")
	ErrCarrierMappingInvalidTenantID = errors.New("channel: invalid tenant ID")
	ErrCarrierMappingInvalidChannel  = errors.New("channel: invalid channel ID")
	ErrCarrierMappingInvalidName     = errors.New("channel: carrier mapping name is required")
)

// ---------------------------------------------------------------------------
// Carrier and CarrierService
// ---------------------------------------------------------------------------

// Carrier is a shipping carrier known to the host system
type Carrier struct {
	shared.BaseEntity
	TenantID uuid.UUID
	Name     string
}

// CarrierService is one of the delivery services a carrier offers
type CarrierService struct {
	shared.BaseEntity
	TenantID  uuid.UUID
	CarrierID uuid.UUID
	Name      string
	Code      string
}

// ---------------------------------------------------------------------------
// CarrierMapping Entity
// ---------------------------------------------------------------------------

// CarrierMapping associates a channel's named shipping method with a carrier
// and one of its services. The shipping method name/code is what the external
// channel reports; the carrier pair is what the host uses to manage tracking
// export.
type CarrierMapping struct {
	shared.BaseEntity
	TenantID         uuid.UUID
	ChannelID        uuid.UUID
	Name             string
	Code             string
	CarrierID        *uuid.UUID
	CarrierServiceID *uuid.UUID
}

// NewCarrierMapping creates a new carrier mapping for a channel
func NewCarrierMapping(tenantID, channelID uuid.UUID, name, code string) (*CarrierMapping, error) {
	if tenantID == uuid.Nil {
		return nil, ErrCarrierMappingInvalidTenantID
	}
	if channelID == uuid.Nil {
		return nil, ErrCarrierMappingInvalidChannel
	}
	if name == "" {
		return nil, ErrCarrierMappingInvalidName
	}

	return &CarrierMapping{
		BaseEntity: shared.NewBaseEntity(),
		TenantID:   tenantID,
		ChannelID:  channelID,
		Name:       name,
		Code:       code,
	}, nil
}

// AssignCarrier sets the carrier for this mapping. Changing the carrier
// clears a previously selected service, since the service picklist is
// recomputed from the carrier.
func (m *CarrierMapping) AssignCarrier(carrierID uuid.UUID) {
	if m.CarrierID != nil && *m.CarrierID == carrierID {
		return
	}
	m.CarrierID = &carrierID
	m.CarrierServiceID = nil
	m.Touch()
}

// AssignService sets the carrier service for this mapping. The service is
// expected to belong to the selected carrier; this is a picklist hint, not a
// hard constraint, so no cross-check happens on save.
func (m *CarrierMapping) AssignService(serviceID uuid.UUID) {
	m.CarrierServiceID = &serviceID
	m.Touch()
}

// Validate validates the carrier mapping
func (m *CarrierMapping) Validate() error {
	if m.TenantID == uuid.Nil {
		return ErrCarrierMappingInvalidTenantID
	}
	if m.ChannelID == uuid.Nil {
		return ErrCarrierMappingInvalidChannel
	}
	if m.Name == "" {
		return ErrCarrierMappingInvalidName
	}
	return nil
}

// ---------------------------------------------------------------------------
// Repository Interfaces
// ---------------------------------------------------------------------------

// CarrierRepository reads host-side carriers and their services
type CarrierRepository interface {
	// FindByID finds a carrier by ID within a tenant
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Carrier, error)

	// FindServices lists the services belonging to a carrier
	FindServices(ctx context.Context, tenantID, carrierID uuid.UUID) ([]CarrierService, error)
}

// CarrierMappingRepository persists channel carrier mappings
type CarrierMappingRepository interface {
	// FindByID finds a mapping by ID within a tenant
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*CarrierMapping, error)

	// FindByChannel lists mappings for a channel
	FindByChannel(ctx context.Context, tenantID, channelID uuid.UUID) ([]CarrierMapping, error)

	// Save creates or updates a mapping
	Save(ctx context.Context, mapping *CarrierMapping) error

	// Delete deletes a mapping
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
