package channel

import (
	"context"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/google/uuid"
)

// CarrierService manages channel carrier mappings and the derived
// available-services picklist
type CarrierService struct {
	carriers channel.CarrierRepository
	mappings channel.CarrierMappingRepository
}

// NewCarrierService creates a new carrier mapping service
func NewCarrierService(carriers channel.CarrierRepository, mappings channel.CarrierMappingRepository) *CarrierService {
	return &CarrierService{carriers: carriers, mappings: mappings}
}

// CreateMapping creates a carrier mapping for a channel's shipping method
func (s *CarrierService) CreateMapping(ctx context.Context, tenantID, channelID uuid.UUID, name, code string) (*channel.CarrierMapping, error) {
	m, err := channel.NewCarrierMapping(tenantID, channelID, name, code)
	if err != nil {
		return nil, err
	}
	if err := s.mappings.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// GetMapping retrieves a carrier mapping by ID
func (s *CarrierService) GetMapping(ctx context.Context, tenantID, id uuid.UUID) (*channel.CarrierMapping, error) {
	return s.mappings.FindByID(ctx, tenantID, id)
}

// ListMappings lists a channel's carrier mappings
func (s *CarrierService) ListMappings(ctx context.Context, tenantID, channelID uuid.UUID) ([]channel.CarrierMapping, error) {
	return s.mappings.FindByChannel(ctx, tenantID, channelID)
}

// AssignCarrier sets the carrier on a mapping, clearing a previously
// selected service when the carrier changes
func (s *CarrierService) AssignCarrier(ctx context.Context, tenantID, mappingID, carrierID uuid.UUID) (*channel.CarrierMapping, error) {
	m, err := s.mappings.FindByID(ctx, tenantID, mappingID)
	if err != nil {
		return nil, err
	}
	if _, err := s.carriers.FindByID(ctx, tenantID, carrierID); err != nil {
		return nil, err
	}
	m.AssignCarrier(carrierID)
	if err := s.mappings.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// AssignService sets the carrier service on a mapping. Whether the service
// belongs to the selected carrier is only a picklist hint; the assignment is
// not validated here, matching the available-services filter contract.
func (s *CarrierService) AssignService(ctx context.Context, tenantID, mappingID, serviceID uuid.UUID) (*channel.CarrierMapping, error) {
	m, err := s.mappings.FindByID(ctx, tenantID, mappingID)
	if err != nil {
		return nil, err
	}
	m.AssignService(serviceID)
	if err := s.mappings.Save(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// AvailableServices returns the services of a mapping's currently selected
// carrier. It is recomputed on every call and only constrains the service
// picklist; a mapping without a carrier has no available services.
func (s *CarrierService) AvailableServices(ctx context.Context, tenantID, mappingID uuid.UUID) ([]channel.CarrierService, error) {
	m, err := s.mappings.FindByID(ctx, tenantID, mappingID)
	if err != nil {
		return nil, err
	}
	if m.CarrierID == nil {
		return []channel.CarrierService{}, nil
	}
	return s.carriers.FindServices(ctx, tenantID, *m.CarrierID)
}

// DeleteMapping removes a carrier mapping
func (s *CarrierService) DeleteMapping(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.mappings.Delete(ctx, tenantID, id)
}
