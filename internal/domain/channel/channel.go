package channel

import (
	"context"
	"errors"

	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// SaleChannel Errors
// ---------------------------------------------------------------------------

var (
	ErrChannelInvalidTenantID  = errors.New("channel: invalid tenant ID")
	ErrChannelInvalidName      = errors.New("channel: name is required")
	ErrChannelInvalidSource    = errors.New("channel: source is required")
	ErrChannelInvalidWarehouse = errors.New("channel: invalid warehouse ID")
	ErrChannelNotFound         = errors.New("channel: sale channel not found")
	ErrChannelInUse            = errors.New("channel: sale channel is referenced by listings")
)

// ---------------------------------------------------------------------------
// Source
// ---------------------------------------------------------------------------

// Source is the type tag identifying which concrete channel integration
// governs a channel's behavior. Downstream integrations define their own
// source values; "manual" is the built-in source for channels with no
// external counterpart.
type Source string

// SourceManual is the built-in source for manually managed channels.
// Manual channels cannot carry listings.
const SourceManual Source = "manual"

// IsManual returns true for the built-in manual source
func (s Source) IsManual() bool {
	return s == SourceManual
}

// String returns the string representation of the source
func (s Source) String() string {
	return string(s)
}

// ---------------------------------------------------------------------------
// SaleChannel Entity
// ---------------------------------------------------------------------------

// SaleChannel represents an external sales venue (e.g. a marketplace)
// configured once and referenced by many listings. The warehouse scopes
// availability computation for the channel's product listings.
type SaleChannel struct {
	shared.BaseEntity
	TenantID    uuid.UUID
	Name        string
	Code        string
	Source      Source
	WarehouseID uuid.UUID
}

// NewSaleChannel creates a new sale channel
func NewSaleChannel(tenantID uuid.UUID, name, code string, source Source, warehouseID uuid.UUID) (*SaleChannel, error) {
	if tenantID == uuid.Nil {
		return nil, ErrChannelInvalidTenantID
	}
	if name == "" {
		return nil, ErrChannelInvalidName
	}
	if source == "" {
		return nil, ErrChannelInvalidSource
	}
	if warehouseID == uuid.Nil {
		return nil, ErrChannelInvalidWarehouse
	}

	return &SaleChannel{
		BaseEntity:  shared.NewBaseEntity(),
		TenantID:    tenantID,
		Name:        name,
		Code:        code,
		Source:      source,
		WarehouseID: warehouseID,
	}, nil
}

// Validate validates the sale channel
func (c *SaleChannel) Validate() error {
	if c.TenantID == uuid.Nil {
		return ErrChannelInvalidTenantID
	}
	if c.Name == "" {
		return ErrChannelInvalidName
	}
	if c.Source == "" {
		return ErrChannelInvalidSource
	}
	if c.WarehouseID == uuid.Nil {
		return ErrChannelInvalidWarehouse
	}
	return nil
}

// ---------------------------------------------------------------------------
// SaleChannelRepository Interface
// ---------------------------------------------------------------------------

// SaleChannelRepository defines the interface for sale channel persistence.
// Deleting a channel that is still referenced by listings must fail with
// ErrChannelInUse; the restriction is enforced by the database.
type SaleChannelRepository interface {
	// FindByID finds a channel by ID within a tenant
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*SaleChannel, error)

	// FindAll finds all channels for a tenant
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]SaleChannel, error)

	// FindBySource finds all channels with the given source
	FindBySource(ctx context.Context, tenantID uuid.UUID, source Source) ([]SaleChannel, error)

	// Count counts channels matching the filter
	Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)

	// Save creates or updates a channel
	Save(ctx context.Context, channel *SaleChannel) error

	// Delete deletes a channel; fails with ErrChannelInUse while listings
	// reference it
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
}
