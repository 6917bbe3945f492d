package listing

import (
	"context"
	"errors"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// Listing Errors
// ---------------------------------------------------------------------------

var (
	ErrListingInvalidTenantID   = errors.New("listing: invalid tenant ID")
	ErrListingInvalidChannel    = errors.New("listing: invalid channel ID")
	ErrListingInvalidEntity     = errors.New("listing: invalid local entity ID")
	ErrListingInvalidIdentifier = errors.New("listing: external identifier is required")
	ErrListingManualChannel     = errors.New("listing: manual channels cannot carry listings")
	ErrListingNotFound          = errors.New("listing: listing not found")

	// ErrListingDuplicate surfaces the database uniqueness constraint on
	// (channel, identifier, entity). It is never retried.
	ErrListingDuplicate = errors.New("listing: entity is already mapped to this channel with the same identifier")
)

// ---------------------------------------------------------------------------
// PartyListing Entity
// ---------------------------------------------------------------------------

// PartyListing records a contact's association with a sale channel under an
// external contact identifier. The triple (channel, identifier, party) is
// unique per tenant.
type PartyListing struct {
	shared.BaseEntity
	TenantID          uuid.UUID
	ChannelID         uuid.UUID
	PartyID           uuid.UUID
	ContactIdentifier string
}

// NewPartyListing creates a new party channel listing. The channel is passed
// as an entity so the manual-source restriction can be checked at creation.
func NewPartyListing(tenantID uuid.UUID, ch *channel.SaleChannel, partyID uuid.UUID, contactIdentifier string) (*PartyListing, error) {
	if tenantID == uuid.Nil {
		return nil, ErrListingInvalidTenantID
	}
	if ch == nil {
		return nil, ErrListingInvalidChannel
	}
	if ch.Source.IsManual() {
		return nil, ErrListingManualChannel
	}
	if partyID == uuid.Nil {
		return nil, ErrListingInvalidEntity
	}
	if contactIdentifier == "" {
		return nil, ErrListingInvalidIdentifier
	}

	return &PartyListing{
		BaseEntity:        shared.NewBaseEntity(),
		TenantID:          tenantID,
		ChannelID:         ch.ID,
		PartyID:           partyID,
		ContactIdentifier: contactIdentifier,
	}, nil
}

// ---------------------------------------------------------------------------
// TemplateListing Entity
// ---------------------------------------------------------------------------

// TemplateListing records a product template's association with a sale
// channel. The triple (channel, identifier, template) is unique per tenant.
type TemplateListing struct {
	shared.BaseEntity
	TenantID           uuid.UUID
	ChannelID          uuid.UUID
	TemplateID         uuid.UUID
	TemplateIdentifier string
}

// NewTemplateListing creates a new template channel listing
func NewTemplateListing(tenantID uuid.UUID, ch *channel.SaleChannel, templateID uuid.UUID, templateIdentifier string) (*TemplateListing, error) {
	if tenantID == uuid.Nil {
		return nil, ErrListingInvalidTenantID
	}
	if ch == nil {
		return nil, ErrListingInvalidChannel
	}
	if ch.Source.IsManual() {
		return nil, ErrListingManualChannel
	}
	if templateID == uuid.Nil {
		return nil, ErrListingInvalidEntity
	}
	if templateIdentifier == "" {
		return nil, ErrListingInvalidIdentifier
	}

	return &TemplateListing{
		BaseEntity:         shared.NewBaseEntity(),
		TenantID:           tenantID,
		ChannelID:          ch.ID,
		TemplateID:         templateID,
		TemplateIdentifier: templateIdentifier,
	}, nil
}

// ---------------------------------------------------------------------------
// Repository Interfaces
// ---------------------------------------------------------------------------

// PartyListingRepository persists party channel listings. Save must surface a
// duplicate (channel, identifier, party) insert as ErrListingDuplicate.
type PartyListingRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*PartyListing, error)
	FindByParty(ctx context.Context, tenantID, partyID uuid.UUID) ([]PartyListing, error)
	FindByChannel(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) ([]PartyListing, error)
	Save(ctx context.Context, l *PartyListing) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	// DeleteByParty cascades listing removal when the party is deleted
	DeleteByParty(ctx context.Context, tenantID, partyID uuid.UUID) error
}

// TemplateListingRepository persists template channel listings
type TemplateListingRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*TemplateListing, error)
	FindByTemplate(ctx context.Context, tenantID, templateID uuid.UUID) ([]TemplateListing, error)
	FindByChannel(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) ([]TemplateListing, error)
	Save(ctx context.Context, l *TemplateListing) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	DeleteByTemplate(ctx context.Context, tenantID, templateID uuid.UUID) error
}
