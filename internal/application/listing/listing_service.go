package listing

import (
	"context"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/listing"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/google/uuid"
)

// ListingService manages party, template and product channel listings.
// Uniqueness of (channel, identifier, entity) is left to the database
// constraints; a losing concurrent insert surfaces as ErrListingDuplicate.
type ListingService struct {
	channels        channel.SaleChannelRepository
	partyListings   listing.PartyListingRepository
	templates       listing.TemplateListingRepository
	productListings listing.ProductListingRepository
}

// NewListingService creates a new listing service
func NewListingService(
	channels channel.SaleChannelRepository,
	partyListings listing.PartyListingRepository,
	templates listing.TemplateListingRepository,
	productListings listing.ProductListingRepository,
) *ListingService {
	return &ListingService{
		channels:        channels,
		partyListings:   partyListings,
		templates:       templates,
		productListings: productListings,
	}
}

// ---------------------------------------------------------------------------
// Party listings
// ---------------------------------------------------------------------------

// CreatePartyListing links a party to a channel under an external contact
// identifier
func (s *ListingService) CreatePartyListing(ctx context.Context, tenantID, channelID, partyID uuid.UUID, contactIdentifier string) (*listing.PartyListing, error) {
	ch, err := s.channels.FindByID(ctx, tenantID, channelID)
	if err != nil {
		return nil, err
	}

	l, err := listing.NewPartyListing(tenantID, ch, partyID, contactIdentifier)
	if err != nil {
		return nil, err
	}
	if err := s.partyListings.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListPartyListings lists a party's channel listings
func (s *ListingService) ListPartyListings(ctx context.Context, tenantID, partyID uuid.UUID) ([]listing.PartyListing, error) {
	return s.partyListings.FindByParty(ctx, tenantID, partyID)
}

// DeletePartyListing removes one party listing
func (s *ListingService) DeletePartyListing(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.partyListings.Delete(ctx, tenantID, id)
}

// ---------------------------------------------------------------------------
// Template listings
// ---------------------------------------------------------------------------

// CreateTemplateListing links a product template to a channel
func (s *ListingService) CreateTemplateListing(ctx context.Context, tenantID, channelID, templateID uuid.UUID, templateIdentifier string) (*listing.TemplateListing, error) {
	ch, err := s.channels.FindByID(ctx, tenantID, channelID)
	if err != nil {
		return nil, err
	}

	l, err := listing.NewTemplateListing(tenantID, ch, templateID, templateIdentifier)
	if err != nil {
		return nil, err
	}
	if err := s.templates.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// ListTemplateListings lists a template's channel listings
func (s *ListingService) ListTemplateListings(ctx context.Context, tenantID, templateID uuid.UUID) ([]listing.TemplateListing, error) {
	return s.templates.FindByTemplate(ctx, tenantID, templateID)
}

// DeleteTemplateListing removes one template listing
func (s *ListingService) DeleteTemplateListing(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.templates.Delete(ctx, tenantID, id)
}

// ---------------------------------------------------------------------------
// Product listings
// ---------------------------------------------------------------------------

// CreateProductListing lists a product on a channel. productID may be nil
// only for disabled placeholder listings.
func (s *ListingService) CreateProductListing(ctx context.Context, tenantID, channelID uuid.UUID, productID *uuid.UUID, productIdentifier string, state listing.ListingState) (*listing.ProductListing, error) {
	ch, err := s.channels.FindByID(ctx, tenantID, channelID)
	if err != nil {
		return nil, err
	}

	l, err := listing.NewProductListing(tenantID, ch, productID, productIdentifier, state)
	if err != nil {
		return nil, err
	}
	if err := s.productListings.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// GetProductListing retrieves one product listing
func (s *ListingService) GetProductListing(ctx context.Context, tenantID, id uuid.UUID) (*listing.ProductListing, error) {
	return s.productListings.FindByID(ctx, tenantID, id)
}

// ListProductListings lists a channel's product listings with pagination
func (s *ListingService) ListProductListings(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) ([]listing.ProductListing, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	listings, err := s.productListings.FindByChannel(ctx, tenantID, channelID, filter)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.productListings.Count(ctx, tenantID, channelID, filter)
	if err != nil {
		return nil, 0, err
	}
	return listings, count, nil
}

// ActivateProductListing transitions a listing to the active state. Fails
// with ErrProductRequired when the listing has no product reference.
func (s *ListingService) ActivateProductListing(ctx context.Context, tenantID, id uuid.UUID) (*listing.ProductListing, error) {
	l, err := s.productListings.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := l.Activate(); err != nil {
		return nil, err
	}
	if err := s.productListings.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// DisableProductListing transitions a listing to the disabled state
func (s *ListingService) DisableProductListing(ctx context.Context, tenantID, id uuid.UUID) (*listing.ProductListing, error) {
	l, err := s.productListings.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	l.Disable()
	if err := s.productListings.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// LinkProduct attaches a concrete product to a placeholder listing
func (s *ListingService) LinkProduct(ctx context.Context, tenantID, id, productID uuid.UUID) (*listing.ProductListing, error) {
	l, err := s.productListings.FindByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	if err := l.LinkProduct(productID); err != nil {
		return nil, err
	}
	if err := s.productListings.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// DeleteProductListing removes one product listing
func (s *ListingService) DeleteProductListing(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.productListings.Delete(ctx, tenantID, id)
}
