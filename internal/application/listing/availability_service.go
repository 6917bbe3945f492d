package listing

import (
	"context"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/listing"
	"github.com/google/uuid"
)

// Availability field names resolvable through GetAvailabilityFields
const (
	FieldQuantity             = "quantity"
	FieldAvailabilityUsed     = "availability_used"
	FieldAvailabilityTypeUsed = "availability_type_used"
)

// AvailabilityContextFunc returns the stock locations availability is
// computed against for a listing. The default scopes to the channel's
// warehouse; integrations may override it per service instance.
type AvailabilityContextFunc func(ch *channel.SaleChannel, l *listing.ProductListing) []uuid.UUID

// defaultAvailabilityContext scopes the stock query to the channel warehouse
func defaultAvailabilityContext(ch *channel.SaleChannel, _ *listing.ProductListing) []uuid.UUID {
	return []uuid.UUID{ch.WarehouseID}
}

// AvailabilityService computes derived stock snapshots for product listings.
// It is strictly read-only: neither listings nor stock are mutated.
type AvailabilityService struct {
	channels  channel.SaleChannelRepository
	listings  listing.ProductListingRepository
	stock     listing.StockReader
	contextFn AvailabilityContextFunc
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	channels channel.SaleChannelRepository,
	listings listing.ProductListingRepository,
	stock listing.StockReader,
) *AvailabilityService {
	return &AvailabilityService{
		channels:  channels,
		listings:  listings,
		stock:     stock,
		contextFn: defaultAvailabilityContext,
	}
}

// SetContextFunc overrides the location scoping for availability queries
func (s *AvailabilityService) SetContextFunc(fn AvailabilityContextFunc) {
	if fn != nil {
		s.contextFn = fn
	}
}

// GetAvailability returns the availability snapshot for one listing. The
// type is fixed to bucket; a listing without a linked product resolves to
// nil value and quantity.
func (s *AvailabilityService) GetAvailability(ctx context.Context, tenantID, listingID uuid.UUID) (listing.Availability, error) {
	l, err := s.listings.FindByID(ctx, tenantID, listingID)
	if err != nil {
		return listing.Availability{}, err
	}
	return s.availabilityOf(ctx, l)
}

// availabilityOf computes the snapshot for an already-loaded listing
func (s *AvailabilityService) availabilityOf(ctx context.Context, l *listing.ProductListing) (listing.Availability, error) {
	if !l.HasProduct() {
		return listing.EmptyAvailability(), nil
	}

	ch, err := s.channels.FindByID(ctx, l.TenantID, l.ChannelID)
	if err != nil {
		return listing.Availability{}, err
	}

	qty, err := s.stock.OnHand(ctx, l.TenantID, *l.ProductID, s.contextFn(ch, l))
	if err != nil {
		return listing.Availability{}, err
	}
	return listing.NewBucketAvailability(qty), nil
}

// GetAvailabilityFields resolves the requested availability fields for a set
// of listings in one call. The result maps field name -> listing ID -> value
// and is pre-populated with nil for every listing and every requested name,
// so sparse results never require existence checks downstream.
func (s *AvailabilityService) GetAvailabilityFields(ctx context.Context, tenantID uuid.UUID, listingIDs []uuid.UUID, names []string) (map[string]map[uuid.UUID]any, error) {
	values := make(map[string]map[uuid.UUID]any, len(names))
	for _, name := range names {
		byListing := make(map[uuid.UUID]any, len(listingIDs))
		for _, id := range listingIDs {
			byListing[id] = nil
		}
		values[name] = byListing
	}

	listings, err := s.listings.FindByIDs(ctx, tenantID, listingIDs)
	if err != nil {
		return nil, err
	}

	requested := make(map[string]bool, len(names))
	for _, name := range names {
		requested[name] = true
	}

	for i := range listings {
		l := &listings[i]
		if !l.HasProduct() {
			continue
		}
		av, err := s.availabilityOf(ctx, l)
		if err != nil {
			return nil, err
		}
		if requested[FieldAvailabilityTypeUsed] {
			values[FieldAvailabilityTypeUsed][l.ID] = av.Type
		}
		if requested[FieldAvailabilityUsed] && av.Value != nil {
			values[FieldAvailabilityUsed][l.ID] = *av.Value
		}
		if requested[FieldQuantity] && av.Quantity != nil {
			values[FieldQuantity][l.ID] = *av.Quantity
		}
	}

	return values, nil
}
