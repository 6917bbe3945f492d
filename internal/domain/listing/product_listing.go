package listing

import (
	"context"
	"errors"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/google/uuid"
)

var (
	ErrProductListingNotFound = errors.New("listing: product listing not found")

	// ErrProductRequired is returned when an active listing has no product
	// reference. Disabled listings may be product-less placeholders, for
	// example freshly imported external products not yet matched locally.
	ErrProductRequired = errors.New("listing: active listing requires a product")

	ErrInvalidListingState = errors.New("listing: invalid listing state")
)

// ---------------------------------------------------------------------------
// ListingState
// ---------------------------------------------------------------------------

// ListingState is the lifecycle state of a product channel listing
type ListingState string

const (
	// ListingStateActive means the listing is live on the channel and must
	// reference a concrete product
	ListingStateActive ListingState = "active"
	// ListingStateDisabled means the listing is switched off; a disabled
	// listing may exist without a product reference
	ListingStateDisabled ListingState = "disabled"
)

// IsValid returns true if the state is a known listing state
func (s ListingState) IsValid() bool {
	return s == ListingStateActive || s == ListingStateDisabled
}

// String returns the string representation of the state
func (s ListingState) String() string {
	return string(s)
}

// ---------------------------------------------------------------------------
// ProductListing Entity
// ---------------------------------------------------------------------------

// ProductListing records a product variant's association with a sale channel.
// A product can be listed on multiple marketplaces. The pair
// (channel, product_identifier) is unique per tenant; unlike party and
// template listings the local product is not part of the uniqueness key.
type ProductListing struct {
	shared.BaseEntity
	TenantID          uuid.UUID
	ChannelID         uuid.UUID
	ProductID         *uuid.UUID
	ProductIdentifier string
	State             ListingState
}

// NewProductListing creates a new product channel listing in the active
// state. productID may be nil only when the initial state is disabled.
func NewProductListing(tenantID uuid.UUID, ch *channel.SaleChannel, productID *uuid.UUID, productIdentifier string, state ListingState) (*ProductListing, error) {
	if tenantID == uuid.Nil {
		return nil, ErrListingInvalidTenantID
	}
	if ch == nil {
		return nil, ErrListingInvalidChannel
	}
	if ch.Source.IsManual() {
		return nil, ErrListingManualChannel
	}
	if productIdentifier == "" {
		return nil, ErrListingInvalidIdentifier
	}
	if state == "" {
		state = ListingStateActive
	}
	if !state.IsValid() {
		return nil, ErrInvalidListingState
	}

	l := &ProductListing{
		BaseEntity:        shared.NewBaseEntity(),
		TenantID:          tenantID,
		ChannelID:         ch.ID,
		ProductID:         productID,
		ProductIdentifier: productIdentifier,
		State:             state,
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

// Validate validates the listing, including the active-requires-product rule
func (l *ProductListing) Validate() error {
	if l.TenantID == uuid.Nil {
		return ErrListingInvalidTenantID
	}
	if l.ChannelID == uuid.Nil {
		return ErrListingInvalidChannel
	}
	if l.ProductIdentifier == "" {
		return ErrListingInvalidIdentifier
	}
	if !l.State.IsValid() {
		return ErrInvalidListingState
	}
	if l.State == ListingStateActive && (l.ProductID == nil || *l.ProductID == uuid.Nil) {
		return ErrProductRequired
	}
	return nil
}

// HasProduct returns true when the listing references a concrete product
func (l *ProductListing) HasProduct() bool {
	return l.ProductID != nil && *l.ProductID != uuid.Nil
}

// Activate transitions the listing to the active state. Fails when no
// product is linked.
func (l *ProductListing) Activate() error {
	if !l.HasProduct() {
		return ErrProductRequired
	}
	l.State = ListingStateActive
	l.Touch()
	return nil
}

// Disable transitions the listing to the disabled state
func (l *ProductListing) Disable() {
	l.State = ListingStateDisabled
	l.Touch()
}

// LinkProduct attaches a concrete product to the listing
func (l *ProductListing) LinkProduct(productID uuid.UUID) error {
	if productID == uuid.Nil {
		return ErrListingInvalidEntity
	}
	l.ProductID = &productID
	l.Touch()
	return nil
}

// ---------------------------------------------------------------------------
// ProductListingRepository Interface
// ---------------------------------------------------------------------------

// ProductListingRepository persists product channel listings. Save must
// surface a duplicate (channel, product_identifier) insert as
// ErrListingDuplicate.
type ProductListingRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*ProductListing, error)
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]ProductListing, error)
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]ProductListing, error)
	FindByChannel(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) ([]ProductListing, error)
	FindByChannelAndIdentifier(ctx context.Context, tenantID, channelID uuid.UUID, productIdentifier string) (*ProductListing, error)
	Count(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) (int64, error)
	Save(ctx context.Context, l *ProductListing) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	// DeleteByProduct cascades listing removal when the product is deleted
	DeleteByProduct(ctx context.Context, tenantID, productID uuid.UUID) error
}
