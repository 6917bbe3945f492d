package models

import (
	"time"

	"github.com/erp/salechannel/internal/domain/listing"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartyListingModel is the persistence model for party channel listings.
// The composite unique index backs the (channel, identifier, party)
// invariant; racing inserts lose with a constraint violation.
type PartyListingModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID          uuid.UUID `gorm:"type:uuid;not null;index:idx_party_listing_tenant;uniqueIndex:uq_party_listing,priority:1"`
	ChannelID         uuid.UUID `gorm:"type:uuid;not null;index:idx_party_listing_channel;uniqueIndex:uq_party_listing,priority:2"`
	PartyID           uuid.UUID `gorm:"type:uuid;not null;index:idx_party_listing_party;uniqueIndex:uq_party_listing,priority:4"`
	ContactIdentifier string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_party_listing,priority:3"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PartyListingModel) TableName() string {
	return "party_channel_listings"
}

// ToDomain converts the persistence model to a domain PartyListing entity
func (m *PartyListingModel) ToDomain() *listing.PartyListing {
	return &listing.PartyListing{
		BaseEntity:        shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		TenantID:          m.TenantID,
		ChannelID:         m.ChannelID,
		PartyID:           m.PartyID,
		ContactIdentifier: m.ContactIdentifier,
	}
}

// PartyListingModelFromDomain creates a persistence model from a domain entity
func PartyListingModelFromDomain(l *listing.PartyListing) *PartyListingModel {
	return &PartyListingModel{
		ID:                l.ID,
		TenantID:          l.TenantID,
		ChannelID:         l.ChannelID,
		PartyID:           l.PartyID,
		ContactIdentifier: l.ContactIdentifier,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// TemplateListingModel is the persistence model for template channel listings
type TemplateListingModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	TenantID           uuid.UUID `gorm:"type:uuid;not null;index:idx_template_listing_tenant;uniqueIndex:uq_template_listing,priority:1"`
	ChannelID          uuid.UUID `gorm:"type:uuid;not null;index:idx_template_listing_channel;uniqueIndex:uq_template_listing,priority:2"`
	TemplateID         uuid.UUID `gorm:"type:uuid;not null;index:idx_template_listing_template;uniqueIndex:uq_template_listing,priority:4"`
	TemplateIdentifier string    `gorm:"type:varchar(255);not null;uniqueIndex:uq_template_listing,priority:3"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (TemplateListingModel) TableName() string {
	return "template_channel_listings"
}

// ToDomain converts the persistence model to a domain TemplateListing entity
func (m *TemplateListingModel) ToDomain() *listing.TemplateListing {
	return &listing.TemplateListing{
		BaseEntity:         shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		TenantID:           m.TenantID,
		ChannelID:          m.ChannelID,
		TemplateID:         m.TemplateID,
		TemplateIdentifier: m.TemplateIdentifier,
	}
}

// TemplateListingModelFromDomain creates a persistence model from a domain entity
func TemplateListingModelFromDomain(l *listing.TemplateListing) *TemplateListingModel {
	return &TemplateListingModel{
		ID:                 l.ID,
		TenantID:           l.TenantID,
		ChannelID:          l.ChannelID,
		TemplateID:         l.TemplateID,
		TemplateIdentifier: l.TemplateIdentifier,
		CreatedAt:          l.CreatedAt,
		UpdatedAt:          l.UpdatedAt,
	}
}

// ProductListingModel is the persistence model for product channel listings.
// Unlike the party/template listings the product is not part of the unique
// key: one external product identifier maps to at most one listing per
// channel. ProductID is nullable so disabled placeholder listings can exist
// without a product.
type ProductListingModel struct {
	ID                uuid.UUID            `gorm:"type:uuid;primary_key"`
	TenantID          uuid.UUID            `gorm:"type:uuid;not null;index:idx_product_listing_tenant;uniqueIndex:uq_product_listing,priority:1"`
	ChannelID         uuid.UUID            `gorm:"type:uuid;not null;index:idx_product_listing_channel;uniqueIndex:uq_product_listing,priority:2"`
	ProductID         *uuid.UUID           `gorm:"type:uuid;index:idx_product_listing_product"`
	ProductIdentifier string               `gorm:"type:varchar(255);not null;uniqueIndex:uq_product_listing,priority:3"`
	State             listing.ListingState `gorm:"type:varchar(16);not null;default:'active';index:idx_product_listing_state"`
	CreatedAt         time.Time            `gorm:"not null"`
	UpdatedAt         time.Time            `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductListingModel) TableName() string {
	return "product_channel_listings"
}

// ToDomain converts the persistence model to a domain ProductListing entity
func (m *ProductListingModel) ToDomain() *listing.ProductListing {
	return &listing.ProductListing{
		BaseEntity:        shared.BaseEntity{ID: m.ID, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt},
		TenantID:          m.TenantID,
		ChannelID:         m.ChannelID,
		ProductID:         m.ProductID,
		ProductIdentifier: m.ProductIdentifier,
		State:             m.State,
	}
}

// ProductListingModelFromDomain creates a persistence model from a domain entity
func ProductListingModelFromDomain(l *listing.ProductListing) *ProductListingModel {
	return &ProductListingModel{
		ID:                l.ID,
		TenantID:          l.TenantID,
		ChannelID:         l.ChannelID,
		ProductID:         l.ProductID,
		ProductIdentifier: l.ProductIdentifier,
		State:             l.State,
		CreatedAt:         l.CreatedAt,
		UpdatedAt:         l.UpdatedAt,
	}
}

// StockLevelModel is the read model for on-hand product quantities per stock
// location. This module only ever reads it.
type StockLevelModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key"`
	TenantID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_stock_level_tenant"`
	ProductID  uuid.UUID       `gorm:"type:uuid;not null;index:idx_stock_level_product"`
	LocationID uuid.UUID       `gorm:"type:uuid;not null;index:idx_stock_level_location"`
	Quantity   decimal.Decimal `gorm:"type:numeric(16,4);not null"`
	UpdatedAt  time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (StockLevelModel) TableName() string {
	return "stock_levels"
}
