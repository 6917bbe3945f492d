package persistence

import (
	"context"
	"errors"

	"github.com/erp/salechannel/internal/domain/listing"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/erp/salechannel/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormPartyListingRepository implements PartyListingRepository using GORM
type GormPartyListingRepository struct {
	db *gorm.DB
}

// NewGormPartyListingRepository creates a new GormPartyListingRepository
func NewGormPartyListingRepository(db *gorm.DB) *GormPartyListingRepository {
	return &GormPartyListingRepository{db: db}
}

// FindByID finds a listing by ID within a tenant
func (r *GormPartyListingRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*listing.PartyListing, error) {
	var model models.PartyListingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, listing.ErrListingNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByParty finds all channel listings of a party
func (r *GormPartyListingRepository) FindByParty(ctx context.Context, tenantID, partyID uuid.UUID) ([]listing.PartyListing, error) {
	var listingModels []models.PartyListingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND party_id = ?", tenantID, partyID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]listing.PartyListing, len(listingModels))
	for i, model := range listingModels {
		listings[i] = *model.ToDomain()
	}
	return listings, nil
}

// FindByChannel finds a channel's party listings with pagination
func (r *GormPartyListingRepository) FindByChannel(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) ([]listing.PartyListing, error) {
	var listingModels []models.PartyListingModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.PartyListingModel{}).
			Where("tenant_id = ? AND channel_id = ?", tenantID, channelID),
		filter,
	)
	if err := query.Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]listing.PartyListing, len(listingModels))
	for i, model := range listingModels {
		listings[i] = *model.ToDomain()
	}
	return listings, nil
}

// Save creates or updates a listing, surfacing uniqueness violations as
// ErrListingDuplicate
func (r *GormPartyListingRepository) Save(ctx context.Context, l *listing.PartyListing) error {
	model := models.PartyListingModelFromDomain(l)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return listing.ErrListingDuplicate
		}
		return err
	}
	return nil
}

// Delete deletes a listing
func (r *GormPartyListingRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.PartyListingModel{}, "id = ? AND tenant_id = ?", id, tenantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return listing.ErrListingNotFound
	}
	return nil
}

// DeleteByParty cascades listing removal when the party is deleted
func (r *GormPartyListingRepository) DeleteByParty(ctx context.Context, tenantID, partyID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.PartyListingModel{}, "tenant_id = ? AND party_id = ?", tenantID, partyID).Error
}

// Ensure GormPartyListingRepository implements PartyListingRepository
var _ listing.PartyListingRepository = (*GormPartyListingRepository)(nil)
