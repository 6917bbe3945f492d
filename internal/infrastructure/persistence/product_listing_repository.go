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

// GormProductListingRepository implements ProductListingRepository using GORM
type GormProductListingRepository struct {
	db *gorm.DB
}

// NewGormProductListingRepository creates a new GormProductListingRepository
func NewGormProductListingRepository(db *gorm.DB) *GormProductListingRepository {
	return &GormProductListingRepository{db: db}
}

// FindByID finds a listing by ID within a tenant
func (r *GormProductListingRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*listing.ProductListing, error) {
	var model models.ProductListingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, listing.ErrProductListingNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIDs finds listings by a set of IDs within a tenant
func (r *GormProductListingRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]listing.ProductListing, error) {
	if len(ids) == 0 {
		return []listing.ProductListing{}, nil
	}

	var listingModels []models.ProductListingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&listingModels).Error; err != nil {
		return nil, err
	}
	return toDomainProductListings(listingModels), nil
}

// FindByProduct finds all listings for a product
func (r *GormProductListingRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]listing.ProductListing, error) {
	var listingModels []models.ProductListingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, err
	}
	return toDomainProductListings(listingModels), nil
}

// FindByChannel finds a channel's listings with pagination
func (r *GormProductListingRepository) FindByChannel(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) ([]listing.ProductListing, error) {
	var listingModels []models.ProductListingModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.ProductListingModel{}).
			Where("tenant_id = ? AND channel_id = ?", tenantID, channelID),
		filter,
	)
	if filter.Search != "" {
		query = query.Where("product_identifier ILIKE ?", "%"+escapeLikePattern(filter.Search)+"%")
	}
	if err := query.Find(&listingModels).Error; err != nil {
		return nil, err
	}
	return toDomainProductListings(listingModels), nil
}

// FindByChannelAndIdentifier finds the listing for an external product
// identifier on a channel
func (r *GormProductListingRepository) FindByChannelAndIdentifier(ctx context.Context, tenantID, channelID uuid.UUID, productIdentifier string) (*listing.ProductListing, error) {
	var model models.ProductListingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND channel_id = ? AND product_identifier = ?", tenantID, channelID, productIdentifier).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, listing.ErrProductListingNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Count counts a channel's listings matching the filter
func (r *GormProductListingRepository) Count(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.ProductListingModel{}).
		Where("tenant_id = ? AND channel_id = ?", tenantID, channelID)
	if filter.Search != "" {
		query = query.Where("product_identifier ILIKE ?", "%"+escapeLikePattern(filter.Search)+"%")
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a listing. A duplicate (channel, identifier)
// insert loses against the unique constraint and surfaces as
// ErrListingDuplicate.
func (r *GormProductListingRepository) Save(ctx context.Context, l *listing.ProductListing) error {
	model := models.ProductListingModelFromDomain(l)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return listing.ErrListingDuplicate
		}
		return err
	}
	return nil
}

// Delete deletes a listing
func (r *GormProductListingRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductListingModel{}, "id = ? AND tenant_id = ?", id, tenantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return listing.ErrProductListingNotFound
	}
	return nil
}

// DeleteByProduct cascades listing removal when the product is deleted
func (r *GormProductListingRepository) DeleteByProduct(ctx context.Context, tenantID, productID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.ProductListingModel{}, "tenant_id = ? AND product_id = ?", tenantID, productID).Error
}

// toDomainProductListings converts persistence models to domain entities
func toDomainProductListings(listingModels []models.ProductListingModel) []listing.ProductListing {
	listings := make([]listing.ProductListing, len(listingModels))
	for i, model := range listingModels {
		listings[i] = *model.ToDomain()
	}
	return listings
}

// Ensure GormProductListingRepository implements ProductListingRepository
var _ listing.ProductListingRepository = (*GormProductListingRepository)(nil)
