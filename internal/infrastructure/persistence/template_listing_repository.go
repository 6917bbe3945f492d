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

// GormTemplateListingRepository implements TemplateListingRepository using GORM
type GormTemplateListingRepository struct {
	db *gorm.DB
}

// NewGormTemplateListingRepository creates a new GormTemplateListingRepository
func NewGormTemplateListingRepository(db *gorm.DB) *GormTemplateListingRepository {
	return &GormTemplateListingRepository{db: db}
}

// FindByID finds a listing by ID within a tenant
func (r *GormTemplateListingRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*listing.TemplateListing, error) {
	var model models.TemplateListingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, listing.ErrListingNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTemplate finds all channel listings of a product template
func (r *GormTemplateListingRepository) FindByTemplate(ctx context.Context, tenantID, templateID uuid.UUID) ([]listing.TemplateListing, error) {
	var listingModels []models.TemplateListingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND template_id = ?", tenantID, templateID).
		Order("created_at DESC").
		Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]listing.TemplateListing, len(listingModels))
	for i, model := range listingModels {
		listings[i] = *model.ToDomain()
	}
	return listings, nil
}

// FindByChannel finds a channel's template listings with pagination
func (r *GormTemplateListingRepository) FindByChannel(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) ([]listing.TemplateListing, error) {
	var listingModels []models.TemplateListingModel
	query := applyFilter(
		r.db.WithContext(ctx).Model(&models.TemplateListingModel{}).
			Where("tenant_id = ? AND channel_id = ?", tenantID, channelID),
		filter,
	)
	if err := query.Find(&listingModels).Error; err != nil {
		return nil, err
	}

	listings := make([]listing.TemplateListing, len(listingModels))
	for i, model := range listingModels {
		listings[i] = *model.ToDomain()
	}
	return listings, nil
}

// Save creates or updates a listing, surfacing uniqueness violations as
// ErrListingDuplicate
func (r *GormTemplateListingRepository) Save(ctx context.Context, l *listing.TemplateListing) error {
	model := models.TemplateListingModelFromDomain(l)
	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return listing.ErrListingDuplicate
		}
		return err
	}
	return nil
}

// Delete deletes a listing
func (r *GormTemplateListingRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TemplateListingModel{}, "id = ? AND tenant_id = ?", id, tenantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return listing.ErrListingNotFound
	}
	return nil
}

// DeleteByTemplate cascades listing removal when the template is deleted
func (r *GormTemplateListingRepository) DeleteByTemplate(ctx context.Context, tenantID, templateID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.TemplateListingModel{}, "tenant_id = ? AND template_id = ?", tenantID, templateID).Error
}

// Ensure GormTemplateListingRepository implements TemplateListingRepository
var _ listing.TemplateListingRepository = (*GormTemplateListingRepository)(nil)
