package persistence

import (
	"context"
	"errors"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCarrierMappingRepository implements CarrierMappingRepository using GORM
type GormCarrierMappingRepository struct {
	db *gorm.DB
}

// NewGormCarrierMappingRepository creates a new GormCarrierMappingRepository
func NewGormCarrierMappingRepository(db *gorm.DB) *GormCarrierMappingRepository {
	return &GormCarrierMappingRepository{db: db}
}

// FindByID finds a mapping by ID within a tenant
func (r *GormCarrierMappingRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*channel.CarrierMapping, error) {
	var model models.CarrierMappingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, channel.ErrCarrierMappingNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByChannel lists mappings for a channel
func (r *GormCarrierMappingRepository) FindByChannel(ctx context.Context, tenantID, channelID uuid.UUID) ([]channel.CarrierMapping, error) {
	var mappingModels []models.CarrierMappingModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND channel_id = ?", tenantID, channelID).
		Order("name ASC").
		Find(&mappingModels).Error; err != nil {
		return nil, err
	}

	mappings := make([]channel.CarrierMapping, len(mappingModels))
	for i, model := range mappingModels {
		mappings[i] = *model.ToDomain()
	}
	return mappings, nil
}

// Save creates or updates a mapping
func (r *GormCarrierMappingRepository) Save(ctx context.Context, mapping *channel.CarrierMapping) error {
	model := models.CarrierMappingModelFromDomain(mapping)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a mapping
func (r *GormCarrierMappingRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CarrierMappingModel{}, "id = ? AND tenant_id = ?", id, tenantID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return channel.ErrCarrierMappingNotFound
	}
	return nil
}

// Ensure GormCarrierMappingRepository implements CarrierMappingRepository
var _ channel.CarrierMappingRepository = (*GormCarrierMappingRepository)(nil)
