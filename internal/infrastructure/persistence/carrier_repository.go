package persistence

import (
	"context"
	"errors"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCarrierRepository implements CarrierRepository using GORM. Carriers and
// their services are owned by the host shipping module; this repository only
// reads them.
type GormCarrierRepository struct {
	db *gorm.DB
}

// NewGormCarrierRepository creates a new GormCarrierRepository
func NewGormCarrierRepository(db *gorm.DB) *GormCarrierRepository {
	return &GormCarrierRepository{db: db}
}

// FindByID finds a carrier by ID within a tenant
func (r *GormCarrierRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*channel.Carrier, error) {
	var model models.CarrierModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, channel.ErrCarrierNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindServices lists the services belonging to a carrier
func (r *GormCarrierRepository) FindServices(ctx context.Context, tenantID, carrierID uuid.UUID) ([]channel.CarrierService, error) {
	var serviceModels []models.CarrierServiceModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND carrier_id = ?", tenantID, carrierID).
		Order("name ASC").
		Find(&serviceModels).Error; err != nil {
		return nil, err
	}

	services := make([]channel.CarrierService, len(serviceModels))
	for i, model := range serviceModels {
		services[i] = model.ToDomain()
	}
	return services, nil
}

// Ensure GormCarrierRepository implements CarrierRepository
var _ channel.CarrierRepository = (*GormCarrierRepository)(nil)
