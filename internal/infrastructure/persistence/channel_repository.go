package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/erp/salechannel/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleChannelRepository implements SaleChannelRepository using GORM
type GormSaleChannelRepository struct {
	db *gorm.DB
}

// NewGormSaleChannelRepository creates a new GormSaleChannelRepository
func NewGormSaleChannelRepository(db *gorm.DB) *GormSaleChannelRepository {
	return &GormSaleChannelRepository{db: db}
}

// FindByID finds a channel by ID within a tenant
func (r *GormSaleChannelRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*channel.SaleChannel, error) {
	var model models.SaleChannelModel
	if err := r.db.WithContext(ctx).First(&model, "id = ? AND tenant_id = ?", id, tenantID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, channel.ErrChannelNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all channels for a tenant
func (r *GormSaleChannelRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]channel.SaleChannel, error) {
	var channelModels []models.SaleChannelModel
	query := applyFilter(r.db.WithContext(ctx).Model(&models.SaleChannelModel{}).Where("tenant_id = ?", tenantID), filter)
	if filter.Search != "" {
		pattern := "%" + escapeLikePattern(filter.Search) + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}
	if err := query.Find(&channelModels).Error; err != nil {
		return nil, err
	}

	channels := make([]channel.SaleChannel, len(channelModels))
	for i, model := range channelModels {
		channels[i] = *model.ToDomain()
	}
	return channels, nil
}

// FindBySource finds all channels with the given source
func (r *GormSaleChannelRepository) FindBySource(ctx context.Context, tenantID uuid.UUID, source channel.Source) ([]channel.SaleChannel, error) {
	var channelModels []models.SaleChannelModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND source = ?", tenantID, source).
		Order("name ASC").
		Find(&channelModels).Error; err != nil {
		return nil, err
	}

	channels := make([]channel.SaleChannel, len(channelModels))
	for i, model := range channelModels {
		channels[i] = *model.ToDomain()
	}
	return channels, nil
}

// Count counts channels matching the filter
func (r *GormSaleChannelRepository) Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.SaleChannelModel{}).Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		pattern := "%" + escapeLikePattern(filter.Search) + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a channel
func (r *GormSaleChannelRepository) Save(ctx context.Context, ch *channel.SaleChannel) error {
	model := models.SaleChannelModelFromDomain(ch)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a channel. The RESTRICT foreign keys on the listing tables
// make the delete fail while listings reference the channel.
func (r *GormSaleChannelRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SaleChannelModel{}, "id = ? AND tenant_id = ?", id, tenantID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrForeignKeyViolated) {
			return channel.ErrChannelInUse
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return channel.ErrChannelNotFound
	}
	return nil
}

// Ensure GormSaleChannelRepository implements SaleChannelRepository
var _ channel.SaleChannelRepository = (*GormSaleChannelRepository)(nil)

// ---------------------------------------------------------------------------
// Shared query helpers
// ---------------------------------------------------------------------------

// applyFilter applies pagination and ordering to a query
func applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at"
	}
	dir := "DESC"
	if strings.EqualFold(filter.OrderDir, "asc") {
		dir = "ASC"
	}
	return query.Order(orderBy + " " + dir)
}

// escapeLikePattern escapes special characters in LIKE patterns
func escapeLikePattern(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, "%", "\\%")
	s = strings.ReplaceAll(s, "_", "\\_")
	return s
}
