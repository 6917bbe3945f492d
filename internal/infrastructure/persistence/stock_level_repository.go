package persistence

import (
	"context"

	"github.com/erp/salechannel/internal/domain/listing"
	"github.com/erp/salechannel/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormStockReader implements listing.StockReader over the stock_levels read
// model maintained by the host inventory module.
type GormStockReader struct {
	db *gorm.DB
}

// NewGormStockReader creates a new GormStockReader
func NewGormStockReader(db *gorm.DB) *GormStockReader {
	return &GormStockReader{db: db}
}

// OnHand returns the summed on-hand quantity of a product across the given
// locations. Products with no rows sum to zero, which the bucket mode
// classifies as out of stock.
func (r *GormStockReader) OnHand(ctx context.Context, tenantID, productID uuid.UUID, locationIDs []uuid.UUID) (decimal.Decimal, error) {
	if len(locationIDs) == 0 {
		return decimal.Zero, nil
	}

	var total decimal.NullDecimal
	err := r.db.WithContext(ctx).
		Model(&models.StockLevelModel{}).
		Select("SUM(quantity)").
		Where("tenant_id = ? AND product_id = ? AND location_id IN ?", tenantID, productID, locationIDs).
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// Ensure GormStockReader implements StockReader
var _ listing.StockReader = (*GormStockReader)(nil)
