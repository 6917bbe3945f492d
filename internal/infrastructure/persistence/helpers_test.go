package persistence

import (
	"testing"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an isolated in-memory SQLite database with the full
// schema. TranslateError is on so constraint violations map to GORM's
// sentinel errors the same way they do against Postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.SaleChannelModel{},
		&models.CarrierModel{},
		&models.CarrierServiceModel{},
		&models.CarrierMappingModel{},
		&models.PartyListingModel{},
		&models.TemplateListingModel{},
		&models.ProductListingModel{},
		&models.StockLevelModel{},
	))
	return db
}

// seedChannel persists a channel and returns it
func seedChannel(t *testing.T, db *gorm.DB, tenantID uuid.UUID, source channel.Source) *channel.SaleChannel {
	t.Helper()

	ch, err := channel.NewSaleChannel(tenantID, "Channel "+uuid.NewString()[:8], "code", source, uuid.New())
	require.NoError(t, err)
	require.NoError(t, db.Create(models.SaleChannelModelFromDomain(ch)).Error)
	return ch
}
