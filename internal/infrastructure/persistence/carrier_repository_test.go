package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCarrier(t *testing.T, db *gorm.DB, tenantID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, db.Create(&models.CarrierModel{
		ID:        id,
		TenantID:  tenantID,
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}).Error)
	return id
}

func seedCarrierService(t *testing.T, db *gorm.DB, tenantID, carrierID uuid.UUID, name, code string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	require.NoError(t, db.Create(&models.CarrierServiceModel{
		ID:        id,
		TenantID:  tenantID,
		CarrierID: carrierID,
		Name:      name,
		Code:      code,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}).Error)
	return id
}

func TestGormCarrierRepository(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("FindByID resolves a carrier", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCarrierRepository(db)

		id := seedCarrier(t, db, tenantID, "DHL")

		got, err := repo.FindByID(ctx, tenantID, id)
		require.NoError(t, err)
		assert.Equal(t, "DHL", got.Name)

		_, err = repo.FindByID(ctx, tenantID, uuid.New())
		assert.ErrorIs(t, err, channel.ErrCarrierNotFound)
	})

	t.Run("FindServices lists a carrier's services sorted by name", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCarrierRepository(db)

		carrierID := seedCarrier(t, db, tenantID, "DHL")
		other := seedCarrier(t, db, tenantID, "UPS")
		seedCarrierService(t, db, tenantID, carrierID, "Paket", "PKT")
		seedCarrierService(t, db, tenantID, carrierID, "Express", "EXP")
		seedCarrierService(t, db, tenantID, other, "Ground", "GND")

		services, err := repo.FindServices(ctx, tenantID, carrierID)
		require.NoError(t, err)
		require.Len(t, services, 2)
		assert.Equal(t, "Express", services[0].Name)
		assert.Equal(t, "Paket", services[1].Name)
	})
}

func TestGormCarrierMappingRepository(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("Save and FindByID round-trip with carrier assignment", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCarrierMappingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")

		m, err := channel.NewCarrierMapping(tenantID, ch.ID, "Standard Shipping", "STD")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, m))

		carrierID := seedCarrier(t, db, tenantID, "DHL")
		m.AssignCarrier(carrierID)
		require.NoError(t, repo.Save(ctx, m))

		got, err := repo.FindByID(ctx, tenantID, m.ID)
		require.NoError(t, err)
		assert.Equal(t, "Standard Shipping", got.Name)
		require.NotNil(t, got.CarrierID)
		assert.Equal(t, carrierID, *got.CarrierID)
		assert.Nil(t, got.CarrierServiceID)
	})

	t.Run("FindByID unknown id fails with not found", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCarrierMappingRepository(db)

		_, err := repo.FindByID(ctx, tenantID, uuid.New())
		assert.ErrorIs(t, err, channel.ErrCarrierMappingNotFound)
	})

	t.Run("FindByChannel lists only the channel's mappings", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCarrierMappingRepository(db)
		chA := seedChannel(t, db, tenantID, "amazon")
		chB := seedChannel(t, db, tenantID, "ebay")

		for _, tc := range []struct {
			channelID uuid.UUID
			name      string
		}{
			{chA.ID, "Standard"},
			{chA.ID, "Express"},
			{chB.ID, "Economy"},
		} {
			m, err := channel.NewCarrierMapping(tenantID, tc.channelID, tc.name, "")
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, m))
		}

		got, err := repo.FindByChannel(ctx, tenantID, chA.ID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Delete removes the mapping and reports unknown ids", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormCarrierMappingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")

		m, err := channel.NewCarrierMapping(tenantID, ch.ID, "Standard", "")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, m))

		require.NoError(t, repo.Delete(ctx, tenantID, m.ID))
		assert.ErrorIs(t, repo.Delete(ctx, tenantID, m.ID), channel.ErrCarrierMappingNotFound)
	})
}
