package persistence

import (
	"context"
	"testing"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/listing"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedProductListing(t *testing.T, db *gorm.DB, repo *GormProductListingRepository, ch *channel.SaleChannel, identifier string) *listing.ProductListing {
	t.Helper()

	productID := uuid.New()
	l, err := listing.NewProductListing(ch.TenantID, ch, &productID, identifier, listing.ListingStateActive)
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), l))
	return l
}

func TestGormProductListingRepository(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("Save and FindByID round-trip", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductListingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")

		l := seedProductListing(t, db, repo, ch, "ASIN-B01")

		got, err := repo.FindByID(ctx, tenantID, l.ID)
		require.NoError(t, err)
		assert.Equal(t, "ASIN-B01", got.ProductIdentifier)
		assert.Equal(t, listing.ListingStateActive, got.State)
		require.NotNil(t, got.ProductID)
		assert.Equal(t, *l.ProductID, *got.ProductID)
	})

	t.Run("duplicate identifier on a channel fails with ErrListingDuplicate", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductListingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")

		seedProductListing(t, db, repo, ch, "ASIN-B01")

		productID := uuid.New()
		dup, err := listing.NewProductListing(tenantID, ch, &productID, "ASIN-B01", listing.ListingStateActive)
		require.NoError(t, err)

		assert.ErrorIs(t, repo.Save(ctx, dup), listing.ErrListingDuplicate)
	})

	t.Run("same identifier on another channel is allowed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductListingRepository(db)
		chA := seedChannel(t, db, tenantID, "amazon")
		chB := seedChannel(t, db, tenantID, "ebay")

		seedProductListing(t, db, repo, chA, "SKU-1")
		seedProductListing(t, db, repo, chB, "SKU-1")
	})

	t.Run("disabled placeholder without product persists", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductListingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")

		l, err := listing.NewProductListing(tenantID, ch, nil, "ASIN-NEW", listing.ListingStateDisabled)
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, l))

		got, err := repo.FindByID(ctx, tenantID, l.ID)
		require.NoError(t, err)
		assert.Nil(t, got.ProductID)
		assert.Equal(t, listing.ListingStateDisabled, got.State)
	})

	t.Run("FindByIDs returns only known listings", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductListingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")

		l1 := seedProductListing(t, db, repo, ch, "A-1")
		l2 := seedProductListing(t, db, repo, ch, "A-2")

		got, err := repo.FindByIDs(ctx, tenantID, []uuid.UUID{l1.ID, l2.ID, uuid.New()})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		empty, err := repo.FindByIDs(ctx, tenantID, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("FindByChannelAndIdentifier resolves the external identifier", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductListingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")

		l := seedProductListing(t, db, repo, ch, "ASIN-B01")

		got, err := repo.FindByChannelAndIdentifier(ctx, tenantID, ch.ID, "ASIN-B01")
		require.NoError(t, err)
		assert.Equal(t, l.ID, got.ID)

		_, err = repo.FindByChannelAndIdentifier(ctx, tenantID, ch.ID, "ASIN-UNKNOWN")
		assert.ErrorIs(t, err, listing.ErrProductListingNotFound)
	})

	t.Run("FindByChannel and Count are channel scoped", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductListingRepository(db)
		chA := seedChannel(t, db, tenantID, "amazon")
		chB := seedChannel(t, db, tenantID, "ebay")

		seedProductListing(t, db, repo, chA, "A-1")
		seedProductListing(t, db, repo, chA, "A-2")
		seedProductListing(t, db, repo, chB, "B-1")

		got, err := repo.FindByChannel(ctx, tenantID, chA.ID, shared.Filter{Page: 1, PageSize: 10})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		count, err := repo.Count(ctx, tenantID, chA.ID, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("FindByProduct lists a product's listings", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductListingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")

		l := seedProductListing(t, db, repo, ch, "A-1")

		got, err := repo.FindByProduct(ctx, tenantID, *l.ProductID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, l.ID, got[0].ID)
	})

	t.Run("Delete removes the listing and reports unknown ids", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductListingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")

		l := seedProductListing(t, db, repo, ch, "A-1")
		require.NoError(t, repo.Delete(ctx, tenantID, l.ID))
		assert.ErrorIs(t, repo.Delete(ctx, tenantID, l.ID), listing.ErrProductListingNotFound)
	})

	t.Run("DeleteByProduct removes all listings of a product", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormProductListingRepository(db)
		chA := seedChannel(t, db, tenantID, "amazon")
		chB := seedChannel(t, db, tenantID, "ebay")

		productID := uuid.New()
		for _, ch := range []*channel.SaleChannel{chA, chB} {
			l, err := listing.NewProductListing(tenantID, ch, &productID, "SKU-1", listing.ListingStateActive)
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, l))
		}

		require.NoError(t, repo.DeleteByProduct(ctx, tenantID, productID))

		got, err := repo.FindByProduct(ctx, tenantID, productID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
