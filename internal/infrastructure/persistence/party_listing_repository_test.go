package persistence

import (
	"context"
	"testing"

	"github.com/erp/salechannel/internal/domain/listing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormPartyListingRepository(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("Save and FindByID round-trip", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormPartyListingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")

		l, err := listing.NewPartyListing(tenantID, ch, uuid.New(), "buyer-42")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, l))

		got, err := repo.FindByID(ctx, tenantID, l.ID)
		require.NoError(t, err)
		assert.Equal(t, "buyer-42", got.ContactIdentifier)
		assert.Equal(t, l.PartyID, got.PartyID)
	})

	t.Run("duplicate triple fails with ErrListingDuplicate", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormPartyListingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")
		partyID := uuid.New()

		l, err := listing.NewPartyListing(tenantID, ch, partyID, "buyer-42")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, l))

		dup, err := listing.NewPartyListing(tenantID, ch, partyID, "buyer-42")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Save(ctx, dup), listing.ErrListingDuplicate)
	})

	t.Run("same party under another identifier is allowed", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormPartyListingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")
		partyID := uuid.New()

		for _, identifier := range []string{"buyer-42", "buyer-43"} {
			l, err := listing.NewPartyListing(tenantID, ch, partyID, identifier)
			require.NoError(t, err)
			require.NoError(t, repo.Save(ctx, l))
		}

		got, err := repo.FindByParty(ctx, tenantID, partyID)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Delete reports unknown ids", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormPartyListingRepository(db)

		assert.ErrorIs(t, repo.Delete(ctx, tenantID, uuid.New()), listing.ErrListingNotFound)
	})

	t.Run("DeleteByParty removes all of the party's listings", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormPartyListingRepository(db)
		chA := seedChannel(t, db, tenantID, "amazon")
		chB := seedChannel(t, db, tenantID, "ebay")
		partyID := uuid.New()

		l1, err := listing.NewPartyListing(tenantID, chA, partyID, "buyer-42")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, l1))
		l2, err := listing.NewPartyListing(tenantID, chB, partyID, "buyer-42")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, l2))

		require.NoError(t, repo.DeleteByParty(ctx, tenantID, partyID))

		got, err := repo.FindByParty(ctx, tenantID, partyID)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestGormTemplateListingRepository(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()

	t.Run("Save, FindByTemplate and Delete", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormTemplateListingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")
		templateID := uuid.New()

		l, err := listing.NewTemplateListing(tenantID, ch, templateID, "tmpl-7")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, l))

		got, err := repo.FindByTemplate(ctx, tenantID, templateID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "tmpl-7", got[0].TemplateIdentifier)

		require.NoError(t, repo.Delete(ctx, tenantID, l.ID))
		assert.ErrorIs(t, repo.Delete(ctx, tenantID, l.ID), listing.ErrListingNotFound)
	})

	t.Run("duplicate triple fails with ErrListingDuplicate", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewGormTemplateListingRepository(db)
		ch := seedChannel(t, db, tenantID, "amazon")
		templateID := uuid.New()

		l, err := listing.NewTemplateListing(tenantID, ch, templateID, "tmpl-7")
		require.NoError(t, err)
		require.NoError(t, repo.Save(ctx, l))

		dup, err := listing.NewTemplateListing(tenantID, ch, templateID, "tmpl-7")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Save(ctx, dup), listing.ErrListingDuplicate)
	})
}
