package listing

import (
	"testing"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testChannel(t *testing.T, source channel.Source) *channel.SaleChannel {
	t.Helper()
	ch, err := channel.NewSaleChannel(uuid.New(), "Amazon US", "amz-us", source, uuid.New())
	require.NoError(t, err)
	return ch
}

func TestNewPartyListing(t *testing.T) {
	tenantID := uuid.New()
	partyID := uuid.New()

	t.Run("creates listing with valid inputs", func(t *testing.T) {
		ch := testChannel(t, "amazon")

		l, err := NewPartyListing(tenantID, ch, partyID, "buyer-42")
		require.NoError(t, err)
		require.NotNil(t, l)

		assert.NotEqual(t, uuid.Nil, l.ID)
		assert.Equal(t, tenantID, l.TenantID)
		assert.Equal(t, ch.ID, l.ChannelID)
		assert.Equal(t, partyID, l.PartyID)
		assert.Equal(t, "buyer-42", l.ContactIdentifier)
	})

	t.Run("rejects manual channels", func(t *testing.T) {
		ch := testChannel(t, channel.SourceManual)

		_, err := NewPartyListing(tenantID, ch, partyID, "buyer-42")
		assert.ErrorIs(t, err, ErrListingManualChannel)
	})

	t.Run("fails with nil channel", func(t *testing.T) {
		_, err := NewPartyListing(tenantID, nil, partyID, "buyer-42")
		assert.ErrorIs(t, err, ErrListingInvalidChannel)
	})

	t.Run("fails with nil party", func(t *testing.T) {
		_, err := NewPartyListing(tenantID, testChannel(t, "amazon"), uuid.Nil, "buyer-42")
		assert.ErrorIs(t, err, ErrListingInvalidEntity)
	})

	t.Run("fails with empty identifier", func(t *testing.T) {
		_, err := NewPartyListing(tenantID, testChannel(t, "amazon"), partyID, "")
		assert.ErrorIs(t, err, ErrListingInvalidIdentifier)
	})
}

func TestNewTemplateListing(t *testing.T) {
	tenantID := uuid.New()
	templateID := uuid.New()

	t.Run("creates listing with valid inputs", func(t *testing.T) {
		ch := testChannel(t, "ebay")

		l, err := NewTemplateListing(tenantID, ch, templateID, "tmpl-7")
		require.NoError(t, err)

		assert.Equal(t, ch.ID, l.ChannelID)
		assert.Equal(t, templateID, l.TemplateID)
		assert.Equal(t, "tmpl-7", l.TemplateIdentifier)
	})

	t.Run("rejects manual channels", func(t *testing.T) {
		ch := testChannel(t, channel.SourceManual)

		_, err := NewTemplateListing(tenantID, ch, templateID, "tmpl-7")
		assert.ErrorIs(t, err, ErrListingManualChannel)
	})

	t.Run("fails with empty identifier", func(t *testing.T) {
		_, err := NewTemplateListing(tenantID, testChannel(t, "ebay"), templateID, "")
		assert.ErrorIs(t, err, ErrListingInvalidIdentifier)
	})
}
