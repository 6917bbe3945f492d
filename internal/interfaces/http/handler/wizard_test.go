package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	applisting "github.com/erp/salechannel/internal/application/listing"
	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestWizardHandler_Start(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("opens a session in the start state", func(t *testing.T) {
		repo := new(MockSaleChannelRepository)
		h := NewWizardHandler(applisting.NewListingWizard(repo))

		productID := uuid.New()
		c, w := newChannelTestContext(t, http.MethodPost, "/wizard/add-listing", StartWizardRequest{
			ProductID: productID.String(),
		})

		h.Start(c)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, productID.String(), data["product_id"])
		assert.Equal(t, "start", data["state"])
		assert.Equal(t, false, data["finished"])
	})

	t.Run("malformed product id fails binding", func(t *testing.T) {
		repo := new(MockSaleChannelRepository)
		h := NewWizardHandler(applisting.NewListingWizard(repo))

		c, w := newChannelTestContext(t, http.MethodPost, "/wizard/add-listing", map[string]string{
			"product_id": "nope",
		})

		h.Start(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestWizardHandler_Get(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown session yields 404", func(t *testing.T) {
		repo := new(MockSaleChannelRepository)
		h := NewWizardHandler(applisting.NewListingWizard(repo))

		id := uuid.New()
		c, w := newChannelTestContext(t, http.MethodGet, "/wizard/add-listing/"+id.String(), nil)
		c.Params = gin.Params{{Key: "id", Value: id.String()}}

		h.Get(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWizardHandler_Next(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tenantID := uuid.MustParse("00000000-0000-0000-0000-000000000001")

	t.Run("unregistered continuation yields 501", func(t *testing.T) {
		repo := new(MockSaleChannelRepository)
		wizard := applisting.NewListingWizard(repo)
		wizard.AddSource("amazon")
		h := NewWizardHandler(wizard)

		ch, err := channel.NewSaleChannel(tenantID, "Amazon US", "amz-us", "amazon", uuid.New())
		require.NoError(t, err)
		repo.On("FindByID", mock.Anything, tenantID, ch.ID).Return(ch, nil)

		session := wizard.Start(tenantID, uuid.New())

		c, w := newChannelTestContext(t, http.MethodPost, "/wizard/add-listing/"+session.ID.String()+"/next", WizardNextRequest{
			ChannelID: ch.ID.String(),
		})
		c.Params = gin.Params{{Key: "id", Value: session.ID.String()}}

		h.Next(c)

		assert.Equal(t, http.StatusNotImplemented, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeNotSupported, resp.Error.Code)
	})

	t.Run("excluded source yields 422", func(t *testing.T) {
		repo := new(MockSaleChannelRepository)
		wizard := applisting.NewListingWizard(repo)
		h := NewWizardHandler(wizard)

		ch, err := channel.NewSaleChannel(tenantID, "Amazon US", "amz-us", "amazon", uuid.New())
		require.NoError(t, err)
		repo.On("FindByID", mock.Anything, tenantID, ch.ID).Return(ch, nil)

		session := wizard.Start(tenantID, uuid.New())

		c, w := newChannelTestContext(t, http.MethodPost, "/wizard/add-listing/"+session.ID.String()+"/next", WizardNextRequest{
			ChannelID: ch.ID.String(),
		})
		c.Params = gin.Params{{Key: "id", Value: session.ID.String()}}

		h.Next(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("registered continuation finishes the flow", func(t *testing.T) {
		repo := new(MockSaleChannelRepository)
		wizard := applisting.NewListingWizard(repo)
		wizard.AddSource("amazon")
		wizard.RegisterStep(applisting.StateNameFor("amazon"), func(_ context.Context, _ *applisting.WizardSession) (string, error) {
			return applisting.WizardStateEnd, nil
		})
		h := NewWizardHandler(wizard)

		ch, err := channel.NewSaleChannel(tenantID, "Amazon US", "amz-us", "amazon", uuid.New())
		require.NoError(t, err)
		repo.On("FindByID", mock.Anything, tenantID, ch.ID).Return(ch, nil)

		session := wizard.Start(tenantID, uuid.New())

		c, w := newChannelTestContext(t, http.MethodPost, "/wizard/add-listing/"+session.ID.String()+"/next", WizardNextRequest{
			ChannelID: ch.ID.String(),
		})
		c.Params = gin.Params{{Key: "id", Value: session.ID.String()}}

		h.Next(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp.Data.(map[string]interface{})
		assert.Equal(t, "end", data["state"])
		assert.Equal(t, true, data["finished"])
	})
}

func TestWizardHandler_Cancel(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := new(MockSaleChannelRepository)
	wizard := applisting.NewListingWizard(repo)
	h := NewWizardHandler(wizard)

	session := wizard.Start(uuid.New(), uuid.New())

	c, w := newChannelTestContext(t, http.MethodDelete, "/wizard/add-listing/"+session.ID.String(), nil)
	c.Params = gin.Params{{Key: "id", Value: session.ID.String()}}

	h.Cancel(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	_, err := wizard.Session(session.ID)
	assert.ErrorIs(t, err, applisting.ErrWizardSessionNotFound)
}

func TestWizardHandler_Sources(t *testing.T) {
	gin.SetMode(gin.TestMode)

	repo := new(MockSaleChannelRepository)
	wizard := applisting.NewListingWizard(repo)
	wizard.AddSource("amazon")
	wizard.AddSource("ebay")
	h := NewWizardHandler(wizard)

	c, w := newChannelTestContext(t, http.MethodGet, "/wizard/add-listing/sources", nil)

	h.Sources(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	names := resp.Data.([]interface{})
	assert.ElementsMatch(t, []interface{}{"amazon", "ebay"}, names)
}
