package listing

import (
	"context"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/listing"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockSaleChannelRepository is a mock implementation of SaleChannelRepository
type MockSaleChannelRepository struct {
	mock.Mock
}

func (m *MockSaleChannelRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*channel.SaleChannel, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*channel.SaleChannel), args.Error(1)
}

func (m *MockSaleChannelRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]channel.SaleChannel, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]channel.SaleChannel), args.Error(1)
}

func (m *MockSaleChannelRepository) FindBySource(ctx context.Context, tenantID uuid.UUID, source channel.Source) ([]channel.SaleChannel, error) {
	args := m.Called(ctx, tenantID, source)
	return args.Get(0).([]channel.SaleChannel), args.Error(1)
}

func (m *MockSaleChannelRepository) Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSaleChannelRepository) Save(ctx context.Context, ch *channel.SaleChannel) error {
	args := m.Called(ctx, ch)
	return args.Error(0)
}

func (m *MockSaleChannelRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

// MockPartyListingRepository is a mock implementation of PartyListingRepository
type MockPartyListingRepository struct {
	mock.Mock
}

func (m *MockPartyListingRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*listing.PartyListing, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.PartyListing), args.Error(1)
}

func (m *MockPartyListingRepository) FindByParty(ctx context.Context, tenantID, partyID uuid.UUID) ([]listing.PartyListing, error) {
	args := m.Called(ctx, tenantID, partyID)
	return args.Get(0).([]listing.PartyListing), args.Error(1)
}

func (m *MockPartyListingRepository) FindByChannel(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) ([]listing.PartyListing, error) {
	args := m.Called(ctx, tenantID, channelID, filter)
	return args.Get(0).([]listing.PartyListing), args.Error(1)
}

func (m *MockPartyListingRepository) Save(ctx context.Context, l *listing.PartyListing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockPartyListingRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockPartyListingRepository) DeleteByParty(ctx context.Context, tenantID, partyID uuid.UUID) error {
	args := m.Called(ctx, tenantID, partyID)
	return args.Error(0)
}

// MockTemplateListingRepository is a mock implementation of TemplateListingRepository
type MockTemplateListingRepository struct {
	mock.Mock
}

func (m *MockTemplateListingRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*listing.TemplateListing, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.TemplateListing), args.Error(1)
}

func (m *MockTemplateListingRepository) FindByTemplate(ctx context.Context, tenantID, templateID uuid.UUID) ([]listing.TemplateListing, error) {
	args := m.Called(ctx, tenantID, templateID)
	return args.Get(0).([]listing.TemplateListing), args.Error(1)
}

func (m *MockTemplateListingRepository) FindByChannel(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) ([]listing.TemplateListing, error) {
	args := m.Called(ctx, tenantID, channelID, filter)
	return args.Get(0).([]listing.TemplateListing), args.Error(1)
}

func (m *MockTemplateListingRepository) Save(ctx context.Context, l *listing.TemplateListing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockTemplateListingRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockTemplateListingRepository) DeleteByTemplate(ctx context.Context, tenantID, templateID uuid.UUID) error {
	args := m.Called(ctx, tenantID, templateID)
	return args.Error(0)
}

// MockProductListingRepository is a mock implementation of ProductListingRepository
type MockProductListingRepository struct {
	mock.Mock
}

func (m *MockProductListingRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*listing.ProductListing, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.ProductListing), args.Error(1)
}

func (m *MockProductListingRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]listing.ProductListing, error) {
	args := m.Called(ctx, tenantID, ids)
	return args.Get(0).([]listing.ProductListing), args.Error(1)
}

func (m *MockProductListingRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]listing.ProductListing, error) {
	args := m.Called(ctx, tenantID, productID)
	return args.Get(0).([]listing.ProductListing), args.Error(1)
}

func (m *MockProductListingRepository) FindByChannel(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) ([]listing.ProductListing, error) {
	args := m.Called(ctx, tenantID, channelID, filter)
	return args.Get(0).([]listing.ProductListing), args.Error(1)
}

func (m *MockProductListingRepository) FindByChannelAndIdentifier(ctx context.Context, tenantID, channelID uuid.UUID, productIdentifier string) (*listing.ProductListing, error) {
	args := m.Called(ctx, tenantID, channelID, productIdentifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.ProductListing), args.Error(1)
}

func (m *MockProductListingRepository) Count(ctx context.Context, tenantID, channelID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, channelID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductListingRepository) Save(ctx context.Context, l *listing.ProductListing) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockProductListingRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockProductListingRepository) DeleteByProduct(ctx context.Context, tenantID, productID uuid.UUID) error {
	args := m.Called(ctx, tenantID, productID)
	return args.Error(0)
}

// MockStockReader is a mock implementation of StockReader
type MockStockReader struct {
	mock.Mock
}

func (m *MockStockReader) OnHand(ctx context.Context, tenantID, productID uuid.UUID, locationIDs []uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, tenantID, productID, locationIDs)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockInventoryExporter is a mock implementation of InventoryExporter
type MockInventoryExporter struct {
	mock.Mock
}

func (m *MockInventoryExporter) ExportInventory(ctx context.Context, ch *channel.SaleChannel, l *listing.ProductListing) error {
	args := m.Called(ctx, ch, l)
	return args.Error(0)
}

// MockBulkInventoryExporter is a mock implementation of BulkInventoryExporter
type MockBulkInventoryExporter struct {
	mock.Mock
}

func (m *MockBulkInventoryExporter) ExportInventory(ctx context.Context, ch *channel.SaleChannel, l *listing.ProductListing) error {
	args := m.Called(ctx, ch, l)
	return args.Error(0)
}

func (m *MockBulkInventoryExporter) ExportBulkInventory(ctx context.Context, ch *channel.SaleChannel, listings []*listing.ProductListing) error {
	args := m.Called(ctx, ch, listings)
	return args.Error(0)
}

// MockProductImporter is a mock implementation of ProductImporter
type MockProductImporter struct {
	mock.Mock
}

func (m *MockProductImporter) CreateProductFrom(ctx context.Context, ch *channel.SaleChannel, data map[string]any) (uuid.UUID, error) {
	args := m.Called(ctx, ch, data)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockProductImporter) CreateListingFrom(ctx context.Context, ch *channel.SaleChannel, data map[string]any) (*listing.ProductListing, error) {
	args := m.Called(ctx, ch, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*listing.ProductListing), args.Error(1)
}
