package channel

import (
	"context"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/google/uuid"
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

// MockCarrierRepository is a mock implementation of CarrierRepository
type MockCarrierRepository struct {
	mock.Mock
}

func (m *MockCarrierRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*channel.Carrier, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*channel.Carrier), args.Error(1)
}

func (m *MockCarrierRepository) FindServices(ctx context.Context, tenantID, carrierID uuid.UUID) ([]channel.CarrierService, error) {
	args := m.Called(ctx, tenantID, carrierID)
	return args.Get(0).([]channel.CarrierService), args.Error(1)
}

// MockCarrierMappingRepository is a mock implementation of CarrierMappingRepository
type MockCarrierMappingRepository struct {
	mock.Mock
}

func (m *MockCarrierMappingRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*channel.CarrierMapping, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*channel.CarrierMapping), args.Error(1)
}

func (m *MockCarrierMappingRepository) FindByChannel(ctx context.Context, tenantID, channelID uuid.UUID) ([]channel.CarrierMapping, error) {
	args := m.Called(ctx, tenantID, channelID)
	return args.Get(0).([]channel.CarrierMapping), args.Error(1)
}

func (m *MockCarrierMappingRepository) Save(ctx context.Context, mapping *channel.CarrierMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

func (m *MockCarrierMappingRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}
