package handler

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
