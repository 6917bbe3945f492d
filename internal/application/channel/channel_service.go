package channel

import (
	"context"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/shared"
	"github.com/google/uuid"
)

// ChannelService manages sale channels
type ChannelService struct {
	channels channel.SaleChannelRepository
}

// NewChannelService creates a new channel service
func NewChannelService(channels channel.SaleChannelRepository) *ChannelService {
	return &ChannelService{channels: channels}
}

// CreateChannel creates a new sale channel
func (s *ChannelService) CreateChannel(ctx context.Context, tenantID uuid.UUID, name, code string, source channel.Source, warehouseID uuid.UUID) (*channel.SaleChannel, error) {
	ch, err := channel.NewSaleChannel(tenantID, name, code, source, warehouseID)
	if err != nil {
		return nil, err
	}
	if err := s.channels.Save(ctx, ch); err != nil {
		return nil, err
	}
	return ch, nil
}

// GetChannel retrieves a channel by ID
func (s *ChannelService) GetChannel(ctx context.Context, tenantID, id uuid.UUID) (*channel.SaleChannel, error) {
	return s.channels.FindByID(ctx, tenantID, id)
}

// ListChannels lists channels with pagination
func (s *ChannelService) ListChannels(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]channel.SaleChannel, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	channels, err := s.channels.FindAll(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.channels.Count(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	return channels, count, nil
}

// UpdateChannel updates an existing channel
func (s *ChannelService) UpdateChannel(ctx context.Context, ch *channel.SaleChannel) error {
	if err := ch.Validate(); err != nil {
		return err
	}
	ch.Touch()
	return s.channels.Save(ctx, ch)
}

// DeleteChannel deletes a channel. Fails with ErrChannelInUse while any
// listing references it.
func (s *ChannelService) DeleteChannel(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.channels.Delete(ctx, tenantID, id)
}
