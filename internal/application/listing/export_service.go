package listing

import (
	"context"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/erp/salechannel/internal/domain/listing"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ExportService dispatches inventory export and create-from operations to
// the channel integration registered for a channel's source. With no
// registration both fail with NotSupportedError; nothing is retried and
// partial bulk progress is not rolled back.
type ExportService struct {
	channels channel.SaleChannelRepository
	listings listing.ProductListingRepository
	registry *listing.IntegrationRegistry
	logger   *zap.Logger
}

// NewExportService creates a new export dispatcher service
func NewExportService(
	channels channel.SaleChannelRepository,
	listings listing.ProductListingRepository,
	registry *listing.IntegrationRegistry,
	logger *zap.Logger,
) *ExportService {
	return &ExportService{
		channels: channels,
		listings: listings,
		registry: registry,
		logger:   logger,
	}
}

// ExportInventory exports one listing's product inventory to its channel
func (s *ExportService) ExportInventory(ctx context.Context, tenantID, listingID uuid.UUID) error {
	l, err := s.listings.FindByID(ctx, tenantID, listingID)
	if err != nil {
		return err
	}

	ch, err := s.channels.FindByID(ctx, tenantID, l.ChannelID)
	if err != nil {
		return err
	}

	exporter, ok := s.registry.Exporter(ch.Source)
	if !ok {
		return listing.NewNotSupportedError("export_inventory", ch.Source)
	}

	if err := exporter.ExportInventory(ctx, ch, l); err != nil {
		return err
	}

	s.logger.Info("inventory exported",
		zap.String("listing_id", l.ID.String()),
		zap.String("channel_source", ch.Source.String()),
	)
	return nil
}

// ExportBulkInventory exports the listings' inventory in input order.
// Listings are grouped into consecutive runs sharing a channel; a run is
// handed to the source's native bulk exporter when it provides one,
// otherwise each listing is exported individually. The first failing item
// aborts the remaining ones with no rollback of items already exported.
func (s *ExportService) ExportBulkInventory(ctx context.Context, tenantID uuid.UUID, listingIDs []uuid.UUID) error {
	if len(listingIDs) == 0 {
		return nil
	}

	found, err := s.listings.FindByIDs(ctx, tenantID, listingIDs)
	if err != nil {
		return err
	}
	byID := make(map[uuid.UUID]*listing.ProductListing, len(found))
	for i := range found {
		byID[found[i].ID] = &found[i]
	}

	ordered := make([]*listing.ProductListing, 0, len(listingIDs))
	for _, id := range listingIDs {
		l, ok := byID[id]
		if !ok {
			return listing.ErrProductListingNotFound
		}
		ordered = append(ordered, l)
	}

	for start := 0; start < len(ordered); {
		end := start + 1
		for end < len(ordered) && ordered[end].ChannelID == ordered[start].ChannelID {
			end++
		}
		if err := s.exportRun(ctx, tenantID, ordered[start:end]); err != nil {
			return err
		}
		start = end
	}
	return nil
}

// exportRun exports one run of listings that share a channel
func (s *ExportService) exportRun(ctx context.Context, tenantID uuid.UUID, run []*listing.ProductListing) error {
	ch, err := s.channels.FindByID(ctx, tenantID, run[0].ChannelID)
	if err != nil {
		return err
	}

	exporter, ok := s.registry.Exporter(ch.Source)
	if !ok {
		return listing.NewNotSupportedError("export_bulk_inventory", ch.Source)
	}

	if bulk, ok := exporter.(listing.BulkInventoryExporter); ok {
		return bulk.ExportBulkInventory(ctx, ch, run)
	}

	for _, l := range run {
		if err := exporter.ExportInventory(ctx, ch, l); err != nil {
			return err
		}
	}
	return nil
}

// CreateProductFrom creates a local product from external channel data via
// the source's registered importer
func (s *ExportService) CreateProductFrom(ctx context.Context, tenantID, channelID uuid.UUID, data map[string]any) (uuid.UUID, error) {
	ch, err := s.channels.FindByID(ctx, tenantID, channelID)
	if err != nil {
		return uuid.Nil, err
	}

	importer, ok := s.registry.Importer(ch.Source)
	if !ok {
		return uuid.Nil, listing.NewNotSupportedError("create_from (product)", ch.Source)
	}
	return importer.CreateProductFrom(ctx, ch, data)
}

// CreateListingFrom creates a product listing from external channel data via
// the source's registered importer
func (s *ExportService) CreateListingFrom(ctx context.Context, tenantID, channelID uuid.UUID, data map[string]any) (*listing.ProductListing, error) {
	ch, err := s.channels.FindByID(ctx, tenantID, channelID)
	if err != nil {
		return nil, err
	}

	importer, ok := s.registry.Importer(ch.Source)
	if !ok {
		return nil, listing.NewNotSupportedError("create_from (listing)", ch.Source)
	}

	l, err := importer.CreateListingFrom(ctx, ch, data)
	if err != nil {
		return nil, err
	}
	if err := s.listings.Save(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}
