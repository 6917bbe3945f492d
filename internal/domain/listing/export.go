package listing

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/erp/salechannel/internal/domain/channel"
	"github.com/google/uuid"
)

// ---------------------------------------------------------------------------
// NotSupportedError
// ---------------------------------------------------------------------------

// NotSupportedError signals that no concrete channel integration is
// registered for an extension-point operation. It is always fatal to the
// calling operation and never recovered automatically.
type NotSupportedError struct {
	Operation string
	Source    channel.Source
}

// Error implements the error interface
func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("listing: %s is not implemented for %q channels", e.Operation, e.Source)
}

// NewNotSupportedError creates a NotSupportedError naming the channel source
func NewNotSupportedError(operation string, source channel.Source) *NotSupportedError {
	return &NotSupportedError{Operation: operation, Source: source}
}

// ---------------------------------------------------------------------------
// Exporter and Importer ports
// ---------------------------------------------------------------------------

// InventoryExporter pushes a single listing's product inventory to its
// external channel. Concrete channel integrations implement this per source.
type InventoryExporter interface {
	// ExportInventory exports one listing's inventory to the channel
	ExportInventory(ctx context.Context, ch *channel.SaleChannel, l *ProductListing) error
}

// BulkInventoryExporter is an optional extension of InventoryExporter for
// sources with a native batch API. Exporters that do not implement it get
// the default bulk policy: single-item export per listing in input order,
// first failure aborts the remainder, no rollback of already-exported items.
type BulkInventoryExporter interface {
	InventoryExporter

	// ExportBulkInventory exports the listings' inventory in one batch
	ExportBulkInventory(ctx context.Context, ch *channel.SaleChannel, listings []*ProductListing) error
}

// ProductImporter creates local entities from external channel payloads.
// Both methods default to NotSupported until a source registers an
// implementation.
type ProductImporter interface {
	// CreateProductFrom creates a local product from channel data and
	// returns its ID
	CreateProductFrom(ctx context.Context, ch *channel.SaleChannel, data map[string]any) (uuid.UUID, error)

	// CreateListingFrom creates a product listing from channel data
	CreateListingFrom(ctx context.Context, ch *channel.SaleChannel, data map[string]any) (*ProductListing, error)
}

// ---------------------------------------------------------------------------
// IntegrationRegistry
// ---------------------------------------------------------------------------

// IntegrationRegistry holds the concrete channel integrations keyed by
// channel source. Lookups for unregistered sources fail with
// NotSupportedError; the registry itself never provides fallback behavior.
type IntegrationRegistry struct {
	mu        sync.RWMutex
	exporters map[channel.Source]InventoryExporter
	importers map[channel.Source]ProductImporter
}

// NewIntegrationRegistry creates an empty integration registry
func NewIntegrationRegistry() *IntegrationRegistry {
	return &IntegrationRegistry{
		exporters: make(map[channel.Source]InventoryExporter),
		importers: make(map[channel.Source]ProductImporter),
	}
}

// RegisterExporter registers the inventory exporter for a source,
// replacing any previous registration
func (r *IntegrationRegistry) RegisterExporter(source channel.Source, e InventoryExporter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.exporters[source] = e
}

// RegisterImporter registers the product importer for a source
func (r *IntegrationRegistry) RegisterImporter(source channel.Source, i ProductImporter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.importers[source] = i
}

// Exporter returns the exporter registered for a source
func (r *IntegrationRegistry) Exporter(source channel.Source) (InventoryExporter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.exporters[source]
	return e, ok
}

// Importer returns the importer registered for a source
func (r *IntegrationRegistry) Importer(source channel.Source) (ProductImporter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.importers[source]
	return i, ok
}

// Sources returns the sources with a registered exporter, sorted
func (r *IntegrationRegistry) Sources() []channel.Source {
	r.mu.RLock()
	defer r.mu.RUnlock()
	sources := make([]channel.Source, 0, len(r.exporters))
	for s := range r.exporters {
		sources = append(sources, s)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })
	return sources
}
