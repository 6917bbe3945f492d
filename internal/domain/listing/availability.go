package listing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Availability value object
// ---------------------------------------------------------------------------

// AvailabilityType is the stock classification mode of a listing
type AvailabilityType string

const (
	// AvailabilityTypeBucket classifies stock as in/out of stock. This is
	// the only type currently produced.
	AvailabilityTypeBucket AvailabilityType = "bucket"
	// AvailabilityTypeQuantity reports an exact quantity (reserved
	// extension value, no producer yet)
	AvailabilityTypeQuantity AvailabilityType = "quantity"
	// AvailabilityTypeInfinite marks never-depleting stock (reserved
	// extension value, no producer yet)
	AvailabilityTypeInfinite AvailabilityType = "infinite"
)

// AvailabilityValue is the bucket classification of on-hand stock
type AvailabilityValue string

const (
	AvailabilityInStock    AvailabilityValue = "in_stock"
	AvailabilityOutOfStock AvailabilityValue = "out_of_stock"
)

// Availability is the derived, non-persisted stock snapshot of a product
// listing. Value and Quantity are nil when the listing has no linked product.
type Availability struct {
	Type     AvailabilityType   `json:"type"`
	Value    *AvailabilityValue `json:"value"`
	Quantity *decimal.Decimal   `json:"quantity"`
}

// NewBucketAvailability classifies an on-hand quantity into the bucket mode:
// in_stock when the quantity is positive, out_of_stock otherwise.
func NewBucketAvailability(quantity decimal.Decimal) Availability {
	value := AvailabilityOutOfStock
	if quantity.IsPositive() {
		value = AvailabilityInStock
	}
	return Availability{
		Type:     AvailabilityTypeBucket,
		Value:    &value,
		Quantity: &quantity,
	}
}

// EmptyAvailability is the snapshot for a listing with no linked product:
// bucket type with nil value and quantity.
func EmptyAvailability() Availability {
	return Availability{Type: AvailabilityTypeBucket}
}

// ---------------------------------------------------------------------------
// StockReader port
// ---------------------------------------------------------------------------

// StockReader reads on-hand product quantities scoped to a set of stock
// locations. The availability resolver is its only consumer; it never
// mutates stock.
type StockReader interface {
	// OnHand returns the summed on-hand quantity of a product across the
	// given locations. An unknown product or empty location set yields zero.
	OnHand(ctx context.Context, tenantID, productID uuid.UUID, locationIDs []uuid.UUID) (decimal.Decimal, error)
}
