package kurv

import (
	"context"
	"errors"
)

// Store failures, by phase. Concrete stores wrap the underlying cause so
// callers can test the phase with errors.Is and still read the detail.
var (
	ErrStoreInit  = errors.New("store init failed")
	ErrStoreRead  = errors.New("store read failed")
	ErrStoreWrite = errors.New("store write failed")
)

// Store is the durable structured store holding the purchase collection.
// It is the primary persistence tier; the flat Mirror is the fallback.
type Store interface {
	// Init opens or creates the record collection, including its secondary
	// indexes. Failures wrap ErrStoreInit and are never swallowed.
	Init(ctx context.Context) error
	// Add inserts a record and returns the newly assigned id.
	Add(ctx context.Context, r PurchaseRecord) (int64, error)
	// All returns the full collection in insertion order.
	All(ctx context.Context) ([]PurchaseRecord, error)
	// Get looks up a record by id. A missing id is not an error: it
	// returns (nil, nil).
	Get(ctx context.Context, id int64) (*PurchaseRecord, error)
	// Update replaces the record with matching id. Updating a missing id
	// fails with ErrStoreWrite; it must never silently create.
	Update(ctx context.Context, r PurchaseRecord) error
	// Delete removes a record by id. Deleting a missing id is not an error.
	Delete(ctx context.Context, id int64) error
	// Clear empties the collection.
	Clear(ctx context.Context) error
	Close() error
}
