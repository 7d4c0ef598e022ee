package kurv

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// LoadSource tells which tier the in-memory collection was rebuilt from at
// startup.
type LoadSource int

const (
	// Uninitialized means Load has not run yet.
	Uninitialized LoadSource = iota
	// LoadedFromPrimary means the structured store held the collection.
	LoadedFromPrimary
	// LoadedFromFallback means the flat mirror was authoritative and was
	// copied back into the structured store.
	LoadedFromFallback
	// Seeded means both tiers were empty and the built-in sample dataset
	// was used.
	Seeded
)

func (s LoadSource) String() string {
	switch s {
	case LoadedFromPrimary:
		return "primary"
	case LoadedFromFallback:
		return "fallback"
	case Seeded:
		return "seeded"
	default:
		return "uninitialized"
	}
}

// Field names a record attribute whose distinct values can be listed, to
// feed filter choices.
type Field int

const (
	FieldProduct Field = iota
	FieldStore
	FieldUnit
)

// ParseField parses a string into a Field.
func ParseField(s string) (Field, error) {
	switch s {
	case "product":
		return FieldProduct, nil
	case "store":
		return FieldStore, nil
	case "unit":
		return FieldUnit, nil
	default:
		return 0, fmt.Errorf("unknown field: %q", s)
	}
}

// Tracker orchestrates the purchase collection: it owns the in-memory
// records mirrored from the structured store and drives every load, CRUD,
// filter and comparison workflow.
//
// The collection is mutated only after a durable write succeeds, so the
// visible state lags the durable state by at most one completed operation.
// A single mutex serializes operations; overlapping requests for the same
// record cannot race.
type Tracker struct {
	mu     sync.Mutex
	store  Store
	mirror *Mirror
	rates  Rates
	log    zerolog.Logger

	items  []PurchaseRecord
	source LoadSource
}

// NewTracker creates a tracker over the two persistence tiers. The rate
// table is injected so a live source can replace the static defaults.
func NewTracker(store Store, mirror *Mirror, rates Rates, log zerolog.Logger) *Tracker {
	return &Tracker{
		store:  store,
		mirror: mirror,
		rates:  rates,
		log:    log,
	}
}

// Load rebuilds the in-memory collection wholesale. It is the single
// startup transition over {Uninitialized, LoadedFromPrimary,
// LoadedFromFallback, Seeded}:
//
//   - primary store non-empty: use it;
//   - primary empty or unreadable (logged, treated as empty): if the mirror
//     holds a snapshot it is authoritative and every record is copied back
//     into the primary with a fresh id;
//   - both empty: the built-in seed dataset is used and snapshotted to the
//     mirror.
func (t *Tracker) Load(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Init(ctx); err != nil {
		return err
	}

	records, err := t.store.All(ctx)
	if err != nil {
		t.log.Warn().Err(err).Msg("primary store unreadable, falling back to mirror")
		records = nil
	}
	if len(records) > 0 {
		t.items = records
		t.source = LoadedFromPrimary
		return nil
	}

	var mirrored []PurchaseRecord
	if t.mirror.Load(MirrorKey, &mirrored) && len(mirrored) > 0 {
		t.items = t.adopt(ctx, mirrored)
		t.source = LoadedFromFallback
		return nil
	}

	t.items = t.adopt(ctx, SeedRecords())
	t.source = Seeded
	t.mirror.Save(MirrorKey, t.items)
	return nil
}

// adopt copies records into the primary store, assigning fresh ids. A
// record the store refuses is kept in memory under its old id so the
// collection count is preserved.
func (t *Tracker) adopt(ctx context.Context, records []PurchaseRecord) []PurchaseRecord {
	adopted := make([]PurchaseRecord, 0, len(records))
	for _, r := range records {
		r.ID = 0
		id, err := t.store.Add(ctx, r)
		if err != nil {
			t.log.Warn().Err(err).Str("product", r.ProductName).Msg("could not copy record into primary store")
		} else {
			r.ID = id
		}
		adopted = append(adopted, r)
	}
	return adopted
}

// Source reports which tier the collection was loaded from.
func (t *Tracker) Source() LoadSource {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.source
}

// Rates returns the tracker's exchange-rate table.
func (t *Tracker) Rates() Rates { return t.rates }

// Records returns a copy of the full in-memory collection in store order.
func (t *Tracker) Records() []PurchaseRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.items)
}

// Record returns the record with the given id, or nil.
func (t *Tracker) Record(id int64) *PurchaseRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, r := range t.items {
		if r.ID == id {
			rec := r
			return &rec
		}
	}
	return nil
}

// Create validates and durably inserts a new record, then appends it to the
// in-memory collection. The returned record carries the assigned id.
func (t *Tracker) Create(ctx context.Context, r PurchaseRecord) (PurchaseRecord, error) {
	if err := r.Validate(t.rates); err != nil {
		return PurchaseRecord{}, err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	r.ID = 0
	id, err := t.store.Add(ctx, r)
	if err != nil {
		return PurchaseRecord{}, err
	}
	r.ID = id
	t.items = append(t.items, r)
	t.snapshot()
	return r, nil
}

// Update validates and durably replaces the record with matching id, then
// updates the in-memory collection.
func (t *Tracker) Update(ctx context.Context, r PurchaseRecord) error {
	if err := r.Validate(t.rates); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Update(ctx, r); err != nil {
		return err
	}
	for i := range t.items {
		if t.items[i].ID == r.ID {
			t.items[i] = r
			break
		}
	}
	t.snapshot()
	return nil
}

// Delete durably removes the record with the given id, then drops it from
// the in-memory collection. Deleting a missing id is not an error.
func (t *Tracker) Delete(ctx context.Context, id int64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Delete(ctx, id); err != nil {
		return err
	}
	t.items = slices.DeleteFunc(t.items, func(r PurchaseRecord) bool { return r.ID == id })
	t.snapshot()
	return nil
}

// Clear empties both persistence tiers and the in-memory collection.
func (t *Tracker) Clear(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Clear(ctx); err != nil {
		return err
	}
	t.items = nil
	t.mirror.Clear(MirrorKey)
	return nil
}

// snapshot refreshes the flat-mirror copy of the collection. Best effort:
// the mirror logs and degrades on failure. Callers must hold t.mu.
func (t *Tracker) snapshot() {
	t.mirror.Save(MirrorKey, t.items)
}

// List returns the records matching the filter, ordered by the sort key.
func (t *Tracker) List(f Filter, key SortKey) []PurchaseRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []PurchaseRecord
	for _, r := range t.items {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	sortRecords(out, key, t.rates)
	return out
}

// UniqueValuesOf returns the distinct non-empty values of the given field
// across the collection, in first-seen order.
func (t *Tracker) UniqueValuesOf(field Field) []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	seen := make(map[string]bool)
	var values []string
	for _, r := range t.items {
		var v string
		switch field {
		case FieldProduct:
			v = r.ProductName
		case FieldStore:
			v = r.StoreName
		case FieldUnit:
			v = string(r.Unit)
		}
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

// Total sums every purchase price converted to the anchor currency.
// Records are validated on entry, so a failing conversion can only follow a
// rate-table swap; such records are skipped with a log.
func (t *Tracker) Total() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total float64
	for _, r := range t.items {
		converted, err := t.rates.Convert(r.Price, r.Currency, AnchorCurrency)
		if err != nil {
			t.log.Warn().Err(err).Int64("id", r.ID).Msg("skipping record in total")
			continue
		}
		total += converted
	}
	return total
}
