package kurv

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(filepath.Join(t.TempDir(), "kurv.db"))
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := store.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return store
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	r := PurchaseRecord{
		ProductName:  "Organic Bananas",
		StoreName:    "Super Brugsen",
		Quantity:     1,
		Unit:         Kilo,
		Price:        24.95,
		Currency:     "DKK",
		PurchaseDate: MustParseDate("2025-08-20"),
		Notes:        "Really ripe and sweet",
	}
	id, err := store.Add(ctx, r)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if id == 0 {
		t.Fatal("Add assigned id 0")
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned not-found for a stored record")
	}
	r.ID = id
	if *got != r {
		t.Errorf("Get = %+v, want %+v", *got, r)
	}

	got.Price = 19.95
	got.Notes = "price dropped"
	if err := store.Update(ctx, *got); err != nil {
		t.Fatalf("Update: %v", err)
	}
	updated, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if updated.Price != 19.95 || updated.Notes != "price dropped" {
		t.Errorf("update not reflected: %+v", updated)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	gone, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get after delete: %v", err)
	}
	if gone != nil {
		t.Errorf("record still present after delete: %+v", gone)
	}
}

func TestSQLiteStore_AllInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	names := []string{"Bananas", "Avocados", "Almonds"}
	for _, name := range names {
		if _, err := store.Add(ctx, PurchaseRecord{ProductName: name, StoreName: "Netto", Quantity: 1, Unit: Piece, Price: 1, Currency: "DKK", PurchaseDate: Today()}); err != nil {
			t.Fatalf("Add %q: %v", name, err)
		}
	}
	records, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(records) != len(names) {
		t.Fatalf("All returned %d records, want %d", len(records), len(names))
	}
	for i, r := range records {
		if r.ProductName != names[i] {
			t.Errorf("records[%d] = %q, want %q (insertion order)", i, r.ProductName, names[i])
		}
	}
}

func TestSQLiteStore_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	err := store.Update(ctx, PurchaseRecord{ID: 42, ProductName: "Ghost", StoreName: "Nowhere", Quantity: 1, Unit: Piece, Price: 1, Currency: "DKK", PurchaseDate: Today()})
	if !errors.Is(err, ErrStoreWrite) {
		t.Fatalf("Update of missing id = %v, want ErrStoreWrite", err)
	}
	// Update must never silently create.
	records, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("update of missing id created %d records", len(records))
	}
}

func TestSQLiteStore_DeleteMissingIsNoError(t *testing.T) {
	store := openTestStore(t)
	if err := store.Delete(context.Background(), 99); err != nil {
		t.Fatalf("Delete of missing id = %v, want nil", err)
	}
}

func TestSQLiteStore_Clear(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	if _, err := store.Add(ctx, PurchaseRecord{ProductName: "Bananas", StoreName: "Netto", Quantity: 1, Unit: Kilo, Price: 10, Currency: "DKK", PurchaseDate: Today()}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	records, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Clear left %d records", len(records))
	}
}
