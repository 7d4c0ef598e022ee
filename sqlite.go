package kurv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteStore is the embedded structured store, one row per purchase with
// an auto-incrementing id and secondary indexes on the filterable columns.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if absent) the database file at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("%w: create dirs: %v", ErrStoreInit, err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: open sqlite %q: %v", ErrStoreInit, path, err)
	}
	return &SQLiteStore{db: db, path: path}, nil
}

// Init creates the purchases table and its secondary indexes.
func (s *SQLiteStore) Init(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS purchases (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			product_name TEXT NOT NULL,
			store_name TEXT NOT NULL,
			quantity REAL NOT NULL,
			unit TEXT NOT NULL,
			price REAL NOT NULL,
			currency TEXT NOT NULL,
			purchase_date TEXT NOT NULL,
			notes TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_product_name ON purchases(product_name)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_store_name ON purchases(store_name)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_unit ON purchases(unit)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_currency ON purchases(currency)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_purchase_date ON purchases(purchase_date)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: %v", ErrStoreInit, err)
		}
	}
	return nil
}

// Add inserts the record and returns the id assigned by the store. Any id
// already present on the record is ignored.
func (s *SQLiteStore) Add(ctx context.Context, r PurchaseRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO purchases (product_name, store_name, quantity, unit, price, currency, purchase_date, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ProductName, r.StoreName, r.Quantity, string(r.Unit), r.Price, r.Currency, r.PurchaseDate.String(), r.Notes)
	if err != nil {
		return 0, fmt.Errorf("%w: insert: %v", ErrStoreWrite, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %v", ErrStoreWrite, err)
	}
	return id, nil
}

// All returns every record in insertion order.
func (s *SQLiteStore) All(ctx context.Context) ([]PurchaseRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, product_name, store_name, quantity, unit, price, currency, purchase_date, notes
		 FROM purchases ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%w: select: %v", ErrStoreRead, err)
	}
	defer rows.Close()

	var records []PurchaseRecord
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrStoreRead, err)
	}
	return records, nil
}

// Get is a point lookup by id. A missing id returns (nil, nil).
func (s *SQLiteStore) Get(ctx context.Context, id int64) (*PurchaseRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, product_name, store_name, quantity, unit, price, currency, purchase_date, notes
		 FROM purchases WHERE id = ?`, id)
	r, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Update fully replaces the record with matching id.
func (s *SQLiteStore) Update(ctx context.Context, r PurchaseRecord) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE purchases SET product_name = ?, store_name = ?, quantity = ?, unit = ?, price = ?, currency = ?, purchase_date = ?, notes = ?
		 WHERE id = ?`,
		r.ProductName, r.StoreName, r.Quantity, string(r.Unit), r.Price, r.Currency, r.PurchaseDate.String(), r.Notes, r.ID)
	if err != nil {
		return fmt.Errorf("%w: update id %d: %v", ErrStoreWrite, r.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", ErrStoreWrite, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: no record with id %d", ErrStoreWrite, r.ID)
	}
	return nil
}

// Delete removes the record with the given id, if any.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM purchases WHERE id = ?`, id); err != nil {
		return fmt.Errorf("%w: delete id %d: %v", ErrStoreWrite, id, err)
	}
	return nil
}

// Clear empties the collection.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM purchases`); err != nil {
		return fmt.Errorf("%w: clear: %v", ErrStoreWrite, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }

// Path returns the configured database path.
func (s *SQLiteStore) Path() string { return s.path }

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (PurchaseRecord, error) {
	var r PurchaseRecord
	var unit, dateStr string
	if err := row.Scan(&r.ID, &r.ProductName, &r.StoreName, &r.Quantity, &unit, &r.Price, &r.Currency, &dateStr, &r.Notes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
		return r, fmt.Errorf("%w: scan: %v", ErrStoreRead, err)
	}
	r.Unit = Unit(unit)
	day, err := ParseDate(dateStr)
	if err != nil {
		return r, fmt.Errorf("%w: %v", ErrStoreRead, err)
	}
	r.PurchaseDate = day
	return r, nil
}
