package kurv

import (
	"bytes"
	"strings"
	"testing"
)

func snapshotFixture() []PurchaseRecord {
	return []PurchaseRecord{
		{ID: 1, ProductName: "Organic Bananas", StoreName: "Super Brugsen", Quantity: 1, Unit: Kilo, Price: 24.95, Currency: "DKK", PurchaseDate: MustParseDate("2025-08-20"), Notes: "Really ripe and sweet"},
		{ID: 2, ProductName: "Avocados", StoreName: "Netto", Quantity: 3, Unit: Piece, Price: 30, Currency: "DKK", PurchaseDate: MustParseDate("2025-08-22")},
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	for _, format := range []SnapshotFormat{SnapshotJSON, SnapshotMsgpack} {
		t.Run(format.String(), func(t *testing.T) {
			records := snapshotFixture()
			var buf bytes.Buffer
			if err := EncodeSnapshot(&buf, records, format); err != nil {
				t.Fatalf("EncodeSnapshot: %v", err)
			}
			decoded, err := DecodeSnapshot(&buf, format)
			if err != nil {
				t.Fatalf("DecodeSnapshot: %v", err)
			}
			if len(decoded) != len(records) {
				t.Fatalf("decoded %d records, want %d", len(decoded), len(records))
			}
			for i := range records {
				if decoded[i] != records[i] {
					t.Errorf("decoded[%d] = %+v, want %+v", i, decoded[i], records[i])
				}
			}
		})
	}
}

func TestParseSnapshotFormat(t *testing.T) {
	if _, err := ParseSnapshotFormat("yaml"); err == nil {
		t.Error("ParseSnapshotFormat(\"yaml\") should fail")
	}
	f, err := ParseSnapshotFormat("msgpack")
	if err != nil || f != SnapshotMsgpack {
		t.Errorf("ParseSnapshotFormat(\"msgpack\") = %v, %v", f, err)
	}
}

func TestExtractRecords(t *testing.T) {
	// A foreign export nesting the record array inside a wrapper document.
	doc := `{
	  "version": 2,
	  "data": {
	    "purchases": [
	      {"productName": "Milk", "storeName": "Netto", "quantity": 1, "unit": "L", "price": 12, "currency": "DKK", "purchaseDate": "2025-08-11"}
	    ]
	  }
	}`
	records, err := ExtractRecords(strings.NewReader(doc), "$.data.purchases")
	if err != nil {
		t.Fatalf("ExtractRecords: %v", err)
	}
	if len(records) != 1 || records[0].ProductName != "Milk" || records[0].Unit != Liter {
		t.Errorf("ExtractRecords = %+v", records)
	}
}

func TestExtractRecords_TopLevelArray(t *testing.T) {
	doc := `[{"productName": "Eggs", "storeName": "Irma", "quantity": 10, "unit": "piece", "price": 32, "currency": "DKK", "purchaseDate": "2025-08-12"}]`
	records, err := ExtractRecords(strings.NewReader(doc), "$")
	if err != nil {
		t.Fatalf("ExtractRecords: %v", err)
	}
	if len(records) != 1 || records[0].ProductName != "Eggs" {
		t.Errorf("ExtractRecords = %+v", records)
	}
}

func TestExtractRecords_BadPath(t *testing.T) {
	doc := `{"data": 42}`
	if _, err := ExtractRecords(strings.NewReader(doc), "$.data"); err == nil {
		t.Error("extracting a non-array should fail")
	}
}
