package kurv

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotFormat selects the wire format of a whole-collection snapshot.
// JSON matches the flat-mirror payload; msgpack is a compact binary
// alternative for archival exports.
type SnapshotFormat int

const (
	SnapshotJSON SnapshotFormat = iota
	SnapshotMsgpack
)

func (f SnapshotFormat) String() string {
	switch f {
	case SnapshotJSON:
		return "json"
	case SnapshotMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// ParseSnapshotFormat parses a string into a SnapshotFormat.
func ParseSnapshotFormat(s string) (SnapshotFormat, error) {
	switch s {
	case "json":
		return SnapshotJSON, nil
	case "msgpack":
		return SnapshotMsgpack, nil
	default:
		return 0, fmt.Errorf("unknown snapshot format: %q", s)
	}
}

// EncodeSnapshot writes the records as a whole-collection snapshot.
func EncodeSnapshot(w io.Writer, records []PurchaseRecord, format SnapshotFormat) error {
	switch format {
	case SnapshotJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	case SnapshotMsgpack:
		return msgpack.NewEncoder(w).Encode(records)
	default:
		return fmt.Errorf("unknown snapshot format: %d", format)
	}
}

// DecodeSnapshot reads a whole-collection snapshot.
func DecodeSnapshot(r io.Reader, format SnapshotFormat) ([]PurchaseRecord, error) {
	var records []PurchaseRecord
	switch format {
	case SnapshotJSON:
		if err := json.NewDecoder(r).Decode(&records); err != nil {
			return nil, fmt.Errorf("could not decode json snapshot: %w", err)
		}
	case SnapshotMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&records); err != nil {
			return nil, fmt.Errorf("could not decode msgpack snapshot: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown snapshot format: %d", format)
	}
	return records, nil
}

// ExtractRecords pulls purchase records out of an arbitrary JSON document
// using a jsonpath expression, for importing exports of other apps whose
// record array is nested somewhere in the payload. "$" reads a plain
// top-level array.
func ExtractRecords(r io.Reader, path string) ([]PurchaseRecord, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("could not decode json document: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list wrapping the
	// answer or the answer itself; unwrap a single-element list holding the
	// array.
	if jlist, ok := jval.([]any); ok && len(jlist) == 1 {
		if _, isObj := jlist[0].(map[string]any); !isObj {
			jval = jlist[0]
		}
	}
	raw, err := json.Marshal(jval)
	if err != nil {
		return nil, fmt.Errorf("could not remarshal extracted value: %w", err)
	}
	var records []PurchaseRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("extracted value at %q is not a record array: %w", path, err)
	}
	return records, nil
}
