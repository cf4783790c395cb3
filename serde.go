package ot

import (
	"encoding/json"
	"fmt"
)

// opRecord is the wire shape of a single Operation, matching the
// widely-known Quill Delta JSON format:
//
//	{"insert": "text", "attributes": {...}?}
//	{"retain": n, "attributes": {...}?}
//	{"delete": n}
//
// attributes is omitted when Empty or Follow (Follow is never emitted in
// practice since Invert is its only producer and callers normalize before
// serializing). This differs from a compact signed-integer array encoding,
// which cannot carry attributes at all (see DESIGN.md).
type opRecord struct {
	Insert     *string           `json:"insert,omitempty"`
	Retain     *uint64           `json:"retain,omitempty"`
	Delete     *uint64           `json:"delete,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// attrsForWire returns the map to embed in an opRecord's attributes field,
// or nil to omit it: Empty and Follow never appear on the wire.
func attrsForWire(a Attributes) map[string]string {
	if !a.IsCustom() {
		return nil
	}
	return a.Data()
}

// MarshalJSON implements json.Marshaler for Delta using the Quill Delta
// wire shape.
func (d *Delta) MarshalJSON() ([]byte, error) {
	if d == nil {
		return json.Marshal([]opRecord{})
	}

	records := make([]opRecord, len(d.ops))
	for i, op := range d.ops {
		switch v := op.(type) {
		case Insert:
			text := v.Text
			records[i] = opRecord{Insert: &text, Attributes: attrsForWire(v.Attrs_)}
		case Retain:
			n := v.N
			records[i] = opRecord{Retain: &n, Attributes: attrsForWire(v.Attrs_)}
		case Delete:
			n := v.N
			records[i] = opRecord{Delete: &n}
		}
	}
	return json.Marshal(records)
}

// UnmarshalJSON implements json.Unmarshaler for Delta using the Quill
// Delta wire shape.
func (d *Delta) UnmarshalJSON(data []byte) error {
	var records []opRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("%w: %v", ErrParseError, err)
	}

	*d = Delta{ops: make([]Operation, 0, len(records))}

	for _, r := range records {
		attrs := Empty()
		if len(r.Attributes) > 0 {
			attrs = Custom(r.Attributes)
		}
		switch {
		case r.Insert != nil:
			d.Insert(*r.Insert, attrs)
		case r.Retain != nil:
			d.Retain(*r.Retain, attrs)
		case r.Delete != nil:
			d.Delete(*r.Delete)
		default:
			return fmt.Errorf("%w: op record has no insert/retain/delete key", ErrParseError)
		}
	}

	return nil
}

// String returns the Delta's Quill-shaped JSON representation.
func (d *Delta) String() string {
	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return string(data)
}
