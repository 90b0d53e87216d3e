package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrBadShape is returned when a collection document is neither a bare
// array nor an envelope object with a data array.
var ErrBadShape = errors.New("collection is neither an array nor a data envelope")

// Collection holds the records of one entity type plus the on-disk shape
// they were loaded in. Source documents are either a bare array or an
// envelope {"data": [...], ...}; the shape is decided once at decode time
// and round-trips symmetrically on encode, with envelope metadata
// preserved verbatim except for the replaced data field.
type Collection struct {
	Records []Record

	meta map[string]json.RawMessage // nil for a bare array
}

// NewCollection returns a bare-array collection.
func NewCollection(records []Record) *Collection {
	return &Collection{Records: records}
}

// Enveloped reports whether the collection was loaded from an envelope.
func (c *Collection) Enveloped() bool {
	return c.meta != nil
}

// Find returns the record with the given id.
func (c *Collection) Find(id int) (Record, bool) {
	for _, r := range c.Records {
		if r.ID() == id {
			return r, true
		}
	}
	return nil, false
}

// DecodeCollection parses a collection document, accepting both shapes.
func DecodeCollection(raw []byte) (*Collection, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, ErrBadShape
	}

	if trimmed[0] == '[' {
		var records []Record
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("decoding collection array: %w", err)
		}
		return &Collection{Records: records}, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decoding collection envelope: %w", err)
	}

	data, ok := envelope["data"]
	if !ok {
		return nil, ErrBadShape
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decoding envelope data: %w", err)
	}
	delete(envelope, "data")

	return &Collection{Records: records, meta: envelope}, nil
}

// Encode serializes the collection back into the shape it was loaded in.
func (c *Collection) Encode() ([]byte, error) {
	records := c.Records
	if records == nil {
		records = []Record{}
	}

	if c.meta == nil {
		return json.MarshalIndent(records, "", "  ")
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}
	doc := make(map[string]json.RawMessage, len(c.meta)+1)
	for k, v := range c.meta {
		doc[k] = v
	}
	doc["data"] = data
	return json.MarshalIndent(doc, "", "  ")
}
