package skyetel

import (
	"bytes"
	"encoding/json"
)

// decodeObject maps one raw JSON object into a domain record, first
// verifying that every required top-level key is present and non-null.
// A missing key is reported as a DecodeError instead of silently leaving
// the field at its zero value.
func decodeObject[T any](data []byte, resource string, required ...string) (*T, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, &DecodeError{Resource: resource, Err: err}
	}

	for _, field := range required {
		raw, ok := fields[field]
		if !ok || bytes.Equal(raw, []byte("null")) {
			return nil, &DecodeError{Resource: resource, Field: field}
		}
	}

	record := new(T)
	if err := json.Unmarshal(data, record); err != nil {
		return nil, &DecodeError{Resource: resource, Err: err}
	}
	return record, nil
}

// decodeList maps a raw JSON array element by element, preserving input
// order. An empty, null, or absent payload yields an empty slice, not an
// error.
func decodeList[T any](data []byte, resource string, required ...string) ([]T, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []T{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, &DecodeError{Resource: resource, Err: err}
	}

	records := make([]T, 0, len(raw))
	for _, item := range raw {
		record, err := decodeObject[T](item, resource, required...)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	return records, nil
}
