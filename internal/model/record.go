package model

import (
	"bytes"
	"encoding/json"
)

// Record is one row of a Dataset keyed by column name.
type Record struct {
	columns []string
	values  []any
}

// Get returns the value stored under column.
func (r Record) Get(column string) (any, bool) {
	for i, c := range r.columns {
		if c == column {
			return r.values[i], true
		}
	}
	return nil, false
}

// Values returns the row values in column order.
func (r Record) Values() []any {
	return r.values
}

// MarshalJSON writes the record as an object whose keys follow column order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.columns {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(r.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
