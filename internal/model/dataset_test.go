package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDataset(t *testing.T) {
	tests := []struct {
		name         string
		columns      []string
		rows         [][]any
		expectedJSON string
	}{
		{
			name:         "no columns",
			columns:      nil,
			rows:         nil,
			expectedJSON: `{"columns":[],"data":[],"shape":{"rows":0,"columns":0}}`,
		},
		{
			name:         "header only",
			columns:      []string{"a", "b"},
			rows:         nil,
			expectedJSON: `{"columns":["a","b"],"data":[],"shape":{"rows":0,"columns":2}}`,
		},
		{
			name:    "missing values filled",
			columns: []string{"name", "age", "city"},
			rows: [][]any{
				{"Alice", int64(30), nil},
				{"Bob"},
			},
			expectedJSON: `{"columns":["name","age","city"],"data":[{"name":"Alice","age":30,"city":""},{"name":"Bob","age":"","city":""}],"shape":{"rows":2,"columns":3}}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds := NewDataset(tc.columns, tc.rows)

			out, err := json.Marshal(ds)
			require.NoError(t, err)
			assert.JSONEq(t, tc.expectedJSON, string(out))
			assert.Equal(t, len(ds.Data), ds.Shape.Rows)
			assert.Equal(t, len(ds.Columns), ds.Shape.Columns)
		})
	}
}

func TestRecordKeepsColumnOrder(t *testing.T) {
	ds := NewDataset([]string{"zeta", "alpha", "mid"}, [][]any{{1, 2, 3}})

	out, err := json.Marshal(ds.Data[0])
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":2,"mid":3}`, string(out))

	v, ok := ds.Data[0].Get("alpha")
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = ds.Data[0].Get("missing")
	assert.False(t, ok)
	assert.Equal(t, []any{1, 2, 3}, ds.Data[0].Values())
}
