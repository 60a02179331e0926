package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONParser(t *testing.T) {
	tests := []struct {
		name            string
		content         string
		expectedColumns []string
		expectedRows    [][]any
		expectedErr     string
	}{
		{
			name:            "records",
			content:         `[{"name":"Alice","age":30,"score":1.5},{"name":"Bob","extra":null,"age":null}]`,
			expectedColumns: []string{"name", "age", "score", "extra"},
			expectedRows: [][]any{
				{"Alice", int64(30), 1.5, ""},
				{"Bob", "", "", ""},
			},
		},
		{
			name:            "positional rows",
			content:         `[[1,"a"],[2,"b",true]]`,
			expectedColumns: []string{"0", "1", "2"},
			expectedRows: [][]any{
				{int64(1), "a", ""},
				{int64(2), "b", true},
			},
		},
		{
			name:            "scalars",
			content:         `[1, "two", false]`,
			expectedColumns: []string{"0"},
			expectedRows:    [][]any{{int64(1)}, {"two"}, {false}},
		},
		{
			name:            "columns keyed by row label",
			content:         `{"city":{"r1":"Paris","r2":"Oslo"},"pop":{"r1":2.1,"r3":0.7}}`,
			expectedColumns: []string{"city", "pop"},
			expectedRows: [][]any{
				{"Paris", 2.1},
				{"Oslo", ""},
				{"", 0.7},
			},
		},
		{
			name:            "column arrays",
			content:         `{"a":[1,2],"b":["x","y"]}`,
			expectedColumns: []string{"a", "b"},
			expectedRows: [][]any{
				{int64(1), "x"},
				{int64(2), "y"},
			},
		},
		{
			name:            "nested values pass through",
			content:         `[{"a":{"b":1},"c":[1,2]}]`,
			expectedColumns: []string{"a", "c"},
			expectedRows: [][]any{
				{map[string]any{"b": 1.0}, []any{1.0, 2.0}},
			},
		},
		{
			name:            "integer overflow becomes float",
			content:         `[{"n":12345678901234567890}]`,
			expectedColumns: []string{"n"},
			expectedRows:    [][]any{{12345678901234567890.0}},
		},
		{
			name:            "empty array",
			content:         `[]`,
			expectedColumns: []string{},
			expectedRows:    [][]any{},
		},
		{
			name:            "empty object",
			content:         `{}`,
			expectedColumns: []string{},
			expectedRows:    [][]any{},
		},
		{
			name:        "unequal column arrays",
			content:     `{"a":[1,2],"b":[1]}`,
			expectedErr: "all arrays must be of the same length",
		},
		{
			name:        "scalar object values",
			content:     `{"a":1,"b":2}`,
			expectedErr: "unsupported JSON layout",
		},
		{
			name:        "top level scalar",
			content:     `42`,
			expectedErr: "unsupported JSON layout",
		},
		{
			name:        "invalid",
			content:     `{"a":`,
			expectedErr: "invalid JSON document",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ds, err := JSONParser{}.Parse([]byte(tc.content))
			if tc.expectedErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedColumns, ds.Columns)
			assert.Equal(t, tc.expectedRows, rowValues(ds.Data))
		})
	}
}
