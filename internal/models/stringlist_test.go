package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	tests := []struct {
		name     string
		list     StringList
		expected string
	}{
		{
			name:     "ordered values",
			list:     StringList{"a", "b"},
			expected: `["a","b"]`,
		},
		{
			name:     "nil serializes as empty array",
			list:     nil,
			expected: `[]`,
		},
		{
			name:     "empty list",
			list:     StringList{},
			expected: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.list.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestStringListScan(t *testing.T) {
	tests := []struct {
		name     string
		src      interface{}
		expected StringList
	}{
		{
			name:     "valid array preserves order",
			src:      `["a","b"]`,
			expected: StringList{"a", "b"},
		},
		{
			name:     "bytes input",
			src:      []byte(`["x"]`),
			expected: StringList{"x"},
		},
		{
			name:     "null column defaults to empty",
			src:      nil,
			expected: StringList{},
		},
		{
			name:     "empty string defaults to empty",
			src:      "",
			expected: StringList{},
		},
		{
			name:     "malformed json defaults to empty",
			src:      `{"oops"`,
			expected: StringList{},
		},
		{
			name:     "bare string defaults to empty",
			src:      `not-json`,
			expected: StringList{},
		},
		{
			name:     "json null defaults to empty",
			src:      `null`,
			expected: StringList{},
		},
		{
			name:     "unexpected type defaults to empty",
			src:      42,
			expected: StringList{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			// Scanning must never surface an error to the caller.
			require.NoError(t, l.Scan(tt.src))
			assert.Equal(t, tt.expected, l)
		})
	}
}

func TestStringListRoundTrip(t *testing.T) {
	in := StringList{"typography", "minimal", "dark"}
	v, err := in.Value()
	require.NoError(t, err)

	var out StringList
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}
