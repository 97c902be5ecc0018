package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatedStamp(t *testing.T) {
	m := NewCreatedStamp("user-1")

	assert.Equal(t, "user-1", m.CreatedBy)
	assert.NotZero(t, m.CreatedAt)
	assert.Zero(t, m.UpdatedAt)
	assert.Empty(t, m.UpdatedBy)
}

func TestTouchPreservesCreatedFields(t *testing.T) {
	m := Metadata{CreatedBy: "user-1", CreatedAt: 100}
	m.Touch("user-2")

	assert.Equal(t, "user-1", m.CreatedBy)
	assert.EqualValues(t, 100, m.CreatedAt)
	assert.Equal(t, "user-2", m.UpdatedBy)
	assert.NotZero(t, m.UpdatedAt)
}

func TestMetadataValueScanRoundTrip(t *testing.T) {
	in := Metadata{CreatedBy: "user-1", CreatedAt: 100, UpdatedBy: "user-2", UpdatedAt: 200}

	v, err := in.Value()
	require.NoError(t, err)

	// Stored as JSON text, not raw bytes.
	text, ok := v.(string)
	require.True(t, ok, "expected string, got %T", v)

	var out Metadata
	require.NoError(t, out.Scan(text))
	assert.Equal(t, in, out)

	var fromBytes Metadata
	require.NoError(t, fromBytes.Scan([]byte(text)))
	assert.Equal(t, in, fromBytes)
}

func TestMetadataScanNil(t *testing.T) {
	m := Metadata{CreatedBy: "stale"}
	require.NoError(t, m.Scan(nil))
	assert.Equal(t, Metadata{}, m)
}

func TestMetadataScanUnsupportedType(t *testing.T) {
	var m Metadata
	assert.Error(t, m.Scan(42))
}

func TestMetadataFromMap(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
		want Metadata
	}{
		{
			name: "nil map",
			raw:  nil,
			want: Metadata{},
		},
		{
			name: "float timestamps from a generic JSON decode",
			raw: map[string]interface{}{
				"created_by": "user-1",
				"created_at": float64(100),
				"updated_by": "user-2",
				"updated_at": float64(200),
			},
			want: Metadata{CreatedBy: "user-1", CreatedAt: 100, UpdatedBy: "user-2", UpdatedAt: 200},
		},
		{
			name: "int64 timestamps",
			raw: map[string]interface{}{
				"created_by": "user-1",
				"created_at": int64(100),
			},
			want: Metadata{CreatedBy: "user-1", CreatedAt: 100},
		},
		{
			name: "json.Number timestamps",
			raw: map[string]interface{}{
				"created_at": json.Number("100"),
			},
			want: Metadata{CreatedAt: 100},
		},
		{
			name: "non-numeric timestamp falls back to zero",
			raw: map[string]interface{}{
				"created_at": "not a number",
			},
			want: Metadata{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MetadataFromMap(tt.raw))
		})
	}
}
