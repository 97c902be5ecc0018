package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Metadata is the audit stamp embedded in every relational entity. It is
// persisted as a single JSON column named "meta" so new stamp fields never
// require a schema change.
type Metadata struct {
	CreatedBy string `json:"created_by"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
	UpdatedBy string `json:"updated_by"`
}

// NewCreatedStamp returns a Metadata carrying only the created fields.
func NewCreatedStamp(userID string) Metadata {
	return Metadata{
		CreatedBy: userID,
		CreatedAt: time.Now().UTC().Unix(),
	}
}

// Touch stamps the updated fields, preserving the created ones.
func (m *Metadata) Touch(userID string) {
	m.UpdatedBy = userID
	m.UpdatedAt = time.Now().UTC().Unix()
}

// Value implements driver.Valuer so Metadata can be written to a JSON column.
// Serialized as text so JSON extraction works uniformly across dialects.
func (m Metadata) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for reading the JSON column back.
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = Metadata{}
		return nil
	}

	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("cannot scan %T into Metadata", value)
	}
}

// MetadataFromMap rebuilds a Metadata from the generic row representation the
// table accessor returns. Numeric fields arrive as whatever the JSON decoder
// produced (float64, json.Number, or int64 depending on the driver).
func MetadataFromMap(raw map[string]interface{}) Metadata {
	var m Metadata
	if raw == nil {
		return m
	}

	if v, ok := raw["created_by"].(string); ok {
		m.CreatedBy = v
	}
	if v, ok := raw["updated_by"].(string); ok {
		m.UpdatedBy = v
	}
	m.CreatedAt = toUnix(raw["created_at"])
	m.UpdatedAt = toUnix(raw["updated_at"])
	return m
}

func toUnix(v interface{}) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case float64:
		return int64(n)
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0
		}
		return i
	default:
		return 0
	}
}
