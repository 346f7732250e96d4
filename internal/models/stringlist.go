package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"log/slog"
)

// StringList is an ordered list of strings persisted as a JSON array in a
// text column. Writes always serialize a list (nil marshals as []); reads
// tolerate NULL and malformed stored data by yielding the empty list so a
// bad row never fails an aggregate read.
type StringList []string

// Value implements driver.Valuer.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *StringList) Scan(src interface{}) error {
	*l = StringList{}
	if src == nil {
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		slog.Warn("string list column has unexpected type, defaulting to empty",
			slog.String("type", fmt.Sprintf("%T", src)))
		return nil
	}
	if len(raw) == 0 {
		return nil
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("malformed string list column, defaulting to empty",
			slog.String("error", err.Error()))
		return nil
	}
	if items != nil {
		*l = items
	}
	return nil
}
