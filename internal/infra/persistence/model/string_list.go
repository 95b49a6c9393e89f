package model

import (
	"database/sql/driver"
	"encoding/json"

	"github.com/pkg/errors"
)

// StringList stores an ordered list of strings in a jsonb column.
// It keeps list-valued fields (dietary preferences, ingredients, steps)
// queryable as JSON without a dedicated join table.
type StringList []string

// Value implements driver.Valuer, serializing the list as JSON.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}

	data, err := json.Marshal([]string(l))
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal string list")
	}

	return string(data), nil
}

// Scan implements sql.Scanner, deserializing a jsonb value into the list.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return errors.Errorf("unsupported string list source type %T", src)
	}

	return errors.Wrap(json.Unmarshal(data, (*[]string)(l)), "failed to unmarshal string list")
}
