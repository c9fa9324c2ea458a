package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// TagList is an ordered list of tags stored as a JSON text blob in a single
// column. Serialization lives here and nowhere else; the raw column stays
// searchable with a plain substring match.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if t == nil {
		t = TagList{}
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (t *TagList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*t = TagList{}
		return nil
	case string:
		raw = []byte(v)
	case []byte:
		raw = v
	default:
		return fmt.Errorf("cannot scan %T into TagList", src)
	}

	if len(raw) == 0 {
		*t = TagList{}
		return nil
	}
	return json.Unmarshal(raw, t)
}
