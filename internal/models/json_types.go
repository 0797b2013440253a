package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/goccy/go-json"
)

// StringList is a list of strings persisted as a JSON array column.
type StringList []string

func (l *StringList) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
	if len(data) == 0 {
		*l = StringList{}
		return nil
	}
	var out []string
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if out == nil {
		out = []string{}
	}
	*l = out
	return nil
}

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Metadata is a free-form key/value map persisted as a JSON object column.
type Metadata map[string]interface{}

func (m *Metadata) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*m = Metadata{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Metadata", value)
	}
	if len(data) == 0 {
		*m = Metadata{}
		return nil
	}
	out := map[string]interface{}{}
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	if out == nil {
		out = map[string]interface{}{}
	}
	*m = out
	return nil
}

func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(map[string]interface{}(m))
}

// Unique returns the list without duplicates, keeping first occurrences in order.
func (l StringList) Unique() StringList {
	seen := make(map[string]struct{}, len(l))
	out := make(StringList, 0, len(l))
	for _, s := range l {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
