package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// LooseString decodes from a JSON string, number or boolean. Non-string
// scalars keep their literal text, so 1984 becomes "1984".
type LooseString string

func (s *LooseString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	switch data[0] {
	case '"':
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = LooseString(str)
	case '{', '[':
		return fmt.Errorf("cannot use %s as text", data)
	default:
		*s = LooseString(data)
	}
	return nil
}

// LooseInt64 decodes from a JSON integer or a string holding one, so both
// 1 and "1" are accepted.
type LooseInt64 int64

func (n *LooseInt64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return err
		}
	}

	value, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("cannot use %s as an integer", data)
	}
	*n = LooseInt64(value)
	return nil
}
