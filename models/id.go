package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ID is a numeric identifier as returned by the metering API. The backend is
// inconsistent about its encoding: the same column can arrive as a JSON number
// in one endpoint and as a numeric string in another. ID accepts both and
// always marshals back as a number, so identifiers can be compared with ==.
type ID int64

// UnmarshalJSON implements [json.Unmarshaler]. It accepts JSON numbers,
// numeric strings and null (decoded as zero).
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = 0
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode id string: %w", err)
		}
		parsed, err := ParseID(s)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode id number: %w", err)
	}
	parsed, err := ParseID(n.String())
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// ParseID converts s to an [ID]. Surrounding whitespace is ignored and an
// integral float representation such as "12.0" is accepted.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}

	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ID(v), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int64(f)) {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return ID(int64(f)), nil
}

// String returns the base-10 representation of the identifier.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
