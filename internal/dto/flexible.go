package dto

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FlexibleString accepts a JSON string or a bare JSON number, so clients may
// send no_ktp and no_telepon either way without losing leading zeros.
type FlexibleString string

func (s *FlexibleString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*s = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = FlexibleString(v)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = FlexibleString(n.String())
	return nil
}

func (s FlexibleString) String() string {
	return strings.TrimSpace(string(s))
}
