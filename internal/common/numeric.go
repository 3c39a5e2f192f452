package common

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Float is a float64 that survives the partial payloads the form layer sends:
// null, "", a quoted number, NaN, or garbage all decode to zero instead of
// failing the whole request. Totals are best-effort over whatever arrived;
// strict validation happens server-side at save time.
type Float float64

// UnmarshalJSON implements json.Unmarshaler with zero-default semantics.
func (f *Float) UnmarshalJSON(data []byte) error {
	*f = 0
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	raw := string(trimmed)
	if strings.HasPrefix(raw, `"`) {
		unquoted, err := strconv.Unquote(raw)
		if err != nil {
			return nil
		}
		raw = strings.TrimSpace(unquoted)
		if raw == "" {
			return nil
		}
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return nil
	}
	*f = Float(parsed)
	return nil
}

// MarshalJSON renders the value as a plain JSON number.
func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return json.Marshal(v)
}

// FloatOrZero sanitises a float that may have come from upstream arithmetic.
func FloatOrZero(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseFloatDefault converts a string to a float64 falling back to the default
// when parsing fails.
func ParseFloatDefault(value string, def float64) float64 {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return def
	}
	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return def
	}
	return parsed
}
