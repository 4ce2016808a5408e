package validation

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Payload is a raw submitted key-value document as decoded from the transport
type Payload map[string]any

// present reports whether field carries a value. Blank strings and nulls are absent;
// zero numbers and empty lists are present.
func (p Payload) present(field string) bool {
	raw, ok := p[field]
	if !ok || raw == nil {
		return false
	}
	if s, isString := raw.(string); isString {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// asString coerces scalar values the way form submissions arrive
func asString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return "", false
	}
}

// asNumber accepts JSON numbers and numeric strings
func asNumber(raw any) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// asStringList accepts arrays of strings, or a lone string as a one-element list.
// Blank elements are dropped.
func asStringList(raw any) ([]string, bool) {
	var items []any
	switch v := raw.(type) {
	case []string:
		items = make([]any, len(v))
		for i := range v {
			items[i] = v[i]
		}
	case []any:
		items = v
	case string:
		items = []any{v}
	default:
		return nil, false
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out, true
}

var submittedAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// SubmittedAt returns the caller-supplied submission time, or now when it is
// absent or unparseable
func (p Payload) SubmittedAt(now time.Time) time.Time {
	raw, ok := p["submittedAt"].(string)
	if !ok {
		return now
	}
	raw = strings.TrimSpace(raw)
	for _, layout := range submittedAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return now
}
