package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ParseChatID coerces a raw JSON value into an optional chat id. The panel
// historically sends chat ids as strings; empty, missing or non-numeric
// input means "no chat id", never an error.
func ParseChatID(raw json.RawMessage) *int64 {
	if len(raw) == 0 {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil
		}
		return &n
	}
	var n int64
	if err := json.Unmarshal(raw, &n); err == nil {
		return &n
	}
	return nil
}

// ParseSent coerces a raw JSON value into the sent flag. Boolean true and
// the string "true" count; everything else, including absence, is false.
func ParseSent(raw json.RawMessage) bool {
	if len(raw) == 0 {
		return false
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s == "true"
	}
	return false
}

// CoerceFields turns an update body into column→value pairs. Unknown keys
// are dropped, chat_id and sent go through the same coercion as create, and
// the remaining fields must be JSON strings.
func CoerceFields(body map[string]json.RawMessage) map[string]any {
	fields := make(map[string]any, len(body))
	for key, raw := range body {
		col, ok := TaskColumns[key]
		if !ok {
			continue
		}
		switch col {
		case "chat_id":
			fields[col] = ParseChatID(raw)
		case "sent":
			fields[col] = ParseSent(raw)
		default:
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				continue
			}
			fields[col] = s
		}
	}
	return fields
}
