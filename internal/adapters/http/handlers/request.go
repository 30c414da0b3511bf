package handlers

import (
	"encoding/json"
)

// decodeObject reads a JSON object body. ok is false for an empty body,
// malformed JSON or any other JSON value.
func decodeObject(body []byte) (fields map[string]json.RawMessage, ok bool) {
	if len(body) == 0 {
		return nil, false
	}
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// numberValue returns raw as a float64 when it is a JSON number
func numberValue(raw json.RawMessage) *float64 {
	if len(raw) == 0 {
		return nil
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	f, ok := v.(float64)
	if !ok {
		return nil
	}
	return &f
}

// stringValue returns raw when it is a JSON string, else ""
func stringValue(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

// textValue returns a JSON string as is and a JSON number as its literal
func textValue(raw json.RawMessage) string {
	if n := numberValue(raw); n != nil {
		return string(raw)
	}
	return stringValue(raw)
}
