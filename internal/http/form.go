package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strconv"
)

// EncodeForm serializes a request body into application/x-www-form-urlencoded
// data with bracketed keys for nested objects and arrays, the shape the API
// expects: metadata[order_id]=123, line_items[0][name]=shirt. The body is
// routed through its JSON representation so the same struct tags drive both
// encodings. Null values are omitted.
func EncodeForm(body interface{}) (string, error) {
	raw, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("serializing request body: %w", err)
	}

	// UseNumber keeps int64 amounts as literals instead of float64, so values
	// above 2^53 survive the round trip exactly.
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var top map[string]interface{}
	if err := decoder.Decode(&top); err != nil {
		return "", fmt.Errorf("request body must encode to a JSON object: %w", err)
	}

	values := url.Values{}
	flattenObject("", top, values)

	return values.Encode(), nil
}

func flattenObject(prefix string, obj map[string]interface{}, values url.Values) {
	// Deterministic key order keeps encoded bodies stable across attempts.
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	for _, key := range keys {
		name := key
		if prefix != "" {
			name = prefix + "[" + key + "]"
		}

		flattenValue(name, obj[key], values)
	}
}

func flattenValue(name string, value interface{}, values url.Values) {
	switch v := value.(type) {
	case map[string]interface{}:
		flattenObject(name, v, values)
	case []interface{}:
		for i, item := range v {
			flattenValue(fmt.Sprintf("%s[%d]", name, i), item, values)
		}
	case string:
		values.Set(name, v)
	case json.Number:
		values.Set(name, v.String())
	case bool:
		values.Set(name, strconv.FormatBool(v))
	case nil:
		// Null values are omitted.
	default:
		values.Set(name, fmt.Sprintf("%v", v))
	}
}
