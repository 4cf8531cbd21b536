package export

import "encoding/json"

// SerializeAttributes renders an attribute bag as a JSON object string for
// display purposes. Callers treat the result as opaque text.
func SerializeAttributes(attributes map[string]any) string {
	if len(attributes) == 0 {
		return "{}"
	}
	b, err := json.Marshal(attributes)
	if err != nil {
		return "{}"
	}
	return string(b)
}
