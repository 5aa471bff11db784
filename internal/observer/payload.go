package observer

import "fmt"

// stringField fetches a payload value and renders it as a string. Payload
// values are loosely typed per the catalog contract, so numeric IDs are
// accepted and stringified.
func stringField(data map[string]any, key string) (string, bool) {
	v, ok := data[key]
	if !ok || v == nil {
		return "", false
	}
	if s, ok := v.(string); ok {
		return s, true
	}
	return fmt.Sprint(v), true
}
