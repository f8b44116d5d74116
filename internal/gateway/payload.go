// internal/gateway/payload.go
//
// Defensive decoding of client event arguments. The socket.io parser
// hands us []interface{}; request payloads are JSON objects, so the
// first argument should be a map. Anything malformed decodes to empty
// values and surfaces as the most specific taxonomy error upstream.

package gateway

// objectArg extracts the payload object from event args, or nil.
func objectArg(args []interface{}) map[string]interface{} {
	if len(args) == 0 {
		return nil
	}
	m, _ := args[0].(map[string]interface{})
	return m
}

// stringField reads a string field from a decoded payload object.
// Missing fields and non-string values yield "".
func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
