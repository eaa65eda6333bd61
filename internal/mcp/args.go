// ABOUTME: Explicit extraction of tool arguments from the untyped argument bag
// ABOUTME: Required strings fail fast; malformed optional numbers degrade to defaults

package mcp

// stringArg reads a string argument. The second return is false when
// the key is absent or the value is not a string.
func stringArg(args map[string]any, key string) (string, bool) {
	v, ok := args[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// limitArg reads an optional positive integer argument, falling back to
// def when the value is missing, non-numeric, or not positive, and
// capping the result at max. JSON numbers arrive as float64; plain ints
// are accepted for direct callers.
func limitArg(args map[string]any, key string, def, max int) int {
	limit := def
	if v, ok := args[key]; ok {
		switch n := v.(type) {
		case float64:
			if n > 0 {
				limit = int(n)
			}
		case int:
			if n > 0 {
				limit = n
			}
		}
	}
	if limit > max {
		limit = max
	}
	return limit
}
