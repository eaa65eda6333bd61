// ABOUTME: Fallback failure text shared by every tool
// ABOUTME: Generic HTTP failures, decode failures, and transport faults

package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/curaq/curaq-mcp/internal/api"
)

// genericFailure renders a non-2xx response that matched no specific
// classification. The status code is included here, and only here, for
// diagnostic value.
func genericFailure(status int, body []byte) string {
	detail := extractDetail(body)
	if detail == "" {
		return fmt.Sprintf("The request failed (HTTP %d).", status)
	}
	return fmt.Sprintf("The request failed (HTTP %d): %s", status, detail)
}

// extractDetail pulls the best human-readable fragment out of an error
// body: the message field, then the error code, then the raw text.
func extractDetail(body []byte) string {
	var errBody api.ErrorBody
	if err := json.Unmarshal(body, &errBody); err == nil {
		if errBody.Message != "" {
			return errBody.Message
		}
		if errBody.Error != "" {
			return errBody.Error
		}
	}
	return strings.TrimSpace(string(body))
}

// decodeFailure renders a malformed body on an otherwise-successful
// response. Treated as a transport fault, not a backend refusal.
func decodeFailure(err error) string {
	return fmt.Sprintf("An error occurred: invalid response from the article service: %v", err)
}

// TransportFailure renders a failed outbound call (network error,
// oversized body, context teardown).
func TransportFailure(err error) string {
	return fmt.Sprintf("An error occurred while contacting the article service: %v", err)
}

// UnexpectedFailure renders a recovered panic from the dispatch path.
func UnexpectedFailure(v any) string {
	return fmt.Sprintf("An unexpected error occurred: %v", v)
}
