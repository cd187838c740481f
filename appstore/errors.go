package appstore

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidInput wraps every precondition failure (missing identifier,
// out-of-range pagination, unknown enum value). These are raised before
// any network I/O.
var ErrInvalidInput = errors.New("invalid input")

// ErrEmptyResponse marks a 200 response whose body was empty where
// content was required. It is deliberately distinct from a 404.
var ErrEmptyResponse = errors.New("empty response body")

// ValidationError reports a structurally unexpected upstream payload.
// It is always fatal and never retried: a shape mismatch will not fix
// itself on a second attempt.
type ValidationError struct {
	Op     string
	Detail string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: unexpected response shape: %s", e.Op, e.Detail)
}

// bodyPreviewLimit bounds how much of a malformed body ends up in error
// messages; enough to debug a format change without flooding logs.
const bodyPreviewLimit = 200

func decodeJSON(op string, body string, v any) error {
	err := json.Unmarshal([]byte(body), v)
	if err == nil {
		return nil
	}
	preview := body
	if len(preview) > bodyPreviewLimit {
		preview = preview[:bodyPreviewLimit] + "…"
	}
	return fmt.Errorf("%s: decoding response: %w (body: %q)", op, err, preview)
}
