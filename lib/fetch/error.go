package fetch

import (
	"errors"
	"fmt"
)

// StatusError is returned for any terminal non-2xx response. Callers are
// expected to branch on Code rather than on the message text.
type StatusError struct {
	Code    int
	URL     string
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s (status %d, url %s)", e.Message, e.Code, e.URL)
	}
	return fmt.Sprintf("request to %s failed with status %d", e.URL, e.Code)
}

// IsStatus reports whether err is a StatusError carrying the given code.
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}
