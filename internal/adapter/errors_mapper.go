package adapter

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

// mapHTTPError converts a non-2xx response into an error wrapping [ErrServer]
// and, where one exists, the status-specific sentinel.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %w: %s", ErrServer, ErrBadRequest, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w: %s", ErrServer, ErrNotFound, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %w: %s", ErrServer, ErrInternalServerError, body)
	default:
		return fmt.Errorf("%w: http %d: %s", ErrServer, resp.StatusCode(), body)
	}
}

// isNullBody reports whether a 2xx body carries no value.
func isNullBody(body []byte) bool {
	body = bytes.TrimSpace(body)
	return len(body) == 0 || bytes.Equal(body, []byte("null"))
}
