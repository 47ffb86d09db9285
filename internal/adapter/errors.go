package adapter

import "errors"

var (
	// ErrTransport means the request never produced an HTTP response:
	// connection refused, DNS failure, timeout or cancelled context.
	ErrTransport = errors.New("transport failure")
	// ErrServer means the server answered with a non-2xx status or a body
	// that could not be decoded.
	ErrServer = errors.New("server error")
	// ErrNullResult means the server answered 2xx without a payload.
	ErrNullResult = errors.New("server returned no result")

	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrMalformedResponse   = errors.New("malformed response")
)
