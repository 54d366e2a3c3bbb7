package edgegrid

import (
	"bytes"
	"maps"
)

// Request describes one not-yet-signed API request: the URI path (with
// query string), the headers the target endpoint requires in its
// signature, an optional body, and an optional body-size cap.
//
// Request is an immutable value: the With methods return updated copies,
// so one descriptor can be built once and signed any number of times,
// each signing producing an independent timestamp, nonce, and signature.
type Request struct {
	path       string
	headers    map[string]string
	body       []byte
	maxBody    int
	hasMaxBody bool
}

// NewRequest creates a descriptor for the given URI path. The path must
// begin with a slash and may carry a query string; scheme and host come
// from the Credentials at sign time.
func NewRequest(path string) Request {
	return Request{path: path}
}

// WithHeaders returns a copy of the request with the given headers to be
// covered by the signature. Which headers an endpoint requires signed is
// documented by the API provider; the engine includes exactly what it is
// given. The map is cloned, replacing any previously set headers.
func (r Request) WithHeaders(headers map[string]string) Request {
	r.headers = maps.Clone(headers)
	return r
}

// WithBody returns a copy of the request with the given body. The bytes
// are cloned, replacing any previously set body.
func (r Request) WithBody(body []byte) Request {
	r.body = bytes.Clone(body)
	return r
}

// WithMaxBody returns a copy of the request with a cap on the number of
// body bytes that are hashed and transmitted. A body longer than max is
// cut to its first max bytes for both; shorter bodies pass unchanged.
// Without a cap the full body is used, however large. A negative max is
// rejected at sign time with ErrInvalidMaxBody.
func (r Request) WithMaxBody(max int) Request {
	r.maxBody = max
	r.hasMaxBody = true
	return r
}

// SignedRequest is the output of one signing call: the complete value for
// the Authorization header and the body that must be sent on the wire.
// Body is nil when the signed request carries no body; when a max-body
// cap applied, Body holds the truncated bytes the signature covers.
type SignedRequest struct {
	AuthHeader string
	Body       []byte
}
