package edgegrid

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

// TransportConfig configures a signing Transport.
type TransportConfig struct {
	// Credentials identify the API account the transport signs for.
	// Required.
	Credentials *Credentials

	// SignedHeaders names the request headers to cover with the
	// signature. Most endpoints require none; include exactly the
	// headers the endpoint's documentation designates as signed.
	// A repeated header is covered as a single value with its
	// occurrences joined by ", ".
	SignedHeaders []string

	// MaxBody caps the number of body bytes hashed and transmitted per
	// request. Zero means no cap.
	MaxBody int
}

// Transport is an http.RoundTripper that adds an EdgeGrid Authorization
// header to every outgoing request before dispatching it.
//
// Use NewTransport to create a Transport with a configured *http.Transport
// for proxy, TLS, and timeout settings.
type Transport struct {
	base   http.RoundTripper
	config TransportConfig
}

// NewTransport creates a signing Transport that delegates to base after
// signing each request. When base is nil, a clone of http.DefaultTransport
// is used, giving an independent connection pool with default proxy, TLS,
// and timeout settings.
//
//	base := &http.Transport{
//	    Proxy:           http.ProxyFromEnvironment,
//	    IdleConnTimeout: 90 * time.Second,
//	}
//	transport := edgegrid.NewTransport(base, edgegrid.TransportConfig{Credentials: creds})
func NewTransport(base *http.Transport, cfg TransportConfig) *Transport {
	var rt http.RoundTripper
	if base != nil {
		rt = base
	} else {
		rt = http.DefaultTransport.(*http.Transport).Clone()
	}

	return &Transport{
		base:   rt,
		config: cfg,
	}
}

// RoundTrip signs the request and then delegates to the base transport.
// The original request is cloned before signing to avoid mutation. When a
// max-body cap is configured, the clone carries the truncated body the
// signature covers.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.config.Credentials == nil {
		return nil, ErrNoCredentials
	}

	clone := req.Clone(req.Context())

	body, err := requestBody(req)
	if err != nil {
		return nil, err
	}

	desc := NewRequest(req.URL.RequestURI())

	if headers := t.signedHeaders(clone); len(headers) > 0 {
		desc = desc.WithHeaders(headers)
	}

	if len(body) > 0 {
		desc = desc.WithBody(body)
	}

	if t.config.MaxBody > 0 {
		desc = desc.WithMaxBody(t.config.MaxBody)
	}

	signed, err := Sign(t.config.Credentials, desc, req.Method)
	if err != nil {
		return nil, err
	}

	clone.Header.Set("Authorization", signed.AuthHeader)

	if signed.Body != nil {
		clone.Body = io.NopCloser(bytes.NewReader(signed.Body))
		clone.ContentLength = int64(len(signed.Body))
		clone.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(signed.Body)), nil
		}
	}

	return t.base.RoundTrip(clone)
}

// signedHeaders collects the configured signable headers that are present
// on the request. Repeated headers are joined into one value.
func (t *Transport) signedHeaders(req *http.Request) map[string]string {
	headers := make(map[string]string, len(t.config.SignedHeaders))
	for _, name := range t.config.SignedHeaders {
		if values := req.Header.Values(name); len(values) > 0 {
			headers[name] = strings.Join(values, ", ")
		}
	}

	return headers
}

// requestBody reads the full request body, preferring GetBody so the
// request stays replayable for redirects and retries.
func requestBody(req *http.Request) ([]byte, error) {
	if req.Body == nil {
		return nil, nil
	}

	rc := req.Body
	if req.GetBody != nil {
		var err error
		if rc, err = req.GetBody(); err != nil {
			return nil, err
		}
	}
	defer rc.Close()

	return io.ReadAll(rc)
}
