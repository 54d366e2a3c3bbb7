package edgegrid

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// authScheme is the EdgeGrid authentication scheme identifier that
	// opens every Authorization header value.
	authScheme = "EG1-HMAC-SHA256"

	// timestampLayout is the wall-clock format the scheme embeds in the
	// header and feeds into key derivation.
	timestampLayout = "20060102T15:04:05+0000"
)

// bodylessByMethod lists the verbs the scheme is defined for; true marks
// verbs with no body semantics, for which a supplied body is rejected.
var bodylessByMethod = map[string]bool{
	http.MethodGet:    true,
	http.MethodHead:   true,
	http.MethodPost:   false,
	http.MethodPut:    false,
	http.MethodDelete: false,
}

// GenerateNonce returns a fresh random UUIDv4 string suitable as an
// EdgeGrid nonce. Every signing call without an explicit nonce uses one
// of these, so no two signatures share a nonce.
func GenerateNonce() string {
	return uuid.New().String()
}

// SignConfig overrides the per-call inputs the engine otherwise generates
// itself. The zero value is what production callers want: a fresh UTC
// timestamp and a fresh random nonce on every call. Fixing either value
// makes the signature a pure function of its inputs, which is useful for
// reproducing a signature but defeats the replay protection. Never reuse
// a fixed timestamp or nonce on the wire.
type SignConfig struct {
	// Timestamp overrides the signing time. Must be in the form
	// 20060102T15:04:05+0000 (UTC). Empty means current time.
	Timestamp string

	// Nonce overrides the generated nonce. Empty means a fresh UUIDv4.
	Nonce string
}

// Sign produces the EdgeGrid Authorization header value for one request
// using a fresh timestamp and nonce. The returned SignedRequest also
// carries the body to transmit, which is the descriptor's body truncated
// to its max-body cap; signature and wire payload always cover the same
// bytes.
//
// Returns ErrInvalidMethod for verbs outside GET, HEAD, POST, PUT, and
// DELETE, ErrBodyNotAllowed when a body is supplied with GET or HEAD, and
// ErrInvalidPath when the descriptor path does not begin with a slash.
func Sign(creds *Credentials, req Request, method string) (*SignedRequest, error) {
	return SignWithConfig(creds, req, method, SignConfig{})
}

// SignWithConfig is Sign with explicit control over timestamp and nonce.
func SignWithConfig(creds *Credentials, req Request, method string, cfg SignConfig) (*SignedRequest, error) {
	method = strings.ToUpper(method)

	bodyless, ok := bodylessByMethod[method]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrInvalidMethod, method)
	}

	if bodyless && len(req.body) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrBodyNotAllowed, method)
	}

	if req.path == "" || !strings.HasPrefix(req.path, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, req.path)
	}

	if req.hasMaxBody && req.maxBody < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxBody, req.maxBody)
	}

	timestamp := cfg.Timestamp
	if timestamp == "" {
		timestamp = time.Now().UTC().Format(timestampLayout)
	}

	nonce := cfg.Nonce
	if nonce == "" {
		nonce = GenerateNonce()
	}

	// The preamble is both the leading part of the final header and the
	// last field of the data to sign.
	preamble := fmt.Sprintf("%s client_token=%s;access_token=%s;timestamp=%s;nonce=%s;",
		authScheme, creds.clientToken, creds.accessToken, timestamp, nonce)

	body := req.body
	if req.hasMaxBody && len(body) > req.maxBody {
		body = body[:req.maxBody]
	}

	var bodyHash string
	if len(body) > 0 {
		sum := sha256.Sum256(body)
		bodyHash = base64.StdEncoding.EncodeToString(sum[:])
	}

	// Field order and the tab delimiter are protocol-mandated; the server
	// rebuilds this exact string to check the signature.
	data := strings.Join([]string{
		method,
		"https",
		creds.host,
		req.path,
		canonicalHeaders(req.headers),
		bodyHash,
		preamble,
	}, "\t")

	// Two-stage key derivation: the client secret never signs request
	// data directly, only the per-timestamp intermediate key does.
	signingKey := base64HMAC([]byte(creds.clientSecret), timestamp)
	signature := base64HMAC([]byte(signingKey), data)

	signed := &SignedRequest{
		AuthHeader: preamble + "signature=" + signature + ";",
	}

	if len(body) > 0 {
		signed.Body = bytes.Clone(body)
	}

	return signed, nil
}

// canonicalHeaders renders the signed headers as tab-joined name:value
// pairs. Names are lowercased and values trimmed of surrounding
// whitespace; pairs are ordered by name so the rendering is deterministic
// regardless of map iteration order.
func canonicalHeaders(headers map[string]string) string {
	if len(headers) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(headers))
	for name, value := range headers {
		pairs = append(pairs, strings.ToLower(name)+":"+strings.TrimSpace(value))
	}
	slices.Sort(pairs)

	return strings.Join(pairs, "\t")
}

// base64HMAC computes HMAC-SHA256 of message under key and encodes the
// digest as standard base64.
func base64HMAC(key []byte, message string) string {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(message))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Get signs a GET request for path-only descriptors and descriptors with
// covered headers.
func Get(creds *Credentials, req Request) (*SignedRequest, error) {
	return Sign(creds, req, http.MethodGet)
}

// Head signs a HEAD request.
func Head(creds *Credentials, req Request) (*SignedRequest, error) {
	return Sign(creds, req, http.MethodHead)
}

// Post signs a POST request; the returned SignedRequest carries the body
// to transmit.
func Post(creds *Credentials, req Request) (*SignedRequest, error) {
	return Sign(creds, req, http.MethodPost)
}

// Put signs a PUT request; the returned SignedRequest carries the body to
// transmit.
func Put(creds *Credentials, req Request) (*SignedRequest, error) {
	return Sign(creds, req, http.MethodPut)
}

// Delete signs a DELETE request.
func Delete(creds *Credentials, req Request) (*SignedRequest, error) {
	return Sign(creds, req, http.MethodDelete)
}
