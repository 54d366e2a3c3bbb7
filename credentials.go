package edgegrid

import (
	"fmt"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// Credentials holds one Akamai EdgeGrid API identity: the API hostname and
// the three opaque tokens issued for it. Values are fixed at construction
// and the struct is safe to share by reference across concurrent signers.
type Credentials struct {
	host         string
	clientToken  string
	clientSecret string
	accessToken  string
}

// NewCredentials creates Credentials from the four values issued by the
// API provider. The host must be a bare hostname (optionally host:port)
// with no scheme, path, or query. Returns ErrInvalidCredentials when any
// field is empty or the host is malformed.
func NewCredentials(host, clientToken, clientSecret, accessToken string) (*Credentials, error) {
	switch {
	case host == "":
		return nil, fmt.Errorf("%w: host must not be empty", ErrInvalidCredentials)
	case clientToken == "":
		return nil, fmt.Errorf("%w: client token must not be empty", ErrInvalidCredentials)
	case clientSecret == "":
		return nil, fmt.Errorf("%w: client secret must not be empty", ErrInvalidCredentials)
	case accessToken == "":
		return nil, fmt.Errorf("%w: access token must not be empty", ErrInvalidCredentials)
	}

	if strings.ContainsAny(host, "/?#") {
		return nil, fmt.Errorf("%w: host must not contain a scheme, path, or query", ErrInvalidCredentials)
	}

	if !httpguts.ValidHostHeader(host) {
		return nil, fmt.Errorf("%w: malformed host %q", ErrInvalidCredentials, host)
	}

	return &Credentials{
		host:         host,
		clientToken:  clientToken,
		clientSecret: clientSecret,
		accessToken:  accessToken,
	}, nil
}

// Host returns the API hostname the credentials are bound to.
func (c *Credentials) Host() string {
	return c.host
}
