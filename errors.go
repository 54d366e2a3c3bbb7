package edgegrid

import "errors"

// Credential errors.
var (
	// ErrInvalidCredentials is returned when a credential field is empty
	// or the host is not a bare hostname.
	ErrInvalidCredentials = errors.New("edgegrid: invalid credentials")

	// ErrSectionNotFound is returned when a credentials file does not
	// contain the requested section.
	ErrSectionNotFound = errors.New("edgegrid: credentials section not found")
)

// Transport errors.
var (
	// ErrNoCredentials is returned when TransportConfig has no
	// Credentials configured.
	ErrNoCredentials = errors.New("edgegrid: credentials must not be nil")
)

// Signing errors.
var (
	// ErrInvalidMethod is returned when the HTTP method is not one of the
	// verbs the EdgeGrid scheme is defined for.
	ErrInvalidMethod = errors.New("edgegrid: unsupported http method")

	// ErrBodyNotAllowed is returned when a request body is supplied for a
	// method that has no body semantics (GET, HEAD).
	ErrBodyNotAllowed = errors.New("edgegrid: request body not allowed for this method")

	// ErrInvalidPath is returned when a request path is empty or does not
	// begin with a slash.
	ErrInvalidPath = errors.New("edgegrid: request path must begin with a slash")

	// ErrInvalidMaxBody is returned when a negative max-body cap is set.
	ErrInvalidMaxBody = errors.New("edgegrid: max body must not be negative")
)
