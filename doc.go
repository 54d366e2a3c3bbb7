// Package edgegrid computes Akamai EdgeGrid (EG1-HMAC-SHA256) request
// authentication headers.
//
// The package performs no network I/O: given credentials and a description
// of an outbound request it produces the value for the Authorization
// header, which works with any HTTP client that allows headers to be set.
// For callers using net/http, Transport signs requests automatically.
//
// # Credentials
//
// Credentials hold one API identity and are reused across any number of
// signing calls:
//
//	creds, err := edgegrid.NewCredentials(
//	    "akab-xxxx.luna.akamaiapis.net",
//	    clientToken, clientSecret, accessToken,
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// They can also be loaded from a YAML credentials file or from
// AKAMAI_-prefixed environment variables:
//
//	creds, err := edgegrid.LoadCredentials(".akamai.yml", "default")
//	creds, err := edgegrid.CredentialsFromEnv("")
//
// # Signing Requests
//
// Build a request descriptor once and sign it per call; every call gets a
// fresh timestamp and nonce, so a signed header is single-use and must be
// sent promptly:
//
//	req := edgegrid.NewRequest("/papi/v1/contracts")
//
//	signed, err := edgegrid.Get(creds, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	httpReq.Header.Set("Authorization", signed.AuthHeader)
//
// Requests with a body carry it through signing; when a max-body cap is
// set, SignedRequest.Body holds the truncated bytes the signature covers
// and is what must be transmitted:
//
//	req := edgegrid.NewRequest("/ccu/v3/invalidate/url").
//	    WithBody(payload).
//	    WithMaxBody(131072)
//
//	signed, err := edgegrid.Post(creds, req)
//
// Endpoints that require specific headers in the signature take them via
// WithHeaders; the package includes exactly the headers it is given, with
// no automatic selection.
//
// # Client Transport
//
// NewTransport creates an http.RoundTripper that signs every outgoing
// request. Pass an *http.Transport to configure proxy, TLS, and timeout
// settings, or nil for defaults:
//
//	client := &http.Client{
//	    Transport: edgegrid.NewTransport(nil, edgegrid.TransportConfig{
//	        Credentials: creds,
//	    }),
//	}
//
//	resp, err := client.Get("https://akab-xxxx.luna.akamaiapis.net/papi/v1/contracts")
package edgegrid
