// Package client is the HTTP client of the blog API used by the CLI.
//
// Every endpoint has a method on HTTPClient. Successful calls return the
// server's message or decoded documents; failures come back as *APIError,
// which matches one of the sentinel errors below via errors.Is:
// ErrUnauthorized (401), ErrForbidden (403), ErrRejected (other 4xx),
// ErrRateLimited (429) and ErrUnavailable (transport failures and 5xx).
package client
