// Package api implements a typed HTTP client for the BragBoard API.
//
// Every exported call performs exactly one HTTP request and either returns
// the decoded body or fails with an error. There is no retry, caching, or
// request de-duplication: each call is independent and at-most-once. The
// bearer token is supplied by an explicitly injected TokenSource rather
// than read from ambient state, so session handling stays testable.
//
// Non-2xx responses become a *api.Error carrying the HTTP status and the
// server's "detail" message when the body provides one.
package api
