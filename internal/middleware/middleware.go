// Package middleware holds the Echo middleware the router installs in
// front of every route: request IDs, request-scoped logging, New Relic
// tracing, rate limiting, CORS, secure headers, panic recovery and the
// error handler that renders every failure as a JSON error body.
package middleware
