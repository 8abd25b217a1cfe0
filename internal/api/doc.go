// Package api implements the HTTP REST API for the Car Stock API.
//
// This package provides:
//   - The login endpoint, which verifies dealer credentials and sets the
//     signed token as an HTTP-only cookie
//   - Cookie-based JWT authentication middleware for all inventory routes
//   - The five inventory endpoints (add, list, delete, update stock, search),
//     each scoped to the authenticated dealer
//   - Request-id, logging, recovery, CORS and body-size-limit middleware
//
// The server follows the standard lifecycle pattern:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Thread Safety: all methods are safe for concurrent use from multiple goroutines.
package api
