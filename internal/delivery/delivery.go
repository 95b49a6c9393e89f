// Package delivery defines the contract every transport implementation serves.
package delivery

import "context"

// Delivery is a transport endpoint (e.g. the HTTP server) started by the
// application lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
