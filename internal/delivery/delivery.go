// Package delivery defines the entry points that serve the application.
package delivery

import "context"

// Delivery is a long-running server started by the process lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
