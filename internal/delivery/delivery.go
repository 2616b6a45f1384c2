// Package delivery defines the contract every transport adapter fulfills.
package delivery

import "context"

// Delivery is a serving transport started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
