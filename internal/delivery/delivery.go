// Package delivery defines the long-running entry points (HTTP servers, workers, schedulers).
package delivery

import "context"

// Delivery is a component started by a cmd and stopped through its fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
