package persistence

import "context"

// StatusRepository answers liveness probes against the database
type StatusRepository interface {
	// Greeting runs a trivial query and returns its text result
	Greeting(ctx context.Context) (string, error)
}
