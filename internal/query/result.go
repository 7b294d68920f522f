package query

import "time"

// Status is the lifecycle state of a lookup.
type Status string

const (
	// StatusIdle means the lookup was disabled and nothing was fetched.
	StatusIdle  Status = "idle"
	StatusReady Status = "ready"
	StatusError Status = "error"
)

// Result is the outcome of a lookup. On error Data may still hold the last cached
// value, in which case HasData and Stale are set.
type Result[T any] struct {
	Status    Status
	Data      T
	HasData   bool
	Stale     bool
	Err       error
	FetchedAt time.Time
}

// Ready reports whether fresh data is available.
func (r Result[T]) Ready() bool {
	return r.Status == StatusReady
}
