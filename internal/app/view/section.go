// Package view holds the envelope every rendered resource is wrapped in.
package view

import (
	"time"

	"github.com/kbostats/kbo-stats-service/internal/providers"
	"github.com/kbostats/kbo-stats-service/internal/query"
)

// Section is one independently loaded piece of a page. A failed section carries an
// error message (and stale data when some was cached) instead of failing the page.
type Section[T any] struct {
	Status    query.Status `json:"status"`
	Data      *T           `json:"data,omitempty"`
	Error     string       `json:"error,omitempty"`
	Stale     bool         `json:"stale,omitempty"`
	FetchedAt *time.Time   `json:"fetchedAt,omitempty"`

	err error
}

// From renders a lookup result into a section.
func From[S, T any](r query.Result[S], render func(S) T) Section[T] {
	s := Section[T]{Status: r.Status, Stale: r.Stale, err: r.Err}
	if r.Err != nil {
		s.Error = r.Err.Error()
	}
	if r.HasData {
		data := render(r.Data)
		s.Data = &data
	}
	if !r.FetchedAt.IsZero() {
		at := r.FetchedAt
		s.FetchedAt = &at
	}
	return s
}

// Err returns the underlying lookup error.
func (s Section[T]) Err() error {
	return s.err
}

// NotFound reports whether the backend said the resource does not exist.
func (s Section[T]) NotFound() bool {
	return providers.IsNotFound(s.err)
}

// Failed reports whether the section ended in an error.
func (s Section[T]) Failed() bool {
	return s.Status == query.StatusError
}

// Map renders each element of a slice.
func Map[S, T any](items []S, render func(S) T) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, render(it))
	}
	return out
}
