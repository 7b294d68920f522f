package server

import (
	"context"

	"github.com/kbostats/kbo-stats-service/internal/poller"
)

// Poller defines the minimal cache warmer behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
