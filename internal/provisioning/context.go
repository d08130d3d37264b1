package provisioning

import (
	"context"
	"time"

	"github.com/imamik/foolaunch/internal/config"
	"github.com/imamik/foolaunch/internal/platform/aws"
)

// WaitFunc blocks for d or until ctx is done.
type WaitFunc func(ctx context.Context, d time.Duration) error

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Options  *config.Options
	State    *State
	Cloud    aws.CloudAPI
	Catalog  InstanceCatalog
	Observer Observer
	Metrics  MetricsRecorder

	// Region keys the catalog's default spot prices.
	Region       string
	PollInterval time.Duration
	Wait         WaitFunc
}

// NewContext creates a new provisioning context.
func NewContext(
	ctx context.Context,
	opts *config.Options,
	cloud aws.CloudAPI,
	catalog InstanceCatalog,
) *Context {
	return &Context{
		Context:      ctx,
		Options:      opts,
		State:        NewState(),
		Cloud:        cloud,
		Catalog:      catalog,
		Observer:     NewConsoleObserver(),
		Metrics:      noopMetrics{},
		Region:       opts.Region,
		PollInterval: config.DefaultPollInterval,
		Wait:         Sleep,
	}
}

// Sleep waits for d, returning early with ctx.Err() on cancellation.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Context) metrics() MetricsRecorder {
	if c.Metrics == nil {
		return noopMetrics{}
	}
	return c.Metrics
}
