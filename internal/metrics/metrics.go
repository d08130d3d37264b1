// Package metrics records launch metrics in a Prometheus registry and can
// push them to a Pushgateway at the end of a run.
package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// DefaultJob is the Pushgateway job name used by the CLI.
const DefaultJob = "foolaunch"

// Launch results.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Launch modes.
const (
	ModeOnDemand = "on-demand"
	ModeSpot     = "spot"
)

// Recorder owns a registry with the launch metrics. It implements
// provisioning.MetricsRecorder.
type Recorder struct {
	registry *prometheus.Registry

	launchesTotal     *prometheus.CounterVec
	launchDuration    *prometheus.HistogramVec
	spotRequestsTotal *prometheus.CounterVec
	instancesLaunched prometheus.Counter
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),

		launchesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "foolaunch",
				Name:      "launches_total",
				Help:      "Total number of launches by mode and result",
			},
			[]string{"mode", "result"},
		),

		launchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "foolaunch",
				Name:      "launch_duration_seconds",
				Help:      "Duration of a launch in seconds",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 10), // 1s to ~8.5min
			},
			[]string{"mode"},
		),

		spotRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "foolaunch",
				Name:      "spot_requests_total",
				Help:      "Total number of finished spot requests by final state",
			},
			[]string{"state"},
		),

		instancesLaunched: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "foolaunch",
				Name:      "instances_launched_total",
				Help:      "Total number of instances produced by launches",
			},
		),
	}

	r.registry.MustRegister(
		r.launchesTotal,
		r.launchDuration,
		r.spotRequestsTotal,
		r.instancesLaunched,
	)
	return r
}

// Registry returns the registry holding the launch metrics.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// RecordLaunch records a finished launch.
func (r *Recorder) RecordLaunch(mode, result string, duration time.Duration) {
	r.launchesTotal.WithLabelValues(mode, result).Inc()
	r.launchDuration.WithLabelValues(mode).Observe(duration.Seconds())
}

// SpotRequestFinished records a spot request leaving the open state.
func (r *Recorder) SpotRequestFinished(state string) {
	r.spotRequestsTotal.WithLabelValues(state).Inc()
}

// InstancesLaunched adds n launched instances.
func (r *Recorder) InstancesLaunched(n int) {
	if n > 0 {
		r.instancesLaunched.Add(float64(n))
	}
}

// Push sends the registry to the Pushgateway at url under job, replacing
// earlier pushes of the same job.
func (r *Recorder) Push(ctx context.Context, url, job string) error {
	if job == "" {
		job = DefaultJob
	}
	if err := push.New(url, job).Gatherer(r.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	return nil
}

// Mode returns the launch mode label for a spot flag.
func Mode(spot bool) string {
	if spot {
		return ModeSpot
	}
	return ModeOnDemand
}
