package provisioning

import "github.com/imamik/foolaunch/internal/platform/aws"

// Phase defines the interface for a provisioning phase.
type Phase interface {
	// Name returns the human-readable name of this phase.
	Name() string

	// Provision executes the provisioning logic for this phase.
	Provision(ctx *Context) error
}

// Logger is the printf-style part of Observer.
type Logger interface {
	Printf(format string, v ...any)
}

// VolumeCounter reports how many ephemeral volumes an instance type has.
// Implemented by catalog.Catalog.
type VolumeCounter interface {
	VolumeCount(instanceType string) (int, error)
}

// SpotPricer returns the default spot bid for an instance type in a region.
// Implemented by catalog.Catalog.
type SpotPricer interface {
	SpotPrice(instanceType, region string) (float64, bool)
}

// InstanceCatalog is the instance-type data consumed during a launch.
type InstanceCatalog interface {
	VolumeCounter
	SpotPricer
}

// ResourceResolver resolves named cloud resources for the plan phase.
type ResourceResolver interface {
	aws.ImageFinder
	aws.SubnetFinder
	aws.SecurityGroupFinder
}

// MetricsRecorder receives launch counters. Implemented by metrics.Recorder.
type MetricsRecorder interface {
	// SpotRequestFinished counts a spot request leaving the open state.
	SpotRequestFinished(state string)
	// InstancesLaunched counts instances produced by a launch.
	InstancesLaunched(n int)
}

type noopMetrics struct{}

func (noopMetrics) SpotRequestFinished(string) {}
func (noopMetrics) InstancesLaunched(int)      {}
