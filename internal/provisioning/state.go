package provisioning

import "github.com/imamik/foolaunch/internal/platform/aws"

// State holds the shared results of provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results.
type State struct {
	// Plan results
	Spec *aws.LaunchSpec

	// Submit results
	SpotRequestIDs     []string // every spot request submitted
	FailedSpotRequests []string // requests that ended in a state other than active
	InstanceIDs        []string

	// Finalize results
	Instances []aws.Instance
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}
