package provisioning

import (
	"fmt"
	"time"

	"github.com/imamik/foolaunch/internal/platform/aws"
)

// RunPhases executes all provisioning phases sequentially.
func RunPhases(ctx *Context, phases []Phase) error {
	start := time.Now()
	ctx.Observer.Printf("Starting launch with %d phases...", len(phases))

	for i, phase := range phases {
		phaseStart := time.Now()
		ctx.Observer.Progress(phase.Name(), i, len(phases))
		LogPhaseStart(ctx.Observer, phase.Name())

		if err := phase.Provision(ctx); err != nil {
			LogPhaseFailed(ctx.Observer, phase.Name(), err)
			return fmt.Errorf("%s phase failed: %w", phase.Name(), err)
		}

		LogPhaseComplete(ctx.Observer, phase.Name(), time.Since(phaseStart))
	}

	ctx.Observer.Printf("Launch completed in %v", time.Since(start).Round(time.Millisecond))
	return nil
}

// DefaultPhases returns the phases of a launch in execution order.
func DefaultPhases() []Phase {
	return []Phase{
		NewValidationPhase(),
		&PlanPhase{},
		&SubmitPhase{},
		&FinalizePhase{},
	}
}

// Launch runs DefaultPhases and returns the launched instances.
func Launch(ctx *Context) ([]aws.Instance, error) {
	if err := RunPhases(ctx, DefaultPhases()); err != nil {
		return nil, err
	}
	return ctx.State.Instances, nil
}
