package provisioning

import (
	"fmt"

	"github.com/imamik/foolaunch/internal/platform/aws"
)

const (
	phasePlan     = "plan"
	phaseSubmit   = "submit"
	phaseFinalize = "finalize"
)

// Submit creates the instances described by spec and returns their ids.
// On-demand launches are a single call; spot launches wait for each request
// to leave the open state.
func Submit(ctx *Context, spec *aws.LaunchSpec) ([]string, error) {
	if spec.Spot {
		return submitSpot(ctx, spec)
	}
	return submitOnDemand(ctx, spec)
}

func submitOnDemand(ctx *Context, spec *aws.LaunchSpec) ([]string, error) {
	LogResourceCreating(ctx.Observer, phaseSubmit, "instances", fmt.Sprintf("%d x %s", spec.Count, spec.InstanceType))

	ids, err := ctx.Cloud.RunInstances(ctx, spec)
	if err != nil {
		return nil, err
	}
	for _, id := range ids {
		LogResourceCreated(ctx.Observer, phaseSubmit, "instance", id, id)
	}
	return ids, nil
}

// PlanPhase resolves the options into a launch spec.
type PlanPhase struct{}

// Name implements the Phase interface.
func (p *PlanPhase) Name() string { return phasePlan }

// Provision implements the Phase interface.
func (p *PlanPhase) Provision(ctx *Context) error {
	spec, err := Plan(ctx, ctx.Options, ctx.Cloud, ctx.Catalog)
	if err != nil {
		return err
	}

	LogResourceFound(ctx.Observer, phasePlan, "image", ctx.Options.Image, spec.ImageID)
	if ctx.Options.Subnet != "" {
		if spec.SubnetID == "" {
			LogResourceSkipped(ctx.Observer, phasePlan, "subnet", fmt.Sprintf("no subnet named %s", ctx.Options.Subnet))
		} else {
			LogResourceFound(ctx.Observer, phasePlan, "subnet", ctx.Options.Subnet, spec.SubnetID)
		}
	}

	ctx.State.Spec = spec
	return nil
}

// SubmitPhase creates the instances.
type SubmitPhase struct{}

// Name implements the Phase interface.
func (p *SubmitPhase) Name() string { return phaseSubmit }

// Provision implements the Phase interface.
func (p *SubmitPhase) Provision(ctx *Context) error {
	if ctx.State.Spec == nil {
		return fmt.Errorf("no launch spec: plan phase has not run")
	}
	ids, err := Submit(ctx, ctx.State.Spec)
	if err != nil {
		return err
	}
	ctx.State.InstanceIDs = ids
	ctx.metrics().InstancesLaunched(len(ids))
	return nil
}

// FinalizePhase tags and registers the instances and re-fetches them.
type FinalizePhase struct{}

// Name implements the Phase interface.
func (p *FinalizePhase) Name() string { return phaseFinalize }

// Provision implements the Phase interface.
func (p *FinalizePhase) Provision(ctx *Context) error {
	instances, err := Finalize(ctx, ctx.State.InstanceIDs)
	if err != nil {
		return err
	}
	ctx.State.Instances = instances
	return nil
}
