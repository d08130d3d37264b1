package provisioning

import (
	"strings"

	"github.com/imamik/foolaunch/internal/platform/aws"
)

// Finalize applies the post-launch side effects to ids and returns the
// re-fetched instance records. Nothing happens for an empty id list. A
// dry run skips tagging and load balancer registration.
func Finalize(ctx *Context, ids []string) ([]aws.Instance, error) {
	if len(ids) == 0 {
		ctx.Observer.Printf("No instances were created.")
		return nil, nil
	}
	opts := ctx.Options
	ctx.Observer.Printf("Instances '%s' created.", strings.Join(ids, ", "))

	if opts.DryRun {
		LogResourceSkipped(ctx.Observer, phaseFinalize, "tags", "dry run")
		if len(opts.LoadBalancers) > 0 {
			LogResourceSkipped(ctx.Observer, phaseFinalize, "load balancer registration", "dry run")
		}
	} else {
		if opts.Name != "" {
			if err := ctx.Cloud.CreateTags(ctx, ids, map[string]string{aws.NameTag: opts.Name}); err != nil {
				return nil, err
			}
		}
		if len(opts.Tags) > 0 {
			if err := ctx.Cloud.CreateTags(ctx, ids, opts.Tags); err != nil {
				return nil, err
			}
		}
		for _, lb := range opts.LoadBalancers {
			if err := ctx.Cloud.RegisterWithLoadBalancer(ctx, lb, ids); err != nil {
				return nil, err
			}
			LogResourceCreated(ctx.Observer, phaseFinalize, "load balancer registration", lb, strings.Join(ids, ","))
		}
	}

	instances, err := ctx.Cloud.DescribeInstances(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, inst := range instances {
		ctx.Observer.Printf("%s: %s", inst.ID, inst.PublicIP)
	}
	return instances, nil
}
