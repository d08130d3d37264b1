package provisioning

import (
	"fmt"

	"github.com/imamik/foolaunch/internal/platform/aws"
)

// submitSpot requests spot instances and waits on each request in turn.
// Requests that end in any state other than active are logged and skipped;
// if all of them fail the result is empty, not an error.
func submitSpot(ctx *Context, spec *aws.LaunchSpec) ([]string, error) {
	if spec.SpotPrice == "" && ctx.Catalog != nil {
		if price, ok := ctx.Catalog.SpotPrice(spec.InstanceType, ctx.Region); ok {
			spec.SpotPrice = FormatPrice(price)
		}
	}

	LogResourceCreating(ctx.Observer, phaseSubmit, "spot request", fmt.Sprintf("%d x %s", spec.Count, spec.InstanceType))
	requestIDs, err := ctx.Cloud.RequestSpotInstances(ctx, spec)
	if err != nil {
		return nil, err
	}
	ctx.State.SpotRequestIDs = requestIDs

	var ids []string
	for _, requestID := range requestIDs {
		req, err := waitForSpotRequest(ctx, requestID)
		if err != nil {
			return ids, err
		}
		ctx.metrics().SpotRequestFinished(string(req.State))

		if req.State != aws.SpotStateActive {
			ctx.State.FailedSpotRequests = append(ctx.State.FailedSpotRequests, requestID)
			LogSpotRequest(ctx.Observer, requestID, EventSpotFailed, spotFailureMessage(req))
			continue
		}
		LogSpotRequest(ctx.Observer, requestID, EventSpotFulfilled, fmt.Sprintf("fulfilled by %s", req.InstanceID))
		ids = append(ids, req.InstanceID)
	}
	return ids, nil
}

// waitForSpotRequest polls requestID every PollInterval until it is no
// longer open. There is no deadline other than ctx.
func waitForSpotRequest(ctx *Context, requestID string) (*aws.SpotRequest, error) {
	wait := ctx.Wait
	if wait == nil {
		wait = Sleep
	}

	for {
		LogSpotRequest(ctx.Observer, requestID, EventSpotWaiting, "waiting on spot request")
		if err := wait(ctx, ctx.PollInterval); err != nil {
			return nil, fmt.Errorf("waiting on spot request %s: %w", requestID, err)
		}

		req, err := ctx.Cloud.DescribeSpotRequest(ctx, requestID)
		if err != nil {
			return nil, err
		}
		if req.State != aws.SpotStateOpen {
			return req, nil
		}
	}
}

func spotFailureMessage(req *aws.SpotRequest) string {
	msg := fmt.Sprintf("ended in state %s", req.State)
	if req.StatusCode != "" {
		msg += fmt.Sprintf(" (%s)", req.StatusCode)
	}
	return msg
}
