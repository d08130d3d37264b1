package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	elbtypes "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing/types"
)

// RegisterWithLoadBalancer adds instances to a classic load balancer.
func (c *RealClient) RegisterWithLoadBalancer(ctx context.Context, loadBalancer string, instanceIDs []string) error {
	instances := make([]elbtypes.Instance, 0, len(instanceIDs))
	for _, id := range instanceIDs {
		instances = append(instances, elbtypes.Instance{InstanceId: aws.String(id)})
	}

	_, err := c.elb.RegisterInstancesWithLoadBalancer(ctx, &elb.RegisterInstancesWithLoadBalancerInput{
		LoadBalancerName: aws.String(loadBalancer),
		Instances:        instances,
	})
	if err != nil {
		return fmt.Errorf("failed to register instances with load balancer %s: %w", loadBalancer, err)
	}
	return nil
}
