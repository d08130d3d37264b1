package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// RequestSpotInstances submits one-time spot requests for spec.Count instances.
func (c *RealClient) RequestSpotInstances(ctx context.Context, spec *LaunchSpec) ([]string, error) {
	launch := &types.RequestSpotLaunchSpecification{
		ImageId:             aws.String(spec.ImageID),
		InstanceType:        types.InstanceType(spec.InstanceType),
		KeyName:             optionalString(spec.KeyName),
		SecurityGroupIds:    spec.SecurityGroupIDs,
		SubnetId:            optionalString(spec.SubnetID),
		UserData:            optionalString(spec.UserData),
		BlockDeviceMappings: sdkBlockDevices(spec.BlockDevices),
	}
	if spec.SubnetID == "" && spec.Placement != "" {
		launch.Placement = &types.SpotPlacement{AvailabilityZone: aws.String(spec.Placement)}
	}
	if spec.InstanceProfile != "" {
		launch.IamInstanceProfile = &types.IamInstanceProfileSpecification{Name: aws.String(spec.InstanceProfile)}
	}

	out, err := c.ec2.RequestSpotInstances(ctx, &ec2.RequestSpotInstancesInput{
		InstanceCount:       aws.Int32(launchCount(spec)),
		SpotPrice:           optionalString(spec.SpotPrice),
		Type:                types.SpotInstanceTypeOneTime,
		ClientToken:         optionalString(spec.ClientToken),
		DryRun:              aws.Bool(spec.DryRun),
		LaunchSpecification: launch,
	})
	if err != nil {
		if spec.DryRun && IsDryRunOperation(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to request spot instances: %w", err)
	}

	ids := make([]string, 0, len(out.SpotInstanceRequests))
	for _, r := range out.SpotInstanceRequests {
		ids = append(ids, aws.ToString(r.SpotInstanceRequestId))
	}
	return ids, nil
}

// DescribeSpotRequest returns the current state of one spot request.
func (c *RealClient) DescribeSpotRequest(ctx context.Context, requestID string) (*SpotRequest, error) {
	out, err := c.ec2.DescribeSpotInstanceRequests(ctx, &ec2.DescribeSpotInstanceRequestsInput{
		SpotInstanceRequestIds: []string{requestID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe spot request %s: %w", requestID, err)
	}
	if len(out.SpotInstanceRequests) != 1 {
		return nil, fmt.Errorf("spot request %s: expected 1 result, got %d", requestID, len(out.SpotInstanceRequests))
	}
	return spotRequestFromSDK(out.SpotInstanceRequests[0]), nil
}

func spotRequestFromSDK(r types.SpotInstanceRequest) *SpotRequest {
	req := &SpotRequest{
		ID:         aws.ToString(r.SpotInstanceRequestId),
		State:      SpotRequestState(r.State),
		InstanceID: aws.ToString(r.InstanceId),
	}
	if r.Status != nil {
		req.StatusCode = aws.ToString(r.Status.Code)
		req.StatusMessage = aws.ToString(r.Status.Message)
	}
	return req
}
