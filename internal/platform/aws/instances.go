package aws

import (
	"context"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// RunInstances launches spec.Count on-demand instances. MinCount and MaxCount
// are both set to the count so a partial launch is rejected by the provider.
func (c *RealClient) RunInstances(ctx context.Context, spec *LaunchSpec) ([]string, error) {
	count := launchCount(spec)
	in := &ec2.RunInstancesInput{
		ImageId:             aws.String(spec.ImageID),
		InstanceType:        types.InstanceType(spec.InstanceType),
		MinCount:            aws.Int32(count),
		MaxCount:            aws.Int32(count),
		KeyName:             optionalString(spec.KeyName),
		SecurityGroupIds:    spec.SecurityGroupIDs,
		SubnetId:            optionalString(spec.SubnetID),
		UserData:            optionalString(spec.UserData),
		BlockDeviceMappings: sdkBlockDevices(spec.BlockDevices),
		ClientToken:         optionalString(spec.ClientToken),
		DryRun:              aws.Bool(spec.DryRun),
	}
	if spec.SubnetID == "" && spec.Placement != "" {
		in.Placement = &types.Placement{AvailabilityZone: aws.String(spec.Placement)}
	}
	if spec.InstanceProfile != "" {
		in.IamInstanceProfile = &types.IamInstanceProfileSpecification{Name: aws.String(spec.InstanceProfile)}
	}

	out, err := c.ec2.RunInstances(ctx, in)
	if err != nil {
		if spec.DryRun && IsDryRunOperation(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to run instances: %w", err)
	}

	ids := make([]string, 0, len(out.Instances))
	for _, inst := range out.Instances {
		ids = append(ids, aws.ToString(inst.InstanceId))
	}
	return ids, nil
}

// CreateTags sets tags on the given instances.
func (c *RealClient) CreateTags(ctx context.Context, instanceIDs []string, tags map[string]string) error {
	if len(instanceIDs) == 0 || len(tags) == 0 {
		return nil
	}
	_, err := c.ec2.CreateTags(ctx, &ec2.CreateTagsInput{
		Resources: instanceIDs,
		Tags:      sdkTags(tags),
	})
	if err != nil {
		return fmt.Errorf("failed to tag instances: %w", err)
	}
	return nil
}

// DescribeInstances returns the current details of the given instances.
func (c *RealClient) DescribeInstances(ctx context.Context, instanceIDs []string) ([]Instance, error) {
	if len(instanceIDs) == 0 {
		return nil, nil
	}

	paginator := ec2.NewDescribeInstancesPaginator(c.ec2, &ec2.DescribeInstancesInput{
		InstanceIds: instanceIDs,
	})

	var instances []Instance
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe instances: %w", err)
		}
		for _, r := range page.Reservations {
			for _, inst := range r.Instances {
				instances = append(instances, instanceFromSDK(inst))
			}
		}
	}
	return instances, nil
}

func instanceFromSDK(inst types.Instance) Instance {
	out := Instance{
		ID:        aws.ToString(inst.InstanceId),
		PublicIP:  aws.ToString(inst.PublicIpAddress),
		PrivateIP: aws.ToString(inst.PrivateIpAddress),
	}
	if inst.State != nil {
		out.State = string(inst.State.Name)
	}
	return out
}

func sdkBlockDevices(devices []BlockDevice) []types.BlockDeviceMapping {
	if len(devices) == 0 {
		return nil
	}
	out := make([]types.BlockDeviceMapping, 0, len(devices))
	for _, d := range devices {
		m := types.BlockDeviceMapping{DeviceName: aws.String(d.DeviceName)}
		if d.VolumeSize != nil {
			m.Ebs = &types.EbsBlockDevice{VolumeSize: aws.Int32(*d.VolumeSize)}
		}
		if d.VirtualName != "" {
			m.VirtualName = aws.String(d.VirtualName)
		}
		out = append(out, m)
	}
	return out
}

func launchCount(spec *LaunchSpec) int32 {
	if spec.Count <= 0 {
		return 1
	}
	return spec.Count
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
