package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// NameTag is the tag key EC2 consoles display as a resource's name.
const NameTag = "Name"

// FindSubnetsByName returns every subnet tagged Name=name.
func (c *RealClient) FindSubnetsByName(ctx context.Context, name string) ([]Subnet, error) {
	paginator := ec2.NewDescribeSubnetsPaginator(c.ec2, &ec2.DescribeSubnetsInput{
		Filters: []types.Filter{nameFilter("tag:"+NameTag, name)},
	})

	var subnets []Subnet
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe subnets named %s: %w", name, err)
		}
		for _, s := range page.Subnets {
			if tagValue(s.Tags, NameTag) != name {
				continue
			}
			subnets = append(subnets, Subnet{
				ID:               aws.ToString(s.SubnetId),
				Name:             name,
				VpcID:            aws.ToString(s.VpcId),
				AvailabilityZone: aws.ToString(s.AvailabilityZone),
			})
		}
	}
	return subnets, nil
}

// FindSecurityGroupIDs resolves security group names to IDs.
func (c *RealClient) FindSecurityGroupIDs(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return nil, nil
	}

	paginator := ec2.NewDescribeSecurityGroupsPaginator(c.ec2, &ec2.DescribeSecurityGroupsInput{
		Filters: []types.Filter{nameFilter("group-name", names...)},
	})

	var ids []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to describe security groups: %w", err)
		}
		for _, sg := range page.SecurityGroups {
			ids = append(ids, aws.ToString(sg.GroupId))
		}
	}
	return ids, nil
}

func tagValue(tags []types.Tag, key string) string {
	for _, t := range tags {
		if aws.ToString(t.Key) == key {
			return aws.ToString(t.Value)
		}
	}
	return ""
}

func sdkTags(tags map[string]string) []types.Tag {
	out := make([]types.Tag, 0, len(tags))
	for _, k := range sortedKeys(tags) {
		out = append(out, types.Tag{Key: aws.String(k), Value: aws.String(tags[k])})
	}
	return out
}
