package testing

import (
	"context"

	"github.com/imamik/foolaunch/internal/platform/aws"
)

// FixtureImage is the image every fixture resolves.
var FixtureImage = aws.Image{
	ID:             "ami-0fixture",
	Name:           "web-2024",
	RootDeviceName: "/dev/xvda",
	RootVolumeSize: 8,
}

// CloudFixture provides a pre-configured mock cloud for common test scenarios.
type CloudFixture struct {
	mock *aws.MockClient
}

// NewCloudFixture creates a new cloud fixture.
func NewCloudFixture() *CloudFixture {
	return &CloudFixture{
		mock: &aws.MockClient{},
	}
}

// Mock returns the underlying MockClient for custom configuration.
func (f *CloudFixture) Mock() *aws.MockClient {
	return f.mock
}

// Lookups configures image, subnet and security group lookups to succeed.
func (f *CloudFixture) Lookups() *aws.MockClient {
	f.mock.FindImagesFunc = func(_ context.Context, _ string) ([]aws.Image, error) {
		return []aws.Image{FixtureImage}, nil
	}
	f.mock.FindSubnetsByNameFunc = func(_ context.Context, name string) ([]aws.Subnet, error) {
		return []aws.Subnet{{ID: "subnet-0fixture", Name: name, VpcID: "vpc-0fixture", AvailabilityZone: "us-east-1a"}}, nil
	}
	f.mock.FindSecurityGroupIDsFunc = func(_ context.Context, names []string) ([]string, error) {
		ids := make([]string, 0, len(names))
		for _, name := range names {
			ids = append(ids, "sg-"+name)
		}
		return ids, nil
	}
	f.mock.DescribeInstancesFunc = func(_ context.Context, ids []string) ([]aws.Instance, error) {
		instances := make([]aws.Instance, 0, len(ids))
		for i, id := range ids {
			instances = append(instances, aws.Instance{
				ID:        id,
				State:     "pending",
				PublicIP:  "54.0.0." + string(rune('1'+i)),
				PrivateIP: "10.0.0." + string(rune('1'+i)),
			})
		}
		return instances, nil
	}
	return f.mock
}

// SuccessfulOnDemand configures an on-demand launch producing ids.
// Returns the same mock for chaining.
func (f *CloudFixture) SuccessfulOnDemand(ids ...string) *aws.MockClient {
	f.Lookups()
	f.mock.RunInstancesFunc = func(_ context.Context, _ *aws.LaunchSpec) ([]string, error) {
		return append([]string(nil), ids...), nil
	}
	return f.mock
}

// SuccessfulSpot configures a spot launch where request i is fulfilled by
// instance ids[i] on the first poll.
func (f *CloudFixture) SuccessfulSpot(ids ...string) *aws.MockClient {
	f.Lookups()
	requests := make(map[string]string, len(ids))
	requestIDs := make([]string, 0, len(ids))
	for i, id := range ids {
		requestID := "sir-" + string(rune('a'+i))
		requests[requestID] = id
		requestIDs = append(requestIDs, requestID)
	}
	f.mock.RequestSpotInstancesFunc = func(_ context.Context, _ *aws.LaunchSpec) ([]string, error) {
		return requestIDs, nil
	}
	f.mock.DescribeSpotRequestFunc = func(_ context.Context, requestID string) (*aws.SpotRequest, error) {
		return &aws.SpotRequest{ID: requestID, State: aws.SpotStateActive, InstanceID: requests[requestID]}, nil
	}
	return f.mock
}

// WithLaunchError configures every create call to fail with err.
func (f *CloudFixture) WithLaunchError(err error) *aws.MockClient {
	f.Lookups()
	f.mock.RunInstancesFunc = func(_ context.Context, _ *aws.LaunchSpec) ([]string, error) {
		return nil, err
	}
	f.mock.RequestSpotInstancesFunc = func(_ context.Context, _ *aws.LaunchSpec) ([]string, error) {
		return nil, err
	}
	return f.mock
}
