package aws

import (
	"context"
	"fmt"
	"strings"
)

// MockClient is a mock implementation of CloudAPI. Unset functions return
// empty results and no error.
type MockClient struct {
	FindImagesFunc           func(ctx context.Context, name string) ([]Image, error)
	FindSubnetsByNameFunc    func(ctx context.Context, name string) ([]Subnet, error)
	FindSecurityGroupIDsFunc func(ctx context.Context, names []string) ([]string, error)

	RunInstancesFunc         func(ctx context.Context, spec *LaunchSpec) ([]string, error)
	RequestSpotInstancesFunc func(ctx context.Context, spec *LaunchSpec) ([]string, error)
	DescribeSpotRequestFunc  func(ctx context.Context, requestID string) (*SpotRequest, error)

	CreateTagsFunc        func(ctx context.Context, instanceIDs []string, tags map[string]string) error
	DescribeInstancesFunc func(ctx context.Context, instanceIDs []string) ([]Instance, error)

	RegisterWithLoadBalancerFunc func(ctx context.Context, loadBalancer string, instanceIDs []string) error

	FetchObjectFunc func(ctx context.Context, bucket, key string) ([]byte, error)

	// Calls records the name of every invoked method, in order.
	Calls []string
}

// Ensure interface compliance
var _ CloudAPI = (*MockClient)(nil)

func (m *MockClient) record(format string, args ...any) {
	m.Calls = append(m.Calls, fmt.Sprintf(format, args...))
}

// CallCount returns how many recorded calls start with prefix.
func (m *MockClient) CallCount(prefix string) int {
	n := 0
	for _, c := range m.Calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

// FindImages mocks image lookup.
func (m *MockClient) FindImages(ctx context.Context, name string) ([]Image, error) {
	m.record("FindImages(%s)", name)
	if m.FindImagesFunc != nil {
		return m.FindImagesFunc(ctx, name)
	}
	return nil, nil
}

// FindSubnetsByName mocks subnet lookup.
func (m *MockClient) FindSubnetsByName(ctx context.Context, name string) ([]Subnet, error) {
	m.record("FindSubnetsByName(%s)", name)
	if m.FindSubnetsByNameFunc != nil {
		return m.FindSubnetsByNameFunc(ctx, name)
	}
	return nil, nil
}

// FindSecurityGroupIDs mocks security group lookup.
func (m *MockClient) FindSecurityGroupIDs(ctx context.Context, names []string) ([]string, error) {
	m.record("FindSecurityGroupIDs(%v)", names)
	if m.FindSecurityGroupIDsFunc != nil {
		return m.FindSecurityGroupIDsFunc(ctx, names)
	}
	return nil, nil
}

// RunInstances mocks an on-demand launch.
func (m *MockClient) RunInstances(ctx context.Context, spec *LaunchSpec) ([]string, error) {
	m.record("RunInstances")
	if m.RunInstancesFunc != nil {
		return m.RunInstancesFunc(ctx, spec)
	}
	return nil, nil
}

// RequestSpotInstances mocks spot request submission.
func (m *MockClient) RequestSpotInstances(ctx context.Context, spec *LaunchSpec) ([]string, error) {
	m.record("RequestSpotInstances")
	if m.RequestSpotInstancesFunc != nil {
		return m.RequestSpotInstancesFunc(ctx, spec)
	}
	return nil, nil
}

// DescribeSpotRequest mocks spot request polling.
func (m *MockClient) DescribeSpotRequest(ctx context.Context, requestID string) (*SpotRequest, error) {
	m.record("DescribeSpotRequest(%s)", requestID)
	if m.DescribeSpotRequestFunc != nil {
		return m.DescribeSpotRequestFunc(ctx, requestID)
	}
	return &SpotRequest{ID: requestID, State: SpotStateClosed}, nil
}

// CreateTags mocks tagging.
func (m *MockClient) CreateTags(ctx context.Context, instanceIDs []string, tags map[string]string) error {
	m.record("CreateTags(%v)", instanceIDs)
	if m.CreateTagsFunc != nil {
		return m.CreateTagsFunc(ctx, instanceIDs, tags)
	}
	return nil
}

// DescribeInstances mocks instance lookup. By default it echoes the IDs.
func (m *MockClient) DescribeInstances(ctx context.Context, instanceIDs []string) ([]Instance, error) {
	m.record("DescribeInstances(%v)", instanceIDs)
	if m.DescribeInstancesFunc != nil {
		return m.DescribeInstancesFunc(ctx, instanceIDs)
	}
	instances := make([]Instance, 0, len(instanceIDs))
	for _, id := range instanceIDs {
		instances = append(instances, Instance{ID: id})
	}
	return instances, nil
}

// RegisterWithLoadBalancer mocks load balancer registration.
func (m *MockClient) RegisterWithLoadBalancer(ctx context.Context, loadBalancer string, instanceIDs []string) error {
	m.record("RegisterWithLoadBalancer(%s)", loadBalancer)
	if m.RegisterWithLoadBalancerFunc != nil {
		return m.RegisterWithLoadBalancerFunc(ctx, loadBalancer, instanceIDs)
	}
	return nil
}

// FetchObject mocks S3 reads.
func (m *MockClient) FetchObject(ctx context.Context, bucket, key string) ([]byte, error) {
	m.record("FetchObject(%s/%s)", bucket, key)
	if m.FetchObjectFunc != nil {
		return m.FetchObjectFunc(ctx, bucket, key)
	}
	return nil, nil
}
