package aws

import "context"

// Image is an AMI found by name.
type Image struct {
	ID             string
	Name           string
	RootDeviceName string
	// RootVolumeSize is the root EBS volume size in GiB, 0 if unknown.
	RootVolumeSize int32
}

// Subnet is a VPC subnet found by its Name tag.
type Subnet struct {
	ID               string
	Name             string
	VpcID            string
	AvailabilityZone string
}

// BlockDevice is one entry of a block-device mapping. Exactly one of
// VolumeSize and VirtualName is set.
type BlockDevice struct {
	DeviceName  string
	VolumeSize  *int32 // EBS size override in GiB
	VirtualName string // instance store name, e.g. ephemeral0
}

// LaunchSpec holds fully resolved launch parameters.
type LaunchSpec struct {
	ImageID          string
	InstanceType     string
	Placement        string // availability zone, only when SubnetID is empty
	SubnetID         string
	KeyName          string
	InstanceProfile  string
	SecurityGroupIDs []string
	BlockDevices     []BlockDevice
	UserData         string // base64 encoded
	DryRun           bool
	Count            int32
	Spot             bool
	SpotPrice        string // empty lets the provider cap at the on-demand price
	ClientToken      string
}

// SpotRequestState is the lifecycle state of a spot instance request.
type SpotRequestState string

// Spot request states reported by EC2.
const (
	SpotStateOpen      SpotRequestState = "open"
	SpotStateActive    SpotRequestState = "active"
	SpotStateClosed    SpotRequestState = "closed"
	SpotStateCancelled SpotRequestState = "cancelled"
	SpotStateFailed    SpotRequestState = "failed"
)

// SpotRequest is the current view of a spot instance request.
type SpotRequest struct {
	ID            string
	State         SpotRequestState
	InstanceID    string
	StatusCode    string
	StatusMessage string
}

// Instance is a launched instance.
type Instance struct {
	ID        string
	State     string
	PublicIP  string
	PrivateIP string
}

// ImageFinder looks up machine images.
type ImageFinder interface {
	// FindImages returns every image whose name equals name.
	FindImages(ctx context.Context, name string) ([]Image, error)
}

// SubnetFinder looks up subnets.
type SubnetFinder interface {
	// FindSubnetsByName returns subnets whose Name tag equals name.
	FindSubnetsByName(ctx context.Context, name string) ([]Subnet, error)
}

// SecurityGroupFinder resolves security group names.
type SecurityGroupFinder interface {
	FindSecurityGroupIDs(ctx context.Context, names []string) ([]string, error)
}

// InstanceLauncher creates instances.
type InstanceLauncher interface {
	// RunInstances launches exactly spec.Count on-demand instances.
	RunInstances(ctx context.Context, spec *LaunchSpec) ([]string, error)
	// RequestSpotInstances submits spec.Count one-time spot requests and
	// returns their request IDs.
	RequestSpotInstances(ctx context.Context, spec *LaunchSpec) ([]string, error)
	DescribeSpotRequest(ctx context.Context, requestID string) (*SpotRequest, error)
}

// InstanceManager tags and inspects instances.
type InstanceManager interface {
	CreateTags(ctx context.Context, instanceIDs []string, tags map[string]string) error
	DescribeInstances(ctx context.Context, instanceIDs []string) ([]Instance, error)
}

// LoadBalancerRegistrar registers instances with classic load balancers.
type LoadBalancerRegistrar interface {
	RegisterWithLoadBalancer(ctx context.Context, loadBalancer string, instanceIDs []string) error
}

// ObjectFetcher reads S3 objects.
type ObjectFetcher interface {
	FetchObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// CloudAPI combines all facade interfaces.
type CloudAPI interface {
	ImageFinder
	SubnetFinder
	SecurityGroupFinder
	InstanceLauncher
	InstanceManager
	LoadBalancerRegistrar
	ObjectFetcher
}
