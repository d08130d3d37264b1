package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	elb "github.com/aws/aws-sdk-go-v2/service/elasticloadbalancing"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ec2API is the subset of the EC2 client used by RealClient.
type ec2API interface {
	DescribeImages(ctx context.Context, in *ec2.DescribeImagesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeImagesOutput, error)
	DescribeSubnets(ctx context.Context, in *ec2.DescribeSubnetsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSubnetsOutput, error)
	DescribeSecurityGroups(ctx context.Context, in *ec2.DescribeSecurityGroupsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSecurityGroupsOutput, error)
	RunInstances(ctx context.Context, in *ec2.RunInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RunInstancesOutput, error)
	RequestSpotInstances(ctx context.Context, in *ec2.RequestSpotInstancesInput, optFns ...func(*ec2.Options)) (*ec2.RequestSpotInstancesOutput, error)
	DescribeSpotInstanceRequests(ctx context.Context, in *ec2.DescribeSpotInstanceRequestsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeSpotInstanceRequestsOutput, error)
	CreateTags(ctx context.Context, in *ec2.CreateTagsInput, optFns ...func(*ec2.Options)) (*ec2.CreateTagsOutput, error)
	DescribeInstances(ctx context.Context, in *ec2.DescribeInstancesInput, optFns ...func(*ec2.Options)) (*ec2.DescribeInstancesOutput, error)
}

// elbAPI is the subset of the classic ELB client used by RealClient.
type elbAPI interface {
	RegisterInstancesWithLoadBalancer(ctx context.Context, in *elb.RegisterInstancesWithLoadBalancerInput, optFns ...func(*elb.Options)) (*elb.RegisterInstancesWithLoadBalancerOutput, error)
}

// s3API is the subset of the S3 client used by RealClient.
type s3API interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// RealClient implements CloudAPI using the AWS SDK.
type RealClient struct {
	ec2    ec2API
	elb    elbAPI
	s3     s3API
	region string
}

// Ensure interface compliance
var _ CloudAPI = (*RealClient)(nil)

type clientOptions struct {
	profile     string
	credentials aws.CredentialsProvider
	ec2         ec2API
	elb         elbAPI
	s3          s3API
}

// ClientOption configures a RealClient.
type ClientOption func(*clientOptions)

// WithProfile selects a named profile from the shared AWS config files.
func WithProfile(name string) ClientOption {
	return func(o *clientOptions) {
		o.profile = name
	}
}

// WithStaticCredentials uses a fixed key pair instead of the default chain.
func WithStaticCredentials(accessKeyID, secretAccessKey, sessionToken string) ClientOption {
	return func(o *clientOptions) {
		o.credentials = credentials.NewStaticCredentialsProvider(accessKeyID, secretAccessKey, sessionToken)
	}
}

// withServiceClients replaces the SDK clients (useful for testing).
func withServiceClients(e ec2API, l elbAPI, s s3API) ClientOption {
	return func(o *clientOptions) {
		o.ec2, o.elb, o.s3 = e, l, s
	}
}

// NewRealClient loads the AWS configuration for region and builds the
// service clients. An empty region falls back to the shared config and
// environment.
func NewRealClient(ctx context.Context, region string, opts ...ClientOption) (*RealClient, error) {
	o := &clientOptions{}
	for _, opt := range opts {
		opt(o)
	}

	var loadOpts []func(*config.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, config.WithRegion(region))
	}
	if o.profile != "" {
		loadOpts = append(loadOpts, config.WithSharedConfigProfile(o.profile))
	}
	if o.credentials != nil {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(o.credentials))
	}

	cfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	if cfg.Region == "" {
		return nil, fmt.Errorf("no AWS region configured: set the region option or AWS_REGION")
	}

	c := &RealClient{
		ec2:    o.ec2,
		elb:    o.elb,
		s3:     o.s3,
		region: cfg.Region,
	}
	if c.ec2 == nil {
		c.ec2 = ec2.NewFromConfig(cfg)
	}
	if c.elb == nil {
		c.elb = elb.NewFromConfig(cfg)
	}
	if c.s3 == nil {
		c.s3 = s3.NewFromConfig(cfg)
	}
	return c, nil
}

// Region returns the region the client talks to.
func (c *RealClient) Region() string {
	return c.region
}
