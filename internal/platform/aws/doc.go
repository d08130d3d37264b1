// Package aws is the cloud facade used by the provisioning packages. It wraps
// the AWS SDK for Go v2 behind small interfaces so that provisioning logic can
// be exercised against [MockClient] in tests.
//
// # Architecture
//
//   - client.go: domain types and the CloudAPI interface
//   - real_client.go: SDK configuration and client construction
//   - images.go, network.go: AMI, subnet and security group lookups
//   - instances.go: on-demand launches, tagging and instance details
//   - spot.go: spot instance requests
//   - load_balancer.go: classic ELB registration
//   - objects.go: S3 object reads
//   - errors.go: classification of provider errors
//
// Provider errors are returned wrapped, never retried. Dry-run launches that
// the provider answers with DryRunOperation are reported as successful
// requests that produced no instances.
package aws
