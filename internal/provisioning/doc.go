// Package provisioning turns resolved launch options into running instances.
//
// # Phases
//
// A launch runs as a fixed sequence of phases through RunPhases:
//
//   - validation: pre-flight checks on the options
//   - plan: image, subnet and security group lookup, block-device layout
//   - submit: on-demand RunInstances or spot requests with polling
//   - finalize: tagging, load balancer registration, instance re-fetch
//
// # Core Types
//
// Context carries the options, the cloud client, the instance catalog and the
// observer. State accumulates results from each phase (launch spec, spot
// request ids, instance ids, instance records).
//
// Plan, Submit and Finalize are also exported for callers that drive the
// steps themselves.
package provisioning
