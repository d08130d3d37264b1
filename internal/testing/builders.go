package testing

import (
	"maps"

	"github.com/imamik/foolaunch/internal/config"
)

// OptionsBuilder provides a fluent interface for constructing launch options.
// Each method returns a new builder (immutable) for chaining.
type OptionsBuilder struct {
	opts config.Options
}

// NewOptionsBuilder creates a new OptionsBuilder with sensible defaults.
func NewOptionsBuilder() *OptionsBuilder {
	return &OptionsBuilder{
		opts: config.Options{
			Region:       "us-east-1",
			Image:        "web-2024",
			InstanceType: "m4.large",
			Key:          "deploy",
		},
	}
}

// WithImage sets the image name.
func (b *OptionsBuilder) WithImage(name string) *OptionsBuilder {
	newBuilder := b.clone()
	newBuilder.opts.Image = name
	return newBuilder
}

// WithInstanceType sets the instance type.
func (b *OptionsBuilder) WithInstanceType(instanceType string) *OptionsBuilder {
	newBuilder := b.clone()
	newBuilder.opts.InstanceType = instanceType
	return newBuilder
}

// WithSubnet sets the subnet name.
func (b *OptionsBuilder) WithSubnet(name string) *OptionsBuilder {
	newBuilder := b.clone()
	newBuilder.opts.Subnet = name
	return newBuilder
}

// WithSpot enables spot pricing for count instances. A zero price leaves the
// price unset.
func (b *OptionsBuilder) WithSpot(count int32, price float64) *OptionsBuilder {
	newBuilder := b.clone()
	newBuilder.opts.Spot = true
	newBuilder.opts.Count = count
	if price > 0 {
		newBuilder.opts.Price = &price
	}
	return newBuilder
}

// WithName sets the Name tag value.
func (b *OptionsBuilder) WithName(name string) *OptionsBuilder {
	newBuilder := b.clone()
	newBuilder.opts.Name = name
	return newBuilder
}

// WithTags sets the user tags.
func (b *OptionsBuilder) WithTags(tags map[string]string) *OptionsBuilder {
	newBuilder := b.clone()
	newBuilder.opts.Tags = cloneStringMap(tags)
	return newBuilder
}

// WithLoadBalancers sets the load balancers to register with.
func (b *OptionsBuilder) WithLoadBalancers(names ...string) *OptionsBuilder {
	newBuilder := b.clone()
	newBuilder.opts.LoadBalancers = cloneStringSlice(names)
	return newBuilder
}

// WithDryRun sets the dry-run flag.
func (b *OptionsBuilder) WithDryRun(dryRun bool) *OptionsBuilder {
	newBuilder := b.clone()
	newBuilder.opts.DryRun = dryRun
	return newBuilder
}

// Build returns the constructed options.
func (b *OptionsBuilder) Build() *config.Options {
	return &b.clone().opts
}

// clone creates a deep copy of the builder for immutability.
func (b *OptionsBuilder) clone() *OptionsBuilder {
	newOpts := b.opts
	newOpts.SecurityGroups = cloneStringSlice(b.opts.SecurityGroups)
	newOpts.LoadBalancers = cloneStringSlice(b.opts.LoadBalancers)
	newOpts.Tags = cloneStringMap(b.opts.Tags)
	if b.opts.Price != nil {
		price := *b.opts.Price
		newOpts.Price = &price
	}
	if b.opts.RootVolumeSize != nil {
		size := *b.opts.RootVolumeSize
		newOpts.RootVolumeSize = &size
	}
	return &OptionsBuilder{opts: newOpts}
}

// cloneStringMap creates a deep copy of a string map.
func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	cloned := make(map[string]string, len(m))
	maps.Copy(cloned, m)
	return cloned
}

// cloneStringSlice creates a copy of a string slice.
func cloneStringSlice(s []string) []string {
	if s == nil {
		return nil
	}
	cloned := make([]string, len(s))
	copy(cloned, s)
	return cloned
}

// MinimalOptions returns options that pass validation.
func MinimalOptions() *config.Options {
	return NewOptionsBuilder().Build()
}
