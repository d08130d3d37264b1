// Package catalog holds static EC2 instance-type data: how many instance-store
// (ephemeral) volumes each type exposes and the default spot bid per region.
//
// A [Catalog] is immutable once loaded. The built-in data is embedded from
// catalog.yaml; an alternative file or s3:// object can be loaded with [Load].
package catalog
