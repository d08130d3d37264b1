// Package testing provides test utilities, builders, and fixtures for unit tests.
//
// This package centralizes common testing patterns to avoid duplication across test files:
//   - OptionsBuilder: Fluent builder for launch options
//   - CloudFixture: Pre-configured aws.MockClient for common launch scenarios
//   - WriteConfigFile: Profile documents on disk for loader and CLI tests
//
// Usage:
//
//	opts := testing.NewOptionsBuilder().
//	    WithInstanceType("m4.large").
//	    WithSpot(2, 0.1).
//	    Build()
//
//	fixture := testing.NewCloudFixture()
//	cloud := fixture.SuccessfulOnDemand("i-1", "i-2")
package testing
