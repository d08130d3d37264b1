package testing

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/foolaunch/internal/platform/aws"
)

func TestOptionsBuilder_IsImmutable(t *testing.T) {
	base := NewOptionsBuilder().WithTags(map[string]string{"team": "a"})
	spot := base.WithSpot(2, 0.1).WithTags(map[string]string{"team": "b"})

	a := base.Build()
	b := spot.Build()

	assert.False(t, a.Spot)
	assert.Equal(t, "a", a.Tags["team"])
	assert.True(t, b.Spot)
	assert.Equal(t, int32(2), b.Count)
	require.NotNil(t, b.Price)
	assert.InDelta(t, 0.1, *b.Price, 1e-9)
	assert.Equal(t, "b", b.Tags["team"])
}

func TestOptionsBuilder_BuildReturnsCopies(t *testing.T) {
	builder := NewOptionsBuilder().WithLoadBalancers("lb-a")

	first := builder.Build()
	first.LoadBalancers[0] = "changed"

	assert.Equal(t, []string{"lb-a"}, builder.Build().LoadBalancers)
}

func TestCloudFixture_SuccessfulSpot(t *testing.T) {
	ctx := TestContext(t)
	cloud := NewCloudFixture().SuccessfulSpot("i-1", "i-2")

	requestIDs, err := cloud.RequestSpotInstances(ctx, &aws.LaunchSpec{})
	require.NoError(t, err)
	assert.Equal(t, []string{"sir-a", "sir-b"}, requestIDs)

	req, err := cloud.DescribeSpotRequest(ctx, "sir-b")
	require.NoError(t, err)
	assert.Equal(t, aws.SpotStateActive, req.State)
	assert.Equal(t, "i-2", req.InstanceID)
}

func TestCloudFixture_Lookups(t *testing.T) {
	ctx := TestContext(t)
	cloud := NewCloudFixture().SuccessfulOnDemand("i-1")

	images, err := cloud.FindImages(ctx, "web-2024")
	require.NoError(t, err)
	assert.Equal(t, []aws.Image{FixtureImage}, images)

	groups, err := cloud.FindSecurityGroupIDs(ctx, []string{"web"})
	require.NoError(t, err)
	assert.Equal(t, []string{"sg-web"}, groups)

	instances, err := cloud.DescribeInstances(ctx, []string{"i-1"})
	require.NoError(t, err)
	assert.Equal(t, "54.0.0.1", instances[0].PublicIP)
}

func TestCloudFixture_WithLaunchError(t *testing.T) {
	boom := errors.New("boom")
	cloud := NewCloudFixture().WithLaunchError(boom)

	_, err := cloud.RunInstances(TestContext(t), &aws.LaunchSpec{})

	assert.ErrorIs(t, err, boom)
}

func TestWriteConfigFile(t *testing.T) {
	path := WriteConfigFile(t, ".foolaunch", `{"default": {}}`)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"default": {}}`, string(data))
}
