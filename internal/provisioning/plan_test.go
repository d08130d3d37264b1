package provisioning

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/foolaunch/internal/catalog"
	"github.com/imamik/foolaunch/internal/platform/aws"
)

func TestPlan_OnDemand(t *testing.T) {
	t.Parallel()
	opts := testOptions()
	opts.InstanceProfile = "web-role"
	opts.UserDataB64 = "IyEvYmluL3NoCg=="
	opts.SecurityGroups = []string{"web", "ssh"}
	opts.Placement = "us-east-1a"

	var groupNames []string
	cloud := &aws.MockClient{
		FindImagesFunc: singleImage(aws.Image{ID: "ami-1", Name: "web-2024", RootDeviceName: "/dev/xvda", RootVolumeSize: 8}),
		FindSecurityGroupIDsFunc: func(_ context.Context, names []string) ([]string, error) {
			groupNames = names
			return []string{"sg-1", "sg-2"}, nil
		},
	}

	spec, err := Plan(context.Background(), opts, cloud, testCatalog())

	require.NoError(t, err)
	assert.Equal(t, "ami-1", spec.ImageID)
	assert.Equal(t, "m4.large", spec.InstanceType)
	assert.Equal(t, "us-east-1a", spec.Placement)
	assert.Empty(t, spec.SubnetID)
	assert.Equal(t, "deploy", spec.KeyName)
	assert.Equal(t, "web-role", spec.InstanceProfile)
	assert.Equal(t, []string{"sg-1", "sg-2"}, spec.SecurityGroupIDs)
	assert.Equal(t, []string{"web", "ssh"}, groupNames)
	assert.Equal(t, "IyEvYmluL3NoCg==", spec.UserData)
	assert.Equal(t, int32(1), spec.Count, "count defaults to one")
	assert.False(t, spec.Spot)
	assert.Empty(t, spec.SpotPrice)
	assert.Nil(t, spec.BlockDevices)
	assert.NotEmpty(t, spec.ClientToken)
	assert.Zero(t, cloud.CallCount("FindSubnetsByName"), "no subnet configured")
}

func TestPlan_ClientTokenIsFreshPerPlan(t *testing.T) {
	t.Parallel()
	cloud := &aws.MockClient{FindImagesFunc: singleImage(aws.Image{ID: "ami-1"})}

	a, err := Plan(context.Background(), testOptions(), cloud, testCatalog())
	require.NoError(t, err)
	b, err := Plan(context.Background(), testOptions(), cloud, testCatalog())
	require.NoError(t, err)

	assert.NotEqual(t, a.ClientToken, b.ClientToken)
}

func TestPlan_Image(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		images []aws.Image
	}{
		{name: "no match", images: nil},
		{name: "two matches", images: []aws.Image{{ID: "ami-1"}, {ID: "ami-2"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cloud := &aws.MockClient{
				FindImagesFunc: func(context.Context, string) ([]aws.Image, error) { return tt.images, nil },
			}

			_, err := Plan(context.Background(), testOptions(), cloud, testCatalog())

			assert.ErrorIs(t, err, ErrAmbiguousImage)
			assert.Equal(t, []string{"FindImages(web-2024)"}, cloud.Calls, "nothing else is looked up")
		})
	}
}

func TestPlan_Subnet(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name          string
		subnets       []aws.Subnet
		wantSubnet    string
		wantPlacement string
		wantErr       error
	}{
		{
			name:       "single match wins over placement",
			subnets:    []aws.Subnet{{ID: "subnet-1", Name: "private"}},
			wantSubnet: "subnet-1",
		},
		{
			name:          "no match falls back to placement",
			wantPlacement: "us-east-1a",
		},
		{
			name:    "two matches",
			subnets: []aws.Subnet{{ID: "subnet-1"}, {ID: "subnet-2"}},
			wantErr: ErrAmbiguousSubnet,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := testOptions()
			opts.Subnet = "private"
			opts.Placement = "us-east-1a"
			cloud := &aws.MockClient{
				FindImagesFunc:        singleImage(aws.Image{ID: "ami-1"}),
				FindSubnetsByNameFunc: func(context.Context, string) ([]aws.Subnet, error) { return tt.subnets, nil },
			}

			spec, err := Plan(context.Background(), opts, cloud, testCatalog())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSubnet, spec.SubnetID)
			assert.Equal(t, tt.wantPlacement, spec.Placement)
		})
	}
}

func TestPlan_SpotAndPrice(t *testing.T) {
	t.Parallel()
	opts := testOptions()
	opts.Spot = true
	opts.Count = 3
	price := 0.25
	opts.Price = &price
	cloud := &aws.MockClient{FindImagesFunc: singleImage(aws.Image{ID: "ami-1"})}

	spec, err := Plan(context.Background(), opts, cloud, testCatalog())

	require.NoError(t, err)
	assert.True(t, spec.Spot)
	assert.Equal(t, int32(3), spec.Count)
	assert.Equal(t, "0.25", spec.SpotPrice)
}

func TestPlan_BlockDevices(t *testing.T) {
	t.Parallel()
	opts := testOptions()
	opts.InstanceType = "m3.medium"
	size := int32(30)
	opts.RootVolumeSize = &size
	cloud := &aws.MockClient{FindImagesFunc: singleImage(aws.Image{ID: "ami-1", RootDeviceName: "/dev/xvda", RootVolumeSize: 8})}

	spec, err := Plan(context.Background(), opts, cloud, testCatalog())

	require.NoError(t, err)
	require.Len(t, spec.BlockDevices, 2)
	assert.Equal(t, "/dev/xvda", spec.BlockDevices[0].DeviceName)
	assert.Equal(t, "ephemeral0", spec.BlockDevices[1].VirtualName)
}

func TestPlan_UnknownInstanceType(t *testing.T) {
	t.Parallel()
	opts := testOptions()
	opts.InstanceType = "z9.huge"
	cloud := &aws.MockClient{FindImagesFunc: singleImage(aws.Image{ID: "ami-1"})}

	_, err := Plan(context.Background(), opts, cloud, testCatalog())

	assert.ErrorIs(t, err, catalog.ErrUnknownInstanceType)
}

func TestPlan_ProviderErrorsPropagate(t *testing.T) {
	t.Parallel()
	boom := errors.New("boom")

	tests := []struct {
		name  string
		cloud *aws.MockClient
	}{
		{
			name: "image lookup",
			cloud: &aws.MockClient{
				FindImagesFunc: func(context.Context, string) ([]aws.Image, error) { return nil, boom },
			},
		},
		{
			name: "subnet lookup",
			cloud: &aws.MockClient{
				FindImagesFunc:        singleImage(aws.Image{ID: "ami-1"}),
				FindSubnetsByNameFunc: func(context.Context, string) ([]aws.Subnet, error) { return nil, boom },
			},
		},
		{
			name: "security group lookup",
			cloud: &aws.MockClient{
				FindImagesFunc:           singleImage(aws.Image{ID: "ami-1"}),
				FindSecurityGroupIDsFunc: func(context.Context, []string) ([]string, error) { return nil, boom },
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			opts := testOptions()
			opts.Subnet = "private"

			_, err := Plan(context.Background(), opts, tt.cloud, testCatalog())

			assert.ErrorIs(t, err, boom)
		})
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "0.1", FormatPrice(0.1))
	assert.Equal(t, "2", FormatPrice(2))
	assert.Equal(t, "0.0035", FormatPrice(0.0035))
}
