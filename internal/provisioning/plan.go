package provisioning

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/imamik/foolaunch/internal/config"
	"github.com/imamik/foolaunch/internal/platform/aws"
)

var (
	// ErrAmbiguousImage is returned when the image name does not match exactly one image.
	ErrAmbiguousImage = errors.New("image name must match exactly one image")
	// ErrAmbiguousSubnet is returned when more than one subnet carries the configured Name tag.
	ErrAmbiguousSubnet = errors.New("subnet name matches more than one subnet")
)

// Plan resolves the named resources in opts and builds the launch spec.
// A configured subnet that matches nothing is skipped and the spec falls
// back to opts.Placement.
func Plan(ctx context.Context, opts *config.Options, cloud ResourceResolver, volumes VolumeCounter) (*aws.LaunchSpec, error) {
	images, err := cloud.FindImages(ctx, opts.Image)
	if err != nil {
		return nil, err
	}
	if len(images) != 1 {
		return nil, fmt.Errorf("%w: %q matched %d", ErrAmbiguousImage, opts.Image, len(images))
	}
	image := images[0]

	spec := &aws.LaunchSpec{
		ImageID:         image.ID,
		InstanceType:    opts.InstanceType,
		KeyName:         opts.Key,
		InstanceProfile: opts.InstanceProfile,
		UserData:        opts.UserDataB64,
		DryRun:          opts.DryRun,
		Count:           opts.LaunchCount(),
		Spot:            opts.Spot,
		ClientToken:     uuid.NewString(),
	}

	if opts.Subnet != "" {
		subnets, err := cloud.FindSubnetsByName(ctx, opts.Subnet)
		if err != nil {
			return nil, err
		}
		if len(subnets) > 1 {
			return nil, fmt.Errorf("%w: %q matched %d", ErrAmbiguousSubnet, opts.Subnet, len(subnets))
		}
		if len(subnets) == 1 {
			spec.SubnetID = subnets[0].ID
		}
	}
	if spec.SubnetID == "" {
		spec.Placement = opts.Placement
	}

	spec.BlockDevices, err = ComputeBlockDevices(image, opts.InstanceType, opts.RootVolumeSize, volumes)
	if err != nil {
		return nil, err
	}

	spec.SecurityGroupIDs, err = cloud.FindSecurityGroupIDs(ctx, opts.SecurityGroups)
	if err != nil {
		return nil, err
	}

	if opts.Price != nil {
		spec.SpotPrice = FormatPrice(*opts.Price)
	}
	return spec, nil
}

// FormatPrice renders a USD/hour bid the way the provider expects it.
func FormatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
