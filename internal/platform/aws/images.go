package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"
)

// FindImages returns the images named exactly name.
func (c *RealClient) FindImages(ctx context.Context, name string) ([]Image, error) {
	out, err := c.ec2.DescribeImages(ctx, &ec2.DescribeImagesInput{
		Filters: []types.Filter{nameFilter("name", name)},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe images named %s: %w", name, err)
	}

	images := make([]Image, 0, len(out.Images))
	for _, img := range out.Images {
		if aws.ToString(img.Name) != name {
			continue
		}
		images = append(images, imageFromSDK(img))
	}
	return images, nil
}

func imageFromSDK(img types.Image) Image {
	image := Image{
		ID:             aws.ToString(img.ImageId),
		Name:           aws.ToString(img.Name),
		RootDeviceName: aws.ToString(img.RootDeviceName),
	}
	for _, bdm := range img.BlockDeviceMappings {
		if aws.ToString(bdm.DeviceName) != image.RootDeviceName || bdm.Ebs == nil {
			continue
		}
		image.RootVolumeSize = aws.ToInt32(bdm.Ebs.VolumeSize)
	}
	return image
}

func nameFilter(name string, values ...string) types.Filter {
	return types.Filter{Name: aws.String(name), Values: values}
}
