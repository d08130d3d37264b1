package provisioning

import (
	"errors"
	"fmt"

	"github.com/imamik/foolaunch/internal/platform/aws"
)

// ErrTooManyEphemeralVolumes is returned when an instance type reports more
// ephemeral volumes than there are device letters.
var ErrTooManyEphemeralVolumes = errors.New("too many ephemeral volumes")

// DefaultRootDevice is used when the image does not report its root device.
const DefaultRootDevice = "/dev/xvda"

// ephemeralDevicePrefix is followed by the device letter.
const ephemeralDevicePrefix = "/dev/sd"

// maxDeviceLetters counts b..z plus aa..zz.
const maxDeviceLetters = 25 + 26*26

// DeviceLetter returns the device suffix of ephemeral volume i: b..z for the
// first 25 volumes, then aa, ab, ..., zz.
func DeviceLetter(i int) (string, error) {
	if i < 0 || i >= maxDeviceLetters {
		return "", fmt.Errorf("%w: no device letter for index %d", ErrTooManyEphemeralVolumes, i)
	}
	if i < 25 {
		return string(rune('b' + i)), nil
	}
	i -= 25
	return string([]byte{byte('a' + i/26), byte('a' + i%26)}), nil
}

// ComputeBlockDevices builds the block-device mapping for instanceType booted
// from image. A root entry is added only when rootVolumeSize is set and
// differs from the image's root volume; one ephemeral entry is added per
// instance-store volume of the type. It returns nil when nothing needs
// mapping.
func ComputeBlockDevices(image aws.Image, instanceType string, rootVolumeSize *int32, volumes VolumeCounter) ([]aws.BlockDevice, error) {
	count, err := volumes.VolumeCount(instanceType)
	if err != nil {
		return nil, err
	}

	var devices []aws.BlockDevice
	if rootVolumeSize != nil && *rootVolumeSize != image.RootVolumeSize {
		root := image.RootDeviceName
		if root == "" {
			root = DefaultRootDevice
		}
		size := *rootVolumeSize
		devices = append(devices, aws.BlockDevice{DeviceName: root, VolumeSize: &size})
	}

	for i := 0; i < count; i++ {
		letter, err := DeviceLetter(i)
		if err != nil {
			return nil, fmt.Errorf("instance type %s: %w", instanceType, err)
		}
		devices = append(devices, aws.BlockDevice{
			DeviceName:  ephemeralDevicePrefix + letter,
			VirtualName: fmt.Sprintf("ephemeral%d", i),
		})
	}
	return devices, nil
}
