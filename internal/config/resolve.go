package config

import (
	"fmt"
	"strings"
)

// IncludeKey is the profile key holding the include list.
const IncludeKey = "*"

// Recognized option names.
const (
	OptProfile         = "profile"
	OptRegion          = "region"
	OptImage           = "image"
	OptInstanceType    = "instance_type"
	OptPlacement       = "placement"
	OptSubnet          = "subnet"
	OptKey             = "key"
	OptInstanceProfile = "instance_profile"
	OptSecurityGroups  = "security_groups"
	OptTags            = "tags"
	OptRootVolumeSize  = "root_volume_size"
	OptLoadBalancers   = "load_balancers"
	OptUserDataB64     = "user_data_b64"
	OptSpot            = "spot"
	OptName            = "name"
	OptCount           = "count"
	OptPrice           = "price"
)

// OptionNames lists every recognized option in documentation order.
var OptionNames = []string{
	OptProfile, OptRegion, OptImage, OptInstanceType, OptPlacement, OptSubnet,
	OptKey, OptInstanceProfile, OptSecurityGroups, OptTags, OptRootVolumeSize,
	OptLoadBalancers, OptUserDataB64, OptSpot, OptName, OptCount, OptPrice,
}

var knownOptions = func() map[string]bool {
	m := make(map[string]bool, len(OptionNames))
	for _, name := range OptionNames {
		m[name] = true
	}
	return m
}()

// IsOption reports whether name is a recognized option.
func IsOption(name string) bool {
	return knownOptions[name]
}

// ResolvedOptions is the flat option set produced by Resolve.
type ResolvedOptions map[string]any

// Resolve flattens the named profile. Included profiles are resolved first,
// in list order, each overriding what came before; the profile's own keys
// are applied last.
func Resolve(doc Document, name string) (ResolvedOptions, error) {
	total := ResolvedOptions{}
	if err := resolveInto(doc, name, total, nil); err != nil {
		return nil, err
	}
	return total, nil
}

// resolveInto merges profile name into total. chain holds the profiles
// currently being expanded and is used to reject include cycles.
func resolveInto(doc Document, name string, total ResolvedOptions, chain []string) error {
	for _, active := range chain {
		if active == name {
			return fmt.Errorf("%w: %s -> %s", ErrIncludeCycle, strings.Join(chain, " -> "), name)
		}
	}

	raw, ok := doc[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProfile, name)
	}
	body, ok := raw.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidProfileShape, name)
	}

	if rawIncludes, ok := body[IncludeKey]; ok {
		includes, err := includeList(rawIncludes)
		if err != nil {
			return fmt.Errorf("%w: profile %s: %v", ErrInvalidIncludeList, name, err)
		}
		chain = append(chain, name)
		for _, include := range includes {
			if err := resolveInto(doc, include, total, chain); err != nil {
				return err
			}
		}
	}

	for key, value := range body {
		if key == IncludeKey {
			continue
		}
		if !IsOption(key) {
			return fmt.Errorf("%w: %s in profile %s", ErrUnknownOption, key, name)
		}
		total[key] = value
	}
	return nil
}

func includeList(raw any) ([]string, error) {
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("got %T", raw)
	}
	names := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("entry %d is %T", i, item)
		}
		names = append(names, s)
	}
	return names, nil
}
