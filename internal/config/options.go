package config

import (
	"fmt"
	"math"
	"sort"
	"strconv"
)

// Options is the typed form of a resolved profile. Each field corresponds to
// one recognized option name; DryRun is only set from the command line.
type Options struct {
	Profile         string            `json:"profile,omitempty" yaml:"profile,omitempty"`                   // AWS shared-config profile
	Region          string            `json:"region,omitempty" yaml:"region,omitempty"`                     // AWS region
	Image           string            `json:"image,omitempty" yaml:"image,omitempty"`                       // AMI name, matched exactly
	InstanceType    string            `json:"instance_type,omitempty" yaml:"instance_type,omitempty"`       // e.g. m4.large
	Placement       string            `json:"placement,omitempty" yaml:"placement,omitempty"`               // availability zone
	Subnet          string            `json:"subnet,omitempty" yaml:"subnet,omitempty"`                     // subnet Name tag
	Key             string            `json:"key,omitempty" yaml:"key,omitempty"`                           // key pair name
	InstanceProfile string            `json:"instance_profile,omitempty" yaml:"instance_profile,omitempty"` // IAM instance profile name
	SecurityGroups  []string          `json:"security_groups,omitempty" yaml:"security_groups,omitempty"`   // group names
	Tags            map[string]string `json:"tags,omitempty" yaml:"tags,omitempty"`
	RootVolumeSize  *int32            `json:"root_volume_size,omitempty" yaml:"root_volume_size,omitempty"` // GiB
	LoadBalancers   []string          `json:"load_balancers,omitempty" yaml:"load_balancers,omitempty"`
	UserDataB64     string            `json:"user_data_b64,omitempty" yaml:"user_data_b64,omitempty"`
	Spot            bool              `json:"spot,omitempty" yaml:"spot,omitempty"`
	Name            string            `json:"name,omitempty" yaml:"name,omitempty"` // value of the Name tag
	Count           int32             `json:"count,omitempty" yaml:"count,omitempty"`
	Price           *float64          `json:"price,omitempty" yaml:"price,omitempty"` // spot max price, USD/hour

	DryRun bool `json:"-" yaml:"dry_run,omitempty"`
}

// Apply sets the fields named in resolved. Options absent from resolved keep
// their current value; a null value resets the field. Keys are applied in
// sorted order so the first reported error is deterministic.
func (o *Options) Apply(resolved ResolvedOptions) error {
	keys := make([]string, 0, len(resolved))
	for k := range resolved {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := o.set(k, resolved[k]); err != nil {
			return err
		}
	}
	return nil
}

func (o *Options) set(name string, value any) error {
	var err error
	switch name {
	case OptProfile:
		o.Profile, err = asString(value)
	case OptRegion:
		o.Region, err = asString(value)
	case OptImage:
		o.Image, err = asString(value)
	case OptInstanceType:
		o.InstanceType, err = asString(value)
	case OptPlacement:
		o.Placement, err = asString(value)
	case OptSubnet:
		o.Subnet, err = asString(value)
	case OptKey:
		o.Key, err = asString(value)
	case OptInstanceProfile:
		o.InstanceProfile, err = asString(value)
	case OptSecurityGroups:
		o.SecurityGroups, err = asStringList(value)
	case OptTags:
		o.Tags, err = asStringMap(value)
	case OptRootVolumeSize:
		o.RootVolumeSize, err = asOptionalInt32(value)
	case OptLoadBalancers:
		o.LoadBalancers, err = asStringList(value)
	case OptUserDataB64:
		o.UserDataB64, err = asString(value)
	case OptSpot:
		o.Spot, err = asBool(value)
	case OptName:
		o.Name, err = asString(value)
	case OptCount:
		var n *int32
		n, err = asOptionalInt32(value)
		o.Count = 0
		if n != nil {
			o.Count = *n
		}
	case OptPrice:
		o.Price, err = asOptionalFloat(value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidOptionValue, name, err)
	}
	return nil
}

// LaunchCount is the number of instances to request; unset means one.
func (o *Options) LaunchCount() int32 {
	if o.Count <= 0 {
		return 1
	}
	return o.Count
}

func asString(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	default:
		return "", fmt.Errorf("want string, got %T", v)
	}
}

func asBool(v any) (bool, error) {
	switch t := v.(type) {
	case nil:
		return false, nil
	case bool:
		return t, nil
	default:
		return false, fmt.Errorf("want boolean, got %T", v)
	}
}

func asStringList(v any) ([]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case string:
		// A lone name is accepted in place of a one-element list.
		return []string{t}, nil
	case []any:
		out := make([]string, 0, len(t))
		for i, item := range t {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("entry %d: want string, got %T", i, item)
			}
			out = append(out, s)
		}
		return out, nil
	case []string:
		return append([]string(nil), t...), nil
	default:
		return nil, fmt.Errorf("want list of strings, got %T", v)
	}
}

func asStringMap(v any) (map[string]string, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case map[string]any:
		out := make(map[string]string, len(t))
		for k, item := range t {
			switch s := item.(type) {
			case string:
				out[k] = s
			case float64, bool:
				out[k] = fmt.Sprint(s)
			default:
				return nil, fmt.Errorf("tag %s: want string, got %T", k, item)
			}
		}
		return out, nil
	case map[string]string:
		out := make(map[string]string, len(t))
		for k, s := range t {
			out[k] = s
		}
		return out, nil
	default:
		return nil, fmt.Errorf("want mapping of strings, got %T", v)
	}
}

func asOptionalInt32(v any) (*int32, error) {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil, nil
	case float64:
		f = t
	case int:
		f = float64(t)
	case int32:
		return &t, nil
	case int64:
		f = float64(t)
	case string:
		n, err := strconv.ParseInt(t, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("want integer, got %q", t)
		}
		f = float64(n)
	default:
		return nil, fmt.Errorf("want integer, got %T", v)
	}
	if f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return nil, fmt.Errorf("want non-negative integer, got %v", f)
	}
	n := int32(f)
	return &n, nil
}

func asOptionalFloat(v any) (*float64, error) {
	switch t := v.(type) {
	case nil:
		return nil, nil
	case float64:
		return &t, nil
	case int:
		f := float64(t)
		return &f, nil
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil, fmt.Errorf("want number, got %q", t)
		}
		return &f, nil
	default:
		return nil, fmt.Errorf("want number, got %T", v)
	}
}
