package catalog

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownInstanceType is returned for instance types missing from the catalog.
var ErrUnknownInstanceType = errors.New("unknown instance type")

//go:embed catalog.yaml
var defaultCatalog []byte

// InstanceType describes one catalog entry.
type InstanceType struct {
	EphemeralVolumes int                `yaml:"ephemeral_volumes"`
	SpotPrices       map[string]float64 `yaml:"spot_prices,omitempty"`
}

type catalogFile struct {
	InstanceTypes map[string]InstanceType `yaml:"instance_types"`
}

// Catalog is an immutable instance-type table.
type Catalog struct {
	types map[string]InstanceType
}

// ObjectFetcher reads an object from S3.
type ObjectFetcher interface {
	FetchObject(ctx context.Context, bucket, key string) ([]byte, error)
}

// New builds a catalog from explicit entries. The map is copied.
func New(types map[string]InstanceType) *Catalog {
	c := &Catalog{types: make(map[string]InstanceType, len(types))}
	for name, t := range types {
		prices := make(map[string]float64, len(t.SpotPrices))
		for region, p := range t.SpotPrices {
			prices[region] = p
		}
		c.types[name] = InstanceType{EphemeralVolumes: t.EphemeralVolumes, SpotPrices: prices}
	}
	return c
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := Parse(defaultCatalog)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return c
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if len(f.InstanceTypes) == 0 {
		return nil, fmt.Errorf("failed to parse catalog: no instance types")
	}
	for name, t := range f.InstanceTypes {
		if t.EphemeralVolumes < 0 {
			return nil, fmt.Errorf("instance type %s: negative ephemeral volume count %d", name, t.EphemeralVolumes)
		}
		for region, price := range t.SpotPrices {
			if price <= 0 {
				return nil, fmt.Errorf("instance type %s: invalid spot price %v in %s", name, price, region)
			}
		}
	}
	return New(f.InstanceTypes), nil
}

// LoadFile reads a catalog from a local file.
func LoadFile(path string) (*Catalog, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Load reads a catalog from source: empty for the built-in catalog, an
// s3://bucket/key URL fetched through fetcher, or a local path.
func Load(ctx context.Context, source string, fetcher ObjectFetcher) (*Catalog, error) {
	switch {
	case source == "":
		return Default(), nil
	case strings.HasPrefix(source, "s3://"):
		bucket, key, err := parseS3URL(source)
		if err != nil {
			return nil, err
		}
		if fetcher == nil {
			return nil, fmt.Errorf("cannot fetch %s: no S3 client configured", source)
		}
		data, err := fetcher.FetchObject(ctx, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch catalog %s: %w", source, err)
		}
		return Parse(data)
	default:
		return LoadFile(source)
	}
}

func parseS3URL(raw string) (bucket, key string, err error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", "", fmt.Errorf("invalid catalog URL %s: %w", raw, err)
	}
	key = strings.TrimPrefix(u.Path, "/")
	if u.Host == "" || key == "" {
		return "", "", fmt.Errorf("invalid catalog URL %s: want s3://bucket/key", raw)
	}
	return u.Host, key, nil
}

// VolumeCount returns the number of ephemeral volumes of instanceType.
func (c *Catalog) VolumeCount(instanceType string) (int, error) {
	t, ok := c.types[instanceType]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownInstanceType, instanceType)
	}
	return t.EphemeralVolumes, nil
}

// SpotPrice returns the default spot bid for instanceType in region.
func (c *Catalog) SpotPrice(instanceType, region string) (float64, bool) {
	t, ok := c.types[instanceType]
	if !ok {
		return 0, false
	}
	p, ok := t.SpotPrices[region]
	return p, ok
}

// InstanceTypes returns the catalog's instance type names, sorted.
func (c *Catalog) InstanceTypes() []string {
	names := make([]string, 0, len(c.types))
	for name := range c.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
