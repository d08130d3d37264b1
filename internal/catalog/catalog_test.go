package catalog

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	bucket, key string
	data        []byte
	err         error
}

func (f *fakeFetcher) FetchObject(_ context.Context, bucket, key string) ([]byte, error) {
	f.bucket, f.key = bucket, key
	return f.data, f.err
}

const smallCatalog = `
instance_types:
  m4.large: {ephemeral_volumes: 0, spot_prices: {us-east-1: 0.1}}
  d2.xlarge: {ephemeral_volumes: 3}
`

func TestDefault_KnownEntries(t *testing.T) {
	c := Default()

	tests := []struct {
		instanceType string
		want         int
	}{
		{"t2.micro", 0},
		{"m4.large", 0},
		{"d2.xlarge", 3},
		{"d2.8xlarge", 24},
		{"h1.16xlarge", 8},
		{"x1e.32xlarge", 2},
	}
	for _, tt := range tests {
		t.Run(tt.instanceType, func(t *testing.T) {
			got, err := c.VolumeCount(tt.instanceType)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVolumeCount_Unknown(t *testing.T) {
	_, err := Default().VolumeCount("z9.mega")
	assert.ErrorIs(t, err, ErrUnknownInstanceType)
	assert.Contains(t, err.Error(), "z9.mega")
}

func TestSpotPrice(t *testing.T) {
	c, err := Parse([]byte(smallCatalog))
	require.NoError(t, err)

	price, ok := c.SpotPrice("m4.large", "us-east-1")
	assert.True(t, ok)
	assert.InDelta(t, 0.1, price, 1e-9)

	_, ok = c.SpotPrice("m4.large", "eu-west-1")
	assert.False(t, ok)

	_, ok = c.SpotPrice("d2.xlarge", "us-east-1")
	assert.False(t, ok)

	_, ok = c.SpotPrice("unknown", "us-east-1")
	assert.False(t, ok)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not yaml", "instance_types: ["},
		{"empty", ""},
		{"negative volumes", "instance_types: {a.b: {ephemeral_volumes: -1}}"},
		{"zero price", "instance_types: {a.b: {ephemeral_volumes: 0, spot_prices: {us-east-1: 0}}}"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestNew_CopiesInput(t *testing.T) {
	input := map[string]InstanceType{"m4.large": {SpotPrices: map[string]float64{"us-east-1": 0.1}}}
	c := New(input)

	input["m4.large"].SpotPrices["us-east-1"] = 9
	delete(input, "m4.large")

	price, ok := c.SpotPrice("m4.large", "us-east-1")
	assert.True(t, ok)
	assert.InDelta(t, 0.1, price, 1e-9)
}

func TestLoad_Sources(t *testing.T) {
	ctx := context.Background()

	t.Run("built-in", func(t *testing.T) {
		c, err := Load(ctx, "", nil)
		require.NoError(t, err)
		assert.Contains(t, c.InstanceTypes(), "d2.xlarge")
	})

	t.Run("local file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(smallCatalog), 0o600))

		c, err := Load(ctx, path, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"d2.xlarge", "m4.large"}, c.InstanceTypes())
	})

	t.Run("s3 object", func(t *testing.T) {
		fetcher := &fakeFetcher{data: []byte(smallCatalog)}

		c, err := Load(ctx, "s3://ops-bucket/foolaunch/catalog.yaml", fetcher)
		require.NoError(t, err)
		assert.Equal(t, "ops-bucket", fetcher.bucket)
		assert.Equal(t, "foolaunch/catalog.yaml", fetcher.key)
		assert.Len(t, c.InstanceTypes(), 2)
	})

	t.Run("s3 fetch error", func(t *testing.T) {
		boom := errors.New("access denied")
		_, err := Load(ctx, "s3://ops-bucket/catalog.yaml", &fakeFetcher{err: boom})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("s3 without key", func(t *testing.T) {
		_, err := Load(ctx, "s3://ops-bucket", &fakeFetcher{})
		assert.Error(t, err)
	})

	t.Run("s3 without fetcher", func(t *testing.T) {
		_, err := Load(ctx, "s3://ops-bucket/catalog.yaml", nil)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(ctx, filepath.Join(t.TempDir(), "nope.yaml"), nil)
		assert.Error(t, err)
	})
}
