package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/foolaunch/internal/config"
	"github.com/imamik/foolaunch/internal/platform/aws"
	testutil "github.com/imamik/foolaunch/internal/testing"
)

func TestProfiles(t *testing.T) {
	out, path := stubLaunch(t, &aws.MockClient{})

	require.NoError(t, Profiles(testutil.TestContext(t), nil))

	assert.Contains(t, out.String(), path)
	assert.Contains(t, out.String(), "default (applied first)")
	assert.Contains(t, out.String(), "spot")
	assert.Contains(t, out.String(), "web")
}

func TestProfiles_NoConfig(t *testing.T) {
	out, _ := stubLaunch(t, &aws.MockClient{})
	loadDocument = func(_ ...string) config.LoadResult {
		return config.LoadResult{Document: config.Document{}}
	}

	require.NoError(t, Profiles(testutil.TestContext(t), []string{"custom.json"}))
	assert.Contains(t, out.String(), "No config file found")
	assert.Contains(t, out.String(), "custom.json")
}

func TestDescribeProfiles(t *testing.T) {
	doc, err := config.ParseDocument([]byte(`{
  "base": {"region": "us-east-1", "key": "deploy"},
  "web": {"*": ["base"], "instance_type": "m4.large"},
  "loop": {"*": ["loop"]},
  "broken": "not a profile"
}`))
	require.NoError(t, err)

	infos := describeProfiles(doc)
	require.Len(t, infos, 4)

	byName := make(map[string]ProfileInfo, len(infos))
	names := make([]string, 0, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
		names = append(names, info.Name)
	}
	assert.Equal(t, []string{"base", "broken", "loop", "web"}, names)

	assert.Equal(t, ProfileInfo{Name: "base", Options: 2}, byName["base"])
	assert.Equal(t, ProfileInfo{Name: "web", Includes: []string{"base"}, Options: 1}, byName["web"])
	assert.True(t, byName["loop"].Invalid)
	assert.True(t, byName["broken"].Invalid)
}

func TestProfileNames(t *testing.T) {
	stubLaunch(t, &aws.MockClient{})
	assert.Equal(t, []string{"default", "spot", "web"}, ProfileNames(nil))

	loadDocument = func(_ ...string) config.LoadResult {
		return config.LoadResult{Document: config.Document{}}
	}
	assert.Empty(t, ProfileNames(nil))
}
