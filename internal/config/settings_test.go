package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadSettings_Defaults(t *testing.T) {
	settings := LoadSettings(NewViper())

	assert.Equal(t, DefaultPollInterval, settings.PollInterval)
	assert.Empty(t, settings.Catalog)
	assert.Empty(t, settings.Pushgateway)
	assert.False(t, settings.AssumeYes)
	assert.False(t, settings.HasStaticCredentials())
}

func TestLoadSettings_EnvironmentOverrides(t *testing.T) {
	t.Setenv("FOOLAUNCH_POLL_INTERVAL", "250ms")
	t.Setenv("FOOLAUNCH_CATALOG", "s3://bucket/catalog.yaml")
	t.Setenv("FOOLAUNCH_YES", "true")
	t.Setenv("FOOLAUNCH_ACCESS_KEY_ID", "AKIA")
	t.Setenv("FOOLAUNCH_SECRET_ACCESS_KEY", "secret")

	settings := LoadSettings(NewViper())

	assert.Equal(t, 250*time.Millisecond, settings.PollInterval)
	assert.Equal(t, "s3://bucket/catalog.yaml", settings.Catalog)
	assert.True(t, settings.AssumeYes)
	assert.True(t, settings.HasStaticCredentials())
}

func TestLoadSettings_InvalidPollIntervalFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"garbage", "soon"},
		{"negative", "-3s"},
		{"zero", "0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("FOOLAUNCH_POLL_INTERVAL", tt.value)
			assert.Equal(t, DefaultPollInterval, LoadSettings(NewViper()).PollInterval)
		})
	}
}
