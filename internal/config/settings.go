package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by LoadSettings.
const EnvPrefix = "FOOLAUNCH"

// DefaultPollInterval is the wait between spot request status checks.
const DefaultPollInterval = 5 * time.Second

// Setting keys. Flags with the same name (dashes instead of underscores) are
// bound to them by the CLI.
const (
	KeyPollInterval    = "poll_interval"
	KeyCatalog         = "catalog"
	KeyPushgateway     = "pushgateway"
	KeyAccessKeyID     = "access_key_id"
	KeySecretAccessKey = "secret_access_key"
	KeySessionToken    = "session_token"
	KeyAssumeYes       = "yes"
	KeyJSONLogs        = "json_logs"
)

// Settings holds runtime values that are not part of a launch profile.
type Settings struct {
	PollInterval time.Duration // wait between spot request polls
	Catalog      string        // catalog file or s3:// URL; empty uses the built-in catalog
	Pushgateway  string        // Prometheus Pushgateway URL; empty disables pushing
	AssumeYes    bool          // skip the launch confirmation prompt
	JSONLogs     bool          // structured log output

	// Static credentials. When empty the default AWS credential chain is used.
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// NewViper returns a viper instance reading FOOLAUNCH_* environment
// variables, with defaults set for every setting.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault(KeyPollInterval, DefaultPollInterval)
	return v
}

// LoadSettings reads settings from v.
//
// Environment Variables:
//   - FOOLAUNCH_POLL_INTERVAL (default: 5s)
//   - FOOLAUNCH_CATALOG
//   - FOOLAUNCH_PUSHGATEWAY
//   - FOOLAUNCH_YES
//   - FOOLAUNCH_JSON_LOGS
//   - FOOLAUNCH_ACCESS_KEY_ID, FOOLAUNCH_SECRET_ACCESS_KEY, FOOLAUNCH_SESSION_TOKEN
func LoadSettings(v *viper.Viper) Settings {
	s := Settings{
		PollInterval:    v.GetDuration(KeyPollInterval),
		Catalog:         v.GetString(KeyCatalog),
		Pushgateway:     v.GetString(KeyPushgateway),
		AssumeYes:       v.GetBool(KeyAssumeYes),
		JSONLogs:        v.GetBool(KeyJSONLogs),
		AccessKeyID:     v.GetString(KeyAccessKeyID),
		SecretAccessKey: v.GetString(KeySecretAccessKey),
		SessionToken:    v.GetString(KeySessionToken),
	}
	// An unparsable or non-positive interval falls back to the default.
	if s.PollInterval <= 0 {
		s.PollInterval = DefaultPollInterval
	}
	return s
}

// HasStaticCredentials reports whether both parts of a static key pair are set.
func (s Settings) HasStaticCredentials() bool {
	return s.AccessKeyID != "" && s.SecretAccessKey != ""
}
