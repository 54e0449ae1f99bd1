package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Region:       "us-west-2",
		MaxAttempts:  3,
		StaleRetries: 3,
		Timeout:      time.Minute,
		StoreURI:     "s3://snapshots/waf",
		Workers:      4,
		LogLevel:     "info",
	}
}

func TestValidConfig(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestDefaultReadsRegionFromEnv(t *testing.T) {
	t.Setenv("AWS_REGION", "")
	t.Setenv("AWS_DEFAULT_REGION", "eu-west-1")
	cfg := Default()
	require.Equal(t, "eu-west-1", cfg.Region)
	require.NoError(t, cfg.Validate())

	t.Setenv("AWS_REGION", "ap-southeast-2")
	require.Equal(t, "ap-southeast-2", Default().Region)
}

func TestMissingRegion(t *testing.T) {
	cfg := validConfig()
	cfg.Region = ""
	require.Error(t, cfg.Validate())
}

func TestEndpoint(t *testing.T) {
	testCases := []struct {
		endpoint string
		wantErr  bool
	}{
		{"", false},
		{"http://localhost:8080", false},
		{"https://waf-regional.us-west-2.amazonaws.com", false},
		{"ftp://example.com", true},
		{"localhost:8080", true},
		{"https://", true},
	}
	for _, tc := range testCases {
		t.Run(tc.endpoint, func(t *testing.T) {
			cfg := validConfig()
			cfg.Endpoint = tc.endpoint
			err := cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestStaticCredentialsMustBePaired(t *testing.T) {
	cfg := validConfig()
	cfg.AccessKeyID = "AKIDEXAMPLE"
	require.Error(t, cfg.Validate())

	cfg.SecretAccessKey = "secret"
	require.NoError(t, cfg.Validate())
}

func TestMaxAttemptsBounds(t *testing.T) {
	for _, n := range []int{0, 11, -1} {
		cfg := validConfig()
		cfg.MaxAttempts = n
		require.Error(t, cfg.Validate(), "max attempts %d", n)
	}
	for _, n := range []int{1, 10} {
		cfg := validConfig()
		cfg.MaxAttempts = n
		require.NoError(t, cfg.Validate(), "max attempts %d", n)
	}
}

func TestNegativeStaleRetries(t *testing.T) {
	cfg := validConfig()
	cfg.StaleRetries = -1
	require.Error(t, cfg.Validate())

	cfg.StaleRetries = 0
	require.NoError(t, cfg.Validate())
}

func TestTimeout(t *testing.T) {
	cfg := validConfig()
	cfg.Timeout = 500 * time.Millisecond
	require.Error(t, cfg.Validate())

	cfg.Timeout = time.Second
	require.NoError(t, cfg.Validate())
}

func TestWorkers(t *testing.T) {
	cfg := validConfig()
	cfg.Workers = 0
	require.Error(t, cfg.Validate())
}

func TestLogLevel(t *testing.T) {
	cfg := validConfig()
	cfg.LogLevel = "DEBUG"
	require.NoError(t, cfg.Validate())

	cfg.LogLevel = "verbose"
	require.Error(t, cfg.Validate())
}

func TestStoreURI(t *testing.T) {
	testCases := []struct {
		name    string
		uri     string
		wantErr bool
	}{
		{"s3", "s3://bucket/prefix", false},
		{"s3 bucket only", "s3://bucket", false},
		{"file", "file:///var/lib/waf", false},
		{"dynamodb", "dynamodb://waf-state", false},
		{"memory", "mem://", false},
		{"empty", "", true},
		{"http", "http://bucket/key", true},
		{"no scheme", "bucket/key", true},
		{"s3 without bucket", "s3:///prefix", true},
		{"dynamodb without table", "dynamodb://", true},
		{"relative file", "file://relative/dir", true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.StoreURI = tc.uri
			err := cfg.Validate()
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
