// Package config holds the settings shared by every wafregional subcommand
// and validates them before any client is built.
package config

import (
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Laisky/errors/v2"
)

// Store URI schemes accepted by StoreURI.
var storeSchemes = map[string]bool{
	"s3":       true,
	"file":     true,
	"dynamodb": true,
	"mem":      true,
}

// Config holds all settings for one CLI invocation.
type Config struct {
	Region          string        // AWS region of the WAF Regional endpoint
	Endpoint        string        // Optional endpoint override (http or https)
	AccessKeyID     string        // Static credentials; empty uses the default chain
	SecretAccessKey string
	SessionToken    string
	MaxAttempts     int           // Attempts per call including the first
	StaleRetries    int           // Extra attempts after WAFStaleDataException; 0 disables
	Timeout         time.Duration // Overall deadline for the command
	StoreURI        string        // Where snapshots and checkpoints live
	Workers         int           // Concurrent fetches during export
	DryRun          bool          // Decode change files without applying them
	LogLevel        string        // debug, info, warn or error
}

// Default returns a Config with the CLI defaults and the region taken from
// AWS_REGION or AWS_DEFAULT_REGION.
func Default() *Config {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = os.Getenv("AWS_DEFAULT_REGION")
	}
	return &Config{
		Region:       region,
		MaxAttempts:  3,
		StaleRetries: 3,
		Timeout:      5 * time.Minute,
		StoreURI:     "mem://",
		Workers:      4,
		LogLevel:     "info",
	}
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if c.Region == "" {
		return errors.New("region is required")
	}

	if c.Endpoint != "" {
		u, err := url.Parse(c.Endpoint)
		if err != nil {
			return errors.Wrap(err, "invalid endpoint")
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.Errorf("endpoint must use http or https, got %q", u.Scheme)
		}
		if u.Host == "" {
			return errors.New("endpoint must include a host")
		}
	}

	if (c.AccessKeyID == "") != (c.SecretAccessKey == "") {
		return errors.New("access key id and secret access key must be set together")
	}

	if c.MaxAttempts < 1 || c.MaxAttempts > 10 {
		return errors.New("max attempts must be between 1 and 10")
	}

	if c.StaleRetries < 0 {
		return errors.New("stale retries must not be negative")
	}

	if c.Timeout < time.Second {
		return errors.New("timeout must be at least 1 second")
	}

	if err := ValidateStoreURI(c.StoreURI); err != nil {
		return err
	}

	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}

	return nil
}

// ValidateStoreURI checks that uri names a supported store.
func ValidateStoreURI(uri string) error {
	if uri == "" {
		return errors.New("store URI is required")
	}
	u, err := url.Parse(uri)
	if err != nil {
		return errors.Wrap(err, "invalid store URI")
	}
	if !storeSchemes[u.Scheme] {
		return errors.Errorf("store URI scheme must be s3, file, dynamodb or mem, got %q", u.Scheme)
	}
	switch u.Scheme {
	case "s3", "dynamodb":
		if u.Host == "" {
			return errors.Errorf("%s store URI must name a bucket or table", u.Scheme)
		}
	case "file":
		if u.Host != "" || !strings.HasPrefix(u.Path, "/") {
			return errors.New("file store URI must be absolute")
		}
	}
	return nil
}
