// Package wafregional is a client for the AWS WAF Classic Regional API. Every
// API action is a method on Client that marshals its input to the JSON 1.1
// wire format, sends a SigV4-signed POST naming the action in X-Amz-Target,
// and unmarshals the response or maps the service error code to an *APIError.
package wafregional

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Laisky/zap"
	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
)

const (
	// ServiceID names the service in operation errors.
	ServiceID = "WAF Regional"
	// APIVersion is the API model version this client speaks.
	APIVersion = "2016-11-28"

	signingName  = "waf-regional"
	targetPrefix = "AWSWAF_Regional_20161128"
	contentType  = "application/x-amz-json-1.1"

	defaultMaxAttempts      = 3
	defaultStaleDataRetries = 3
)

// NoStaleDataRetries makes WithChangeToken give up on the first
// WAFStaleDataException.
const NoStaleDataRetries = -1

// Logger is the subset of a zap logger the client writes to.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
}

// Recorder receives per-call measurements.
type Recorder interface {
	ObserveCall(action string, d time.Duration, err error)
	ObserveRetry(action string)
}

// HTTPSigner signs outgoing requests. *v4.Signer satisfies it.
type HTTPSigner interface {
	SignHTTP(ctx context.Context, credentials aws.Credentials, r *http.Request, payloadHash string, service string, region string, signingTime time.Time, optFns ...func(*v4.SignerOptions)) error
}

// Options configures a Client. A copy is taken per call so optFns passed to
// an operation only affect that call.
type Options struct {
	Region       string
	BaseEndpoint *string

	// Requests are sent unsigned when Credentials is nil.
	Credentials aws.CredentialsProvider
	HTTPClient  aws.HTTPClient
	Signer      HTTPSigner

	// MaxAttempts bounds attempts for retryable failures: throttling, and for
	// actions that take no change token also transport errors and 5xx
	// responses.
	MaxAttempts int
	// StaleDataRetries bounds how often WithChangeToken fetches a new token
	// after WAFStaleDataException. Zero selects the default;
	// NoStaleDataRetries disables retrying.
	StaleDataRetries int

	Logger   Logger
	Recorder Recorder

	// now is replaced in tests.
	now func() time.Time
}

func (o Options) copy() Options {
	c := o
	if o.BaseEndpoint != nil {
		endpoint := *o.BaseEndpoint
		c.BaseEndpoint = &endpoint
	}
	return c
}

func (o *Options) setDefaults() {
	if o.HTTPClient == nil {
		o.HTTPClient = awshttp.NewBuildableClient()
	}
	if o.Signer == nil {
		o.Signer = v4.NewSigner()
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = defaultMaxAttempts
	}
	if o.StaleDataRetries == 0 {
		o.StaleDataRetries = defaultStaleDataRetries
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.now == nil {
		o.now = time.Now
	}
}

// Client calls AWS WAF Regional. It is safe for concurrent use.
type Client struct {
	options Options
}

// New returns a client configured by optFns.
func New(options Options, optFns ...func(*Options)) *Client {
	options = options.copy()
	for _, fn := range optFns {
		fn(&options)
	}
	options.setDefaults()
	return &Client{options: options}
}

// NewFromConfig returns a client using the region, credentials, endpoint and
// HTTP client of cfg.
func NewFromConfig(cfg aws.Config, optFns ...func(*Options)) *Client {
	opts := Options{
		Region:       cfg.Region,
		BaseEndpoint: cfg.BaseEndpoint,
		Credentials:  cfg.Credentials,
		HTTPClient:   cfg.HTTPClient,
		MaxAttempts:  cfg.RetryMaxAttempts,
	}
	return New(opts, optFns...)
}

// Options returns a copy of the client's options.
func (c *Client) Options() Options {
	return c.options.copy()
}

// endpoint resolves the URL requests are posted to.
func (o Options) endpoint() string {
	if o.BaseEndpoint != nil && *o.BaseEndpoint != "" {
		return *o.BaseEndpoint
	}
	suffix := ".amazonaws.com/"
	if strings.HasPrefix(o.Region, "cn-") {
		suffix = ".amazonaws.com.cn/"
	}
	return "https://" + signingName + "." + o.Region + suffix
}
