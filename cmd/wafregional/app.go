package main

import (
	"context"
	"flag"
	"strings"

	"github.com/Laisky/errors/v2"
	glog "github.com/Laisky/go-utils/v5/log"
	"github.com/Laisky/zap"
	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gurre/s3streamer"

	"github.com/gurre/waf-regional/aws"
	"github.com/gurre/waf-regional/config"
	"github.com/gurre/waf-regional/metrics"
	"github.com/gurre/waf-regional/store"
	"github.com/gurre/waf-regional/wafregional"
)

// bindConfig registers the flags shared by every AWS-backed subcommand.
func bindConfig(fs *flag.FlagSet, cfg *config.Config) *string {
	fs.StringVar(&cfg.Region, "region", cfg.Region, "AWS region (defaults to AWS_REGION env)")
	fs.StringVar(&cfg.Endpoint, "endpoint", cfg.Endpoint, "WAF Regional endpoint override")
	fs.StringVar(&cfg.AccessKeyID, "access-key-id", cfg.AccessKeyID, "static access key id (defaults to the credential chain)")
	fs.StringVar(&cfg.SecretAccessKey, "secret-access-key", cfg.SecretAccessKey, "static secret access key")
	fs.StringVar(&cfg.SessionToken, "session-token", cfg.SessionToken, "static session token")
	fs.IntVar(&cfg.MaxAttempts, "max-attempts", cfg.MaxAttempts, "attempts per call for retryable failures")
	fs.IntVar(&cfg.StaleRetries, "stale-retries", cfg.StaleRetries, "extra attempts when a change token goes stale, 0 disables")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "deadline for the whole command")
	fs.StringVar(&cfg.StoreURI, "store", cfg.StoreURI, "snapshot and checkpoint store (s3://, file://, dynamodb://, mem://)")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent fetches during export")
	fs.BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "decode and validate without changing anything")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	return fs.String("report", "", "store key for a JSON run report")
}

// app holds the clients built from a validated Config.
type app struct {
	cfg       *config.Config
	logger    glog.Logger
	awsCfg    sdkaws.Config
	waf       *wafregional.Client
	metrics   *metrics.Metrics
	s3        *s3.Client
	store     store.Store
	reportKey string
}

func newApp(ctx context.Context, e *env, cfg *config.Config, reportKey string) (*app, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	if err := e.logger.ChangeLevel(glog.Level(strings.ToLower(cfg.LogLevel))); err != nil {
		return nil, errors.Wrap(err, "set log level")
	}

	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithRetryMaxAttempts(cfg.MaxAttempts),
	}
	if cfg.AccessKeyID != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken)))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "load AWS config")
	}

	m := metrics.NewMetrics()
	waf := wafregional.NewFromConfig(awsCfg, func(o *wafregional.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = sdkaws.String(cfg.Endpoint)
		}
		o.MaxAttempts = cfg.MaxAttempts
		o.StaleDataRetries = staleDataRetries(cfg.StaleRetries)
		o.Logger = e.logger
		o.Recorder = m
	})

	rawS3 := s3.NewFromConfig(awsCfg)
	st, err := store.NewFromURI(cfg.StoreURI, store.Clients{
		S3:       aws.NewS3Client(rawS3),
		DynamoDB: aws.NewDynamoDBClient(dynamodb.NewFromConfig(awsCfg)),
	})
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}

	return &app{
		cfg:       cfg,
		logger:    e.logger,
		awsCfg:    awsCfg,
		waf:       waf,
		metrics:   m,
		s3:        rawS3,
		store:     st,
		reportKey: reportKey,
	}, nil
}

// staleDataRetries maps the flag, where 0 means no retries, onto the client
// option, where 0 means the default.
func staleDataRetries(n int) int {
	if n == 0 {
		return wafregional.NoStaleDataRetries
	}
	return n
}

func (a *app) streamer() s3streamer.Streamer {
	return s3streamer.NewS3Streamer(a.s3)
}

func (a *app) iam() aws.IAMClient {
	return aws.NewIAMClient(iam.NewFromConfig(a.awsCfg))
}

// finish logs the run report and saves it when a report key was given.
func (a *app) finish(ctx context.Context) error {
	report := a.metrics.GenerateReport()
	a.logger.Info("run finished",
		zap.Int64("calls", report.TotalCalls),
		zap.Duration("duration", report.Duration))
	a.logger.Debug(report.String())
	if a.reportKey == "" {
		return nil
	}
	if err := store.PutJSON(ctx, a.store, a.reportKey, report); err != nil {
		return errors.Wrap(err, "save report")
	}
	return nil
}
