package wafregional

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/aws/aws-sdk-go-v2/aws"
)

// WithChangeToken fetches a change token and passes it to fn. When fn fails
// with WAFStaleDataException, which WAF returns when another change consumed
// the token first, a fresh token is fetched and fn runs again, at most
// Options.StaleDataRetries more times. It returns the token of the final
// successful attempt.
func (c *Client) WithChangeToken(ctx context.Context, fn func(token string) error) (string, error) {
	retries := max(c.options.StaleDataRetries, 0)
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			c.options.Logger.Warn("change token went stale, fetching a new one",
				zap.Int("attempt", attempt+1),
				zap.Error(lastErr))
			if !backoffWait(ctx, attempt-1) {
				return "", ctx.Err()
			}
		}

		out, err := c.GetChangeToken(ctx, &GetChangeTokenInput{})
		if err != nil {
			return "", errors.Wrap(err, "get change token")
		}
		token := aws.ToString(out.ChangeToken)
		if token == "" {
			return "", errors.New("service returned an empty change token")
		}

		lastErr = fn(token)
		if lastErr == nil {
			return token, nil
		}
		if !errors.Is(lastErr, ErrStaleData) {
			return token, lastErr
		}
	}
	return "", errors.Wrapf(lastErr, "change token stale after %d attempts", retries+1)
}

// WaitForChangeToken polls GetChangeTokenStatus every interval until the
// change identified by token has propagated (INSYNC) or ctx is done.
func (c *Client) WaitForChangeToken(ctx context.Context, token string, interval time.Duration) error {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		out, err := c.GetChangeTokenStatus(ctx, &GetChangeTokenStatusInput{ChangeToken: aws.String(token)})
		if err != nil {
			return errors.Wrap(err, "get change token status")
		}
		if out.ChangeTokenStatus == ChangeTokenStatusInsync {
			return nil
		}
		c.options.Logger.Debug("waiting for change token",
			zap.String("token", token),
			zap.String("status", string(out.ChangeTokenStatus)))

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
