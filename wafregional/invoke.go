package wafregional

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"math/rand/v2"
	"net/http"
	"reflect"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/aws/smithy-go"
	json "github.com/goccy/go-json"
)

// throttlingCodes mean the request was refused before it was processed.
var throttlingCodes = map[string]bool{
	"Throttling":                true,
	"ThrottlingException":       true,
	"ThrottledException":        true,
	"TooManyRequestsException":  true,
	"RequestLimitExceeded":      true,
	"RequestThrottled":          true,
	"RequestThrottledException": true,
}

// internalCodes are server faults that may or may not have been committed.
var internalCodes = map[string]bool{
	CodeInternalError:             true,
	CodeTagOperationInternalError: true,
}

// transportError marks a failure before any response was read.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return "send request: " + e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

// isRetryable reports whether another attempt may succeed. Change-token
// actions are only retried when throttled; a transport error or server fault
// may follow a change that was already committed.
func isRetryable(ctx context.Context, action string, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && throttlingCodes[apiErr.Code] {
		return true
	}
	if RequiresChangeToken(action) {
		return false
	}
	var tErr *transportError
	if errors.As(err, &tErr) {
		return true
	}
	if apiErr != nil {
		return apiErr.StatusCode >= 500 || internalCodes[apiErr.Code]
	}
	return false
}

// backoffWait sleeps for an exponentially increasing duration with jitter.
// Returns false if the context is cancelled during the wait.
func backoffWait(ctx context.Context, attempt int) bool {
	base := 100 * time.Millisecond
	maxDelay := 20 * time.Second

	delay := base * time.Duration(1<<uint(attempt))
	if delay > maxDelay || delay <= 0 {
		delay = maxDelay
	}
	delay += time.Duration(rand.Int64N(int64(delay)))

	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

// invoke runs one API action: marshal params, post, retry where allowed,
// then decode into out. The returned error is a *smithy.OperationError
// wrapping either an *APIError or the underlying failure.
func (c *Client) invoke(ctx context.Context, action string, params, out any, optFns []func(*Options)) error {
	opts := c.options.copy()
	for _, fn := range optFns {
		fn(&opts)
	}
	opts.setDefaults()

	body, err := marshalInput(params)
	if err != nil {
		return &smithy.OperationError{ServiceID: ServiceID, OperationName: action, Err: err}
	}

	start := opts.now()
	var lastErr error
	for attempt := 0; attempt < opts.MaxAttempts; attempt++ {
		if attempt > 0 {
			if opts.Recorder != nil {
				opts.Recorder.ObserveRetry(action)
			}
			opts.Logger.Warn("retrying waf-regional call",
				zap.String("action", action),
				zap.Int("attempt", attempt+1),
				zap.Error(lastErr))
			if !backoffWait(ctx, attempt) {
				lastErr = ctx.Err()
				break
			}
		}

		lastErr = c.roundTrip(ctx, opts, action, body, out)
		if lastErr == nil || !isRetryable(ctx, action, lastErr) {
			break
		}
	}

	if opts.Recorder != nil {
		opts.Recorder.ObserveCall(action, opts.now().Sub(start), lastErr)
	}
	if lastErr != nil {
		return &smithy.OperationError{ServiceID: ServiceID, OperationName: action, Err: lastErr}
	}
	opts.Logger.Debug("waf-regional call succeeded",
		zap.String("action", action),
		zap.Duration("elapsed", opts.now().Sub(start)))
	return nil
}

func (c *Client) roundTrip(ctx context.Context, opts Options, action string, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.endpoint(), bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "build request")
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("X-Amz-Target", targetPrefix+"."+action)

	if opts.Credentials != nil {
		creds, err := opts.Credentials.Retrieve(ctx)
		if err != nil {
			return errors.Wrap(err, "retrieve credentials")
		}
		sum := sha256.Sum256(body)
		if err := opts.Signer.SignHTTP(ctx, creds, req, hex.EncodeToString(sum[:]),
			signingName, opts.Region, opts.now().UTC()); err != nil {
			return errors.Wrap(err, "sign request")
		}
	}

	resp, err := opts.HTTPClient.Do(req)
	if err != nil {
		return &transportError{err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &transportError{err: errors.Wrap(err, "read response body")}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp, data)
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decode %s response", action)
	}
	return nil
}

// marshalInput encodes params, sending "{}" for a nil input.
func marshalInput(params any) ([]byte, error) {
	if isNil(params) {
		return []byte("{}"), nil
	}
	data, err := json.Marshal(params)
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}
	return data, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	if raw, ok := v.(json.RawMessage); ok {
		return len(bytes.TrimSpace(raw)) == 0
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// InvokeRaw calls action with a pre-encoded JSON request body and returns the
// raw JSON response. It goes through the same signing, retry and error
// mapping as the typed methods.
func (c *Client) InvokeRaw(ctx context.Context, action string, request json.RawMessage, optFns ...func(*Options)) (json.RawMessage, error) {
	if !IsAction(action) {
		return nil, errors.Errorf("unknown action %q", action)
	}
	var out json.RawMessage
	if err := c.invoke(ctx, action, request, &out, optFns); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		out = json.RawMessage("{}")
	}
	return out, nil
}
