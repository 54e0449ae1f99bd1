package wafregional

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/smithy-go"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, optFns ...func(*Options)) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Options{
		Region:       "us-east-1",
		BaseEndpoint: aws.String(srv.URL),
		HTTPClient:   srv.Client(),
	}, optFns...)
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestInvokeSendsTargetAndBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "AWSWAF_Regional_20161128.GetWebACL", r.Header.Get("X-Amz-Target"))
		require.Equal(t, "application/x-amz-json-1.1", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.JSONEq(t, `{"WebACLId":"acl-1"}`, string(body))

		writeJSON(w, http.StatusOK, `{
			"WebACL": {
				"WebACLId": "acl-1",
				"Name": "edge",
				"MetricName": "edge",
				"DefaultAction": {"Type": "ALLOW"},
				"Rules": [{"Priority": 1, "RuleId": "rule-1", "Action": {"Type": "BLOCK"}, "Type": "REGULAR"}],
				"SomethingNew": {"nested": true}
			},
			"AlsoUnknown": 42
		}`)
	})

	out, err := client.GetWebACL(context.Background(), &GetWebACLInput{WebACLId: aws.String("acl-1")})
	require.NoError(t, err)
	require.NotNil(t, out.WebACL)
	require.Equal(t, "edge", aws.ToString(out.WebACL.Name))
	require.Equal(t, WafActionTypeAllow, out.WebACL.DefaultAction.Type)
	require.Len(t, out.WebACL.Rules, 1)
	require.Equal(t, int32(1), aws.ToInt32(out.WebACL.Rules[0].Priority))
	require.Equal(t, WafRuleTypeRegular, out.WebACL.Rules[0].Type)
	require.Nil(t, out.WebACL.WebACLArn)
}

func TestNilInputSendsEmptyObject(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.Equal(t, "{}", string(body))
		writeJSON(w, http.StatusOK, `{"ChangeToken":"tok-1"}`)
	})

	out, err := client.GetChangeToken(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, "tok-1", aws.ToString(out.ChangeToken))
}

func TestEmptyResponseBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	out, err := client.AssociateWebACL(context.Background(), &AssociateWebACLInput{
		WebACLId:    aws.String("acl-1"),
		ResourceArn: aws.String("arn:aws:elasticloadbalancing:us-east-1:123456789012:loadbalancer/app/lb/1"),
	})
	require.NoError(t, err)
	require.NotNil(t, out)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		body     string
		status   int
		sentinel error
		code     string
		message  string
	}{
		{
			name:     "type in body with namespace",
			body:     `{"__type":"com.amazonaws.waf#WAFStaleDataException","message":"token used"}`,
			status:   http.StatusBadRequest,
			sentinel: ErrStaleData,
			code:     CodeStaleData,
			message:  "token used",
		},
		{
			name:     "type in header with uri suffix",
			header:   "WAFNonexistentItemException:http://internal.amazon.com/coral/com.amazonaws.waf/",
			body:     `{"Message":"no such ACL"}`,
			status:   http.StatusBadRequest,
			sentinel: ErrNonexistentItem,
			code:     CodeNonexistentItem,
			message:  "no such ACL",
		},
		{
			name:     "limits exceeded",
			body:     `{"__type":"WAFLimitsExceededException","message":"too many"}`,
			status:   http.StatusBadRequest,
			sentinel: ErrLimitsExceeded,
			code:     CodeLimitsExceeded,
			message:  "too many",
		},
		{
			name:    "unknown code",
			body:    `{"__type":"SomethingElse","message":"odd"}`,
			status:  http.StatusBadRequest,
			code:    "SomethingElse",
			message: "odd",
		},
		{
			name:    "no body",
			status:  http.StatusForbidden,
			code:    "UnknownError",
			message: "Forbidden",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if tt.header != "" {
					w.Header().Set("X-Amzn-ErrorType", tt.header)
				}
				w.Header().Set("X-Amzn-RequestId", "req-123")
				writeJSON(w, tt.status, tt.body)
			})

			_, err := client.GetIPSet(context.Background(), &GetIPSetInput{IPSetId: aws.String("ip-1")})
			require.Error(t, err)

			var opErr *smithy.OperationError
			require.True(t, errors.As(err, &opErr))
			require.Equal(t, ActionGetIPSet, opErr.OperationName)

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr))
			require.Equal(t, tt.code, apiErr.ErrorCode())
			require.Equal(t, tt.message, apiErr.ErrorMessage())
			require.Equal(t, tt.status, apiErr.HTTPStatusCode())
			require.Equal(t, "req-123", apiErr.RequestID)
			require.Equal(t, smithy.FaultClient, apiErr.ErrorFault())
			if tt.sentinel != nil {
				require.ErrorIs(t, err, tt.sentinel)
				require.True(t, IsKnownErrorCode(tt.code))
			} else {
				require.False(t, IsKnownErrorCode(tt.code))
			}
		})
	}
}

func TestInvalidParameterDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{
			"__type": "WAFInvalidParameterException",
			"message": "bad rate",
			"field": "RATE_LIMIT",
			"parameter": "50",
			"reason": "INVALID_OPTION"
		}`)
	})

	_, err := client.UpdateRateBasedRule(context.Background(), &UpdateRateBasedRuleInput{
		RuleId:      aws.String("rule-1"),
		ChangeToken: aws.String("tok"),
		RateLimit:   aws.Int64(50),
	})
	require.ErrorIs(t, err, ErrInvalidParameter)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, "RATE_LIMIT", apiErr.Field)
	require.Equal(t, "50", apiErr.Parameter)
	require.Equal(t, "INVALID_OPTION", apiErr.Reason)
	require.Contains(t, apiErr.Error(), "field=RATE_LIMIT")
}

func TestEntityMigrationDetails(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, `{
			"__type": "WAFEntityMigrationException",
			"message": "cannot migrate",
			"MigrationErrorType": "S3_BUCKET_NOT_FOUND",
			"MigrationErrorReason": "bucket missing"
		}`)
	})

	_, err := client.CreateWebACLMigrationStack(context.Background(), &CreateWebACLMigrationStackInput{
		WebACLId:     aws.String("acl-1"),
		S3BucketName: aws.String("aws-waf-migration-missing"),
	})
	require.ErrorIs(t, err, ErrEntityMigration)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, MigrationErrorTypeS3BucketNotFound, apiErr.MigrationErrorType)
	require.Equal(t, "bucket missing", apiErr.MigrationErrorReason)
}

func TestRetriesServerErrors(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			writeJSON(w, http.StatusServiceUnavailable, `{"__type":"ServiceUnavailable","message":"busy"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"ChangeToken":"tok-2"}`)
	})

	out, err := client.GetChangeToken(context.Background(), &GetChangeTokenInput{})
	require.NoError(t, err)
	require.Equal(t, "tok-2", aws.ToString(out.ChangeToken))
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestRetriesThrottling(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			writeJSON(w, http.StatusBadRequest, `{"__type":"ThrottlingException","message":"slow down"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"ChangeToken":"tok-3"}`)
	})

	_, err := client.GetChangeToken(context.Background(), nil)
	require.NoError(t, err)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestDoesNotRetryClientErrors(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusBadRequest, `{"__type":"WAFNonexistentItemException","message":"gone"}`)
	})

	_, err := client.GetRule(context.Background(), &GetRuleInput{RuleId: aws.String("rule-x")})
	require.ErrorIs(t, err, ErrNonexistentItem)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestRetryStopsAtMaxAttempts(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusInternalServerError, `{"__type":"WAFInternalErrorException","message":"boom"}`)
	}, func(o *Options) {
		o.MaxAttempts = 2
	})

	_, err := client.ListWebACLs(context.Background(), &ListWebACLsInput{})
	require.ErrorIs(t, err, ErrInternalError)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, smithy.FaultServer, apiErr.ErrorFault())
}

func TestChangeTokenActionsNotRetriedOnServerFault(t *testing.T) {
	for _, status := range []int{http.StatusInternalServerError, http.StatusServiceUnavailable} {
		var calls int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			writeJSON(w, status, `{"__type":"WAFInternalErrorException","message":"boom"}`)
		})

		_, err := client.UpdateIPSet(context.Background(), &UpdateIPSetInput{
			IPSetId:     aws.String("ip-1"),
			ChangeToken: aws.String("tok"),
		})
		require.ErrorIs(t, err, ErrInternalError)
		require.Equal(t, int32(1), atomic.LoadInt32(&calls), "status %d", status)
	}
}

func TestChangeTokenActionsNotRetriedOnTransportError(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		hj, ok := w.(http.Hijacker)
		require.True(t, ok)
		conn, _, err := hj.Hijack()
		require.NoError(t, err)
		_ = conn.Close()
	})

	_, err := client.DeleteRule(context.Background(), &DeleteRuleInput{
		RuleId:      aws.String("rule-1"),
		ChangeToken: aws.String("tok"),
	})
	require.Error(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestChangeTokenActionsRetriedWhenThrottled(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			writeJSON(w, http.StatusBadRequest, `{"__type":"ThrottlingException","message":"slow down"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"ChangeToken":"tok"}`)
	})

	_, err := client.UpdateIPSet(context.Background(), &UpdateIPSetInput{
		IPSetId:     aws.String("ip-1"),
		ChangeToken: aws.String("tok"),
	})
	require.NoError(t, err)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestPerCallOptionsDoNotLeak(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusInternalServerError, `{"__type":"WAFInternalErrorException"}`)
	})

	_, err := client.GetChangeToken(context.Background(), nil, func(o *Options) { o.MaxAttempts = 1 })
	require.Error(t, err)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Equal(t, defaultMaxAttempts, client.Options().MaxAttempts)
}

func TestSignsRequestsWhenCredentialsSet(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		require.True(t, strings.HasPrefix(auth, "AWS4-HMAC-SHA256 "), auth)
		require.Contains(t, auth, "Credential=AKIDEXAMPLE/")
		require.Contains(t, auth, "/us-east-1/waf-regional/aws4_request")
		require.NotEmpty(t, r.Header.Get("X-Amz-Date"))
		writeJSON(w, http.StatusOK, `{"ChangeToken":"tok"}`)
	}, func(o *Options) {
		o.Credentials = credentials.NewStaticCredentialsProvider("AKIDEXAMPLE", "secret", "")
	})

	_, err := client.GetChangeToken(context.Background(), nil)
	require.NoError(t, err)
}

func TestUnsignedWithoutCredentials(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Empty(t, r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, err := client.GetChangeToken(context.Background(), nil)
	require.NoError(t, err)
}

type recorder struct {
	mu      sync.Mutex
	calls   map[string]int
	errs    map[string]int
	retries map[string]int
}

func newRecorder() *recorder {
	return &recorder{calls: map[string]int{}, errs: map[string]int{}, retries: map[string]int{}}
}

func (r *recorder) ObserveCall(action string, d time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[action]++
	if err != nil {
		r.errs[action]++
	}
}

func (r *recorder) ObserveRetry(action string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.retries[action]++
}

func TestRecorderObservesCalls(t *testing.T) {
	rec := newRecorder()
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			writeJSON(w, http.StatusBadGateway, ``)
			return
		}
		writeJSON(w, http.StatusOK, `{"ChangeToken":"tok"}`)
	}, func(o *Options) { o.Recorder = rec })

	_, err := client.GetChangeToken(context.Background(), nil)
	require.NoError(t, err)
	_, err = client.GetWebACL(context.Background(), &GetWebACLInput{WebACLId: aws.String("x")})
	require.NoError(t, err)

	require.Equal(t, 1, rec.calls[ActionGetChangeToken])
	require.Equal(t, 1, rec.retries[ActionGetChangeToken])
	require.Equal(t, 0, rec.errs[ActionGetChangeToken])
	require.Equal(t, 1, rec.calls[ActionGetWebACL])
}

func TestInvokeRaw(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "AWSWAF_Regional_20161128.ListIPSets", r.Header.Get("X-Amz-Target"))
		body, _ := io.ReadAll(r.Body)
		require.JSONEq(t, `{"Limit":5}`, string(body))
		writeJSON(w, http.StatusOK, `{"IPSets":[{"IPSetId":"ip-1","Name":"office"}]}`)
	})

	out, err := client.InvokeRaw(context.Background(), ActionListIPSets, json.RawMessage(`{"Limit":5}`))
	require.NoError(t, err)

	var decoded ListIPSetsOutput
	require.NoError(t, json.Unmarshal(out, &decoded))
	require.Len(t, decoded.IPSets, 1)
	require.Equal(t, "office", aws.ToString(decoded.IPSets[0].Name))

	_, err = client.InvokeRaw(context.Background(), "ListBuckets", nil)
	require.Error(t, err)
}

func TestCanceledContextStopsRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		cancel()
		writeJSON(w, http.StatusServiceUnavailable, `{}`)
	}, func(o *Options) { o.MaxAttempts = 5 })

	_, err := client.GetChangeToken(ctx, nil)
	require.Error(t, err)
}

func TestDefaultEndpoint(t *testing.T) {
	require.Equal(t, "https://waf-regional.eu-west-1.amazonaws.com/", Options{Region: "eu-west-1"}.endpoint())
	require.Equal(t, "https://waf-regional.cn-north-1.amazonaws.com.cn/", Options{Region: "cn-north-1"}.endpoint())
	require.Equal(t, "http://localhost:4566", Options{Region: "us-east-1", BaseEndpoint: aws.String("http://localhost:4566")}.endpoint())
}

func TestNewFromConfig(t *testing.T) {
	cfg := aws.Config{
		Region:           "ap-southeast-2",
		BaseEndpoint:     aws.String("http://127.0.0.1:9000"),
		RetryMaxAttempts: 7,
	}
	client := NewFromConfig(cfg, func(o *Options) { o.StaleDataRetries = 9 })
	opts := client.Options()
	require.Equal(t, "ap-southeast-2", opts.Region)
	require.Equal(t, "http://127.0.0.1:9000", aws.ToString(opts.BaseEndpoint))
	require.Equal(t, 7, opts.MaxAttempts)
	require.Equal(t, 9, opts.StaleDataRetries)
	require.NotNil(t, opts.HTTPClient)
}

func TestActionTables(t *testing.T) {
	require.Len(t, Actions, 81)
	require.True(t, IsAction(ActionUpdateWebACL))
	require.False(t, IsAction("DescribeWebACL"))
	require.True(t, RequiresChangeToken(ActionUpdateIPSet))
	require.True(t, RequiresChangeToken(ActionCreateRateBasedRule))
	require.False(t, RequiresChangeToken(ActionGetChangeTokenStatus))
	require.False(t, RequiresChangeToken(ActionAssociateWebACL))
}
