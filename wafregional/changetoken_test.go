package wafregional

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestWithChangeTokenRetriesStaleData(t *testing.T) {
	var tokens, updates int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Header.Get("X-Amz-Target") {
		case targetPrefix + "." + ActionGetChangeToken:
			n := atomic.AddInt32(&tokens, 1)
			writeJSON(w, http.StatusOK, fmt.Sprintf(`{"ChangeToken":"tok-%d"}`, n))
		case targetPrefix + "." + ActionUpdateIPSet:
			var in UpdateIPSetInput
			body, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(body, &in))
			if atomic.AddInt32(&updates, 1) == 1 {
				writeJSON(w, http.StatusBadRequest, `{"__type":"WAFStaleDataException","message":"stale"}`)
				return
			}
			writeJSON(w, http.StatusOK, fmt.Sprintf(`{"ChangeToken":%q}`, aws.ToString(in.ChangeToken)))
		default:
			t.Errorf("unexpected target %s", r.Header.Get("X-Amz-Target"))
		}
	})

	var used []string
	token, err := client.WithChangeToken(context.Background(), func(token string) error {
		used = append(used, token)
		_, err := client.UpdateIPSet(context.Background(), &UpdateIPSetInput{
			IPSetId:     aws.String("ip-1"),
			ChangeToken: aws.String(token),
		})
		return err
	})
	require.NoError(t, err)
	require.Equal(t, "tok-2", token)
	require.Equal(t, []string{"tok-1", "tok-2"}, used)
}

func TestWithChangeTokenGivesUpAfterRetries(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"ChangeToken":"tok"}`)
	}, func(o *Options) { o.StaleDataRetries = 1 })

	attempts := 0
	_, err := client.WithChangeToken(context.Background(), func(string) error {
		attempts++
		return &APIError{Code: CodeStaleData, StatusCode: http.StatusBadRequest}
	})
	require.ErrorIs(t, err, ErrStaleData)
	require.Equal(t, 2, attempts)
}

func TestWithChangeTokenWithoutStaleRetries(t *testing.T) {
	var tokens int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokens, 1)
		writeJSON(w, http.StatusOK, `{"ChangeToken":"tok"}`)
	}, func(o *Options) { o.StaleDataRetries = NoStaleDataRetries })

	attempts := 0
	_, err := client.WithChangeToken(context.Background(), func(string) error {
		attempts++
		return &APIError{Code: CodeStaleData, StatusCode: http.StatusBadRequest}
	})
	require.ErrorIs(t, err, ErrStaleData)
	require.Equal(t, 1, attempts)
	require.Equal(t, int32(1), atomic.LoadInt32(&tokens))
}

func TestWithChangeTokenZeroUsesDefault(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"ChangeToken":"tok"}`)
	}, func(o *Options) { o.StaleDataRetries = 0 })
	require.Equal(t, defaultStaleDataRetries, client.Options().StaleDataRetries)
}

func TestWithChangeTokenReturnsOtherErrors(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"ChangeToken":"tok"}`)
	})

	boom := errors.New("boom")
	attempts := 0
	_, err := client.WithChangeToken(context.Background(), func(string) error {
		attempts++
		return boom
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 1, attempts)
}

func TestWithChangeTokenRejectsEmptyToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{}`)
	})

	_, err := client.WithChangeToken(context.Background(), func(string) error {
		t.Fatal("fn must not run without a token")
		return nil
	})
	require.Error(t, err)
}

func TestWaitForChangeToken(t *testing.T) {
	var polls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, targetPrefix+"."+ActionGetChangeTokenStatus, r.Header.Get("X-Amz-Target"))
		if atomic.AddInt32(&polls, 1) < 3 {
			writeJSON(w, http.StatusOK, `{"ChangeTokenStatus":"PENDING"}`)
			return
		}
		writeJSON(w, http.StatusOK, `{"ChangeTokenStatus":"INSYNC"}`)
	})

	err := client.WaitForChangeToken(context.Background(), "tok", 10*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, int32(3), atomic.LoadInt32(&polls))
}

func TestWaitForChangeTokenHonorsContext(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, `{"ChangeTokenStatus":"PENDING"}`)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := client.WaitForChangeToken(ctx, "tok", 10*time.Millisecond)
	require.Error(t, err)
}
