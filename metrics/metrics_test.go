package metrics

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Laisky/errors/v2"
	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/gurre/waf-regional/wafregional"
)

func TestMetricsHappyPath(t *testing.T) {
	m := NewMetrics()

	m.ObserveCall(wafregional.ActionGetWebACL, 20*time.Millisecond, nil)
	m.ObserveCall(wafregional.ActionGetWebACL, 30*time.Millisecond, nil)
	m.ObserveRetry(wafregional.ActionUpdateIPSet)
	m.ObserveCall(wafregional.ActionUpdateIPSet, time.Second, &wafregional.APIError{
		Code:       wafregional.CodeStaleData,
		StatusCode: http.StatusBadRequest,
	})
	m.ObserveCall(wafregional.ActionListRules, time.Millisecond, errors.New("connection reset"))
	m.RecordApplied()
	m.RecordSkipped(3)
	m.RecordCorrupt()

	require.Equal(t, 2.0, testutil.ToFloat64(m.calls.WithLabelValues(wafregional.ActionGetWebACL)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues(wafregional.ActionUpdateIPSet, wafregional.CodeStaleData)))
	require.Equal(t, 1.0, testutil.ToFloat64(m.errors.WithLabelValues(wafregional.ActionListRules, "transport")))

	report := m.GenerateReport()
	require.Equal(t, int64(4), report.TotalCalls)
	require.Equal(t, int64(2), report.Calls[wafregional.ActionGetWebACL])
	require.Equal(t, int64(1), report.Retries)
	require.Equal(t, int64(1), report.Errors[wafregional.CodeStaleData])
	require.Equal(t, int64(1), report.Errors["transport"])
	require.Equal(t, int64(1), report.ChangesApplied)
	require.Equal(t, int64(3), report.ChangesSkipped)
	require.Equal(t, int64(1), report.CorruptCount)

	str := report.String()
	require.Contains(t, str, "Calls: 4 (retries: 1)")
	require.True(t, strings.Contains(str, wafregional.CodeStaleData+": 1"))
}

func TestReportJSONUsesReadableDuration(t *testing.T) {
	r := Report{Duration: 1500 * time.Millisecond, TotalCalls: 3}
	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "1.5s", decoded["duration"])
	require.Equal(t, float64(3), decoded["totalCalls"])
}

func TestRegistryExposesCollectors(t *testing.T) {
	m := NewMetrics()
	m.ObserveCall(wafregional.ActionGetChangeToken, time.Millisecond, nil)

	n, err := testutil.GatherAndCount(m.Registry(), "wafregional_calls_total")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
