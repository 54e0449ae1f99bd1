package wafregional

import (
	"context"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestPaginatorFollowsNextMarker(t *testing.T) {
	pages := map[string]string{
		"":   `{"WebACLs":[{"WebACLId":"a"},{"WebACLId":"b"}],"NextMarker":"m1"}`,
		"m1": `{"WebACLs":[{"WebACLId":"c"}],"NextMarker":"m2"}`,
		"m2": `{"WebACLs":[{"WebACLId":"d"}]}`,
	}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var in ListWebACLsInput
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &in))
		require.Equal(t, int32(2), aws.ToInt32(in.Limit))
		writeJSON(w, http.StatusOK, pages[aws.ToString(in.NextMarker)])
	})

	all, err := CollectAll(context.Background(), NewListWebACLsPaginator(client, 2))
	require.NoError(t, err)
	ids := make([]string, 0, len(all))
	for _, s := range all {
		ids = append(ids, aws.ToString(s.WebACLId))
	}
	require.Equal(t, []string{"a", "b", "c", "d"}, ids)
}

func TestPaginatorStopsOnRepeatedMarker(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		writeJSON(w, http.StatusOK, `{"Rules":[{"RuleId":"r"}],"NextMarker":"same"}`)
	})

	p := NewListRulesPaginator(client, 0)
	all, err := CollectAll(context.Background(), p)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, int32(2), atomic.LoadInt32(&calls))
	require.False(t, p.HasMorePages())

	_, err = p.NextPage(context.Background())
	require.Error(t, err)
}
