package changeset

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

func TestJSONDecoder(t *testing.T) {
	d := NewJSONDecoder()

	tests := []struct {
		name    string
		line    string
		action  string
		request string
		err     error
	}{
		{
			name:    "update ip set",
			line:    `{"Action":"UpdateIPSet","Request":{"IPSetId":"ip-1","Updates":[]}}`,
			action:  "UpdateIPSet",
			request: `{"IPSetId":"ip-1","Updates":[]}`,
		},
		{
			name:    "missing request",
			line:    `{"Action":"CreateIPSet"}`,
			action:  "CreateIPSet",
			request: `{}`,
		},
		{name: "blank", line: "   ", err: errBlank},
		{name: "comment", line: "# add office range", err: errBlank},
		{name: "not json", line: `{"Action":`, err: ErrCorrupt},
		{name: "no action", line: `{"Request":{}}`, err: ErrCorrupt},
		{name: "unknown action", line: `{"Action":"PutBucketPolicy","Request":{}}`, err: ErrCorrupt},
		{name: "read only action", line: `{"Action":"GetIPSet","Request":{"IPSetId":"ip-1"}}`, err: ErrCorrupt},
		{name: "request not object", line: `{"Action":"UpdateIPSet","Request":[1,2]}`, err: ErrCorrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := d.Decode([]byte(tt.line))
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.action, c.Action)
			require.JSONEq(t, tt.request, string(c.Request))
		})
	}
}

func TestSetChangeTokenOverridesExisting(t *testing.T) {
	out, err := SetChangeToken(json.RawMessage(`{"IPSetId":"ip-1","ChangeToken":"old"}`), "new")
	require.NoError(t, err)
	require.JSONEq(t, `{"IPSetId":"ip-1","ChangeToken":"new"}`, string(out))

	out, err = SetChangeToken(nil, "tok")
	require.NoError(t, err)
	require.JSONEq(t, `{"ChangeToken":"tok"}`, string(out))
}

func TestCheckpointKey(t *testing.T) {
	require.Equal(t, "changesets/nightly.json", CheckpointKey("nightly", "file:///tmp/a.jsonl"))

	a := CheckpointKey("", "file:///tmp/a.jsonl")
	require.Equal(t, a, CheckpointKey("", "file:///tmp/a.jsonl"))
	require.NotEqual(t, a, CheckpointKey("", "file:///tmp/b.jsonl"))
	require.Len(t, a, len("changesets/")+16+len(".json"))
}

func BenchmarkJSONDecoder(b *testing.B) {
	d := NewJSONDecoder()
	line := []byte(`{"Action":"UpdateIPSet","Request":{"IPSetId":"ip-1","Updates":[{"Action":"INSERT","IPSetDescriptor":{"Type":"IPV4","Value":"192.0.2.1/32"}}]}}`)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := d.Decode(line); err != nil {
			b.Fatal(err)
		}
	}
}
