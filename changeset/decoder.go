// Package changeset applies JSON-lines change files to WAF Regional. Each
// line names a mutating action and its request:
//
//	{"Action":"UpdateIPSet","Request":{"IPSetId":"...","Updates":[...]}}
//
// The ChangeToken member is filled in at apply time, so files can be written
// once and replayed. Progress is checkpointed per line so an interrupted run
// resumes after the last applied change.
package changeset

import (
	"bytes"

	"github.com/Laisky/errors/v2"
	json "github.com/goccy/go-json"

	"github.com/gurre/waf-regional/wafregional"
)

// ErrCorrupt is returned when a line is not a valid change.
var ErrCorrupt = errors.New("corrupt line")

// errBlank marks lines with nothing to apply: empty lines and # comments.
var errBlank = errors.New("blank line")

// Change is one decoded line.
type Change struct {
	Action  string          `json:"Action"`
	Request json.RawMessage `json:"Request"`
}

// Decoder turns one line into a Change.
type Decoder interface {
	Decode(line []byte) (Change, error)
}

// JSONDecoder decodes the JSON-lines change format.
type JSONDecoder struct{}

func NewJSONDecoder() *JSONDecoder {
	return &JSONDecoder{}
}

// Decode rejects unknown actions, actions that do not take a change token
// and requests that are not JSON objects.
func (d *JSONDecoder) Decode(line []byte) (Change, error) {
	line = bytes.TrimSpace(line)
	if len(line) == 0 || line[0] == '#' {
		return Change{}, errBlank
	}

	var c Change
	if err := json.Unmarshal(line, &c); err != nil {
		return Change{}, errors.Wrapf(ErrCorrupt, "%v", err)
	}
	if c.Action == "" {
		return Change{}, errors.Wrap(ErrCorrupt, "missing Action")
	}
	if !wafregional.IsAction(c.Action) {
		return Change{}, errors.Wrapf(ErrCorrupt, "unknown action %q", c.Action)
	}
	if !wafregional.RequiresChangeToken(c.Action) {
		return Change{}, errors.Wrapf(ErrCorrupt, "%s does not change state", c.Action)
	}

	req := bytes.TrimSpace(c.Request)
	if len(req) == 0 || bytes.Equal(req, []byte("null")) {
		c.Request = json.RawMessage("{}")
		return c, nil
	}
	if req[0] != '{' {
		return Change{}, errors.Wrapf(ErrCorrupt, "%s: Request must be an object", c.Action)
	}
	c.Request = req
	return c, nil
}

// SetChangeToken returns request with its ChangeToken member set to token.
func SetChangeToken(request json.RawMessage, token string) (json.RawMessage, error) {
	fields := map[string]json.RawMessage{}
	if len(request) > 0 {
		if err := json.Unmarshal(request, &fields); err != nil {
			return nil, errors.Wrap(err, "decode request")
		}
	}
	encoded, err := json.Marshal(token)
	if err != nil {
		return nil, err
	}
	fields["ChangeToken"] = encoded
	out, err := json.Marshal(fields)
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}
	return out, nil
}
