package mock

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	json "github.com/goccy/go-json"

	"github.com/gurre/waf-regional/wafregional"
)

const targetPrefix = "AWSWAF_Regional_20161128."

// getAction describes a Get<Kind> call: which request member carries the id
// and which response member wraps the object.
type getAction struct {
	kind     string
	idField  string
	outField string
}

var getActions = map[string]getAction{
	wafregional.ActionGetWebACL:               {"WebACL", "WebACLId", "WebACL"},
	wafregional.ActionGetRule:                 {"Rule", "RuleId", "Rule"},
	wafregional.ActionGetRateBasedRule:        {"RateBasedRule", "RuleId", "Rule"},
	wafregional.ActionGetRuleGroup:            {"RuleGroup", "RuleGroupId", "RuleGroup"},
	wafregional.ActionGetIPSet:                {"IPSet", "IPSetId", "IPSet"},
	wafregional.ActionGetByteMatchSet:         {"ByteMatchSet", "ByteMatchSetId", "ByteMatchSet"},
	wafregional.ActionGetGeoMatchSet:          {"GeoMatchSet", "GeoMatchSetId", "GeoMatchSet"},
	wafregional.ActionGetRegexMatchSet:        {"RegexMatchSet", "RegexMatchSetId", "RegexMatchSet"},
	wafregional.ActionGetRegexPatternSet:      {"RegexPatternSet", "RegexPatternSetId", "RegexPatternSet"},
	wafregional.ActionGetSizeConstraintSet:    {"SizeConstraintSet", "SizeConstraintSetId", "SizeConstraintSet"},
	wafregional.ActionGetSqlInjectionMatchSet: {"SqlInjectionMatchSet", "SqlInjectionMatchSetId", "SqlInjectionMatchSet"},
	wafregional.ActionGetXssMatchSet:          {"XssMatchSet", "XssMatchSetId", "XssMatchSet"},
}

// Request is one call received by WAFServer.
type Request struct {
	Action string
	Body   json.RawMessage
}

type injected struct {
	status  int
	code    string
	message string
}

// WAFServer is a fake WAF Regional endpoint. It keeps objects as JSON
// documents, enforces single-use change tokens and implements IP set and
// WebACL updates. Other mutating actions consume their token and succeed
// without changing state.
type WAFServer struct {
	*httptest.Server

	mu         sync.Mutex
	objects    map[string]map[string]json.RawMessage
	tokens     map[string]wafregional.ChangeTokenStatus
	nextToken  int
	nextID     int
	requests   []Request
	failures   map[string][]injected
	ruleGroups map[string][]wafregional.ActivatedRule
}

func NewWAFServer() *WAFServer {
	s := &WAFServer{
		objects:    make(map[string]map[string]json.RawMessage),
		tokens:     make(map[string]wafregional.ChangeTokenStatus),
		failures:   make(map[string][]injected),
		ruleGroups: make(map[string][]wafregional.ActivatedRule),
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	return s
}

// Put seeds an object of the given kind ("WebACL", "IPSet", ...).
func (s *WAFServer) Put(kind, id string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.objects[kind] == nil {
		s.objects[kind] = make(map[string]json.RawMessage)
	}
	s.objects[kind][id] = data
}

// PutRuleGroupRules seeds the activated rules returned for a rule group.
func (s *WAFServer) PutRuleGroupRules(ruleGroupID string, rules []wafregional.ActivatedRule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ruleGroups[ruleGroupID] = rules
}

// Get decodes the stored object into v and reports whether it exists.
func (s *WAFServer) Get(kind, id string, v any) bool {
	s.mu.Lock()
	data, ok := s.objects[kind][id]
	s.mu.Unlock()
	if !ok {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

// FailNext makes the next call to action fail with the given error code.
func (s *WAFServer) FailNext(action string, status int, code, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[action] = append(s.failures[action], injected{status, code, message})
}

// Requests returns every call received so far.
func (s *WAFServer) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Count returns how many calls to action were received.
func (s *WAFServer) Count(action string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Action == action {
			n++
		}
	}
	return n
}

type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string { return e.code + ": " + e.message }

func errorf(status int, code, format string, args ...any) *apiError {
	return &apiError{status: status, code: code, message: fmt.Sprintf(format, args...)}
}

func (s *WAFServer) handle(w http.ResponseWriter, r *http.Request) {
	action, ok := strings.CutPrefix(r.Header.Get("X-Amz-Target"), targetPrefix)
	if r.Method != http.MethodPost || !ok {
		writeError(w, errorf(http.StatusBadRequest, "UnknownOperationException", "bad target %q", r.Header.Get("X-Amz-Target")))
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, errorf(http.StatusBadRequest, "SerializationException", "%v", err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, Request{Action: action, Body: append(json.RawMessage(nil), body...)})

	if queue := s.failures[action]; len(queue) > 0 {
		s.failures[action] = queue[1:]
		writeError(w, &apiError{status: queue[0].status, code: queue[0].code, message: queue[0].message})
		return
	}

	var req map[string]json.RawMessage
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, errorf(http.StatusBadRequest, "SerializationException", "%v", err))
		return
	}

	out, apiErr := s.dispatch(action, body, req)
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}
	w.Header().Set("Content-Type", "application/x-amz-json-1.1")
	w.Header().Set("X-Amzn-RequestId", fmt.Sprintf("req-%d", len(s.requests)))
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(out)
}

func writeError(w http.ResponseWriter, e *apiError) {
	w.Header().Set("Content-Type", "application/x-amz-json-1.1")
	w.Header().Set("X-Amzn-ErrorType", e.code)
	w.WriteHeader(e.status)
	_ = json.NewEncoder(w).Encode(map[string]string{"__type": e.code, "message": e.message})
}

func str(req map[string]json.RawMessage, field string) string {
	var v string
	if raw, ok := req[field]; ok {
		_ = json.Unmarshal(raw, &v)
	}
	return v
}

func (s *WAFServer) dispatch(action string, body []byte, req map[string]json.RawMessage) (any, *apiError) {
	if g, ok := getActions[action]; ok {
		id := str(req, g.idField)
		data, ok := s.objects[g.kind][id]
		if !ok {
			return nil, errorf(http.StatusBadRequest, wafregional.CodeNonexistentItem, "%s %s not found", g.kind, id)
		}
		return map[string]json.RawMessage{g.outField: data}, nil
	}

	switch action {
	case wafregional.ActionGetChangeToken:
		s.nextToken++
		token := fmt.Sprintf("token-%d", s.nextToken)
		s.tokens[token] = wafregional.ChangeTokenStatusProvisioned
		return map[string]string{"ChangeToken": token}, nil

	case wafregional.ActionGetChangeTokenStatus:
		token := str(req, "ChangeToken")
		status, ok := s.tokens[token]
		if !ok {
			return nil, errorf(http.StatusBadRequest, wafregional.CodeNonexistentItem, "unknown change token %s", token)
		}
		if status == wafregional.ChangeTokenStatusPending {
			s.tokens[token] = wafregional.ChangeTokenStatusInsync
		}
		return map[string]any{"ChangeTokenStatus": status}, nil

	case wafregional.ActionListWebACLs:
		return s.list(req, "WebACL", "WebACLs", "WebACLId")
	case wafregional.ActionListIPSets:
		return s.list(req, "IPSet", "IPSets", "IPSetId")
	case wafregional.ActionListRules:
		return s.list(req, "Rule", "Rules", "RuleId")

	case wafregional.ActionListActivatedRulesInRuleGroup:
		id := str(req, "RuleGroupId")
		if _, ok := s.objects["RuleGroup"][id]; !ok {
			return nil, errorf(http.StatusBadRequest, wafregional.CodeNonexistentItem, "rule group %s not found", id)
		}
		return map[string]any{"ActivatedRules": s.ruleGroups[id]}, nil
	}

	if !wafregional.RequiresChangeToken(action) {
		if wafregional.IsAction(action) {
			return map[string]any{}, nil
		}
		return nil, errorf(http.StatusBadRequest, "UnknownOperationException", "unknown operation %s", action)
	}

	token := str(req, "ChangeToken")
	if err := s.consumeToken(token); err != nil {
		return nil, err
	}

	switch action {
	case wafregional.ActionCreateIPSet:
		name := str(req, "Name")
		if name == "" {
			return nil, errorf(http.StatusBadRequest, wafregional.CodeInvalidParameter, "Name is required")
		}
		s.nextID++
		set := wafregional.IPSet{IPSetId: aws.String(fmt.Sprintf("ipset-%d", s.nextID)), Name: aws.String(name)}
		s.store("IPSet", *set.IPSetId, set)
		return wafregional.CreateIPSetOutput{IPSet: &set, ChangeToken: aws.String(token)}, nil

	case wafregional.ActionUpdateIPSet:
		var in wafregional.UpdateIPSetInput
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, errorf(http.StatusBadRequest, "SerializationException", "%v", err)
		}
		if err := s.updateIPSet(&in); err != nil {
			return nil, err
		}

	case wafregional.ActionDeleteIPSet:
		id := str(req, "IPSetId")
		var set wafregional.IPSet
		if !s.load("IPSet", id, &set) {
			return nil, errorf(http.StatusBadRequest, wafregional.CodeNonexistentItem, "IPSet %s not found", id)
		}
		if len(set.IPSetDescriptors) > 0 {
			return nil, errorf(http.StatusBadRequest, wafregional.CodeNonEmptyEntity, "IPSet %s still has descriptors", id)
		}
		delete(s.objects["IPSet"], id)

	case wafregional.ActionUpdateWebACL:
		var in wafregional.UpdateWebACLInput
		if err := json.Unmarshal(body, &in); err != nil {
			return nil, errorf(http.StatusBadRequest, "SerializationException", "%v", err)
		}
		if err := s.updateWebACL(&in); err != nil {
			return nil, err
		}
	}

	return map[string]string{"ChangeToken": token}, nil
}

func (s *WAFServer) consumeToken(token string) *apiError {
	status, ok := s.tokens[token]
	if !ok || status != wafregional.ChangeTokenStatusProvisioned {
		return errorf(http.StatusBadRequest, wafregional.CodeStaleData, "change token %q has already been used", token)
	}
	s.tokens[token] = wafregional.ChangeTokenStatusPending
	return nil
}

func (s *WAFServer) store(kind, id string, v any) {
	data, _ := json.Marshal(v)
	if s.objects[kind] == nil {
		s.objects[kind] = make(map[string]json.RawMessage)
	}
	s.objects[kind][id] = data
}

func (s *WAFServer) load(kind, id string, v any) bool {
	data, ok := s.objects[kind][id]
	if !ok {
		return false
	}
	return json.Unmarshal(data, v) == nil
}

func (s *WAFServer) updateIPSet(in *wafregional.UpdateIPSetInput) *apiError {
	id := aws.ToString(in.IPSetId)
	var set wafregional.IPSet
	if !s.load("IPSet", id, &set) {
		return errorf(http.StatusBadRequest, wafregional.CodeNonexistentItem, "IPSet %s not found", id)
	}
	if len(in.Updates) == 0 {
		return errorf(http.StatusBadRequest, wafregional.CodeInvalidParameter, "Updates must not be empty")
	}
	for _, u := range in.Updates {
		if u.IPSetDescriptor == nil {
			return errorf(http.StatusBadRequest, wafregional.CodeInvalidParameter, "IPSetDescriptor is required")
		}
		idx := -1
		for i, d := range set.IPSetDescriptors {
			if d.Type == u.IPSetDescriptor.Type && aws.ToString(d.Value) == aws.ToString(u.IPSetDescriptor.Value) {
				idx = i
				break
			}
		}
		switch u.Action {
		case wafregional.ChangeActionInsert:
			if idx >= 0 {
				return errorf(http.StatusBadRequest, wafregional.CodeInvalidOperation, "%s already in IPSet %s", aws.ToString(u.IPSetDescriptor.Value), id)
			}
			set.IPSetDescriptors = append(set.IPSetDescriptors, *u.IPSetDescriptor)
		case wafregional.ChangeActionDelete:
			if idx < 0 {
				return errorf(http.StatusBadRequest, wafregional.CodeNonexistentItem, "%s not in IPSet %s", aws.ToString(u.IPSetDescriptor.Value), id)
			}
			set.IPSetDescriptors = append(set.IPSetDescriptors[:idx], set.IPSetDescriptors[idx+1:]...)
		default:
			return errorf(http.StatusBadRequest, wafregional.CodeInvalidParameter, "unknown action %q", u.Action)
		}
	}
	s.store("IPSet", id, set)
	return nil
}

func (s *WAFServer) updateWebACL(in *wafregional.UpdateWebACLInput) *apiError {
	id := aws.ToString(in.WebACLId)
	var acl wafregional.WebACL
	if !s.load("WebACL", id, &acl) {
		return errorf(http.StatusBadRequest, wafregional.CodeNonexistentItem, "WebACL %s not found", id)
	}
	if in.DefaultAction != nil {
		acl.DefaultAction = in.DefaultAction
	}
	for _, u := range in.Updates {
		if u.ActivatedRule == nil {
			return errorf(http.StatusBadRequest, wafregional.CodeInvalidParameter, "ActivatedRule is required")
		}
		ruleID := aws.ToString(u.ActivatedRule.RuleId)
		idx := -1
		for i, r := range acl.Rules {
			if aws.ToString(r.RuleId) == ruleID {
				idx = i
				break
			}
		}
		switch u.Action {
		case wafregional.ChangeActionInsert:
			if idx >= 0 {
				return errorf(http.StatusBadRequest, wafregional.CodeInvalidOperation, "rule %s already in WebACL %s", ruleID, id)
			}
			acl.Rules = append(acl.Rules, *u.ActivatedRule)
		case wafregional.ChangeActionDelete:
			if idx < 0 {
				return errorf(http.StatusBadRequest, wafregional.CodeNonexistentItem, "rule %s not in WebACL %s", ruleID, id)
			}
			acl.Rules = append(acl.Rules[:idx], acl.Rules[idx+1:]...)
		default:
			return errorf(http.StatusBadRequest, wafregional.CodeInvalidParameter, "unknown action %q", u.Action)
		}
	}
	s.store("WebACL", id, acl)
	return nil
}

// list pages through objects of kind in id order. NextMarker is the index of
// the next item.
func (s *WAFServer) list(req map[string]json.RawMessage, kind, outField, idField string) (any, *apiError) {
	ids := make([]string, 0, len(s.objects[kind]))
	for id := range s.objects[kind] {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	start := 0
	if marker := str(req, "NextMarker"); marker != "" {
		n, err := strconv.Atoi(marker)
		if err != nil || n < 0 || n > len(ids) {
			return nil, errorf(http.StatusBadRequest, wafregional.CodeInvalidParameter, "bad NextMarker %q", marker)
		}
		start = n
	}
	limit := len(ids)
	if raw, ok := req["Limit"]; ok {
		var n int
		if err := json.Unmarshal(raw, &n); err == nil && n > 0 {
			limit = n
		}
	}
	end := min(start+limit, len(ids))

	summaries := make([]map[string]any, 0, end-start)
	for _, id := range ids[start:end] {
		var obj map[string]any
		_ = json.Unmarshal(s.objects[kind][id], &obj)
		summaries = append(summaries, map[string]any{idField: id, "Name": obj["Name"]})
	}
	out := map[string]any{outField: summaries}
	if end < len(ids) {
		out["NextMarker"] = strconv.Itoa(end)
	}
	return out, nil
}
