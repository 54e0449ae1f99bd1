// Package snapshot exports a WebACL together with every rule, rule group and
// condition set it references, so the full configuration can be saved to a
// store and inspected or diffed later.
package snapshot

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/aws/aws-sdk-go-v2/aws"
	"golang.org/x/sync/errgroup"

	"github.com/gurre/waf-regional/store"
	"github.com/gurre/waf-regional/wafregional"
)

// Logger is the subset of *zap.Logger used here.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Info(msg string, fields ...zap.Field)
}

// RuleGroup pairs a rule group with the rules activated inside it.
type RuleGroup struct {
	RuleGroup      wafregional.RuleGroup       `json:"RuleGroup"`
	ActivatedRules []wafregional.ActivatedRule `json:"ActivatedRules,omitempty"`
}

// Snapshot is a point-in-time copy of a WebACL and its dependencies, keyed
// by id.
type Snapshot struct {
	ExportedAt            time.Time                                   `json:"ExportedAt"`
	WebACL                wafregional.WebACL                          `json:"WebACL"`
	Rules                 map[string]wafregional.Rule                 `json:"Rules"`
	RateBasedRules        map[string]wafregional.RateBasedRule        `json:"RateBasedRules"`
	RuleGroups            map[string]RuleGroup                        `json:"RuleGroups"`
	ByteMatchSets         map[string]wafregional.ByteMatchSet         `json:"ByteMatchSets"`
	GeoMatchSets          map[string]wafregional.GeoMatchSet          `json:"GeoMatchSets"`
	IPSets                map[string]wafregional.IPSet                `json:"IPSets"`
	RegexMatchSets        map[string]wafregional.RegexMatchSet        `json:"RegexMatchSets"`
	RegexPatternSets      map[string]wafregional.RegexPatternSet      `json:"RegexPatternSets"`
	SizeConstraintSets    map[string]wafregional.SizeConstraintSet    `json:"SizeConstraintSets"`
	SqlInjectionMatchSets map[string]wafregional.SqlInjectionMatchSet `json:"SqlInjectionMatchSets"`
	XssMatchSets          map[string]wafregional.XssMatchSet          `json:"XssMatchSets"`
}

func newSnapshot(acl wafregional.WebACL, at time.Time) *Snapshot {
	return &Snapshot{
		ExportedAt:            at,
		WebACL:                acl,
		Rules:                 make(map[string]wafregional.Rule),
		RateBasedRules:        make(map[string]wafregional.RateBasedRule),
		RuleGroups:            make(map[string]RuleGroup),
		ByteMatchSets:         make(map[string]wafregional.ByteMatchSet),
		GeoMatchSets:          make(map[string]wafregional.GeoMatchSet),
		IPSets:                make(map[string]wafregional.IPSet),
		RegexMatchSets:        make(map[string]wafregional.RegexMatchSet),
		RegexPatternSets:      make(map[string]wafregional.RegexPatternSet),
		SizeConstraintSets:    make(map[string]wafregional.SizeConstraintSet),
		SqlInjectionMatchSets: make(map[string]wafregional.SqlInjectionMatchSet),
		XssMatchSets:          make(map[string]wafregional.XssMatchSet),
	}
}

// Conditions counts the condition sets in s.
func (s *Snapshot) Conditions() int {
	return len(s.ByteMatchSets) + len(s.GeoMatchSets) + len(s.IPSets) +
		len(s.RegexMatchSets) + len(s.RegexPatternSets) + len(s.SizeConstraintSets) +
		len(s.SqlInjectionMatchSets) + len(s.XssMatchSets)
}

func (s *Snapshot) String() string {
	return fmt.Sprintf("WebACL %s (%s): %d rules, %d rate-based rules, %d rule groups, %d condition sets",
		aws.ToString(s.WebACL.WebACLId), aws.ToString(s.WebACL.Name),
		len(s.Rules), len(s.RateBasedRules), len(s.RuleGroups), s.Conditions())
}

// Key is the store key a WebACL snapshot is saved under.
func Key(webACLID string) string {
	return "webacl/" + webACLID + ".json"
}

// Save writes s under Key.
func Save(ctx context.Context, st store.Store, s *Snapshot) error {
	id := aws.ToString(s.WebACL.WebACLId)
	if id == "" {
		return errors.New("snapshot has no WebACL id")
	}
	if err := store.PutJSON(ctx, st, Key(id), s); err != nil {
		return errors.Wrapf(err, "save snapshot %s", id)
	}
	return nil
}

// Load reads the snapshot saved for webACLID. It returns store.ErrNotFound
// when there is none.
func Load(ctx context.Context, st store.Store, webACLID string) (*Snapshot, error) {
	var s Snapshot
	if err := store.GetJSON(ctx, st, Key(webACLID), &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// Exporter fetches WebACLs with bounded concurrency.
type Exporter struct {
	client  *wafregional.Client
	workers int
	logger  Logger
	now     func() time.Time
}

func NewExporter(client *wafregional.Client, workers int, logger Logger) *Exporter {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exporter{client: client, workers: workers, logger: logger, now: time.Now}
}

type conditionRef struct {
	kind wafregional.PredicateType
	id   string
}

// Export reads the WebACL and everything it references. Rules are fetched
// first, then the condition sets their predicates name, then the regex
// pattern sets named by regex match sets.
func (e *Exporter) Export(ctx context.Context, webACLID string) (*Snapshot, error) {
	out, err := e.client.GetWebACL(ctx, &wafregional.GetWebACLInput{WebACLId: aws.String(webACLID)})
	if err != nil {
		return nil, errors.Wrapf(err, "get WebACL %s", webACLID)
	}
	if out.WebACL == nil {
		return nil, errors.Errorf("WebACL %s: empty response", webACLID)
	}
	snap := newSnapshot(*out.WebACL, e.now().UTC())
	e.logger.Info("exporting WebACL",
		zap.String("webACLId", webACLID),
		zap.Int("rules", len(snap.WebACL.Rules)))

	var mu sync.Mutex
	if err := e.fetchRules(ctx, snap, &mu); err != nil {
		return nil, err
	}

	refs := collectConditions(snap)
	if err := e.fetchConditions(ctx, snap, &mu, refs); err != nil {
		return nil, err
	}

	patternIDs := map[string]bool{}
	for _, set := range snap.RegexMatchSets {
		for _, t := range set.RegexMatchTuples {
			if id := aws.ToString(t.RegexPatternSetId); id != "" {
				patternIDs[id] = true
			}
		}
	}
	if err := e.fetchPatternSets(ctx, snap, &mu, sortedKeys(patternIDs)); err != nil {
		return nil, err
	}

	e.logger.Debug("export complete", zap.String("summary", snap.String()))
	return snap, nil
}

func (e *Exporter) group(ctx context.Context) (*errgroup.Group, context.Context) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	return g, gctx
}

func (e *Exporter) fetchRules(ctx context.Context, snap *Snapshot, mu *sync.Mutex) error {
	g, gctx := e.group(ctx)
	seen := map[string]bool{}
	for _, ar := range snap.WebACL.Rules {
		id := aws.ToString(ar.RuleId)
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true

		switch ar.Type {
		case wafregional.WafRuleTypeRateBased:
			g.Go(func() error {
				out, err := e.client.GetRateBasedRule(gctx, &wafregional.GetRateBasedRuleInput{RuleId: aws.String(id)})
				if err != nil {
					return errors.Wrapf(err, "get rate-based rule %s", id)
				}
				mu.Lock()
				defer mu.Unlock()
				if out.Rule != nil {
					snap.RateBasedRules[id] = *out.Rule
				}
				return nil
			})
		case wafregional.WafRuleTypeGroup:
			g.Go(func() error {
				out, err := e.client.GetRuleGroup(gctx, &wafregional.GetRuleGroupInput{RuleGroupId: aws.String(id)})
				if err != nil {
					return errors.Wrapf(err, "get rule group %s", id)
				}
				rules, err := wafregional.CollectAll(gctx, wafregional.NewListActivatedRulesInRuleGroupPaginator(e.client, id, 100))
				if err != nil {
					return errors.Wrapf(err, "list rules in group %s", id)
				}
				rg := RuleGroup{ActivatedRules: rules}
				if out.RuleGroup != nil {
					rg.RuleGroup = *out.RuleGroup
				}
				mu.Lock()
				defer mu.Unlock()
				snap.RuleGroups[id] = rg
				return nil
			})
		default:
			g.Go(func() error {
				out, err := e.client.GetRule(gctx, &wafregional.GetRuleInput{RuleId: aws.String(id)})
				if err != nil {
					return errors.Wrapf(err, "get rule %s", id)
				}
				mu.Lock()
				defer mu.Unlock()
				if out.Rule != nil {
					snap.Rules[id] = *out.Rule
				}
				return nil
			})
		}
	}
	return g.Wait()
}

func collectConditions(snap *Snapshot) []conditionRef {
	seen := map[conditionRef]bool{}
	add := func(preds []wafregional.Predicate) {
		for _, p := range preds {
			if id := aws.ToString(p.DataId); id != "" {
				seen[conditionRef{kind: p.Type, id: id}] = true
			}
		}
	}
	for _, r := range snap.Rules {
		add(r.Predicates)
	}
	for _, r := range snap.RateBasedRules {
		add(r.MatchPredicates)
	}

	refs := make([]conditionRef, 0, len(seen))
	for ref := range seen {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool {
		if refs[i].kind != refs[j].kind {
			return refs[i].kind < refs[j].kind
		}
		return refs[i].id < refs[j].id
	})
	return refs
}

func (e *Exporter) fetchConditions(ctx context.Context, snap *Snapshot, mu *sync.Mutex, refs []conditionRef) error {
	g, gctx := e.group(ctx)
	for _, ref := range refs {
		g.Go(func() error {
			return e.fetchCondition(gctx, snap, mu, ref)
		})
	}
	return g.Wait()
}

func (e *Exporter) fetchCondition(ctx context.Context, snap *Snapshot, mu *sync.Mutex, ref conditionRef) error {
	id := aws.String(ref.id)
	switch ref.kind {
	case wafregional.PredicateTypeByteMatch:
		out, err := e.client.GetByteMatchSet(ctx, &wafregional.GetByteMatchSetInput{ByteMatchSetId: id})
		if err != nil {
			return errors.Wrapf(err, "get byte match set %s", ref.id)
		}
		if out.ByteMatchSet != nil {
			mu.Lock()
			snap.ByteMatchSets[ref.id] = *out.ByteMatchSet
			mu.Unlock()
		}
	case wafregional.PredicateTypeGeoMatch:
		out, err := e.client.GetGeoMatchSet(ctx, &wafregional.GetGeoMatchSetInput{GeoMatchSetId: id})
		if err != nil {
			return errors.Wrapf(err, "get geo match set %s", ref.id)
		}
		if out.GeoMatchSet != nil {
			mu.Lock()
			snap.GeoMatchSets[ref.id] = *out.GeoMatchSet
			mu.Unlock()
		}
	case wafregional.PredicateTypeIPMatch:
		out, err := e.client.GetIPSet(ctx, &wafregional.GetIPSetInput{IPSetId: id})
		if err != nil {
			return errors.Wrapf(err, "get IP set %s", ref.id)
		}
		if out.IPSet != nil {
			mu.Lock()
			snap.IPSets[ref.id] = *out.IPSet
			mu.Unlock()
		}
	case wafregional.PredicateTypeRegexMatch:
		out, err := e.client.GetRegexMatchSet(ctx, &wafregional.GetRegexMatchSetInput{RegexMatchSetId: id})
		if err != nil {
			return errors.Wrapf(err, "get regex match set %s", ref.id)
		}
		if out.RegexMatchSet != nil {
			mu.Lock()
			snap.RegexMatchSets[ref.id] = *out.RegexMatchSet
			mu.Unlock()
		}
	case wafregional.PredicateTypeSizeConstraint:
		out, err := e.client.GetSizeConstraintSet(ctx, &wafregional.GetSizeConstraintSetInput{SizeConstraintSetId: id})
		if err != nil {
			return errors.Wrapf(err, "get size constraint set %s", ref.id)
		}
		if out.SizeConstraintSet != nil {
			mu.Lock()
			snap.SizeConstraintSets[ref.id] = *out.SizeConstraintSet
			mu.Unlock()
		}
	case wafregional.PredicateTypeSqlInjectionMatch:
		out, err := e.client.GetSqlInjectionMatchSet(ctx, &wafregional.GetSqlInjectionMatchSetInput{SqlInjectionMatchSetId: id})
		if err != nil {
			return errors.Wrapf(err, "get SQL injection match set %s", ref.id)
		}
		if out.SqlInjectionMatchSet != nil {
			mu.Lock()
			snap.SqlInjectionMatchSets[ref.id] = *out.SqlInjectionMatchSet
			mu.Unlock()
		}
	case wafregional.PredicateTypeXssMatch:
		out, err := e.client.GetXssMatchSet(ctx, &wafregional.GetXssMatchSetInput{XssMatchSetId: id})
		if err != nil {
			return errors.Wrapf(err, "get XSS match set %s", ref.id)
		}
		if out.XssMatchSet != nil {
			mu.Lock()
			snap.XssMatchSets[ref.id] = *out.XssMatchSet
			mu.Unlock()
		}
	default:
		e.logger.Debug("skipping unknown predicate type",
			zap.String("type", string(ref.kind)),
			zap.String("dataId", ref.id))
	}
	return nil
}

func (e *Exporter) fetchPatternSets(ctx context.Context, snap *Snapshot, mu *sync.Mutex, ids []string) error {
	g, gctx := e.group(ctx)
	for _, id := range ids {
		g.Go(func() error {
			out, err := e.client.GetRegexPatternSet(gctx, &wafregional.GetRegexPatternSetInput{RegexPatternSetId: aws.String(id)})
			if err != nil {
				return errors.Wrapf(err, "get regex pattern set %s", id)
			}
			if out.RegexPatternSet != nil {
				mu.Lock()
				snap.RegexPatternSets[id] = *out.RegexPatternSet
				mu.Unlock()
			}
			return nil
		})
	}
	return g.Wait()
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
