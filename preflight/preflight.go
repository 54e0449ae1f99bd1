// Package preflight checks, before anything is changed, that a principal is
// allowed to call the WAF Regional actions a command is about to use.
package preflight

import (
	"context"
	"sort"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/iam/types"

	"github.com/gurre/waf-regional/aws"
	"github.com/gurre/waf-regional/wafregional"
)

// IAMPrefix is the service prefix used in IAM policies for WAF Regional.
const IAMPrefix = "waf-regional:"

// ErrDenied is returned by Require when at least one action is not allowed.
var ErrDenied = errors.New("preflight: actions denied")

// Logger is the subset of *zap.Logger used here.
type Logger interface {
	Debug(msg string, fields ...zap.Field)
	Warn(msg string, fields ...zap.Field)
}

// Result is the decision for one WAF action.
type Result struct {
	Action   string
	Decision string
	Allowed  bool
}

// Checker simulates policies through IAM.
type Checker struct {
	client aws.IAMClient
	logger Logger
}

func NewChecker(client aws.IAMClient, logger Logger) *Checker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{client: client, logger: logger}
}

// Check simulates every action for principalARN. Actions are WAF action names
// such as "UpdateIPSet"; unknown names are rejected before IAM is called.
// resourceARNs narrows the simulation and may be empty for "*".
func (c *Checker) Check(ctx context.Context, principalARN string, actions []string, resourceARNs ...string) ([]Result, error) {
	if principalARN == "" {
		return nil, errors.New("principal ARN is required")
	}
	names := make([]string, 0, len(actions))
	seen := make(map[string]bool, len(actions))
	for _, a := range actions {
		if !wafregional.IsAction(a) {
			return nil, errors.Errorf("unknown WAF Regional action %q", a)
		}
		if !seen[a] {
			seen[a] = true
			names = append(names, IAMPrefix+a)
		}
	}
	if len(names) == 0 {
		return nil, nil
	}
	sort.Strings(names)

	decisions := make(map[string]types.PolicyEvaluationDecisionType, len(names))
	var marker *string
	for {
		out, err := c.client.SimulatePrincipalPolicy(ctx, &iam.SimulatePrincipalPolicyInput{
			PolicySourceArn: sdkaws.String(principalARN),
			ActionNames:     names,
			ResourceArns:    resourceARNs,
			Marker:          marker,
		})
		if err != nil {
			return nil, errors.Wrap(err, "simulate principal policy")
		}
		for _, r := range out.EvaluationResults {
			decisions[sdkaws.ToString(r.EvalActionName)] = r.EvalDecision
		}
		if out.Marker == nil || *out.Marker == "" {
			break
		}
		marker = out.Marker
	}

	results := make([]Result, 0, len(names))
	for _, name := range names {
		decision, ok := decisions[name]
		if !ok {
			decision = types.PolicyEvaluationDecisionTypeImplicitDeny
		}
		r := Result{
			Action:   strings.TrimPrefix(name, IAMPrefix),
			Decision: string(decision),
			Allowed:  decision == types.PolicyEvaluationDecisionTypeAllowed,
		}
		if !r.Allowed {
			c.logger.Warn("action not allowed",
				zap.String("principal", principalARN),
				zap.String("action", name),
				zap.String("decision", r.Decision))
		}
		results = append(results, r)
	}
	c.logger.Debug("preflight complete", zap.Int("actions", len(results)))
	return results, nil
}

// Require runs Check and fails with ErrDenied naming every denied action.
func (c *Checker) Require(ctx context.Context, principalARN string, actions []string, resourceARNs ...string) error {
	results, err := c.Check(ctx, principalARN, actions, resourceARNs...)
	if err != nil {
		return err
	}
	var denied []string
	for _, r := range results {
		if !r.Allowed {
			denied = append(denied, r.Action)
		}
	}
	if len(denied) > 0 {
		return errors.Wrapf(ErrDenied, "%s may not call %s", principalARN, strings.Join(denied, ", "))
	}
	return nil
}

// MutatingActions returns the change-token actions, for checking everything
// an apply run might call.
func MutatingActions() []string {
	var out []string
	for _, a := range wafregional.Actions {
		if wafregional.RequiresChangeToken(a) {
			out = append(out, a)
		}
	}
	return out
}
