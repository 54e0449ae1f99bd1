package mock

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/iam"
	"github.com/aws/aws-sdk-go-v2/service/iam/types"
)

// IAMClient answers SimulatePrincipalPolicy from a fixed allow list.
type IAMClient struct {
	mu      sync.Mutex
	allowed map[string]bool
	calls   []iam.SimulatePrincipalPolicyInput

	// Err, when set, is returned by every call.
	Err error
}

// NewIAMClient allows exactly the given IAM action names
// (e.g. "waf-regional:UpdateIPSet").
func NewIAMClient(allowed ...string) *IAMClient {
	m := &IAMClient{allowed: make(map[string]bool)}
	for _, a := range allowed {
		m.allowed[a] = true
	}
	return m
}

func (m *IAMClient) SimulatePrincipalPolicy(ctx context.Context, params *iam.SimulatePrincipalPolicyInput, optFns ...func(*iam.Options)) (*iam.SimulatePrincipalPolicyOutput, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, *params)
	if m.Err != nil {
		return nil, m.Err
	}

	out := &iam.SimulatePrincipalPolicyOutput{}
	for _, action := range params.ActionNames {
		decision := types.PolicyEvaluationDecisionTypeImplicitDeny
		if m.allowed[action] {
			decision = types.PolicyEvaluationDecisionTypeAllowed
		}
		out.EvaluationResults = append(out.EvaluationResults, types.EvaluationResult{
			EvalActionName: aws.String(action),
			EvalDecision:   decision,
		})
	}
	return out, nil
}

// Calls returns the inputs received so far.
func (m *IAMClient) Calls() []iam.SimulatePrincipalPolicyInput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]iam.SimulatePrincipalPolicyInput(nil), m.calls...)
}
