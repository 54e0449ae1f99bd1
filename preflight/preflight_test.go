package preflight

import (
	"context"
	"testing"

	"github.com/Laisky/errors/v2"
	"github.com/stretchr/testify/require"

	"github.com/gurre/waf-regional/integration/mock"
	"github.com/gurre/waf-regional/wafregional"
)

const principal = "arn:aws:iam::123456789012:role/waf-operator"

func TestCheckReportsDecisions(t *testing.T) {
	iamClient := mock.NewIAMClient("waf-regional:GetWebACL", "waf-regional:UpdateIPSet")
	checker := NewChecker(iamClient, nil)

	results, err := checker.Check(context.Background(), principal,
		[]string{wafregional.ActionUpdateIPSet, wafregional.ActionGetWebACL, wafregional.ActionDeleteWebACL, wafregional.ActionGetWebACL})
	require.NoError(t, err)
	require.Equal(t, []Result{
		{Action: wafregional.ActionDeleteWebACL, Decision: "implicitDeny", Allowed: false},
		{Action: wafregional.ActionGetWebACL, Decision: "allowed", Allowed: true},
		{Action: wafregional.ActionUpdateIPSet, Decision: "allowed", Allowed: true},
	}, results)

	calls := iamClient.Calls()
	require.Len(t, calls, 1)
	require.Equal(t, principal, *calls[0].PolicySourceArn)
	require.Equal(t, []string{"waf-regional:DeleteWebACL", "waf-regional:GetWebACL", "waf-regional:UpdateIPSet"}, calls[0].ActionNames)
}

func TestCheckRejectsUnknownActions(t *testing.T) {
	iamClient := mock.NewIAMClient()
	_, err := NewChecker(iamClient, nil).Check(context.Background(), principal, []string{"CreateBucket"})
	require.Error(t, err)
	require.Empty(t, iamClient.Calls())
}

func TestCheckRequiresPrincipal(t *testing.T) {
	_, err := NewChecker(mock.NewIAMClient(), nil).Check(context.Background(), "", []string{wafregional.ActionGetWebACL})
	require.Error(t, err)
}

func TestRequireNamesDeniedActions(t *testing.T) {
	checker := NewChecker(mock.NewIAMClient("waf-regional:GetChangeToken"), nil)

	err := checker.Require(context.Background(), principal,
		[]string{wafregional.ActionGetChangeToken, wafregional.ActionUpdateIPSet})
	require.ErrorIs(t, err, ErrDenied)
	require.Contains(t, err.Error(), wafregional.ActionUpdateIPSet)

	require.NoError(t, checker.Require(context.Background(), principal, []string{wafregional.ActionGetChangeToken}))
}

func TestCheckPropagatesIAMErrors(t *testing.T) {
	iamClient := mock.NewIAMClient()
	iamClient.Err = errors.New("AccessDenied")
	_, err := NewChecker(iamClient, nil).Check(context.Background(), principal, []string{wafregional.ActionGetWebACL})
	require.Error(t, err)
	require.Contains(t, err.Error(), "AccessDenied")
}

func TestMutatingActions(t *testing.T) {
	actions := MutatingActions()
	require.Contains(t, actions, wafregional.ActionUpdateIPSet)
	require.Contains(t, actions, wafregional.ActionCreateWebACL)
	require.NotContains(t, actions, wafregional.ActionGetWebACL)
	for _, a := range actions {
		require.True(t, wafregional.RequiresChangeToken(a))
	}
}
