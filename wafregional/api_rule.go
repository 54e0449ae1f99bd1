package wafregional

import "context"

type CreateRuleInput struct {
	Name        *string `json:"Name,omitempty"`
	MetricName  *string `json:"MetricName,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
	Tags        []Tag   `json:"Tags,omitempty"`
}

type CreateRuleOutput struct {
	Rule        *Rule   `json:"Rule,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// CreateRule creates a Rule. Add predicates with UpdateRule.
func (c *Client) CreateRule(ctx context.Context, params *CreateRuleInput, optFns ...func(*Options)) (*CreateRuleOutput, error) {
	out := &CreateRuleOutput{}
	if err := c.invoke(ctx, ActionCreateRule, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateRateBasedRuleInput struct {
	Name        *string `json:"Name,omitempty"`
	MetricName  *string `json:"MetricName,omitempty"`
	RateKey     RateKey `json:"RateKey,omitempty"`
	RateLimit   *int64  `json:"RateLimit,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
	Tags        []Tag   `json:"Tags,omitempty"`
}

type CreateRateBasedRuleOutput struct {
	Rule        *RateBasedRule `json:"Rule,omitempty"`
	ChangeToken *string        `json:"ChangeToken,omitempty"`
}

// CreateRateBasedRule creates a RateBasedRule that counts requests per client
// IP over five minutes.
func (c *Client) CreateRateBasedRule(ctx context.Context, params *CreateRateBasedRuleInput, optFns ...func(*Options)) (*CreateRateBasedRuleOutput, error) {
	out := &CreateRateBasedRuleOutput{}
	if err := c.invoke(ctx, ActionCreateRateBasedRule, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteRuleInput struct {
	RuleId      *string `json:"RuleId,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type DeleteRuleOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// DeleteRule permanently deletes a Rule. The rule must not be referenced by a
// WebACL and must have no predicates.
func (c *Client) DeleteRule(ctx context.Context, params *DeleteRuleInput, optFns ...func(*Options)) (*DeleteRuleOutput, error) {
	out := &DeleteRuleOutput{}
	if err := c.invoke(ctx, ActionDeleteRule, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteRateBasedRuleInput struct {
	RuleId      *string `json:"RuleId,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type DeleteRateBasedRuleOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// DeleteRateBasedRule permanently deletes a RateBasedRule.
func (c *Client) DeleteRateBasedRule(ctx context.Context, params *DeleteRateBasedRuleInput, optFns ...func(*Options)) (*DeleteRateBasedRuleOutput, error) {
	out := &DeleteRateBasedRuleOutput{}
	if err := c.invoke(ctx, ActionDeleteRateBasedRule, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetRuleInput struct {
	RuleId *string `json:"RuleId,omitempty"`
}

type GetRuleOutput struct {
	Rule *Rule `json:"Rule,omitempty"`
}

// GetRule returns the Rule identified by RuleId.
func (c *Client) GetRule(ctx context.Context, params *GetRuleInput, optFns ...func(*Options)) (*GetRuleOutput, error) {
	out := &GetRuleOutput{}
	if err := c.invoke(ctx, ActionGetRule, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetRateBasedRuleInput struct {
	RuleId *string `json:"RuleId,omitempty"`
}

type GetRateBasedRuleOutput struct {
	Rule *RateBasedRule `json:"Rule,omitempty"`
}

// GetRateBasedRule returns the RateBasedRule identified by RuleId.
func (c *Client) GetRateBasedRule(ctx context.Context, params *GetRateBasedRuleInput, optFns ...func(*Options)) (*GetRateBasedRuleOutput, error) {
	out := &GetRateBasedRuleOutput{}
	if err := c.invoke(ctx, ActionGetRateBasedRule, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetRateBasedRuleManagedKeysInput struct {
	RuleId     *string `json:"RuleId,omitempty"`
	NextMarker *string `json:"NextMarker,omitempty"`
}

type GetRateBasedRuleManagedKeysOutput struct {
	ManagedKeys []string `json:"ManagedKeys,omitempty"`
	NextMarker  *string  `json:"NextMarker,omitempty"`
}

// GetRateBasedRuleManagedKeys returns the client IP addresses currently blocked
// by a RateBasedRule.
func (c *Client) GetRateBasedRuleManagedKeys(ctx context.Context, params *GetRateBasedRuleManagedKeysInput, optFns ...func(*Options)) (*GetRateBasedRuleManagedKeysOutput, error) {
	out := &GetRateBasedRuleManagedKeysOutput{}
	if err := c.invoke(ctx, ActionGetRateBasedRuleManagedKeys, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListRulesInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListRulesOutput struct {
	NextMarker *string       `json:"NextMarker,omitempty"`
	Rules      []RuleSummary `json:"Rules,omitempty"`
}

// ListRules returns a page of RuleSummary objects.
func (c *Client) ListRules(ctx context.Context, params *ListRulesInput, optFns ...func(*Options)) (*ListRulesOutput, error) {
	out := &ListRulesOutput{}
	if err := c.invoke(ctx, ActionListRules, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListRateBasedRulesInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListRateBasedRulesOutput struct {
	NextMarker *string       `json:"NextMarker,omitempty"`
	Rules      []RuleSummary `json:"Rules,omitempty"`
}

// ListRateBasedRules returns a page of rate-based RuleSummary objects.
func (c *Client) ListRateBasedRules(ctx context.Context, params *ListRateBasedRulesInput, optFns ...func(*Options)) (*ListRateBasedRulesOutput, error) {
	out := &ListRateBasedRulesOutput{}
	if err := c.invoke(ctx, ActionListRateBasedRules, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateRuleInput struct {
	RuleId      *string      `json:"RuleId,omitempty"`
	ChangeToken *string      `json:"ChangeToken,omitempty"`
	Updates     []RuleUpdate `json:"Updates,omitempty"`
}

type UpdateRuleOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// UpdateRule inserts or deletes Predicate objects in a Rule.
func (c *Client) UpdateRule(ctx context.Context, params *UpdateRuleInput, optFns ...func(*Options)) (*UpdateRuleOutput, error) {
	out := &UpdateRuleOutput{}
	if err := c.invoke(ctx, ActionUpdateRule, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateRateBasedRuleInput struct {
	RuleId      *string      `json:"RuleId,omitempty"`
	ChangeToken *string      `json:"ChangeToken,omitempty"`
	Updates     []RuleUpdate `json:"Updates,omitempty"`
	RateLimit   *int64       `json:"RateLimit,omitempty"`
}

type UpdateRateBasedRuleOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// UpdateRateBasedRule inserts or deletes predicates in a RateBasedRule and sets
// its rate limit.
func (c *Client) UpdateRateBasedRule(ctx context.Context, params *UpdateRateBasedRuleInput, optFns ...func(*Options)) (*UpdateRateBasedRuleOutput, error) {
	out := &UpdateRateBasedRuleOutput{}
	if err := c.invoke(ctx, ActionUpdateRateBasedRule, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}
