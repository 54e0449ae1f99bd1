package wafregional

import "context"

type CreateRuleGroupInput struct {
	Name        *string `json:"Name,omitempty"`
	MetricName  *string `json:"MetricName,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
	Tags        []Tag   `json:"Tags,omitempty"`
}

type CreateRuleGroupOutput struct {
	RuleGroup   *RuleGroup `json:"RuleGroup,omitempty"`
	ChangeToken *string    `json:"ChangeToken,omitempty"`
}

// CreateRuleGroup creates a RuleGroup. Add rules with UpdateRuleGroup.
func (c *Client) CreateRuleGroup(ctx context.Context, params *CreateRuleGroupInput, optFns ...func(*Options)) (*CreateRuleGroupOutput, error) {
	out := &CreateRuleGroupOutput{}
	if err := c.invoke(ctx, ActionCreateRuleGroup, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteRuleGroupInput struct {
	RuleGroupId *string `json:"RuleGroupId,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type DeleteRuleGroupOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// DeleteRuleGroup permanently deletes a RuleGroup that is not referenced by any
// WebACL.
func (c *Client) DeleteRuleGroup(ctx context.Context, params *DeleteRuleGroupInput, optFns ...func(*Options)) (*DeleteRuleGroupOutput, error) {
	out := &DeleteRuleGroupOutput{}
	if err := c.invoke(ctx, ActionDeleteRuleGroup, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetRuleGroupInput struct {
	RuleGroupId *string `json:"RuleGroupId,omitempty"`
}

type GetRuleGroupOutput struct {
	RuleGroup *RuleGroup `json:"RuleGroup,omitempty"`
}

// GetRuleGroup returns the RuleGroup identified by RuleGroupId.
func (c *Client) GetRuleGroup(ctx context.Context, params *GetRuleGroupInput, optFns ...func(*Options)) (*GetRuleGroupOutput, error) {
	out := &GetRuleGroupOutput{}
	if err := c.invoke(ctx, ActionGetRuleGroup, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListActivatedRulesInRuleGroupInput struct {
	RuleGroupId *string `json:"RuleGroupId,omitempty"`
	NextMarker  *string `json:"NextMarker,omitempty"`
	Limit       *int32  `json:"Limit,omitempty"`
}

type ListActivatedRulesInRuleGroupOutput struct {
	NextMarker     *string         `json:"NextMarker,omitempty"`
	ActivatedRules []ActivatedRule `json:"ActivatedRules,omitempty"`
}

// ListActivatedRulesInRuleGroup returns the ActivatedRule objects in a
// RuleGroup.
func (c *Client) ListActivatedRulesInRuleGroup(ctx context.Context, params *ListActivatedRulesInRuleGroupInput, optFns ...func(*Options)) (*ListActivatedRulesInRuleGroupOutput, error) {
	out := &ListActivatedRulesInRuleGroupOutput{}
	if err := c.invoke(ctx, ActionListActivatedRulesInRuleGroup, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListRuleGroupsInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListRuleGroupsOutput struct {
	NextMarker *string            `json:"NextMarker,omitempty"`
	RuleGroups []RuleGroupSummary `json:"RuleGroups,omitempty"`
}

// ListRuleGroups returns a page of RuleGroupSummary objects.
func (c *Client) ListRuleGroups(ctx context.Context, params *ListRuleGroupsInput, optFns ...func(*Options)) (*ListRuleGroupsOutput, error) {
	out := &ListRuleGroupsOutput{}
	if err := c.invoke(ctx, ActionListRuleGroups, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListSubscribedRuleGroupsInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListSubscribedRuleGroupsOutput struct {
	NextMarker *string                      `json:"NextMarker,omitempty"`
	RuleGroups []SubscribedRuleGroupSummary `json:"RuleGroups,omitempty"`
}

// ListSubscribedRuleGroups returns the AWS Marketplace rule groups the account
// subscribes to.
func (c *Client) ListSubscribedRuleGroups(ctx context.Context, params *ListSubscribedRuleGroupsInput, optFns ...func(*Options)) (*ListSubscribedRuleGroupsOutput, error) {
	out := &ListSubscribedRuleGroupsOutput{}
	if err := c.invoke(ctx, ActionListSubscribedRuleGroups, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateRuleGroupInput struct {
	RuleGroupId *string           `json:"RuleGroupId,omitempty"`
	Updates     []RuleGroupUpdate `json:"Updates,omitempty"`
	ChangeToken *string           `json:"ChangeToken,omitempty"`
}

type UpdateRuleGroupOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// UpdateRuleGroup inserts or deletes ActivatedRule objects in a RuleGroup.
func (c *Client) UpdateRuleGroup(ctx context.Context, params *UpdateRuleGroupInput, optFns ...func(*Options)) (*UpdateRuleGroupOutput, error) {
	out := &UpdateRuleGroupOutput{}
	if err := c.invoke(ctx, ActionUpdateRuleGroup, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}
