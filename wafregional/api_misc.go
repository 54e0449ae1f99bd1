package wafregional

import "context"

type GetChangeTokenInput struct{}

type GetChangeTokenOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// GetChangeToken returns a change token to use in the next create, update or
// delete request.
func (c *Client) GetChangeToken(ctx context.Context, params *GetChangeTokenInput, optFns ...func(*Options)) (*GetChangeTokenOutput, error) {
	out := &GetChangeTokenOutput{}
	if err := c.invoke(ctx, ActionGetChangeToken, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetChangeTokenStatusInput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type GetChangeTokenStatusOutput struct {
	ChangeTokenStatus ChangeTokenStatus `json:"ChangeTokenStatus,omitempty"`
}

// GetChangeTokenStatus returns whether a change token is PROVISIONED, PENDING
// or INSYNC.
func (c *Client) GetChangeTokenStatus(ctx context.Context, params *GetChangeTokenStatusInput, optFns ...func(*Options)) (*GetChangeTokenStatusOutput, error) {
	out := &GetChangeTokenStatusOutput{}
	if err := c.invoke(ctx, ActionGetChangeTokenStatus, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetSampledRequestsInput struct {
	WebAclId   *string     `json:"WebAclId,omitempty"`
	RuleId     *string     `json:"RuleId,omitempty"`
	TimeWindow *TimeWindow `json:"TimeWindow,omitempty"`
	MaxItems   *int64      `json:"MaxItems,omitempty"`
}

type GetSampledRequestsOutput struct {
	SampledRequests []SampledHTTPRequest `json:"SampledRequests,omitempty"`
	PopulationSize  *int64               `json:"PopulationSize,omitempty"`
	TimeWindow      *TimeWindow          `json:"TimeWindow,omitempty"`
}

// GetSampledRequests returns a sample of the web requests a rule matched during
// a time window.
func (c *Client) GetSampledRequests(ctx context.Context, params *GetSampledRequestsInput, optFns ...func(*Options)) (*GetSampledRequestsOutput, error) {
	out := &GetSampledRequestsOutput{}
	if err := c.invoke(ctx, ActionGetSampledRequests, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteLoggingConfigurationInput struct {
	ResourceArn *string `json:"ResourceArn,omitempty"`
}

type DeleteLoggingConfigurationOutput struct{}

// DeleteLoggingConfiguration removes the logging configuration from a web ACL.
func (c *Client) DeleteLoggingConfiguration(ctx context.Context, params *DeleteLoggingConfigurationInput, optFns ...func(*Options)) (*DeleteLoggingConfigurationOutput, error) {
	out := &DeleteLoggingConfigurationOutput{}
	if err := c.invoke(ctx, ActionDeleteLoggingConfiguration, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetLoggingConfigurationInput struct {
	ResourceArn *string `json:"ResourceArn,omitempty"`
}

type GetLoggingConfigurationOutput struct {
	LoggingConfiguration *LoggingConfiguration `json:"LoggingConfiguration,omitempty"`
}

// GetLoggingConfiguration returns the logging configuration of a web ACL.
func (c *Client) GetLoggingConfiguration(ctx context.Context, params *GetLoggingConfigurationInput, optFns ...func(*Options)) (*GetLoggingConfigurationOutput, error) {
	out := &GetLoggingConfigurationOutput{}
	if err := c.invoke(ctx, ActionGetLoggingConfiguration, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListLoggingConfigurationsInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListLoggingConfigurationsOutput struct {
	LoggingConfigurations []LoggingConfiguration `json:"LoggingConfigurations,omitempty"`
	NextMarker            *string                `json:"NextMarker,omitempty"`
}

// ListLoggingConfigurations returns a page of logging configurations.
func (c *Client) ListLoggingConfigurations(ctx context.Context, params *ListLoggingConfigurationsInput, optFns ...func(*Options)) (*ListLoggingConfigurationsOutput, error) {
	out := &ListLoggingConfigurationsOutput{}
	if err := c.invoke(ctx, ActionListLoggingConfigurations, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type PutLoggingConfigurationInput struct {
	LoggingConfiguration *LoggingConfiguration `json:"LoggingConfiguration,omitempty"`
}

type PutLoggingConfigurationOutput struct {
	LoggingConfiguration *LoggingConfiguration `json:"LoggingConfiguration,omitempty"`
}

// PutLoggingConfiguration associates a Kinesis Data Firehose destination with a
// web ACL.
func (c *Client) PutLoggingConfiguration(ctx context.Context, params *PutLoggingConfigurationInput, optFns ...func(*Options)) (*PutLoggingConfigurationOutput, error) {
	out := &PutLoggingConfigurationOutput{}
	if err := c.invoke(ctx, ActionPutLoggingConfiguration, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeletePermissionPolicyInput struct {
	ResourceArn *string `json:"ResourceArn,omitempty"`
}

type DeletePermissionPolicyOutput struct{}

// DeletePermissionPolicy removes the IAM policy attached to a RuleGroup.
func (c *Client) DeletePermissionPolicy(ctx context.Context, params *DeletePermissionPolicyInput, optFns ...func(*Options)) (*DeletePermissionPolicyOutput, error) {
	out := &DeletePermissionPolicyOutput{}
	if err := c.invoke(ctx, ActionDeletePermissionPolicy, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetPermissionPolicyInput struct {
	ResourceArn *string `json:"ResourceArn,omitempty"`
}

type GetPermissionPolicyOutput struct {
	Policy *string `json:"Policy,omitempty"`
}

// GetPermissionPolicy returns the IAM policy attached to a RuleGroup.
func (c *Client) GetPermissionPolicy(ctx context.Context, params *GetPermissionPolicyInput, optFns ...func(*Options)) (*GetPermissionPolicyOutput, error) {
	out := &GetPermissionPolicyOutput{}
	if err := c.invoke(ctx, ActionGetPermissionPolicy, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type PutPermissionPolicyInput struct {
	ResourceArn *string `json:"ResourceArn,omitempty"`
	Policy      *string `json:"Policy,omitempty"`
}

type PutPermissionPolicyOutput struct{}

// PutPermissionPolicy attaches an IAM policy to a RuleGroup to share it across
// accounts.
func (c *Client) PutPermissionPolicy(ctx context.Context, params *PutPermissionPolicyInput, optFns ...func(*Options)) (*PutPermissionPolicyOutput, error) {
	out := &PutPermissionPolicyOutput{}
	if err := c.invoke(ctx, ActionPutPermissionPolicy, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListTagsForResourceInput struct {
	NextMarker  *string `json:"NextMarker,omitempty"`
	Limit       *int32  `json:"Limit,omitempty"`
	ResourceARN *string `json:"ResourceARN,omitempty"`
}

type ListTagsForResourceOutput struct {
	NextMarker         *string             `json:"NextMarker,omitempty"`
	TagInfoForResource *TagInfoForResource `json:"TagInfoForResource,omitempty"`
}

// ListTagsForResource returns the tags on a resource.
func (c *Client) ListTagsForResource(ctx context.Context, params *ListTagsForResourceInput, optFns ...func(*Options)) (*ListTagsForResourceOutput, error) {
	out := &ListTagsForResourceOutput{}
	if err := c.invoke(ctx, ActionListTagsForResource, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type TagResourceInput struct {
	ResourceARN *string `json:"ResourceARN,omitempty"`
	Tags        []Tag   `json:"Tags,omitempty"`
}

type TagResourceOutput struct{}

// TagResource adds tags to a resource.
func (c *Client) TagResource(ctx context.Context, params *TagResourceInput, optFns ...func(*Options)) (*TagResourceOutput, error) {
	out := &TagResourceOutput{}
	if err := c.invoke(ctx, ActionTagResource, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UntagResourceInput struct {
	ResourceARN *string  `json:"ResourceARN,omitempty"`
	TagKeys     []string `json:"TagKeys,omitempty"`
}

type UntagResourceOutput struct{}

// UntagResource removes tags from a resource.
func (c *Client) UntagResource(ctx context.Context, params *UntagResourceInput, optFns ...func(*Options)) (*UntagResourceOutput, error) {
	out := &UntagResourceOutput{}
	if err := c.invoke(ctx, ActionUntagResource, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}
