package wafregional

import "context"

type AssociateWebACLInput struct {
	WebACLId    *string `json:"WebACLId,omitempty"`
	ResourceArn *string `json:"ResourceArn,omitempty"`
}

type AssociateWebACLOutput struct{}

// AssociateWebACL associates a web ACL with a regional resource such as an
// Application Load Balancer or API Gateway stage.
func (c *Client) AssociateWebACL(ctx context.Context, params *AssociateWebACLInput, optFns ...func(*Options)) (*AssociateWebACLOutput, error) {
	out := &AssociateWebACLOutput{}
	if err := c.invoke(ctx, ActionAssociateWebACL, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateWebACLInput struct {
	Name          *string    `json:"Name,omitempty"`
	MetricName    *string    `json:"MetricName,omitempty"`
	DefaultAction *WafAction `json:"DefaultAction,omitempty"`
	ChangeToken   *string    `json:"ChangeToken,omitempty"`
	Tags          []Tag      `json:"Tags,omitempty"`
}

type CreateWebACLOutput struct {
	WebACL      *WebACL `json:"WebACL,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// CreateWebACL creates a WebACL. The new web ACL has no rules; add them with
// UpdateWebACL.
func (c *Client) CreateWebACL(ctx context.Context, params *CreateWebACLInput, optFns ...func(*Options)) (*CreateWebACLOutput, error) {
	out := &CreateWebACLOutput{}
	if err := c.invoke(ctx, ActionCreateWebACL, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateWebACLMigrationStackInput struct {
	WebACLId              *string `json:"WebACLId,omitempty"`
	S3BucketName          *string `json:"S3BucketName,omitempty"`
	IgnoreUnsupportedType *bool   `json:"IgnoreUnsupportedType,omitempty"`
}

type CreateWebACLMigrationStackOutput struct {
	S3ObjectUrl *string `json:"S3ObjectUrl,omitempty"`
}

// CreateWebACLMigrationStack writes a CloudFormation template that migrates the
// web ACL to WAFv2 into an S3 bucket.
func (c *Client) CreateWebACLMigrationStack(ctx context.Context, params *CreateWebACLMigrationStackInput, optFns ...func(*Options)) (*CreateWebACLMigrationStackOutput, error) {
	out := &CreateWebACLMigrationStackOutput{}
	if err := c.invoke(ctx, ActionCreateWebACLMigrationStack, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteWebACLInput struct {
	WebACLId    *string `json:"WebACLId,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type DeleteWebACLOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// DeleteWebACL permanently deletes a WebACL. The web ACL must contain no rules.
func (c *Client) DeleteWebACL(ctx context.Context, params *DeleteWebACLInput, optFns ...func(*Options)) (*DeleteWebACLOutput, error) {
	out := &DeleteWebACLOutput{}
	if err := c.invoke(ctx, ActionDeleteWebACL, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DisassociateWebACLInput struct {
	ResourceArn *string `json:"ResourceArn,omitempty"`
}

type DisassociateWebACLOutput struct{}

// DisassociateWebACL removes the web ACL association from a regional resource.
func (c *Client) DisassociateWebACL(ctx context.Context, params *DisassociateWebACLInput, optFns ...func(*Options)) (*DisassociateWebACLOutput, error) {
	out := &DisassociateWebACLOutput{}
	if err := c.invoke(ctx, ActionDisassociateWebACL, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetWebACLInput struct {
	WebACLId *string `json:"WebACLId,omitempty"`
}

type GetWebACLOutput struct {
	WebACL *WebACL `json:"WebACL,omitempty"`
}

// GetWebACL returns the WebACL identified by WebACLId.
func (c *Client) GetWebACL(ctx context.Context, params *GetWebACLInput, optFns ...func(*Options)) (*GetWebACLOutput, error) {
	out := &GetWebACLOutput{}
	if err := c.invoke(ctx, ActionGetWebACL, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetWebACLForResourceInput struct {
	ResourceArn *string `json:"ResourceArn,omitempty"`
}

type GetWebACLForResourceOutput struct {
	WebACLSummary *WebACLSummary `json:"WebACLSummary,omitempty"`
}

// GetWebACLForResource returns the web ACL associated with a regional resource.
func (c *Client) GetWebACLForResource(ctx context.Context, params *GetWebACLForResourceInput, optFns ...func(*Options)) (*GetWebACLForResourceOutput, error) {
	out := &GetWebACLForResourceOutput{}
	if err := c.invoke(ctx, ActionGetWebACLForResource, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListResourcesForWebACLInput struct {
	WebACLId     *string      `json:"WebACLId,omitempty"`
	ResourceType ResourceType `json:"ResourceType,omitempty"`
}

type ListResourcesForWebACLOutput struct {
	ResourceArns []string `json:"ResourceArns,omitempty"`
}

// ListResourcesForWebACL returns the ARNs of the resources associated with a
// web ACL.
func (c *Client) ListResourcesForWebACL(ctx context.Context, params *ListResourcesForWebACLInput, optFns ...func(*Options)) (*ListResourcesForWebACLOutput, error) {
	out := &ListResourcesForWebACLOutput{}
	if err := c.invoke(ctx, ActionListResourcesForWebACL, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListWebACLsInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListWebACLsOutput struct {
	NextMarker *string         `json:"NextMarker,omitempty"`
	WebACLs    []WebACLSummary `json:"WebACLs,omitempty"`
}

// ListWebACLs returns a page of WebACLSummary objects.
func (c *Client) ListWebACLs(ctx context.Context, params *ListWebACLsInput, optFns ...func(*Options)) (*ListWebACLsOutput, error) {
	out := &ListWebACLsOutput{}
	if err := c.invoke(ctx, ActionListWebACLs, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateWebACLInput struct {
	WebACLId      *string        `json:"WebACLId,omitempty"`
	ChangeToken   *string        `json:"ChangeToken,omitempty"`
	Updates       []WebACLUpdate `json:"Updates,omitempty"`
	DefaultAction *WafAction     `json:"DefaultAction,omitempty"`
}

type UpdateWebACLOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// UpdateWebACL inserts or deletes ActivatedRule objects in a WebACL and
// optionally changes its default action.
func (c *Client) UpdateWebACL(ctx context.Context, params *UpdateWebACLInput, optFns ...func(*Options)) (*UpdateWebACLOutput, error) {
	out := &UpdateWebACLOutput{}
	if err := c.invoke(ctx, ActionUpdateWebACL, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}
