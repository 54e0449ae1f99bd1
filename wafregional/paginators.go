package wafregional

import (
	"context"

	"github.com/Laisky/errors/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
)

type pageFunc[T any] func(ctx context.Context, marker *string) ([]T, *string, error)

// Paginator walks a List action page by page, following NextMarker until the
// service stops returning one.
type Paginator[T any] struct {
	fetch     pageFunc[T]
	marker    *string
	firstPage bool
}

func newPaginator[T any](fetch pageFunc[T]) *Paginator[T] {
	return &Paginator[T]{fetch: fetch, firstPage: true}
}

// HasMorePages reports whether NextPage will make another call.
func (p *Paginator[T]) HasMorePages() bool {
	return p.firstPage || (p.marker != nil && *p.marker != "")
}

// NextPage fetches the next page.
func (p *Paginator[T]) NextPage(ctx context.Context) ([]T, error) {
	if !p.HasMorePages() {
		return nil, errors.New("no more pages available")
	}
	items, next, err := p.fetch(ctx, p.marker)
	if err != nil {
		return nil, err
	}
	prev := p.marker
	p.firstPage = false
	p.marker = next
	// A service that echoes the same marker would loop forever.
	if prev != nil && next != nil && *prev == *next {
		p.marker = nil
	}
	return items, nil
}

// CollectAll drains p.
func CollectAll[T any](ctx context.Context, p *Paginator[T]) ([]T, error) {
	var all []T
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
	}
	return all, nil
}

func limitPtr(limit int32) *int32 {
	if limit <= 0 {
		return nil
	}
	return aws.Int32(limit)
}

func NewListWebACLsPaginator(c *Client, limit int32) *Paginator[WebACLSummary] {
	return newPaginator(func(ctx context.Context, marker *string) ([]WebACLSummary, *string, error) {
		out, err := c.ListWebACLs(ctx, &ListWebACLsInput{NextMarker: marker, Limit: limitPtr(limit)})
		if err != nil {
			return nil, nil, err
		}
		return out.WebACLs, out.NextMarker, nil
	})
}

func NewListRulesPaginator(c *Client, limit int32) *Paginator[RuleSummary] {
	return newPaginator(func(ctx context.Context, marker *string) ([]RuleSummary, *string, error) {
		out, err := c.ListRules(ctx, &ListRulesInput{NextMarker: marker, Limit: limitPtr(limit)})
		if err != nil {
			return nil, nil, err
		}
		return out.Rules, out.NextMarker, nil
	})
}

func NewListRateBasedRulesPaginator(c *Client, limit int32) *Paginator[RuleSummary] {
	return newPaginator(func(ctx context.Context, marker *string) ([]RuleSummary, *string, error) {
		out, err := c.ListRateBasedRules(ctx, &ListRateBasedRulesInput{NextMarker: marker, Limit: limitPtr(limit)})
		if err != nil {
			return nil, nil, err
		}
		return out.Rules, out.NextMarker, nil
	})
}

func NewListRuleGroupsPaginator(c *Client, limit int32) *Paginator[RuleGroupSummary] {
	return newPaginator(func(ctx context.Context, marker *string) ([]RuleGroupSummary, *string, error) {
		out, err := c.ListRuleGroups(ctx, &ListRuleGroupsInput{NextMarker: marker, Limit: limitPtr(limit)})
		if err != nil {
			return nil, nil, err
		}
		return out.RuleGroups, out.NextMarker, nil
	})
}

func NewListIPSetsPaginator(c *Client, limit int32) *Paginator[IPSetSummary] {
	return newPaginator(func(ctx context.Context, marker *string) ([]IPSetSummary, *string, error) {
		out, err := c.ListIPSets(ctx, &ListIPSetsInput{NextMarker: marker, Limit: limitPtr(limit)})
		if err != nil {
			return nil, nil, err
		}
		return out.IPSets, out.NextMarker, nil
	})
}

func NewListByteMatchSetsPaginator(c *Client, limit int32) *Paginator[ByteMatchSetSummary] {
	return newPaginator(func(ctx context.Context, marker *string) ([]ByteMatchSetSummary, *string, error) {
		out, err := c.ListByteMatchSets(ctx, &ListByteMatchSetsInput{NextMarker: marker, Limit: limitPtr(limit)})
		if err != nil {
			return nil, nil, err
		}
		return out.ByteMatchSets, out.NextMarker, nil
	})
}

func NewListActivatedRulesInRuleGroupPaginator(c *Client, ruleGroupID string, limit int32) *Paginator[ActivatedRule] {
	return newPaginator(func(ctx context.Context, marker *string) ([]ActivatedRule, *string, error) {
		out, err := c.ListActivatedRulesInRuleGroup(ctx, &ListActivatedRulesInRuleGroupInput{
			RuleGroupId: aws.String(ruleGroupID),
			NextMarker:  marker,
			Limit:       limitPtr(limit),
		})
		if err != nil {
			return nil, nil, err
		}
		return out.ActivatedRules, out.NextMarker, nil
	})
}

func NewGetRateBasedRuleManagedKeysPaginator(c *Client, ruleID string) *Paginator[string] {
	return newPaginator(func(ctx context.Context, marker *string) ([]string, *string, error) {
		out, err := c.GetRateBasedRuleManagedKeys(ctx, &GetRateBasedRuleManagedKeysInput{
			RuleId:     aws.String(ruleID),
			NextMarker: marker,
		})
		if err != nil {
			return nil, nil, err
		}
		return out.ManagedKeys, out.NextMarker, nil
	})
}
