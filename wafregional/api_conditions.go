package wafregional

import "context"

type CreateByteMatchSetInput struct {
	Name        *string `json:"Name,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type CreateByteMatchSetOutput struct {
	ByteMatchSet *ByteMatchSet `json:"ByteMatchSet,omitempty"`
	ChangeToken  *string       `json:"ChangeToken,omitempty"`
}

// CreateByteMatchSet creates an empty byte match set.
func (c *Client) CreateByteMatchSet(ctx context.Context, params *CreateByteMatchSetInput, optFns ...func(*Options)) (*CreateByteMatchSetOutput, error) {
	out := &CreateByteMatchSetOutput{}
	if err := c.invoke(ctx, ActionCreateByteMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteByteMatchSetInput struct {
	ByteMatchSetId *string `json:"ByteMatchSetId,omitempty"`
	ChangeToken    *string `json:"ChangeToken,omitempty"`
}

type DeleteByteMatchSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// DeleteByteMatchSet permanently deletes a byte match set. It must be empty and
// unreferenced.
func (c *Client) DeleteByteMatchSet(ctx context.Context, params *DeleteByteMatchSetInput, optFns ...func(*Options)) (*DeleteByteMatchSetOutput, error) {
	out := &DeleteByteMatchSetOutput{}
	if err := c.invoke(ctx, ActionDeleteByteMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetByteMatchSetInput struct {
	ByteMatchSetId *string `json:"ByteMatchSetId,omitempty"`
}

type GetByteMatchSetOutput struct {
	ByteMatchSet *ByteMatchSet `json:"ByteMatchSet,omitempty"`
}

// GetByteMatchSet returns the byte match set identified by ByteMatchSetId.
func (c *Client) GetByteMatchSet(ctx context.Context, params *GetByteMatchSetInput, optFns ...func(*Options)) (*GetByteMatchSetOutput, error) {
	out := &GetByteMatchSetOutput{}
	if err := c.invoke(ctx, ActionGetByteMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListByteMatchSetsInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListByteMatchSetsOutput struct {
	NextMarker    *string               `json:"NextMarker,omitempty"`
	ByteMatchSets []ByteMatchSetSummary `json:"ByteMatchSets,omitempty"`
}

// ListByteMatchSets returns a page of byte match set summaries.
func (c *Client) ListByteMatchSets(ctx context.Context, params *ListByteMatchSetsInput, optFns ...func(*Options)) (*ListByteMatchSetsOutput, error) {
	out := &ListByteMatchSetsOutput{}
	if err := c.invoke(ctx, ActionListByteMatchSets, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateByteMatchSetInput struct {
	ByteMatchSetId *string              `json:"ByteMatchSetId,omitempty"`
	ChangeToken    *string              `json:"ChangeToken,omitempty"`
	Updates        []ByteMatchSetUpdate `json:"Updates,omitempty"`
}

type UpdateByteMatchSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// UpdateByteMatchSet inserts or deletes entries in a byte match set.
func (c *Client) UpdateByteMatchSet(ctx context.Context, params *UpdateByteMatchSetInput, optFns ...func(*Options)) (*UpdateByteMatchSetOutput, error) {
	out := &UpdateByteMatchSetOutput{}
	if err := c.invoke(ctx, ActionUpdateByteMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateGeoMatchSetInput struct {
	Name        *string `json:"Name,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type CreateGeoMatchSetOutput struct {
	GeoMatchSet *GeoMatchSet `json:"GeoMatchSet,omitempty"`
	ChangeToken *string      `json:"ChangeToken,omitempty"`
}

// CreateGeoMatchSet creates an empty geo match set.
func (c *Client) CreateGeoMatchSet(ctx context.Context, params *CreateGeoMatchSetInput, optFns ...func(*Options)) (*CreateGeoMatchSetOutput, error) {
	out := &CreateGeoMatchSetOutput{}
	if err := c.invoke(ctx, ActionCreateGeoMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteGeoMatchSetInput struct {
	GeoMatchSetId *string `json:"GeoMatchSetId,omitempty"`
	ChangeToken   *string `json:"ChangeToken,omitempty"`
}

type DeleteGeoMatchSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// DeleteGeoMatchSet permanently deletes a geo match set. It must be empty and
// unreferenced.
func (c *Client) DeleteGeoMatchSet(ctx context.Context, params *DeleteGeoMatchSetInput, optFns ...func(*Options)) (*DeleteGeoMatchSetOutput, error) {
	out := &DeleteGeoMatchSetOutput{}
	if err := c.invoke(ctx, ActionDeleteGeoMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetGeoMatchSetInput struct {
	GeoMatchSetId *string `json:"GeoMatchSetId,omitempty"`
}

type GetGeoMatchSetOutput struct {
	GeoMatchSet *GeoMatchSet `json:"GeoMatchSet,omitempty"`
}

// GetGeoMatchSet returns the geo match set identified by GeoMatchSetId.
func (c *Client) GetGeoMatchSet(ctx context.Context, params *GetGeoMatchSetInput, optFns ...func(*Options)) (*GetGeoMatchSetOutput, error) {
	out := &GetGeoMatchSetOutput{}
	if err := c.invoke(ctx, ActionGetGeoMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListGeoMatchSetsInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListGeoMatchSetsOutput struct {
	NextMarker   *string              `json:"NextMarker,omitempty"`
	GeoMatchSets []GeoMatchSetSummary `json:"GeoMatchSets,omitempty"`
}

// ListGeoMatchSets returns a page of geo match set summaries.
func (c *Client) ListGeoMatchSets(ctx context.Context, params *ListGeoMatchSetsInput, optFns ...func(*Options)) (*ListGeoMatchSetsOutput, error) {
	out := &ListGeoMatchSetsOutput{}
	if err := c.invoke(ctx, ActionListGeoMatchSets, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateGeoMatchSetInput struct {
	GeoMatchSetId *string             `json:"GeoMatchSetId,omitempty"`
	ChangeToken   *string             `json:"ChangeToken,omitempty"`
	Updates       []GeoMatchSetUpdate `json:"Updates,omitempty"`
}

type UpdateGeoMatchSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// UpdateGeoMatchSet inserts or deletes entries in a geo match set.
func (c *Client) UpdateGeoMatchSet(ctx context.Context, params *UpdateGeoMatchSetInput, optFns ...func(*Options)) (*UpdateGeoMatchSetOutput, error) {
	out := &UpdateGeoMatchSetOutput{}
	if err := c.invoke(ctx, ActionUpdateGeoMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateIPSetInput struct {
	Name        *string `json:"Name,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type CreateIPSetOutput struct {
	IPSet       *IPSet  `json:"IPSet,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// CreateIPSet creates an empty IP set.
func (c *Client) CreateIPSet(ctx context.Context, params *CreateIPSetInput, optFns ...func(*Options)) (*CreateIPSetOutput, error) {
	out := &CreateIPSetOutput{}
	if err := c.invoke(ctx, ActionCreateIPSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteIPSetInput struct {
	IPSetId     *string `json:"IPSetId,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type DeleteIPSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// DeleteIPSet permanently deletes a IP set. It must be empty and unreferenced.
func (c *Client) DeleteIPSet(ctx context.Context, params *DeleteIPSetInput, optFns ...func(*Options)) (*DeleteIPSetOutput, error) {
	out := &DeleteIPSetOutput{}
	if err := c.invoke(ctx, ActionDeleteIPSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetIPSetInput struct {
	IPSetId *string `json:"IPSetId,omitempty"`
}

type GetIPSetOutput struct {
	IPSet *IPSet `json:"IPSet,omitempty"`
}

// GetIPSet returns the IP set identified by IPSetId.
func (c *Client) GetIPSet(ctx context.Context, params *GetIPSetInput, optFns ...func(*Options)) (*GetIPSetOutput, error) {
	out := &GetIPSetOutput{}
	if err := c.invoke(ctx, ActionGetIPSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListIPSetsInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListIPSetsOutput struct {
	NextMarker *string        `json:"NextMarker,omitempty"`
	IPSets     []IPSetSummary `json:"IPSets,omitempty"`
}

// ListIPSets returns a page of IP set summaries.
func (c *Client) ListIPSets(ctx context.Context, params *ListIPSetsInput, optFns ...func(*Options)) (*ListIPSetsOutput, error) {
	out := &ListIPSetsOutput{}
	if err := c.invoke(ctx, ActionListIPSets, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateIPSetInput struct {
	IPSetId     *string       `json:"IPSetId,omitempty"`
	ChangeToken *string       `json:"ChangeToken,omitempty"`
	Updates     []IPSetUpdate `json:"Updates,omitempty"`
}

type UpdateIPSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// UpdateIPSet inserts or deletes entries in a IP set.
func (c *Client) UpdateIPSet(ctx context.Context, params *UpdateIPSetInput, optFns ...func(*Options)) (*UpdateIPSetOutput, error) {
	out := &UpdateIPSetOutput{}
	if err := c.invoke(ctx, ActionUpdateIPSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateRegexMatchSetInput struct {
	Name        *string `json:"Name,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type CreateRegexMatchSetOutput struct {
	RegexMatchSet *RegexMatchSet `json:"RegexMatchSet,omitempty"`
	ChangeToken   *string        `json:"ChangeToken,omitempty"`
}

// CreateRegexMatchSet creates an empty regex match set.
func (c *Client) CreateRegexMatchSet(ctx context.Context, params *CreateRegexMatchSetInput, optFns ...func(*Options)) (*CreateRegexMatchSetOutput, error) {
	out := &CreateRegexMatchSetOutput{}
	if err := c.invoke(ctx, ActionCreateRegexMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteRegexMatchSetInput struct {
	RegexMatchSetId *string `json:"RegexMatchSetId,omitempty"`
	ChangeToken     *string `json:"ChangeToken,omitempty"`
}

type DeleteRegexMatchSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// DeleteRegexMatchSet permanently deletes a regex match set. It must be empty
// and unreferenced.
func (c *Client) DeleteRegexMatchSet(ctx context.Context, params *DeleteRegexMatchSetInput, optFns ...func(*Options)) (*DeleteRegexMatchSetOutput, error) {
	out := &DeleteRegexMatchSetOutput{}
	if err := c.invoke(ctx, ActionDeleteRegexMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetRegexMatchSetInput struct {
	RegexMatchSetId *string `json:"RegexMatchSetId,omitempty"`
}

type GetRegexMatchSetOutput struct {
	RegexMatchSet *RegexMatchSet `json:"RegexMatchSet,omitempty"`
}

// GetRegexMatchSet returns the regex match set identified by RegexMatchSetId.
func (c *Client) GetRegexMatchSet(ctx context.Context, params *GetRegexMatchSetInput, optFns ...func(*Options)) (*GetRegexMatchSetOutput, error) {
	out := &GetRegexMatchSetOutput{}
	if err := c.invoke(ctx, ActionGetRegexMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListRegexMatchSetsInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListRegexMatchSetsOutput struct {
	NextMarker     *string                `json:"NextMarker,omitempty"`
	RegexMatchSets []RegexMatchSetSummary `json:"RegexMatchSets,omitempty"`
}

// ListRegexMatchSets returns a page of regex match set summaries.
func (c *Client) ListRegexMatchSets(ctx context.Context, params *ListRegexMatchSetsInput, optFns ...func(*Options)) (*ListRegexMatchSetsOutput, error) {
	out := &ListRegexMatchSetsOutput{}
	if err := c.invoke(ctx, ActionListRegexMatchSets, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateRegexMatchSetInput struct {
	RegexMatchSetId *string               `json:"RegexMatchSetId,omitempty"`
	ChangeToken     *string               `json:"ChangeToken,omitempty"`
	Updates         []RegexMatchSetUpdate `json:"Updates,omitempty"`
}

type UpdateRegexMatchSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// UpdateRegexMatchSet inserts or deletes entries in a regex match set.
func (c *Client) UpdateRegexMatchSet(ctx context.Context, params *UpdateRegexMatchSetInput, optFns ...func(*Options)) (*UpdateRegexMatchSetOutput, error) {
	out := &UpdateRegexMatchSetOutput{}
	if err := c.invoke(ctx, ActionUpdateRegexMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateRegexPatternSetInput struct {
	Name        *string `json:"Name,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type CreateRegexPatternSetOutput struct {
	RegexPatternSet *RegexPatternSet `json:"RegexPatternSet,omitempty"`
	ChangeToken     *string          `json:"ChangeToken,omitempty"`
}

// CreateRegexPatternSet creates an empty regex pattern set.
func (c *Client) CreateRegexPatternSet(ctx context.Context, params *CreateRegexPatternSetInput, optFns ...func(*Options)) (*CreateRegexPatternSetOutput, error) {
	out := &CreateRegexPatternSetOutput{}
	if err := c.invoke(ctx, ActionCreateRegexPatternSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteRegexPatternSetInput struct {
	RegexPatternSetId *string `json:"RegexPatternSetId,omitempty"`
	ChangeToken       *string `json:"ChangeToken,omitempty"`
}

type DeleteRegexPatternSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// DeleteRegexPatternSet permanently deletes a regex pattern set. It must be
// empty and unreferenced.
func (c *Client) DeleteRegexPatternSet(ctx context.Context, params *DeleteRegexPatternSetInput, optFns ...func(*Options)) (*DeleteRegexPatternSetOutput, error) {
	out := &DeleteRegexPatternSetOutput{}
	if err := c.invoke(ctx, ActionDeleteRegexPatternSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetRegexPatternSetInput struct {
	RegexPatternSetId *string `json:"RegexPatternSetId,omitempty"`
}

type GetRegexPatternSetOutput struct {
	RegexPatternSet *RegexPatternSet `json:"RegexPatternSet,omitempty"`
}

// GetRegexPatternSet returns the regex pattern set identified by
// RegexPatternSetId.
func (c *Client) GetRegexPatternSet(ctx context.Context, params *GetRegexPatternSetInput, optFns ...func(*Options)) (*GetRegexPatternSetOutput, error) {
	out := &GetRegexPatternSetOutput{}
	if err := c.invoke(ctx, ActionGetRegexPatternSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListRegexPatternSetsInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListRegexPatternSetsOutput struct {
	NextMarker       *string                  `json:"NextMarker,omitempty"`
	RegexPatternSets []RegexPatternSetSummary `json:"RegexPatternSets,omitempty"`
}

// ListRegexPatternSets returns a page of regex pattern set summaries.
func (c *Client) ListRegexPatternSets(ctx context.Context, params *ListRegexPatternSetsInput, optFns ...func(*Options)) (*ListRegexPatternSetsOutput, error) {
	out := &ListRegexPatternSetsOutput{}
	if err := c.invoke(ctx, ActionListRegexPatternSets, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateRegexPatternSetInput struct {
	RegexPatternSetId *string                 `json:"RegexPatternSetId,omitempty"`
	ChangeToken       *string                 `json:"ChangeToken,omitempty"`
	Updates           []RegexPatternSetUpdate `json:"Updates,omitempty"`
}

type UpdateRegexPatternSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// UpdateRegexPatternSet inserts or deletes entries in a regex pattern set.
func (c *Client) UpdateRegexPatternSet(ctx context.Context, params *UpdateRegexPatternSetInput, optFns ...func(*Options)) (*UpdateRegexPatternSetOutput, error) {
	out := &UpdateRegexPatternSetOutput{}
	if err := c.invoke(ctx, ActionUpdateRegexPatternSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateSizeConstraintSetInput struct {
	Name        *string `json:"Name,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type CreateSizeConstraintSetOutput struct {
	SizeConstraintSet *SizeConstraintSet `json:"SizeConstraintSet,omitempty"`
	ChangeToken       *string            `json:"ChangeToken,omitempty"`
}

// CreateSizeConstraintSet creates an empty size constraint set.
func (c *Client) CreateSizeConstraintSet(ctx context.Context, params *CreateSizeConstraintSetInput, optFns ...func(*Options)) (*CreateSizeConstraintSetOutput, error) {
	out := &CreateSizeConstraintSetOutput{}
	if err := c.invoke(ctx, ActionCreateSizeConstraintSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteSizeConstraintSetInput struct {
	SizeConstraintSetId *string `json:"SizeConstraintSetId,omitempty"`
	ChangeToken         *string `json:"ChangeToken,omitempty"`
}

type DeleteSizeConstraintSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// DeleteSizeConstraintSet permanently deletes a size constraint set. It must be
// empty and unreferenced.
func (c *Client) DeleteSizeConstraintSet(ctx context.Context, params *DeleteSizeConstraintSetInput, optFns ...func(*Options)) (*DeleteSizeConstraintSetOutput, error) {
	out := &DeleteSizeConstraintSetOutput{}
	if err := c.invoke(ctx, ActionDeleteSizeConstraintSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetSizeConstraintSetInput struct {
	SizeConstraintSetId *string `json:"SizeConstraintSetId,omitempty"`
}

type GetSizeConstraintSetOutput struct {
	SizeConstraintSet *SizeConstraintSet `json:"SizeConstraintSet,omitempty"`
}

// GetSizeConstraintSet returns the size constraint set identified by
// SizeConstraintSetId.
func (c *Client) GetSizeConstraintSet(ctx context.Context, params *GetSizeConstraintSetInput, optFns ...func(*Options)) (*GetSizeConstraintSetOutput, error) {
	out := &GetSizeConstraintSetOutput{}
	if err := c.invoke(ctx, ActionGetSizeConstraintSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListSizeConstraintSetsInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListSizeConstraintSetsOutput struct {
	NextMarker         *string                    `json:"NextMarker,omitempty"`
	SizeConstraintSets []SizeConstraintSetSummary `json:"SizeConstraintSets,omitempty"`
}

// ListSizeConstraintSets returns a page of size constraint set summaries.
func (c *Client) ListSizeConstraintSets(ctx context.Context, params *ListSizeConstraintSetsInput, optFns ...func(*Options)) (*ListSizeConstraintSetsOutput, error) {
	out := &ListSizeConstraintSetsOutput{}
	if err := c.invoke(ctx, ActionListSizeConstraintSets, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateSizeConstraintSetInput struct {
	SizeConstraintSetId *string                   `json:"SizeConstraintSetId,omitempty"`
	ChangeToken         *string                   `json:"ChangeToken,omitempty"`
	Updates             []SizeConstraintSetUpdate `json:"Updates,omitempty"`
}

type UpdateSizeConstraintSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// UpdateSizeConstraintSet inserts or deletes entries in a size constraint set.
func (c *Client) UpdateSizeConstraintSet(ctx context.Context, params *UpdateSizeConstraintSetInput, optFns ...func(*Options)) (*UpdateSizeConstraintSetOutput, error) {
	out := &UpdateSizeConstraintSetOutput{}
	if err := c.invoke(ctx, ActionUpdateSizeConstraintSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateSqlInjectionMatchSetInput struct {
	Name        *string `json:"Name,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type CreateSqlInjectionMatchSetOutput struct {
	SqlInjectionMatchSet *SqlInjectionMatchSet `json:"SqlInjectionMatchSet,omitempty"`
	ChangeToken          *string               `json:"ChangeToken,omitempty"`
}

// CreateSqlInjectionMatchSet creates an empty SQL injection match set.
func (c *Client) CreateSqlInjectionMatchSet(ctx context.Context, params *CreateSqlInjectionMatchSetInput, optFns ...func(*Options)) (*CreateSqlInjectionMatchSetOutput, error) {
	out := &CreateSqlInjectionMatchSetOutput{}
	if err := c.invoke(ctx, ActionCreateSqlInjectionMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteSqlInjectionMatchSetInput struct {
	SqlInjectionMatchSetId *string `json:"SqlInjectionMatchSetId,omitempty"`
	ChangeToken            *string `json:"ChangeToken,omitempty"`
}

type DeleteSqlInjectionMatchSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// DeleteSqlInjectionMatchSet permanently deletes a SQL injection match set. It
// must be empty and unreferenced.
func (c *Client) DeleteSqlInjectionMatchSet(ctx context.Context, params *DeleteSqlInjectionMatchSetInput, optFns ...func(*Options)) (*DeleteSqlInjectionMatchSetOutput, error) {
	out := &DeleteSqlInjectionMatchSetOutput{}
	if err := c.invoke(ctx, ActionDeleteSqlInjectionMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetSqlInjectionMatchSetInput struct {
	SqlInjectionMatchSetId *string `json:"SqlInjectionMatchSetId,omitempty"`
}

type GetSqlInjectionMatchSetOutput struct {
	SqlInjectionMatchSet *SqlInjectionMatchSet `json:"SqlInjectionMatchSet,omitempty"`
}

// GetSqlInjectionMatchSet returns the SQL injection match set identified by
// SqlInjectionMatchSetId.
func (c *Client) GetSqlInjectionMatchSet(ctx context.Context, params *GetSqlInjectionMatchSetInput, optFns ...func(*Options)) (*GetSqlInjectionMatchSetOutput, error) {
	out := &GetSqlInjectionMatchSetOutput{}
	if err := c.invoke(ctx, ActionGetSqlInjectionMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListSqlInjectionMatchSetsInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListSqlInjectionMatchSetsOutput struct {
	NextMarker            *string                       `json:"NextMarker,omitempty"`
	SqlInjectionMatchSets []SqlInjectionMatchSetSummary `json:"SqlInjectionMatchSets,omitempty"`
}

// ListSqlInjectionMatchSets returns a page of SQL injection match set
// summaries.
func (c *Client) ListSqlInjectionMatchSets(ctx context.Context, params *ListSqlInjectionMatchSetsInput, optFns ...func(*Options)) (*ListSqlInjectionMatchSetsOutput, error) {
	out := &ListSqlInjectionMatchSetsOutput{}
	if err := c.invoke(ctx, ActionListSqlInjectionMatchSets, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateSqlInjectionMatchSetInput struct {
	SqlInjectionMatchSetId *string                      `json:"SqlInjectionMatchSetId,omitempty"`
	ChangeToken            *string                      `json:"ChangeToken,omitempty"`
	Updates                []SqlInjectionMatchSetUpdate `json:"Updates,omitempty"`
}

type UpdateSqlInjectionMatchSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// UpdateSqlInjectionMatchSet inserts or deletes entries in a SQL injection
// match set.
func (c *Client) UpdateSqlInjectionMatchSet(ctx context.Context, params *UpdateSqlInjectionMatchSetInput, optFns ...func(*Options)) (*UpdateSqlInjectionMatchSetOutput, error) {
	out := &UpdateSqlInjectionMatchSetOutput{}
	if err := c.invoke(ctx, ActionUpdateSqlInjectionMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type CreateXssMatchSetInput struct {
	Name        *string `json:"Name,omitempty"`
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

type CreateXssMatchSetOutput struct {
	XssMatchSet *XssMatchSet `json:"XssMatchSet,omitempty"`
	ChangeToken *string      `json:"ChangeToken,omitempty"`
}

// CreateXssMatchSet creates an empty cross-site scripting match set.
func (c *Client) CreateXssMatchSet(ctx context.Context, params *CreateXssMatchSetInput, optFns ...func(*Options)) (*CreateXssMatchSetOutput, error) {
	out := &CreateXssMatchSetOutput{}
	if err := c.invoke(ctx, ActionCreateXssMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type DeleteXssMatchSetInput struct {
	XssMatchSetId *string `json:"XssMatchSetId,omitempty"`
	ChangeToken   *string `json:"ChangeToken,omitempty"`
}

type DeleteXssMatchSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// DeleteXssMatchSet permanently deletes a cross-site scripting match set. It
// must be empty and unreferenced.
func (c *Client) DeleteXssMatchSet(ctx context.Context, params *DeleteXssMatchSetInput, optFns ...func(*Options)) (*DeleteXssMatchSetOutput, error) {
	out := &DeleteXssMatchSetOutput{}
	if err := c.invoke(ctx, ActionDeleteXssMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type GetXssMatchSetInput struct {
	XssMatchSetId *string `json:"XssMatchSetId,omitempty"`
}

type GetXssMatchSetOutput struct {
	XssMatchSet *XssMatchSet `json:"XssMatchSet,omitempty"`
}

// GetXssMatchSet returns the cross-site scripting match set identified by
// XssMatchSetId.
func (c *Client) GetXssMatchSet(ctx context.Context, params *GetXssMatchSetInput, optFns ...func(*Options)) (*GetXssMatchSetOutput, error) {
	out := &GetXssMatchSetOutput{}
	if err := c.invoke(ctx, ActionGetXssMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type ListXssMatchSetsInput struct {
	NextMarker *string `json:"NextMarker,omitempty"`
	Limit      *int32  `json:"Limit,omitempty"`
}

type ListXssMatchSetsOutput struct {
	NextMarker   *string              `json:"NextMarker,omitempty"`
	XssMatchSets []XssMatchSetSummary `json:"XssMatchSets,omitempty"`
}

// ListXssMatchSets returns a page of cross-site scripting match set summaries.
func (c *Client) ListXssMatchSets(ctx context.Context, params *ListXssMatchSetsInput, optFns ...func(*Options)) (*ListXssMatchSetsOutput, error) {
	out := &ListXssMatchSetsOutput{}
	if err := c.invoke(ctx, ActionListXssMatchSets, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}

type UpdateXssMatchSetInput struct {
	XssMatchSetId *string             `json:"XssMatchSetId,omitempty"`
	ChangeToken   *string             `json:"ChangeToken,omitempty"`
	Updates       []XssMatchSetUpdate `json:"Updates,omitempty"`
}

type UpdateXssMatchSetOutput struct {
	ChangeToken *string `json:"ChangeToken,omitempty"`
}

// UpdateXssMatchSet inserts or deletes entries in a cross-site scripting match
// set.
func (c *Client) UpdateXssMatchSet(ctx context.Context, params *UpdateXssMatchSetInput, optFns ...func(*Options)) (*UpdateXssMatchSetOutput, error) {
	out := &UpdateXssMatchSetOutput{}
	if err := c.invoke(ctx, ActionUpdateXssMatchSet, params, out, optFns); err != nil {
		return nil, err
	}
	return out, nil
}
