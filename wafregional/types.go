package wafregional

// Every member is optional on the wire: a nil pointer or nil slice is omitted
// from the JSON object, and a member absent from a response stays nil.

type WafAction struct {
	Type WafActionType `json:"Type,omitempty"`
}

type WafOverrideAction struct {
	Type WafOverrideActionType `json:"Type,omitempty"`
}

type ExcludedRule struct {
	RuleId *string `json:"RuleId,omitempty"`
}

// ActivatedRule places a Rule, RateBasedRule or RuleGroup inside a WebACL or
// RuleGroup along with its priority and action.
type ActivatedRule struct {
	Priority       *int32             `json:"Priority,omitempty"`
	RuleId         *string            `json:"RuleId,omitempty"`
	Action         *WafAction         `json:"Action,omitempty"`
	OverrideAction *WafOverrideAction `json:"OverrideAction,omitempty"`
	Type           WafRuleType        `json:"Type,omitempty"`
	ExcludedRules  []ExcludedRule     `json:"ExcludedRules,omitempty"`
}

type FieldToMatch struct {
	Type MatchFieldType `json:"Type,omitempty"`
	Data *string        `json:"Data,omitempty"`
}

type Predicate struct {
	Negated *bool         `json:"Negated,omitempty"`
	Type    PredicateType `json:"Type,omitempty"`
	DataId  *string       `json:"DataId,omitempty"`
}

type Tag struct {
	Key   *string `json:"Key,omitempty"`
	Value *string `json:"Value,omitempty"`
}

type TagInfoForResource struct {
	ResourceARN *string `json:"ResourceARN,omitempty"`
	TagList     []Tag   `json:"TagList,omitempty"`
}

type WebACL struct {
	WebACLId      *string         `json:"WebACLId,omitempty"`
	Name          *string         `json:"Name,omitempty"`
	MetricName    *string         `json:"MetricName,omitempty"`
	DefaultAction *WafAction      `json:"DefaultAction,omitempty"`
	Rules         []ActivatedRule `json:"Rules,omitempty"`
	WebACLArn     *string         `json:"WebACLArn,omitempty"`
}

type WebACLSummary struct {
	WebACLId *string `json:"WebACLId,omitempty"`
	Name     *string `json:"Name,omitempty"`
}

type WebACLUpdate struct {
	Action        ChangeAction   `json:"Action,omitempty"`
	ActivatedRule *ActivatedRule `json:"ActivatedRule,omitempty"`
}

type Rule struct {
	RuleId     *string     `json:"RuleId,omitempty"`
	Name       *string     `json:"Name,omitempty"`
	MetricName *string     `json:"MetricName,omitempty"`
	Predicates []Predicate `json:"Predicates,omitempty"`
}

type RuleSummary struct {
	RuleId *string `json:"RuleId,omitempty"`
	Name   *string `json:"Name,omitempty"`
}

type RuleUpdate struct {
	Action    ChangeAction `json:"Action,omitempty"`
	Predicate *Predicate   `json:"Predicate,omitempty"`
}

type RateBasedRule struct {
	RuleId          *string     `json:"RuleId,omitempty"`
	Name            *string     `json:"Name,omitempty"`
	MetricName      *string     `json:"MetricName,omitempty"`
	MatchPredicates []Predicate `json:"MatchPredicates,omitempty"`
	RateKey         RateKey     `json:"RateKey,omitempty"`
	RateLimit       *int64      `json:"RateLimit,omitempty"`
}

type RuleGroup struct {
	RuleGroupId *string `json:"RuleGroupId,omitempty"`
	Name        *string `json:"Name,omitempty"`
	MetricName  *string `json:"MetricName,omitempty"`
}

type RuleGroupSummary struct {
	RuleGroupId *string `json:"RuleGroupId,omitempty"`
	Name        *string `json:"Name,omitempty"`
}

type RuleGroupUpdate struct {
	Action        ChangeAction   `json:"Action,omitempty"`
	ActivatedRule *ActivatedRule `json:"ActivatedRule,omitempty"`
}

type SubscribedRuleGroupSummary struct {
	RuleGroupId *string `json:"RuleGroupId,omitempty"`
	Name        *string `json:"Name,omitempty"`
	MetricName  *string `json:"MetricName,omitempty"`
}

// ByteMatchTuple.TargetString travels base64-encoded.
type ByteMatchTuple struct {
	FieldToMatch         *FieldToMatch        `json:"FieldToMatch,omitempty"`
	TargetString         []byte               `json:"TargetString,omitempty"`
	TextTransformation   TextTransformation   `json:"TextTransformation,omitempty"`
	PositionalConstraint PositionalConstraint `json:"PositionalConstraint,omitempty"`
}

type ByteMatchSet struct {
	ByteMatchSetId  *string          `json:"ByteMatchSetId,omitempty"`
	Name            *string          `json:"Name,omitempty"`
	ByteMatchTuples []ByteMatchTuple `json:"ByteMatchTuples,omitempty"`
}

type ByteMatchSetSummary struct {
	ByteMatchSetId *string `json:"ByteMatchSetId,omitempty"`
	Name           *string `json:"Name,omitempty"`
}

type ByteMatchSetUpdate struct {
	Action         ChangeAction    `json:"Action,omitempty"`
	ByteMatchTuple *ByteMatchTuple `json:"ByteMatchTuple,omitempty"`
}

type GeoMatchConstraint struct {
	Type  GeoMatchConstraintType  `json:"Type,omitempty"`
	Value GeoMatchConstraintValue `json:"Value,omitempty"`
}

type GeoMatchSet struct {
	GeoMatchSetId       *string              `json:"GeoMatchSetId,omitempty"`
	Name                *string              `json:"Name,omitempty"`
	GeoMatchConstraints []GeoMatchConstraint `json:"GeoMatchConstraints,omitempty"`
}

type GeoMatchSetSummary struct {
	GeoMatchSetId *string `json:"GeoMatchSetId,omitempty"`
	Name          *string `json:"Name,omitempty"`
}

type GeoMatchSetUpdate struct {
	Action             ChangeAction        `json:"Action,omitempty"`
	GeoMatchConstraint *GeoMatchConstraint `json:"GeoMatchConstraint,omitempty"`
}

// IPSetDescriptor.Value is a CIDR range, for example "192.0.2.44/32".
type IPSetDescriptor struct {
	Type  IPSetDescriptorType `json:"Type,omitempty"`
	Value *string             `json:"Value,omitempty"`
}

type IPSet struct {
	IPSetId          *string           `json:"IPSetId,omitempty"`
	Name             *string           `json:"Name,omitempty"`
	IPSetDescriptors []IPSetDescriptor `json:"IPSetDescriptors,omitempty"`
}

type IPSetSummary struct {
	IPSetId *string `json:"IPSetId,omitempty"`
	Name    *string `json:"Name,omitempty"`
}

type IPSetUpdate struct {
	Action          ChangeAction     `json:"Action,omitempty"`
	IPSetDescriptor *IPSetDescriptor `json:"IPSetDescriptor,omitempty"`
}

type RegexMatchTuple struct {
	FieldToMatch       *FieldToMatch      `json:"FieldToMatch,omitempty"`
	TextTransformation TextTransformation `json:"TextTransformation,omitempty"`
	RegexPatternSetId  *string            `json:"RegexPatternSetId,omitempty"`
}

type RegexMatchSet struct {
	RegexMatchSetId  *string           `json:"RegexMatchSetId,omitempty"`
	Name             *string           `json:"Name,omitempty"`
	RegexMatchTuples []RegexMatchTuple `json:"RegexMatchTuples,omitempty"`
}

type RegexMatchSetSummary struct {
	RegexMatchSetId *string `json:"RegexMatchSetId,omitempty"`
	Name            *string `json:"Name,omitempty"`
}

type RegexMatchSetUpdate struct {
	Action          ChangeAction     `json:"Action,omitempty"`
	RegexMatchTuple *RegexMatchTuple `json:"RegexMatchTuple,omitempty"`
}

type RegexPatternSet struct {
	RegexPatternSetId   *string  `json:"RegexPatternSetId,omitempty"`
	Name                *string  `json:"Name,omitempty"`
	RegexPatternStrings []string `json:"RegexPatternStrings,omitempty"`
}

type RegexPatternSetSummary struct {
	RegexPatternSetId *string `json:"RegexPatternSetId,omitempty"`
	Name              *string `json:"Name,omitempty"`
}

type RegexPatternSetUpdate struct {
	Action             ChangeAction `json:"Action,omitempty"`
	RegexPatternString *string      `json:"RegexPatternString,omitempty"`
}

type SizeConstraint struct {
	FieldToMatch       *FieldToMatch      `json:"FieldToMatch,omitempty"`
	TextTransformation TextTransformation `json:"TextTransformation,omitempty"`
	ComparisonOperator ComparisonOperator `json:"ComparisonOperator,omitempty"`
	Size               *int64             `json:"Size,omitempty"`
}

type SizeConstraintSet struct {
	SizeConstraintSetId *string          `json:"SizeConstraintSetId,omitempty"`
	Name                *string          `json:"Name,omitempty"`
	SizeConstraints     []SizeConstraint `json:"SizeConstraints,omitempty"`
}

type SizeConstraintSetSummary struct {
	SizeConstraintSetId *string `json:"SizeConstraintSetId,omitempty"`
	Name                *string `json:"Name,omitempty"`
}

type SizeConstraintSetUpdate struct {
	Action         ChangeAction    `json:"Action,omitempty"`
	SizeConstraint *SizeConstraint `json:"SizeConstraint,omitempty"`
}

type SqlInjectionMatchTuple struct {
	FieldToMatch       *FieldToMatch      `json:"FieldToMatch,omitempty"`
	TextTransformation TextTransformation `json:"TextTransformation,omitempty"`
}

type SqlInjectionMatchSet struct {
	SqlInjectionMatchSetId  *string                  `json:"SqlInjectionMatchSetId,omitempty"`
	Name                    *string                  `json:"Name,omitempty"`
	SqlInjectionMatchTuples []SqlInjectionMatchTuple `json:"SqlInjectionMatchTuples,omitempty"`
}

type SqlInjectionMatchSetSummary struct {
	SqlInjectionMatchSetId *string `json:"SqlInjectionMatchSetId,omitempty"`
	Name                   *string `json:"Name,omitempty"`
}

type SqlInjectionMatchSetUpdate struct {
	Action                 ChangeAction            `json:"Action,omitempty"`
	SqlInjectionMatchTuple *SqlInjectionMatchTuple `json:"SqlInjectionMatchTuple,omitempty"`
}

type XssMatchTuple struct {
	FieldToMatch       *FieldToMatch      `json:"FieldToMatch,omitempty"`
	TextTransformation TextTransformation `json:"TextTransformation,omitempty"`
}

type XssMatchSet struct {
	XssMatchSetId  *string         `json:"XssMatchSetId,omitempty"`
	Name           *string         `json:"Name,omitempty"`
	XssMatchTuples []XssMatchTuple `json:"XssMatchTuples,omitempty"`
}

type XssMatchSetSummary struct {
	XssMatchSetId *string `json:"XssMatchSetId,omitempty"`
	Name          *string `json:"Name,omitempty"`
}

type XssMatchSetUpdate struct {
	Action        ChangeAction   `json:"Action,omitempty"`
	XssMatchTuple *XssMatchTuple `json:"XssMatchTuple,omitempty"`
}

type LoggingConfiguration struct {
	ResourceArn           *string        `json:"ResourceArn,omitempty"`
	LogDestinationConfigs []string       `json:"LogDestinationConfigs,omitempty"`
	RedactedFields        []FieldToMatch `json:"RedactedFields,omitempty"`
}

type HTTPHeader struct {
	Name  *string `json:"Name,omitempty"`
	Value *string `json:"Value,omitempty"`
}

type HTTPRequest struct {
	ClientIP    *string      `json:"ClientIP,omitempty"`
	Country     *string      `json:"Country,omitempty"`
	URI         *string      `json:"URI,omitempty"`
	Method      *string      `json:"Method,omitempty"`
	HTTPVersion *string      `json:"HTTPVersion,omitempty"`
	Headers     []HTTPHeader `json:"Headers,omitempty"`
}

type SampledHTTPRequest struct {
	Request             *HTTPRequest `json:"Request,omitempty"`
	Weight              *int64       `json:"Weight,omitempty"`
	Timestamp           *Timestamp   `json:"Timestamp,omitempty"`
	Action              *string      `json:"Action,omitempty"`
	RuleWithinRuleGroup *string      `json:"RuleWithinRuleGroup,omitempty"`
}

// TimeWindow bounds GetSampledRequests; AWS WAF only keeps the last three hours.
type TimeWindow struct {
	StartTime *Timestamp `json:"StartTime,omitempty"`
	EndTime   *Timestamp `json:"EndTime,omitempty"`
}
