package wafregional

// Action names as sent in X-Amz-Target.
const (
	ActionAssociateWebACL               = "AssociateWebACL"
	ActionCreateByteMatchSet            = "CreateByteMatchSet"
	ActionCreateGeoMatchSet             = "CreateGeoMatchSet"
	ActionCreateIPSet                   = "CreateIPSet"
	ActionCreateRateBasedRule           = "CreateRateBasedRule"
	ActionCreateRegexMatchSet           = "CreateRegexMatchSet"
	ActionCreateRegexPatternSet         = "CreateRegexPatternSet"
	ActionCreateRule                    = "CreateRule"
	ActionCreateRuleGroup               = "CreateRuleGroup"
	ActionCreateSizeConstraintSet       = "CreateSizeConstraintSet"
	ActionCreateSqlInjectionMatchSet    = "CreateSqlInjectionMatchSet"
	ActionCreateWebACL                  = "CreateWebACL"
	ActionCreateWebACLMigrationStack    = "CreateWebACLMigrationStack"
	ActionCreateXssMatchSet             = "CreateXssMatchSet"
	ActionDeleteByteMatchSet            = "DeleteByteMatchSet"
	ActionDeleteGeoMatchSet             = "DeleteGeoMatchSet"
	ActionDeleteIPSet                   = "DeleteIPSet"
	ActionDeleteLoggingConfiguration    = "DeleteLoggingConfiguration"
	ActionDeletePermissionPolicy        = "DeletePermissionPolicy"
	ActionDeleteRateBasedRule           = "DeleteRateBasedRule"
	ActionDeleteRegexMatchSet           = "DeleteRegexMatchSet"
	ActionDeleteRegexPatternSet         = "DeleteRegexPatternSet"
	ActionDeleteRule                    = "DeleteRule"
	ActionDeleteRuleGroup               = "DeleteRuleGroup"
	ActionDeleteSizeConstraintSet       = "DeleteSizeConstraintSet"
	ActionDeleteSqlInjectionMatchSet    = "DeleteSqlInjectionMatchSet"
	ActionDeleteWebACL                  = "DeleteWebACL"
	ActionDeleteXssMatchSet             = "DeleteXssMatchSet"
	ActionDisassociateWebACL            = "DisassociateWebACL"
	ActionGetByteMatchSet               = "GetByteMatchSet"
	ActionGetChangeToken                = "GetChangeToken"
	ActionGetChangeTokenStatus          = "GetChangeTokenStatus"
	ActionGetGeoMatchSet                = "GetGeoMatchSet"
	ActionGetIPSet                      = "GetIPSet"
	ActionGetLoggingConfiguration       = "GetLoggingConfiguration"
	ActionGetPermissionPolicy           = "GetPermissionPolicy"
	ActionGetRateBasedRule              = "GetRateBasedRule"
	ActionGetRateBasedRuleManagedKeys   = "GetRateBasedRuleManagedKeys"
	ActionGetRegexMatchSet              = "GetRegexMatchSet"
	ActionGetRegexPatternSet            = "GetRegexPatternSet"
	ActionGetRule                       = "GetRule"
	ActionGetRuleGroup                  = "GetRuleGroup"
	ActionGetSampledRequests            = "GetSampledRequests"
	ActionGetSizeConstraintSet          = "GetSizeConstraintSet"
	ActionGetSqlInjectionMatchSet       = "GetSqlInjectionMatchSet"
	ActionGetWebACL                     = "GetWebACL"
	ActionGetWebACLForResource          = "GetWebACLForResource"
	ActionGetXssMatchSet                = "GetXssMatchSet"
	ActionListActivatedRulesInRuleGroup = "ListActivatedRulesInRuleGroup"
	ActionListByteMatchSets             = "ListByteMatchSets"
	ActionListGeoMatchSets              = "ListGeoMatchSets"
	ActionListIPSets                    = "ListIPSets"
	ActionListLoggingConfigurations     = "ListLoggingConfigurations"
	ActionListRateBasedRules            = "ListRateBasedRules"
	ActionListRegexMatchSets            = "ListRegexMatchSets"
	ActionListRegexPatternSets          = "ListRegexPatternSets"
	ActionListResourcesForWebACL        = "ListResourcesForWebACL"
	ActionListRuleGroups                = "ListRuleGroups"
	ActionListRules                     = "ListRules"
	ActionListSizeConstraintSets        = "ListSizeConstraintSets"
	ActionListSqlInjectionMatchSets     = "ListSqlInjectionMatchSets"
	ActionListSubscribedRuleGroups      = "ListSubscribedRuleGroups"
	ActionListTagsForResource           = "ListTagsForResource"
	ActionListWebACLs                   = "ListWebACLs"
	ActionListXssMatchSets              = "ListXssMatchSets"
	ActionPutLoggingConfiguration       = "PutLoggingConfiguration"
	ActionPutPermissionPolicy           = "PutPermissionPolicy"
	ActionTagResource                   = "TagResource"
	ActionUntagResource                 = "UntagResource"
	ActionUpdateByteMatchSet            = "UpdateByteMatchSet"
	ActionUpdateGeoMatchSet             = "UpdateGeoMatchSet"
	ActionUpdateIPSet                   = "UpdateIPSet"
	ActionUpdateRateBasedRule           = "UpdateRateBasedRule"
	ActionUpdateRegexMatchSet           = "UpdateRegexMatchSet"
	ActionUpdateRegexPatternSet         = "UpdateRegexPatternSet"
	ActionUpdateRule                    = "UpdateRule"
	ActionUpdateRuleGroup               = "UpdateRuleGroup"
	ActionUpdateSizeConstraintSet       = "UpdateSizeConstraintSet"
	ActionUpdateSqlInjectionMatchSet    = "UpdateSqlInjectionMatchSet"
	ActionUpdateWebACL                  = "UpdateWebACL"
	ActionUpdateXssMatchSet             = "UpdateXssMatchSet"
)

// Actions lists every API action the client implements.
var Actions = []string{
	ActionAssociateWebACL,
	ActionCreateByteMatchSet,
	ActionCreateGeoMatchSet,
	ActionCreateIPSet,
	ActionCreateRateBasedRule,
	ActionCreateRegexMatchSet,
	ActionCreateRegexPatternSet,
	ActionCreateRule,
	ActionCreateRuleGroup,
	ActionCreateSizeConstraintSet,
	ActionCreateSqlInjectionMatchSet,
	ActionCreateWebACL,
	ActionCreateWebACLMigrationStack,
	ActionCreateXssMatchSet,
	ActionDeleteByteMatchSet,
	ActionDeleteGeoMatchSet,
	ActionDeleteIPSet,
	ActionDeleteLoggingConfiguration,
	ActionDeletePermissionPolicy,
	ActionDeleteRateBasedRule,
	ActionDeleteRegexMatchSet,
	ActionDeleteRegexPatternSet,
	ActionDeleteRule,
	ActionDeleteRuleGroup,
	ActionDeleteSizeConstraintSet,
	ActionDeleteSqlInjectionMatchSet,
	ActionDeleteWebACL,
	ActionDeleteXssMatchSet,
	ActionDisassociateWebACL,
	ActionGetByteMatchSet,
	ActionGetChangeToken,
	ActionGetChangeTokenStatus,
	ActionGetGeoMatchSet,
	ActionGetIPSet,
	ActionGetLoggingConfiguration,
	ActionGetPermissionPolicy,
	ActionGetRateBasedRule,
	ActionGetRateBasedRuleManagedKeys,
	ActionGetRegexMatchSet,
	ActionGetRegexPatternSet,
	ActionGetRule,
	ActionGetRuleGroup,
	ActionGetSampledRequests,
	ActionGetSizeConstraintSet,
	ActionGetSqlInjectionMatchSet,
	ActionGetWebACL,
	ActionGetWebACLForResource,
	ActionGetXssMatchSet,
	ActionListActivatedRulesInRuleGroup,
	ActionListByteMatchSets,
	ActionListGeoMatchSets,
	ActionListIPSets,
	ActionListLoggingConfigurations,
	ActionListRateBasedRules,
	ActionListRegexMatchSets,
	ActionListRegexPatternSets,
	ActionListResourcesForWebACL,
	ActionListRuleGroups,
	ActionListRules,
	ActionListSizeConstraintSets,
	ActionListSqlInjectionMatchSets,
	ActionListSubscribedRuleGroups,
	ActionListTagsForResource,
	ActionListWebACLs,
	ActionListXssMatchSets,
	ActionPutLoggingConfiguration,
	ActionPutPermissionPolicy,
	ActionTagResource,
	ActionUntagResource,
	ActionUpdateByteMatchSet,
	ActionUpdateGeoMatchSet,
	ActionUpdateIPSet,
	ActionUpdateRateBasedRule,
	ActionUpdateRegexMatchSet,
	ActionUpdateRegexPatternSet,
	ActionUpdateRule,
	ActionUpdateRuleGroup,
	ActionUpdateSizeConstraintSet,
	ActionUpdateSqlInjectionMatchSet,
	ActionUpdateWebACL,
	ActionUpdateXssMatchSet,
}

// changeTokenActions are the mutating actions that require a ChangeToken.
var changeTokenActions = map[string]bool{
	ActionCreateByteMatchSet:         true,
	ActionCreateGeoMatchSet:          true,
	ActionCreateIPSet:                true,
	ActionCreateRateBasedRule:        true,
	ActionCreateRegexMatchSet:        true,
	ActionCreateRegexPatternSet:      true,
	ActionCreateRule:                 true,
	ActionCreateRuleGroup:            true,
	ActionCreateSizeConstraintSet:    true,
	ActionCreateSqlInjectionMatchSet: true,
	ActionCreateWebACL:               true,
	ActionCreateXssMatchSet:          true,
	ActionDeleteByteMatchSet:         true,
	ActionDeleteGeoMatchSet:          true,
	ActionDeleteIPSet:                true,
	ActionDeleteRateBasedRule:        true,
	ActionDeleteRegexMatchSet:        true,
	ActionDeleteRegexPatternSet:      true,
	ActionDeleteRule:                 true,
	ActionDeleteRuleGroup:            true,
	ActionDeleteSizeConstraintSet:    true,
	ActionDeleteSqlInjectionMatchSet: true,
	ActionDeleteWebACL:               true,
	ActionDeleteXssMatchSet:          true,
	ActionUpdateByteMatchSet:         true,
	ActionUpdateGeoMatchSet:          true,
	ActionUpdateIPSet:                true,
	ActionUpdateRateBasedRule:        true,
	ActionUpdateRegexMatchSet:        true,
	ActionUpdateRegexPatternSet:      true,
	ActionUpdateRule:                 true,
	ActionUpdateRuleGroup:            true,
	ActionUpdateSizeConstraintSet:    true,
	ActionUpdateSqlInjectionMatchSet: true,
	ActionUpdateWebACL:               true,
	ActionUpdateXssMatchSet:          true,
}

// RequiresChangeToken reports whether action is a mutating action whose
// request carries a ChangeToken.
func RequiresChangeToken(action string) bool {
	return changeTokenActions[action]
}

// IsAction reports whether action names an API action of this service.
func IsAction(action string) bool {
	for _, a := range Actions {
		if a == action {
			return true
		}
	}
	return false
}
