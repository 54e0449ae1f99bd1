package wafregional

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/smithy-go"
	json "github.com/goccy/go-json"
)

// Error codes returned by AWS WAF Regional.
const (
	CodeBadRequest                = "WAFBadRequestException"
	CodeDisallowedName            = "WAFDisallowedNameException"
	CodeEntityMigration           = "WAFEntityMigrationException"
	CodeInternalError             = "WAFInternalErrorException"
	CodeInvalidAccount            = "WAFInvalidAccountException"
	CodeInvalidOperation          = "WAFInvalidOperationException"
	CodeInvalidParameter          = "WAFInvalidParameterException"
	CodeInvalidPermissionPolicy   = "WAFInvalidPermissionPolicyException"
	CodeInvalidRegexPattern       = "WAFInvalidRegexPatternException"
	CodeLimitsExceeded            = "WAFLimitsExceededException"
	CodeNonEmptyEntity            = "WAFNonEmptyEntityException"
	CodeNonexistentContainer      = "WAFNonexistentContainerException"
	CodeNonexistentItem           = "WAFNonexistentItemException"
	CodeReferencedItem            = "WAFReferencedItemException"
	CodeServiceLinkedRoleError    = "WAFServiceLinkedRoleErrorException"
	CodeStaleData                 = "WAFStaleDataException"
	CodeSubscriptionNotFound      = "WAFSubscriptionNotFoundException"
	CodeTagOperation              = "WAFTagOperationException"
	CodeTagOperationInternalError = "WAFTagOperationInternalErrorException"
	CodeUnavailableEntity         = "WAFUnavailableEntityException"
)

// Sentinels for errors.Is. Any *APIError carrying the same code matches.
var (
	ErrBadRequest                = &APIError{Code: CodeBadRequest}
	ErrDisallowedName            = &APIError{Code: CodeDisallowedName}
	ErrEntityMigration           = &APIError{Code: CodeEntityMigration}
	ErrInternalError             = &APIError{Code: CodeInternalError}
	ErrInvalidAccount            = &APIError{Code: CodeInvalidAccount}
	ErrInvalidOperation          = &APIError{Code: CodeInvalidOperation}
	ErrInvalidParameter          = &APIError{Code: CodeInvalidParameter}
	ErrInvalidPermissionPolicy   = &APIError{Code: CodeInvalidPermissionPolicy}
	ErrInvalidRegexPattern       = &APIError{Code: CodeInvalidRegexPattern}
	ErrLimitsExceeded            = &APIError{Code: CodeLimitsExceeded}
	ErrNonEmptyEntity            = &APIError{Code: CodeNonEmptyEntity}
	ErrNonexistentContainer      = &APIError{Code: CodeNonexistentContainer}
	ErrNonexistentItem           = &APIError{Code: CodeNonexistentItem}
	ErrReferencedItem            = &APIError{Code: CodeReferencedItem}
	ErrServiceLinkedRoleError    = &APIError{Code: CodeServiceLinkedRoleError}
	ErrStaleData                 = &APIError{Code: CodeStaleData}
	ErrSubscriptionNotFound      = &APIError{Code: CodeSubscriptionNotFound}
	ErrTagOperation              = &APIError{Code: CodeTagOperation}
	ErrTagOperationInternalError = &APIError{Code: CodeTagOperationInternalError}
	ErrUnavailableEntity         = &APIError{Code: CodeUnavailableEntity}
)

var knownErrors = map[string]*APIError{
	CodeBadRequest:                ErrBadRequest,
	CodeDisallowedName:            ErrDisallowedName,
	CodeEntityMigration:           ErrEntityMigration,
	CodeInternalError:             ErrInternalError,
	CodeInvalidAccount:            ErrInvalidAccount,
	CodeInvalidOperation:          ErrInvalidOperation,
	CodeInvalidParameter:          ErrInvalidParameter,
	CodeInvalidPermissionPolicy:   ErrInvalidPermissionPolicy,
	CodeInvalidRegexPattern:       ErrInvalidRegexPattern,
	CodeLimitsExceeded:            ErrLimitsExceeded,
	CodeNonEmptyEntity:            ErrNonEmptyEntity,
	CodeNonexistentContainer:      ErrNonexistentContainer,
	CodeNonexistentItem:           ErrNonexistentItem,
	CodeReferencedItem:            ErrReferencedItem,
	CodeServiceLinkedRoleError:    ErrServiceLinkedRoleError,
	CodeStaleData:                 ErrStaleData,
	CodeSubscriptionNotFound:      ErrSubscriptionNotFound,
	CodeTagOperation:              ErrTagOperation,
	CodeTagOperationInternalError: ErrTagOperationInternalError,
	CodeUnavailableEntity:         ErrUnavailableEntity,
}

// IsKnownErrorCode reports whether code is one of the modeled WAF error codes.
func IsKnownErrorCode(code string) bool {
	_, ok := knownErrors[code]
	return ok
}

// APIError is the error returned for any non-2xx response.
type APIError struct {
	Code       string
	Message    string
	StatusCode int
	RequestID  string

	// Set for WAFInvalidParameterException.
	Field     string
	Parameter string
	Reason    string

	// Set for WAFEntityMigrationException.
	MigrationErrorType   MigrationErrorType
	MigrationErrorReason string
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "api error %s: %s", e.Code, e.Message)
	if e.Field != "" || e.Parameter != "" {
		fmt.Fprintf(&b, " (field=%s parameter=%s reason=%s)", e.Field, e.Parameter, e.Reason)
	}
	if e.MigrationErrorType != "" {
		fmt.Fprintf(&b, " (migration=%s %s)", e.MigrationErrorType, e.MigrationErrorReason)
	}
	return b.String()
}

func (e *APIError) ErrorCode() string    { return e.Code }
func (e *APIError) ErrorMessage() string { return e.Message }
func (e *APIError) HTTPStatusCode() int  { return e.StatusCode }

func (e *APIError) ErrorFault() smithy.ErrorFault {
	if e.StatusCode >= 500 || e.Code == CodeInternalError || e.Code == CodeTagOperationInternalError {
		return smithy.FaultServer
	}
	return smithy.FaultClient
}

// Is matches any *APIError with the same code, so errors.Is(err, ErrStaleData)
// works on errors decoded from the wire.
func (e *APIError) Is(target error) bool {
	t, ok := target.(*APIError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

var _ smithy.APIError = (*APIError)(nil)

// errorEnvelope holds the members of an error body. Member names vary in case
// between front ends ("message" and "Message"), so the body is read as a map.
type errorEnvelope map[string]json.RawMessage

func (e errorEnvelope) str(keys ...string) string {
	for _, k := range keys {
		raw, ok := e[k]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}

// decodeError builds an *APIError from a failed response. The code is taken
// from X-Amzn-ErrorType when present, else from the body's __type or code.
func decodeError(resp *http.Response, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		RequestID:  requestID(resp.Header),
	}

	env := errorEnvelope{}
	if len(bytes.TrimSpace(body)) > 0 {
		// A body that is not JSON still leaves the status code to report.
		_ = json.Unmarshal(body, &env)
	}

	code := resp.Header.Get("X-Amzn-ErrorType")
	if code == "" {
		code = env.str("__type", "code", "Code")
	}
	apiErr.Code = sanitizeErrorCode(code)
	if apiErr.Code == "" {
		apiErr.Code = "UnknownError"
	}

	apiErr.Message = env.str("message", "Message", "errorMessage")
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}

	apiErr.Field = env.str("field", "Field")
	apiErr.Parameter = env.str("parameter", "Parameter")
	apiErr.Reason = env.str("reason", "Reason")
	apiErr.MigrationErrorType = MigrationErrorType(env.str("MigrationErrorType"))
	apiErr.MigrationErrorReason = env.str("MigrationErrorReason")
	return apiErr
}

// sanitizeErrorCode strips the "namespace#" prefix and ":uri" suffix that
// different front ends attach to error codes.
func sanitizeErrorCode(code string) string {
	code = strings.TrimSpace(code)
	if i := strings.Index(code, ":"); i >= 0 {
		code = code[:i]
	}
	if i := strings.LastIndex(code, "#"); i >= 0 {
		code = code[i+1:]
	}
	return code
}

func requestID(h http.Header) string {
	if id := h.Get("X-Amzn-RequestId"); id != "" {
		return id
	}
	return h.Get("X-Amz-Request-Id")
}
