package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeValidation         ErrorCode = "COMMON_010"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeExternalService    ErrorCode = "COMMON_014"
)

// Dataset Module Error Codes
const (
	ErrCodeDatasetRead       ErrorCode = "DATA_001"
	ErrCodeDatasetEmpty      ErrorCode = "DATA_002"
	ErrCodeMissingColumn     ErrorCode = "DATA_003"
	ErrCodeMalformedRow      ErrorCode = "DATA_004"
	ErrCodeMalformedValue    ErrorCode = "DATA_005"
	ErrCodeDatasetSourceKind ErrorCode = "DATA_006"
)

// Figure Module Error Codes
const (
	ErrCodeFigureOptions ErrorCode = "FIG_001"
	ErrCodeFigureBuild   ErrorCode = "FIG_002"
	ErrCodeSnapshot      ErrorCode = "FIG_003"
)

// Infrastructure Error Codes
const (
	ErrCodeConfigInvalid  ErrorCode = "CFG_001"
	ErrCodeConfigRead     ErrorCode = "CFG_002"
	ErrCodeConfigNotFound ErrorCode = "CFG_003"
	ErrCodeCacheMiss      ErrorCode = "CACHE_001"
	ErrCodeStorageFailure ErrorCode = "STORE_001"
	ErrCodeAssetNotFound  ErrorCode = "STORE_002"
)

// Aliases used at call sites.
const (
	CodeOK      = ErrorCode("OK")
	CodeUnknown = ErrorCode("UNKNOWN")

	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound

	CodeDatasetRead    = ErrCodeDatasetRead
	CodeDatasetEmpty   = ErrCodeDatasetEmpty
	CodeMissingColumn  = ErrCodeMissingColumn
	CodeMalformedRow   = ErrCodeMalformedRow
	CodeMalformedValue = ErrCodeMalformedValue

	CodeAssetNotFound = ErrCodeAssetNotFound
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusBadGateway,

	ErrCodeDatasetRead:       http.StatusInternalServerError,
	ErrCodeDatasetEmpty:      http.StatusInternalServerError,
	ErrCodeMissingColumn:     http.StatusInternalServerError,
	ErrCodeMalformedRow:      http.StatusInternalServerError,
	ErrCodeMalformedValue:    http.StatusInternalServerError,
	ErrCodeDatasetSourceKind: http.StatusInternalServerError,

	ErrCodeFigureOptions: http.StatusInternalServerError,
	ErrCodeFigureBuild:   http.StatusInternalServerError,
	ErrCodeSnapshot:      http.StatusInternalServerError,

	ErrCodeConfigInvalid:  http.StatusInternalServerError,
	ErrCodeConfigRead:     http.StatusInternalServerError,
	ErrCodeConfigNotFound: http.StatusInternalServerError,
	ErrCodeCacheMiss:      http.StatusNotFound,
	ErrCodeStorageFailure: http.StatusBadGateway,
	ErrCodeAssetNotFound:  http.StatusNotFound,
}

// ErrorCodeMessage holds the default message per code.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeValidation:         "validation failed",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",

	ErrCodeDatasetRead:       "dataset could not be read",
	ErrCodeDatasetEmpty:      "dataset is empty",
	ErrCodeMissingColumn:     "dataset is missing a required column",
	ErrCodeMalformedRow:      "dataset row is malformed",
	ErrCodeMalformedValue:    "dataset value is malformed",
	ErrCodeDatasetSourceKind: "unsupported dataset source",

	ErrCodeFigureOptions: "invalid figure options",
	ErrCodeFigureBuild:   "figure could not be built",
	ErrCodeSnapshot:      "snapshot could not be rendered",

	ErrCodeConfigInvalid:  "invalid configuration",
	ErrCodeConfigRead:     "configuration could not be read",
	ErrCodeConfigNotFound: "configuration file not found",
	ErrCodeCacheMiss:      "cache miss",
	ErrCodeStorageFailure: "object storage failure",
	ErrCodeAssetNotFound:  "asset not found",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
