package comprehend

import "net/http"

// ErrorKind classifies failures of the sentiment analysis service
type ErrorKind string

const (
	KindInvalidRequest         ErrorKind = "INVALID_REQUEST"
	KindInternalServer         ErrorKind = "INTERNAL_SERVER"
	KindTextSizeLimitExceeded  ErrorKind = "TEXT_SIZE_LIMIT_EXCEEDED"
	KindBatchSizeLimitExceeded ErrorKind = "BATCH_SIZE_LIMIT_EXCEEDED"
	KindUnsupportedLanguage    ErrorKind = "UNSUPPORTED_LANGUAGE"
	KindThrottling             ErrorKind = "THROTTLING"
	KindAPIError               ErrorKind = "API_ERROR"
	KindUnknown                ErrorKind = "UNKNOWN"
)

type kindInfo struct {
	vendorCode string
	statusCode int
}

var kinds = map[ErrorKind]kindInfo{
	KindInvalidRequest:         {"InvalidRequestException", http.StatusBadRequest},
	KindInternalServer:         {"InternalServerException", http.StatusInternalServerError},
	KindTextSizeLimitExceeded:  {"TextSizeLimitExceededException", http.StatusBadRequest},
	KindBatchSizeLimitExceeded: {"BatchSizeLimitExceededException", http.StatusBadRequest},
	KindUnsupportedLanguage:    {"UnsupportedLanguageException", http.StatusBadRequest},
	KindThrottling:             {"ThrottlingException", http.StatusTooManyRequests},
	KindAPIError:               {"APIError", http.StatusInternalServerError},
	KindUnknown:                {"UnknownException", http.StatusInternalServerError},
}

var kindsByVendorCode = func() map[string]ErrorKind {
	m := make(map[string]ErrorKind, len(kinds))
	for kind, info := range kinds {
		m[info.vendorCode] = kind
	}
	return m
}()

// KindFromVendorCode maps an AWS error code to its ErrorKind.
// Codes missing from the table map to KindUnknown.
func KindFromVendorCode(code string) ErrorKind {
	if kind, ok := kindsByVendorCode[code]; ok {
		return kind
	}
	return KindUnknown
}

// VendorCode returns the AWS error code for the kind
func (k ErrorKind) VendorCode() string {
	if info, ok := kinds[k]; ok {
		return info.vendorCode
	}
	return kinds[KindUnknown].vendorCode
}

// StatusCode returns the HTTP status surfaced to API callers
func (k ErrorKind) StatusCode() int {
	if info, ok := kinds[k]; ok {
		return info.statusCode
	}
	return http.StatusInternalServerError
}

// Error is returned for any failure of the sentiment analysis service
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Kind.VendorCode() + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status associated with the error kind
func (e *Error) StatusCode() int {
	return e.Kind.StatusCode()
}
