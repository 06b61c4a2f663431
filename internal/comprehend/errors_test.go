package comprehend

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindFromVendorCode(t *testing.T) {
	tests := []struct {
		code       string
		kind       ErrorKind
		statusCode int
	}{
		{"InvalidRequestException", KindInvalidRequest, http.StatusBadRequest},
		{"InternalServerException", KindInternalServer, http.StatusInternalServerError},
		{"TextSizeLimitExceededException", KindTextSizeLimitExceeded, http.StatusBadRequest},
		{"BatchSizeLimitExceededException", KindBatchSizeLimitExceeded, http.StatusBadRequest},
		{"UnsupportedLanguageException", KindUnsupportedLanguage, http.StatusBadRequest},
		{"ThrottlingException", KindThrottling, http.StatusTooManyRequests},
		{"APIError", KindAPIError, http.StatusInternalServerError},
		{"UnknownException", KindUnknown, http.StatusInternalServerError},
		{"AccessDeniedException", KindUnknown, http.StatusInternalServerError},
		{"", KindUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			kind := KindFromVendorCode(tt.code)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.statusCode, kind.StatusCode())
		})
	}
}

func TestError(t *testing.T) {
	cause := errors.New("cause")
	err := &Error{Kind: KindThrottling, Message: "Rate exceeded", Err: cause}

	assert.Equal(t, "ThrottlingException: Rate exceeded", err.Error())
	assert.Equal(t, http.StatusTooManyRequests, err.StatusCode())
	assert.ErrorIs(t, err, cause)
}

func TestBatchResult_Err(t *testing.T) {
	ok := &BatchResult{Results: []Result{{Index: 0, Sentiment: SentimentNeutral}}}
	assert.NoError(t, ok.Err())

	failed := &BatchResult{
		Errors: []ItemError{
			{Index: 1, Code: "TextSizeLimitExceededException", Message: "too long"},
			{Index: 3, Code: "InternalServerException", Message: "later"},
		},
	}

	var cErr *Error
	assert.ErrorAs(t, failed.Err(), &cErr)
	assert.Equal(t, KindTextSizeLimitExceeded, cErr.Kind)
	assert.Equal(t, "text at index 1: too long", cErr.Message)
}
