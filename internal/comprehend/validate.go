package comprehend

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Limits of a single BatchDetectSentiment call
const (
	MaxBatchSize = 25
	MaxTextSize  = 5000
)

// ValidateBatch checks texts against the BatchDetectSentiment limits before
// any request is made. The first violation found is returned.
func ValidateBatch(texts []string) error {
	if len(texts) == 0 {
		return &Error{
			Kind:    KindInvalidRequest,
			Message: "text list is empty: at least one text is required",
		}
	}

	for _, text := range texts {
		if strings.TrimSpace(text) == "" {
			return &Error{
				Kind:    KindInvalidRequest,
				Message: "empty or whitespace-only texts are not allowed",
			}
		}
	}

	if len(texts) > MaxBatchSize {
		return &Error{
			Kind:    KindBatchSizeLimitExceeded,
			Message: fmt.Sprintf("batch size exceeds the limit: max %d texts", MaxBatchSize),
		}
	}

	for _, text := range texts {
		if utf8.RuneCountInString(text) > MaxTextSize {
			return &Error{
				Kind:    KindTextSizeLimitExceeded,
				Message: fmt.Sprintf("text size exceeds the limit: max %d characters", MaxTextSize),
			}
		}
	}

	return nil
}
