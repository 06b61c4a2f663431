package comprehend

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateBatch(t *testing.T) {
	repeat := func(s string, n int) []string {
		texts := make([]string, n)
		for i := range texts {
			texts[i] = s
		}
		return texts
	}

	tests := []struct {
		name        string
		texts       []string
		wantKind    ErrorKind
		wantMessage string
	}{
		{
			name:        "Empty list",
			texts:       []string{},
			wantKind:    KindInvalidRequest,
			wantMessage: "at least one text",
		},
		{
			name:        "Nil list",
			texts:       nil,
			wantKind:    KindInvalidRequest,
			wantMessage: "at least one text",
		},
		{
			name:        "Whitespace-only text",
			texts:       []string{" \t\n"},
			wantKind:    KindInvalidRequest,
			wantMessage: "whitespace-only",
		},
		{
			name:        "Empty text among valid ones",
			texts:       []string{"hello", ""},
			wantKind:    KindInvalidRequest,
			wantMessage: "whitespace-only",
		},
		{
			name:        "Batch of 26 texts",
			texts:       repeat("hello", 26),
			wantKind:    KindBatchSizeLimitExceeded,
			wantMessage: "max 25",
		},
		{
			name:        "Text of 5001 characters",
			texts:       []string{strings.Repeat("a", 5001)},
			wantKind:    KindTextSizeLimitExceeded,
			wantMessage: "max 5000",
		},
		{
			name:        "Blank text reported before batch size",
			texts:       append(repeat("hello", 26), " "),
			wantKind:    KindInvalidRequest,
			wantMessage: "whitespace-only",
		},
		{
			name:        "Batch size reported before text size",
			texts:       repeat(strings.Repeat("a", 5001), 26),
			wantKind:    KindBatchSizeLimitExceeded,
			wantMessage: "max 25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBatch(tt.texts)
			require.Error(t, err)

			var cErr *Error
			require.ErrorAs(t, err, &cErr)
			assert.Equal(t, tt.wantKind, cErr.Kind)
			assert.Contains(t, cErr.Message, tt.wantMessage)
		})
	}
}

func TestValidateBatch_Valid(t *testing.T) {
	tests := []struct {
		name  string
		texts []string
	}{
		{name: "Single text", texts: []string{"hello"}},
		{name: "Exactly 25 texts", texts: strings.Split(strings.Repeat("x,", 24)+"x", ",")},
		{name: "Exactly 5000 characters", texts: []string{strings.Repeat("a", 5000)}},
		// 5000 multi-byte characters are far more than 5000 bytes
		{name: "5000 Japanese characters", texts: []string{strings.Repeat("あ", 5000)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateBatch(tt.texts))
		})
	}
}
