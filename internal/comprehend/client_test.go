package comprehend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/comprehend"
	"github.com/aws/aws-sdk-go/service/comprehend/comprehendiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockComprehendAPI is a mock implementation of the Comprehend SDK client
type MockComprehendAPI struct {
	comprehendiface.ComprehendAPI
	mock.Mock
}

func (m *MockComprehendAPI) BatchDetectSentimentWithContext(ctx aws.Context, input *comprehend.BatchDetectSentimentInput, opts ...request.Option) (*comprehend.BatchDetectSentimentOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*comprehend.BatchDetectSentimentOutput)
	return output, args.Error(1)
}

func sentimentItem(index int64, label string) *comprehend.BatchDetectSentimentItemResult {
	return &comprehend.BatchDetectSentimentItemResult{
		Index:     aws.Int64(index),
		Sentiment: aws.String(label),
		SentimentScore: &comprehend.SentimentScore{
			Positive: aws.Float64(0.7),
			Negative: aws.Float64(0.1),
			Neutral:  aws.Float64(0.15),
			Mixed:    aws.Float64(0.05),
		},
	}
}

func TestAPIClient_Analyze(t *testing.T) {
	api := &MockComprehendAPI{}
	api.On("BatchDetectSentimentWithContext", mock.Anything, mock.MatchedBy(func(in *comprehend.BatchDetectSentimentInput) bool {
		return aws.StringValue(in.LanguageCode) == "ja" &&
			assert.ObjectsAreEqual([]string{"first", "second", "third"}, aws.StringValueSlice(in.TextList))
	})).Return(&comprehend.BatchDetectSentimentOutput{
		// Comprehend does not guarantee result order
		ResultList: []*comprehend.BatchDetectSentimentItemResult{
			sentimentItem(2, "MIXED"),
			sentimentItem(0, "POSITIVE"),
			sentimentItem(1, "NEGATIVE"),
		},
		ErrorList: []*comprehend.BatchItemError{},
	}, nil).Once()

	client := newAPIClient(api, "ja")
	result, err := client.Analyze(context.Background(), []string{"first", "second", "third"})
	require.NoError(t, err)

	require.Len(t, result.Results, 3)
	assert.Equal(t, 0, result.Results[0].Index)
	assert.Equal(t, SentimentPositive, result.Results[0].Sentiment)
	assert.Equal(t, SentimentNegative, result.Results[1].Sentiment)
	assert.Equal(t, SentimentMixed, result.Results[2].Sentiment)
	assert.Equal(t, SentimentScore{Positive: 0.7, Negative: 0.1, Neutral: 0.15, Mixed: 0.05}, result.Results[0].Score)
	assert.Empty(t, result.Errors)
	assert.NoError(t, result.Err())

	api.AssertExpectations(t)
}

func TestAPIClient_Analyze_ItemErrors(t *testing.T) {
	api := &MockComprehendAPI{}
	api.On("BatchDetectSentimentWithContext", mock.Anything, mock.Anything).Return(&comprehend.BatchDetectSentimentOutput{
		ResultList: []*comprehend.BatchDetectSentimentItemResult{sentimentItem(0, "NEUTRAL")},
		ErrorList: []*comprehend.BatchItemError{
			{Index: aws.Int64(1), ErrorCode: aws.String("InternalServerException"), ErrorMessage: aws.String("failed")},
		},
	}, nil)

	result, err := newAPIClient(api, "ja").Analyze(context.Background(), []string{"ok", "broken"})
	require.NoError(t, err)

	require.Len(t, result.Errors, 1)
	assert.Equal(t, ItemError{Index: 1, Code: "InternalServerException", Message: "failed"}, result.Errors[0])

	var cErr *Error
	require.ErrorAs(t, result.Err(), &cErr)
	assert.Equal(t, KindInternalServer, cErr.Kind)
}

func TestAPIClient_Analyze_UnknownLabel(t *testing.T) {
	api := &MockComprehendAPI{}
	api.On("BatchDetectSentimentWithContext", mock.Anything, mock.Anything).Return(&comprehend.BatchDetectSentimentOutput{
		ResultList: []*comprehend.BatchDetectSentimentItemResult{sentimentItem(0, "ECSTATIC")},
	}, nil)

	result, err := newAPIClient(api, "ja").Analyze(context.Background(), []string{"hello"})
	assert.Nil(t, result)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ECSTATIC")

	var cErr *Error
	assert.False(t, errors.As(err, &cErr), "parse failures are not service errors")
}

func TestAPIClient_Analyze_ServiceErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantKind    ErrorKind
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "Throttling",
			err:         awserr.NewRequestFailure(awserr.New("ThrottlingException", "Rate exceeded", nil), 400, "req-1"),
			wantKind:    KindThrottling,
			wantStatus:  429,
			wantMessage: "Rate exceeded",
		},
		{
			name:        "Unsupported language",
			err:         awserr.NewRequestFailure(awserr.New("UnsupportedLanguageException", "xx is not supported", nil), 400, "req-2"),
			wantKind:    KindUnsupportedLanguage,
			wantStatus:  400,
			wantMessage: "xx is not supported",
		},
		{
			name:        "Unmapped service code",
			err:         awserr.NewRequestFailure(awserr.New("AccessDeniedException", "denied", nil), 403, "req-3"),
			wantKind:    KindUnknown,
			wantStatus:  500,
			wantMessage: "denied",
		},
		{
			name:        "Service error without message",
			err:         awserr.NewRequestFailure(awserr.New("InternalServerException", "", nil), 500, "req-4"),
			wantKind:    KindInternalServer,
			wantStatus:  500,
			wantMessage: "unknown error occurred",
		},
		{
			name:        "Transport failure",
			err:         awserr.New(request.ErrCodeRequestError, "send request failed", errors.New("dial tcp: connection refused")),
			wantKind:    KindAPIError,
			wantStatus:  500,
			wantMessage: "aws sdk error",
		},
		{
			name:        "Plain error",
			err:         context.DeadlineExceeded,
			wantKind:    KindAPIError,
			wantStatus:  500,
			wantMessage: "aws sdk error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := &MockComprehendAPI{}
			api.On("BatchDetectSentimentWithContext", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			result, err := newAPIClient(api, "ja").Analyze(context.Background(), []string{"hello"})
			assert.Nil(t, result)

			var cErr *Error
			require.ErrorAs(t, err, &cErr)
			assert.Equal(t, tt.wantKind, cErr.Kind)
			assert.Equal(t, tt.wantStatus, cErr.StatusCode())
			assert.Contains(t, cErr.Message, tt.wantMessage)
			api.AssertNumberOfCalls(t, "BatchDetectSentimentWithContext", 1)
		})
	}
}

func TestAPIClient_Analyze_InvalidBatchMakesNoCall(t *testing.T) {
	api := &MockComprehendAPI{}

	_, err := newAPIClient(api, "ja").Analyze(context.Background(), []string{})

	var cErr *Error
	require.ErrorAs(t, err, &cErr)
	assert.Equal(t, KindInvalidRequest, cErr.Kind)
	api.AssertNotCalled(t, "BatchDetectSentimentWithContext", mock.Anything, mock.Anything)
}

func TestNewAPIClient_SingleAttempt(t *testing.T) {
	t.Setenv("AWS_ACCESS_KEY_ID", "test")
	t.Setenv("AWS_SECRET_ACCESS_KEY", "test")
	t.Setenv("AWS_SESSION_TOKEN", "")
	t.Setenv("AWS_EC2_METADATA_DISABLED", "true")

	tests := []struct {
		name     string
		status   int
		body     string
		wantKind ErrorKind
	}{
		{
			name:     "Throttling",
			status:   http.StatusBadRequest,
			body:     `{"__type":"ThrottlingException","message":"Rate exceeded"}`,
			wantKind: KindThrottling,
		},
		{
			name:     "Internal server error",
			status:   http.StatusInternalServerError,
			body:     `{"__type":"InternalServerException","message":"internal error"}`,
			wantKind: KindInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				w.Header().Set("Content-Type", "application/x-amz-json-1.1")
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, err := NewAPIClient("ap-northeast-1", srv.URL, "ja")
			require.NoError(t, err)

			result, err := client.Analyze(context.Background(), []string{"hello"})
			assert.Nil(t, result)

			var cErr *Error
			require.ErrorAs(t, err, &cErr)
			assert.Equal(t, tt.wantKind, cErr.Kind)
			assert.Equal(t, int32(1), calls.Load())
		})
	}
}
