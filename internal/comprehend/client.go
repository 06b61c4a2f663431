package comprehend

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/comprehend"
	"github.com/aws/aws-sdk-go/service/comprehend/comprehendiface"
	"github.com/sirupsen/logrus"

	"github.com/typetalk-sentiment/api/internal/metrics"
)

// APIClient analyzes texts with AWS Comprehend
type APIClient struct {
	api          comprehendiface.ComprehendAPI
	languageCode string
}

// Ensure APIClient implements Analyzer
var _ Analyzer = (*APIClient)(nil)

// NewAPIClient creates a Comprehend client for the given region.
// endpoint is optional and only used against local emulators.
func NewAPIClient(region, endpoint, languageCode string) (*APIClient, error) {
	awsConfig := &aws.Config{
		Region:     aws.String(region),
		// One attempt per Analyze call; the SDK retryer is disabled
		MaxRetries: aws.Int(0),
	}

	if endpoint != "" {
		awsConfig.Endpoint = aws.String(endpoint)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return newAPIClient(comprehend.New(sess), languageCode), nil
}

func newAPIClient(api comprehendiface.ComprehendAPI, languageCode string) *APIClient {
	return &APIClient{
		api:          api,
		languageCode: languageCode,
	}
}

// Analyze detects the sentiment of every text in a single BatchDetectSentiment call.
//
// See https://docs.aws.amazon.com/comprehend/latest/APIReference/API_BatchDetectSentiment.html
func (c *APIClient) Analyze(ctx context.Context, texts []string) (*BatchResult, error) {
	if err := ValidateBatch(texts); err != nil {
		return nil, err
	}

	output, err := c.api.BatchDetectSentimentWithContext(ctx, &comprehend.BatchDetectSentimentInput{
		TextList:     aws.StringSlice(texts),
		LanguageCode: aws.String(c.languageCode),
	})
	metrics.RecordUpstreamCall(metrics.UpstreamComprehend, err)
	if err != nil {
		return nil, translateError(err)
	}

	result, err := convertOutput(output)
	if err != nil {
		return nil, err
	}

	logrus.Debugf("Comprehend analyzed %d texts (%d failed)", len(result.Results), len(result.Errors))
	return result, nil
}

// translateError maps SDK errors onto the local error taxonomy.
// Only a RequestFailure carries a service error code; everything else is a transport failure.
func translateError(err error) error {
	var reqErr awserr.RequestFailure
	if errors.As(err, &reqErr) {
		code := reqErr.Code()
		if code == "" {
			code = KindUnknown.VendorCode()
		}
		message := reqErr.Message()
		if message == "" {
			message = "unknown error occurred"
		}
		return &Error{Kind: KindFromVendorCode(code), Message: message, Err: err}
	}

	return &Error{
		Kind:    KindAPIError,
		Message: fmt.Sprintf("aws sdk error: %v", err),
		Err:     err,
	}
}

func convertOutput(output *comprehend.BatchDetectSentimentOutput) (*BatchResult, error) {
	result := &BatchResult{
		Results: make([]Result, 0, len(output.ResultList)),
		Errors:  make([]ItemError, 0, len(output.ErrorList)),
	}

	for _, item := range output.ResultList {
		sentiment, err := ParseSentiment(aws.StringValue(item.Sentiment))
		if err != nil {
			return nil, fmt.Errorf("failed to parse result at index %d: %w", aws.Int64Value(item.Index), err)
		}

		r := Result{
			Index:     int(aws.Int64Value(item.Index)),
			Sentiment: sentiment,
		}
		if score := item.SentimentScore; score != nil {
			r.Score = SentimentScore{
				Positive: aws.Float64Value(score.Positive),
				Negative: aws.Float64Value(score.Negative),
				Neutral:  aws.Float64Value(score.Neutral),
				Mixed:    aws.Float64Value(score.Mixed),
			}
		}
		result.Results = append(result.Results, r)
	}

	for _, item := range output.ErrorList {
		result.Errors = append(result.Errors, ItemError{
			Index:   int(aws.Int64Value(item.Index)),
			Code:    aws.StringValue(item.ErrorCode),
			Message: aws.StringValue(item.ErrorMessage),
		})
	}

	sort.Slice(result.Results, func(i, j int) bool {
		return result.Results[i].Index < result.Results[j].Index
	})
	sort.Slice(result.Errors, func(i, j int) bool {
		return result.Errors[i].Index < result.Errors[j].Index
	})

	return result, nil
}
