package comprehend

import "fmt"

// Sentiment is the label AWS Comprehend assigns to a text
type Sentiment string

const (
	SentimentPositive Sentiment = "POSITIVE"
	SentimentNegative Sentiment = "NEGATIVE"
	SentimentNeutral  Sentiment = "NEUTRAL"
	SentimentMixed    Sentiment = "MIXED"
)

// ParseSentiment converts a Comprehend label into a Sentiment.
// Unknown labels are rejected rather than defaulted.
func ParseSentiment(value string) (Sentiment, error) {
	switch s := Sentiment(value); s {
	case SentimentPositive, SentimentNegative, SentimentNeutral, SentimentMixed:
		return s, nil
	default:
		return "", fmt.Errorf("unknown sentiment label %q", value)
	}
}

// SentimentScore holds the per-label confidence reported by Comprehend
type SentimentScore struct {
	Positive float64 `json:"positive"`
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Mixed    float64 `json:"mixed"`
}

// Result is the analysis of one text. Index is its position in the submitted batch.
type Result struct {
	Index     int            `json:"index"`
	Sentiment Sentiment      `json:"sentiment"`
	Score     SentimentScore `json:"score"`
}

// ItemError reports a text of the batch that Comprehend could not analyze
type ItemError struct {
	Index   int    `json:"index"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchResult is the outcome of one BatchDetectSentiment call
type BatchResult struct {
	Results []Result    `json:"results"`
	Errors  []ItemError `json:"errors"`
}

// Err returns the first per-item failure translated into an *Error, or nil
// when every text was analyzed.
func (r *BatchResult) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	first := r.Errors[0]
	return &Error{
		Kind:    KindFromVendorCode(first.Code),
		Message: fmt.Sprintf("text at index %d: %s", first.Index, first.Message),
	}
}
