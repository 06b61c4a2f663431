package comprehend

import "context"

// StubAnalyzer returns a fixed POSITIVE result for every text.
// AWS emulators such as LocalStack do not implement BatchDetectSentiment,
// so local development and tests wire this instead of APIClient.
type StubAnalyzer struct{}

var _ Analyzer = StubAnalyzer{}

// StubScore is the score attached to every stub result
var StubScore = SentimentScore{
	Positive: 88.8,
	Negative: 12.3,
	Neutral:  34.5,
	Mixed:    45.6,
}

// Analyze validates texts and labels each one POSITIVE
func (StubAnalyzer) Analyze(ctx context.Context, texts []string) (*BatchResult, error) {
	if err := ValidateBatch(texts); err != nil {
		return nil, err
	}

	results := make([]Result, len(texts))
	for i := range texts {
		results[i] = Result{Index: i, Sentiment: SentimentPositive, Score: StubScore}
	}

	return &BatchResult{Results: results, Errors: []ItemError{}}, nil
}

// FailingAnalyzer always fails with Err
type FailingAnalyzer struct {
	Err error
}

var _ Analyzer = FailingAnalyzer{}

// Analyze returns f.Err
func (f FailingAnalyzer) Analyze(ctx context.Context, texts []string) (*BatchResult, error) {
	return nil, f.Err
}
