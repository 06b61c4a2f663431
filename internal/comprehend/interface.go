package comprehend

import "context"

// Analyzer defines the contract for batch sentiment analysis
type Analyzer interface {
	Analyze(ctx context.Context, texts []string) (*BatchResult, error)
}
