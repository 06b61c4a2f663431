package typetalk

import "fmt"

// APIError is returned when Typetalk answers with a non-2xx status
type APIError struct {
	StatusCode int
	Path       string
	// Content is the decoded error body, nil when empty or not a JSON object
	Content map[string]any
}

func (e *APIError) Error() string {
	if e.Content != nil {
		return fmt.Sprintf("typetalk API returned status %d for %s: %v", e.StatusCode, e.Path, e.Content)
	}
	return fmt.Sprintf("typetalk API returned status %d for %s", e.StatusCode, e.Path)
}

// Detail returns the "error" entry of the upstream body when it is set
func (e *APIError) Detail() (any, bool) {
	if e.Content == nil {
		return nil, false
	}
	value, ok := e.Content["error"]
	if !ok || value == nil || value == "" {
		return nil, false
	}
	return value, true
}
