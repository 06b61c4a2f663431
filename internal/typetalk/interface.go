package typetalk

import (
	"context"

	"github.com/typetalk-sentiment/api/internal/models"
)

// Client defines the contract for the Typetalk API
type Client interface {
	// GetSpaces lists the organizations the token's user belongs to
	GetSpaces(ctx context.Context, token string) (*models.TypetalkSpacesResponse, error)
	// GetTopics lists the open topics of an organization
	GetTopics(ctx context.Context, token, spaceKey string) (*models.TypetalkTopicsResponse, error)
	// GetMessages fetches one page of a topic, walking backward from fromID
	// when it is set and from the newest post otherwise
	GetMessages(ctx context.Context, token string, topicID int64, fromID *int64) (*models.TypetalkMessagesResponse, error)
}
