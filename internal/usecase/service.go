package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/typetalk-sentiment/api/internal/comprehend"
	"github.com/typetalk-sentiment/api/internal/logging"
	"github.com/typetalk-sentiment/api/internal/models"
	"github.com/typetalk-sentiment/api/internal/typetalk"
)

// Service serves spaces, topics and sentiment-enriched messages from Typetalk
type Service struct {
	typetalk typetalk.Client
	analyzer comprehend.Analyzer
}

// NewService creates a new Service
func NewService(typetalkClient typetalk.Client, analyzer comprehend.Analyzer) *Service {
	return &Service{
		typetalk: typetalkClient,
		analyzer: analyzer,
	}
}

// GetSpaces lists the organizations the token's user belongs to
func (s *Service) GetSpaces(ctx context.Context, token string) (*models.SpacesResponse, error) {
	log := logging.FromContext(ctx)
	log.Info("START - GetSpaces")

	resp, err := s.typetalk.GetSpaces(ctx, token)
	if err != nil {
		return nil, err
	}
	log.Infof("Retrieved %d spaces from Typetalk", len(resp.MySpaces))

	spaces := make([]models.Space, 0, len(resp.MySpaces))
	for _, mySpace := range resp.MySpaces {
		spaces = append(spaces, mySpace.Space)
	}

	log.Info("END - GetSpaces")
	return &models.SpacesResponse{Spaces: spaces}, nil
}

// GetTopics lists the open topics of a space
func (s *Service) GetTopics(ctx context.Context, token, spaceKey string) (*models.TopicsResponse, error) {
	log := logging.FromContext(ctx).WithField("space_key", spaceKey)
	log.Info("START - GetTopics")

	resp, err := s.typetalk.GetTopics(ctx, token, spaceKey)
	if err != nil {
		return nil, err
	}
	log.Infof("Retrieved %d topics from Typetalk", len(resp.Topics))

	topics := make([]models.Topic, 0, len(resp.Topics))
	for _, myTopic := range resp.Topics {
		topics = append(topics, myTopic.Topic)
	}

	log.Info("END - GetTopics")
	return &models.TopicsResponse{Topics: topics}, nil
}

// GetMessages fetches one page of a topic and labels every post that has a
// body with its sentiment. Posts without a body, such as attachment-only
// posts, are returned with a nil sentiment. Posts are ordered newest first.
//
// A failure of either upstream fails the whole call.
func (s *Service) GetMessages(ctx context.Context, token string, topicID int64, fromID *int64) (*models.MessagesResponse, error) {
	log := logging.FromContext(ctx).WithField("topic_id", topicID)
	log.Info("START - GetMessages")

	resp, err := s.typetalk.GetMessages(ctx, token, topicID, fromID)
	if err != nil {
		return nil, err
	}
	log.Infof("Retrieved %d posts from Typetalk (hasNext: %t)", len(resp.Posts), resp.HasNext)

	posts := make([]models.Post, len(resp.Posts))
	copy(posts, resp.Posts)

	targets := analyzablePosts(posts)
	if len(targets) > 0 {
		analyzed, err := s.analyzePosts(ctx, targets)
		if err != nil {
			return nil, err
		}
		log.Infof("Performed sentiment analysis on %d posts", len(analyzed))
		posts = mergeByID(posts, analyzed)
	} else {
		log.Info("No posts to perform sentiment analysis")
	}

	sortNewestFirst(posts)

	log.Info("END - GetMessages")
	return &models.MessagesResponse{
		Topic:   resp.Topic,
		HasNext: resp.HasNext,
		Posts:   posts,
	}, nil
}

func analyzablePosts(posts []models.Post) []models.Post {
	var targets []models.Post
	for _, post := range posts {
		if post.Message != "" {
			targets = append(targets, post)
		}
	}
	return targets
}

// analyzePosts returns a copy of each target carrying the label found at the
// same batch position
func (s *Service) analyzePosts(ctx context.Context, targets []models.Post) ([]models.Post, error) {
	texts := make([]string, len(targets))
	for i, post := range targets {
		texts[i] = post.Message
	}

	result, err := s.analyzer.Analyze(ctx, texts)
	if err != nil {
		return nil, err
	}
	if err := result.Err(); err != nil {
		return nil, err
	}
	if len(result.Results) != len(targets) {
		return nil, fmt.Errorf("sentiment analysis returned %d results for %d texts", len(result.Results), len(targets))
	}

	analyzed := make([]models.Post, len(targets))
	for i, post := range targets {
		analyzed[i] = post.WithSentiment(string(result.Results[i].Sentiment))
	}
	return analyzed, nil
}

// mergeByID overlays analyzed on posts keyed by post id. An overlay entry
// replaces the post with the same id; with duplicate ids the last one wins.
// Ids keep the order in which they were first seen.
func mergeByID(posts, overlay []models.Post) []models.Post {
	order := make([]int64, 0, len(posts))
	byID := make(map[int64]models.Post, len(posts))

	put := func(post models.Post) {
		if _, seen := byID[post.ID]; !seen {
			order = append(order, post.ID)
		}
		byID[post.ID] = post
	}
	for _, post := range posts {
		put(post)
	}
	for _, post := range overlay {
		put(post)
	}

	merged := make([]models.Post, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}
	return merged
}

func sortNewestFirst(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].ID > posts[j].ID
	})
}
