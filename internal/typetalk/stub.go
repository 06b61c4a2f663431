package typetalk

import (
	"context"
	"net/http"
	"sort"

	"github.com/typetalk-sentiment/api/internal/models"
)

// StubToken is the only token StubClient accepts
const StubToken = "valid_typetalk_token"

// StubTopic is one topic served by StubClient
type StubTopic struct {
	Topic   models.Topic
	HasNext bool
	Posts   []models.Post
}

// StubClient serves fixed fixtures in place of Typetalk for local development and tests
type StubClient struct {
	Token    string
	Spaces   []models.Space
	Topics   map[string][]int64 // space key -> topic ids
	Messages map[int64]StubTopic
}

var _ Client = (*StubClient)(nil)

// NewStubClient returns a StubClient loaded with the default fixtures
func NewStubClient() *StubClient {
	description := "テストトピックの説明"
	empty := ""
	imageURL := "https://placehold.jp/150x150.png"
	user1 := models.Account{ID: 2489, Name: "test-user-01", ImageURL: imageURL}
	user2 := models.Account{ID: 2492, Name: "test-user-02", ImageURL: imageURL}

	return &StubClient{
		Token: StubToken,
		Spaces: []models.Space{
			{Key: "abcdefghij", Name: "テスト組織", ImageURL: imageURL},
		},
		Topics: map[string][]int64{
			"abcdefghij": {6310, 390668},
		},
		Messages: map[int64]StubTopic{
			6310: {
				Topic:   models.Topic{ID: 6310, Name: "テストトピック1", Description: &description},
				HasNext: true,
				Posts: []models.Post{
					{
						ID:        154010,
						Message:   "テストメッセージ2 abcdefg https://example.com/",
						UpdatedAt: "2024-09-11T12:34:56Z",
						Account:   user2,
					},
					{
						ID:        154011,
						Message:   "テストメッセージ1 abcdefg あいうえおかきくけこさしすせそたちつてとなにぬねの",
						UpdatedAt: "2024-09-12T12:34:56Z",
						Account:   user1,
					},
				},
			},
			390668: {
				Topic:   models.Topic{ID: 390668, Name: "分析対象メッセージ0件のトピック", Description: &empty},
				HasNext: false,
				Posts: []models.Post{
					{ID: 126996574, Message: "", UpdatedAt: "2024-02-17T15:31:53Z", Account: user2},
					{ID: 126996578, Message: "", UpdatedAt: "2024-02-17T15:32:09Z", Account: user2},
				},
			},
		},
	}
}

// GetSpaces returns the fixture spaces
func (s *StubClient) GetSpaces(ctx context.Context, token string) (*models.TypetalkSpacesResponse, error) {
	if err := s.authorize(token, "/api/v1/spaces"); err != nil {
		return nil, err
	}

	out := &models.TypetalkSpacesResponse{MySpaces: make([]models.MySpace, 0, len(s.Spaces))}
	for _, space := range s.Spaces {
		out.MySpaces = append(out.MySpaces, models.MySpace{Space: space})
	}
	return out, nil
}

// GetTopics returns the fixture topics of spaceKey
func (s *StubClient) GetTopics(ctx context.Context, token, spaceKey string) (*models.TypetalkTopicsResponse, error) {
	if err := s.authorize(token, "/api/v3/topics"); err != nil {
		return nil, err
	}

	ids, ok := s.Topics[spaceKey]
	if !ok {
		return nil, &APIError{StatusCode: http.StatusNotFound, Path: "/api/v3/topics"}
	}

	out := &models.TypetalkTopicsResponse{Topics: make([]models.MyTopic, 0, len(ids))}
	for _, id := range ids {
		if topic, ok := s.Messages[id]; ok {
			out.Topics = append(out.Topics, models.MyTopic{Topic: topic.Topic})
		}
	}
	return out, nil
}

// GetMessages returns the stored posts older than fromID in ascending id order,
// the order Typetalk uses for direction=backward
func (s *StubClient) GetMessages(ctx context.Context, token string, topicID int64, fromID *int64) (*models.TypetalkMessagesResponse, error) {
	if err := s.authorize(token, "/api/v1/topics/{topicId}"); err != nil {
		return nil, err
	}

	topic, ok := s.Messages[topicID]
	if !ok {
		return nil, &APIError{StatusCode: http.StatusNotFound, Path: "/api/v1/topics/{topicId}"}
	}

	posts := make([]models.Post, 0, len(topic.Posts))
	for _, post := range topic.Posts {
		if fromID == nil || post.ID < *fromID {
			posts = append(posts, post)
		}
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].ID < posts[j].ID })

	return &models.TypetalkMessagesResponse{
		Topic:   topic.Topic,
		HasNext: topic.HasNext,
		Posts:   posts,
	}, nil
}

func (s *StubClient) authorize(token, path string) error {
	if token != s.Token {
		return &APIError{StatusCode: http.StatusUnauthorized, Path: path}
	}
	return nil
}

// FailingClient fails every call with Err
type FailingClient struct {
	Err error
}

var _ Client = FailingClient{}

// GetSpaces returns f.Err
func (f FailingClient) GetSpaces(ctx context.Context, token string) (*models.TypetalkSpacesResponse, error) {
	return nil, f.Err
}

// GetTopics returns f.Err
func (f FailingClient) GetTopics(ctx context.Context, token, spaceKey string) (*models.TypetalkTopicsResponse, error) {
	return nil, f.Err
}

// GetMessages returns f.Err
func (f FailingClient) GetMessages(ctx context.Context, token string, topicID int64, fromID *int64) (*models.TypetalkMessagesResponse, error) {
	return nil, f.Err
}
