package typetalk

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"

	"github.com/typetalk-sentiment/api/internal/metrics"
	"github.com/typetalk-sentiment/api/internal/models"
)

// APIClient implements Client against the Typetalk REST API
type APIClient struct {
	client *resty.Client
}

// Ensure APIClient implements Client
var _ Client = (*APIClient)(nil)

// NewAPIClient creates a new Typetalk client for baseURL. A zero timeout
// leaves deadlines to the request context.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	return &APIClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("User-Agent", "Typetalk-Sentiment-API/1.0"),
	}
}

// GetSpaces calls GET /api/v1/spaces.
//
// See https://developer.nulab.com/docs/typetalk/api/1/get-spaces/
func (c *APIClient) GetSpaces(ctx context.Context, token string) (*models.TypetalkSpacesResponse, error) {
	var out models.TypetalkSpacesResponse
	req := c.request(ctx, token).SetQueryParam("excludesGuest", "true")
	if err := c.get(req, "/api/v1/spaces", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTopics calls GET /api/v3/topics.
//
// See https://developer.nulab.com/docs/typetalk/api/3/get-topics/
func (c *APIClient) GetTopics(ctx context.Context, token, spaceKey string) (*models.TypetalkTopicsResponse, error) {
	var out models.TypetalkTopicsResponse
	req := c.request(ctx, token).SetQueryParams(map[string]string{
		"isArchived": "false",
		"spaceKey":   spaceKey,
	})
	if err := c.get(req, "/api/v3/topics", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMessages calls GET /api/v1/topics/{topicId} with direction=backward.
//
// See https://developer.nulab.com/docs/typetalk/api/1/get-messages/
func (c *APIClient) GetMessages(ctx context.Context, token string, topicID int64, fromID *int64) (*models.TypetalkMessagesResponse, error) {
	var out models.TypetalkMessagesResponse
	req := c.request(ctx, token).
		SetPathParam("topicId", strconv.FormatInt(topicID, 10)).
		SetQueryParam("direction", "backward")
	if fromID != nil {
		req.SetQueryParam("from", strconv.FormatInt(*fromID, 10))
	}
	if err := c.get(req, "/api/v1/topics/{topicId}", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *APIClient) request(ctx context.Context, token string) *resty.Request {
	return c.client.R().
		SetContext(ctx).
		SetAuthToken(token)
}

func (c *APIClient) get(req *resty.Request, path string, out any) error {
	resp, err := req.Get(path)
	if err != nil {
		metrics.RecordUpstreamCall(metrics.UpstreamTypetalk, err)
		return fmt.Errorf("typetalk request %s failed: %w", path, err)
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode(),
			Path:       path,
			Content:    parseErrorBody(resp.Body()),
		}
		metrics.RecordUpstreamCall(metrics.UpstreamTypetalk, apiErr)
		return apiErr
	}
	metrics.RecordUpstreamCall(metrics.UpstreamTypetalk, nil)

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("failed to decode typetalk response for %s: %w", path, err)
	}

	logrus.Debugf("Typetalk %s answered in %v", path, resp.Time())
	return nil
}

func parseErrorBody(body []byte) map[string]any {
	if len(body) == 0 {
		return nil
	}
	var content map[string]any
	if err := json.Unmarshal(body, &content); err != nil {
		return nil
	}
	return content
}
