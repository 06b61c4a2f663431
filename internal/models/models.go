package models

// Space represents a Typetalk organization
type Space struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Topic represents a Typetalk topic
type Topic struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// Account represents the author of a post
type Account struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// Post represents a single Typetalk message.
// Sentiment stays nil until the message body has been analyzed.
type Post struct {
	ID        int64   `json:"id"`
	Message   string  `json:"message"`
	UpdatedAt string  `json:"updatedAt"` // ISO-8601 as sent by Typetalk
	Account   Account `json:"account"`
	Sentiment *string `json:"sentiment"`
}

// WithSentiment returns a copy of the post carrying the given label
func (p Post) WithSentiment(label string) Post {
	p.Sentiment = &label
	return p
}

// Typetalk response envelopes

type MySpace struct {
	Space Space `json:"space"`
}

type TypetalkSpacesResponse struct {
	MySpaces []MySpace `json:"mySpaces"`
}

type MyTopic struct {
	Topic Topic `json:"topic"`
}

type TypetalkTopicsResponse struct {
	Topics []MyTopic `json:"topics"`
}

type TypetalkMessagesResponse struct {
	Topic   Topic  `json:"topic"`
	HasNext bool   `json:"hasNext"`
	Posts   []Post `json:"posts"`
}

// API responses

// SpacesResponse is returned by GET /spaces
type SpacesResponse struct {
	Spaces []Space `json:"spaces"`
}

// TopicsResponse is returned by GET /topics
type TopicsResponse struct {
	Topics []Topic `json:"topics"`
}

// MessagesResponse is returned by GET /topics/{topic_id}/messages
type MessagesResponse struct {
	Topic   Topic  `json:"topic"`
	HasNext bool   `json:"hasNext"`
	Posts   []Post `json:"posts"`
}
