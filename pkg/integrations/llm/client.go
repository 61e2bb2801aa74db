package llm

import (
	"context"
	"strings"

	"github.com/matzehuels/paraflow/pkg/cache"
	"github.com/matzehuels/paraflow/pkg/errors"
	"github.com/matzehuels/paraflow/pkg/integrations"
)

// MaxTopicLength bounds the topic sent upstream.
const MaxTopicLength = 500

// Completer sends one system and user message pair to a chat model.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
	Model() string
}

// Client generates process descriptions with caching and retries.
type Client struct {
	*integrations.Client
	llm Completer
}

// NewClient creates a Client. A nil cache disables caching.
func NewClient(llm Completer, c cache.Cache, keyer cache.Keyer) *Client {
	return &Client{
		Client: integrations.NewClient(c, keyer, "llm:"+llm.Model(), cache.TTLHTTP),
		llm:    llm,
	}
}

// Model returns the name of the underlying chat model.
func (c *Client) Model() string { return c.llm.Model() }

// Describe returns a process paragraph for topic.
// If refresh is true, the cache is bypassed and the model is always called.
func (c *Client) Describe(ctx context.Context, topic string, refresh bool) (string, error) {
	topic = strings.Join(strings.Fields(topic), " ")
	if topic == "" {
		return "", errors.New(errors.ErrCodeInvalidInput, "topic cannot be empty")
	}
	if len(topic) > MaxTopicLength {
		return "", errors.New(errors.ErrCodeInvalidInput, "topic too long (max %d bytes)", MaxTopicLength)
	}

	key := cache.Hash([]byte(strings.ToLower(topic)))
	data, err := c.Cached(ctx, key, refresh, func() ([]byte, error) {
		reply, err := c.llm.Complete(ctx, SystemPrompt, userPrompt(topic))
		if err != nil {
			return nil, err
		}
		p := Paragraph(reply)
		if p == "" {
			return nil, errors.New(errors.ErrCodeUnavailable, "model returned an empty description")
		}
		return []byte(p), nil
	})
	if err != nil {
		return "", err
	}
	return string(data), nil
}
