package llm

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/matzehuels/paraflow/pkg/errors"
	"github.com/matzehuels/paraflow/pkg/httputil"
	"github.com/matzehuels/paraflow/pkg/integrations"
	"github.com/matzehuels/paraflow/pkg/observability"
)

// Defaults for [Config].
const (
	DefaultModel   = "gpt-4o-mini"
	DefaultBaseURL = "https://api.openai.com/v1/"
)

const completionsPath = "/chat/completions"

// Config selects the model and endpoint.
type Config struct {
	Model   string
	APIKey  string
	BaseURL string // OpenAI-compatible endpoint; empty uses DefaultBaseURL

	HTTPClient *http.Client
}

// OpenAI implements [Completer] with the official openai-go SDK.
type OpenAI struct {
	client openai.Client
	model  string
	host   string
}

// NewOpenAI creates a completer. The SDK's own retries are disabled;
// [Client] retries through httputil instead.
func NewOpenAI(cfg Config) (*OpenAI, error) {
	if cfg.APIKey == "" {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "llm api key missing; set llm.api_key or OPENAI_API_KEY")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if err := errors.ValidateURL(cfg.BaseURL); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid llm base url")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid llm base url")
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = integrations.NewHTTPClient()
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
		option.WithHTTPClient(cfg.HTTPClient),
		option.WithMaxRetries(0),
	}
	return &OpenAI{
		client: openai.NewClient(opts...),
		model:  cfg.Model,
		host:   u.Host,
	}, nil
}

// Model returns the chat model name.
func (o *OpenAI) Model() string { return o.model }

// Complete sends one chat completion request.
func (o *OpenAI) Complete(ctx context.Context, system, user string) (string, error) {
	hooks := observability.HTTP()
	hooks.OnRequest(ctx, http.MethodPost, o.host, completionsPath)
	start := time.Now()

	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(o.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(system),
			openai.UserMessage(user),
		},
		Temperature: openai.Float(0.2),
	})
	if err != nil {
		var apiErr *openai.Error
		if stderrors.As(err, &apiErr) {
			hooks.OnResponse(ctx, http.MethodPost, o.host, completionsPath, apiErr.StatusCode, time.Since(start))
			retryAfter := ""
			if apiErr.Response != nil {
				retryAfter = apiErr.Response.Header.Get("Retry-After")
			}
			return "", integrations.CheckStatus(apiErr.StatusCode, retryAfter)
		}
		hooks.OnError(ctx, http.MethodPost, o.host, completionsPath, err)
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", &httputil.RetryableError{Err: fmt.Errorf("%w: %v", integrations.ErrNetwork, err)}
	}
	hooks.OnResponse(ctx, http.MethodPost, o.host, completionsPath, http.StatusOK, time.Since(start))

	if len(resp.Choices) == 0 {
		return "", errors.New(errors.ErrCodeUnavailable, "openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

var _ Completer = (*OpenAI)(nil)
