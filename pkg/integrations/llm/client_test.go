package llm

import (
	"context"
	stderrors "errors"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/paraflow/pkg/cache"
	"github.com/matzehuels/paraflow/pkg/errors"
	"github.com/matzehuels/paraflow/pkg/flow"
	"github.com/matzehuels/paraflow/pkg/httputil"
)

type fakeLLM struct {
	replies []string
	errs    []error
	calls   int
	user    string
}

func (f *fakeLLM) Model() string { return "fake-model" }

func (f *fakeLLM) Complete(_ context.Context, system, user string) (string, error) {
	i := f.calls
	f.calls++
	f.user = user
	if i < len(f.errs) && f.errs[i] != nil {
		return "", f.errs[i]
	}
	return f.replies[min(i, len(f.replies)-1)], nil
}

func newTestClient(f *fakeLLM, c cache.Cache) *Client {
	client := NewClient(f, c, nil)
	client.SetRetry(3, time.Millisecond)
	return client
}

func TestDescribe(t *testing.T) {
	f := &fakeLLM{replies: []string{"Start brewing. Check if the kettle is full. Pour the water. End."}}
	c := newTestClient(f, nil)

	text, err := c.Describe(context.Background(), "  brewing   coffee ", false)
	if err != nil {
		t.Fatalf("Describe() error: %v", err)
	}
	if f.user != "Describe this process: brewing coffee" {
		t.Errorf("user prompt = %q", f.user)
	}

	if c.Model() != "fake-model" {
		t.Errorf("Model() = %q", c.Model())
	}

	cats := flow.Categories(flow.Segment(text))
	if cats[0] != flow.Terminal || cats[len(cats)-1] != flow.Terminal {
		t.Errorf("categories = %v", cats)
	}
}

func TestDescribeCaches(t *testing.T) {
	ctx := context.Background()
	f := &fakeLLM{replies: []string{"Start. End."}}
	c := newTestClient(f, cache.NewMemoryCache())

	for range 2 {
		if _, err := c.Describe(ctx, "Deploy", false); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := c.Describe(ctx, "deploy", false); err != nil {
		t.Fatal(err)
	}
	if f.calls != 1 {
		t.Errorf("calls = %d, want 1 (topic match is case-insensitive)", f.calls)
	}

	if _, err := c.Describe(ctx, "deploy", true); err != nil {
		t.Fatal(err)
	}
	if f.calls != 2 {
		t.Errorf("refresh should call the model, calls = %d", f.calls)
	}
}

func TestDescribeRetriesRateLimit(t *testing.T) {
	rateLimited := &httputil.RetryableError{Err: &errors.RateLimitedError{RetryAfter: 1}}
	f := &fakeLLM{
		replies: []string{"Start. End."},
		errs:    []error{rateLimited, rateLimited},
	}
	c := newTestClient(f, nil)

	if _, err := c.Describe(context.Background(), "deploy", false); err != nil {
		t.Fatalf("Describe() error: %v", err)
	}
	if f.calls != 3 {
		t.Errorf("calls = %d, want 3", f.calls)
	}
}

func TestDescribeRateLimitExhausted(t *testing.T) {
	rateLimited := &httputil.RetryableError{Err: &errors.RateLimitedError{RetryAfter: 30}}
	f := &fakeLLM{errs: []error{rateLimited, rateLimited, rateLimited}}
	c := newTestClient(f, nil)

	_, err := c.Describe(context.Background(), "deploy", false)
	var rl *errors.RateLimitedError
	if !stderrors.As(err, &rl) || rl.RetryAfter != 30 {
		t.Fatalf("err = %v, want RateLimitedError", err)
	}
	if errors.HTTPStatus(err) != 429 {
		t.Errorf("HTTPStatus = %d, want 429", errors.HTTPStatus(err))
	}
}

func TestDescribeRejectsTopic(t *testing.T) {
	c := newTestClient(&fakeLLM{replies: []string{"x"}}, nil)
	for _, topic := range []string{"", "   ", strings.Repeat("a", MaxTopicLength+1)} {
		if _, err := c.Describe(context.Background(), topic, false); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("Describe(%.10q) error = %v, want INVALID_INPUT", topic, err)
		}
	}
}

func TestDescribeEmptyReply(t *testing.T) {
	c := newTestClient(&fakeLLM{replies: []string{"```\n```"}}, nil)
	_, err := c.Describe(context.Background(), "deploy", false)
	if !errors.Is(err, errors.ErrCodeUnavailable) {
		t.Errorf("err = %v, want UNAVAILABLE", err)
	}
}

func TestParagraph(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  string
	}{
		{"plain", "Start. End.", "Start. End."},
		{"quoted", `"Start. End."`, "Start. End."},
		{"fenced", "```\nStart.\nEnd.\n```", "Start. End."},
		{"list", "- Start.\n- Read input.\n* End.", "Start. Read input. End."},
		{"whitespace", "  Start.\n\n   End.  ", "Start. End."},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Paragraph(tt.reply); got != tt.want {
				t.Errorf("Paragraph() = %q, want %q", got, tt.want)
			}
		})
	}
}
