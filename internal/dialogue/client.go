package dialogue

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/AsperforMias/cli-game/internal/errors"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

// ClientConfig configures the chat-completion client. BaseURL points at
// any OpenAI-compatible endpoint, without the trailing path.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client calls an OpenAI-compatible chat completion API over plain
// HTTP. Transient failures are retried once with backoff before the
// caller falls back to a canned line.
type Client struct {
	config ClientConfig
	http   *http.Client
}

// NewClient creates a client with defaults filled in.
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = defaultBaseURL
	}
	if config.Model == "" {
		config.Model = defaultModel
	}
	if config.Timeout == 0 {
		config.Timeout = 15 * time.Second
	}
	return &Client{
		config: config,
		http:   &http.Client{Timeout: config.Timeout},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Generate implements Generator against the configured endpoint.
func (c *Client) Generate(ctx context.Context, req Request) (*Reply, error) {
	payload := chatRequest{
		Model:       c.config.Model,
		Messages:    buildMessages(req),
		Temperature: 0.8,
		MaxTokens:   256,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "marshaling chat request")
	}

	resp, err := backoff.Retry(ctx, func() (*chatResponse, error) {
		return c.roundTrip(ctx, body)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(2))
	if err != nil {
		return nil, err
	}

	if resp.Error != nil {
		return nil, errors.Unavailablef("dialogue model: %s", resp.Error.Message)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.Unavailable("dialogue model returned no choices")
	}
	return parseReply(resp.Choices[0].Message.Content, req.Mood), nil
}

// roundTrip performs one HTTP exchange. Client errors are permanent;
// everything else is worth one retry.
func (c *Client) roundTrip(ctx context.Context, body []byte) (*chatResponse, error) {
	url := strings.TrimSuffix(c.config.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, backoff.Permanent(errors.Wrap(err, "building dialogue request"))
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, errors.Unavailablef("dialogue model unreachable: %v", err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, errors.Unavailablef("reading dialogue response: %v", err)
	}
	if httpResp.StatusCode >= 500 {
		return nil, errors.Unavailablef("dialogue model: status %s", httpResp.Status)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, backoff.Permanent(errors.Unavailablef("dialogue model: status %s, body: %s", httpResp.Status, respBody))
	}

	var resp chatResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, backoff.Permanent(errors.Wrapf(err, "parsing dialogue response"))
	}
	return &resp, nil
}

// parseReply reads the model output. A model that honors the format
// replies with a JSON object carrying message and mood; anything else
// is taken as the message verbatim with the mood unchanged.
func parseReply(content string, currentMood float64) *Reply {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}") {
		var out struct {
			Message string   `json:"message"`
			Mood    *float64 `json:"mood"`
		}
		if err := json.Unmarshal([]byte(trimmed), &out); err == nil && out.Message != "" {
			reply := &Reply{Message: out.Message, Mood: currentMood}
			if out.Mood != nil {
				reply.Mood = clampMood(*out.Mood)
			}
			return reply
		}
	}
	return &Reply{Message: trimmed, Mood: currentMood}
}
