package analyzer

import (
	"context"
	"fmt"
	"time"

	dservice "FormPull/internal/domain/service"
	xhttp "FormPull/pkg/http"
	"FormPull/pkg/logger"
)

// Client implements a messages-style completion API for race analysis.
type Client struct {
	baseURL   string
	apiKey    string
	model     string
	maxTokens int
	http      *xhttp.Client
	log       *logger.Logger
}

// New creates a new analyzer client.
func New(baseURL, apiKey, model string, maxTokens int, timeout time.Duration, log *logger.Logger) dservice.Analyzer {
	if maxTokens <= 0 {
		maxTokens = 8192
	}
	return &Client{
		baseURL:   baseURL,
		apiKey:    apiKey,
		model:     model,
		maxTokens: maxTokens,
		http:      xhttp.NewClient(xhttp.WithTimeout(timeout)),
		log:       log,
	}
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Text string `json:"text"`
}

// Analyze sends a prompt and returns the raw text completion.
func (c *Client) Analyze(ctx context.Context, prompt string) (string, error) {
	start := time.Now()

	var resp messagesResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodPost,
		URL:    c.baseURL + "/v1/messages",
		Headers: map[string]string{
			"x-api-key":         c.apiKey,
			"anthropic-version": "2023-06-01",
			"Content-Type":      "application/json",
		},
		Body: messagesRequest{
			Model:     c.model,
			MaxTokens: c.maxTokens,
			Messages:  []message{{Role: "user", Content: prompt}},
		},
	}, &resp)
	if err != nil {
		return "", fmt.Errorf("analyzer request: %w", err)
	}

	if len(resp.Content) == 0 {
		return "", fmt.Errorf("analyzer: empty response")
	}

	c.log.Debug("analyzer response",
		logger.Duration("duration_ms", time.Since(start)),
		logger.Int("chars", len(resp.Content[0].Text)),
	)
	return resp.Content[0].Text, nil
}
