package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"blog-backend/pkg/config"
)

const systemPrompt = `You are a professional blog writer. Generate a well-structured blog post based on the user's prompt.
Return ONLY a valid JSON object with the following structure:
{
    "title": "Blog post title",
    "content": "Full blog post content (800-1200 words, use markdown formatting)",
    "excerpt": "Brief summary (150-200 characters)",
    "tags": ["tag1", "tag2", "tag3"]
}`

const fallbackTitle = "AI Generated Blog Post"

// Draft is the normalized outcome of a model response. Fallback is set when
// the response contained no parseable JSON object and the draft was
// synthesized from the raw text instead.
type Draft struct {
	Title    string
	Content  string
	Excerpt  string
	Tags     []string
	Fallback bool
}

type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:  cfg.OpenRouterAPIKey,
		baseURL: cfg.OpenRouterBaseURL,
		model:   cfg.AIModel,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// GenerateBlogPost sends the prompt to the chat-completion endpoint and
// normalizes the model's textual answer into a Draft. Upstream failures are
// hard errors; malformed model output is not.
func (c *Client) GenerateBlogPost(ctx context.Context, prompt string) (*Draft, error) {
	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	}

	var reqBody bytes.Buffer
	if err := json.NewEncoder(&reqBody).Encode(payload); err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, &reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call AI endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("AI endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var data chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode AI response: %w", err)
	}
	if len(data.Choices) == 0 {
		return nil, fmt.Errorf("AI response contained no choices")
	}

	return parseDraft(data.Choices[0].Message.Content), nil
}

// parseDraft extracts the JSON object from the model text and backfills any
// missing keys. When no JSON object can be parsed at all, it synthesizes a
// fallback draft from the raw text.
func parseDraft(raw string) *Draft {
	blob := extractJSONBlock(raw)

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(blob), &fields); err != nil {
		return &Draft{
			Title:    fallbackTitle,
			Content:  raw,
			Excerpt:  truncateRunes(raw, 200),
			Tags:     []string{},
			Fallback: true,
		}
	}

	draft := &Draft{Tags: []string{}}

	if v, ok := fields["title"]; ok {
		json.Unmarshal(v, &draft.Title)
	} else {
		draft.Title = fallbackTitle
	}
	if v, ok := fields["content"]; ok {
		json.Unmarshal(v, &draft.Content)
	} else {
		draft.Content = raw
	}
	if v, ok := fields["excerpt"]; ok {
		json.Unmarshal(v, &draft.Excerpt)
	} else {
		draft.Excerpt = truncateRunes(draft.Content, 200)
	}
	if v, ok := fields["tags"]; ok {
		json.Unmarshal(v, &draft.Tags)
		if draft.Tags == nil {
			draft.Tags = []string{}
		}
	}

	return draft
}

// extractJSONBlock strips a fenced code block from the model text, preferring
// a block tagged "json", then the first unlabeled fence, then the raw text.
func extractJSONBlock(s string) string {
	if i := strings.Index(s, "```json"); i >= 0 {
		rest := s[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
		return strings.TrimSpace(rest)
	}
	if i := strings.Index(s, "```"); i >= 0 {
		rest := s[i+3:]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(s)
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
