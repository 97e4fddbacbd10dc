package synth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"city_pulse/internal/config"
	"city_pulse/internal/domain"
)

const systemPrompt = `You are an editor for a city skating digest. You receive grouped skate
content (spots, events, reviews, sessions, skaters) for one city and one
period. Respond with a JSON object with exactly three string fields:
"title", "summary" and "body". The body is HTML. Do not invent content
that is not in the input.`

// Client turns a period's grouped content into a digest via an
// OpenAI-compatible chat completions endpoint.
type Client struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewClient(cfg config.SynthesisConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		model:      cfg.Model,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With("component", "synth"),
	}
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	ResponseFormat *formatSpec   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type formatSpec struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Synthesize(ctx context.Context, req domain.SynthesisRequest) (domain.Digest, error) {
	payload, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: buildPrompt(req)},
		},
		ResponseFormat: &formatSpec{Type: "json_object"},
	})
	if err != nil {
		return domain.Digest{}, fmt.Errorf("marshal synthesis request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return domain.Digest{}, fmt.Errorf("build synthesis request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return domain.Digest{}, fmt.Errorf("call synthesis API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.Digest{}, fmt.Errorf("synthesis API returned status %d: %s", resp.StatusCode, body)
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return domain.Digest{}, fmt.Errorf("decode synthesis response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return domain.Digest{}, fmt.Errorf("synthesis response contained no choices")
	}

	var digest domain.Digest
	content := strings.TrimSpace(cr.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &digest); err != nil {
		return domain.Digest{}, fmt.Errorf("parse digest JSON: %w", err)
	}
	if digest.Title == "" || digest.Body == "" {
		return domain.Digest{}, fmt.Errorf("digest is missing title or body")
	}
	return digest, nil
}

func buildPrompt(req domain.SynthesisRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "City: %s\nPeriod: %s\nPublish date: %s\n",
		req.CityName, req.PeriodLabel, req.PublishDate.Format("2006-01-02"))

	types := make([]string, 0, len(req.Grouped))
	for t := range req.Grouped {
		types = append(types, string(t))
	}
	sort.Strings(types)

	for _, t := range types {
		items := req.Grouped[domain.ContentType(t)]
		fmt.Fprintf(&b, "\n## %s (%d)\n", t, len(items))
		for _, item := range items {
			b.WriteString(string(item.Payload))
			b.WriteByte('\n')
		}
	}
	return b.String()
}
