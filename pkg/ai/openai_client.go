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
)

type openAI struct {
	endpoint string
	key      string
	model    string
	schema   string
	userID   string
	httpc    *http.Client
}

// NewOpenAI talks to any OpenAI-compatible chat-completions endpoint.
// schema and userID are baked into the classification prompt; the model
// substitutes the literal user id into generated SQL.
func NewOpenAI(endpoint, key, model, schema, userID string) Client {
	if schema == "" {
		schema = DefaultSchema
	}
	return &openAI{
		endpoint: endpoint,
		key:      key,
		model:    model,
		schema:   schema,
		userID:   userID,
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []Message      `json:"messages"`
	Temperature    float64        `json:"temperature"`
	ResponseFormat map[string]any `json:"response_format,omitempty"`
}

func (c *openAI) complete(ctx context.Context, req chatRequest) (string, error) {
	b, err := json.Marshal(req)
	if err != nil {
		return "", err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		strings.TrimRight(c.endpoint, "/")+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.key)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return "", fmt.Errorf("llm status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

func (c *openAI) Classify(ctx context.Context, question string, history []Message) (RouteDecision, error) {
	system := fill(routeClassificationPrompt, map[string]string{
		"{SCHEMA}":  c.schema,
		"{USER_ID}": c.userID,
	})
	msgs := make([]Message, 0, len(history)+2)
	msgs = append(msgs, Message{Role: "system", Content: system})
	msgs = append(msgs, history...)
	msgs = append(msgs, Message{Role: "user", Content: question})

	content, err := c.complete(ctx, chatRequest{
		Model:          c.model,
		Messages:       msgs,
		Temperature:    0.3,
		ResponseFormat: map[string]any{"type": "json_object"},
	})
	if err != nil {
		return RouteDecision{}, err
	}

	var decision RouteDecision
	if err := json.Unmarshal([]byte(content), &decision); err != nil {
		return RouteDecision{}, &ClassificationParseError{Raw: content, Err: err}
	}
	if decision.Route < RouteOffTopic || decision.Route > RouteVisualization {
		return RouteDecision{}, &ClassificationParseError{Raw: content, Err: fmt.Errorf("route %d out of range", decision.Route)}
	}
	return decision, nil
}

func (c *openAI) Summarize(ctx context.Context, question, sqlQuery string, rows []map[string]any, language string) (string, error) {
	results, _ := json.MarshalIndent(rows, "", "  ")
	system := fill(textResponsePrompt, map[string]string{
		"{QUERY}":         sqlQuery,
		"{RESULTS}":       string(results),
		"{USER_QUESTION}": question,
		"{LANGUAGE}":      languageName(language),
	})
	return c.complete(ctx, chatRequest{
		Model:       c.model,
		Messages:    []Message{{Role: "system", Content: system}},
		Temperature: 0.7,
	})
}

func (c *openAI) Visualize(ctx context.Context, question, sqlQuery string, rows []map[string]any) (ChartSpec, error) {
	results, _ := json.MarshalIndent(rows, "", "  ")
	system := fill(chartGenerationPrompt, map[string]string{
		"{QUERY}":         sqlQuery,
		"{RESULTS}":       string(results),
		"{USER_QUESTION}": question,
	})
	content, err := c.complete(ctx, chatRequest{
		Model:          c.model,
		Messages:       []Message{{Role: "system", Content: system}},
		Temperature:    0.5,
		ResponseFormat: map[string]any{"type": "json_object"},
	})
	if err != nil {
		return ChartSpec{}, err
	}
	var spec ChartSpec
	if err := json.Unmarshal([]byte(content), &spec); err != nil {
		return ChartSpec{}, fmt.Errorf("parse chart spec: %w", err)
	}
	return spec, nil
}
