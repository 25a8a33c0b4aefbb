package ai

import (
	"context"
	"fmt"
	"strings"
)

type mockClient struct {
	userID string
}

// NewMock is used when no LLM credentials are configured. It routes on
// simple keyword checks so the rest of the pipeline stays exercisable.
func NewMock(userID string) Client { return &mockClient{userID: userID} }

func (m *mockClient) Classify(ctx context.Context, question string, history []Message) (RouteDecision, error) {
	q := strings.ToLower(question)

	farmWords := []string{"plant", "field", "irrigat", "water", "crop", "batch", "harvest", "farm", "note"}
	onTopic := false
	for _, w := range farmWords {
		if strings.Contains(q, w) {
			onTopic = true
			break
		}
	}
	if !onTopic {
		return RouteDecision{
			Route:    RouteOffTopic,
			Data:     "I can only help with questions about your farm - plants, fields and irrigation.",
			Type:     "text",
			Language: "en",
		}, nil
	}

	sql := fmt.Sprintf(
		"SELECT pb.batch_name, pb.current_status FROM plant_batches pb JOIN fields f ON f.id = pb.field_id WHERE f.user_id = '%s' AND pb.deleted_at IS NULL AND f.deleted_at IS NULL",
		m.userID,
	)
	route := RouteText
	if strings.Contains(q, "chart") || strings.Contains(q, "graph") || strings.Contains(q, "plot") {
		route = RouteVisualization
	}
	return RouteDecision{Route: route, Data: sql, Type: "sql", Language: "en"}, nil
}

func (m *mockClient) Summarize(ctx context.Context, question, sqlQuery string, rows []map[string]any, language string) (string, error) {
	if len(rows) == 0 {
		return "No data found for that question.", nil
	}
	return fmt.Sprintf("Found %d matching record(s) for your question.", len(rows)), nil
}

func (m *mockClient) Visualize(ctx context.Context, question, sqlQuery string, rows []map[string]any) (ChartSpec, error) {
	return ChartSpec{
		Title: "Farm overview",
		HTML:  `<div style="max-height:400px"><canvas id="mock-chart"></canvas></div>`,
	}, nil
}
