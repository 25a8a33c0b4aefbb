package serviceImp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/karamsafarli/siemens-hackathon/pkg/ai"
	"github.com/karamsafarli/siemens-hackathon/pkg/chat"
)

type stubClient struct {
	decision     ai.RouteDecision
	classifyErr  error
	summary      string
	summarizeErr error
	chart        ai.ChartSpec
	visualizeErr error

	gotHistory  []ai.Message
	gotLanguage string
}

func (s *stubClient) Classify(_ context.Context, _ string, history []ai.Message) (ai.RouteDecision, error) {
	s.gotHistory = history
	return s.decision, s.classifyErr
}

func (s *stubClient) Summarize(_ context.Context, _, _ string, _ []map[string]any, language string) (string, error) {
	s.gotLanguage = language
	return s.summary, s.summarizeErr
}

func (s *stubClient) Visualize(_ context.Context, _, _ string, _ []map[string]any) (ai.ChartSpec, error) {
	return s.chart, s.visualizeErr
}

type stubExecutor struct {
	rows     []map[string]any
	err      error
	executed []string
}

func (s *stubExecutor) Query(_ context.Context, query string) ([]map[string]any, error) {
	s.executed = append(s.executed, query)
	return s.rows, s.err
}

func TestAskTextRoute(t *testing.T) {
	llm := &stubClient{
		decision: ai.RouteDecision{
			Route:    ai.RouteText,
			Data:     "SELECT count(*) AS total FROM plant_batches",
			Type:     "sql",
			Language: "en",
		},
		summary: "You have 12 plants in total.",
	}
	exec := &stubExecutor{rows: []map[string]any{{"total": int64(12)}}}

	reply := New(llm, exec).Ask(context.Background(), "How many plants do I have?", nil)

	assert.True(t, reply.Success)
	assert.Equal(t, ai.RouteText, reply.Route)
	assert.Equal(t, "text", reply.Response.Type)
	assert.Equal(t, "You have 12 plants in total.", reply.Response.Content)
	assert.Equal(t, "SELECT count(*) AS total FROM plant_batches", reply.Response.SQLQuery)
	assert.Equal(t, exec.rows, reply.Response.RawData)
	assert.Equal(t, "en", llm.gotLanguage)
	require.Len(t, exec.executed, 1)
}

func TestAskVisualizationRoute(t *testing.T) {
	llm := &stubClient{
		decision: ai.RouteDecision{
			Route: ai.RouteVisualization,
			Data:  "SELECT name, count(*) AS n FROM fields GROUP BY name",
			Type:  "sql",
		},
		chart: ai.ChartSpec{HTML: "<div>chart</div>", Title: "Plants by field"},
	}
	exec := &stubExecutor{rows: []map[string]any{{"name": "North", "n": int64(3)}}}

	reply := New(llm, exec).Ask(context.Background(), "Show me a chart of plants by field", nil)

	assert.True(t, reply.Success)
	assert.Equal(t, ai.RouteVisualization, reply.Route)
	assert.Equal(t, "chart", reply.Response.Type)
	assert.Equal(t, "<div>chart</div>", reply.Response.HTML)
	assert.Equal(t, "Plants by field", reply.Response.Title)
	assert.Equal(t, exec.rows, reply.Response.RawData)
}

func TestAskOffTopic(t *testing.T) {
	// Scenario: classifier declines with its own wording.
	llm := &stubClient{decision: ai.RouteDecision{Route: ai.RouteOffTopic, Data: "I only answer farm questions.", Type: "text"}}
	exec := &stubExecutor{}

	reply := New(llm, exec).Ask(context.Background(), "What's the weather in Paris?", nil)

	assert.True(t, reply.Success)
	assert.Equal(t, ai.RouteOffTopic, reply.Route)
	assert.Equal(t, "I only answer farm questions.", reply.Response.Content)
	assert.Empty(t, exec.executed)
}

func TestAskOffTopicEmptyDataFallsBack(t *testing.T) {
	llm := &stubClient{decision: ai.RouteDecision{Route: ai.RouteOffTopic}}
	reply := New(llm, &stubExecutor{}).Ask(context.Background(), "hello", nil)

	assert.Equal(t, offTopicFallback, reply.Response.Content)
}

func TestAskUnsafeQueryNeverExecuted(t *testing.T) {
	llm := &stubClient{
		decision: ai.RouteDecision{Route: ai.RouteText, Data: "DROP TABLE users;", Type: "sql"},
	}
	exec := &stubExecutor{}

	reply := New(llm, exec).Ask(context.Background(), "drop everything", nil)

	assert.True(t, reply.Success)
	assert.Equal(t, "text", reply.Response.Type)
	assert.Contains(t, reply.Response.Content, "I encountered an issue retrieving that information.")
	assert.Contains(t, reply.Response.Content, "Only SELECT queries are allowed")
	assert.Empty(t, exec.executed, "unsafe query must not reach the executor")
}

func TestAskEmbeddedKeywordRejected(t *testing.T) {
	llm := &stubClient{
		decision: ai.RouteDecision{Route: ai.RouteText, Data: "SELECT 1; DELETE FROM fields", Type: "sql"},
	}
	exec := &stubExecutor{}

	reply := New(llm, exec).Ask(context.Background(), "x", nil)

	assert.Contains(t, reply.Response.Content, "DELETE operations are not allowed")
	assert.Empty(t, exec.executed)
}

func TestAskClassificationParseErrorFallsBack(t *testing.T) {
	llm := &stubClient{classifyErr: &ai.ClassificationParseError{Raw: "not json", Err: errors.New("bad json")}}
	exec := &stubExecutor{}

	reply := New(llm, exec).Ask(context.Background(), "How many plants?", nil)

	assert.True(t, reply.Success)
	assert.Equal(t, ai.RouteOffTopic, reply.Route)
	assert.Equal(t, offTopicFallback, reply.Response.Content)
	assert.Empty(t, exec.executed)
}

func TestAskClassifyTransportErrorFallsBack(t *testing.T) {
	llm := &stubClient{classifyErr: errors.New("connection refused")}
	reply := New(llm, &stubExecutor{}).Ask(context.Background(), "x", nil)

	assert.Equal(t, ai.RouteOffTopic, reply.Route)
	assert.Equal(t, offTopicFallback, reply.Response.Content)
}

func TestAskMissingQueryFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		decision ai.RouteDecision
	}{
		{"empty data", ai.RouteDecision{Route: ai.RouteText, Type: "sql"}},
		{"wrong type", ai.RouteDecision{Route: ai.RouteText, Data: "SELECT 1", Type: "text"}},
		{"viz empty data", ai.RouteDecision{Route: ai.RouteVisualization, Type: "sql"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exec := &stubExecutor{}
			reply := New(&stubClient{decision: tt.decision}, exec).Ask(context.Background(), "x", nil)
			assert.Equal(t, noQueryFallback, reply.Response.Content)
			assert.Empty(t, exec.executed)
		})
	}
}

func TestAskExecutionErrorBecomesReply(t *testing.T) {
	llm := &stubClient{
		decision: ai.RouteDecision{Route: ai.RouteText, Data: "SELECT * FROM missing", Type: "sql"},
	}
	exec := &stubExecutor{err: &chat.QueryExecutionError{Err: errors.New("no such table: missing")}}

	reply := New(llm, exec).Ask(context.Background(), "x", nil)

	assert.True(t, reply.Success)
	assert.Contains(t, reply.Response.Content, "I encountered an issue retrieving that information.")
	assert.Contains(t, reply.Response.Content, "no such table")
}

func TestAskSummarizeErrorBecomesReply(t *testing.T) {
	llm := &stubClient{
		decision:     ai.RouteDecision{Route: ai.RouteText, Data: "SELECT 1", Type: "sql"},
		summarizeErr: errors.New("rate limited"),
	}
	reply := New(llm, &stubExecutor{}).Ask(context.Background(), "x", nil)

	assert.Equal(t, "I encountered an issue formulating the answer. Please try again.", reply.Response.Content)
}

func TestAskDefaultsLanguageToEnglish(t *testing.T) {
	llm := &stubClient{
		decision: ai.RouteDecision{Route: ai.RouteText, Data: "SELECT 1", Type: "sql"},
		summary:  "ok",
	}
	New(llm, &stubExecutor{}).Ask(context.Background(), "x", nil)

	assert.Equal(t, "en", llm.gotLanguage)
}

func TestAskTruncatesHistory(t *testing.T) {
	llm := &stubClient{decision: ai.RouteDecision{Route: ai.RouteOffTopic, Data: "hi"}}
	history := make([]ai.Message, 8)
	for i := range history {
		history[i] = ai.Message{Role: "user", Content: string(rune('a' + i))}
	}

	New(llm, &stubExecutor{}).Ask(context.Background(), "x", history)

	require.Len(t, llm.gotHistory, 5)
	// The trailing turns survive.
	assert.Equal(t, history[3:], llm.gotHistory)
}

func TestAskUnknownRoute(t *testing.T) {
	llm := &stubClient{decision: ai.RouteDecision{Route: 7, Data: "SELECT 1", Type: "sql"}}
	exec := &stubExecutor{}

	reply := New(llm, exec).Ask(context.Background(), "x", nil)

	assert.Equal(t, ai.RouteOffTopic, reply.Route)
	assert.Equal(t, generalFallback, reply.Response.Content)
	assert.Empty(t, exec.executed)
}
