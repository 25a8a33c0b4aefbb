package ai

import (
	"context"
	"fmt"
)

// Routes the classifier can choose.
const (
	RouteOffTopic      = 0
	RouteText          = 1
	RouteVisualization = 2
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// RouteDecision is the classifier output for one user question.
type RouteDecision struct {
	Route     int    `json:"route"`
	Data      string `json:"data"`      // SQL query or rejection message
	Type      string `json:"type"`      // "text" | "sql"
	Reasoning string `json:"reasoning"` // diagnostics only, never shown to the user
	Language  string `json:"language"`  // "az" | "en" | "other"
}

// ChartSpec is a self-contained renderable chart: title plus HTML that
// declares its own labels and legend, bounded at 400px height.
type ChartSpec struct {
	HTML  string `json:"html"`
	Title string `json:"title"`
}

// ClassificationParseError means the model's classification output was not
// well-formed JSON of the expected shape. The pipeline treats it as a
// route-0 fallback, never a crash.
type ClassificationParseError struct {
	Raw string
	Err error
}

func (e *ClassificationParseError) Error() string {
	return fmt.Sprintf("parse classification: %v", e.Err)
}

func (e *ClassificationParseError) Unwrap() error { return e.Err }

type Client interface {
	// Classify routes the question: off-topic rejection, a read-only SQL
	// statement for a textual answer, or one for a chart. history carries
	// at most the trailing turns the caller wants as context.
	Classify(ctx context.Context, question string, history []Message) (RouteDecision, error)

	// Summarize turns query results into a natural-language answer in the
	// detected language.
	Summarize(ctx context.Context, question, sqlQuery string, rows []map[string]any, language string) (string, error)

	// Visualize turns query results into a chart description.
	Visualize(ctx context.Context, question, sqlQuery string, rows []map[string]any) (ChartSpec, error)
}
