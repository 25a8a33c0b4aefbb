package chat

// Reply is the pipeline result. Every pipeline run ends in a Reply; stage
// failures become apologetic text rather than errors.
type Reply struct {
	Success  bool     `json:"success"`
	Route    int      `json:"route"`
	Response Response `json:"response"`
}

type Response struct {
	Type     string           `json:"type"` // "text" | "chart"
	Content  string           `json:"content,omitempty"`
	HTML     string           `json:"html,omitempty"`
	Title    string           `json:"title,omitempty"`
	SQLQuery string           `json:"sqlQuery,omitempty"`
	RawData  []map[string]any `json:"rawData,omitempty"`
}

// Suggestions offered to the chat UI.
var Suggestions = []string{
	"How many plants do I have in total?",
	"Show me plants that need watering",
	"What's the health status of my crops?",
	"Show me a chart of plants by field",
	"Which plants are at risk or critical?",
	"How many irrigation events happened this week?",
	"Show me the distribution of plant types",
	"What notes have been added recently?",
	"Compare plant quantities across fields",
	"Show irrigation history trends",
}
