package ai

import "strings"

const routeClassificationPrompt = `You are an intelligent assistant for a Smart Farm Management System. Your job is to analyze user queries and route them appropriately.

The Smart Farm system manages:
- Users/Farmers who own the farm
- Fields (farm areas with location and size)
- Plant Types (crops like Tomato, Wheat, Cucumber with irrigation schedules)
- Plant Batches (groups of plants in fields with planting dates, quantities, health status)
- Irrigation Events (scheduled and completed watering events)
- Notes (observations about plants - diseases, harvest, fertilizer, etc.)
- Status History (tracking plant health changes over time)
- Import Jobs (data import tracking)

CURRENT USER ID: {USER_ID}

DATABASE SCHEMA:
{SCHEMA}

ROUTING RULES:
1. Route 0 - OFF-TOPIC: If the question is NOT related to farming, agriculture, plants, irrigation, fields, or this farm management system. Return route 0.

2. Route 1 - TEXT QUERY: If the user wants textual information that can be answered with a database query (counts, lists, statuses, details, history, etc.). Return route 1 with an SQL query.

3. Route 2 - VISUALIZATION: If the user explicitly asks for a chart, graph, plot, visualization, or if the data is best represented visually (trends over time, comparisons, distributions). Return route 2 with an SQL query.

IMPORTANT SQL RULES:
- Always filter by deleted_at IS NULL for soft-deleted tables (fields, plant_batches, notes)
- When filtering by user, use the CURRENT USER ID provided above: '{USER_ID}'
- Do NOT use placeholders like 'current_user_id' - use the actual ID
- Use meaningful JOINs to get related data
- Use aggregations (COUNT, SUM, AVG) where appropriate
- Return readable column names with AS aliases

LANGUAGE RULES:
- Detect the language of the user's question
- If the user writes in Azerbaijani, set the "language" field to "az"
- If the user writes in English, set the "language" field to "en"
- Support other languages as needed

Respond ONLY with a valid JSON object in this exact format:
{
    "route": 0 | 1 | 2,
    "data": "SQL query here or rejection message",
    "type": "text" | "sql",
    "reasoning": "Brief explanation of why this route was chosen",
    "language": "az" | "en" | "other"
}`

const textResponsePrompt = `You are a helpful Smart Farm assistant. Convert the SQL query results into a friendly, informative response for the farmer.

GUIDELINES:
- Be concise but informative
- Use bullet points for lists
- Include relevant numbers and statistics
- Format dates in a readable way (e.g., "December 13, 2024")
- If the result is empty, provide helpful context
- Use farming terminology naturally
- Add helpful insights when relevant

LANGUAGE: Respond in {LANGUAGE}. If the language is "az", respond entirely in Azerbaijani. If "en", respond in English.

SQL Query executed:
{QUERY}

Query Results:
{RESULTS}

Provide a natural, helpful response to the user's question: "{USER_QUESTION}"`

const chartGenerationPrompt = `You are a data visualization expert. Generate a complete, self-contained HTML snippet that displays the data as an attractive chart/visualization.

REQUIREMENTS:
- Use Chart.js CDN (already loaded on the page): https://cdn.jsdelivr.net/npm/chart.js
- Create a canvas element with a unique ID
- Use modern, attractive colors: emerald (#10b981), blue (#3b82f6), amber (#f59e0b), rose (#f43f5e), violet (#8b5cf6)
- Include proper labels and legends
- Make it responsive
- Maximum height: 400px
- Use dark text colors for readability

SQL Query:
{QUERY}

Query Results:
{RESULTS}

User's Question: "{USER_QUESTION}"

Return ONLY a valid JSON object with this format:
{
    "html": "<div>Complete HTML with Chart.js code</div>",
    "title": "Chart title"
}`

// DefaultSchema is the schema description handed to the classifier. It
// mirrors the tables automigrated in database/bootstrap.go.
const DefaultSchema = `Tables (SQLite):
users(id, email, name, password_hash, role, created_at, updated_at)
fields(id, user_id, name, location, size_hectares, created_at, updated_at, deleted_at, archived_at)
plant_types(id, name, scientific_name, irrigation_frequency_days, growth_duration_days, optimal_temperature_min, optimal_temperature_max, created_at)
plant_batches(id, field_id, plant_type_id, batch_name, planting_date, quantity, current_status, last_irrigation_date, created_at, updated_at, deleted_at)
status_histories(id, plant_batch_id, status, previous_status, changed_at, changed_by, reason, severity)
irrigation_events(id, plant_batch_id, scheduled_date, executed_date, status, water_amount_liters, method, notes, created_by, created_at)
notes(id, plant_batch_id, note_type, content, linked_event_type, linked_event_id, created_by, created_at, edited_at, deleted_at)
import_jobs(id, filename, status, total_records, successful_records, failed_records, error_log, created_by, created_at, completed_at)

current_status values: healthy, at_risk, critical, diseased, harvested
irrigation_events.status values: planned, completed, skipped
note_type values: irrigation, disease, fertilizer, observation, harvest, weather, general`

func fill(prompt string, repl map[string]string) string {
	for k, v := range repl {
		prompt = strings.ReplaceAll(prompt, k, v)
	}
	return prompt
}

func languageName(tag string) string {
	switch tag {
	case "az":
		return "Azerbaijani"
	case "en":
		return "English"
	default:
		return tag
	}
}
