package serviceImp

import (
	"context"
	"errors"
	"log"

	"github.com/karamsafarli/siemens-hackathon/pkg/ai"
	"github.com/karamsafarli/siemens-hackathon/pkg/chat"
	"github.com/karamsafarli/siemens-hackathon/pkg/chat/service"
)

const (
	offTopicFallback = "I'm sorry, but I can only help with questions related to your Smart Farm - plants, fields, irrigation, and farm management. Please ask me something about your farm!"
	noQueryFallback  = "I couldn't formulate a proper query for your request. Could you please rephrase your question?"
	generalFallback  = "I'm not sure how to help with that. Please try asking about your plants, fields, irrigation schedule, or farm statistics."
)

// historyLimit caps the trailing conversation turns sent as classifier
// context.
const historyLimit = 5

type chatService struct {
	llm  ai.Client
	exec chat.Executor
}

func New(llm ai.Client, exec chat.Executor) service.ChatService {
	return &chatService{llm: llm, exec: exec}
}

// Ask runs the three-stage pipeline: Classify, guarded Execute, Respond.
// Each stage failure short-circuits into a user-visible text reply; the
// caller always gets a Reply.
func (s *chatService) Ask(ctx context.Context, message string, history []ai.Message) chat.Reply {
	if len(history) > historyLimit {
		history = history[len(history)-historyLimit:]
	}

	decision, err := s.llm.Classify(ctx, message, history)
	if err != nil {
		var parseErr *ai.ClassificationParseError
		if errors.As(err, &parseErr) {
			log.Printf("[chat] classification parse failed: %v raw=%q", parseErr.Err, parseErr.Raw)
		} else {
			log.Printf("[chat] classification failed: %v", err)
		}
		return textReply(ai.RouteOffTopic, offTopicFallback)
	}
	log.Printf("[chat] route=%d lang=%s reasoning=%s", decision.Route, decision.Language, decision.Reasoning)

	if decision.Route == ai.RouteOffTopic {
		content := decision.Data
		if content == "" {
			content = offTopicFallback
		}
		return textReply(ai.RouteOffTopic, content)
	}

	if decision.Route == ai.RouteText || decision.Route == ai.RouteVisualization {
		if decision.Data == "" || decision.Type != "sql" {
			return textReply(decision.Route, noQueryFallback)
		}

		if err := chat.CheckReadOnly(decision.Data); err != nil {
			log.Printf("[chat] unsafe query rejected: %v", err)
			return textReply(decision.Route, "I encountered an issue retrieving that information. "+err.Error())
		}

		rows, err := s.exec.Query(ctx, decision.Data)
		if err != nil {
			log.Printf("[chat] query execution failed: %v", err)
			return textReply(decision.Route, "I encountered an issue retrieving that information. "+err.Error())
		}

		if decision.Route == ai.RouteText {
			lang := decision.Language
			if lang == "" {
				lang = "en"
			}
			content, err := s.llm.Summarize(ctx, message, decision.Data, rows, lang)
			if err != nil {
				log.Printf("[chat] summarize failed: %v", err)
				return textReply(decision.Route, "I encountered an issue formulating the answer. Please try again.")
			}
			return chat.Reply{
				Success: true,
				Route:   ai.RouteText,
				Response: chat.Response{
					Type:     "text",
					Content:  content,
					SQLQuery: decision.Data,
					RawData:  rows,
				},
			}
		}

		spec, err := s.llm.Visualize(ctx, message, decision.Data, rows)
		if err != nil {
			log.Printf("[chat] visualize failed: %v", err)
			return textReply(decision.Route, "I encountered an issue building the chart. Please try again.")
		}
		return chat.Reply{
			Success: true,
			Route:   ai.RouteVisualization,
			Response: chat.Response{
				Type:     "chart",
				HTML:     spec.HTML,
				Title:    spec.Title,
				SQLQuery: decision.Data,
				RawData:  rows,
			},
		}
	}

	return textReply(ai.RouteOffTopic, generalFallback)
}

func textReply(route int, content string) chat.Reply {
	return chat.Reply{
		Success:  true,
		Route:    route,
		Response: chat.Response{Type: "text", Content: content},
	}
}
