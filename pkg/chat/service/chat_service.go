package service

import (
	"context"

	"github.com/karamsafarli/siemens-hackathon/pkg/ai"
	"github.com/karamsafarli/siemens-hackathon/pkg/chat"
)

type ChatService interface {
	Ask(ctx context.Context, message string, history []ai.Message) chat.Reply
}
