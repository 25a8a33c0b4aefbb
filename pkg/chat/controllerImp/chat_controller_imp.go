package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/karamsafarli/siemens-hackathon/pkg/ai"
	"github.com/karamsafarli/siemens-hackathon/pkg/chat"
	"github.com/karamsafarli/siemens-hackathon/pkg/chat/controller"
	"github.com/karamsafarli/siemens-hackathon/pkg/chat/service"
)

type chatCtrl struct {
	svc        service.ChatService
	configured bool
}

// New builds the chat controller. configured=false means no LLM credential
// was provided at startup; requests then fail with 500 up front instead of
// mid-pipeline.
func New(svc service.ChatService, configured bool) controller.ChatController {
	return &chatCtrl{svc: svc, configured: configured}
}

type chatReq struct {
	Message             string       `json:"message"`
	ConversationHistory []ai.Message `json:"conversationHistory"`
}

func (h *chatCtrl) Chat(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	if req.Message == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Message is required"})
	}
	if !h.configured {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "OpenAI API key not configured"})
	}

	reply := h.svc.Ask(c.Request().Context(), req.Message, req.ConversationHistory)
	return c.JSON(http.StatusOK, reply)
}

func (h *chatCtrl) Suggestions(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"suggestions": chat.Suggestions})
}
