package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibridge/directory-api/internal/handler"
	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/service/chat"
)

type Handler struct {
	service *chat.Service
}

func NewHandler(service *chat.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat/send", h.SendMessage)
	r.GET("/chat/stream", h.StreamMessages)
}

func (h *Handler) SendMessage(c *gin.Context) {
	var req model.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	id, err := h.service.Send(c.Request.Context(), req.ChatMessage())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, id)
}

// StreamMessages serves a room's live messages over server-sent events.
// Only messages published after the subscription are delivered.
func (h *Handler) StreamMessages(c *gin.Context) {
	roomID := c.Query("room_id")
	if roomID == "" {
		c.JSON(http.StatusUnprocessableEntity, handler.NewErrorResponse("room_id is required"))
		return
	}

	msgs, err := h.service.Stream(c.Request.Context(), roomID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Writer.Flush()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			c.SSEvent("message", string(msg))
			c.Writer.Flush()
		}
	}
}
