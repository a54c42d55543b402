package analytics

import (
	"github.com/gin-gonic/gin"

	"github.com/medibridge/directory-api/internal/handler"
	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/service/analytics"
)

type Handler struct {
	service *analytics.Service
}

func NewHandler(service *analytics.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/analytics", h.TrackEvent)
}

func (h *Handler) TrackEvent(c *gin.Context) {
	var req model.TrackEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	id, err := h.service.Track(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, id)
}
