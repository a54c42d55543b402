package estimate

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibridge/directory-api/internal/handler"
	"github.com/medibridge/directory-api/internal/service/estimate"
)

type Handler struct {
	service *estimate.Service
}

func NewHandler(service *estimate.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/recommend", h.Recommend)
}

func (h *Handler) Recommend(c *gin.Context) {
	var req estimate.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	resp, err := h.service.Recommend(c.Request.Context(), req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
