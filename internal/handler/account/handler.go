package account

import (
	"github.com/gin-gonic/gin"

	"github.com/medibridge/directory-api/internal/handler"
	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/service/account"
)

type Handler struct {
	service *account.Service
}

func NewHandler(service *account.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/patients", h.CreatePatient)
	r.POST("/staff", h.CreateStaff)
}

func (h *Handler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	id, err := h.service.CreatePatient(c.Request.Context(), req.Patient())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, id)
}

func (h *Handler) CreateStaff(c *gin.Context) {
	var req model.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	id, err := h.service.CreateStaff(c.Request.Context(), req.Staff())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, id)
}
