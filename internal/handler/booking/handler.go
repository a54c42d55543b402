package booking

import (
	"github.com/gin-gonic/gin"

	"github.com/medibridge/directory-api/internal/handler"
	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/service/booking"
)

type Handler struct {
	service *booking.Service
}

func NewHandler(service *booking.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/appointments", h.CreateAppointment)
	r.POST("/travel-requests", h.CreateTravelRequest)
}

func (h *Handler) CreateAppointment(c *gin.Context) {
	var req model.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	id, err := h.service.CreateAppointment(c.Request.Context(), req.Appointment())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, id)
}

func (h *Handler) CreateTravelRequest(c *gin.Context) {
	var req model.CreateTravelRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	id, err := h.service.CreateTravelRequest(c.Request.Context(), req.TravelRequest())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, id)
}
