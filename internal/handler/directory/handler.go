package directory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibridge/directory-api/internal/handler"
	"github.com/medibridge/directory-api/internal/model"
	"github.com/medibridge/directory-api/internal/service/directory"
)

type Handler struct {
	service *directory.Service
}

func NewHandler(service *directory.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/hospitals", h.ListHospitals)
	r.POST("/hospitals", h.CreateHospital)
	r.GET("/doctors", h.ListDoctors)
	r.POST("/doctors", h.CreateDoctor)
	r.GET("/treatments", h.ListTreatments)
	r.POST("/treatments", h.CreateTreatment)
}

func (h *Handler) ListHospitals(c *gin.Context) {
	var filters model.HospitalFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	hospitals, err := h.service.ListHospitals(c.Request.Context(), filters)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	if hospitals == nil {
		hospitals = []*model.Hospital{}
	}
	c.JSON(http.StatusOK, hospitals)
}

func (h *Handler) CreateHospital(c *gin.Context) {
	var req model.CreateHospitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	id, err := h.service.CreateHospital(c.Request.Context(), req.Hospital())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, id)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	var filters model.DoctorFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	doctors, err := h.service.ListDoctors(c.Request.Context(), filters)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	if doctors == nil {
		doctors = []*model.Doctor{}
	}
	c.JSON(http.StatusOK, doctors)
}

func (h *Handler) CreateDoctor(c *gin.Context) {
	var req model.CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	id, err := h.service.CreateDoctor(c.Request.Context(), req.Doctor())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, id)
}

func (h *Handler) ListTreatments(c *gin.Context) {
	var filters model.TreatmentFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	treatments, err := h.service.ListTreatments(c.Request.Context(), filters)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	if treatments == nil {
		treatments = []*model.Treatment{}
	}
	c.JSON(http.StatusOK, treatments)
}

func (h *Handler) CreateTreatment(c *gin.Context) {
	var req model.CreateTreatmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.RespondBindError(c, err)
		return
	}

	id, err := h.service.CreateTreatment(c.Request.Context(), req.Treatment())
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, id)
}
