package document

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibridge/directory-api/internal/handler"
	"github.com/medibridge/directory-api/internal/service/document"
)

type Handler struct {
	service *document.Service
}

func NewHandler(service *document.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/documents/upload", h.Upload)
}

// Upload accepts multipart form data: patient_id plus a single file part.
// The size-limit middleware bounds the request; within that, the file is
// buffered whole.
func (h *Handler) Upload(c *gin.Context) {
	patientID := c.PostForm("patient_id")
	if patientID == "" {
		patientID = c.Query("patient_id")
	}
	if patientID == "" {
		c.JSON(http.StatusUnprocessableEntity, handler.NewErrorResponse("patient_id is required"))
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, handler.NewErrorResponse("file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	defer file.Close()

	id, err := h.service.Store(
		c.Request.Context(),
		patientID,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
	)
	if err != nil {
		handler.RespondError(c, err)
		return
	}
	handler.RespondCreated(c, id)
}
