// Package contact serves the stateless utility endpoints: the supported
// language list and the WhatsApp deep-link builder.
package contact

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibridge/directory-api/internal/handler"
	"github.com/medibridge/directory-api/pkg/whatsapp"
)

var supportedLanguages = []string{"en", "ar", "fr", "ru", "es", "bn", "ne", "ml", "kn"}

const defaultLanguage = "en"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/languages", h.Languages)
	r.GET("/contact/whatsapp", h.WhatsAppLink)
}

func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"supported": supportedLanguages,
		"default":   defaultLanguage,
	})
}

func (h *Handler) WhatsAppLink(c *gin.Context) {
	phone := c.Query("phone_e164")
	if phone == "" {
		c.JSON(http.StatusUnprocessableEntity, handler.NewErrorResponse("phone_e164 is required"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": whatsapp.Link(phone, c.Query("text"))})
}
