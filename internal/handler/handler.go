package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/medibridge/directory-api/internal/repository/store"
)

// AppName is reported by the status endpoint.
const AppName = "MediBridge Bangalore API"

// Handler serves the base routes: app status and the store diagnostic.
type Handler struct {
	backend store.Backend
}

func NewHandler(backend store.Backend) *Handler {
	return &Handler{backend: backend}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/", h.Root)
	r.GET("/test", h.TestStore)
}

func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"app": AppName, "status": "ok"})
}

// TestStore is the one endpoint that reports store connectivity; everywhere
// else a store failure propagates as a 500.
func (h *Handler) TestStore(c *gin.Context) {
	info := gin.H{
		"backend":     "running",
		"database":    "connected",
		"collections": []string{},
	}

	ctx := c.Request.Context()
	if err := h.backend.Ping(ctx); err != nil {
		info["database"] = "not connected"
		info["error"] = err.Error()
		c.JSON(http.StatusOK, info)
		return
	}

	collections, err := h.backend.Collections(ctx)
	if err != nil {
		info["error"] = err.Error()
	} else if collections != nil {
		info["collections"] = collections
	}
	c.JSON(http.StatusOK, info)
}
