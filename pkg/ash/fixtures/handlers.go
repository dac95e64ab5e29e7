package fixtures

import (
	"net/http"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes import and export over HTTP
type Handler struct {
	loader *Loader
	log    *zap.Logger
}

// NewHandler creates a new import/export handler
func NewHandler(loader *Loader, log *zap.Logger) *Handler {
	return &Handler{loader: loader, log: log}
}

// Import imports a fixture document
// @Summary Import data
// @Description Groups whose course and title already exist are skipped
// @Tags import-export
// @Accept json
// @Produce json
// @Param request body Document true "Fixture document"
// @Success 200 {object} Result
// @Failure 400 {object} map[string]string "Invalid document"
// @Router /import [post]
func (h *Handler) Import(c *gin.Context) {
	var doc Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("Invalid import document"))
		return
	}

	result, err := h.loader.Import(c.Request.Context(), &doc)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Export returns all groups, resources and announcements
// @Summary Export data
// @Tags import-export
// @Produce json
// @Param download query bool false "Send as an attachment"
// @Success 200 {object} Document
// @Router /export [get]
func (h *Handler) Export(c *gin.Context) {
	doc, err := h.loader.Export(c.Request.Context())
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	if c.Query("download") == "true" {
		c.Header("Content-Disposition", "attachment; filename=ash-export.json")
	}

	c.JSON(http.StatusOK, doc)
}

// RegisterRoutes registers import/export routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/import", h.Import)
	rg.GET("/export", h.Export)
}
