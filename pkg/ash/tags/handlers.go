package tags

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles tag-related requests
type Handler struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewHandler creates a new tags handler
func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{db: db, log: log}
}

// TagResponse represents a tag in API responses
type TagResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	GroupCount    int    `json:"group_count"`
	ResourceCount int    `json:"resource_count"`
}

// SetTagsRequest represents the request to replace the tags on a group or resource
type SetTagsRequest struct {
	Tags []string `json:"tags" binding:"required"`
}

// List returns all tags with usage counts
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {array} TagResponse
// @Router /tags [get]
func (h *Handler) List(c *gin.Context) {
	var results []TagResponse
	err := h.db.WithContext(c.Request.Context()).Table("tags").
		Select(`tags.id, tags.name,
			(SELECT COUNT(*) FROM group_tags WHERE group_tags.tag_id = tags.id) AS group_count,
			(SELECT COUNT(*) FROM resource_tags WHERE resource_tags.tag_id = tags.id) AS resource_count`).
		Where("tags.deleted_at IS NULL").
		Order("tags.name ASC").
		Scan(&results).Error
	if err != nil {
		apperr.Respond(c, h.log, apperr.Storage(err, "Failed to fetch tags"))
		return
	}
	if results == nil {
		results = []TagResponse{}
	}

	c.JSON(http.StatusOK, results)
}

// SetGroupTags replaces the tags on a study group
// @Summary Set study group tags
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body SetTagsRequest true "Tags"
// @Success 200 {array} string
// @Router /study-groups/{id}/tags [put]
func (h *Handler) SetGroupTags(c *gin.Context) {
	h.setTags(c, &models.Group{}, "Group not found")
}

// SetResourceTags replaces the tags on a resource
// @Summary Set resource tags
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Resource ID"
// @Param request body SetTagsRequest true "Tags"
// @Success 200 {array} string
// @Router /resources/{id}/tags [put]
func (h *Handler) SetResourceTags(c *gin.Context) {
	h.setTags(c, &models.Resource{}, "Resource not found")
}

func (h *Handler) setTags(c *gin.Context, owner interface{}, notFound string) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperr.Respond(c, h.log, apperr.Validation("Invalid ID"))
		return
	}

	var req SetTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation(err.Error()))
		return
	}

	db := h.db.WithContext(c.Request.Context())
	if err := db.First(owner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, h.log, apperr.NotFound(notFound))
		} else {
			apperr.Respond(c, h.log, apperr.Storage(err, "Failed to update tags"))
		}
		return
	}

	var names []string
	err = db.Transaction(func(tx *gorm.DB) error {
		tags, err := Ensure(tx, req.Tags...)
		if err != nil {
			return err
		}
		names = Names(tags)
		if len(tags) == 0 {
			return tx.Model(owner).Association("Tags").Clear()
		}
		return tx.Model(owner).Association("Tags").Replace(tags)
	})
	if err != nil {
		apperr.Respond(c, h.log, apperr.Storage(err, "Failed to update tags"))
		return
	}
	if names == nil {
		names = []string{}
	}

	c.JSON(http.StatusOK, names)
}

// RegisterRoutes registers tag routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/tags", h.List)
	rg.PUT("/study-groups/:id/tags", h.SetGroupTags)
	rg.PUT("/resources/:id/tags", h.SetResourceTags)
}
