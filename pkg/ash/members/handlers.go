package members

import (
	"net/http"
	"strconv"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrMemberNotFound is returned for an unknown member
var ErrMemberNotFound = apperr.NotFound("Member not found")

// Handler handles member directory requests
type Handler struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewHandler creates a new members handler
func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{db: db, log: log}
}

// MemberResponse represents a member in API responses
type MemberResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email,omitempty"`
	GroupCount int64  `json:"group_count"`
}

// List returns members, optionally filtered by name or email
// @Summary List members
// @Tags members
// @Produce json
// @Param q query string false "Search by name or email"
// @Success 200 {array} MemberResponse
// @Router /members [get]
func (h *Handler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).Order("name ASC")

	if search := c.Query("q"); search != "" {
		like := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", like, like)
	}

	var members []models.Member
	if err := query.Find(&members).Error; err != nil {
		apperr.Respond(c, h.log, apperr.Storage(err, "Failed to fetch members"))
		return
	}

	responses := make([]MemberResponse, len(members))
	for i, m := range members {
		var groupCount int64
		h.db.Model(&models.Membership{}).Where("member_id = ?", m.ID).Count(&groupCount)
		responses[i] = MemberResponse{ID: m.ID, Name: m.Name, Email: m.Email, GroupCount: groupCount}
	}

	c.JSON(http.StatusOK, responses)
}

// Get returns a single member
// @Summary Get a member
// @Tags members
// @Produce json
// @Param id path int true "Member ID"
// @Success 200 {object} MemberResponse
// @Failure 404 {object} map[string]string "Member not found"
// @Router /members/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperr.Respond(c, h.log, apperr.Validation("Invalid member ID"))
		return
	}

	var member models.Member
	if err := h.db.WithContext(c.Request.Context()).First(&member, id).Error; err != nil {
		apperr.Respond(c, h.log, ErrMemberNotFound)
		return
	}

	var groupCount int64
	h.db.Model(&models.Membership{}).Where("member_id = ?", member.ID).Count(&groupCount)

	c.JSON(http.StatusOK, MemberResponse{ID: member.ID, Name: member.Name, Email: member.Email, GroupCount: groupCount})
}

// RegisterRoutes registers member routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
}
