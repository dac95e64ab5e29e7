package planner

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/ashub/ash/pkg/ash/members"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UnsetPriority is the rank given to assignments without a priority when sorting
const UnsetPriority = 5

var (
	// ErrEmailRequired is returned when a planner request has no email
	ErrEmailRequired = apperr.Validation("User email is required to view assignments")
	// ErrTitleRequired is returned for a blank assignment title
	ErrTitleRequired = apperr.Validation("Title is required")
	// ErrInvalidPriority is returned for a priority outside 1-4
	ErrInvalidPriority = apperr.Validation("Priority must be between 1 and 4")
	// ErrInvalidDue is returned when the due date cannot be parsed
	ErrInvalidDue = apperr.Validation("Due must be YYYY-MM-DD or an RFC 3339 timestamp")
)

// Handler handles planner requests
type Handler struct {
	db       *gorm.DB
	registry *members.Registry
	log      *zap.Logger
}

// NewHandler creates a new planner handler
func NewHandler(db *gorm.DB, registry *members.Registry, log *zap.Logger) *Handler {
	return &Handler{db: db, registry: registry, log: log}
}

// CreateAssignmentRequest represents the request to add a planner entry
type CreateAssignmentRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	Notes    string `json:"notes"`
	Due      string `json:"due"`
	Priority *int   `json:"priority"`
}

// AssignmentResponse represents a planner entry in API responses
type AssignmentResponse struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Notes    string  `json:"notes,omitempty"`
	Due      *string `json:"due"`
	Priority *int    `json:"priority"`
}

func assignmentToResponse(a models.Assignment) AssignmentResponse {
	resp := AssignmentResponse{ID: a.ID, Title: a.Title, Notes: a.Notes}
	if a.Due != nil {
		due := a.Due.UTC().Format(time.RFC3339)
		resp.Due = &due
	}
	if a.Priority > 0 {
		p := a.Priority
		resp.Priority = &p
	}
	return resp
}

// ParseDue accepts a calendar date or an RFC 3339 timestamp; blank means no due date
func ParseDue(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.DateOnly, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, ErrInvalidDue
	}
	t = t.UTC()
	return &t, nil
}

// ForMember returns a member's assignments ordered by due date (undated
// last) and then by priority, unset priority ranking after 4
func (h *Handler) ForMember(ctx context.Context, email string) ([]models.Assignment, error) {
	assignments := []models.Assignment{}

	member, err := h.registry.FindByEmail(ctx, email)
	if errors.Is(err, members.ErrMemberNotFound) {
		return assignments, nil
	}
	if err != nil {
		return nil, err
	}

	err = h.db.WithContext(ctx).
		Where("member_id = ?", member.ID).
		Order("CASE WHEN due IS NULL THEN 1 ELSE 0 END").
		Order("due ASC").
		Order(fmt.Sprintf("CASE WHEN priority > 0 THEN priority ELSE %d END", UnsetPriority)).
		Order("id ASC").
		Find(&assignments).Error
	if err != nil {
		return nil, apperr.Storage(err, "Failed to fetch assignments")
	}
	return assignments, nil
}

// List returns the planner for one member
// @Summary List planner assignments
// @Tags planner
// @Produce json
// @Param email query string true "Member email"
// @Success 200 {array} AssignmentResponse
// @Failure 400 {object} map[string]string "Email missing"
// @Router /assignments [get]
func (h *Handler) List(c *gin.Context) {
	email := strings.TrimSpace(c.Query("email"))
	if email == "" {
		apperr.Respond(c, h.log, ErrEmailRequired)
		return
	}

	assignments, err := h.ForMember(c.Request.Context(), email)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	responses := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		responses[i] = assignmentToResponse(a)
	}
	c.JSON(http.StatusOK, responses)
}

// Create adds a planner entry
// @Summary Add a planner assignment
// @Tags planner
// @Accept json
// @Produce json
// @Param request body CreateAssignmentRequest true "Assignment"
// @Success 201 {object} AssignmentResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /assignments [post]
// @Router /planner [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, ErrEmailRequired)
		return
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		apperr.Respond(c, h.log, ErrTitleRequired)
		return
	}
	priority := 0
	if req.Priority != nil {
		if *req.Priority < 1 || *req.Priority > 4 {
			apperr.Respond(c, h.log, ErrInvalidPriority)
			return
		}
		priority = *req.Priority
	}
	due, err := ParseDue(req.Due)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	ctx := c.Request.Context()
	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = strings.SplitN(req.Email, "@", 2)[0]
	}
	member, err := h.registry.ResolveOrCreate(ctx, name, req.Email)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	assignment := models.Assignment{
		MemberID: member.ID,
		Title:    title,
		Notes:    strings.TrimSpace(req.Notes),
		Due:      due,
		Priority: priority,
	}
	if err := h.db.WithContext(ctx).Create(&assignment).Error; err != nil {
		apperr.Respond(c, h.log, apperr.Storage(err, "Failed to save assignment"))
		return
	}

	c.JSON(http.StatusCreated, assignmentToResponse(assignment))
}

// RegisterRoutes registers planner routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/assignments", h.List)
	rg.POST("/assignments", h.Create)
	rg.POST("/planner", h.Create)
}
