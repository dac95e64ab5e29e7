package studygroups

import (
	"net/http"
	"strconv"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/ashub/ash/pkg/ash/tags"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles study group requests
type Handler struct {
	svc *Service
	log *zap.Logger
}

// NewHandler creates a new study groups handler
func NewHandler(svc *Service, log *zap.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// CreateGroupRequest represents the request to create a study group
type CreateGroupRequest struct {
	Course   string   `json:"course"`
	Title    string   `json:"title"`
	Capacity *int     `json:"capacity"`
	Meets    string   `json:"meets"`
	Location string   `json:"location"`
	Tags     []string `json:"tags"`
}

// JoinRequest represents the request to join a study group
type JoinRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
}

// GroupResponse represents a study group in API responses
type GroupResponse struct {
	ID          uint     `json:"id"`
	Title       string   `json:"title"`
	Course      string   `json:"course"`
	Capacity    int      `json:"capacity"`
	MemberCount int      `json:"member_count"`
	SeatsLeft   int      `json:"seats_left"`
	Open        bool     `json:"open"`
	Meets       string   `json:"meets,omitempty"`
	Location    string   `json:"location,omitempty"`
	Tags        []string `json:"tags"`
	CreatedAt   string   `json:"created_at"`
}

// JoinResponse is returned by the join endpoint for success and for
// conflicts, so clients can always read the status
type JoinResponse struct {
	Status  JoinStatus     `json:"status"`
	GroupID uint           `json:"groupId"`
	Group   *GroupResponse `json:"group,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// MemberResponse represents a group member in API responses
type MemberResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

func groupToResponse(g models.Group) GroupResponse {
	return GroupResponse{
		ID:          g.ID,
		Title:       g.Name,
		Course:      g.Course,
		Capacity:    g.Capacity,
		MemberCount: g.MemberCount,
		SeatsLeft:   g.SeatsLeft(),
		Open:        g.IsOpen(),
		Meets:       g.Meets,
		Location:    g.Location,
		Tags:        tags.Names(g.Tags),
		CreatedAt:   g.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func parseGroupID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// List returns study groups, optionally filtered by course or tag
// @Summary List study groups
// @Description An unmatched filter returns an empty array
// @Tags study-groups
// @Produce json
// @Param course query string false "Case-insensitive partial course match"
// @Param tag query string false "Exact tag"
// @Success 200 {array} GroupResponse
// @Router /study-groups [get]
func (h *Handler) List(c *gin.Context) {
	groups, err := h.svc.Groups().List(c.Request.Context(), Filter{
		Course: c.Query("course"),
		Tag:    c.Query("tag"),
	})
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	responses := make([]GroupResponse, len(groups))
	for i, g := range groups {
		responses[i] = groupToResponse(g)
	}

	c.JSON(http.StatusOK, responses)
}

// Create creates a new study group
// @Summary Create a study group
// @Tags study-groups
// @Accept json
// @Produce json
// @Param request body CreateGroupRequest true "Group details"
// @Success 201 {object} GroupResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /study-groups [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("Invalid request body"))
		return
	}

	in := NewGroup{
		Name:     req.Title,
		Course:   req.Course,
		Meets:    req.Meets,
		Location: req.Location,
		Tags:     req.Tags,
	}
	if req.Capacity != nil {
		if *req.Capacity < 1 {
			apperr.Respond(c, h.log, ErrInvalidCapacity)
			return
		}
		in.Capacity = *req.Capacity
	}

	group, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, groupToResponse(*group))
}

// Get returns a single study group
// @Summary Get a study group
// @Tags study-groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {object} GroupResponse
// @Failure 404 {object} map[string]string "Group not found"
// @Router /study-groups/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseGroupID(c)
	if !ok {
		apperr.Respond(c, h.log, apperr.Validation("Invalid group ID"))
		return
	}

	group, err := h.svc.Groups().Find(c.Request.Context(), id)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusOK, groupToResponse(*group))
}

// ListMembers returns the members of a study group
// @Summary List study group members
// @Tags study-groups
// @Produce json
// @Param id path int true "Group ID"
// @Success 200 {array} MemberResponse
// @Failure 404 {object} map[string]string "Group not found"
// @Router /study-groups/{id}/members [get]
func (h *Handler) ListMembers(c *gin.Context) {
	id, ok := parseGroupID(c)
	if !ok {
		apperr.Respond(c, h.log, apperr.Validation("Invalid group ID"))
		return
	}

	members, err := h.svc.Groups().Members(c.Request.Context(), id)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	responses := make([]MemberResponse, len(members))
	for i, m := range members {
		responses[i] = MemberResponse{ID: m.ID, Name: m.Name, Email: m.Email}
	}

	c.JSON(http.StatusOK, responses)
}

// Join adds the requester to a study group
// @Summary Join a study group
// @Description A full group answers 409 with status "waitlisted"; a repeat join answers 409 with status "already_member"
// @Tags study-groups
// @Accept json
// @Produce json
// @Param id path int true "Group ID"
// @Param request body JoinRequest true "Requester"
// @Success 200 {object} JoinResponse
// @Failure 400 {object} map[string]string "Name missing"
// @Failure 404 {object} map[string]string "Group not found"
// @Failure 409 {object} JoinResponse "Full or already a member"
// @Router /study-groups/{id}/join [post]
func (h *Handler) Join(c *gin.Context) {
	id, ok := parseGroupID(c)
	if !ok {
		apperr.Respond(c, h.log, apperr.Validation("Invalid group ID"))
		return
	}

	var req JoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("Invalid request body: name is required, email must be valid"))
		return
	}

	result, err := h.svc.Join(c.Request.Context(), id, req.Name, req.Email)
	if err != nil {
		if status, ok := StatusOf(err); ok {
			c.JSON(http.StatusConflict, JoinResponse{
				Status:  status,
				GroupID: id,
				Error:   apperr.MessageOf(err),
			})
			return
		}
		apperr.Respond(c, h.log, err)
		return
	}

	group := groupToResponse(result.Group)
	c.JSON(http.StatusOK, JoinResponse{
		Status:  result.Status,
		GroupID: result.Group.ID,
		Group:   &group,
	})
}

// RegisterRoutes registers study group routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/members", h.ListMembers)
	rg.POST("/:id/join", h.Join)
}
