package analytics

import (
	"context"
	"math"
	"net/http"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// WelcomeText is the greeting on the home endpoint
const WelcomeText = "Welcome to the Academic Support Hub"

// Handler handles analytics and home page requests
type Handler struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewHandler creates a new analytics handler
func NewHandler(db *gorm.DB, log *zap.Logger) *Handler {
	return &Handler{db: db, log: log}
}

// GroupCountResponse summarises study group occupancy
type GroupCountResponse struct {
	TotalGroups  int64 `json:"total_groups"`
	OpenGroups   int64 `json:"open_groups"`
	ClosedGroups int64 `json:"closed_groups"`
}

// GroupPostsResponse is the number of Q&A posts asked inside a group
type GroupPostsResponse struct {
	GroupID   uint  `json:"group_id"`
	PostCount int64 `json:"post_count"`
}

// UserActivityResponse reports how many members have posted
type UserActivityResponse struct {
	TotalUsers    int64   `json:"total_users"`
	ActiveUsers   int64   `json:"active_users"`
	InactiveUsers int64   `json:"inactive_users"`
	ActivePercent float64 `json:"active_percent"`
}

// HomeResponse is the landing page payload
type HomeResponse struct {
	Welcome       string                `json:"welcome"`
	Announcements []models.Announcement `json:"announcements"`
	Highlights    Highlights            `json:"highlights"`
}

// Highlights are the headline counts on the home page
type Highlights struct {
	Questions int64 `json:"questions"`
	Resources int64 `json:"resources"`
	Tasks     int64 `json:"tasks"`
}

// GroupCounts counts groups by derived open state
func (h *Handler) GroupCounts(ctx context.Context) (*GroupCountResponse, error) {
	var out GroupCountResponse
	db := h.db.WithContext(ctx)
	if err := db.Model(&models.Group{}).Count(&out.TotalGroups).Error; err != nil {
		return nil, apperr.Storage(err, "Failed to count study groups")
	}
	if err := db.Model(&models.Group{}).Where("member_count < capacity").Count(&out.OpenGroups).Error; err != nil {
		return nil, apperr.Storage(err, "Failed to count study groups")
	}
	out.ClosedGroups = out.TotalGroups - out.OpenGroups
	return &out, nil
}

// UserActivity counts members who asked or answered at least once
func (h *Handler) UserActivity(ctx context.Context) (*UserActivityResponse, error) {
	var out UserActivityResponse
	db := h.db.WithContext(ctx)
	if err := db.Model(&models.Member{}).Count(&out.TotalUsers).Error; err != nil {
		return nil, apperr.Storage(err, "Failed to count users")
	}

	err := db.Model(&models.Member{}).
		Where("id IN (?) OR id IN (?)",
			db.Model(&models.Question{}).Select("author_id"),
			db.Model(&models.Answer{}).Select("author_id")).
		Count(&out.ActiveUsers).Error
	if err != nil {
		return nil, apperr.Storage(err, "Failed to count active users")
	}

	out.InactiveUsers = out.TotalUsers - out.ActiveUsers
	if out.TotalUsers > 0 {
		pct := float64(out.ActiveUsers) / float64(out.TotalUsers) * 100
		out.ActivePercent = math.Round(pct*10) / 10
	}
	return &out, nil
}

// CountGroups reports total, open and closed study groups
// @Summary Count study groups
// @Tags analytics
// @Produce json
// @Success 200 {object} GroupCountResponse
// @Router /analytics/groups/count [get]
func (h *Handler) CountGroups(c *gin.Context) {
	out, err := h.GroupCounts(c.Request.Context())
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GroupPosts reports Q&A posts per study group
// @Summary Posts per study group
// @Tags analytics
// @Produce json
// @Success 200 {array} GroupPostsResponse
// @Router /analytics/groups/posts [get]
func (h *Handler) GroupPosts(c *gin.Context) {
	rows := []GroupPostsResponse{}
	err := h.db.WithContext(c.Request.Context()).Model(&models.Question{}).
		Select("group_id, COUNT(*) AS post_count").
		Where("group_id IS NOT NULL").
		Group("group_id").
		Order("group_id ASC").
		Scan(&rows).Error
	if err != nil {
		apperr.Respond(c, h.log, apperr.Storage(err, "Failed to count posts"))
		return
	}
	c.JSON(http.StatusOK, rows)
}

// Activity reports active versus inactive users
// @Summary User activity
// @Description Active users have asked or answered at least one question
// @Tags analytics
// @Produce json
// @Success 200 {object} UserActivityResponse
// @Router /analytics/users/activity [get]
func (h *Handler) Activity(c *gin.Context) {
	out, err := h.UserActivity(c.Request.Context())
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// Home returns the landing page payload
// @Summary Home page data
// @Tags analytics
// @Produce json
// @Success 200 {object} HomeResponse
// @Router /home [get]
func (h *Handler) Home(c *gin.Context) {
	db := h.db.WithContext(c.Request.Context())
	out := HomeResponse{Welcome: WelcomeText, Announcements: []models.Announcement{}}

	if err := db.Order("id DESC").Find(&out.Announcements).Error; err != nil {
		apperr.Respond(c, h.log, apperr.Storage(err, "Failed to fetch announcements"))
		return
	}

	counts := []struct {
		model interface{}
		dest  *int64
	}{
		{&models.Question{}, &out.Highlights.Questions},
		{&models.Resource{}, &out.Highlights.Resources},
		{&models.Assignment{}, &out.Highlights.Tasks},
	}
	for _, ct := range counts {
		if err := db.Model(ct.model).Count(ct.dest).Error; err != nil {
			apperr.Respond(c, h.log, apperr.Storage(err, "Failed to fetch highlights"))
			return
		}
	}

	c.JSON(http.StatusOK, out)
}

// RegisterRoutes registers analytics and home routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/analytics/groups/count", h.CountGroups)
	rg.GET("/analytics/groups/posts", h.GroupPosts)
	rg.GET("/analytics/users/activity", h.Activity)
	rg.GET("/home", h.Home)
}
