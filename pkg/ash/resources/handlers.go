package resources

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/ashub/ash/pkg/ash/members"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/ashub/ash/pkg/ash/tags"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrTitleRequired is returned for a blank title
	ErrTitleRequired = apperr.Validation("Title is required")
	// ErrCourseRequired is returned for a blank course
	ErrCourseRequired = apperr.Validation("Course is required")
	// ErrSourceRequired is returned when neither a file nor a link was given
	ErrSourceRequired = apperr.Validation("Please attach a file or provide a link")
)

// Handler handles shared resource requests
type Handler struct {
	db       *gorm.DB
	resolver members.Resolver
	store    *Store
	log      *zap.Logger
}

// NewHandler creates a new resources handler
func NewHandler(db *gorm.DB, resolver members.Resolver, store *Store, log *zap.Logger) *Handler {
	return &Handler{db: db, resolver: resolver, store: store, log: log}
}

// CreateResourceRequest represents the request to share a link
type CreateResourceRequest struct {
	Course        string   `json:"course"`
	Title         string   `json:"title"`
	FileURL       string   `json:"file_url" binding:"omitempty,url"`
	Tags          []string `json:"tags"`
	UploaderName  string   `json:"uploader_name"`
	UploaderEmail string   `json:"uploader_email" binding:"omitempty,email"`
}

// ResourceResponse represents a resource in API responses
type ResourceResponse struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Course     string   `json:"course"`
	FileURL    string   `json:"file_url"`
	IsUpload   bool     `json:"is_upload"`
	Tags       []string `json:"tags"`
	UploadedBy string   `json:"uploaded_by"`
	CreatedAt  string   `json:"created_at"`
}

// Filter narrows a resource listing
type Filter struct {
	Course string // exact, case-insensitive
	Tag    string // exact tag name
	Search string // substring of title, course or any tag
}

func resourceToResponse(r models.Resource) ResourceResponse {
	return ResourceResponse{
		ID:         r.ID,
		Title:      r.Title,
		Course:     r.Course,
		FileURL:    r.FilePath,
		IsUpload:   r.IsUpload,
		Tags:       tags.Names(r.Tags),
		UploadedBy: r.UploadedBy.Name,
		CreatedAt:  r.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

// Search returns resources matching filter, newest first
func (h *Handler) Search(ctx context.Context, filter Filter) ([]models.Resource, error) {
	query := h.db.WithContext(ctx).
		Preload("Tags").
		Preload("UploadedBy").
		Order("resources.created_at DESC, resources.id DESC")

	if course := strings.TrimSpace(filter.Course); course != "" {
		query = query.Where("LOWER(resources.course) = ?", strings.ToLower(course))
	}
	if tag := tags.Normalize(filter.Tag); len(tag) > 0 {
		query = query.Where("resources.id IN (?)", h.taggedWith("tags.name = ?", tag[0]))
	}
	if search := strings.ToLower(strings.TrimSpace(filter.Search)); search != "" {
		like := "%" + search + "%"
		query = query.Where(
			h.db.Where("LOWER(resources.title) LIKE ?", like).
				Or("LOWER(resources.course) LIKE ?", like).
				Or("resources.id IN (?)", h.taggedWith("tags.name LIKE ?", like)))
	}

	results := []models.Resource{}
	if err := query.Find(&results).Error; err != nil {
		return nil, apperr.Storage(err, "Failed to fetch resources")
	}
	return results, nil
}

func (h *Handler) taggedWith(cond string, arg interface{}) *gorm.DB {
	return h.db.Table("resource_tags").
		Select("resource_tags.resource_id").
		Joins("INNER JOIN tags ON tags.id = resource_tags.tag_id").
		Where(cond, arg)
}

// NewResource holds the fields needed to record a resource
type NewResource struct {
	Title         string
	Course        string
	FilePath      string
	IsUpload      bool
	Tags          []string
	UploaderName  string
	UploaderEmail string
}

// Create validates and stores a resource together with its tags
func (h *Handler) Create(ctx context.Context, in NewResource) (*models.Resource, error) {
	in.Title = strings.TrimSpace(in.Title)
	in.Course = strings.TrimSpace(in.Course)
	in.FilePath = strings.TrimSpace(in.FilePath)
	switch {
	case in.Title == "":
		return nil, ErrTitleRequired
	case in.Course == "":
		return nil, ErrCourseRequired
	case in.FilePath == "":
		return nil, ErrSourceRequired
	}

	uploader, err := h.resolver.ResolveOrCreate(ctx, in.UploaderName, in.UploaderEmail)
	if err != nil {
		return nil, err
	}

	resource := models.Resource{
		Title:        in.Title,
		Course:       in.Course,
		FilePath:     in.FilePath,
		IsUpload:     in.IsUpload,
		UploadedByID: uploader.ID,
	}
	err = h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tagRows, err := tags.Ensure(tx, in.Tags...)
		if err != nil {
			return err
		}
		resource.Tags = tagRows
		return tx.Omit("Tags.*").Create(&resource).Error
	})
	if err != nil {
		return nil, apperr.Storage(err, "Failed to save resource")
	}
	resource.UploadedBy = *uploader

	h.log.Info("resource shared",
		zap.Uint("resource_id", resource.ID),
		zap.String("course", resource.Course),
		zap.Bool("upload", resource.IsUpload))
	return &resource, nil
}

// List returns shared resources
// @Summary List resources
// @Tags resources
// @Produce json
// @Param course query string false "Exact course, case-insensitive"
// @Param tag query string false "Exact tag"
// @Param search query string false "Substring of title, course or tags"
// @Success 200 {array} ResourceResponse
// @Router /resources [get]
func (h *Handler) List(c *gin.Context) {
	results, err := h.Search(c.Request.Context(), Filter{
		Course: c.Query("course"),
		Tag:    c.Query("tag"),
		Search: c.Query("search"),
	})
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	responses := make([]ResourceResponse, len(results))
	for i, r := range results {
		responses[i] = resourceToResponse(r)
	}
	c.JSON(http.StatusOK, responses)
}

// CreateLink shares a resource by URL
// @Summary Share a resource link
// @Tags resources
// @Accept json
// @Produce json
// @Param request body CreateResourceRequest true "Resource details"
// @Success 201 {object} ResourceResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /resources [post]
func (h *Handler) CreateLink(c *gin.Context) {
	var req CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("Invalid request body"))
		return
	}

	resource, err := h.Create(c.Request.Context(), NewResource{
		Title:         req.Title,
		Course:        req.Course,
		FilePath:      req.FileURL,
		Tags:          req.Tags,
		UploaderName:  req.UploaderName,
		UploaderEmail: req.UploaderEmail,
	})
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, resourceToResponse(*resource))
}

// Upload shares a resource from a multipart form
// @Summary Upload a resource
// @Description Accepts either a file or a link_url
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Param file formData file false "File to upload"
// @Param link_url formData string false "External link"
// @Param title formData string true "Title"
// @Param course formData string true "Course"
// @Param tags formData string false "Comma-separated tags"
// @Param uploader_name formData string true "Uploader name"
// @Param uploader_email formData string false "Uploader email"
// @Success 201 {object} ResourceResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /resources/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	in := NewResource{
		Title:         c.PostForm("title"),
		Course:        c.PostForm("course"),
		Tags:          c.PostFormArray("tags"),
		UploaderName:  c.PostForm("uploader_name"),
		UploaderEmail: strings.TrimSpace(c.PostForm("uploader_email")),
	}
	switch {
	case strings.TrimSpace(in.Title) == "":
		apperr.Respond(c, h.log, ErrTitleRequired)
		return
	case strings.TrimSpace(in.Course) == "":
		apperr.Respond(c, h.log, ErrCourseRequired)
		return
	case strings.TrimSpace(in.UploaderName) == "":
		apperr.Respond(c, h.log, members.ErrNameRequired)
		return
	}

	file, err := c.FormFile("file")
	switch {
	case err == nil:
		path, err := h.store.Save(c, file)
		if err != nil {
			apperr.Respond(c, h.log, apperr.Storage(err, "Failed to store upload"))
			return
		}
		in.FilePath = path
		in.IsUpload = true
	case errors.Is(err, http.ErrMissingFile):
		in.FilePath = c.PostForm("link_url")
	default:
		apperr.Respond(c, h.log, apperr.Validation("Invalid upload"))
		return
	}

	resource, err := h.Create(c.Request.Context(), in)
	if err != nil {
		if in.IsUpload {
			if rmErr := h.store.Remove(in.FilePath); rmErr != nil {
				h.log.Warn("failed to remove orphaned upload",
					zap.String("path", in.FilePath), zap.Error(rmErr))
			}
		}
		apperr.Respond(c, h.log, err)
		return
	}

	c.JSON(http.StatusCreated, resourceToResponse(*resource))
}

// RegisterRoutes registers resource routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("", h.List)
	rg.POST("", h.CreateLink)
	rg.POST("/upload", h.Upload)
}
