package questions

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ashub/ash/pkg/ash/apperr"
	"github.com/ashub/ash/pkg/ash/members"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	// ErrQuestionNotFound is returned when a question ID does not resolve
	ErrQuestionNotFound = apperr.NotFound("Question not found")
	// ErrAnswerNotFound is returned when an answer ID does not resolve
	ErrAnswerNotFound = apperr.NotFound("Answer not found")
	// ErrUnknownGroup is returned when a question names a missing study group
	ErrUnknownGroup = apperr.Validation("Unknown study group")
)

// Handler handles Q&A board requests
type Handler struct {
	db       *gorm.DB
	resolver members.Resolver
	log      *zap.Logger
}

// NewHandler creates a new questions handler
func NewHandler(db *gorm.DB, resolver members.Resolver, log *zap.Logger) *Handler {
	return &Handler{db: db, resolver: resolver, log: log}
}

// CreateQuestionRequest represents the request to ask a question
type CreateQuestionRequest struct {
	Course      string `json:"course" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Body        string `json:"body"`
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorEmail string `json:"author_email" binding:"omitempty,email"`
	GroupID     *uint  `json:"group_id"`
}

// CreateAnswerRequest represents the request to answer a question
type CreateAnswerRequest struct {
	Body        string `json:"body" binding:"required"`
	AuthorName  string `json:"author_name" binding:"required"`
	AuthorEmail string `json:"author_email" binding:"omitempty,email"`
}

// QuestionResponse represents a question in API responses
type QuestionResponse struct {
	ID          uint             `json:"id"`
	Course      string           `json:"course"`
	Title       string           `json:"title"`
	Body        string           `json:"body"`
	Author      string           `json:"author"`
	GroupID     *uint            `json:"group_id,omitempty"`
	AnswerCount int              `json:"answer_count"`
	Reactions   map[string]int   `json:"reactions,omitempty"`
	Answers     []AnswerResponse `json:"answers,omitempty"`
	CreatedAt   string           `json:"created_at"`
}

// AnswerResponse represents an answer in API responses
type AnswerResponse struct {
	ID         uint           `json:"id"`
	QuestionID uint           `json:"question_id"`
	Body       string         `json:"body"`
	Author     string         `json:"author"`
	Reactions  map[string]int `json:"reactions"`
	CreatedAt  string         `json:"created_at"`
}

func questionToResponse(q models.Question, answerCount int) QuestionResponse {
	return QuestionResponse{
		ID:          q.ID,
		Course:      q.Course,
		Title:       q.Title,
		Body:        q.Body,
		Author:      q.Author.Name,
		GroupID:     q.GroupID,
		AnswerCount: answerCount,
		CreatedAt:   q.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func answerToResponse(a models.Answer, reactions map[string]int) AnswerResponse {
	return AnswerResponse{
		ID:         a.ID,
		QuestionID: a.QuestionID,
		Body:       a.Body,
		Author:     a.Author.Name,
		Reactions:  reactions,
		CreatedAt:  a.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// List returns questions, newest first, with answer counts
// @Summary List questions
// @Tags questions
// @Produce json
// @Param course query string false "Exact course, case-insensitive"
// @Param search query string false "Substring of title or body"
// @Param group_id query int false "Questions asked in a study group"
// @Success 200 {array} QuestionResponse
// @Router /questions [get]
func (h *Handler) List(c *gin.Context) {
	query := h.db.WithContext(c.Request.Context()).
		Preload("Author").
		Order("questions.created_at DESC, questions.id DESC")

	if course := strings.TrimSpace(c.Query("course")); course != "" {
		query = query.Where("LOWER(questions.course) = ?", strings.ToLower(course))
	}
	if search := strings.ToLower(strings.TrimSpace(c.Query("search"))); search != "" {
		like := "%" + search + "%"
		query = query.Where("LOWER(questions.title) LIKE ? OR LOWER(questions.body) LIKE ?", like, like)
	}
	if raw := c.Query("group_id"); raw != "" {
		groupID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			apperr.Respond(c, h.log, apperr.Validation("Invalid group ID"))
			return
		}
		query = query.Where("questions.group_id = ?", groupID)
	}

	var questions []models.Question
	if err := query.Find(&questions).Error; err != nil {
		apperr.Respond(c, h.log, apperr.Storage(err, "Failed to fetch questions"))
		return
	}

	counts, err := h.answerCounts(c.Request.Context(), questions)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	responses := make([]QuestionResponse, len(questions))
	for i, q := range questions {
		responses[i] = questionToResponse(q, counts[q.ID])
	}
	c.JSON(http.StatusOK, responses)
}

func (h *Handler) answerCounts(ctx context.Context, questions []models.Question) (map[uint]int, error) {
	counts := make(map[uint]int)
	if len(questions) == 0 {
		return counts, nil
	}
	ids := make([]uint, len(questions))
	for i, q := range questions {
		ids[i] = q.ID
	}

	var rows []struct {
		QuestionID uint
		Count      int
	}
	err := h.db.WithContext(ctx).Model(&models.Answer{}).
		Select("question_id, COUNT(*) AS count").
		Where("question_id IN ?", ids).
		Group("question_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperr.Storage(err, "Failed to count answers")
	}
	for _, r := range rows {
		counts[r.QuestionID] = r.Count
	}
	return counts, nil
}

// Create posts a new question
// @Summary Ask a question
// @Tags questions
// @Accept json
// @Produce json
// @Param request body CreateQuestionRequest true "Question"
// @Success 201 {object} QuestionResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Router /questions [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("Course, title and author_name are required"))
		return
	}
	ctx := c.Request.Context()

	course, title := strings.TrimSpace(req.Course), strings.TrimSpace(req.Title)
	if course == "" || title == "" {
		apperr.Respond(c, h.log, apperr.Validation("Course and title are required"))
		return
	}

	if req.GroupID != nil {
		err := h.db.WithContext(ctx).Select("id").First(&models.Group{}, *req.GroupID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			apperr.Respond(c, h.log, ErrUnknownGroup)
			return
		}
		if err != nil {
			apperr.Respond(c, h.log, apperr.Storage(err, "Failed to fetch study group"))
			return
		}
	}

	author, err := h.resolver.ResolveOrCreate(ctx, req.AuthorName, req.AuthorEmail)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	question := models.Question{
		Course:   course,
		Title:    title,
		Body:     strings.TrimSpace(req.Body),
		AuthorID: author.ID,
		GroupID:  req.GroupID,
	}
	if err := h.db.WithContext(ctx).Create(&question).Error; err != nil {
		apperr.Respond(c, h.log, apperr.Storage(err, "Failed to save question"))
		return
	}
	question.Author = *author

	c.JSON(http.StatusCreated, questionToResponse(question, 0))
}

// Get returns a question with its answers and reaction counts
// @Summary Get a question
// @Tags questions
// @Produce json
// @Param id path int true "Question ID"
// @Success 200 {object} QuestionResponse
// @Failure 404 {object} map[string]string "Question not found"
// @Router /questions/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apperr.Respond(c, h.log, apperr.Validation("Invalid question ID"))
		return
	}
	ctx := c.Request.Context()

	var question models.Question
	err := h.db.WithContext(ctx).
		Preload("Author").
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.created_at ASC, answers.id ASC")
		}).
		Preload("Answers.Author").
		First(&question, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		apperr.Respond(c, h.log, ErrQuestionNotFound)
		return
	}
	if err != nil {
		apperr.Respond(c, h.log, apperr.Storage(err, "Failed to fetch question"))
		return
	}

	questionReactions, err := reactionCounts(ctx, h.db, models.ReactionTargetQuestion, []uint{question.ID})
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}
	answerIDs := make([]uint, len(question.Answers))
	for i, a := range question.Answers {
		answerIDs[i] = a.ID
	}
	answerReactions, err := reactionCounts(ctx, h.db, models.ReactionTargetAnswer, answerIDs)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	response := questionToResponse(question, len(question.Answers))
	response.Reactions = questionReactions[question.ID]
	response.Answers = make([]AnswerResponse, len(question.Answers))
	for i, a := range question.Answers {
		response.Answers[i] = answerToResponse(a, answerReactions[a.ID])
	}

	c.JSON(http.StatusOK, response)
}

// Answer posts an answer to a question
// @Summary Answer a question
// @Tags questions
// @Accept json
// @Produce json
// @Param id path int true "Question ID"
// @Param request body CreateAnswerRequest true "Answer"
// @Success 201 {object} AnswerResponse
// @Failure 404 {object} map[string]string "Question not found"
// @Router /questions/{id}/answers [post]
func (h *Handler) Answer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		apperr.Respond(c, h.log, apperr.Validation("Invalid question ID"))
		return
	}

	var req CreateAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Respond(c, h.log, apperr.Validation("Body and author_name are required"))
		return
	}
	body := strings.TrimSpace(req.Body)
	if body == "" {
		apperr.Respond(c, h.log, apperr.Validation("Body is required"))
		return
	}
	ctx := c.Request.Context()

	if err := h.exists(ctx, &models.Question{}, id, ErrQuestionNotFound); err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	author, err := h.resolver.ResolveOrCreate(ctx, req.AuthorName, req.AuthorEmail)
	if err != nil {
		apperr.Respond(c, h.log, err)
		return
	}

	answer := models.Answer{QuestionID: id, Body: body, AuthorID: author.ID}
	if err := h.db.WithContext(ctx).Create(&answer).Error; err != nil {
		apperr.Respond(c, h.log, apperr.Storage(err, "Failed to save answer"))
		return
	}
	answer.Author = *author

	c.JSON(http.StatusCreated, answerToResponse(answer, emptyCounts()))
}

func (h *Handler) exists(ctx context.Context, model interface{}, id uint, notFound error) error {
	err := h.db.WithContext(ctx).Select("id").First(model, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	if err != nil {
		return apperr.Storage(err, "Failed to fetch post")
	}
	return nil
}

// RegisterRoutes registers question, answer and reaction routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/questions", h.List)
	rg.POST("/questions", h.Create)
	rg.GET("/questions/:id", h.Get)
	rg.POST("/questions/:id/answers", h.Answer)
	rg.POST("/questions/:id/reactions", h.ReactToQuestion)
	rg.POST("/answers/:id/reactions", h.ReactToAnswer)
}
