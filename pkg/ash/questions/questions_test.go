package questions

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashub/ash/pkg/ash/database"
	"github.com/ashub/ash/pkg/ash/members"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.OpenTest()
	require.NoError(t, err, "Failed to open test database")
	return db
}

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(db, members.NewRegistry(db), zap.NewNop()).RegisterRoutes(r.Group("/api"))
	return r
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func askQuestion(t *testing.T, router *gin.Engine, req CreateQuestionRequest) QuestionResponse {
	t.Helper()
	resp := doJSON(router, "POST", "/api/questions", req)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var q QuestionResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &q))
	return q
}

func TestCreateQuestion(t *testing.T) {
	router := setupTestRouter(setupTestDB(t))

	q := askQuestion(t, router, CreateQuestionRequest{
		Course:     "CMPS101",
		Title:      "  Why is quicksort n log n? ",
		Body:       "On average?",
		AuthorName: "Alice",
	})
	assert.NotZero(t, q.ID)
	assert.Equal(t, "Why is quicksort n log n?", q.Title)
	assert.Equal(t, "Alice", q.Author)
	assert.Zero(t, q.AnswerCount)
	assert.Nil(t, q.GroupID)
}

func TestCreateQuestionValidation(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	unknown := uint(42)

	tests := []struct {
		name string
		req  CreateQuestionRequest
	}{
		{"missing title", CreateQuestionRequest{Course: "CMPS101", AuthorName: "Alice"}},
		{"blank course", CreateQuestionRequest{Course: "  ", Title: "Q", AuthorName: "Alice"}},
		{"missing author", CreateQuestionRequest{Course: "CMPS101", Title: "Q"}},
		{"unknown group", CreateQuestionRequest{Course: "CMPS101", Title: "Q", AuthorName: "Alice", GroupID: &unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(router, "POST", "/api/questions", tt.req)
			assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
		})
	}

	var count int64
	db.Model(&models.Question{}).Count(&count)
	assert.Zero(t, count)
}

func TestListQuestions(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	group := models.Group{Name: "Algo", Course: "CMPS101", Capacity: 3}
	require.NoError(t, db.Create(&group).Error)

	first := askQuestion(t, router, CreateQuestionRequest{Course: "CMPS101", Title: "Heaps", Body: "priority queues", AuthorName: "Alice", GroupID: &group.ID})
	askQuestion(t, router, CreateQuestionRequest{Course: "CMPS262", Title: "Dijkstra", AuthorName: "Bob"})

	resp := doJSON(router, "POST", "/api/questions/1/answers", CreateAnswerRequest{Body: "Use a binary heap", AuthorName: "Bob"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var all []QuestionResponse
	resp = doJSON(router, "GET", "/api/questions", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &all))
	require.Len(t, all, 2)
	assert.Equal(t, "Dijkstra", all[0].Title, "newest first")
	assert.Equal(t, 1, all[1].AnswerCount)

	var filtered []QuestionResponse
	resp = doJSON(router, "GET", "/api/questions?course=cmps101", nil)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, first.ID, filtered[0].ID)

	resp = doJSON(router, "GET", "/api/questions?search=PRIORITY", nil)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)

	resp = doJSON(router, "GET", "/api/questions?group_id=1", nil)
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &filtered))
	require.Len(t, filtered, 1)
	assert.Equal(t, "Heaps", filtered[0].Title)

	resp = doJSON(router, "GET", "/api/questions?group_id=x", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, "GET", "/api/questions?course=NONE", nil)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestGetQuestionWithAnswers(t *testing.T) {
	router := setupTestRouter(setupTestDB(t))
	askQuestion(t, router, CreateQuestionRequest{Course: "CMPS101", Title: "Heaps", AuthorName: "Alice"})

	for _, body := range []string{"first", "second"} {
		resp := doJSON(router, "POST", "/api/questions/1/answers", CreateAnswerRequest{Body: body, AuthorName: "Bob"})
		require.Equal(t, http.StatusCreated, resp.Code)
	}

	resp := doJSON(router, "GET", "/api/questions/1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var q QuestionResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &q))
	assert.Equal(t, 2, q.AnswerCount)
	require.Len(t, q.Answers, 2)
	assert.Equal(t, "first", q.Answers[0].Body)
	assert.Equal(t, "Bob", q.Answers[0].Author)
	assert.Equal(t, 0, q.Reactions["heart"])
	assert.Len(t, q.Answers[1].Reactions, len(models.ReactionEmojis))

	assert.Equal(t, http.StatusNotFound, doJSON(router, "GET", "/api/questions/9", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(router, "GET", "/api/questions/abc", nil).Code)
}

func TestAnswerErrors(t *testing.T) {
	router := setupTestRouter(setupTestDB(t))
	askQuestion(t, router, CreateQuestionRequest{Course: "CMPS101", Title: "Heaps", AuthorName: "Alice"})

	resp := doJSON(router, "POST", "/api/questions/9/answers", CreateAnswerRequest{Body: "x", AuthorName: "Bob"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(router, "POST", "/api/questions/1/answers", CreateAnswerRequest{Body: "   ", AuthorName: "Bob"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, "POST", "/api/questions/1/answers", CreateAnswerRequest{Body: "x"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestToggleReactions(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	askQuestion(t, router, CreateQuestionRequest{Course: "CMPS101", Title: "Heaps", AuthorName: "Alice"})
	resp := doJSON(router, "POST", "/api/questions/1/answers", CreateAnswerRequest{Body: "heap", AuthorName: "Bob"})
	require.Equal(t, http.StatusCreated, resp.Code)

	react := func(path string, req ReactionRequest) ReactionResponse {
		t.Helper()
		resp := doJSON(router, "POST", path, req)
		require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
		var out ReactionResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &out))
		return out
	}

	got := react("/api/questions/1/reactions", ReactionRequest{Emoji: "heart", Name: "Bob"})
	assert.True(t, got.Active)
	assert.Equal(t, 1, got.Counts["heart"])

	got = react("/api/questions/1/reactions", ReactionRequest{Emoji: "heart", Name: "Carol"})
	assert.Equal(t, 2, got.Counts["heart"])

	got = react("/api/questions/1/reactions", ReactionRequest{Emoji: "heart", Name: "bob"})
	assert.False(t, got.Active, "second toggle removes the reaction")
	assert.Equal(t, 1, got.Counts["heart"])

	got = react("/api/answers/1/reactions", ReactionRequest{Emoji: "wow", Name: "Alice"})
	assert.True(t, got.Active)
	assert.Equal(t, models.ReactionTargetAnswer, got.TargetType)
	assert.Equal(t, 1, got.Counts["wow"])
	assert.Equal(t, 0, got.Counts["heart"], "question reactions do not leak into answers")

	resp = doJSON(router, "POST", "/api/questions/1/reactions", ReactionRequest{Emoji: "fire", Name: "Bob"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, "POST", "/api/answers/7/reactions", ReactionRequest{Emoji: "wow", Name: "Bob"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var rows int64
	db.Model(&models.Reaction{}).Count(&rows)
	assert.Equal(t, int64(2), rows)
}
