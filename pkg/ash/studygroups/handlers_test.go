package studygroups

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashub/ash/pkg/ash/members"
	"github.com/ashub/ash/pkg/ash/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	svc := NewService(db, NewRepository(db, 0), members.NewRegistry(db), zap.NewNop())
	handler := NewHandler(svc, zap.NewNop())

	api := r.Group("/api")
	handler.RegisterRoutes(api.Group("/study-groups"))

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

func TestCreateGroupHandler(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	capacity := 2
	resp := doJSON(router, "POST", "/api/study-groups", CreateGroupRequest{
		Course:   "CMPS101",
		Title:    "Algo Study",
		Capacity: &capacity,
		Meets:    "Tue 6pm",
		Tags:     []string{"Algorithms", "exam"},
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var group GroupResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &group))
	assert.Equal(t, "Algo Study", group.Title)
	assert.Equal(t, 2, group.Capacity)
	assert.Equal(t, 0, group.MemberCount)
	assert.True(t, group.Open)
	assert.Equal(t, 2, group.SeatsLeft)
	assert.ElementsMatch(t, []string{"algorithms", "exam"}, group.Tags)
}

func TestCreateGroupHandlerValidation(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	zero := 0
	tests := []struct {
		name string
		body interface{}
	}{
		{"empty title", CreateGroupRequest{Course: "CMPS101", Title: ""}},
		{"blank course", CreateGroupRequest{Course: "  ", Title: "Algo"}},
		{"zero capacity", CreateGroupRequest{Course: "CMPS101", Title: "Algo", Capacity: &zero}},
		{"malformed body", "not an object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(router, "POST", "/api/study-groups", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())

			var body map[string]string
			json.Unmarshal(resp.Body.Bytes(), &body)
			assert.NotEmpty(t, body["error"])
		})
	}

	var count int64
	db.Model(&models.Group{}).Count(&count)
	assert.Zero(t, count, "rejected creates must not persist anything")
}

func TestJoinHandlerScenario(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	capacity := 2
	resp := doJSON(router, "POST", "/api/study-groups", CreateGroupRequest{Course: "CMPS101", Title: "Algo Study", Capacity: &capacity})
	require.Equal(t, http.StatusCreated, resp.Code)

	resp = doJSON(router, "POST", "/api/study-groups/1/join", JoinRequest{Name: "Alice"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var joined JoinResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &joined))
	assert.Equal(t, StatusJoined, joined.Status)
	assert.Equal(t, uint(1), joined.GroupID)
	require.NotNil(t, joined.Group)
	assert.Equal(t, 1, joined.Group.MemberCount)
	assert.True(t, joined.Group.Open)

	resp = doJSON(router, "POST", "/api/study-groups/1/join", JoinRequest{Name: "Bob"})
	require.Equal(t, http.StatusOK, resp.Code)
	json.Unmarshal(resp.Body.Bytes(), &joined)
	assert.Equal(t, 2, joined.Group.MemberCount)
	assert.False(t, joined.Group.Open)

	resp = doJSON(router, "POST", "/api/study-groups/1/join", JoinRequest{Name: "Carol"})
	require.Equal(t, http.StatusConflict, resp.Code)
	var waitlisted JoinResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &waitlisted))
	assert.Equal(t, StatusWaitlisted, waitlisted.Status)
	assert.Equal(t, uint(1), waitlisted.GroupID)
	assert.Nil(t, waitlisted.Group)

	resp = doJSON(router, "GET", "/api/study-groups?course=cmps", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var listed []GroupResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, 2, listed[0].MemberCount)
	assert.False(t, listed[0].Open)

	resp = doJSON(router, "GET", "/api/study-groups/1/members", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var memberList []MemberResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &memberList))
	require.Len(t, memberList, 2)
	assert.Equal(t, "Alice", memberList[0].Name)
	assert.Equal(t, "Bob", memberList[1].Name)
}

func TestJoinHandlerAlreadyMember(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	createTestGroup(t, NewRepository(db, 0), "CMPS101", "Algo Study", 3)

	resp := doJSON(router, "POST", "/api/study-groups/1/join", JoinRequest{Name: "Alice", Email: "alice@example.com"})
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(router, "POST", "/api/study-groups/1/join", JoinRequest{Name: "Alice", Email: "ALICE@example.com"})
	require.Equal(t, http.StatusConflict, resp.Code)

	var body JoinResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, StatusAlreadyMember, body.Status)
	assert.NotEmpty(t, body.Error)

	var rows int64
	db.Model(&models.Membership{}).Count(&rows)
	assert.Equal(t, int64(1), rows)
}

func TestJoinHandlerErrors(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	createTestGroup(t, NewRepository(db, 0), "CMPS101", "Algo Study", 3)

	tests := []struct {
		name   string
		path   string
		body   interface{}
		status int
	}{
		{"unknown group", "/api/study-groups/99/join", JoinRequest{Name: "Alice"}, http.StatusNotFound},
		{"invalid id", "/api/study-groups/abc/join", JoinRequest{Name: "Alice"}, http.StatusBadRequest},
		{"blank name", "/api/study-groups/1/join", JoinRequest{Name: "  "}, http.StatusBadRequest},
		{"bad email", "/api/study-groups/1/join", JoinRequest{Name: "Alice", Email: "nope"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(router, "POST", tt.path, tt.body)
			assert.Equal(t, tt.status, resp.Code, resp.Body.String())
		})
	}

	g, err := NewRepository(db, 0).Find(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, 0, g.MemberCount)
}

func TestGetGroupHandler(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	createTestGroup(t, NewRepository(db, 0), "CMPS101", "Algo Study", 3)

	resp := doJSON(router, "GET", "/api/study-groups/1", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var group GroupResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &group))
	assert.Equal(t, "CMPS101", group.Course)

	resp = doJSON(router, "GET", "/api/study-groups/2", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(router, "GET", "/api/study-groups/x", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, "GET", "/api/study-groups/2/members", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListGroupsHandlerEmpty(t *testing.T) {
	router := setupTestRouter(setupTestDB(t))

	resp := doJSON(router, "GET", "/api/study-groups?course=NOPE", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}
