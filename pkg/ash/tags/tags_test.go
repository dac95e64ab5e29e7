package tags

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ashub/ash/pkg/ash/database"
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
	NewHandler(db, zap.NewNop()).RegisterRoutes(r.Group("/api"))
	return r
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, nil},
		{"trim and lower", []string{"  Exam ", "Algorithms"}, []string{"exam", "algorithms"}},
		{"comma list", []string{"exam, notes ,, Exam"}, []string{"exam", "notes"}},
		{"collapse spaces", []string{"dynamic   programming"}, []string{"dynamic programming"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in...))
		})
	}
}

func TestEnsureReusesRows(t *testing.T) {
	db := setupTestDB(t)

	first, err := Ensure(db, "exam", "notes")
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := Ensure(db, "EXAM, graphs")
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, first[0].ID, second[0].ID)

	var count int64
	db.Model(&models.Tag{}).Count(&count)
	assert.Equal(t, int64(3), count)
}

func TestListTags(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	exam, err := Ensure(db, "exam")
	require.NoError(t, err)
	_, err = Ensure(db, "algorithms")
	require.NoError(t, err)

	member := models.Member{NaturalKey: "name:alice", Name: "Alice"}
	require.NoError(t, db.Create(&member).Error)
	group := models.Group{Name: "Algo", Course: "CMPS101", Capacity: 3, Tags: exam}
	require.NoError(t, db.Create(&group).Error)
	resource := models.Resource{Title: "Notes", Course: "CMPS101", FilePath: "/uploads/a.pdf", UploadedByID: member.ID, Tags: exam}
	require.NoError(t, db.Create(&resource).Error)

	req, _ := http.NewRequest("GET", "/api/tags", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var got []TagResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "algorithms", got[0].Name)
	assert.Equal(t, 0, got[0].GroupCount)
	assert.Equal(t, "exam", got[1].Name)
	assert.Equal(t, 1, got[1].GroupCount)
	assert.Equal(t, 1, got[1].ResourceCount)
}

func TestListTagsEmpty(t *testing.T) {
	router := setupTestRouter(setupTestDB(t))

	req, _ := http.NewRequest("GET", "/api/tags", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestSetGroupTags(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	group := models.Group{Name: "Algo", Course: "CMPS101", Capacity: 3}
	require.NoError(t, db.Create(&group).Error)

	put := func(path string, tags []string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(SetTagsRequest{Tags: tags})
		req, _ := http.NewRequest("PUT", path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	resp := put("/api/study-groups/1/tags", []string{"Exam", "graphs"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	assert.JSONEq(t, `["exam","graphs"]`, resp.Body.String())

	resp = put("/api/study-groups/1/tags", []string{"graphs"})
	require.Equal(t, http.StatusOK, resp.Code)

	var reloaded models.Group
	require.NoError(t, db.Preload("Tags").First(&reloaded, group.ID).Error)
	assert.Equal(t, []string{"graphs"}, Names(reloaded.Tags))

	resp = put("/api/study-groups/1/tags", []string{})
	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())

	resp = put("/api/study-groups/9/tags", []string{"exam"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = put("/api/resources/9/tags", []string{"exam"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = put("/api/study-groups/abc/tags", []string{"exam"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
