package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Client is the Academic Support Hub API client.
// Each capability is reached through its own typed field.
type Client struct {
	baseURL    string
	httpClient *http.Client

	StudyGroups *StudyGroups
	Resources   *Resources
	Planner     *Planner
	Questions   *Questions
}

// New creates a new API client.
func New(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	c.StudyGroups = &StudyGroups{c: c}
	c.Resources = &Resources{c: c}
	c.Planner = &Planner{c: c}
	c.Questions = &Questions{c: c}
	return c
}

// StudyGroups lists, creates and joins study groups.
type StudyGroups struct{ c *Client }

// List fetches groups, optionally filtered by course and tag.
func (s *StudyGroups) List(ctx context.Context, course, tag string) ([]Group, error) {
	params := url.Values{}
	if course != "" {
		params.Set("course", course)
	}
	if tag != "" {
		params.Set("tag", tag)
	}

	var groups []Group
	if err := s.c.get(ctx, withQuery("/api/study-groups", params), &groups); err != nil {
		return nil, fmt.Errorf("client.StudyGroups.List: %w", err)
	}
	return groups, nil
}

// Create creates a study group.
func (s *StudyGroups) Create(ctx context.Context, req CreateGroupRequest) (*Group, error) {
	var group Group
	if err := s.c.post(ctx, "/api/study-groups", req, &group); err != nil {
		return nil, fmt.Errorf("client.StudyGroups.Create: %w", err)
	}
	return &group, nil
}

// Join seats name in the group. A full group or a repeat join is returned
// as an *HTTPError with status 409; JoinStatusOf reports which.
func (s *StudyGroups) Join(ctx context.Context, groupID uint, name, email string) (*JoinResult, error) {
	body := map[string]string{"name": name}
	if email != "" {
		body["email"] = email
	}

	var result JoinResult
	path := "/api/study-groups/" + strconv.FormatUint(uint64(groupID), 10) + "/join"
	if err := s.c.post(ctx, path, body, &result); err != nil {
		return nil, fmt.Errorf("client.StudyGroups.Join: %w", err)
	}
	return &result, nil
}

// Resources lists and shares study resources.
type Resources struct{ c *Client }

// List fetches resources by course, tag and free-text search.
func (r *Resources) List(ctx context.Context, course, tag, search string) ([]Resource, error) {
	params := url.Values{}
	if course != "" {
		params.Set("course", course)
	}
	if tag != "" {
		params.Set("tag", tag)
	}
	if search != "" {
		params.Set("search", search)
	}

	var resources []Resource
	if err := r.c.get(ctx, withQuery("/api/resources", params), &resources); err != nil {
		return nil, fmt.Errorf("client.Resources.List: %w", err)
	}
	return resources, nil
}

// Create shares a link.
func (r *Resources) Create(ctx context.Context, req CreateResourceRequest) (*Resource, error) {
	var resource Resource
	if err := r.c.post(ctx, "/api/resources", req, &resource); err != nil {
		return nil, fmt.Errorf("client.Resources.Create: %w", err)
	}
	return &resource, nil
}

// Planner reads and writes a member's assignments.
type Planner struct{ c *Client }

// List fetches the planner for email.
func (p *Planner) List(ctx context.Context, email string) ([]Assignment, error) {
	params := url.Values{}
	params.Set("email", email)

	var assignments []Assignment
	if err := p.c.get(ctx, withQuery("/api/assignments", params), &assignments); err != nil {
		return nil, fmt.Errorf("client.Planner.List: %w", err)
	}
	return assignments, nil
}

// Create adds an assignment.
func (p *Planner) Create(ctx context.Context, req CreateAssignmentRequest) (*Assignment, error) {
	var assignment Assignment
	if err := p.c.post(ctx, "/api/assignments", req, &assignment); err != nil {
		return nil, fmt.Errorf("client.Planner.Create: %w", err)
	}
	return &assignment, nil
}

// Questions reads and posts to the Q&A board.
type Questions struct{ c *Client }

// List fetches questions by course and search text.
func (q *Questions) List(ctx context.Context, course, search string) ([]Question, error) {
	params := url.Values{}
	if course != "" {
		params.Set("course", course)
	}
	if search != "" {
		params.Set("search", search)
	}

	var questions []Question
	if err := q.c.get(ctx, withQuery("/api/questions", params), &questions); err != nil {
		return nil, fmt.Errorf("client.Questions.List: %w", err)
	}
	return questions, nil
}

// Create asks a question.
func (q *Questions) Create(ctx context.Context, req CreateQuestionRequest) (*Question, error) {
	var question Question
	if err := q.c.post(ctx, "/api/questions", req, &question); err != nil {
		return nil, fmt.Errorf("client.Questions.Create: %w", err)
	}
	return &question, nil
}

// Answer replies to a question.
func (q *Questions) Answer(ctx context.Context, questionID uint, req CreateAnswerRequest) (*Answer, error) {
	var answer Answer
	path := "/api/questions/" + strconv.FormatUint(uint64(questionID), 10) + "/answers"
	if err := q.c.post(ctx, path, req, &answer); err != nil {
		return nil, fmt.Errorf("client.Questions.Answer: %w", err)
	}
	return &answer, nil
}

func withQuery(path string, params url.Values) string {
	if len(params) == 0 {
		return path
	}
	return path + "?" + params.Encode()
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.doRequest(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.doRequest(ctx, http.MethodPost, path, body, out)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode >= 400 {
		respBody, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		if readErr != nil {
			return &HTTPError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read body: %v", readErr)}
		}
		var apiErr struct {
			Error  string `json:"error"`
			Status string `json:"status"`
		}
		if json.Unmarshal(respBody, &apiErr) == nil && (apiErr.Error != "" || apiErr.Status != "") {
			msg := apiErr.Error
			if msg == "" {
				msg = apiErr.Status
			}
			return &HTTPError{StatusCode: resp.StatusCode, Message: msg, Status: apiErr.Status}
		}
		return &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
