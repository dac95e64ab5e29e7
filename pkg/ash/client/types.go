package client

// Group is a study group as returned by the API.
type Group struct {
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

// CreateGroupRequest is the payload for creating a study group.
type CreateGroupRequest struct {
	Course   string   `json:"course"`
	Title    string   `json:"title"`
	Capacity *int     `json:"capacity,omitempty"`
	Meets    string   `json:"meets,omitempty"`
	Location string   `json:"location,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// JoinResult is the outcome of a successful join.
type JoinResult struct {
	Status  string `json:"status"`
	GroupID uint   `json:"groupId"`
	Group   *Group `json:"group,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Resource is a shared study resource.
type Resource struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Course     string   `json:"course"`
	FileURL    string   `json:"file_url"`
	IsUpload   bool     `json:"is_upload"`
	Tags       []string `json:"tags"`
	UploadedBy string   `json:"uploaded_by"`
	CreatedAt  string   `json:"created_at"`
}

// CreateResourceRequest is the payload for sharing a link.
type CreateResourceRequest struct {
	Course        string   `json:"course"`
	Title         string   `json:"title"`
	FileURL       string   `json:"file_url"`
	Tags          []string `json:"tags,omitempty"`
	UploaderName  string   `json:"uploader_name"`
	UploaderEmail string   `json:"uploader_email,omitempty"`
}

// Assignment is a planner entry.
type Assignment struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	Notes    string  `json:"notes,omitempty"`
	Due      *string `json:"due"`
	Priority *int    `json:"priority"`
}

// CreateAssignmentRequest is the payload for adding a planner entry.
type CreateAssignmentRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Title    string `json:"title"`
	Notes    string `json:"notes,omitempty"`
	Due      string `json:"due,omitempty"`
	Priority *int   `json:"priority,omitempty"`
}

// Question is a Q&A board post.
type Question struct {
	ID          uint           `json:"id"`
	Course      string         `json:"course"`
	Title       string         `json:"title"`
	Body        string         `json:"body"`
	Author      string         `json:"author"`
	GroupID     *uint          `json:"group_id,omitempty"`
	AnswerCount int            `json:"answer_count"`
	Reactions   map[string]int `json:"reactions,omitempty"`
	Answers     []Answer       `json:"answers,omitempty"`
	CreatedAt   string         `json:"created_at"`
}

// Answer is a reply to a question.
type Answer struct {
	ID         uint           `json:"id"`
	QuestionID uint           `json:"question_id"`
	Body       string         `json:"body"`
	Author     string         `json:"author"`
	Reactions  map[string]int `json:"reactions"`
	CreatedAt  string         `json:"created_at"`
}

// CreateQuestionRequest is the payload for asking a question.
type CreateQuestionRequest struct {
	Course      string `json:"course"`
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email,omitempty"`
	GroupID     *uint  `json:"group_id,omitempty"`
}

// CreateAnswerRequest is the payload for answering a question.
type CreateAnswerRequest struct {
	Body        string `json:"body"`
	AuthorName  string `json:"author_name"`
	AuthorEmail string `json:"author_email,omitempty"`
}
