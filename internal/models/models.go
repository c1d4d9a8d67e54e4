package models

import (
	"time"

	"github.com/google/uuid"
)

// AskRequest is the body of POST /ask.
// @Description AskRequest carries the user's free-text question.
type AskRequest struct {
	Prompt string `json:"prompt" example:"What delay should I expect at 2 PM?"`
}

// AskResponse is the reply of POST /ask.
// @Description AskResponse carries the answer; content is an HTML fragment when type is "data".
type AskResponse struct {
	Type    string `json:"type" example:"data" enums:"data,conversational,error"`
	Content string `json:"content"`
}

// QueryLog is one answered prompt.
// @Description QueryLog records a prompt, the function the model chose and how the request ended.
type QueryLog struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key"`
	Prompt     string    `json:"prompt" gorm:"type:text;not null"`
	Function   string    `json:"function,omitempty" gorm:"type:varchar(255);index"`
	ReplyType  string    `json:"reply_type" gorm:"type:varchar(50);not null"`
	HTTPStatus int       `json:"http_status" gorm:"not null"`
	LatencyMS  int64     `json:"latency_ms"`
	CreatedAt  time.Time `json:"created_at" gorm:"autoCreateTime;index"`
}

// PaginatedResponse wraps a page of results.
type PaginatedResponse struct {
	Data   interface{} `json:"data"`
	Total  int64       `json:"total"`
	Limit  int         `json:"limit"`
	Offset int         `json:"offset"`
}

// DatasetStatus reports whether one dataset file is available.
type DatasetStatus struct {
	Name      string    `json:"name"`
	Path      string    `json:"path"`
	Available bool      `json:"available"`
	SizeBytes int64     `json:"size_bytes,omitempty"`
	Size      string    `json:"size,omitempty"`
	ModTime   time.Time `json:"mod_time,omitempty"`
	Error     *APIError `json:"error,omitempty"` // Set when the file is not available
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status    string          `json:"status" example:"ok" enums:"ok,degraded"`
	CheckedAt time.Time       `json:"checked_at"`
	Datasets  []DatasetStatus `json:"datasets"`
}
