package domain

import (
	"net/http"
	"time"
)

// ModelCreateRequest is the body of the create-model call. Field names
// follow the Custom Translator v1.0 API.
type ModelCreateRequest struct {
	Name          string `json:"name"`
	ProjectID     string `json:"projectId"`
	DocumentIDs   []int  `json:"documentIds"`
	IsAutoDeploy  bool   `json:"isAutoDeploy"`
	IsTestingAuto bool   `json:"isTestingAuto"`
	IsTuningAuto  bool   `json:"isTuningAuto"`
}

// Response is an API reply kept verbatim, whatever the status
type Response struct {
	Headers     http.Header
	Method      string
	URL         string
	Description string
	RequestID   string
	Body        []byte
	StatusCode  int
	Latency     time.Duration
}

// IsSuccess is informational only, callers print every response
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
