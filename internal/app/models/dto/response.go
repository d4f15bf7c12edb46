package dto

import "time"

// Wire layouts for date and time fields
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// APIResponse is the success envelope for every endpoint
type APIResponse struct {
	Data      interface{}  `json:"data,omitempty"`
	Message   string       `json:"message,omitempty"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp time.Time    `json:"timestamp"`
}

// NewAPIResponse wraps data in the success envelope
func NewAPIResponse(data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Timestamp: time.Now(),
	}
}

// NewMessageResponse wraps data and a message in the success envelope
func NewMessageResponse(message string, data interface{}) APIResponse {
	return APIResponse{
		Data:      data,
		Message:   message,
		Timestamp: time.Now(),
	}
}
