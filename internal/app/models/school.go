package models

import "time"

// School is a school or college registration reviewed by officials
type School struct {
	ID              int64        `json:"id"`
	Principal       string       `json:"principal"`
	Name            string       `json:"name"`
	Phone           string       `json:"phone"`
	Email           string       `json:"email"`
	District        string       `json:"district"`
	EOLLetter       string       `json:"eol_letter"`
	Status          ReviewStatus `json:"status"`
	RejectionReason string       `json:"rejection_reason"`
	PasswordHash    string       `json:"-"`
	CreatedAt       time.Time    `json:"created_at"`
}
