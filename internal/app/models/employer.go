package models

import "time"

// Employer is a business registration reviewed by officials
type Employer struct {
	ID              int64        `json:"id"`
	BusinessName    string       `json:"businessName"`
	Phone           string       `json:"phone"`
	GSTNumber       string       `json:"gstNumber"`
	Email           string       `json:"email"`
	IRN             string       `json:"irn"`
	Category        string       `json:"category"`
	Address         string       `json:"address"`
	District        string       `json:"district"`
	Description     string       `json:"description"`
	Enrollment      string       `json:"enrollment"`
	Documents       string       `json:"documents"`
	EOILetter       string       `json:"eoiLetter"`
	Certificate     string       `json:"certificate"`
	Status          ReviewStatus `json:"status"`
	RejectionReason string       `json:"rejection_reason"`
	PasswordHash    string       `json:"-"`
	CreatedAt       time.Time    `json:"created_at"`
}
