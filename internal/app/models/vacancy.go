package models

// Vacancy is a job opening. Employer is a display name, not a reference.
type Vacancy struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Employer        string `json:"employer"`
	District        string `json:"district"`
	Positions       int    `json:"positions"`
	ValidTill       string `json:"validTill"`
	InterviewDate   string `json:"interviewDate"`
	InterviewTime   string `json:"interviewTime"`
	AppliedStudents int    `json:"appliedStudents"`
}
