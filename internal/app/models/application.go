package models

import "time"

// JobApplication links one student to one vacancy
type JobApplication struct {
	ID                 int64             `json:"id"`
	StudentID          int64             `json:"student"`
	VacancyID          int64             `json:"vacancy"`
	Applied            bool              `json:"applied"`
	ConfirmedInterview bool              `json:"confirmed_interview"`
	Status             ApplicationStatus `json:"status"`
	AppliedDate        time.Time         `json:"applied_date"`
	UpdatedAt          time.Time         `json:"updated_at"`
}

// StudentApplication is one row of a student's application list
type StudentApplication struct {
	VacancyID int64             `json:"vacancy_id"`
	Status    ApplicationStatus `json:"status"`
	Title     string            `json:"title"`
}

// ApplicationRosterEntry is one row of the global application roster
type ApplicationRosterEntry struct {
	ID       int64             `json:"id"`
	Student  string            `json:"Student"`
	Email    string            `json:"Email"`
	School   string            `json:"School"`
	JobTitle string            `json:"JobTitle"`
	Status   ApplicationStatus `json:"Status"`
}
