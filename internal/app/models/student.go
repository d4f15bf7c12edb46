package models

import "time"

// Student is a self-registered job seeker, identified by enrollment
type Student struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	ParentName   string    `json:"parent_name"`
	DOB          string    `json:"dob"`
	Age          int       `json:"age"`
	Phone        string    `json:"phone"`
	Emergency    string    `json:"emergency"`
	Email        string    `json:"email"`
	Gender       string    `json:"gender"`
	SchoolName   string    `json:"school_name"`
	District     string    `json:"district"`
	Bio          string    `json:"bio"`
	Address      string    `json:"address"`
	Course       string    `json:"course"`
	Interests    []string  `json:"interests"`
	IDCard       string    `json:"id_card"`
	Resume       string    `json:"resume"`
	Consent      string    `json:"consent"`
	Photo        string    `json:"photo"`
	Enrollment   string    `json:"enrollment"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
