package models

import "time"

// OfficerKind distinguishes area and district labour officer registrations
type OfficerKind string

const (
	OfficerALO OfficerKind = "alo"
	OfficerDLO OfficerKind = "dlo"
)

// Officer is an ALO or DLO registration
type Officer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	PhoneNo   string    `json:"phone_no"`
	Email     string    `json:"email"`
	District  string    `json:"district"`
	CreatedAt time.Time `json:"created_at"`
}
