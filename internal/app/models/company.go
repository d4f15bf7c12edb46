package models

import "time"

// Company is a company registration with no review workflow
type Company struct {
	ID                      int64     `json:"id"`
	Name                    string    `json:"name"`
	Phone                   string    `json:"phone"`
	GSTNumber               string    `json:"gst_number"`
	Email                   string    `json:"email"`
	LRN                     string    `json:"lrn"`
	Category                string    `json:"category"`
	District                string    `json:"district"`
	Address                 string    `json:"address"`
	Description             string    `json:"description"`
	EOILetter               string    `json:"eoi_letter"`
	RegistrationCertificate string    `json:"registration_certificate"`
	CreatedAt               time.Time `json:"created_at"`
}
