package models

import "time"

// Commission is a commission member registration
type Commission struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	PhoneNo   string    `json:"phone_no"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
