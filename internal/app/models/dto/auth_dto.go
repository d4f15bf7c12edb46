package dto

import "time"

// LoginResponse is returned by every login endpoint
type LoginResponse struct {
	User      interface{} `json:"user"`
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// SessionResponse describes the caller's current session
type SessionResponse struct {
	Kind       string    `json:"kind"`
	ID         int64     `json:"id"`
	Identifier string    `json:"identifier"`
	Role       string    `json:"role,omitempty"`
	ExpiresAt  time.Time `json:"expiresAt"`
}
