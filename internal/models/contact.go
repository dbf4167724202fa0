package models

import "time"

// ContactSubmission is one message captured through the contact form
type ContactSubmission struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Email      string    `json:"email" db:"email"`
	Message    string    `json:"message" db:"message"`
	ReceivedAt time.Time `json:"received_at" db:"created_at"`
}

// ContactRequest is the inbound contact form payload
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
