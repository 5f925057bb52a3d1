package model

import "time"

type ContactSubmission struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone,omitempty"`
	Service       string    `json:"service,omitempty"`
	PreferredDate string    `json:"preferred_date,omitempty"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

type ContactRequest struct {
	Name          string `json:"name" validate:"required,max=200"`
	Email         string `json:"email" validate:"required,email,max=320"`
	Phone         string `json:"phone" validate:"max=40"`
	Service       string `json:"service" validate:"max=200"`
	PreferredDate string `json:"preferred_date" validate:"max=100"`
	Message       string `json:"message" validate:"required,max=5000"`
}
