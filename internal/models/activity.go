package models

import "time"

// Activity types written by the automation chain. The column itself is
// free-form text.
const (
	ActivityLeadConverted = "lead_converted"
	ActivityEmailSent     = "email_sent"
)

// Activity is an append-only audit log entry. Never updated or deleted
// through the API.
type Activity struct {
	ID          int64     `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
