package models

import "time"

// LeadNote is an append-only note attached to a lead from the pipeline
// detail panel.
type LeadNote struct {
	ID        int64     `json:"id"`
	LeadID    int64     `json:"lead_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
