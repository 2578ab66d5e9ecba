package models

import "time"

// LeadStatus is the four-step sales funnel. The values are stored verbatim,
// including the space in "en cours".
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "nouveau"
	LeadStatusInProgress LeadStatus = "en cours"
	LeadStatusConverted  LeadStatus = "converti"
	LeadStatusLost       LeadStatus = "perdu"
)

// ContactName is the nested contact projection returned by joined queries,
// serialized under "contacts" to match the store's join expansion shape.
type ContactName struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Lead is a sales opportunity tracked through the funnel.
type Lead struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Amount    float64    `json:"amount"`
	Status    LeadStatus `json:"status"`
	ContactID *int64     `json:"contact_id"`
	CreatedAt time.Time  `json:"created_at"`

	// Contact is populated only by joined reads.
	Contact *ContactName `json:"contacts,omitempty"`
}

// LeadPatch is a partial update; nil fields are left untouched.
type LeadPatch struct {
	Title     *string     `json:"title"`
	Amount    *float64    `json:"amount"`
	Status    *LeadStatus `json:"status"`
	ContactID *int64      `json:"contact_id"`
}
