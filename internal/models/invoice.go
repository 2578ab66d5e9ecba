package models

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "en attente"
	InvoiceStatusPaid    InvoiceStatus = "payée"
)

// ContactDetails is the wider contact projection joined onto invoices.
type ContactDetails struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Invoice is created by the conversion chain only; there is no manual
// creation path.
type Invoice struct {
	ID            int64         `json:"id"`
	LeadID        int64         `json:"lead_id"`
	ContactID     *int64        `json:"contact_id"`
	InvoiceNumber string        `json:"invoice_number"`
	Amount        float64       `json:"amount"`
	Status        InvoiceStatus `json:"status"`
	DueDate       time.Time     `json:"due_date"`
	CreatedAt     time.Time     `json:"created_at"`

	Contact *ContactDetails `json:"contacts,omitempty"`
}
