package models

import "time"

// TaskStatus defines the possible statuses for a task.
type TaskStatus string

const (
	TaskStatusOpen TaskStatus = "à faire"
	TaskStatusDone TaskStatus = "terminé"
)

// Task is a to-do, created manually or by the lead conversion chain.
type Task struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	ContactID   *int64     `json:"contact_id"`
	CreatedAt   time.Time  `json:"created_at"`

	Contact *ContactName `json:"contacts,omitempty"`
}

type TaskPatch struct {
	Title       *string     `json:"title"`
	Description *string     `json:"description"`
	Status      *TaskStatus `json:"status"`
	DueDate     *time.Time  `json:"due_date"`
	ContactID   *int64      `json:"contact_id"`
}
