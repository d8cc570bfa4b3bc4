package models

import "time"

// Draft is a staged rejection-feedback message. Drafts are append-only,
// the newest one is the submission's current draft.
type Draft struct {
	ID           string    `json:"id" pg:",pk"`
	SubmissionID string    `json:"submission_id" pg:",notnull"`
	AuthorID     string    `json:"author_id" pg:",notnull"`
	Content      string    `json:"content" pg:",notnull"`
	CreatedAt    time.Time `json:"created_at" pg:"default:now()"`
}
