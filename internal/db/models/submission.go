package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type SubmissionState string

const (
	SubmissionStateRaw        SubmissionState = "RAW"
	SubmissionStateWarning    SubmissionState = "WARNING"
	SubmissionStateError      SubmissionState = "ERROR"
	SubmissionStateProcessing SubmissionState = "PROCESSING"
	SubmissionStatePaused     SubmissionState = "PAUSED"
	SubmissionStateAccepted   SubmissionState = "ACCEPTED"
	SubmissionStateDenied     SubmissionState = "DENIED"
	SubmissionStateDeleted    SubmissionState = "DELETED"
)

func (s SubmissionState) String() string {
	return string(s)
}

func (s SubmissionState) CapitalizedString() string {
	return cases.Title(language.English).String(strings.ToLower(s.String()))
}

// IsTerminal reports whether the submission can no longer be voted on.
// Completed records are kept in the database and only ever marked deleted.
func (s SubmissionState) IsTerminal() bool {
	return s == SubmissionStateAccepted || s == SubmissionStateDenied || s == SubmissionStateDeleted
}

// IsPending reports whether the submission needs manual attention before voting.
func (s SubmissionState) IsPending() bool {
	return s == SubmissionStateWarning || s == SubmissionStateError
}

// IsValidated reports whether all core data is resolved and the submission
// is in the voting stage.
func (s SubmissionState) IsValidated() bool {
	return s == SubmissionStateProcessing || s == SubmissionStatePaused
}

type Submission struct {
	ID          string          `json:"id" pg:",pk"`
	Name        string          `json:"name" pg:",notnull"`
	AuthorID    string          `json:"author_id" pg:",notnull"`
	Description string          `json:"description" pg:",notnull"`
	Tech        string          `json:"tech" pg:",notnull"`
	SourceLink  string          `json:"source_link" pg:",notnull"`
	OtherLink   string          `json:"other_link"`
	State       SubmissionState `json:"state" pg:"type:SubmissionState,notnull,default:'RAW'"`
	SubmittedAt time.Time       `json:"submitted_at" pg:"default:now()"`

	MessageID        string `json:"message_id"`
	ReviewThreadID   string `json:"review_thread_id"`
	FeedbackThreadID string `json:"feedback_thread_id"`

	Votes  []Vote  `json:"votes" pg:"rel:has-many"`
	Drafts []Draft `json:"drafts" pg:"rel:has-many"`
}

// CurrentDraft returns the most recently created draft, or nil if none exists.
func (s *Submission) CurrentDraft() *Draft {
	var current *Draft

	for i := range s.Drafts {
		if current == nil || s.Drafts[i].CreatedAt.After(current.CreatedAt) {
			current = &s.Drafts[i]
		}
	}

	return current
}
