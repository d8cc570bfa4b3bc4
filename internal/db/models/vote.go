package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type (
	VoteType string
	VoteRole string
)

const (
	VoteTypeUp    VoteType = "UP"
	VoteTypeDown  VoteType = "DOWN"
	VoteTypePause VoteType = "PAUSE"

	VoteRoleStaff    VoteRole = "STAFF"
	VoteRoleVeterans VoteRole = "VETERANS"
)

func (t VoteType) String() string {
	return string(t)
}

func (r VoteRole) String() string {
	return string(r)
}

func (r VoteRole) CapitalizedString() string {
	return cases.Title(language.English).String(strings.ToLower(r.String()))
}

type Vote struct {
	ID           int       `json:"id" pg:",pk"`
	SubmissionID string    `json:"submission_id" pg:",notnull"`
	VoterID      string    `json:"voter_id" pg:",notnull"`
	Role         VoteRole  `json:"role" pg:"type:VoteRole,notnull"`
	Type         VoteType  `json:"type" pg:"type:VoteType,notnull"`
	CreatedAt    time.Time `json:"created_at" pg:"default:now()"`
}
