package api

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/TheCodingDen/projects-bot/internal/review"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Publisher is the slice of the presentation surface the intake needs.
type Publisher interface {
	ResolveAuthor(authorID string) error
	PostSubmission(submission *models.Submission) error
}

// SubmissionRequest is the JSON payload of an incoming submission.
type SubmissionRequest struct {
	Name        string `json:"name"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Tech        string `json:"tech"`
	Links       struct {
		Source string `json:"source"`
		Other  string `json:"other"`
	} `json:"links"`
}

// Validate returns the list of problems with the payload. An empty list
// means the payload is acceptable.
func (r SubmissionRequest) Validate() []string {
	var problems []string

	if strings.TrimSpace(r.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(r.Author) == "" {
		problems = append(problems, "author is required")
	}
	if strings.TrimSpace(r.Description) == "" {
		problems = append(problems, "description is required")
	}
	if strings.TrimSpace(r.Tech) == "" {
		problems = append(problems, "tech is required")
	}

	if strings.TrimSpace(r.Links.Source) == "" {
		problems = append(problems, "links.source is required")
	} else if !isValidLink(r.Links.Source) {
		problems = append(problems, "links.source must be a valid http(s) URL")
	}

	if r.Links.Other != "" && !isValidLink(r.Links.Other) {
		problems = append(problems, "links.other must be a valid http(s) URL")
	}

	return problems
}

func isValidLink(link string) bool {
	parsed, err := url.Parse(link)
	if err != nil {
		return false
	}

	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// Intake registers incoming submissions and dispatches them for voting:
// persist the raw record, resolve the author, post the review message and
// thread, run the non-critical checks, then settle the initial state.
type Intake struct {
	store     *review.Store
	publisher Publisher
	checks    *review.CheckRunner
	logger    *zap.SugaredLogger
}

func NewIntake(store *review.Store, publisher Publisher, checks *review.CheckRunner, logger *zap.SugaredLogger) *Intake {
	return &Intake{
		store:     store,
		publisher: publisher,
		checks:    checks,
		logger:    logger,
	}
}

// Handle processes one incoming submission and returns its assigned id.
func (t *Intake) Handle(request SubmissionRequest) (string, error) {
	submission := &models.Submission{
		ID:          uuid.NewString(),
		Name:        request.Name,
		AuthorID:    request.Author,
		Description: request.Description,
		Tech:        request.Tech,
		SourceLink:  request.Links.Source,
		OtherLink:   request.Links.Other,
		State:       models.SubmissionStateRaw,
		SubmittedAt: time.Now(),
	}

	release := t.store.Lock(submission.ID)
	defer release()

	if err := t.store.Create(submission); err != nil {
		return "", err
	}

	if err := t.publisher.ResolveAuthor(submission.AuthorID); err != nil {
		t.logger.Warnw("could not resolve submission author",
			"submission", submission.ID, "author", submission.AuthorID, "error", err)
		return submission.ID, t.settle(submission, models.SubmissionStateError)
	}

	if err := t.publisher.PostSubmission(submission); err != nil {
		t.logger.Errorw("could not post submission for review", "submission", submission.ID, "error", err)
		return submission.ID, t.settle(submission, models.SubmissionStateError)
	}

	outcomes := t.checks.Run(submission)

	state := models.SubmissionStateProcessing
	if !review.AllPassed(outcomes) {
		state = models.SubmissionStateWarning

		for _, outcome := range outcomes {
			if !outcome.Passed {
				t.logger.Infow("non-critical check failed",
					"submission", submission.ID, "check", outcome.Name, "detail", outcome.Detail)
			}
		}
	}

	return submission.ID, t.settle(submission, state)
}

func (t *Intake) settle(submission *models.Submission, state models.SubmissionState) error {
	if err := review.Transition(submission, state, "register"); err != nil {
		return fmt.Errorf("failed to settle submission state: %w", err)
	}

	return t.store.Save(submission)
}
