package review

import (
	"fmt"

	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/TheCodingDen/projects-bot/internal/db/repositories"
	"github.com/TheCodingDen/projects-bot/internal/services"
	"go.uber.org/zap"
)

// CheckOutcome is the explicit result of one non-critical intake check.
// Checks never escape as errors into the voting engine: a failed lookup
// is reported as a failed check with a detail string.
type CheckOutcome struct {
	Name   string
	Passed bool
	Detail string
}

// CheckRunner aggregates the non-critical intake checks: duplicate source
// links and license presence.
type CheckRunner struct {
	submissions repositories.SubmissionRepository
	license     services.LicenseService
	logger      *zap.SugaredLogger
}

func NewCheckRunner(submissions repositories.SubmissionRepository, license services.LicenseService, logger *zap.SugaredLogger) *CheckRunner {
	return &CheckRunner{
		submissions: submissions,
		license:     license,
		logger:      logger,
	}
}

// Run executes all checks and returns their outcomes. The caller decides
// whether any failures demote the submission to WARNING.
func (c *CheckRunner) Run(submission *models.Submission) []CheckOutcome {
	return []CheckOutcome{
		c.checkDuplicates(submission),
		c.checkLicense(submission),
	}
}

// AllPassed reports whether every outcome passed.
func AllPassed(outcomes []CheckOutcome) bool {
	for _, outcome := range outcomes {
		if !outcome.Passed {
			return false
		}
	}
	return true
}

func (c *CheckRunner) checkDuplicates(submission *models.Submission) CheckOutcome {
	outcome := CheckOutcome{Name: "duplicate", Passed: true}

	duplicates, err := c.submissions.GetManyBySourceLink(submission.SourceLink)
	if err != nil {
		c.logger.Warnw("duplicate check failed", "submission", submission.ID, "error", err)
		outcome.Passed = false
		outcome.Detail = "could not query for duplicate submissions"
		return outcome
	}

	for _, duplicate := range duplicates {
		if duplicate.ID == submission.ID {
			continue
		}

		outcome.Passed = false
		outcome.Detail = fmt.Sprintf("source link already submitted as %q (%s)", duplicate.Name, duplicate.ID)
		return outcome
	}

	return outcome
}

func (c *CheckRunner) checkLicense(submission *models.Submission) CheckOutcome {
	outcome := CheckOutcome{Name: "license", Passed: true}

	if !c.license.IsEligible(submission.SourceLink) {
		outcome.Detail = "source link is not eligible for a license check"
		return outcome
	}

	hasLicense, err := c.license.HasLicense(submission.SourceLink)
	if err != nil {
		c.logger.Warnw("license check failed", "submission", submission.ID, "error", err)
		outcome.Passed = false
		outcome.Detail = "could not query repository license"
		return outcome
	}

	if !hasLicense {
		outcome.Passed = false
		outcome.Detail = "repository has no recognised root-level license"
	}

	return outcome
}
