package review

import (
	"github.com/TheCodingDen/projects-bot/configs"
	"github.com/TheCodingDen/projects-bot/internal/db/models"
)

// Thresholds decides when a vote addition tips a submission. It is a pure
// comparison against per-role configuration and is only ever consulted on
// the add path: removing a vote never un-tips a decision.
type Thresholds struct {
	config configs.Vote
}

func NewThresholds(config configs.Vote) Thresholds {
	return Thresholds{config: config}
}

// Accepts reports whether the post-mutation upvote count for the role
// meets that role's approval threshold.
func (t Thresholds) Accepts(newCount int, role models.VoteRole) bool {
	return newCount >= t.approveThreshold(role)
}

// Rejects reports whether the post-mutation downvote count for the role
// meets that role's rejection threshold.
func (t Thresholds) Rejects(newCount int, role models.VoteRole) bool {
	return newCount >= t.rejectThreshold(role)
}

func (t Thresholds) approveThreshold(role models.VoteRole) int {
	if role == models.VoteRoleStaff {
		return t.config.StaffApproveThreshold
	}
	return t.config.VeteransApproveThreshold
}

func (t Thresholds) rejectThreshold(role models.VoteRole) int {
	if role == models.VoteRoleStaff {
		return t.config.StaffRejectThreshold
	}
	return t.config.VeteransRejectThreshold
}
