package review

import (
	"github.com/TheCodingDen/projects-bot/internal/db/models"
)

// LedgerOutcome distinguishes a recorded vote from a toggled removal.
type LedgerOutcome int

const (
	LedgerAdded LedgerOutcome = iota
	LedgerRemoved
)

// AddVote records a vote in the submission's in-memory ledger.
//
// A voter holds at most one active vote per type. Casting the same type
// again is a toggle and removes the existing vote. Casting the opposing
// direction while a vote is held fails with ConflictingVoteError. PAUSE
// votes are tracked separately and never conflict with UP/DOWN.
func AddVote(submission *models.Submission, vote models.Vote) (LedgerOutcome, error) {
	for _, existing := range submission.Votes {
		if existing.VoterID != vote.VoterID {
			continue
		}

		if existing.Type == vote.Type {
			RemoveVote(submission, vote.VoterID, vote.Type)
			return LedgerRemoved, nil
		}

		if vote.Type == models.VoteTypePause || existing.Type == models.VoteTypePause {
			continue
		}

		return 0, &ConflictingVoteError{
			VoterID:   vote.VoterID,
			Existing:  existing.Type,
			Requested: vote.Type,
		}
	}

	submission.Votes = append(submission.Votes, vote)
	return LedgerAdded, nil
}

// RemoveVote deletes a matching vote from the ledger. Removing a vote that
// does not exist is a no-op, not an error.
func RemoveVote(submission *models.Submission, voterID string, voteType models.VoteType) bool {
	for i, existing := range submission.Votes {
		if existing.VoterID == voterID && existing.Type == voteType {
			submission.Votes = append(submission.Votes[:i], submission.Votes[i+1:]...)
			return true
		}
	}

	return false
}

// CountVotes returns the number of active votes of the given type cast by
// voters holding the given role.
func CountVotes(submission *models.Submission, voteType models.VoteType, role models.VoteRole) int {
	count := 0

	for _, vote := range submission.Votes {
		if vote.Type == voteType && vote.Role == role {
			count++
		}
	}

	return count
}
