package discord

import (
	"fmt"

	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/TheCodingDen/projects-bot/internal/review"
	"github.com/bwmarrin/discordgo"
)

func (b *Bot) handleButton(i *discordgo.InteractionCreate) {
	role, ok := ResolveRole(i.Member, b.config)
	if !ok {
		b.respond(i, "You are not staff or veteran, so you cannot vote.")
		return
	}

	submission, err := b.store.FetchByMessageID(i.Message.ID)
	if err != nil {
		b.logger.Errorw("could not locate submission for message", "message", i.Message.ID, "error", err)
		b.respond(i, "Sorry, that submission could not be found.")
		return
	}

	customID := i.MessageComponentData().CustomID

	var outcome review.Outcome

	switch customID {
	case "upvote":
		outcome, err = b.executor.Upvote(models.Vote{
			SubmissionID: submission.ID,
			VoterID:      i.Member.User.ID,
			Role:         role,
			Type:         models.VoteTypeUp,
		})
	case "downvote":
		outcome, err = b.executor.Downvote(models.Vote{
			SubmissionID: submission.ID,
			VoterID:      i.Member.User.ID,
			Role:         role,
			Type:         models.VoteTypeDown,
		})
	case "pause":
		vote := models.Vote{
			SubmissionID: submission.ID,
			VoterID:      i.Member.User.ID,
			Role:         role,
			Type:         models.VoteTypePause,
		}

		// The executor re-validates state under the gate; this read only
		// picks the direction of the toggle.
		if submission.State == models.SubmissionStatePaused {
			outcome, err = b.executor.Unpause(vote)
		} else {
			outcome, err = b.executor.Pause(vote)
		}
	default:
		b.logger.Warnw("unknown button", "custom_id", customID)
		return
	}

	if err != nil {
		b.respond(i, fmt.Sprintf("Your vote could not be cast. Reason: %s", err))
		return
	}

	b.respond(i, outcomeMessage(outcome))
}

func outcomeMessage(outcome review.Outcome) string {
	switch outcome {
	case review.OutcomeVoteAdded:
		return "Applied your vote."
	case review.OutcomeVoteRemoved:
		return "Removed your vote."
	case review.OutcomeAccepted:
		return "Vote applied, the submission has been accepted."
	case review.OutcomeRejected:
		return "Vote applied, the submission has been rejected."
	case review.OutcomePaused:
		return "Paused the submission for voting."
	case review.OutcomeUnpaused:
		return "Unpaused the submission for voting."
	default:
		return "Done."
	}
}
