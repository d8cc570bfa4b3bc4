package discord

import (
	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/bwmarrin/discordgo"
)

// handleMemberRemove silently rejects every open submission whose author
// just left the guild. The author-left template delivers nothing, so the
// rejection only archives the review surfaces and records the decision.
func (b *Bot) handleMemberRemove(s *discordgo.Session, e *discordgo.GuildMemberRemove) {
	submissions, err := b.store.FetchOpenByAuthor(e.User.ID)
	if err != nil {
		b.logger.Errorw("failed to load submissions for departed member", "author", e.User.ID, "error", err)
		return
	}

	if len(submissions) == 0 {
		return
	}

	template, ok := b.router.LookupByKey("author-left")
	if !ok {
		b.logger.Errorw("author-left rejection template is not configured")
		return
	}

	for _, submission := range submissions {
		if _, err := b.executor.ForceReject(s.State.User.ID, models.VoteRoleStaff, submission.ID, template); err != nil {
			b.logger.Errorw("failed to reject submission of departed member",
				"submission", submission.ID, "author", e.User.ID, "error", err)
			continue
		}

		b.logger.Infow("rejected submission because the author left the guild",
			"submission", submission.ID, "author", e.User.ID)
	}
}
