package discord

import (
	"errors"
	"fmt"
	"time"

	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/TheCodingDen/projects-bot/internal/review"
	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"
)

func (b *Bot) commandDefinitions() []*discordgo.ApplicationCommand {
	reasons := make([]*discordgo.ApplicationCommandOptionChoice, 0)

	for _, template := range b.router.Templates() {
		reasons = append(reasons, &discordgo.ApplicationCommandOptionChoice{
			Name:  template.Label,
			Value: template.Key,
		})
	}

	return []*discordgo.ApplicationCommand{
		{
			Name:        "reject",
			Description: "Instantly rejects a project with a preset reason.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "The rejection reason.",
					Required:    true,
					Choices:     reasons,
				},
			},
		},
		{
			Name:        "draft",
			Description: "Controls draft rejection messages for a project.",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Creates a new draft for this project.",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "content",
							Description: "The draft feedback message.",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "show",
					Description: "Shows the latest draft for this project.",
				},
			},
		},
		{
			Name:        "edit",
			Description: "Edit a value of a submission.",
			Options:     editSubcommands(),
		},
		{
			Name:        "revalidate",
			Description: "Revalidate a submission, removing warnings if it is successful.",
		},
		{
			Name:        "cleanup",
			Description: "Marks a completed submission as deleted.",
		},
	}
}

func editSubcommands() []*discordgo.ApplicationCommandOption {
	fields := []struct {
		name        string
		description string
	}{
		{"name", "Edits the name of a submission"},
		{"author", "Edits the author of a submission"},
		{"description", "Edits the description of a submission"},
		{"tech", "Edits the technologies of a submission"},
		{"source", "Edits the source link of a submission"},
		{"other", "Edits the other link of a submission"},
	}

	subcommands := make([]*discordgo.ApplicationCommandOption, 0, len(fields))

	for _, field := range fields {
		subcommands = append(subcommands, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        field.name,
			Description: field.description,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "value",
					Description: "The new value.",
					Required:    true,
				},
			},
		})
	}

	return subcommands
}

func (b *Bot) handleCommand(i *discordgo.InteractionCreate) {
	data := i.ApplicationCommandData()

	// All commands run inside a submission's review thread.
	submission, err := b.store.FetchByReviewThreadID(i.ChannelID)
	if err != nil {
		b.respond(i, "This command must be used inside a submission's review thread.")
		return
	}

	switch data.Name {
	case "reject":
		b.handleReject(i, submission, data.Options[0].StringValue())
	case "draft":
		b.handleDraft(i, submission, data.Options[0])
	case "edit":
		b.handleEdit(i, submission, data.Options[0])
	case "revalidate":
		b.handleRevalidate(i, submission)
	case "cleanup":
		b.handleCleanup(i, submission)
	default:
		b.logger.Warnw("unknown command", "name", data.Name)
	}
}

func (b *Bot) handleReject(i *discordgo.InteractionCreate, submission *models.Submission, reason string) {
	role, _ := ResolveRole(i.Member, b.config)

	template, ok := b.router.LookupByKey(reason)
	if !ok {
		err := &review.TemplateNotFoundError{Key: reason}
		b.respond(i, err.Error())
		return
	}

	outcome, err := b.executor.ForceReject(i.Member.User.ID, role, submission.ID, template)
	if err != nil {
		var external *review.ExternalOperationError
		if errors.As(err, &external) {
			// The templated message could not be delivered, hand it to
			// staff so the author still receives feedback.
			content := template.Execute(fmt.Sprintf("<@%s>", submission.AuthorID), submission.Name)
			b.respond(i, fmt.Sprintf("Failed to send feedback, please send the following message in a feedback thread:\n```\n%s\n```", content))
			return
		}

		b.respond(i, fmt.Sprintf("Could not reject: %s", err))
		return
	}

	if outcome == review.OutcomeCleanupNotRun {
		b.respond(i, "Rejected. The rejection was logged publicly, please archive the thread and remove the submission message manually.")
		return
	}

	b.respond(i, fmt.Sprintf("Rejected submission for reason %q.", template.Label))
}

func (b *Bot) handleDraft(i *discordgo.InteractionCreate, submission *models.Submission, sub *discordgo.ApplicationCommandInteractionDataOption) {
	switch sub.Name {
	case "create":
		draft := models.Draft{
			ID:           uuid.NewString(),
			SubmissionID: submission.ID,
			AuthorID:     i.Member.User.ID,
			Content:      sub.Options[0].StringValue(),
			CreatedAt:    time.Now(),
		}

		release := b.store.Lock(submission.ID)
		err := b.store.AppendDraft(submission, draft)
		release()

		if err != nil {
			b.respond(i, fmt.Sprintf("Could not save draft: %s", err))
			return
		}

		b.respond(i, "Draft saved.")
	case "show":
		draft := submission.CurrentDraft()
		if draft == nil {
			b.respond(i, "This project has no draft yet.")
			return
		}

		b.respond(i, fmt.Sprintf("Current draft (by <@%s>):\n%s", draft.AuthorID, draft.Content))
	}
}

func (b *Bot) handleEdit(i *discordgo.InteractionCreate, submission *models.Submission, sub *discordgo.ApplicationCommandInteractionDataOption) {
	role, _ := ResolveRole(i.Member, b.config)

	field := review.EditField(sub.Name)
	value := sub.Options[0].StringValue()

	if _, err := b.executor.Edit(role, submission.ID, field, value); err != nil {
		b.respond(i, fmt.Sprintf("Could not edit: %s", err))
		return
	}

	b.respond(i, fmt.Sprintf("Updated the %s successfully.", sub.Name))
}

func (b *Bot) handleRevalidate(i *discordgo.InteractionCreate, submission *models.Submission) {
	if _, err := b.executor.Revalidate(submission.ID); err != nil {
		b.respond(i, fmt.Sprintf("Could not revalidate: %s", err))
		return
	}

	b.respond(i, "Cleared warnings successfully.")
}

func (b *Bot) handleCleanup(i *discordgo.InteractionCreate, submission *models.Submission) {
	role, _ := ResolveRole(i.Member, b.config)
	if role != models.VoteRoleStaff {
		b.respond(i, review.ErrStaffOnly.Error())
		return
	}

	if !submission.State.IsTerminal() {
		b.respond(i, "Only completed submissions can be cleaned up.")
		return
	}

	if err := b.store.Remove(submission.ID); err != nil {
		b.respond(i, fmt.Sprintf("Could not clean up: %s", err))
		return
	}

	b.respond(i, "Submission removed.")
}
