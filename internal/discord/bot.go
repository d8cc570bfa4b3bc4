package discord

import (
	"fmt"

	"github.com/TheCodingDen/projects-bot/configs"
	"github.com/TheCodingDen/projects-bot/internal/review"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Bot owns the discordgo session and routes interactions into the review
// engine.
type Bot struct {
	session  *discordgo.Session
	config   configs.Discord
	executor *review.Executor
	store    *review.Store
	router   *review.TemplateRouter
	logger   *zap.SugaredLogger
}

func NewBot(
	session *discordgo.Session,
	config configs.Discord,
	executor *review.Executor,
	store *review.Store,
	router *review.TemplateRouter,
	logger *zap.SugaredLogger,
) *Bot {
	return &Bot{
		session:  session,
		config:   config,
		executor: executor,
		store:    store,
		router:   router,
		logger:   logger,
	}
}

// Start opens the gateway connection and registers the slash commands.
func (b *Bot) Start() error {
	b.session.AddHandler(b.handleInteraction)
	b.session.AddHandler(b.handleMemberRemove)
	b.session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages | discordgo.IntentsGuildMembers

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	for _, command := range b.commandDefinitions() {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, command); err != nil {
			return fmt.Errorf("failed to register command %s: %w", command.Name, err)
		}
	}

	return nil
}

func (b *Bot) Stop() error {
	return b.session.Close()
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionMessageComponent:
		b.handleButton(i)
	case discordgo.InteractionApplicationCommand:
		b.handleCommand(i)
	}
}

// respond sends an ephemeral reply, every rejected operation surfaces a
// displayable reason this way.
func (b *Bot) respond(i *discordgo.InteractionCreate, content string) {
	err := b.session.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: content,
			Flags:   discordgo.MessageFlagsEphemeral,
		},
	})
	if err != nil {
		b.logger.Errorw("failed to respond to interaction", "error", err)
	}
}
