package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/TheCodingDen/projects-bot/configs"
	"github.com/TheCodingDen/projects-bot/internal/api"
	"github.com/TheCodingDen/projects-bot/internal/db"
	"github.com/TheCodingDen/projects-bot/internal/db/repositories"
	"github.com/TheCodingDen/projects-bot/internal/di"
	"github.com/TheCodingDen/projects-bot/internal/discord"
	"github.com/TheCodingDen/projects-bot/internal/review"
	"github.com/TheCodingDen/projects-bot/internal/services"
	"github.com/bwmarrin/discordgo"
)

const githubAPIBaseURL = "https://api.github.com"

func main() {
	config, err := configs.LoadProjectsBotConfig()
	logger := di.NewLogger(config.Logger)

	if err != nil {
		logger.Fatalw("failed to load config", "error", err)
	}
	logger.Info("config loaded")

	logger.Info("starting db")
	database, err := db.StartDB(config.DB, logger)
	if err != nil {
		logger.Fatalw("failed to start db", "error", err)
	}
	logger.Info("db started")

	submissionRepository := repositories.NewSubmissionRepository(database)
	voteRepository := repositories.NewVoteRepository(database)
	draftRepository := repositories.NewDraftRepository(database)

	store := review.NewStore(submissionRepository, voteRepository, draftRepository, logger)
	thresholds := review.NewThresholds(config.Vote)
	router := review.NewTemplateRouter()

	session, err := discordgo.New("Bot " + config.Discord.Token)
	if err != nil {
		logger.Fatalw("failed to create discord session", "error", err)
	}

	presenter := discord.NewPresenter(session, config.Discord, logger)
	executor := review.NewExecutor(store, presenter, thresholds, logger)
	bot := discord.NewBot(session, config.Discord, executor, store, router, logger)

	licenseService := services.NewLicenseService(githubAPIBaseURL)
	checks := review.NewCheckRunner(submissionRepository, licenseService, logger)
	intake := api.NewIntake(store, presenter, checks, logger)
	server := api.NewServer(config.API, intake, logger)

	logger.Info("starting bot")
	if err := bot.Start(); err != nil {
		logger.Fatalw("failed to start bot", "error", err)
	}

	go func() {
		logger.Info("starting intake api")
		server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	server.Stop()

	if err := bot.Stop(); err != nil {
		logger.Errorw("failed to close discord session", "error", err)
	}
}
