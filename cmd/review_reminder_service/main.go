package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/TheCodingDen/projects-bot/configs"
	"github.com/TheCodingDen/projects-bot/internal/db"
	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/TheCodingDen/projects-bot/internal/db/repositories"
	"github.com/TheCodingDen/projects-bot/internal/di"
	"github.com/bwmarrin/discordgo"
	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

func main() {
	s := gocron.NewScheduler(time.UTC)

	config, err := configs.LoadReviewReminderServiceConfig()
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

	session, err := discordgo.New("Bot " + config.Discord.Token)
	if err != nil {
		logger.Fatalw("failed to create discord session", "error", err)
	}

	s.Cron(config.Reminder.Cron).Do(func() {
		submissionRepository := repositories.NewSubmissionRepository(database)

		logger.Info("getting submissions under review")
		submissions, err := submissionRepository.GetManyByState(
			models.SubmissionStateProcessing,
			models.SubmissionStatePaused,
		)
		if err != nil {
			logger.Errorw("failed to get submissions", "error", err)
			return
		}

		cutoff := time.Now().AddDate(0, 0, -config.Reminder.StaleAfterDays)
		stale := findStaleSubmissions(submissions, cutoff)

		if len(stale) == 0 {
			logger.Info("no stale submissions")
			return
		}

		sendReminder(session, config.Discord, stale, logger)
	})

	s.StartBlocking()
}

// findStaleSubmissions returns the submissions submitted before the cutoff.
func findStaleSubmissions(submissions []*models.Submission, cutoff time.Time) []*models.Submission {
	var stale []*models.Submission

	for _, submission := range submissions {
		if submission.SubmittedAt.Before(cutoff) {
			stale = append(stale, submission)
		}
	}

	return stale
}

// formatReminder renders one line per stale submission.
func formatReminder(stale []*models.Submission) string {
	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("**%d submission(s) awaiting review:**\n", len(stale)))

	for _, submission := range stale {
		builder.WriteString(fmt.Sprintf("- %q by <@%s>, submitted %s, %d vote(s)\n",
			submission.Name,
			submission.AuthorID,
			submission.SubmittedAt.Format("02.01.2006"),
			len(submission.Votes),
		))
	}

	return builder.String()
}

func sendReminder(session *discordgo.Session, config configs.Discord, stale []*models.Submission, logger *zap.SugaredLogger) {
	if _, err := session.ChannelMessageSend(config.PrivateLogsChannelID, formatReminder(stale)); err != nil {
		logger.Errorw("failed to send reminder", "error", err)
		return
	}

	logger.Infow("reminder sent", "count", len(stale))
}
