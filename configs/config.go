package configs

import (
	"fmt"

	"github.com/caarlos0/env/v6"
)

type ProjectsBotConfig struct {
	App     App
	API     API
	Discord Discord
	Vote    Vote
	DB      DB
	Logger  Logger
}

func LoadProjectsBotConfig() (ProjectsBotConfig, error) {
	var config ProjectsBotConfig

	if err := env.Parse(&config); err != nil {
		return ProjectsBotConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

type ReviewReminderServiceConfig struct {
	App      App
	Discord  Discord
	Reminder Reminder
	DB       DB
	Logger   Logger
}

func LoadReviewReminderServiceConfig() (ReviewReminderServiceConfig, error) {
	var config ReviewReminderServiceConfig

	if err := env.Parse(&config); err != nil {
		return ReviewReminderServiceConfig{}, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}
