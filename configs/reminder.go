package configs

type Reminder struct {
	Cron           string `env:"REMINDER_CRON" envDefault:"0 12 * * *"`
	StaleAfterDays int    `env:"REMINDER_STALE_AFTER_DAYS" envDefault:"7"`
}
