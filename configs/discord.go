package configs

type Discord struct {
	Token   string `env:"DISCORD_BOT_TOKEN,notEmpty"`
	GuildID string `env:"DISCORD_GUILD_ID,notEmpty"`

	PrivateSubmissionsChannelID string `env:"PRIVATE_SUBMISSION_CHANNEL,notEmpty"`
	PrivateLogsChannelID        string `env:"PRIVATE_LOG_CHANNEL,notEmpty"`
	PublicLogsChannelID         string `env:"PUBLIC_LOG_CHANNEL,notEmpty"`
	PublicShowcaseChannelID     string `env:"PUBLIC_SHOWCASE_CHANNEL,notEmpty"`
	FeedbackChannelID           string `env:"FEEDBACK_CHANNEL,notEmpty"`

	StaffRoleID    string `env:"STAFF_ROLE_ID,notEmpty"`
	VeteransRoleID string `env:"VETERANS_ROLE_ID,notEmpty"`
}
