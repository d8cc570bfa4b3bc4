package discord

import (
	"github.com/TheCodingDen/projects-bot/configs"
	"github.com/TheCodingDen/projects-bot/internal/db/models"
	"github.com/bwmarrin/discordgo"
)

// ResolveRole maps a guild member onto a vote role. Staff takes priority
// over veterans because many staff also hold the veteran role. The role is
// resolved once, when the vote is cast, and stored with the vote.
func ResolveRole(member *discordgo.Member, config configs.Discord) (models.VoteRole, bool) {
	if member == nil {
		return "", false
	}

	hasVeterans := false

	for _, roleID := range member.Roles {
		if roleID == config.StaffRoleID {
			return models.VoteRoleStaff, true
		}
		if roleID == config.VeteransRoleID {
			hasVeterans = true
		}
	}

	if hasVeterans {
		return models.VoteRoleVeterans, true
	}

	return "", false
}
