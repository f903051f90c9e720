package botapp

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/enums"
)

const handleTimeout = 30 * time.Second

// registerHandlers maps gateway events to observed limit types. Messages are
// counted directly; destructive actions arrive via audit log entries, which
// carry the executing user.
func (a *App) registerHandlers() {
	session := a.discord.Session()

	session.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil || m.Author.Bot || m.GuildID == "" {
			return
		}
		go a.handle(m.GuildID, m.Author.ID, enums.LimitTypeSpam, m.ChannelID)
	})

	session.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildAuditLogEntryCreate) {
		if e.AuditLogEntry == nil || e.ActionType == nil || e.UserID == "" {
			return
		}
		if e.UserID == a.discord.BotUserID() {
			return
		}

		limitType, ok := auditActionLimitType(*e.ActionType)
		if !ok {
			return
		}
		go a.handle(e.GuildID, e.UserID, limitType, e.TargetID)
	})
}

func (a *App) handle(guildID, userID string, limitType enums.LimitType, target string) {
	ctx, cancel := context.WithTimeout(context.Background(), handleTimeout)
	defer cancel()

	if err := a.enforcement.HandleModAction(ctx, guildID, userID, limitType, target); err != nil {
		a.logger.Error("handle mod action",
			zap.String("guild_id", guildID),
			zap.String("user_id", userID),
			zap.String("limit_type", string(limitType)),
			zap.Error(err),
		)
	}
}

func auditActionLimitType(action discordgo.AuditLogAction) (enums.LimitType, bool) {
	switch action {
	case discordgo.AuditLogActionChannelCreate:
		return enums.LimitTypeChannelCreate, true
	case discordgo.AuditLogActionChannelDelete:
		return enums.LimitTypeChannelDelete, true
	case discordgo.AuditLogActionRoleCreate:
		return enums.LimitTypeRoleCreate, true
	case discordgo.AuditLogActionRoleDelete:
		return enums.LimitTypeRoleDelete, true
	case discordgo.AuditLogActionMemberKick:
		return enums.LimitTypeKickMember, true
	case discordgo.AuditLogActionMemberBanAdd:
		return enums.LimitTypeBanMember, true
	default:
		return "", false
	}
}
