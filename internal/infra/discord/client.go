package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/enums"
)

// Client wraps a discordgo session and exposes the guild operations the
// enforcement pipeline needs.
type Client struct {
	session *discordgo.Session
}

func New(token string) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("discord bot token is empty")
	}

	session, err := discordgo.New("Bot " + strings.TrimSpace(token))
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages
	session.StateEnabled = true

	return &Client{session: session}, nil
}

func (c *Client) Open() error {
	if c == nil || c.session == nil {
		return fmt.Errorf("discord client is not initialized")
	}
	if err := c.session.Open(); err != nil {
		return fmt.Errorf("open discord gateway: %w", err)
	}
	return nil
}

func (c *Client) Close() error {
	if c == nil || c.session == nil {
		return nil
	}
	return c.session.Close()
}

// Session exposes the underlying session for gateway handler registration.
func (c *Client) Session() *discordgo.Session {
	if c == nil {
		return nil
	}
	return c.session
}

// BotUserID returns the bot's own user id once the gateway session is open.
func (c *Client) BotUserID() string {
	if c == nil || c.session == nil || c.session.State == nil || c.session.State.User == nil {
		return ""
	}
	return c.session.State.User.ID
}

// CompareHierarchy reports memberA's standing relative to memberB in the
// guild's role hierarchy. Any lookup failure yields StandingUnknown so callers
// never act on missing data.
func (c *Client) CompareHierarchy(ctx context.Context, guildID, memberA, memberB string) enums.HierarchyStanding {
	if c == nil || c.session == nil || c.session.State == nil {
		return enums.StandingUnknown
	}

	guild, err := c.session.State.Guild(guildID)
	if err != nil || guild == nil {
		return enums.StandingUnknown
	}

	a, err := c.member(ctx, guildID, memberA)
	if err != nil {
		return enums.StandingUnknown
	}
	b, err := c.member(ctx, guildID, memberB)
	if err != nil {
		return enums.StandingUnknown
	}

	return standingBetween(guild, a, b)
}

// MemberRoles returns the target's current role ids, preferring state cache
// and falling back to the REST API.
func (c *Client) MemberRoles(ctx context.Context, guildID, userID string) ([]string, error) {
	if c == nil || c.session == nil {
		return nil, fmt.Errorf("discord client is not initialized")
	}

	member, err := c.member(ctx, guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch member %s in guild %s: %w", userID, guildID, err)
	}

	roles := make([]string, len(member.Roles))
	copy(roles, member.Roles)
	return roles, nil
}

func (c *Client) RemoveRole(ctx context.Context, guildID, userID, roleID string) error {
	if c == nil || c.session == nil {
		return fmt.Errorf("discord client is not initialized")
	}
	if err := c.session.GuildMemberRoleRemove(guildID, userID, roleID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("remove role %s from %s: %w", roleID, userID, err)
	}
	return nil
}

func (c *Client) Kick(ctx context.Context, guildID, userID string) error {
	if c == nil || c.session == nil {
		return fmt.Errorf("discord client is not initialized")
	}
	if err := c.session.GuildMemberDelete(guildID, userID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("kick %s from guild %s: %w", userID, guildID, err)
	}
	return nil
}

// Ban issues a permanent ban without purging message history.
func (c *Client) Ban(ctx context.Context, guildID, userID string) error {
	if c == nil || c.session == nil {
		return fmt.Errorf("discord client is not initialized")
	}
	if err := c.session.GuildBanCreate(guildID, userID, 0, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("ban %s in guild %s: %w", userID, guildID, err)
	}
	return nil
}

func (c *Client) member(ctx context.Context, guildID, userID string) (*discordgo.Member, error) {
	if c.session.State != nil {
		if member, err := c.session.State.Member(guildID, userID); err == nil && member != nil {
			return member, nil
		}
	}
	return c.session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
}

// standingBetween compares two cached members inside one guild. The guild
// owner outranks everyone; otherwise the highest role position wins and a tie
// is not enough to act.
func standingBetween(guild *discordgo.Guild, a, b *discordgo.Member) enums.HierarchyStanding {
	if guild == nil || a == nil || b == nil || a.User == nil || b.User == nil {
		return enums.StandingUnknown
	}
	if a.User.ID == b.User.ID {
		return enums.StandingNotHigher
	}
	if guild.OwnerID == a.User.ID {
		return enums.StandingHigher
	}
	if guild.OwnerID == b.User.ID {
		return enums.StandingNotHigher
	}

	positions := make(map[string]int, len(guild.Roles))
	for _, role := range guild.Roles {
		if role == nil {
			continue
		}
		positions[role.ID] = role.Position
	}

	if highestPosition(positions, a.Roles) > highestPosition(positions, b.Roles) {
		return enums.StandingHigher
	}
	return enums.StandingNotHigher
}

func highestPosition(positions map[string]int, roleIDs []string) int {
	highest := 0
	for _, id := range roleIDs {
		if pos, ok := positions[id]; ok && pos > highest {
			highest = pos
		}
	}
	return highest
}
