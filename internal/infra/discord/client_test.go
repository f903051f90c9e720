package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/enums"
)

func testGuild() *discordgo.Guild {
	return &discordgo.Guild{
		ID:      "guild-1",
		OwnerID: "owner",
		Roles: []*discordgo.Role{
			{ID: "role-admin", Position: 10},
			{ID: "role-mod", Position: 5},
			{ID: "role-member", Position: 1},
		},
	}
}

func member(userID string, roleIDs ...string) *discordgo.Member {
	return &discordgo.Member{
		User:  &discordgo.User{ID: userID},
		Roles: roleIDs,
	}
}

func TestStandingBetweenHigherRoleWins(t *testing.T) {
	guild := testGuild()

	got := standingBetween(guild, member("bot", "role-admin"), member("target", "role-mod"))
	if got != enums.StandingHigher {
		t.Fatalf("expected higher standing, got %s", got)
	}

	got = standingBetween(guild, member("bot", "role-member"), member("target", "role-mod"))
	if got != enums.StandingNotHigher {
		t.Fatalf("expected not-higher standing, got %s", got)
	}
}

func TestStandingBetweenTieIsNotHigher(t *testing.T) {
	guild := testGuild()

	got := standingBetween(guild, member("bot", "role-mod"), member("target", "role-mod"))
	if got != enums.StandingNotHigher {
		t.Fatalf("expected tie to deny, got %s", got)
	}
}

func TestStandingBetweenOwnerOutranksEveryone(t *testing.T) {
	guild := testGuild()

	got := standingBetween(guild, member("owner"), member("target", "role-admin"))
	if got != enums.StandingHigher {
		t.Fatalf("expected owner to outrank admin, got %s", got)
	}

	got = standingBetween(guild, member("bot", "role-admin"), member("owner"))
	if got != enums.StandingNotHigher {
		t.Fatalf("expected nobody to outrank owner, got %s", got)
	}
}

func TestStandingBetweenMissingDataIsUnknown(t *testing.T) {
	guild := testGuild()

	if got := standingBetween(nil, member("a"), member("b")); got != enums.StandingUnknown {
		t.Fatalf("expected unknown for nil guild, got %s", got)
	}
	if got := standingBetween(guild, nil, member("b")); got != enums.StandingUnknown {
		t.Fatalf("expected unknown for nil member, got %s", got)
	}
	if got := standingBetween(guild, &discordgo.Member{}, member("b")); got != enums.StandingUnknown {
		t.Fatalf("expected unknown for member without user, got %s", got)
	}
}

func TestStandingBetweenSelfComparison(t *testing.T) {
	guild := testGuild()

	if got := standingBetween(guild, member("bot", "role-admin"), member("bot", "role-admin")); got != enums.StandingNotHigher {
		t.Fatalf("expected self comparison to deny, got %s", got)
	}
}

func TestStandingBetweenIgnoresUnknownRoles(t *testing.T) {
	guild := testGuild()

	got := standingBetween(guild, member("bot", "role-ghost"), member("target", "role-member"))
	if got != enums.StandingNotHigher {
		t.Fatalf("expected unknown roles to carry no rank, got %s", got)
	}
}
