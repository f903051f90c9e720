package rules

import (
	"testing"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/enums"
	"github.com/Infinity-Development/sky-net-bot/internal/domain/model"
)

func TestActionSeverityOrdering(t *testing.T) {
	tests := []struct {
		action enums.LimitAction
		want   int
	}{
		{action: enums.LimitActionBanUser, want: 3},
		{action: enums.LimitActionKickUser, want: 2},
		{action: enums.LimitActionRemoveAllRoles, want: 1},
		{action: enums.LimitAction("unknown"), want: 0},
	}

	for _, tt := range tests {
		got := ActionSeverity(tt.action)
		if got != tt.want {
			t.Fatalf("unexpected severity for %s: got %d want %d", tt.action, got, tt.want)
		}
	}
}

func TestSortHitsBySeverity(t *testing.T) {
	hits := []model.LimitHit{
		{Limit: model.Limit{ID: "strip", Action: enums.LimitActionRemoveAllRoles}},
		{Limit: model.Limit{ID: "kick-a", Action: enums.LimitActionKickUser}},
		{Limit: model.Limit{ID: "ban", Action: enums.LimitActionBanUser}},
		{Limit: model.Limit{ID: "kick-b", Action: enums.LimitActionKickUser}},
	}

	SortHitsBySeverity(hits)

	wantOrder := []string{"ban", "kick-a", "kick-b", "strip"}
	for i, want := range wantOrder {
		if hits[i].Limit.ID != want {
			t.Fatalf("unexpected hit at %d: got %s want %s", i, hits[i].Limit.ID, want)
		}
	}
}
