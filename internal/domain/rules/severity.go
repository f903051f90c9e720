package rules

import (
	"sort"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/enums"
	"github.com/Infinity-Development/sky-net-bot/internal/domain/model"
)

// ActionSeverity ranks remediation kinds so the most destructive enforcement
// runs first when several limits are breached at once.
func ActionSeverity(action enums.LimitAction) int {
	switch action {
	case enums.LimitActionBanUser:
		return 3
	case enums.LimitActionKickUser:
		return 2
	case enums.LimitActionRemoveAllRoles:
		return 1
	default:
		return 0
	}
}

// SortHitsBySeverity orders hits most-severe first, keeping the original
// order among hits of equal severity.
func SortHitsBySeverity(hits []model.LimitHit) {
	sort.SliceStable(hits, func(i, j int) bool {
		return ActionSeverity(hits[i].Limit.Action) > ActionSeverity(hits[j].Limit.Action)
	})
}
