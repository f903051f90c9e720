package model

import (
	"time"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/enums"
)

// Limit is a configured abuse threshold for one guild. Read-only inside the
// enforcement pipeline; authoring lives outside this service.
type Limit struct {
	ID      string
	GuildID string
	Name    string
	Type    enums.LimitType
	Action  enums.LimitAction
	Per     int
	Window  time.Duration
}
