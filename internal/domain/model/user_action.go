package model

import (
	"time"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/enums"
)

// UserAction is one observed moderation-relevant event. Immutable once written
// except for HandledFor, which grows as limits consume the action.
type UserAction struct {
	ID         string
	GuildID    string
	UserID     string
	LimitType  enums.LimitType
	Target     string
	HandledFor []string
	CreatedAt  time.Time
}
