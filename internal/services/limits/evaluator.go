package limits

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/enums"
	"github.com/Infinity-Development/sky-net-bot/internal/domain/model"
	"github.com/Infinity-Development/sky-net-bot/internal/domain/rules"
)

type LimitSource interface {
	ListByGuild(ctx context.Context, guildID string) ([]model.Limit, error)
}

type ActionSource interface {
	ListUnhandled(
		ctx context.Context,
		guildID, userID string,
		limitType enums.LimitType,
		limitID string,
		since time.Time,
	) ([]model.UserAction, error)
}

// Evaluator decides which of a guild's limits the user has breached, counting
// unhandled actions of each limit's type inside the limit's trailing window.
type Evaluator struct {
	limits  LimitSource
	actions ActionSource
	now     func() time.Time
}

func NewEvaluator(limits LimitSource, actions ActionSource) *Evaluator {
	return &Evaluator{
		limits:  limits,
		actions: actions,
		now:     time.Now,
	}
}

// Evaluate returns the user's current hits, most severe remediation first.
// An action is never attributed to more than one hit per call.
func (e *Evaluator) Evaluate(ctx context.Context, guildID, userID string) ([]model.LimitHit, error) {
	if strings.TrimSpace(guildID) == "" || strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("guild id and user id are required")
	}
	if e.limits == nil || e.actions == nil {
		return nil, fmt.Errorf("evaluator dependencies are not configured")
	}

	configured, err := e.limits.ListByGuild(ctx, guildID)
	if err != nil {
		return nil, err
	}
	if len(configured) == 0 {
		return nil, nil
	}

	now := e.now().UTC()

	var hits []model.LimitHit
	claimed := make(map[string]struct{})

	for _, limit := range configured {
		if limit.Per <= 0 || limit.Window <= 0 {
			continue
		}

		candidates, err := e.actions.ListUnhandled(ctx, guildID, userID, limit.Type, limit.ID, now.Add(-limit.Window))
		if err != nil {
			return nil, err
		}

		cause := make([]model.UserAction, 0, len(candidates))
		for _, action := range candidates {
			if _, taken := claimed[action.ID]; taken {
				continue
			}
			cause = append(cause, action)
		}

		if len(cause) < limit.Per {
			continue
		}

		for _, action := range cause {
			claimed[action.ID] = struct{}{}
		}
		hits = append(hits, model.LimitHit{Limit: limit, Cause: cause})
	}

	rules.SortHitsBySeverity(hits)
	return hits, nil
}
