package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/enums"
	"github.com/Infinity-Development/sky-net-bot/internal/domain/model"
)

type ActionRepo struct {
	pool *pgxpool.Pool
}

func NewActionRepo(pool *pgxpool.Pool) *ActionRepo {
	return &ActionRepo{pool: pool}
}

// Insert writes one observed action with an empty handled_for list. The owning
// guild row must already exist.
func (r *ActionRepo) Insert(ctx context.Context, action model.UserAction) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(action.ID) == "" || strings.TrimSpace(action.GuildID) == "" || strings.TrimSpace(action.UserID) == "" {
		return fmt.Errorf("invalid user action payload")
	}
	if !action.LimitType.Valid() {
		return fmt.Errorf("invalid limit type %q", action.LimitType)
	}

	if _, err := r.pool.Exec(ctx, `
INSERT INTO user_actions (
	action_id,
	guild_id,
	user_id,
	limit_type,
	action_target,
	handled_for,
	created_at
) VALUES ($1, $2, $3, $4, $5, '{}', NOW())
`, action.ID, action.GuildID, action.UserID, string(action.LimitType), action.Target); err != nil {
		return fmt.Errorf("insert user action: %w", err)
	}

	return nil
}

// ListUnhandled returns the user's actions of one limit type observed since the
// given instant that have not yet been consumed by the given limit, oldest first.
func (r *ActionRepo) ListUnhandled(
	ctx context.Context,
	guildID, userID string,
	limitType enums.LimitType,
	limitID string,
	since time.Time,
) ([]model.UserAction, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(guildID) == "" || strings.TrimSpace(userID) == "" || strings.TrimSpace(limitID) == "" {
		return nil, fmt.Errorf("invalid unhandled actions query")
	}

	rows, err := r.pool.Query(ctx, `
SELECT action_id, guild_id, user_id, limit_type, action_target, handled_for, created_at
FROM user_actions
WHERE guild_id = $1
  AND user_id = $2
  AND limit_type = $3
  AND created_at >= $4
  AND NOT ($5 = ANY(handled_for))
ORDER BY created_at ASC, action_id ASC
`, guildID, userID, string(limitType), since, limitID)
	if err != nil {
		return nil, fmt.Errorf("list unhandled actions: %w", err)
	}
	defer rows.Close()

	var actions []model.UserAction
	for rows.Next() {
		var (
			action    model.UserAction
			limitType string
		)
		if err := rows.Scan(
			&action.ID,
			&action.GuildID,
			&action.UserID,
			&limitType,
			&action.Target,
			&action.HandledFor,
			&action.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan user action: %w", err)
		}
		action.LimitType = enums.LimitType(limitType)
		actions = append(actions, action)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user actions: %w", err)
	}

	return actions, nil
}

// DeleteOlderThan removes actions that left every configured window long ago.
// Hit records keep their cause ids, so pruned actions stay attributable.
func (r *ActionRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	if r == nil || r.pool == nil {
		return 0, fmt.Errorf("postgres pool is nil")
	}

	tag, err := r.pool.Exec(ctx, `
DELETE FROM user_actions
WHERE created_at < $1
`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete stale user actions: %w", err)
	}

	return tag.RowsAffected(), nil
}
