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

type LimitRepo struct {
	pool *pgxpool.Pool
}

func NewLimitRepo(pool *pgxpool.Pool) *LimitRepo {
	return &LimitRepo{pool: pool}
}

// ListByGuild returns the guild's configured limits. Limit authoring happens
// outside this service; the pipeline only reads them.
func (r *LimitRepo) ListByGuild(ctx context.Context, guildID string) ([]model.Limit, error) {
	if r == nil || r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(guildID) == "" {
		return nil, fmt.Errorf("guild id is required")
	}

	rows, err := r.pool.Query(ctx, `
SELECT limit_id, guild_id, limit_name, limit_type, limit_action, limit_per, limit_time_secs
FROM limits
WHERE guild_id = $1
ORDER BY created_at ASC, limit_id ASC
`, guildID)
	if err != nil {
		return nil, fmt.Errorf("list guild limits: %w", err)
	}
	defer rows.Close()

	var limits []model.Limit
	for rows.Next() {
		var (
			limit       model.Limit
			limitType   string
			limitAction string
			windowSecs  int64
		)
		if err := rows.Scan(
			&limit.ID,
			&limit.GuildID,
			&limit.Name,
			&limitType,
			&limitAction,
			&limit.Per,
			&windowSecs,
		); err != nil {
			return nil, fmt.Errorf("scan limit: %w", err)
		}
		limit.Type = enums.LimitType(limitType)
		limit.Action = enums.LimitAction(limitAction)
		limit.Window = time.Duration(windowSecs) * time.Second
		limits = append(limits, limit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate limits: %w", err)
	}

	return limits, nil
}
