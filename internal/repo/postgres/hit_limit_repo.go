package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/model"
)

type HitLimitRepo struct {
	pool *pgxpool.Pool
}

func NewHitLimitRepo(pool *pgxpool.Pool) *HitLimitRepo {
	return &HitLimitRepo{pool: pool}
}

// Record marks every causing action as handled by the record's limit and writes
// the hit row, in one transaction so both sides always reflect the same cause
// set. The handled_for append is a no-op when the limit id is already present.
func (r *HitLimitRepo) Record(ctx context.Context, rec model.HitLimitRecord) error {
	if r == nil || r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(rec.ID) == "" || strings.TrimSpace(rec.GuildID) == "" ||
		strings.TrimSpace(rec.UserID) == "" || strings.TrimSpace(rec.LimitID) == "" {
		return fmt.Errorf("invalid hit limit record")
	}
	if len(rec.CauseIDs) == 0 {
		return fmt.Errorf("hit limit record requires at least one causing action")
	}

	return WithTx(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		for _, actionID := range rec.CauseIDs {
			if _, err := tx.Exec(ctx, `
UPDATE user_actions
SET handled_for = array_append(handled_for, $1)
WHERE action_id = $2
  AND NOT ($1 = ANY(handled_for))
`, rec.LimitID, actionID); err != nil {
				return fmt.Errorf("mark action handled: %w", err)
			}
		}

		if _, err := tx.Exec(ctx, `
INSERT INTO hit_limits (
	id,
	guild_id,
	user_id,
	limit_id,
	cause,
	created_at
) VALUES ($1, $2, $3, $4, $5, NOW())
`, rec.ID, rec.GuildID, rec.UserID, rec.LimitID, rec.CauseIDs); err != nil {
			return fmt.Errorf("insert hit limit: %w", err)
		}

		return nil
	})
}

// ListRecent returns the guild's newest hit records for the ops API.
func (r *HitLimitRepo) ListRecent(ctx context.Context, guildID string, limit int) ([]model.HitLimitRecord, error) {
	if r == nil || r.pool == nil {
		return nil, fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(guildID) == "" {
		return nil, fmt.Errorf("guild id is required")
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	rows, err := r.pool.Query(ctx, `
SELECT id, guild_id, user_id, limit_id, cause, created_at
FROM hit_limits
WHERE guild_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2
`, guildID, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent hit limits: %w", err)
	}
	defer rows.Close()

	var records []model.HitLimitRecord
	for rows.Next() {
		var rec model.HitLimitRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.GuildID,
			&rec.UserID,
			&rec.LimitID,
			&rec.CauseIDs,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan hit limit: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate hit limits: %w", err)
	}

	return records, nil
}
