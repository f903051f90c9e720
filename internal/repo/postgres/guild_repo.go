package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

type GuildRepo struct {
	pool *pgxpool.Pool
}

func NewGuildRepo(pool *pgxpool.Pool) *GuildRepo {
	return &GuildRepo{pool: pool}
}

// Ensure registers the guild if it is not known yet. Safe to call from
// concurrent invocations for the same guild.
func (r *GuildRepo) Ensure(ctx context.Context, guildID string) error {
	if r.pool == nil {
		return fmt.Errorf("postgres pool is nil")
	}
	if strings.TrimSpace(guildID) == "" {
		return fmt.Errorf("guild id is required")
	}

	if _, err := r.pool.Exec(ctx, `
INSERT INTO guilds (guild_id)
VALUES ($1)
ON CONFLICT (guild_id) DO NOTHING
`, guildID); err != nil {
		return fmt.Errorf("ensure guild: %w", err)
	}

	return nil
}
