package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// CooldownRepo suppresses duplicate enforcement of the same limit against the
// same user across concurrent or closely repeated invocations.
type CooldownRepo struct {
	client *goredis.Client
}

func NewCooldownRepo(client *goredis.Client) *CooldownRepo {
	return &CooldownRepo{client: client}
}

// Acquire claims the enforcement slot for (guild, user, limit). It returns
// false when another invocation already enforced this limit inside the TTL.
func (r *CooldownRepo) Acquire(ctx context.Context, guildID, userID, limitID string, ttl time.Duration) (bool, error) {
	if r.client == nil {
		return false, fmt.Errorf("redis client is nil")
	}
	if strings.TrimSpace(guildID) == "" || strings.TrimSpace(userID) == "" || strings.TrimSpace(limitID) == "" {
		return false, fmt.Errorf("invalid cooldown payload")
	}
	if ttl <= 0 {
		return false, fmt.Errorf("cooldown ttl must be positive")
	}

	ok, err := r.client.SetNX(ctx, cooldownKey(guildID, userID, limitID), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire enforcement cooldown: %w", err)
	}

	return ok, nil
}

func cooldownKey(guildID, userID, limitID string) string {
	return "enforce:cooldown:" + guildID + ":" + userID + ":" + limitID
}
