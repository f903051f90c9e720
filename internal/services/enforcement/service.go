package enforcement

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/enums"
	"github.com/Infinity-Development/sky-net-bot/internal/domain/model"
	"github.com/Infinity-Development/sky-net-bot/internal/pkg/ident"
	"github.com/Infinity-Development/sky-net-bot/internal/pkg/validate"
)

const defaultCooldownTTL = 5 * time.Minute

var ErrValidation = errors.New("validation error")

type GuildStore interface {
	Ensure(ctx context.Context, guildID string) error
}

type ActionStore interface {
	Insert(ctx context.Context, action model.UserAction) error
}

type Evaluator interface {
	Evaluate(ctx context.Context, guildID, userID string) ([]model.LimitHit, error)
}

type AuditStore interface {
	Record(ctx context.Context, rec model.HitLimitRecord) error
}

type CooldownStore interface {
	Acquire(ctx context.Context, guildID, userID, limitID string, ttl time.Duration) (bool, error)
}

type PlatformClient interface {
	BotUserID() string
	CompareHierarchy(ctx context.Context, guildID, memberA, memberB string) enums.HierarchyStanding
	MemberRoles(ctx context.Context, guildID, userID string) ([]string, error)
	RemoveRole(ctx context.Context, guildID, userID, roleID string) error
	Kick(ctx context.Context, guildID, userID string) error
	Ban(ctx context.Context, guildID, userID string) error
}

type Dependencies struct {
	Guilds    GuildStore
	Actions   ActionStore
	Evaluator Evaluator
	Audit     AuditStore
	Cooldowns CooldownStore
	Platform  PlatformClient
	Logger    *zap.Logger
}

type Config struct {
	CooldownTTL time.Duration
}

// Service runs the action-ingestion, limit-evaluation and enforcement pipeline
// for one observed user action at a time.
type Service struct {
	guilds    GuildStore
	actions   ActionStore
	evaluator Evaluator
	audit     AuditStore
	cooldowns CooldownStore
	platform  PlatformClient
	logger    *zap.Logger
	cfg       Config
	newID     func(nBytes int) (string, error)

	subjectMu sync.Mutex
	subjects  map[string]*sync.Mutex
}

func NewService(deps Dependencies, cfg Config) *Service {
	if cfg.CooldownTTL <= 0 {
		cfg.CooldownTTL = defaultCooldownTTL
	}

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		guilds:    deps.Guilds,
		actions:   deps.Actions,
		evaluator: deps.Evaluator,
		audit:     deps.Audit,
		cooldowns: deps.Cooldowns,
		platform:  deps.Platform,
		logger:    logger,
		cfg:       cfg,
		newID:     ident.New,
		subjects:  make(map[string]*sync.Mutex),
	}
}

// HandleModAction records one observed action, evaluates the user's limits and
// enforces every breached limit the bot is entitled to act on. Persistence and
// evaluation failures abort the invocation; remediation failures do not. A
// denied hierarchy check ends the invocation without error and without
// touching the remaining hits.
func (s *Service) HandleModAction(
	ctx context.Context,
	guildID, userID string,
	limitType enums.LimitType,
	actionTarget string,
) error {
	if !validate.Required(guildID) || !validate.Required(userID) {
		return ErrValidation
	}
	if !limitType.Valid() {
		return fmt.Errorf("%w: unknown limit type %q", ErrValidation, limitType)
	}
	if s.guilds == nil || s.actions == nil || s.evaluator == nil || s.audit == nil || s.platform == nil {
		return fmt.Errorf("enforcement service dependencies are not configured")
	}

	log := s.logger.With(
		zap.String("invocation_id", uuid.NewString()),
		zap.String("guild_id", guildID),
		zap.String("user_id", userID),
		zap.String("limit_type", string(limitType)),
	)

	// Serializes evaluate-then-audit per subject so two concurrent invocations
	// for the same user cannot both observe the same pre-breach state.
	unlock := s.lockSubject(guildID, userID)
	defer unlock()

	if err := s.guilds.Ensure(ctx, guildID); err != nil {
		return err
	}

	actionID, err := s.newID(ident.ActionIDBytes)
	if err != nil {
		return fmt.Errorf("generate action id: %w", err)
	}

	if err := s.actions.Insert(ctx, model.UserAction{
		ID:        actionID,
		GuildID:   guildID,
		UserID:    userID,
		LimitType: limitType,
		Target:    actionTarget,
	}); err != nil {
		return err
	}

	hits, err := s.evaluator.Evaluate(ctx, guildID, userID)
	if err != nil {
		return err
	}

	botID := s.platform.BotUserID()

	for _, hit := range hits {
		log.Info("limit hit detected",
			zap.String("limit_id", hit.Limit.ID),
			zap.String("limit_action", string(hit.Limit.Action)),
			zap.Int("cause_size", len(hit.Cause)),
		)

		standing := enums.StandingUnknown
		if botID != "" {
			standing = s.platform.CompareHierarchy(ctx, guildID, botID, userID)
		}
		if standing != enums.StandingHigher {
			log.Warn("insufficient privilege to enforce, stopping invocation",
				zap.String("limit_id", hit.Limit.ID),
				zap.String("standing", string(standing)),
			)
			return nil
		}

		s.enforce(ctx, log, guildID, userID, hit)

		recordID, err := s.newID(ident.HitIDBytes)
		if err != nil {
			return fmt.Errorf("generate hit record id: %w", err)
		}

		causeIDs := make([]string, 0, len(hit.Cause))
		for _, action := range hit.Cause {
			causeIDs = append(causeIDs, action.ID)
		}

		if err := s.audit.Record(ctx, model.HitLimitRecord{
			ID:       recordID,
			GuildID:  guildID,
			UserID:   userID,
			LimitID:  hit.Limit.ID,
			CauseIDs: causeIDs,
		}); err != nil {
			return err
		}

		log.Info("limit hit audited",
			zap.String("limit_id", hit.Limit.ID),
			zap.String("hit_id", recordID),
		)
	}

	return nil
}

// enforce applies the limit's remediation on a best-effort basis. Platform
// failures are logged and swallowed so the hit is still audited.
func (s *Service) enforce(ctx context.Context, log *zap.Logger, guildID, userID string, hit model.LimitHit) {
	if s.cooldowns != nil {
		ok, err := s.cooldowns.Acquire(ctx, guildID, userID, hit.Limit.ID, s.cfg.CooldownTTL)
		if err != nil {
			log.Warn("cooldown check failed, enforcing anyway", zap.Error(err))
		} else if !ok {
			log.Info("remediation suppressed by cooldown", zap.String("limit_id", hit.Limit.ID))
			return
		}
	}

	switch hit.Limit.Action {
	case enums.LimitActionRemoveAllRoles:
		roles, err := s.platform.MemberRoles(ctx, guildID, userID)
		if err != nil {
			log.Error("failed to fetch member roles", zap.Error(err))
			return
		}
		for _, roleID := range roles {
			if err := s.platform.RemoveRole(ctx, guildID, userID, roleID); err != nil {
				log.Error("failed to remove role", zap.String("role_id", roleID), zap.Error(err))
			}
		}
	case enums.LimitActionKickUser:
		if err := s.platform.Kick(ctx, guildID, userID); err != nil {
			log.Error("failed to kick user", zap.Error(err))
		}
	case enums.LimitActionBanUser:
		if err := s.platform.Ban(ctx, guildID, userID); err != nil {
			log.Error("failed to ban user", zap.Error(err))
		}
	default:
		log.Warn("unknown limit action, nothing enforced", zap.String("limit_action", string(hit.Limit.Action)))
	}
}

func (s *Service) lockSubject(guildID, userID string) func() {
	key := guildID + ":" + userID

	s.subjectMu.Lock()
	mu, ok := s.subjects[key]
	if !ok {
		mu = &sync.Mutex{}
		s.subjects[key] = mu
	}
	s.subjectMu.Unlock()

	mu.Lock()
	return mu.Unlock
}
