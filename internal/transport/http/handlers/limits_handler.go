package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/model"
	"github.com/Infinity-Development/sky-net-bot/internal/transport/http/dto"
	httperrors "github.com/Infinity-Development/sky-net-bot/internal/transport/http/errors"
)

type LimitSource interface {
	ListByGuild(ctx context.Context, guildID string) ([]model.Limit, error)
}

type LimitsHandler struct {
	limits LimitSource
}

func NewLimitsHandler(limits LimitSource) *LimitsHandler {
	return &LimitsHandler{limits: limits}
}

// List returns the guild's configured limits.
func (h *LimitsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.limits == nil {
		writeInternal(w, "LIMIT_STORE_UNAVAILABLE", "limit store is unavailable")
		return
	}

	guildID := strings.TrimSpace(chi.URLParam(r, "guild_id"))
	if guildID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "guild id is required")
		return
	}

	configured, err := h.limits.ListByGuild(r.Context(), guildID)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to load limits")
		return
	}

	limits := make([]dto.LimitResponse, 0, len(configured))
	for _, limit := range configured {
		limits = append(limits, dto.LimitResponse{
			ID:         limit.ID,
			GuildID:    limit.GuildID,
			Name:       limit.Name,
			Type:       string(limit.Type),
			Action:     string(limit.Action),
			Per:        limit.Per,
			WindowSecs: int64(limit.Window.Seconds()),
		})
	}

	httperrors.Write(w, http.StatusOK, dto.LimitsListResponse{
		GuildID: guildID,
		Limits:  limits,
	})
}
