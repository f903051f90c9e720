package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/model"
	"github.com/Infinity-Development/sky-net-bot/internal/transport/http/dto"
	httperrors "github.com/Infinity-Development/sky-net-bot/internal/transport/http/errors"
)

type HitSource interface {
	ListRecent(ctx context.Context, guildID string, limit int) ([]model.HitLimitRecord, error)
}

type HitsHandler struct {
	hits HitSource
}

func NewHitsHandler(hits HitSource) *HitsHandler {
	return &HitsHandler{hits: hits}
}

// List returns the guild's newest enforcement records.
func (h *HitsHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.hits == nil {
		writeInternal(w, "HIT_STORE_UNAVAILABLE", "hit store is unavailable")
		return
	}

	guildID := strings.TrimSpace(chi.URLParam(r, "guild_id"))
	if guildID == "" {
		writeBadRequest(w, "VALIDATION_ERROR", "guild id is required")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeBadRequest(w, "VALIDATION_ERROR", "limit must be an integer")
			return
		}
		limit = n
	}

	records, err := h.hits.ListRecent(r.Context(), guildID, limit)
	if err != nil {
		writeInternal(w, "INTERNAL_ERROR", "failed to load hit records")
		return
	}

	hits := make([]dto.HitRecordResponse, 0, len(records))
	for _, rec := range records {
		hits = append(hits, dto.HitRecordResponse{
			ID:        rec.ID,
			GuildID:   rec.GuildID,
			UserID:    rec.UserID,
			LimitID:   rec.LimitID,
			CauseIDs:  rec.CauseIDs,
			CreatedAt: rec.CreatedAt,
		})
	}

	httperrors.Write(w, http.StatusOK, dto.HitsListResponse{
		GuildID: guildID,
		Hits:    hits,
	})
}
