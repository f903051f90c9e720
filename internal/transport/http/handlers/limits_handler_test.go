package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Infinity-Development/sky-net-bot/internal/domain/enums"
	"github.com/Infinity-Development/sky-net-bot/internal/domain/model"
	"github.com/Infinity-Development/sky-net-bot/internal/transport/http/dto"
)

type limitSourceStub struct {
	limits []model.Limit
	err    error
}

func (s *limitSourceStub) ListByGuild(_ context.Context, _ string) ([]model.Limit, error) {
	return s.limits, s.err
}

func limitsRouter(source LimitSource) http.Handler {
	r := chi.NewRouter()
	r.Get("/v1/guilds/{guild_id}/limits", NewLimitsHandler(source).List)
	return r
}

func TestLimitsListReturnsConfiguredLimits(t *testing.T) {
	source := &limitSourceStub{limits: []model.Limit{
		{
			ID:      "limit-1",
			GuildID: "guild-1",
			Name:    "anti spam",
			Type:    enums.LimitTypeSpam,
			Action:  enums.LimitActionKickUser,
			Per:     5,
			Window:  2 * time.Minute,
		},
	}}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/guilds/guild-1/limits", nil)
	limitsRouter(source).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}

	var resp dto.LimitsListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Limits) != 1 {
		t.Fatalf("unexpected limits: %+v", resp.Limits)
	}
	limit := resp.Limits[0]
	if limit.Type != "spam" || limit.Action != "kick_user" || limit.WindowSecs != 120 {
		t.Fatalf("unexpected limit payload: %+v", limit)
	}
}

func TestLimitsListStorageFailure(t *testing.T) {
	source := &limitSourceStub{err: errors.New("storage down")}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/guilds/guild-1/limits", nil)
	limitsRouter(source).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}
