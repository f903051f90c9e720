package apiapp

import (
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Infinity-Development/sky-net-bot/internal/config"
	pgrepo "github.com/Infinity-Development/sky-net-bot/internal/repo/postgres"
	"github.com/Infinity-Development/sky-net-bot/internal/transport/http/handlers"
)

type Dependencies struct {
	HitLimits *pgrepo.HitLimitRepo
	Limits    *pgrepo.LimitRepo
	Logger    *zap.Logger
	Config    config.Config
}

func RegisterRoutes(r chi.Router, deps Dependencies) {
	healthHandler := handlers.NewHealthHandler()
	hitsHandler := handlers.NewHitsHandler(deps.HitLimits)
	limitsHandler := handlers.NewLimitsHandler(deps.Limits)

	r.Get("/healthz", healthHandler.Get)

	r.Route("/v1/guilds/{guild_id}", func(r chi.Router) {
		r.Get("/hits", hitsHandler.List)
		r.Get("/limits", limitsHandler.List)
	})
}
