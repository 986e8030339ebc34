package fx

import (
	"database/sql"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"rift-rewind/internal/ai"
	"rift-rewind/internal/api"
	"rift-rewind/internal/config"
	"rift-rewind/internal/database"
	"rift-rewind/internal/fetch"
	"rift-rewind/internal/logger"
	"rift-rewind/internal/ratelimit"
	"rift-rewind/internal/repository"
	"rift-rewind/internal/server"
	"rift-rewind/internal/service"
)

func ProvideLimiter(cfg *config.Config) *ratelimit.Limiter {
	return ratelimit.New(cfg.ShortWindowLimit, cfg.ShortWindowDuration, cfg.LongWindowLimit, cfg.LongWindowDuration)
}

func ProvideOrchestrator(client *api.RiotClient, caches *service.Caches, limiter *ratelimit.Limiter, log zerolog.Logger) *fetch.Orchestrator {
	return fetch.NewOrchestrator(client, caches.Matches, limiter, log)
}

func ProvideHandler(
	players *service.PlayerService,
	matches *service.MatchService,
	static *service.StaticService,
	rewinds *service.RewindService,
	db *sql.DB,
	log zerolog.Logger,
) *server.Handler {
	return server.NewHandler(players, matches, static, rewinds, db, log)
}

var Module = fx.Options(
	logger.Module,
	config.Module,
	fx.Provide(database.New),
	// shared infrastructure: one limiter and one cache bundle per process
	fx.Provide(ProvideLimiter),
	fx.Provide(service.NewCaches),
	// api client
	fx.Provide(api.NewRiotClient),
	fx.Provide(ProvideOrchestrator),
	// repos
	fx.Provide(repository.NewRewindRepository),
	fx.Provide(func(r *repository.RewindRepository) service.RewindStore { return r }),
	// ai
	fx.Provide(ai.NewBedrockClient),
	fx.Provide(func(c *ai.BedrockClient) service.Narrator { return c }),
	// svc
	fx.Provide(service.NewPlayerService),
	fx.Provide(service.NewMatchService),
	fx.Provide(service.NewStaticService),
	fx.Provide(func(m *service.MatchService) service.MatchLister { return m }),
	fx.Provide(func(s *service.StaticService) service.ItemSource { return s }),
	fx.Provide(service.NewRewindService),
	// server
	fx.Provide(ProvideHandler),
)
