package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"rift-rewind/internal/api"
	"rift-rewind/internal/ratelimit"
)

type PlayerService struct {
	client  *api.RiotClient
	caches  *Caches
	limiter *ratelimit.Limiter
	logger  zerolog.Logger
}

func NewPlayerService(client *api.RiotClient, caches *Caches, limiter *ratelimit.Limiter, logger zerolog.Logger) *PlayerService {
	return &PlayerService{
		client:  client,
		caches:  caches,
		limiter: limiter,
		logger:  logger.With().Str("component", "player_service").Logger(),
	}
}

// loadLimited wraps an upstream call so every cache miss consumes exactly
// one rate-limit slot before the request goes out.
func loadLimited[T any](limiter *ratelimit.Limiter, load func(ctx context.Context) (T, error)) func(ctx context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		if err := limiter.AcquireSlot(ctx); err != nil {
			var zero T
			return zero, err
		}
		return load(ctx)
	}
}

func (s *PlayerService) GetAccount(ctx context.Context, platform, gameName, tagLine string) (*api.Account, error) {
	key := fmt.Sprintf("%s:%s#%s", platform, gameName, tagLine)
	account, err := s.caches.Accounts.GetOrLoad(ctx, key,
		loadLimited(s.limiter, func(ctx context.Context) (api.Account, error) {
			a, err := s.client.GetAccountByRiotID(ctx, platform, gameName, tagLine)
			if err != nil {
				return api.Account{}, err
			}
			return *a, nil
		}))
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *PlayerService) GetSummoner(ctx context.Context, platform, puuid string) (*api.Summoner, error) {
	key := platform + ":" + puuid
	summoner, err := s.caches.Summoners.GetOrLoad(ctx, key,
		loadLimited(s.limiter, func(ctx context.Context) (api.Summoner, error) {
			su, err := s.client.GetSummonerByPUUID(ctx, platform, puuid)
			if err != nil {
				return api.Summoner{}, err
			}
			return *su, nil
		}))
	if err != nil {
		return nil, err
	}
	return &summoner, nil
}

func (s *PlayerService) GetRanks(ctx context.Context, platform, puuid string) ([]api.LeagueEntry, error) {
	key := platform + ":" + puuid
	return s.caches.Leagues.GetOrLoad(ctx, key,
		loadLimited(s.limiter, func(ctx context.Context) ([]api.LeagueEntry, error) {
			return s.client.GetLeagueEntriesByPUUID(ctx, platform, puuid)
		}))
}
