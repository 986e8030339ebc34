package service

import (
	"rift-rewind/internal/api"
	"rift-rewind/internal/cache"
	"rift-rewind/internal/constants"
)

// Caches bundles the per-record-type TTL caches. One bundle exists for the
// whole process; every service shares it so concurrent sessions deduplicate
// their upstream traffic.
type Caches struct {
	Matches   *cache.Cache[api.Match]
	Accounts  *cache.Cache[api.Account]
	Summoners *cache.Cache[api.Summoner]
	Leagues   *cache.Cache[[]api.LeagueEntry]

	Realms    *cache.Cache[api.RealmConfig]
	Items     *cache.Cache[map[string]api.Item]
	Spells    *cache.Cache[map[string]api.SummonerSpell]
	Queues    *cache.Cache[[]api.Queue]
	Champions *cache.Cache[map[string]api.Champion]
}

func NewCaches() *Caches {
	return &Caches{
		Matches:   cache.New[api.Match]("match", constants.MatchCacheTTL),
		Accounts:  cache.New[api.Account]("account", constants.AccountCacheTTL),
		Summoners: cache.New[api.Summoner]("summoner", constants.SummonerCacheTTL),
		Leagues:   cache.New[[]api.LeagueEntry]("league", constants.LeagueCacheTTL),

		Realms:    cache.New[api.RealmConfig]("realm", constants.StaticDataCacheTTL),
		Items:     cache.New[map[string]api.Item]("items", constants.StaticDataCacheTTL),
		Spells:    cache.New[map[string]api.SummonerSpell]("spells", constants.StaticDataCacheTTL),
		Queues:    cache.New[[]api.Queue]("queues", constants.StaticDataCacheTTL),
		Champions: cache.New[map[string]api.Champion]("champions", constants.StaticDataCacheTTL),
	}
}
