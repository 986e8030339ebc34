package service

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"rift-rewind/internal/api"
)

// StaticData bundles the game metadata clients need to render a rewind.
type StaticData struct {
	Version   string                       `json:"version"`
	Language  string                       `json:"language"`
	Items     map[string]api.Item          `json:"items"`
	Spells    map[string]api.SummonerSpell `json:"summonerSpells"`
	Queues    []api.Queue                  `json:"queues"`
	Champions map[string]api.Champion      `json:"champions"`
}

// StaticService serves Data Dragon catalogs. These endpoints are not rate
// limited upstream, so cache misses load in parallel.
type StaticService struct {
	client *api.RiotClient
	caches *Caches
	logger zerolog.Logger
}

func NewStaticService(client *api.RiotClient, caches *Caches, logger zerolog.Logger) *StaticService {
	return &StaticService{
		client: client,
		caches: caches,
		logger: logger.With().Str("component", "static_service").Logger(),
	}
}

func (s *StaticService) realm(ctx context.Context, platform string) (api.RealmConfig, error) {
	return s.caches.Realms.GetOrLoad(ctx, platform, func(ctx context.Context) (api.RealmConfig, error) {
		rc, err := s.client.GetRealmConfig(ctx, platform)
		if err != nil {
			return api.RealmConfig{}, err
		}
		return *rc, nil
	})
}

// GetItems returns the item catalog for a platform's current game version.
func (s *StaticService) GetItems(ctx context.Context, platform string) (map[string]api.Item, error) {
	realm, err := s.realm(ctx, platform)
	if err != nil {
		return nil, err
	}
	version, language := realm.Versions["item"], realm.Language
	return s.caches.Items.GetOrLoad(ctx, version+":"+language, func(ctx context.Context) (map[string]api.Item, error) {
		return s.client.GetItems(ctx, version, language)
	})
}

// ItemNamer builds the item-ID-to-name lookup used by stat projections.
func (s *StaticService) ItemNamer(ctx context.Context, platform string) (func(int) string, map[string]api.Item, error) {
	items, err := s.GetItems(ctx, platform)
	if err != nil {
		return nil, nil, err
	}
	namer := func(id int) string {
		return items[strconv.Itoa(id)].Name
	}
	return namer, items, nil
}

// GetAll loads every static catalog for a platform, in parallel on cold
// caches.
func (s *StaticService) GetAll(ctx context.Context, platform string) (*StaticData, error) {
	realm, err := s.realm(ctx, platform)
	if err != nil {
		return nil, err
	}
	language := realm.Language

	data := &StaticData{Version: realm.Version, Language: language}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		version := realm.Versions["item"]
		data.Items, err = s.caches.Items.GetOrLoad(gctx, version+":"+language, func(ctx context.Context) (map[string]api.Item, error) {
			return s.client.GetItems(ctx, version, language)
		})
		return err
	})
	g.Go(func() error {
		var err error
		version := realm.Versions["summoner"]
		data.Spells, err = s.caches.Spells.GetOrLoad(gctx, version+":"+language, func(ctx context.Context) (map[string]api.SummonerSpell, error) {
			return s.client.GetSummonerSpells(ctx, version, language)
		})
		return err
	})
	g.Go(func() error {
		var err error
		data.Queues, err = s.caches.Queues.GetOrLoad(gctx, "queues", func(ctx context.Context) ([]api.Queue, error) {
			return s.client.GetQueues(ctx)
		})
		return err
	})
	g.Go(func() error {
		var err error
		version := realm.Versions["champion"]
		data.Champions, err = s.caches.Champions.GetOrLoad(gctx, version+":"+language, func(ctx context.Context) (map[string]api.Champion, error) {
			return s.client.GetChampions(ctx, version, language)
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
