package api

import (
	"context"
	"fmt"
	"strings"
)

// Data Dragon serves game metadata (item names, queue descriptions, champion
// data) without authentication. The same fasthttp transport is reused; these
// calls are not subject to the Riot API rate windows.

type RealmConfig struct {
	Versions map[string]string `json:"n"`
	Version  string            `json:"v"`
	Language string            `json:"l"`
	CDN      string            `json:"cdn"`
}

type Item struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Into        []string `json:"into"`
	From        []string `json:"from"`
	Depth       int      `json:"depth"`
}

type itemFile struct {
	Data map[string]Item `json:"data"`
}

type SummonerSpell struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Key         string `json:"key"`
}

type summonerSpellFile struct {
	Data map[string]SummonerSpell `json:"data"`
}

type Queue struct {
	QueueID     int    `json:"queueId"`
	Map         string `json:"map"`
	Description string `json:"description"`
}

type Champion struct {
	ID    string `json:"id"`
	Key   string `json:"key"`
	Name  string `json:"name"`
	Title string `json:"title"`
}

type championFile struct {
	Data map[string]Champion `json:"data"`
}

// realmName maps a platform routing value to its Data Dragon realm.
func realmName(platform string) string {
	switch strings.ToUpper(platform) {
	case "EUN1":
		return "eune"
	case "OC1":
		return "oce"
	case "LA1":
		return "lan"
	case "LA2":
		return "las"
	default:
		// NA1 -> na, EUW1 -> euw, JP1 -> jp, KR -> kr, ...
		return strings.ToLower(strings.TrimRight(platform, "0123456789"))
	}
}

// GetRealmConfig returns the current data versions for a platform's realm.
func (c *RiotClient) GetRealmConfig(ctx context.Context, platform string) (*RealmConfig, error) {
	u := fmt.Sprintf("https://ddragon.leagueoflegends.com/realms/%s.json", realmName(platform))
	return doRequest[RealmConfig](ctx, c, u, "realm")
}

// GetItems returns all items keyed by numeric item ID.
func (c *RiotClient) GetItems(ctx context.Context, version, language string) (map[string]Item, error) {
	u := fmt.Sprintf("https://ddragon.leagueoflegends.com/cdn/%s/data/%s/item.json", version, language)
	file, err := doRequest[itemFile](ctx, c, u, "items")
	if err != nil {
		return nil, err
	}
	return file.Data, nil
}

func (c *RiotClient) GetSummonerSpells(ctx context.Context, version, language string) (map[string]SummonerSpell, error) {
	u := fmt.Sprintf("https://ddragon.leagueoflegends.com/cdn/%s/data/%s/summoner.json", version, language)
	file, err := doRequest[summonerSpellFile](ctx, c, u, "summoner_spells")
	if err != nil {
		return nil, err
	}
	return file.Data, nil
}

func (c *RiotClient) GetQueues(ctx context.Context) ([]Queue, error) {
	u := "https://static.developer.riotgames.com/docs/lol/queues.json"
	queues, err := doRequest[[]Queue](ctx, c, u, "queues")
	if err != nil {
		return nil, err
	}
	return *queues, nil
}

func (c *RiotClient) GetChampions(ctx context.Context, version, language string) (map[string]Champion, error) {
	u := fmt.Sprintf("https://ddragon.leagueoflegends.com/cdn/%s/data/%s/champion.json", version, language)
	file, err := doRequest[championFile](ctx, c, u, "champions")
	if err != nil {
		return nil, err
	}
	return file.Data, nil
}
