package stats

import (
	"rift-rewind/internal/api"
)

const testPuuid = "player-1"

// matchOpts tweaks the template participant testMatch builds for the target
// player.
type matchOpts func(*api.Participant)

func withChampion(name string) matchOpts {
	return func(p *api.Participant) { p.ChampionName = name }
}

func withPosition(pos string) matchOpts {
	return func(p *api.Participant) { p.IndividualPosition = pos }
}

func withWin(win bool) matchOpts {
	return func(p *api.Participant) { p.Win = win }
}

func withKDA(kills, deaths, assists int) matchOpts {
	return func(p *api.Participant) {
		p.Kills = kills
		p.Deaths = deaths
		p.Assists = assists
	}
}

func withItems(ids ...int) matchOpts {
	return func(p *api.Participant) {
		slots := []*int{&p.Item0, &p.Item1, &p.Item2, &p.Item3, &p.Item4, &p.Item5}
		for i, id := range ids {
			if i >= len(slots) {
				break
			}
			*slots[i] = id
		}
	}
}

// testMatch builds a two-team match: the target player mid on team 100 with
// one teammate, and a mid opponent plus one other on team 200.
func testMatch(id string, opponentChampion string, opts ...matchOpts) api.Match {
	me := api.Participant{
		Puuid:              testPuuid,
		ChampionName:       "Ahri",
		IndividualPosition: "MIDDLE",
		TeamID:             100,
		Kills:              5,
		Deaths:             3,
		Assists:            4,
		Win:                true,
		GoldEarned:         12000,
	}
	for _, opt := range opts {
		opt(&me)
	}

	return api.Match{
		Metadata: api.MatchMetadata{MatchID: id},
		Info: api.MatchInfo{
			GameDuration: 1800,
			QueueID:      420,
			GameMode:     "CLASSIC",
			Participants: []api.Participant{
				me,
				{Puuid: "ally-1", ChampionName: "Thresh", IndividualPosition: "UTILITY", TeamID: 100, Kills: 2, Win: me.Win},
				{Puuid: "enemy-1", ChampionName: opponentChampion, IndividualPosition: "MIDDLE", TeamID: 200, Win: !me.Win, GoldEarned: 11000},
				{Puuid: "enemy-2", ChampionName: "Leona", IndividualPosition: "UTILITY", TeamID: 200, Win: !me.Win},
			},
		},
	}
}
