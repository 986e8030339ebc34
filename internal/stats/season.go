package stats

import (
	"strconv"

	"rift-rewind/internal/api"
)

// counter is an insertion-ordered frequency map. Top returns the key with
// the highest count; ties go to the key seen first. Modal selection must be
// stable across runs, so iteration order is explicit rather than map order.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) Add(key string) {
	if key == "" {
		return
	}
	if _, seen := c.counts[key]; !seen {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

func (c *counter) Top() string {
	best := ""
	bestCount := 0
	for _, key := range c.order {
		if c.counts[key] > bestCount {
			best = key
			bestCount = c.counts[key]
		}
	}
	return best
}

// SeasonSummary holds the modal favorites for one player's season.
type SeasonSummary struct {
	FavoriteLane           string
	FavoriteChampion       string
	FavoriteItem           string
	FavoriteStarter        string
	HighestWinrateChampion string
	NemesisChampion        string
	BullyChampion          string
	GamesPlayed            int
	Wins                   int
}

type championRecord struct {
	games int
	wins  int
}

// SummarizeSeason walks every fetched match once and produces the season's
// favorites. Matches where the target player is absent are skipped. Items is
// the catalog keyed by numeric item ID string, used for classification.
func SummarizeSeason(matches []api.Match, puuid string, items map[string]api.Item) SeasonSummary {
	lanes := newCounter()
	champs := newCounter()
	fullItems := newCounter()
	starters := newCounter()
	nemesis := newCounter()
	bully := newCounter()

	champRecords := make(map[string]*championRecord)
	games, wins := 0, 0

	for i := range matches {
		m := &matches[i]
		me := FindMe(m, puuid)
		if me == nil {
			continue
		}
		games++
		if me.Win {
			wins++
		}

		lanes.Add(position(me))
		champs.Add(me.ChampionName)
		rec := champRecords[me.ChampionName]
		if rec == nil {
			rec = &championRecord{}
			champRecords[me.ChampionName] = rec
		}
		rec.games++
		if me.Win {
			rec.wins++
		}

		if opp := FindOpponent(m, me); opp != nil {
			if me.Win {
				bully.Add(opp.ChampionName)
			} else {
				nemesis.Add(opp.ChampionName)
			}
		}

		for _, id := range []int{me.Item0, me.Item1, me.Item2, me.Item3, me.Item4, me.Item5} {
			if id <= 0 {
				continue
			}
			item, ok := items[strconv.Itoa(id)]
			if !ok {
				continue
			}
			switch classifyItem(item) {
			case itemStarter:
				starters.Add(item.Name)
			case itemFullyBuilt:
				fullItems.Add(item.Name)
			}
		}
	}

	return SeasonSummary{
		FavoriteLane:           lanes.Top(),
		FavoriteChampion:       champs.Top(),
		FavoriteItem:           fullItems.Top(),
		FavoriteStarter:        starters.Top(),
		HighestWinrateChampion: highestWinrate(champs.order, champRecords),
		NemesisChampion:        nemesis.Top(),
		BullyChampion:          bully.Top(),
		GamesPlayed:            games,
		Wins:                   wins,
	}
}

// highestWinrate picks the champion with the best wins/games ratio. Ties are
// broken by more games played, then lexicographically by name.
func highestWinrate(order []string, records map[string]*championRecord) string {
	best := ""
	var bestRatio float64
	var bestGames int
	for _, name := range order {
		rec := records[name]
		ratio := float64(rec.wins) / float64(rec.games)
		switch {
		case best == "",
			ratio > bestRatio,
			ratio == bestRatio && rec.games > bestGames,
			ratio == bestRatio && rec.games == bestGames && name < best:
			best = name
			bestRatio = ratio
			bestGames = rec.games
		}
	}
	return best
}
