package stats

import (
	"fmt"
	"testing"

	"rift-rewind/internal/api"
)

func TestSummarizeSeasonFavorites(t *testing.T) {
	// 8 wins on Ahri and 4 wins on Lux, all mid. Both at 100% win rate; the
	// higher game count must break the tie in Ahri's favor.
	var matches []api.Match
	for i := 0; i < 8; i++ {
		matches = append(matches, testMatch(fmt.Sprintf("A%d", i), "Zed", withChampion("Ahri")))
	}
	for i := 0; i < 4; i++ {
		matches = append(matches, testMatch(fmt.Sprintf("L%d", i), "Zed", withChampion("Lux")))
	}

	s := SummarizeSeason(matches, testPuuid, nil)

	if s.FavoriteChampion != "Ahri" {
		t.Errorf("FavoriteChampion = %q, want Ahri", s.FavoriteChampion)
	}
	if s.FavoriteLane != "MIDDLE" {
		t.Errorf("FavoriteLane = %q, want MIDDLE", s.FavoriteLane)
	}
	if s.HighestWinrateChampion != "Ahri" {
		t.Errorf("HighestWinrateChampion = %q, want Ahri (tie broken by game count)", s.HighestWinrateChampion)
	}
	if s.GamesPlayed != 12 || s.Wins != 12 {
		t.Errorf("games/wins = %d/%d, want 12/12", s.GamesPlayed, s.Wins)
	}
}

func TestSummarizeSeasonWinrateBeatsVolume(t *testing.T) {
	var matches []api.Match
	// Ahri: 10 games, 5 wins. Lux: 2 games, 2 wins.
	for i := 0; i < 10; i++ {
		matches = append(matches, testMatch(fmt.Sprintf("A%d", i), "Zed",
			withChampion("Ahri"), withWin(i < 5)))
	}
	for i := 0; i < 2; i++ {
		matches = append(matches, testMatch(fmt.Sprintf("L%d", i), "Zed", withChampion("Lux")))
	}

	s := SummarizeSeason(matches, testPuuid, nil)
	if s.FavoriteChampion != "Ahri" {
		t.Errorf("FavoriteChampion = %q, want Ahri (most games)", s.FavoriteChampion)
	}
	if s.HighestWinrateChampion != "Lux" {
		t.Errorf("HighestWinrateChampion = %q, want Lux (100%% beats 50%%)", s.HighestWinrateChampion)
	}
}

func TestSummarizeSeasonNemesisAndBully(t *testing.T) {
	matches := []api.Match{
		testMatch("M1", "Zed", withWin(false)),
		testMatch("M2", "Zed", withWin(false)),
		testMatch("M3", "Syndra", withWin(false)),
		testMatch("M4", "Viktor", withWin(true)),
		testMatch("M5", "Viktor", withWin(true)),
		testMatch("M6", "Orianna", withWin(true)),
	}

	s := SummarizeSeason(matches, testPuuid, nil)
	if s.NemesisChampion != "Zed" {
		t.Errorf("NemesisChampion = %q, want Zed", s.NemesisChampion)
	}
	if s.BullyChampion != "Viktor" {
		t.Errorf("BullyChampion = %q, want Viktor", s.BullyChampion)
	}
}

func TestSummarizeSeasonItemClassification(t *testing.T) {
	items := map[string]api.Item{
		"1001": {Name: "Health Potion", Tags: []string{"Consumable"}},
		"1002": {Name: "Lost Chapter", Into: []string{"6655"}},
		"1003": {Name: "Boots of Speed"},
		"6655": {Name: "Luden's Companion", Tags: []string{"Mana"}},
		"1054": {Name: "Doran's Shield"},
	}

	// Consumable, component, and boots appear in every match; the fully
	// built item only once. Frequency must not override eligibility.
	matches := []api.Match{
		testMatch("M1", "Zed", withItems(1001, 1002, 1003, 6655, 1054)),
		testMatch("M2", "Zed", withItems(1001, 1002, 1003)),
		testMatch("M3", "Zed", withItems(1001, 1002, 1003, 1054)),
	}

	s := SummarizeSeason(matches, testPuuid, items)
	if s.FavoriteItem != "Luden's Companion" {
		t.Errorf("FavoriteItem = %q, want Luden's Companion (only eligible item)", s.FavoriteItem)
	}
	if s.FavoriteStarter != "Doran's Shield" {
		t.Errorf("FavoriteStarter = %q, want Doran's Shield", s.FavoriteStarter)
	}
}

func TestSummarizeSeasonSkipsMatchesWithoutPlayer(t *testing.T) {
	foreign := testMatch("M1", "Zed")
	foreign.Info.Participants[0].Puuid = "someone-else"

	s := SummarizeSeason([]api.Match{foreign, testMatch("M2", "Zed")}, testPuuid, nil)
	if s.GamesPlayed != 1 {
		t.Errorf("GamesPlayed = %d, want 1 (foreign match skipped)", s.GamesPlayed)
	}
}

func TestCounterModalTieGoesToFirstSeen(t *testing.T) {
	c := newCounter()
	c.Add("TOP")
	c.Add("MIDDLE")
	c.Add("MIDDLE")
	c.Add("TOP")

	if top := c.Top(); top != "TOP" {
		t.Errorf("Top() = %q, want TOP (first seen wins ties)", top)
	}
}

func TestCounterIgnoresEmptyKeys(t *testing.T) {
	c := newCounter()
	c.Add("")
	c.Add("")
	c.Add("JUNGLE")

	if top := c.Top(); top != "JUNGLE" {
		t.Errorf("Top() = %q, want JUNGLE", top)
	}
}
