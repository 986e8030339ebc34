package stats

import (
	"fmt"
	"testing"

	"rift-rewind/internal/api"
)

func TestPentakillHighlightSortsFirst(t *testing.T) {
	var matches []api.Match
	for i := 0; i < 20; i++ {
		matches = append(matches, testMatch(fmt.Sprintf("M%d", i), "Zed", withKDA(3, 3, 3)))
	}
	penta := testMatch("PENTA", "Zed", withKDA(15, 2, 5))
	penta.Info.Participants[0].PentaKills = 1
	matches = append(matches, penta)

	hs := DetectHighlights(matches, testPuuid)

	pentas := 0
	for _, h := range hs {
		if h.Type == "pentakill" {
			pentas++
		}
	}
	if pentas != 1 {
		t.Fatalf("got %d pentakill highlights, want 1", pentas)
	}
	if hs[0].Type != "pentakill" || hs[0].Rarity != "legendary" {
		t.Fatalf("first highlight = %s/%s, want pentakill/legendary", hs[0].Type, hs[0].Rarity)
	}
	if hs[0].MatchID != "PENTA" {
		t.Fatalf("pentakill highlight match = %s, want PENTA", hs[0].MatchID)
	}
}

func TestBestPerformanceKDATieBreak(t *testing.T) {
	// KDAs 5.0, 8.0, 8.0 across wins; the first 8.0 match must be selected.
	matches := []api.Match{
		testMatch("LOW", "Zed", withKDA(4, 2, 6)),    // (4+6)/2 = 5.0
		testMatch("FIRST8", "Zed", withKDA(10, 2, 6)), // (10+6)/2 = 8.0
		testMatch("SECOND8", "Zed", withKDA(6, 2, 10)),
	}

	hs := DetectHighlights(matches, testPuuid)
	for _, h := range hs {
		if h.Type == "best_performance" {
			if h.MatchID != "FIRST8" {
				t.Fatalf("best performance match = %s, want FIRST8 (first in iteration order)", h.MatchID)
			}
			if h.Rarity != "legendary" {
				t.Fatalf("best performance rarity = %s, want legendary", h.Rarity)
			}
			return
		}
	}
	t.Fatal("no best_performance highlight produced")
}

func TestBestPerformanceOnlyConsidersWins(t *testing.T) {
	matches := []api.Match{
		testMatch("LOSS", "Zed", withKDA(20, 1, 10), withWin(false)),
		testMatch("WIN", "Zed", withKDA(4, 2, 4)),
	}

	hs := DetectHighlights(matches, testPuuid)
	for _, h := range hs {
		if h.Type == "best_performance" {
			if h.MatchID != "WIN" {
				t.Fatalf("best performance match = %s, want WIN (losses excluded)", h.MatchID)
			}
			return
		}
	}
	t.Fatal("no best_performance highlight produced")
}

func TestPerfectGameHighlight(t *testing.T) {
	matches := []api.Match{
		testMatch("PERFECT", "Zed", withKDA(7, 0, 5)),
		testMatch("QUIET", "Zed", withKDA(3, 0, 2)), // deathless but under 10 takedowns
	}

	hs := DetectHighlights(matches, testPuuid)
	perfects := 0
	for _, h := range hs {
		if h.Type == "perfect_game" {
			perfects++
			if h.MatchID != "PERFECT" {
				t.Fatalf("perfect game match = %s, want PERFECT", h.MatchID)
			}
		}
	}
	if perfects != 1 {
		t.Fatalf("got %d perfect game highlights, want 1", perfects)
	}
}

func TestComebackHighlight(t *testing.T) {
	m := testMatch("COMEBACK", "Zed")
	// Enemy team out-golds the player's team by more than 10k.
	m.Info.Participants[2].GoldEarned = 20000
	m.Info.Participants[3].GoldEarned = 18000
	m.Info.Participants[0].GoldEarned = 12000
	m.Info.Participants[1].GoldEarned = 8000

	hs := DetectHighlights([]api.Match{m}, testPuuid)
	for _, h := range hs {
		if h.Type == "comeback" {
			if h.Rarity != "epic" {
				t.Fatalf("comeback rarity = %s, want epic", h.Rarity)
			}
			return
		}
	}
	t.Fatal("no comeback highlight for an 18k gold deficit win")
}

func TestHighlightsSortedByRarity(t *testing.T) {
	penta := testMatch("PENTA", "Zed", withKDA(15, 2, 5))
	penta.Info.Participants[0].PentaKills = 1
	matches := []api.Match{
		testMatch("M1", "Zed", withKDA(12, 3, 4)),
		penta,
	}

	hs := DetectHighlights(matches, testPuuid)
	for i := 1; i < len(hs); i++ {
		if rarityRank[hs[i].Rarity] < rarityRank[hs[i-1].Rarity] {
			t.Fatalf("highlight %d (%s) outranks highlight %d (%s)", i, hs[i].Rarity, i-1, hs[i-1].Rarity)
		}
	}
}
