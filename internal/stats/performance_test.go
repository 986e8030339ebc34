package stats

import (
	"testing"
	"time"

	"rift-rewind/internal/api"
)

func noNames(int) string { return "" }

func TestFindOpponentMatchesPositionOnOpposingTeam(t *testing.T) {
	m := testMatch("M1", "Zed")
	me := FindMe(&m, testPuuid)
	if me == nil {
		t.Fatal("target player not found")
	}

	opp := FindOpponent(&m, me)
	if opp == nil {
		t.Fatal("no opponent found")
	}
	if opp.ChampionName != "Zed" {
		t.Fatalf("opponent = %s, want the mid laner Zed", opp.ChampionName)
	}
}

func TestFindOpponentTakesFirstArrayMatch(t *testing.T) {
	m := testMatch("M1", "Zed")
	// Duplicate position data on the enemy team: both report MIDDLE.
	m.Info.Participants[3].IndividualPosition = "MIDDLE"

	me := FindMe(&m, testPuuid)
	opp := FindOpponent(&m, me)
	if opp == nil || opp.Puuid != "enemy-1" {
		t.Fatalf("opponent = %+v, want enemy-1 (first in participant order)", opp)
	}
}

func TestFindOpponentFallsBackThroughPositionFields(t *testing.T) {
	m := testMatch("M1", "Zed")
	m.Info.Participants[0].IndividualPosition = ""
	m.Info.Participants[0].TeamPosition = "MIDDLE"

	me := FindMe(&m, testPuuid)
	if opp := FindOpponent(&m, me); opp == nil {
		t.Fatal("teamPosition fallback failed to find the opponent")
	}
}

func TestOverviewDropsMatchWithoutOpponent(t *testing.T) {
	m := testMatch("M1", "Zed")
	for i := range m.Info.Participants {
		if m.Info.Participants[i].TeamID == 200 {
			m.Info.Participants[i].IndividualPosition = "JUNGLE"
		}
	}

	if _, ok := Overview(&m, testPuuid, noNames); ok {
		t.Fatal("expected match without a lane opponent to be dropped")
	}
}

func TestOverviewDropsMatchWithoutPlayer(t *testing.T) {
	m := testMatch("M1", "Zed")
	if _, ok := Overview(&m, "unknown-puuid", noNames); ok {
		t.Fatal("expected match without the target player to be dropped")
	}
}

func TestPerformanceKillParticipation(t *testing.T) {
	m := testMatch("M1", "Zed", withKDA(5, 3, 4))
	// Team 100 kills: me 5 + ally 2 = 7. (5+4)/7 * 100.
	me := FindMe(&m, testPuuid)

	perf := Performance(&m, me, noNames)
	want := float64(9) / 7 * 100
	if diff := perf.KillParticipation - want; diff > 0.001 || diff < -0.001 {
		t.Fatalf("kill participation = %f, want %f", perf.KillParticipation, want)
	}
}

func TestPerformanceZeroGuards(t *testing.T) {
	m := testMatch("M1", "Zed", withKDA(0, 0, 0))
	m.Info.GameDuration = 0
	m.Info.Participants[0].GoldEarned = 0
	m.Info.Participants[1].Kills = 0

	me := FindMe(&m, testPuuid)
	perf := Performance(&m, me, noNames)

	if perf.KillParticipation != 0 {
		t.Errorf("kill participation = %f, want 0 with zero team kills", perf.KillParticipation)
	}
	if perf.CSPerMin != 0 || perf.GoldPerMin != 0 {
		t.Errorf("per-minute stats = %f/%f, want 0 with zero duration", perf.CSPerMin, perf.GoldPerMin)
	}
	if perf.DamagePerGold != 0 {
		t.Errorf("damage per gold = %f, want 0 with zero gold", perf.DamagePerGold)
	}
}

func TestPerformanceResolvesItemNames(t *testing.T) {
	m := testMatch("M1", "Zed", withItems(6655, 3020))
	names := map[int]string{6655: "Luden's Companion"}

	me := FindMe(&m, testPuuid)
	perf := Performance(&m, me, func(id int) string { return names[id] })

	if len(perf.Items) != 2 {
		t.Fatalf("got %d items, want 2 filled slots", len(perf.Items))
	}
	if perf.Items[0] != "Luden's Companion" {
		t.Errorf("item 0 = %q", perf.Items[0])
	}
	if perf.Items[1] != "" {
		t.Errorf("item 1 = %q, want empty string for unresolvable id", perf.Items[1])
	}
}

func TestPerformanceSumsPings(t *testing.T) {
	m := testMatch("M1", "Zed")
	p := &m.Info.Participants[0]
	p.OnMyWayPings = 3
	p.EnemyMissingPings = 2
	p.PushPings = 1

	perf := Performance(&m, FindMe(&m, testPuuid), noNames)
	if perf.TotalPings != 6 {
		t.Fatalf("total pings = %d, want 6", perf.TotalPings)
	}
}

func TestMonthlyRangesStopAtCurrentMonth(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)
	ranges := MonthlyRanges(2025, now)
	if len(ranges) != 3 {
		t.Fatalf("got %d months, want 3 (Jan-Mar)", len(ranges))
	}
	if ranges[0].Month != 1 || ranges[2].Month != 3 {
		t.Fatalf("months = %d..%d, want 1..3", ranges[0].Month, ranges[2].Month)
	}
	jan := time.Unix(ranges[0].Start, 0).UTC()
	if jan.Month() != time.January || jan.Day() != 1 {
		t.Fatalf("january starts at %v", jan)
	}
}

func TestMonthlyRangesFullPastYear(t *testing.T) {
	now := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	ranges := MonthlyRanges(2025, now)
	if len(ranges) != 12 {
		t.Fatalf("got %d months for a completed year, want 12", len(ranges))
	}
}

func TestMonthlyOverviewsDropsEmptyMonths(t *testing.T) {
	m1 := testMatch("M1", "Zed")
	byID := map[string]*api.Match{"M1": &m1}
	buckets := []MonthBucket{
		{Month: 1, MatchIDs: []string{"M1"}},
		{Month: 2, MatchIDs: []string{"MISSING"}},
	}

	months := MonthlyOverviews(buckets, byID, testPuuid, noNames)
	if len(months) != 1 {
		t.Fatalf("got %d months, want 1 (empty month dropped)", len(months))
	}
	if months[0].Month != 1 || len(months[0].Matches) != 1 {
		t.Fatalf("month = %+v", months[0])
	}
}
