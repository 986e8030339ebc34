package stats

import (
	"fmt"
	"testing"

	"rift-rewind/internal/api"
	"rift-rewind/internal/domain"
)

func findAchievement(t *testing.T, as []domain.Achievement, typ string) domain.Achievement {
	t.Helper()
	for _, a := range as {
		if a.Type == typ {
			return a
		}
	}
	t.Fatalf("achievement %q not in result", typ)
	return domain.Achievement{}
}

func TestAchievementsAlwaysReturnsAllSeven(t *testing.T) {
	as := GenerateAchievements(nil, testPuuid)
	if len(as) != 7 {
		t.Fatalf("got %d achievements, want 7", len(as))
	}
	for _, a := range as {
		if a.Unlocked {
			t.Errorf("%s unlocked with no matches played", a.Type)
		}
	}
}

func TestVisionMasterThreshold(t *testing.T) {
	var matches []api.Match
	for i := 0; i < 4; i++ {
		m := testMatch(fmt.Sprintf("M%d", i), "Zed")
		m.Info.Participants[0].VisionScore = 45
		matches = append(matches, m)
	}

	a := findAchievement(t, GenerateAchievements(matches, testPuuid), "vision_master")
	if !a.Unlocked {
		t.Error("vision_master locked at 45 average")
	}
	if a.Progress != 45 {
		t.Errorf("progress = %d, want 45", a.Progress)
	}
}

func TestFlawlessCountsDeathlessWinsOnly(t *testing.T) {
	var matches []api.Match
	for i := 0; i < 5; i++ {
		matches = append(matches, testMatch(fmt.Sprintf("W%d", i), "Zed", withKDA(5, 0, 3)))
	}
	// A deathless loss must not count.
	matches = append(matches, testMatch("L", "Zed", withKDA(5, 0, 3), withWin(false)))

	a := findAchievement(t, GenerateAchievements(matches, testPuuid), "flawless")
	if !a.Unlocked {
		t.Error("flawless locked at 5 deathless wins")
	}
	if a.Progress != 5 {
		t.Errorf("progress = %d, want 5", a.Progress)
	}
}

func TestOnFireStreakAndRarityEscalation(t *testing.T) {
	var matches []api.Match
	for i := 0; i < 6; i++ {
		matches = append(matches, testMatch(fmt.Sprintf("W%d", i), "Zed"))
	}
	matches = append(matches, testMatch("L", "Zed", withWin(false)))
	for i := 0; i < 3; i++ {
		matches = append(matches, testMatch(fmt.Sprintf("W2%d", i), "Zed"))
	}

	a := findAchievement(t, GenerateAchievements(matches, testPuuid), "on_fire")
	if !a.Unlocked || a.Progress != 6 {
		t.Errorf("on_fire = unlocked %v progress %d, want unlocked with streak 6", a.Unlocked, a.Progress)
	}
	if a.Rarity != "epic" {
		t.Errorf("rarity = %s, want epic below a 10 streak", a.Rarity)
	}

	for i := 0; i < 10; i++ {
		matches = append(matches, testMatch(fmt.Sprintf("W3%d", i), "Zed"))
	}
	a = findAchievement(t, GenerateAchievements(matches, testPuuid), "on_fire")
	if a.Rarity != "legendary" {
		t.Errorf("rarity = %s, want legendary at a 10+ streak", a.Rarity)
	}
}

func TestPentakillLegend(t *testing.T) {
	m := testMatch("PENTA", "Zed")
	m.Info.Participants[0].PentaKills = 1

	a := findAchievement(t, GenerateAchievements([]api.Match{m}, testPuuid), "pentakill_legend")
	if !a.Unlocked {
		t.Error("pentakill_legend locked with a pentakill on record")
	}
}

func TestDedicatedProgressTracksGames(t *testing.T) {
	var matches []api.Match
	for i := 0; i < 30; i++ {
		matches = append(matches, testMatch(fmt.Sprintf("M%d", i), "Zed"))
	}

	a := findAchievement(t, GenerateAchievements(matches, testPuuid), "dedicated")
	if a.Unlocked {
		t.Error("dedicated unlocked at 30 games")
	}
	if a.Progress != 30 || a.Total != 100 {
		t.Errorf("progress/total = %d/%d, want 30/100", a.Progress, a.Total)
	}
}

func TestObjectiveSecuredSumsBaronsAndDragons(t *testing.T) {
	var matches []api.Match
	for i := 0; i < 10; i++ {
		m := testMatch(fmt.Sprintf("M%d", i), "Zed")
		m.Info.Participants[0].BaronKills = 2
		m.Info.Participants[0].DragonKills = 3
		matches = append(matches, m)
	}

	a := findAchievement(t, GenerateAchievements(matches, testPuuid), "objective_secured")
	if !a.Unlocked || a.Progress != 50 {
		t.Errorf("objective_secured = unlocked %v progress %d, want unlocked at 50", a.Unlocked, a.Progress)
	}
}
