package stats

import (
	"rift-rewind/internal/api"
	"rift-rewind/internal/domain"
)

// GenerateAchievements computes season totals in one pass and compares them
// against fixed thresholds. Every achievement is always returned; Unlocked
// and Progress say how far the player got.
func GenerateAchievements(matches []api.Match, puuid string) []domain.Achievement {
	var (
		games         int
		firstBloods   int
		deathlessWins int
		pentaKills    int
		visionTotal   int
		objectives    int
		streak        int
		bestStreak    int
	)

	for i := range matches {
		me := FindMe(&matches[i], puuid)
		if me == nil {
			continue
		}
		games++
		visionTotal += me.VisionScore
		pentaKills += me.PentaKills
		objectives += me.BaronKills + me.DragonKills
		if me.FirstBloodKill {
			firstBloods++
		}
		if me.Win && me.Deaths == 0 {
			deathlessWins++
		}
		if me.Win {
			streak++
			if streak > bestStreak {
				bestStreak = streak
			}
		} else {
			streak = 0
		}
	}

	avgVision := 0
	if games > 0 {
		avgVision = visionTotal / games
	}

	onFireRarity := "epic"
	if bestStreak >= 10 {
		onFireRarity = "legendary"
	}

	achievements := []domain.Achievement{
		{
			Type:        "vision_master",
			Title:       "Vision Master",
			Description: "Average 40+ vision score per game",
			Icon:        "eye",
			Rarity:      "epic",
			Unlocked:    avgVision >= 40,
			Progress:    avgVision,
			Total:       40,
		},
		{
			Type:        "first_blood_hunter",
			Title:       "First Blood Hunter",
			Description: "Draw first blood 10 times",
			Icon:        "sword",
			Rarity:      "rare",
			Unlocked:    firstBloods >= 10,
			Progress:    firstBloods,
			Total:       10,
		},
		{
			Type:        "flawless",
			Title:       "Flawless",
			Description: "Win 5 games without dying",
			Icon:        "shield",
			Rarity:      "epic",
			Unlocked:    deathlessWins >= 5,
			Progress:    deathlessWins,
			Total:       5,
		},
		{
			Type:        "pentakill_legend",
			Title:       "Pentakill Legend",
			Description: "Score a pentakill",
			Icon:        "star",
			Rarity:      "legendary",
			Unlocked:    pentaKills >= 1,
			Progress:    pentaKills,
			Total:       1,
		},
		{
			Type:        "objective_secured",
			Title:       "Objective Secured",
			Description: "Take 50 barons and dragons",
			Icon:        "dragon",
			Rarity:      "rare",
			Unlocked:    objectives >= 50,
			Progress:    objectives,
			Total:       50,
		},
		{
			Type:        "on_fire",
			Title:       "On Fire",
			Description: "Win 5 games in a row",
			Icon:        "flame",
			Rarity:      onFireRarity,
			Unlocked:    bestStreak >= 5,
			Progress:    bestStreak,
			Total:       5,
		},
		{
			Type:        "dedicated",
			Title:       "Dedicated",
			Description: "Play 100 games in a season",
			Icon:        "trophy",
			Rarity:      "common",
			Unlocked:    games >= 100,
			Progress:    games,
			Total:       100,
		},
	}
	return achievements
}
