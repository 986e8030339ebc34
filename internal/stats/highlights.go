package stats

import (
	"encoding/json"
	"fmt"
	"sort"

	"rift-rewind/internal/api"
	"rift-rewind/internal/domain"
)

var rarityRank = map[string]int{
	"legendary": 0,
	"epic":      1,
	"rare":      2,
	"common":    3,
}

func highlightStats(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

func teamGold(m *api.Match, teamID int) int {
	total := 0
	for i := range m.Info.Participants {
		if m.Info.Participants[i].TeamID == teamID {
			total += m.Info.Participants[i].GoldEarned
		}
	}
	return total
}

func kda(p *api.Participant) float64 {
	if p.Deaths == 0 {
		return float64(p.Kills + p.Assists)
	}
	return float64(p.Kills+p.Assists) / float64(p.Deaths)
}

// DetectHighlights scans all matches once and tags the notable ones. The
// returned list is sorted best-rarity first; the display layer truncates it.
func DetectHighlights(matches []api.Match, puuid string) []domain.Highlight {
	var highlights []domain.Highlight

	var bestKDA float64
	var bestKDAMatch *api.Match
	var bestKDAPart *api.Participant

	var mostDamage int
	var mostDamageMatch *api.Match
	var mostDamagePart *api.Participant

	var mostKills int
	var mostKillsMatch *api.Match
	var mostKillsPart *api.Participant

	for i := range matches {
		m := &matches[i]
		me := FindMe(m, puuid)
		if me == nil {
			continue
		}

		if me.PentaKills > 0 {
			highlights = append(highlights, domain.Highlight{
				Type:        "pentakill",
				MatchID:     m.Metadata.MatchID,
				Title:       "Pentakill!",
				Description: fmt.Sprintf("Wiped the entire enemy team on %s", me.ChampionName),
				Badge:       "PENTAKILL",
				Rarity:      "legendary",
				StatsJSON: highlightStats(map[string]any{
					"champion":   me.ChampionName,
					"pentaKills": me.PentaKills,
					"kills":      me.Kills,
				}),
			})
		}

		if me.Deaths == 0 && me.Win && me.Kills+me.Assists >= 10 {
			highlights = append(highlights, domain.Highlight{
				Type:        "perfect_game",
				MatchID:     m.Metadata.MatchID,
				Title:       "Perfect Game",
				Description: fmt.Sprintf("%d/%d/%d without dying once on %s", me.Kills, me.Deaths, me.Assists, me.ChampionName),
				Badge:       "FLAWLESS",
				Rarity:      "epic",
				StatsJSON: highlightStats(map[string]any{
					"champion": me.ChampionName,
					"kills":    me.Kills,
					"assists":  me.Assists,
				}),
			})
		}

		if me.Win {
			deficit := teamGold(m, enemyTeam(me.TeamID)) - teamGold(m, me.TeamID)
			if deficit > 10000 {
				highlights = append(highlights, domain.Highlight{
					Type:        "comeback",
					MatchID:     m.Metadata.MatchID,
					Title:       "Epic Comeback",
					Description: fmt.Sprintf("Won from a %d gold deficit", deficit),
					Badge:       "COMEBACK",
					Rarity:      "epic",
					StatsJSON: highlightStats(map[string]any{
						"champion":    me.ChampionName,
						"goldDeficit": deficit,
					}),
				})
			}
		}

		// Strictly-greater comparisons keep the first match on ties.
		if me.Win && kda(me) > bestKDA {
			bestKDA = kda(me)
			bestKDAMatch = m
			bestKDAPart = me
		}
		if me.TotalDamageDealtToChampions > mostDamage {
			mostDamage = me.TotalDamageDealtToChampions
			mostDamageMatch = m
			mostDamagePart = me
		}
		if me.Kills > mostKills {
			mostKills = me.Kills
			mostKillsMatch = m
			mostKillsPart = me
		}
	}

	if bestKDAMatch != nil {
		highlights = append(highlights, domain.Highlight{
			Type:        "best_performance",
			MatchID:     bestKDAMatch.Metadata.MatchID,
			Title:       "Best Performance",
			Description: fmt.Sprintf("%.1f KDA on %s", bestKDA, bestKDAPart.ChampionName),
			Badge:       "MVP",
			Rarity:      "legendary",
			StatsJSON: highlightStats(map[string]any{
				"champion": bestKDAPart.ChampionName,
				"kda":      bestKDA,
				"kills":    bestKDAPart.Kills,
				"deaths":   bestKDAPart.Deaths,
				"assists":  bestKDAPart.Assists,
			}),
		})
	}
	if mostDamageMatch != nil {
		highlights = append(highlights, domain.Highlight{
			Type:        "damage_monster",
			MatchID:     mostDamageMatch.Metadata.MatchID,
			Title:       "Damage Monster",
			Description: fmt.Sprintf("%d damage to champions on %s", mostDamage, mostDamagePart.ChampionName),
			Badge:       "DESTROYER",
			Rarity:      "epic",
			StatsJSON: highlightStats(map[string]any{
				"champion": mostDamagePart.ChampionName,
				"damage":   mostDamage,
			}),
		})
	}
	if mostKillsMatch != nil {
		highlights = append(highlights, domain.Highlight{
			Type:        "kill_leader",
			MatchID:     mostKillsMatch.Metadata.MatchID,
			Title:       "Kill Leader",
			Description: fmt.Sprintf("%d kills in one game on %s", mostKills, mostKillsPart.ChampionName),
			Badge:       "SLAYER",
			Rarity:      "rare",
			StatsJSON: highlightStats(map[string]any{
				"champion": mostKillsPart.ChampionName,
				"kills":    mostKills,
			}),
		})
	}

	sort.SliceStable(highlights, func(i, j int) bool {
		return rarityRank[highlights[i].Rarity] < rarityRank[highlights[j].Rarity]
	})
	return highlights
}

func enemyTeam(teamID int) int {
	if teamID == 100 {
		return 200
	}
	return 100
}
