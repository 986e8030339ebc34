package stats

import (
	"rift-rewind/internal/api"
)

// ItemNamer resolves a numeric item ID to its display name. Returns "" for
// unknown IDs; callers never fail on an unresolvable item.
type ItemNamer func(itemID int) string

// ParticipantPerformance is a flattened per-player-per-match projection.
// It is derived from the match record on demand and never persisted.
type ParticipantPerformance struct {
	ChampionName      string   `json:"championName"`
	ChampLevel        int      `json:"champLevel"`
	Position          string   `json:"position"`
	Kills             int      `json:"kills"`
	Deaths            int      `json:"deaths"`
	Assists           int      `json:"assists"`
	CS                int      `json:"cs"`
	CSPerMin          float64  `json:"csPerMin"`
	Gold              int      `json:"gold"`
	GoldPerMin        float64  `json:"goldPerMin"`
	DamageDealt       int      `json:"damageDealt"`
	DamageTaken       int      `json:"damageTaken"`
	DamagePerGold     float64  `json:"damagePerGold"`
	KillParticipation float64  `json:"killParticipation"`
	VisionScore       int      `json:"visionScore"`
	WardsPlaced       int      `json:"wardsPlaced"`
	WardsKilled       int      `json:"wardsKilled"`
	ControlWards      int      `json:"controlWards"`
	TotalPings        int      `json:"totalPings"`
	DoubleKills       int      `json:"doubleKills"`
	TripleKills       int      `json:"tripleKills"`
	QuadraKills       int      `json:"quadraKills"`
	PentaKills        int      `json:"pentaKills"`
	FirstBloodKill    bool     `json:"firstBloodKill"`
	FirstTowerKill    bool     `json:"firstTowerKill"`
	Items             []string `json:"items"`
	Win               bool     `json:"win"`
}

// MatchOverview pairs the target player's performance with their detected
// lane opponent for one match. This is the shape handed to the narrative
// service.
type MatchOverview struct {
	MatchID      string                  `json:"matchId"`
	QueueID      int                     `json:"queueId"`
	GameMode     string                  `json:"gameMode"`
	GameDuration int64                   `json:"gameDuration"`
	Me           ParticipantPerformance  `json:"me"`
	Opponent     *ParticipantPerformance `json:"opponent,omitempty"`
}

// MonthlyOverview groups match overviews under the month they were played.
type MonthlyOverview struct {
	Month   int             `json:"month"`
	Matches []MatchOverview `json:"matches"`
}

// position is the lane signal used for opponent detection and the lane
// histogram. Falls back through the three fields the upstream populates
// inconsistently across queue types.
func position(p *api.Participant) string {
	if p.IndividualPosition != "" {
		return p.IndividualPosition
	}
	if p.TeamPosition != "" {
		return p.TeamPosition
	}
	return p.Lane
}

// FindMe locates the target player's participant entry, or nil.
func FindMe(m *api.Match, puuid string) *api.Participant {
	for i := range m.Info.Participants {
		if m.Info.Participants[i].Puuid == puuid {
			return &m.Info.Participants[i]
		}
	}
	return nil
}

// FindOpponent returns the first opposing-team participant sharing a lane
// signal with me, in participant array order. Duplicate position data makes
// the "first match wins" choice deliberate, not accidental.
func FindOpponent(m *api.Match, me *api.Participant) *api.Participant {
	pos := position(me)
	if pos == "" {
		return nil
	}
	for i := range m.Info.Participants {
		p := &m.Info.Participants[i]
		if p.TeamID != me.TeamID && position(p) == pos {
			return p
		}
	}
	return nil
}

func teamKills(m *api.Match, teamID int) int {
	total := 0
	for i := range m.Info.Participants {
		if m.Info.Participants[i].TeamID == teamID {
			total += m.Info.Participants[i].Kills
		}
	}
	return total
}

func totalPings(p *api.Participant) int {
	return p.AllInPings + p.AssistMePings + p.CommandPings +
		p.EnemyMissingPings + p.EnemyVisionPings + p.HoldPings +
		p.GetBackPings + p.NeedVisionPings + p.OnMyWayPings +
		p.PushPings + p.VisionClearedPings
}

// Performance flattens one participant's stats into a projection. Division
// guards keep zero-duration and zero-kill games from producing NaN-like
// garbage; they yield 0 instead.
func Performance(m *api.Match, p *api.Participant, itemName ItemNamer) ParticipantPerformance {
	duration := m.Info.GameDuration
	cs := p.TotalMinionsKilled + p.NeutralMinionsKilled
	kills := teamKills(m, p.TeamID)

	var killPart float64
	if kills > 0 {
		killPart = float64(p.Kills+p.Assists) / float64(kills) * 100
	}
	var csPerMin, goldPerMin float64
	if duration > 0 {
		minutes := float64(duration) / 60
		csPerMin = float64(cs) / minutes
		goldPerMin = float64(p.GoldEarned) / minutes
	}
	var damagePerGold float64
	if p.GoldEarned > 0 {
		damagePerGold = float64(p.TotalDamageDealtToChampions) / float64(p.GoldEarned)
	}

	items := make([]string, 0, 6)
	for _, id := range []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5} {
		if id > 0 {
			items = append(items, itemName(id))
		}
	}

	return ParticipantPerformance{
		ChampionName:      p.ChampionName,
		ChampLevel:        p.ChampLevel,
		Position:          position(p),
		Kills:             p.Kills,
		Deaths:            p.Deaths,
		Assists:           p.Assists,
		CS:                cs,
		CSPerMin:          csPerMin,
		Gold:              p.GoldEarned,
		GoldPerMin:        goldPerMin,
		DamageDealt:       p.TotalDamageDealtToChampions,
		DamageTaken:       p.TotalDamageTaken,
		DamagePerGold:     damagePerGold,
		KillParticipation: killPart,
		VisionScore:       p.VisionScore,
		WardsPlaced:       p.WardsPlaced,
		WardsKilled:       p.WardsKilled,
		ControlWards:      p.VisionWardsBoughtInGame,
		TotalPings:        totalPings(p),
		DoubleKills:       p.DoubleKills,
		TripleKills:       p.TripleKills,
		QuadraKills:       p.QuadraKills,
		PentaKills:        p.PentaKills,
		FirstBloodKill:    p.FirstBloodKill,
		FirstTowerKill:    p.FirstTowerKill,
		Items:             items,
		Win:               p.Win,
	}
}

// Overview builds the me-versus-opponent projection for one match. Returns
// false when the target player is not in the match or no opponent shares a
// lane signal; such matches are dropped from narrative input, not errors.
func Overview(m *api.Match, puuid string, itemName ItemNamer) (MatchOverview, bool) {
	me := FindMe(m, puuid)
	if me == nil {
		return MatchOverview{}, false
	}
	opp := FindOpponent(m, me)
	if opp == nil {
		return MatchOverview{}, false
	}

	mePerf := Performance(m, me, itemName)
	oppPerf := Performance(m, opp, itemName)
	return MatchOverview{
		MatchID:      m.Metadata.MatchID,
		QueueID:      m.Info.QueueID,
		GameMode:     m.Info.GameMode,
		GameDuration: m.Info.GameDuration,
		Me:           mePerf,
		Opponent:     &oppPerf,
	}, true
}

// MonthlyOverviews projects month buckets of fetched matches into the
// structure the narrative service consumes. Months left with no usable
// matches are dropped entirely.
func MonthlyOverviews(buckets []MonthBucket, matches map[string]*api.Match, puuid string, itemName ItemNamer) []MonthlyOverview {
	var months []MonthlyOverview
	for _, b := range buckets {
		var overviews []MatchOverview
		for _, id := range b.MatchIDs {
			m, ok := matches[id]
			if !ok {
				continue
			}
			if o, ok := Overview(m, puuid, itemName); ok {
				overviews = append(overviews, o)
			}
		}
		if len(overviews) > 0 {
			months = append(months, MonthlyOverview{Month: b.Month, Matches: overviews})
		}
	}
	return months
}
