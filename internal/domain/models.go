package domain

import (
	"time"
)

// Rewind is the persisted season summary for one player. At most one row
// exists per (puuid, platform, queue type, year).
type Rewind struct {
	ID                     string             `json:"id"`
	Puuid                  string             `json:"puuid"`
	Platform               string             `json:"platform"`
	QueueType              string             `json:"queueType"`
	Year                   int                `json:"year"`
	FavoriteLane           string             `json:"favoriteLane"`
	FavoriteChampion       string             `json:"favoriteChampion"`
	FavoriteItem           string             `json:"favoriteItem"`
	FavoriteStarter        string             `json:"favoriteStarter"`
	HighestWinrateChampion string             `json:"highestWinrateChampion"`
	NemesisChampion        string             `json:"nemesisChampion"`
	BullyChampion          string             `json:"bullyChampion"`
	Playstyle              *Playstyle         `json:"playstyle,omitempty"`
	GameplayElements       []GameplayElement  `json:"gameplayElements"`
	Advice                 []Advice           `json:"advice"`
	Highlights             []Highlight        `json:"highlights"`
	Achievements           []Achievement      `json:"achievements"`
	Showcase               *Showcase          `json:"showcase,omitempty"`
	CreatedAt              time.Time          `json:"createdAt"`
	UpdatedAt              time.Time          `json:"updatedAt"`
}

type Playstyle struct {
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// GameplayElement is either a strength or a weakness, distinguished by Form.
type GameplayElement struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Form   string `json:"form"` // "strength" or "weakness"
	Reason string `json:"reason"`
}

type Advice struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type Highlight struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	MatchID     string `json:"matchId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Badge       string `json:"badge"`
	Rarity      string `json:"rarity"`
	StatsJSON   string `json:"statsJson"`
}

type Achievement struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Rarity      string `json:"rarity"`
	Unlocked    bool   `json:"unlocked"`
	Progress    int    `json:"progress"`
	Total       int    `json:"total"`
}

type Showcase struct {
	Champion  string    `json:"champion"`
	SkinNum   int       `json:"skinNum"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// GlobalStats holds cross-player frequency maps for one (year, queue type),
// used by clients to place a player's favorites on a percentile scale.
type GlobalStats struct {
	TotalCount             int            `json:"totalCount"`
	FavoriteChampion       map[string]int `json:"favoriteChampion"`
	FavoriteLane           map[string]int `json:"favoriteLane"`
	FavoriteItem           map[string]int `json:"favoriteItem"`
	FavoriteStarter        map[string]int `json:"favoriteStarter"`
	HighestWinrateChampion map[string]int `json:"highestWinrateChampion"`
	NemesisChampion        map[string]int `json:"nemesisChampion"`
	BullyChampion          map[string]int `json:"bullyChampion"`
}
