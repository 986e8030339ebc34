package api

// Account is the Riot account-v1 record keyed by Riot ID.
type Account struct {
	Puuid    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the summoner-v4 record for a platform shard.
type Summoner struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	Puuid         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntry is one ranked queue standing from league-v4.
type LeagueEntry struct {
	LeagueID     string `json:"leagueId"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	Puuid        string `json:"puuid"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
	Veteran      bool   `json:"veteran"`
	FreshBlood   bool   `json:"freshBlood"`
	Inactive     bool   `json:"inactive"`
}

type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	DataVersion  string   `json:"dataVersion"`
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameCreation       int64         `json:"gameCreation"`
	GameDuration       int64         `json:"gameDuration"`
	GameEndTimestamp   int64         `json:"gameEndTimestamp"`
	GameID             int64         `json:"gameId"`
	GameMode           string        `json:"gameMode"`
	GameName           string        `json:"gameName"`
	GameStartTimestamp int64         `json:"gameStartTimestamp"`
	GameType           string        `json:"gameType"`
	GameVersion        string        `json:"gameVersion"`
	MapID              int           `json:"mapId"`
	PlatformID         string        `json:"platformId"`
	QueueID            int           `json:"queueId"`
	Participants       []Participant `json:"participants"`
	Teams              []Team        `json:"teams"`
}

// Participant carries every per-player stat the aggregation reads. The Riot
// payload has many more fields; only the ones consumed here are declared.
type Participant struct {
	Puuid          string `json:"puuid"`
	SummonerName   string `json:"summonerName"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`
	ParticipantID  int    `json:"participantId"`
	TeamID         int    `json:"teamId"`

	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	ChampLevel   int    `json:"champLevel"`

	IndividualPosition string `json:"individualPosition"`
	TeamPosition       string `json:"teamPosition"`
	Lane               string `json:"lane"`
	Role               string `json:"role"`

	Kills       int  `json:"kills"`
	Deaths      int  `json:"deaths"`
	Assists     int  `json:"assists"`
	DoubleKills int  `json:"doubleKills"`
	TripleKills int  `json:"tripleKills"`
	QuadraKills int  `json:"quadraKills"`
	PentaKills  int  `json:"pentaKills"`
	LargestKillingSpree int `json:"largestKillingSpree"`
	LargestMultiKill    int `json:"largestMultiKill"`
	FirstBloodKill      bool `json:"firstBloodKill"`
	FirstBloodAssist    bool `json:"firstBloodAssist"`
	FirstTowerKill      bool `json:"firstTowerKill"`

	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int `json:"totalDamageTaken"`
	DamageDealtToObjectives     int `json:"damageDealtToObjectives"`
	DamageDealtToTurrets        int `json:"damageDealtToTurrets"`
	DamageSelfMitigated         int `json:"damageSelfMitigated"`
	TotalHeal                   int `json:"totalHeal"`
	TotalHealsOnTeammates       int `json:"totalHealsOnTeammates"`
	TotalDamageShieldedOnTeammates int `json:"totalDamageShieldedOnTeammates"`

	GoldEarned                  int `json:"goldEarned"`
	GoldSpent                   int `json:"goldSpent"`
	TotalMinionsKilled          int `json:"totalMinionsKilled"`
	NeutralMinionsKilled        int `json:"neutralMinionsKilled"`
	TurretKills                 int `json:"turretKills"`
	TurretTakedowns             int `json:"turretTakedowns"`
	InhibitorKills              int `json:"inhibitorKills"`
	BaronKills                  int `json:"baronKills"`
	DragonKills                 int `json:"dragonKills"`
	ObjectivesStolen            int `json:"objectivesStolen"`

	VisionScore             int `json:"visionScore"`
	WardsPlaced             int `json:"wardsPlaced"`
	WardsKilled             int `json:"wardsKilled"`
	VisionWardsBoughtInGame int `json:"visionWardsBoughtInGame"`
	DetectorWardsPlaced     int `json:"detectorWardsPlaced"`

	AllInPings         int `json:"allInPings"`
	AssistMePings      int `json:"assistMePings"`
	CommandPings       int `json:"commandPings"`
	EnemyMissingPings  int `json:"enemyMissingPings"`
	EnemyVisionPings   int `json:"enemyVisionPings"`
	HoldPings          int `json:"holdPings"`
	GetBackPings       int `json:"getBackPings"`
	NeedVisionPings    int `json:"needVisionPings"`
	OnMyWayPings       int `json:"onMyWayPings"`
	PushPings          int `json:"pushPings"`
	VisionClearedPings int `json:"visionClearedPings"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"`

	Summoner1ID int `json:"summoner1Id"`
	Summoner2ID int `json:"summoner2Id"`

	TimeCCingOthers         int `json:"timeCCingOthers"`
	TotalTimeSpentDead      int `json:"totalTimeSpentDead"`
	TotalTimeCCDealt        int `json:"totalTimeCCDealt"`
	LongestTimeSpentLiving  int `json:"longestTimeSpentLiving"`
	TimePlayed              int `json:"timePlayed"`

	Win             bool `json:"win"`
	GameEndedInEarlySurrender bool `json:"gameEndedInEarlySurrender"`
	GameEndedInSurrender      bool `json:"gameEndedInSurrender"`
}

type Team struct {
	TeamID     int            `json:"teamId"`
	Win        bool           `json:"win"`
	Bans       []Ban          `json:"bans"`
	Objectives TeamObjectives `json:"objectives"`
}

type Ban struct {
	ChampionID int `json:"championId"`
	PickTurn   int `json:"pickTurn"`
}

type TeamObjectives struct {
	Baron      Objective `json:"baron"`
	Champion   Objective `json:"champion"`
	Dragon     Objective `json:"dragon"`
	Horde      Objective `json:"horde"`
	Inhibitor  Objective `json:"inhibitor"`
	RiftHerald Objective `json:"riftHerald"`
	Tower      Objective `json:"tower"`
}

type Objective struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

// MatchTimeline is returned opaque; clients render it directly.
type MatchTimeline struct {
	Metadata MatchMetadata          `json:"metadata"`
	Info     map[string]interface{} `json:"info"`
}
