package constants

import "time"

// Match records are immutable once the game ends, so they can live in cache
// far longer than the mutable profile data.
const (
	MatchCacheTTL      = 24 * time.Hour
	AccountCacheTTL    = 1 * time.Hour
	SummonerCacheTTL   = 30 * time.Minute
	LeagueCacheTTL     = 5 * time.Minute
	StaticDataCacheTTL = 6 * time.Hour
)

// Riot development keys allow 20 requests per second and 100 requests per
// two minutes. Both windows must have room before a call goes out.
const (
	ShortWindowLimit    = 20
	ShortWindowDuration = 1 * time.Second
	LongWindowLimit     = 100
	LongWindowDuration  = 2 * time.Minute
	AcquireSlotBuffer   = 10 * time.Millisecond
)

const (
	ExternalAPITimeout = 10 * time.Second
	DatabaseTimeout    = 5 * time.Second
	RequestTimeout     = 30 * time.Second
	GenerateTimeout    = 10 * time.Minute
	NarrativeTimeout   = 2 * time.Minute
)

const (
	DBMaxOpenConns    = 100
	DBMaxIdleConns    = 10
	DBConnMaxLifetime = 1 * time.Hour
	DBMaxIdleTime     = 10 * time.Minute
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	// Fallback delay when a 429 response carries no Retry-After header.
	DefaultRetryAfter = 5 * time.Second

	MatchesPerMonth       = 15
	HighlightDisplayLimit = 6
)
