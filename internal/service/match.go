package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"rift-rewind/internal/api"
	"rift-rewind/internal/constants"
	"rift-rewind/internal/ratelimit"
	"rift-rewind/internal/stats"
)

// QueueIDs maps the queue-type strings used in rewind keys to Riot numeric
// queue IDs for the match listing filter.
var QueueIDs = map[string]int{
	"RANKED_SOLO_5x5": 420,
	"RANKED_FLEX_SR":  440,
	"NORMAL_DRAFT":    400,
	"ARAM":            450,
}

type MatchService struct {
	client  *api.RiotClient
	caches  *Caches
	limiter *ratelimit.Limiter
	logger  zerolog.Logger

	now func() time.Time
}

func NewMatchService(client *api.RiotClient, caches *Caches, limiter *ratelimit.Limiter, logger zerolog.Logger) *MatchService {
	return &MatchService{
		client:  client,
		caches:  caches,
		limiter: limiter,
		logger:  logger.With().Str("component", "match_service").Logger(),
		now:     time.Now,
	}
}

func (s *MatchService) GetMatch(ctx context.Context, platform, matchID string) (*api.Match, error) {
	key := platform + ":" + matchID
	m, err := s.caches.Matches.GetOrLoad(ctx, key,
		loadLimited(s.limiter, func(ctx context.Context) (api.Match, error) {
			fetched, err := s.client.GetMatch(ctx, platform, matchID)
			if err != nil {
				return api.Match{}, err
			}
			return *fetched, nil
		}))
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// GetTimeline is uncached: timelines are large and viewed once.
func (s *MatchService) GetTimeline(ctx context.Context, platform, matchID string) (*api.MatchTimeline, error) {
	if err := s.limiter.AcquireSlot(ctx); err != nil {
		return nil, err
	}
	return s.client.GetMatchTimeline(ctx, platform, matchID)
}

// GetMatchIDs lists recent match IDs with optional queue filtering.
func (s *MatchService) GetMatchIDs(ctx context.Context, platform, puuid string, opts api.MatchIDsOptions) ([]string, error) {
	if err := s.limiter.AcquireSlot(ctx); err != nil {
		return nil, err
	}
	return s.client.GetMatchIDs(ctx, platform, puuid, opts)
}

// GetMatchIDsByMonths lists up to a fixed sample of match IDs per calendar
// month of the season, oldest month first. One listing call per month; each
// consumes a rate-limit slot.
func (s *MatchService) GetMatchIDsByMonths(ctx context.Context, platform, puuid, queueType string, year int) ([]stats.MonthBucket, error) {
	queueID := QueueIDs[queueType]
	ranges := stats.MonthlyRanges(year, s.now())

	var buckets []stats.MonthBucket
	for _, mr := range ranges {
		if err := s.limiter.AcquireSlot(ctx); err != nil {
			return nil, err
		}
		ids, err := s.client.GetMatchIDs(ctx, platform, puuid, api.MatchIDsOptions{
			Count:     constants.MatchesPerMonth,
			Queue:     queueID,
			StartTime: mr.Start,
			EndTime:   mr.End,
		})
		if err != nil {
			return nil, err
		}
		s.logger.Debug().
			Int("month", mr.Month).
			Int("matches", len(ids)).
			Msg("listed month matches")
		if len(ids) > 0 {
			buckets = append(buckets, stats.MonthBucket{Month: mr.Month, MatchIDs: ids})
		}
	}
	return buckets, nil
}
