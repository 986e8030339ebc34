package fetch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"rift-rewind/internal/api"
	"rift-rewind/internal/cache"
	"rift-rewind/internal/constants"
	"rift-rewind/internal/ratelimit"
)

type EventType string

const (
	EventProgress EventType = "progress"
	EventComplete EventType = "complete"
	EventError    EventType = "error"
)

// Event is the tagged union emitted during a batch fetch. Progress events
// carry the newly fetched match plus counters and a limiter snapshot;
// the complete event carries the full ordered result list.
type Event struct {
	Type      EventType         `json:"type"`
	Match     *api.Match        `json:"match,omitempty"`
	Completed int               `json:"completed,omitempty"`
	Total     int               `json:"total,omitempty"`
	RateLimit *ratelimit.Status `json:"rateLimit,omitempty"`
	Matches   []api.Match       `json:"matches,omitempty"`
	Message   string            `json:"message,omitempty"`
}

// MatchFetcher is the upstream call the orchestrator drives.
type MatchFetcher interface {
	GetMatch(ctx context.Context, platform, matchID string) (*api.Match, error)
}

// Orchestrator fetches a list of match IDs cache-first, one at a time. The
// sequential loop is deliberate: it applies backpressure against the shared
// rate limiter instead of racing every ID at once and bursting past quota.
type Orchestrator struct {
	fetcher MatchFetcher
	cache   *cache.Cache[api.Match]
	limiter *ratelimit.Limiter
	logger  zerolog.Logger

	sleep func(ctx context.Context, d time.Duration) error
}

func NewOrchestrator(fetcher MatchFetcher, matchCache *cache.Cache[api.Match], limiter *ratelimit.Limiter, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		fetcher: fetcher,
		cache:   matchCache,
		limiter: limiter,
		logger:  logger.With().Str("component", "fetch").Logger(),
		sleep:   sleepContext,
	}
}

// FetchMatches resolves matchIDs in input order and streams events on the
// returned channel. The channel is closed after the terminal complete or
// error event, or silently on context cancellation. Progress events preserve
// input order; the complete event's list preserves it exactly.
func (o *Orchestrator) FetchMatches(ctx context.Context, platform string, matchIDs []string) <-chan Event {
	events := make(chan Event)

	go func() {
		defer close(events)

		results := make([]api.Match, 0, len(matchIDs))
		total := len(matchIDs)

		for i, id := range matchIDs {
			if ctx.Err() != nil {
				return
			}

			key := platform + ":" + id
			if m, ok := o.cache.Get(key); ok {
				results = append(results, m)
				status := o.limiter.Status()
				if !emit(ctx, events, Event{
					Type:      EventProgress,
					Match:     &m,
					Completed: i + 1,
					Total:     total,
					RateLimit: &status,
				}) {
					return
				}
				continue
			}

			m, err := o.fetchWithRetry(ctx, platform, id)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return
				}
				o.logger.Error().Err(err).Str("match_id", id).Msg("batch fetch aborted")
				emit(ctx, events, Event{
					Type:    EventError,
					Message: fmt.Sprintf("failed to fetch match %s: %v", id, err),
				})
				return
			}

			o.cache.Set(key, *m)
			results = append(results, *m)
			status := o.limiter.Status()
			if !emit(ctx, events, Event{
				Type:      EventProgress,
				Match:     m,
				Completed: i + 1,
				Total:     total,
				RateLimit: &status,
			}) {
				return
			}
		}

		emit(ctx, events, Event{Type: EventComplete, Matches: results})
	}()

	return events
}

// fetchWithRetry issues one rate-limited fetch and retries exactly once on a
// 429, honoring the Retry-After header when present. Any other failure, or a
// second 429, is returned to abort the batch.
func (o *Orchestrator) fetchWithRetry(ctx context.Context, platform, matchID string) (*api.Match, error) {
	if err := o.limiter.AcquireSlot(ctx); err != nil {
		return nil, err
	}
	m, err := o.fetcher.GetMatch(ctx, platform, matchID)
	if err == nil {
		return m, nil
	}

	apiErr, limited := api.IsRateLimited(err)
	if !limited {
		return nil, err
	}

	delay := constants.DefaultRetryAfter
	if apiErr.RetryAfter > 0 {
		delay = apiErr.RetryAfter
	}
	o.logger.Warn().
		Str("match_id", matchID).
		Dur("retry_after", delay).
		Msg("rate limited upstream, retrying once")

	if err := o.sleep(ctx, delay); err != nil {
		return nil, err
	}
	if err := o.limiter.AcquireSlot(ctx); err != nil {
		return nil, err
	}
	return o.fetcher.GetMatch(ctx, platform, matchID)
}

// emit delivers an event unless the caller has gone away. Returns false on
// cancellation so the loop stops issuing fetches.
func emit(ctx context.Context, events chan<- Event, e Event) bool {
	select {
	case events <- e:
		return true
	case <-ctx.Done():
		return false
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
