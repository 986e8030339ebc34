package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"rift-rewind/internal/ai"
	"rift-rewind/internal/api"
	"rift-rewind/internal/constants"
	"rift-rewind/internal/domain"
	"rift-rewind/internal/fetch"
	"rift-rewind/internal/ratelimit"
	"rift-rewind/internal/stats"
)

// Narrator produces the playstyle analysis for a season of match overviews.
type Narrator interface {
	AnalyzeSeason(ctx context.Context, months []stats.MonthlyOverview) (*ai.QueryResponse, error)
}

// MatchLister enumerates a season's match IDs grouped by month.
type MatchLister interface {
	GetMatchIDsByMonths(ctx context.Context, platform, puuid, queueType string, year int) ([]stats.MonthBucket, error)
}

// ItemSource supplies the item catalog and name lookup for stat projection.
type ItemSource interface {
	ItemNamer(ctx context.Context, platform string) (func(int) string, map[string]api.Item, error)
}

// RewindStore is the persistence surface the generation pipeline needs.
type RewindStore interface {
	GetByKey(ctx context.Context, puuid, platform, queueType string, year int) (*domain.Rewind, error)
	Create(ctx context.Context, rw *domain.Rewind) error
	UpsertShowcase(ctx context.Context, rewindID string, sc *domain.Showcase) error
	GlobalStats(ctx context.Context, year int, queueType string) (*domain.GlobalStats, error)
}

type GenerationEventType string

const (
	EventProgress  GenerationEventType = "progress"
	EventAnalyzing GenerationEventType = "analyzing"
	EventSaving    GenerationEventType = "saving"
	EventComplete  GenerationEventType = "complete"
	EventError     GenerationEventType = "error"
)

// GenerationEvent is streamed to the client while a rewind is built. Stage
// on error events tells the UI which phase failed: fetch, generate, or save.
type GenerationEvent struct {
	Type      GenerationEventType `json:"type"`
	Match     *api.Match          `json:"match,omitempty"`
	Completed int                 `json:"completed,omitempty"`
	Total     int                 `json:"total,omitempty"`
	RateLimit *ratelimit.Status   `json:"rateLimit,omitempty"`
	Rewind    *domain.Rewind      `json:"rewind,omitempty"`
	Stage     string              `json:"stage,omitempty"`
	Message   string              `json:"message,omitempty"`
}

type GenerateParams struct {
	Puuid     string
	Platform  string
	QueueType string
	Year      int
}

type RewindService struct {
	matches      MatchLister
	static       ItemSource
	orchestrator *fetch.Orchestrator
	narrator     Narrator
	store        RewindStore
	logger       zerolog.Logger
}

func NewRewindService(
	matches MatchLister,
	static ItemSource,
	orchestrator *fetch.Orchestrator,
	narrator Narrator,
	store RewindStore,
	logger zerolog.Logger,
) *RewindService {
	return &RewindService{
		matches:      matches,
		static:       static,
		orchestrator: orchestrator,
		narrator:     narrator,
		store:        store,
		logger:       logger.With().Str("component", "rewind_service").Logger(),
	}
}

func (s *RewindService) Get(ctx context.Context, puuid, platform, queueType string, year int) (*domain.Rewind, error) {
	return s.store.GetByKey(ctx, puuid, platform, queueType, year)
}

func (s *RewindService) GlobalStats(ctx context.Context, year int, queueType string) (*domain.GlobalStats, error) {
	return s.store.GlobalStats(ctx, year, queueType)
}

// UpdateShowcase sets the showcased champion on an existing rewind.
func (s *RewindService) UpdateShowcase(ctx context.Context, puuid, platform, queueType string, year int, sc *domain.Showcase) (*domain.Rewind, error) {
	rw, err := s.store.GetByKey(ctx, puuid, platform, queueType, year)
	if err != nil {
		return nil, err
	}
	if err := s.store.UpsertShowcase(ctx, rw.ID, sc); err != nil {
		return nil, err
	}
	rw.Showcase = sc
	return rw, nil
}

// Generate runs the full pipeline: list a season's match IDs by month, batch
// fetch the match records, analyze and aggregate, persist, and stream
// progress throughout. Events stop on ctx cancellation; the channel always
// closes after the terminal complete or error event.
func (s *RewindService) Generate(ctx context.Context, params GenerateParams) <-chan GenerationEvent {
	events := make(chan GenerationEvent)

	go func() {
		defer close(events)

		if !api.ValidPlatform(params.Platform) {
			sendEvent(ctx, events, errorEvent("fetch", fmt.Sprintf("unknown platform %q", params.Platform)))
			return
		}
		if _, ok := QueueIDs[params.QueueType]; !ok {
			sendEvent(ctx, events, errorEvent("fetch", fmt.Sprintf("unknown queue type %q", params.QueueType)))
			return
		}

		existing, err := s.store.GetByKey(ctx, params.Puuid, params.Platform, params.QueueType, params.Year)
		if err == nil {
			sendEvent(ctx, events, GenerationEvent{Type: EventComplete, Rewind: existing})
			return
		}
		if !errors.Is(err, domain.ErrRewindNotFound) {
			sendEvent(ctx, events, errorEvent("save", err.Error()))
			return
		}

		buckets, err := s.matches.GetMatchIDsByMonths(ctx, params.Platform, params.Puuid, params.QueueType, params.Year)
		if err != nil {
			s.logger.Error().Err(err).Str("puuid", params.Puuid).Msg("listing season matches failed")
			sendEvent(ctx, events, errorEvent("fetch", err.Error()))
			return
		}
		var ids []string
		for _, b := range buckets {
			ids = append(ids, b.MatchIDs...)
		}
		if len(ids) == 0 {
			sendEvent(ctx, events, errorEvent("fetch", "no matches found for this season"))
			return
		}

		itemName, items, err := s.static.ItemNamer(ctx, params.Platform)
		if err != nil {
			sendEvent(ctx, events, errorEvent("fetch", err.Error()))
			return
		}

		var matches []api.Match
		for ev := range s.orchestrator.FetchMatches(ctx, params.Platform, ids) {
			switch ev.Type {
			case fetch.EventProgress:
				if !sendEvent(ctx, events, GenerationEvent{
					Type:      EventProgress,
					Match:     ev.Match,
					Completed: ev.Completed,
					Total:     ev.Total,
					RateLimit: ev.RateLimit,
				}) {
					return
				}
			case fetch.EventComplete:
				matches = ev.Matches
			case fetch.EventError:
				sendEvent(ctx, events, errorEvent("fetch", ev.Message))
				return
			}
		}
		if matches == nil {
			// The orchestrator closed without a terminal event: cancelled.
			return
		}

		if !sendEvent(ctx, events, GenerationEvent{Type: EventAnalyzing, Total: len(matches)}) {
			return
		}

		rewind, err := s.buildRewind(ctx, params, matches, items, itemName, buckets)
		if err != nil {
			s.logger.Error().Err(err).Str("puuid", params.Puuid).Msg("rewind generation failed")
			sendEvent(ctx, events, errorEvent("generate", err.Error()))
			return
		}

		if !sendEvent(ctx, events, GenerationEvent{Type: EventSaving}) {
			return
		}

		saveCtx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
		defer cancel()
		if err := s.store.Create(saveCtx, rewind); err != nil {
			if errors.Is(err, domain.ErrRewindExists) {
				// Lost a race with a concurrent generation; serve theirs.
				if existing, getErr := s.store.GetByKey(ctx, params.Puuid, params.Platform, params.QueueType, params.Year); getErr == nil {
					sendEvent(ctx, events, GenerationEvent{Type: EventComplete, Rewind: existing})
					return
				}
			}
			sendEvent(ctx, events, errorEvent("save", err.Error()))
			return
		}

		sendEvent(ctx, events, GenerationEvent{Type: EventComplete, Rewind: rewind})
	}()

	return events
}

func (s *RewindService) buildRewind(
	ctx context.Context,
	params GenerateParams,
	matches []api.Match,
	items map[string]api.Item,
	itemName stats.ItemNamer,
	buckets []stats.MonthBucket,
) (*domain.Rewind, error) {
	byID := make(map[string]*api.Match, len(matches))
	for i := range matches {
		byID[matches[i].Metadata.MatchID] = &matches[i]
	}
	months := stats.MonthlyOverviews(buckets, byID, params.Puuid, itemName)
	if len(months) == 0 {
		return nil, fmt.Errorf("no usable match data for player")
	}

	narrativeCtx, cancel := context.WithTimeout(ctx, constants.NarrativeTimeout)
	defer cancel()
	analysis, err := s.narrator.AnalyzeSeason(narrativeCtx, months)
	if err != nil {
		return nil, fmt.Errorf("season analysis: %w", err)
	}

	summary := stats.SummarizeSeason(matches, params.Puuid, items)
	highlights := stats.DetectHighlights(matches, params.Puuid)
	if len(highlights) > constants.HighlightDisplayLimit {
		highlights = highlights[:constants.HighlightDisplayLimit]
	}
	achievements := stats.GenerateAchievements(matches, params.Puuid)

	rewind := &domain.Rewind{
		Puuid:                  params.Puuid,
		Platform:               params.Platform,
		QueueType:              params.QueueType,
		Year:                   params.Year,
		FavoriteLane:           summary.FavoriteLane,
		FavoriteChampion:       summary.FavoriteChampion,
		FavoriteItem:           summary.FavoriteItem,
		FavoriteStarter:        summary.FavoriteStarter,
		HighestWinrateChampion: summary.HighestWinrateChampion,
		NemesisChampion:        summary.NemesisChampion,
		BullyChampion:          summary.BullyChampion,
		Playstyle: &domain.Playstyle{
			Type:   analysis.Playstyle.Type,
			Reason: analysis.Playstyle.Reason,
		},
		Highlights:   highlights,
		Achievements: achievements,
	}
	for _, st := range analysis.Strengths {
		rewind.GameplayElements = append(rewind.GameplayElements, domain.GameplayElement{
			Type: st.Type, Form: "strength", Reason: st.Reason,
		})
	}
	for _, wk := range analysis.Weaknesses {
		rewind.GameplayElements = append(rewind.GameplayElements, domain.GameplayElement{
			Type: wk.Type, Form: "weakness", Reason: wk.Reason,
		})
	}
	for _, ad := range analysis.Advice {
		rewind.Advice = append(rewind.Advice, domain.Advice{Type: ad.Type, Reason: ad.Reason})
	}
	return rewind, nil
}

func errorEvent(stage, message string) GenerationEvent {
	return GenerationEvent{Type: EventError, Stage: stage, Message: message}
}

func sendEvent(ctx context.Context, events chan<- GenerationEvent, e GenerationEvent) bool {
	select {
	case events <- e:
		return true
	case <-ctx.Done():
		return false
	}
}
