package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"rift-rewind/internal/api"
	"rift-rewind/internal/constants"
	"rift-rewind/internal/domain"
	"rift-rewind/internal/service"
	"rift-rewind/internal/stats"
)

// The handler depends on narrow interfaces rather than the concrete services
// so tests can stand in fakes.

type PlayerAPI interface {
	GetAccount(ctx context.Context, platform, gameName, tagLine string) (*api.Account, error)
	GetSummoner(ctx context.Context, platform, puuid string) (*api.Summoner, error)
	GetRanks(ctx context.Context, platform, puuid string) ([]api.LeagueEntry, error)
}

type MatchAPI interface {
	GetMatch(ctx context.Context, platform, matchID string) (*api.Match, error)
	GetTimeline(ctx context.Context, platform, matchID string) (*api.MatchTimeline, error)
	GetMatchIDs(ctx context.Context, platform, puuid string, opts api.MatchIDsOptions) ([]string, error)
	GetMatchIDsByMonths(ctx context.Context, platform, puuid, queueType string, year int) ([]stats.MonthBucket, error)
}

type StaticAPI interface {
	GetAll(ctx context.Context, platform string) (*service.StaticData, error)
}

type RewindAPI interface {
	Get(ctx context.Context, puuid, platform, queueType string, year int) (*domain.Rewind, error)
	GlobalStats(ctx context.Context, year int, queueType string) (*domain.GlobalStats, error)
	UpdateShowcase(ctx context.Context, puuid, platform, queueType string, year int, sc *domain.Showcase) (*domain.Rewind, error)
	Generate(ctx context.Context, params service.GenerateParams) <-chan service.GenerationEvent
}

type Handler struct {
	players PlayerAPI
	matches MatchAPI
	static  StaticAPI
	rewinds RewindAPI
	db      *sql.DB
	logger  zerolog.Logger
}

func NewHandler(players PlayerAPI, matches MatchAPI, static StaticAPI, rewinds RewindAPI, db *sql.DB, logger zerolog.Logger) *Handler {
	return &Handler{
		players: players,
		matches: matches,
		static:  static,
		rewinds: rewinds,
		db:      db,
		logger:  logger.With().Str("component", "server").Logger(),
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), constants.DatabaseTimeout)
	defer cancel()
	if err := h.db.PingContext(ctx); err != nil {
		writeError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (h *Handler) getAccount(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")
	if !api.ValidPlatform(platform) {
		writeError(w, http.StatusBadRequest, "unknown platform")
		return
	}
	account, err := h.players.GetAccount(r.Context(), platform, chi.URLParam(r, "name"), chi.URLParam(r, "tag"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (h *Handler) getSummoner(w http.ResponseWriter, r *http.Request) {
	summoner, err := h.players.GetSummoner(r.Context(), chi.URLParam(r, "platform"), chi.URLParam(r, "puuid"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summoner)
}

func (h *Handler) getRanks(w http.ResponseWriter, r *http.Request) {
	ranks, err := h.players.GetRanks(r.Context(), chi.URLParam(r, "platform"), chi.URLParam(r, "puuid"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ranks)
}

func (h *Handler) getMatchIDs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := api.MatchIDsOptions{
		Start: queryInt(q.Get("start"), 0),
		Count: queryInt(q.Get("count"), 20),
		Queue: queryInt(q.Get("queue"), 0),
	}
	ids, err := h.matches.GetMatchIDs(r.Context(), chi.URLParam(r, "platform"), chi.URLParam(r, "puuid"), opts)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ids)
}

func (h *Handler) getMatch(w http.ResponseWriter, r *http.Request) {
	m, err := h.matches.GetMatch(r.Context(), chi.URLParam(r, "platform"), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (h *Handler) getTimeline(w http.ResponseWriter, r *http.Request) {
	tl, err := h.matches.GetTimeline(r.Context(), chi.URLParam(r, "platform"), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tl)
}

func (h *Handler) getStatic(w http.ResponseWriter, r *http.Request) {
	data, err := h.static.GetAll(r.Context(), chi.URLParam(r, "platform"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, data)
}

// rewindKey pulls the (queue, year) pair every rewind endpoint shares.
func rewindKey(r *http.Request) (queueType string, year int) {
	q := r.URL.Query()
	queueType = q.Get("queue")
	if queueType == "" {
		queueType = "RANKED_SOLO_5x5"
	}
	year = queryInt(q.Get("year"), time.Now().UTC().Year())
	return queueType, year
}

func (h *Handler) getRewind(w http.ResponseWriter, r *http.Request) {
	queueType, year := rewindKey(r)
	rw, err := h.rewinds.Get(r.Context(), chi.URLParam(r, "puuid"), chi.URLParam(r, "platform"), queueType, year)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rw)
}

func (h *Handler) getGlobalStats(w http.ResponseWriter, r *http.Request) {
	queueType, year := rewindKey(r)
	gs, err := h.rewinds.GlobalStats(r.Context(), year, queueType)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	if gs == nil {
		writeError(w, http.StatusNotFound, "no rewinds generated yet")
		return
	}
	writeJSON(w, http.StatusOK, gs)
}

type showcaseRequest struct {
	Champion string `json:"champion"`
	SkinNum  int    `json:"skinNum"`
}

func (h *Handler) putShowcase(w http.ResponseWriter, r *http.Request) {
	var req showcaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Champion == "" {
		writeError(w, http.StatusBadRequest, "champion is required")
		return
	}
	queueType, year := rewindKey(r)
	rw, err := h.rewinds.UpdateShowcase(r.Context(),
		chi.URLParam(r, "puuid"), chi.URLParam(r, "platform"), queueType, year,
		&domain.Showcase{Champion: req.Champion, SkinNum: req.SkinNum})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rw)
}

// generateRewind streams the generation pipeline over SSE. The client drops
// the connection to cancel; request context cancellation stops the fetch
// loop before the next upstream call.
func (h *Handler) generateRewind(w http.ResponseWriter, r *http.Request) {
	platform := chi.URLParam(r, "platform")
	puuid := chi.URLParam(r, "puuid")
	queueType, year := rewindKey(r)

	sse, err := newSSEWriter(w)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constants.GenerateTimeout)
	defer cancel()

	events := h.rewinds.Generate(ctx, service.GenerateParams{
		Puuid:     puuid,
		Platform:  platform,
		QueueType: queueType,
		Year:      year,
	})
	for ev := range events {
		if err := sse.Send(string(ev.Type), ev); err != nil {
			h.logger.Debug().Err(err).Msg("client disconnected during generation")
			cancel()
			// Drain so the producer goroutine can finish and close.
			for range events {
			}
			return
		}
	}
}

func queryInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return fallback
}
