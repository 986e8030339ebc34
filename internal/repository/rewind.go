package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"

	"rift-rewind/internal/domain"
)

type RewindRepository struct {
	db     *sql.DB
	logger zerolog.Logger
}

func NewRewindRepository(sqlDB *sql.DB, logger zerolog.Logger) *RewindRepository {
	return &RewindRepository{
		db:     sqlDB,
		logger: logger.With().Str("component", "repository").Logger(),
	}
}

// GetByKey loads a full rewind by its natural key. Returns
// domain.ErrRewindNotFound when no row exists.
func (r *RewindRepository) GetByKey(ctx context.Context, puuid, platform, queueType string, year int) (*domain.Rewind, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, puuid, platform, queue_type, year,
		       favorite_lane, favorite_champion, favorite_item, favorite_starter,
		       highest_winrate_champion, nemesis_champion, bully_champion,
		       created_at, updated_at
		FROM rewinds
		WHERE puuid = ? AND platform = ? AND queue_type = ? AND year = ?`,
		puuid, platform, queueType, year)

	var rw domain.Rewind
	err := row.Scan(&rw.ID, &rw.Puuid, &rw.Platform, &rw.QueueType, &rw.Year,
		&rw.FavoriteLane, &rw.FavoriteChampion, &rw.FavoriteItem, &rw.FavoriteStarter,
		&rw.HighestWinrateChampion, &rw.NemesisChampion, &rw.BullyChampion,
		&rw.CreatedAt, &rw.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRewindNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading rewind: %w", err)
	}

	if err := r.loadChildren(ctx, &rw); err != nil {
		return nil, err
	}
	return &rw, nil
}

func (r *RewindRepository) loadChildren(ctx context.Context, rw *domain.Rewind) error {
	row := r.db.QueryRowContext(ctx,
		`SELECT type, reason FROM rewind_playstyles WHERE rewind_id = ?`, rw.ID)
	var ps domain.Playstyle
	switch err := row.Scan(&ps.Type, &ps.Reason); {
	case err == nil:
		rw.Playstyle = &ps
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("loading playstyle: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, type, form, reason FROM rewind_gameplay_elements WHERE rewind_id = ? ORDER BY id`, rw.ID)
	if err != nil {
		return fmt.Errorf("loading gameplay elements: %w", err)
	}
	defer rows.Close()
	rw.GameplayElements = []domain.GameplayElement{}
	for rows.Next() {
		var e domain.GameplayElement
		if err := rows.Scan(&e.ID, &e.Type, &e.Form, &e.Reason); err != nil {
			return err
		}
		rw.GameplayElements = append(rw.GameplayElements, e)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	adviceRows, err := r.db.QueryContext(ctx,
		`SELECT id, type, reason FROM rewind_advice WHERE rewind_id = ? ORDER BY id`, rw.ID)
	if err != nil {
		return fmt.Errorf("loading advice: %w", err)
	}
	defer adviceRows.Close()
	rw.Advice = []domain.Advice{}
	for adviceRows.Next() {
		var a domain.Advice
		if err := adviceRows.Scan(&a.ID, &a.Type, &a.Reason); err != nil {
			return err
		}
		rw.Advice = append(rw.Advice, a)
	}
	if err := adviceRows.Err(); err != nil {
		return err
	}

	hlRows, err := r.db.QueryContext(ctx, `
		SELECT id, type, match_id, title, description, badge, rarity, stats_json
		FROM rewind_highlights WHERE rewind_id = ? ORDER BY id`, rw.ID)
	if err != nil {
		return fmt.Errorf("loading highlights: %w", err)
	}
	defer hlRows.Close()
	rw.Highlights = []domain.Highlight{}
	for hlRows.Next() {
		var h domain.Highlight
		if err := hlRows.Scan(&h.ID, &h.Type, &h.MatchID, &h.Title, &h.Description, &h.Badge, &h.Rarity, &h.StatsJSON); err != nil {
			return err
		}
		rw.Highlights = append(rw.Highlights, h)
	}
	if err := hlRows.Err(); err != nil {
		return err
	}

	achRows, err := r.db.QueryContext(ctx, `
		SELECT id, type, title, description, icon, rarity, unlocked, progress, total
		FROM rewind_achievements WHERE rewind_id = ? ORDER BY id`, rw.ID)
	if err != nil {
		return fmt.Errorf("loading achievements: %w", err)
	}
	defer achRows.Close()
	rw.Achievements = []domain.Achievement{}
	for achRows.Next() {
		var a domain.Achievement
		if err := achRows.Scan(&a.ID, &a.Type, &a.Title, &a.Description, &a.Icon, &a.Rarity, &a.Unlocked, &a.Progress, &a.Total); err != nil {
			return err
		}
		rw.Achievements = append(rw.Achievements, a)
	}
	if err := achRows.Err(); err != nil {
		return err
	}

	scRow := r.db.QueryRowContext(ctx,
		`SELECT champion, skin_num, updated_at FROM rewind_showcases WHERE rewind_id = ?`, rw.ID)
	var sc domain.Showcase
	switch err := scRow.Scan(&sc.Champion, &sc.SkinNum, &sc.UpdatedAt); {
	case err == nil:
		rw.Showcase = &sc
	case !errors.Is(err, sql.ErrNoRows):
		return fmt.Errorf("loading showcase: %w", err)
	}

	return nil
}

// Create persists a freshly generated rewind and its nested collections in
// one transaction. The unique (puuid, platform, queue_type, year) constraint
// maps to domain.ErrRewindExists.
func (r *RewindRepository) Create(ctx context.Context, rw *domain.Rewind) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	if rw.ID == "" {
		id, err := gonanoid.New()
		if err != nil {
			return err
		}
		rw.ID = id
	}
	rw.CreatedAt = now
	rw.UpdatedAt = now

	_, err = tx.ExecContext(ctx, `
		INSERT INTO rewinds (id, puuid, platform, queue_type, year,
			favorite_lane, favorite_champion, favorite_item, favorite_starter,
			highest_winrate_champion, nemesis_champion, bully_champion,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rw.ID, rw.Puuid, rw.Platform, rw.QueueType, rw.Year,
		rw.FavoriteLane, rw.FavoriteChampion, rw.FavoriteItem, rw.FavoriteStarter,
		rw.HighestWinrateChampion, rw.NemesisChampion, rw.BullyChampion,
		rw.CreatedAt, rw.UpdatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return domain.ErrRewindExists
		}
		return fmt.Errorf("inserting rewind: %w", err)
	}

	if rw.Playstyle != nil {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO rewind_playstyles (rewind_id, type, reason) VALUES (?, ?, ?)`,
			rw.ID, rw.Playstyle.Type, rw.Playstyle.Reason)
		if err != nil {
			return fmt.Errorf("inserting playstyle: %w", err)
		}
	}

	for i := range rw.GameplayElements {
		e := &rw.GameplayElements[i]
		if e.ID == "" {
			if e.ID, err = gonanoid.New(); err != nil {
				return err
			}
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO rewind_gameplay_elements (id, rewind_id, type, form, reason) VALUES (?, ?, ?, ?, ?)`,
			e.ID, rw.ID, e.Type, e.Form, e.Reason)
		if err != nil {
			return fmt.Errorf("inserting gameplay element: %w", err)
		}
	}

	for i := range rw.Advice {
		a := &rw.Advice[i]
		if a.ID == "" {
			if a.ID, err = gonanoid.New(); err != nil {
				return err
			}
		}
		_, err = tx.ExecContext(ctx,
			`INSERT INTO rewind_advice (id, rewind_id, type, reason) VALUES (?, ?, ?, ?)`,
			a.ID, rw.ID, a.Type, a.Reason)
		if err != nil {
			return fmt.Errorf("inserting advice: %w", err)
		}
	}

	for i := range rw.Highlights {
		h := &rw.Highlights[i]
		if h.ID == "" {
			if h.ID, err = gonanoid.New(); err != nil {
				return err
			}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO rewind_highlights (id, rewind_id, type, match_id, title, description, badge, rarity, stats_json)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			h.ID, rw.ID, h.Type, h.MatchID, h.Title, h.Description, h.Badge, h.Rarity, h.StatsJSON)
		if err != nil {
			return fmt.Errorf("inserting highlight: %w", err)
		}
	}

	for i := range rw.Achievements {
		a := &rw.Achievements[i]
		if a.ID == "" {
			if a.ID, err = gonanoid.New(); err != nil {
				return err
			}
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO rewind_achievements (id, rewind_id, type, title, description, icon, rarity, unlocked, progress, total)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, rw.ID, a.Type, a.Title, a.Description, a.Icon, a.Rarity, a.Unlocked, a.Progress, a.Total)
		if err != nil {
			return fmt.Errorf("inserting achievement: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rewind: %w", err)
	}

	r.logger.Info().
		Str("rewind_id", rw.ID).
		Str("puuid", rw.Puuid).
		Str("platform", rw.Platform).
		Int("year", rw.Year).
		Msg("rewind saved")
	return nil
}

// UpsertShowcase sets or replaces the showcased champion on an existing
// rewind.
func (r *RewindRepository) UpsertShowcase(ctx context.Context, rewindID string, sc *domain.Showcase) error {
	sc.UpdatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO rewind_showcases (rewind_id, champion, skin_num, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (rewind_id) DO UPDATE SET
			champion = excluded.champion,
			skin_num = excluded.skin_num,
			updated_at = excluded.updated_at`,
		rewindID, sc.Champion, sc.SkinNum, sc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upserting showcase: %w", err)
	}
	return nil
}

// GlobalStats aggregates favorite-attribute frequencies across all rewinds
// for one (year, queue type). Returns nil when no rewinds exist yet.
func (r *RewindRepository) GlobalStats(ctx context.Context, year int, queueType string) (*domain.GlobalStats, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT favorite_champion, favorite_lane, favorite_item, favorite_starter,
		       highest_winrate_champion, nemesis_champion, bully_champion
		FROM rewinds
		WHERE year = ? AND queue_type = ?`, year, queueType)
	if err != nil {
		return nil, fmt.Errorf("querying global stats: %w", err)
	}
	defer rows.Close()

	gs := &domain.GlobalStats{
		FavoriteChampion:       make(map[string]int),
		FavoriteLane:           make(map[string]int),
		FavoriteItem:           make(map[string]int),
		FavoriteStarter:        make(map[string]int),
		HighestWinrateChampion: make(map[string]int),
		NemesisChampion:        make(map[string]int),
		BullyChampion:          make(map[string]int),
	}
	for rows.Next() {
		var champ, lane, item, starter, winrate, nemesis, bully string
		if err := rows.Scan(&champ, &lane, &item, &starter, &winrate, &nemesis, &bully); err != nil {
			return nil, err
		}
		gs.TotalCount++
		bump(gs.FavoriteChampion, champ)
		bump(gs.FavoriteLane, lane)
		bump(gs.FavoriteItem, item)
		bump(gs.FavoriteStarter, starter)
		bump(gs.HighestWinrateChampion, winrate)
		bump(gs.NemesisChampion, nemesis)
		bump(gs.BullyChampion, bully)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if gs.TotalCount == 0 {
		return nil, nil
	}
	return gs, nil
}

func bump(m map[string]int, key string) {
	if key != "" {
		m[key]++
	}
}
