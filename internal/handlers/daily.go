package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gseier/UniRankle/ent"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/gameentry"
	"github.com/gseier/UniRankle/internal/decoder"
	"github.com/gseier/UniRankle/internal/game"
	"github.com/gseier/UniRankle/internal/identity"
	auth_middleware "github.com/gseier/UniRankle/internal/middleware"
)

// DailyHandler holds dependencies for the daily game endpoints.
type DailyHandler struct {
	Database *ent.Client
}

// DailyUniversity is one university as shown to the player.
type DailyUniversity struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Country      string  `json:"country"`
	ImageURL     string  `json:"image_url"`
	Ranking      int     `json:"ranking"`
	StudentCount int     `json:"student_count"`
	FoundedYear  int     `json:"founded_year"`
	CampusArea   float64 `json:"campus_area"`
}

// DailyResponse is the shape of today's game.
type DailyResponse struct {
	DateKey      string            `json:"date_key"`
	RankingBy    string            `json:"ranking_by"`
	Universities []DailyUniversity `json:"universities"`
}

// PrewarmRequest names a date to generate ahead of time.
type PrewarmRequest struct {
	DateKey string `json:"date_key"`
}

// GetDaily returns the game for the requested day, generating it on first
// access. The client may pass its local calendar day as ?dateKey=; otherwise
// the server's UTC day is used.
func (h *DailyHandler) GetDaily(w http.ResponseWriter, r *http.Request) {

	dateKey := r.URL.Query().Get("dateKey")
	if dateKey == "" {
		dateKey = game.TodayKey()
	} else if !game.ValidDateKey(dateKey) {
		http.Error(w, "dateKey must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	// First contact is the moment the player gets their durable identity.
	identity.Ensure(w, r)

	g, err := h.ensureDailyGame(r.Context(), dateKey)
	if errors.Is(err, game.ErrCatalogTooSmall) {
		log.Printf("Cannot generate game for %s: %v", dateKey, err)
		http.Error(w, "University catalog is too small to generate a game", http.StatusInternalServerError)
		return
	}
	if err != nil {
		log.Printf("Failed to ensure daily game for %s: %v", dateKey, err)
		http.Error(w, "Failed to load daily game", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dailyResponseOf(g))
}

// Prewarm generates the game for a given date ahead of its first visitor.
// This is the externally-triggered warm-up call; there is no timer in the
// server itself.
func (h *DailyHandler) Prewarm(w http.ResponseWriter, r *http.Request) {

	claims, ok := auth_middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user claims", http.StatusInternalServerError)
		return
	}
	if claims.Role != "admin" {
		http.Error(w, "Forbidden: This action requires admin privileges", http.StatusForbidden)
		return
	}

	var req PrewarmRequest
	err := decoder.DecodeJSONBody(w, r, &req)
	if err != nil {
		log.Printf("Failed to decode prewarm request: %v", err)
		return
	}
	if !game.ValidDateKey(req.DateKey) {
		http.Error(w, "date_key must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	g, err := h.ensureDailyGame(r.Context(), req.DateKey)
	if err != nil {
		log.Printf("Failed to prewarm game for %s: %v", req.DateKey, err)
		http.Error(w, "Failed to generate daily game", http.StatusInternalServerError)
		return
	}

	log.Printf("Game ready for %s (ranking by %s)", g.DateKey, g.RankingBy)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dailyResponseOf(g))
}

// ensureDailyGame returns the persisted game for dateKey, creating it when
// absent. Selection is deterministic from the date key, and the date_key
// unique constraint decides concurrent first visits: the loser's insert
// fails after the winner commits, and the loser re-reads the winner's row.
// No read-then-write window exists.
func (h *DailyHandler) ensureDailyGame(ctx context.Context, dateKey string) (*ent.DailyGame, error) {
	existing, err := h.queryGame(ctx, dateKey)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}
	if existing != nil && len(existing.Edges.Entries) == game.ChallengeSize {
		return existing, nil
	}

	catalog, err := h.Database.University.Query().IDs(ctx)
	if err != nil {
		return nil, err
	}
	metric, picked, err := game.PickDaily(dateKey, catalog)
	if err != nil {
		return nil, err
	}

	tx, err := h.Database.Tx(ctx)
	if err != nil {
		return nil, err
	}

	gameRow := existing
	if gameRow == nil {
		gameRow, err = tx.DailyGame.
			Create().
			SetDateKey(dateKey).
			SetRankingBy(dailygame.RankingBy(metric.String())).
			Save(ctx)
		if err != nil {
			tx.Rollback()
			if ent.IsConstraintError(err) {
				// Lost the race. The winner created game and entries in one
				// transaction, so its row is already complete.
				return h.queryGame(ctx, dateKey)
			}
			return nil, err
		}
	} else {
		// A row without its full complement of entries (crash between game
		// and entry writes under an older writer). Keep its metric, clear
		// the partial entries and reseed.
		_, err = tx.GameEntry.
			Delete().
			Where(gameentry.HasGameWith(dailygame.ID(gameRow.ID))).
			Exec(ctx)
		if err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	bulk := make([]*ent.GameEntryCreate, len(picked))
	for i, universityID := range picked {
		bulk[i] = tx.GameEntry.
			Create().
			SetGameID(gameRow.ID).
			SetUniversityID(universityID).
			SetPosition(i)
	}
	if _, err := tx.GameEntry.CreateBulk(bulk...).Save(ctx); err != nil {
		tx.Rollback()
		if ent.IsConstraintError(err) {
			return h.queryGame(ctx, dateKey)
		}
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return h.queryGame(ctx, dateKey)
}

// queryGame loads a game with its entries and their universities, in
// sampling order.
func (h *DailyHandler) queryGame(ctx context.Context, dateKey string) (*ent.DailyGame, error) {
	return h.Database.DailyGame.
		Query().
		Where(dailygame.DateKeyEQ(dateKey)).
		WithEntries(func(q *ent.GameEntryQuery) {
			q.WithUniversity().Order(ent.Asc(gameentry.FieldPosition))
		}).
		Only(ctx)
}

func dailyResponseOf(g *ent.DailyGame) DailyResponse {
	resp := DailyResponse{
		DateKey:      g.DateKey,
		RankingBy:    string(g.RankingBy),
		Universities: make([]DailyUniversity, 0, len(g.Edges.Entries)),
	}
	for _, e := range g.Edges.Entries {
		u := e.Edges.University
		resp.Universities = append(resp.Universities, DailyUniversity{
			ID:           u.ID.String(),
			Name:         u.Name,
			Country:      u.Country,
			ImageURL:     u.ImageURL,
			Ranking:      u.Ranking,
			StudentCount: u.StudentCount,
			FoundedYear:  u.FoundedYear,
			CampusArea:   u.CampusArea,
		})
	}
	return resp
}
