package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/gseier/UniRankle/ent"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/submission"
	"github.com/gseier/UniRankle/internal/decoder"
	"github.com/gseier/UniRankle/internal/game"
	"github.com/gseier/UniRankle/internal/identity"
)

// SubmissionHandler holds dependencies for scoring endpoints.
type SubmissionHandler struct {
	Database *ent.Client
}

// SubmitRequest is the player's final ordering for a day.
type SubmitRequest struct {
	DateKey string   `json:"date_key"`
	Order   []string `json:"order"`
}

// SubmitResponse reports the score together with the day's running
// aggregate, so the client can render the result screen from one call.
type SubmitResponse struct {
	Score            int     `json:"score"`
	MaxPossibleScore int     `json:"max_possible_score"`
	AlreadyPlayed    bool    `json:"already_played"`
	AverageScore     float64 `json:"average_score"`
	SubmissionsCount int     `json:"submissions_count"`
}

// PlayedResponse answers "has this browser played this day yet".
type PlayedResponse struct {
	AlreadyPlayed bool `json:"already_played"`
	PreviousScore *int `json:"previous_score,omitempty"`
}

// SubmitOrder validates and scores a submitted ordering. The first
// submission per (player, day) wins; a repeat attempt is not an error, it
// returns the stored score with already_played set.
func (h *SubmissionHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {

	userID := identity.Ensure(w, r)

	var req SubmitRequest
	err := decoder.DecodeJSONBody(w, r, &req)
	if err != nil {
		log.Printf("Failed to decode submission request: %v", err)
		return
	}

	if !game.ValidDateKey(req.DateKey) {
		http.Error(w, "date_key must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	g, err := h.Database.DailyGame.
		Query().
		Where(dailygame.DateKeyEQ(req.DateKey)).
		WithEntries(func(q *ent.GameEntryQuery) { q.WithUniversity() }).
		Only(r.Context())

	if err != nil {
		if ent.IsNotFound(err) {
			http.Error(w, "No daily game exists for that date", http.StatusNotFound)
			return
		}
		log.Printf("Failed to load game for %s: %v", req.DateKey, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if len(g.Edges.Entries) != game.ChallengeSize {
		log.Printf("Game %s has %d entries, want %d", g.DateKey, len(g.Edges.Entries), game.ChallengeSize)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	submitted := make([]uuid.UUID, 0, len(req.Order))
	for _, raw := range req.Order {
		id, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "Order contains a malformed university id", http.StatusBadRequest)
			return
		}
		submitted = append(submitted, id)
	}

	unis := make([]game.University, len(g.Edges.Entries))
	gameIDs := make([]uuid.UUID, len(g.Edges.Entries))
	for i, e := range g.Edges.Entries {
		u := e.Edges.University
		unis[i] = game.University{
			ID:           u.ID,
			Name:         u.Name,
			Ranking:      u.Ranking,
			StudentCount: u.StudentCount,
			FoundedYear:  u.FoundedYear,
			CampusArea:   u.CampusArea,
		}
		gameIDs[i] = u.ID
	}

	if err := game.ValidateOrder(submitted, gameIDs); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	metric, err := game.ParseMetric(string(g.RankingBy))
	if err != nil {
		log.Printf("Game %s has unknown metric %q", g.DateKey, g.RankingBy)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	score := game.Score(submitted, metric.TrueOrder(unis))
	alreadyPlayed := false

	// Insert directly and let the (user, game) unique index arbitrate; two
	// near-simultaneous submits cannot both land.
	_, err = h.Database.Submission.
		Create().
		SetUserID(userID).
		SetGameID(g.ID).
		SetScore(score).
		SetFinalOrder(req.Order).
		Save(r.Context())

	if ent.IsConstraintError(err) {
		prev, qerr := h.Database.Submission.
			Query().
			Where(
				submission.UserIDEQ(userID),
				submission.HasGameWith(dailygame.ID(g.ID)),
			).
			Only(r.Context())
		if qerr != nil {
			log.Printf("Failed to load existing submission: %v", qerr)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		// First submission wins: report the stored score, not today's.
		score = prev.Score
		alreadyPlayed = true
	} else if err != nil {
		log.Printf("Failed to record submission: %v", err)
		http.Error(w, "Failed to record submission", http.StatusInternalServerError)
		return
	}

	stats, err := h.dayStats(r, g.ID)
	if err != nil {
		log.Printf("Failed to aggregate scores for %s: %v", g.DateKey, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SubmitResponse{
		Score:            score,
		MaxPossibleScore: game.MaxScore,
		AlreadyPlayed:    alreadyPlayed,
		AverageScore:     stats.Average,
		SubmissionsCount: stats.Total,
	})
}

// CheckPlayed reports whether the caller already submitted for a day.
// Callers without an identity cookie trivially have not played.
func (h *SubmissionHandler) CheckPlayed(w http.ResponseWriter, r *http.Request) {

	dateKey := r.URL.Query().Get("dateKey")
	if dateKey == "" {
		dateKey = game.TodayKey()
	} else if !game.ValidDateKey(dateKey) {
		http.Error(w, "dateKey must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	userID, err := identity.FromRequest(r)
	if err != nil {
		json.NewEncoder(w).Encode(PlayedResponse{AlreadyPlayed: false})
		return
	}

	prev, err := h.Database.Submission.
		Query().
		Where(
			submission.UserIDEQ(userID),
			submission.HasGameWith(dailygame.DateKeyEQ(dateKey)),
		).
		Only(r.Context())

	if err != nil {
		if ent.IsNotFound(err) {
			json.NewEncoder(w).Encode(PlayedResponse{AlreadyPlayed: false})
			return
		}
		log.Printf("Failed to check submission for %s: %v", dateKey, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(PlayedResponse{AlreadyPlayed: true, PreviousScore: &prev.Score})
}

// dayStats aggregates all submission scores for one game.
func (h *SubmissionHandler) dayStats(r *http.Request, gameID uuid.UUID) (game.Stats, error) {
	rows, err := h.Database.Submission.
		Query().
		Where(submission.HasGameWith(dailygame.ID(gameID))).
		All(r.Context())
	if err != nil {
		return game.Stats{}, err
	}
	scores := make([]int, len(rows))
	for i, s := range rows {
		scores[i] = s.Score
	}
	return game.Aggregate(scores), nil
}
