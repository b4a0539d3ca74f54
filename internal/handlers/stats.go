package handler

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gseier/UniRankle/ent"
	"github.com/gseier/UniRankle/ent/dailygame"
	"github.com/gseier/UniRankle/ent/submission"
	"github.com/gseier/UniRankle/internal/game"
	"github.com/gseier/UniRankle/internal/identity"
)

const defaultHistoryLimit = 30

// StatsHandler holds dependencies for the read-only aggregate endpoints.
// Everything here is side-effect free and safe to hammer.
type StatsHandler struct {
	Database *ent.Client
}

// UserStatsResponse summarizes one player's lifetime results.
type UserStatsResponse struct {
	TotalGames   int                    `json:"total_games"`
	AverageScore float64                `json:"average_score"`
	Distribution [game.MaxScore + 1]int `json:"distribution"`
}

// HistoryEntry is one past result in a player's history.
type HistoryEntry struct {
	DateKey string `json:"date_key"`
	Score   int    `json:"score"`
}

// HistoryResponse lists a player's most recent submissions, newest first.
type HistoryResponse struct {
	Submissions []HistoryEntry `json:"submissions"`
}

// DailyStats returns the aggregate for one day's game. A day nobody has
// generated yet reads as zero submissions, not as an error.
func (h *StatsHandler) DailyStats(w http.ResponseWriter, r *http.Request) {

	dateKey := r.URL.Query().Get("dateKey")
	if dateKey == "" {
		dateKey = game.TodayKey()
	} else if !game.ValidDateKey(dateKey) {
		http.Error(w, "dateKey must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	rows, err := h.Database.Submission.
		Query().
		Where(submission.HasGameWith(dailygame.DateKeyEQ(dateKey))).
		All(r.Context())

	if err != nil {
		log.Printf("Failed to aggregate scores for %s: %v", dateKey, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	scores := make([]int, len(rows))
	for i, s := range rows {
		scores[i] = s.Score
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(game.Aggregate(scores))
}

// UserStats returns the caller's all-time aggregate across every day they
// played. A cookieless caller has an empty record by definition.
func (h *StatsHandler) UserStats(w http.ResponseWriter, r *http.Request) {

	w.Header().Set("Content-Type", "application/json")

	userID, err := identity.FromRequest(r)
	if err != nil {
		json.NewEncoder(w).Encode(UserStatsResponse{})
		return
	}

	rows, err := h.Database.Submission.
		Query().
		Where(submission.UserIDEQ(userID)).
		All(r.Context())

	if err != nil {
		log.Printf("Failed to aggregate user scores: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	scores := make([]int, len(rows))
	for i, s := range rows {
		scores[i] = s.Score
	}
	stats := game.Aggregate(scores)

	json.NewEncoder(w).Encode(UserStatsResponse{
		TotalGames:   stats.Total,
		AverageScore: stats.Average,
		Distribution: stats.Distribution,
	})
}

// UserHistory lists the caller's recent results, newest first.
func (h *StatsHandler) UserHistory(w http.ResponseWriter, r *http.Request) {

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			http.Error(w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = n
	}

	w.Header().Set("Content-Type", "application/json")

	userID, err := identity.FromRequest(r)
	if err != nil {
		json.NewEncoder(w).Encode(HistoryResponse{Submissions: []HistoryEntry{}})
		return
	}

	rows, err := h.Database.Submission.
		Query().
		Where(submission.UserIDEQ(userID)).
		WithGame().
		Order(ent.Desc(submission.FieldCreatedAt)).
		Limit(limit).
		All(r.Context())

	if err != nil {
		log.Printf("Failed to load user history: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	resp := HistoryResponse{Submissions: make([]HistoryEntry, 0, len(rows))}
	for _, s := range rows {
		if s.Edges.Game == nil {
			continue
		}
		resp.Submissions = append(resp.Submissions, HistoryEntry{
			DateKey: s.Edges.Game.DateKey,
			Score:   s.Score,
		})
	}

	json.NewEncoder(w).Encode(resp)
}
