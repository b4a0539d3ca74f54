package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"sync"
	"time"

	"github.com/anandvarma/namegen"
)

// --- Configuration Constants ---
const (
	apiURL = "http://localhost:8080"

	// Admin configuration
	adminUsername = "admin"
	adminPassword = "admin123!"

	// Player simulation configuration
	numPlayers      = 100 // Total number of simulated browsers
	submitBatch     = 10  // Number of players submitting concurrently
	syntheticCount  = 15  // Synthetic universities added to fatten the catalog
	replayTestCount = 5   // Number of random players re-submitting at the end
)

// --- Helper Structs for API Responses ---

// LoginResponse captures the token from the /login endpoint.
type LoginResponse struct {
	Token string `json:"token"`
}

// DailyUniversity captures one university of the day's game.
type DailyUniversity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// DailyResponse captures the day's game from the /daily endpoint.
type DailyResponse struct {
	DateKey      string            `json:"date_key"`
	RankingBy    string            `json:"ranking_by"`
	Universities []DailyUniversity `json:"universities"`
}

// SubmitResponse captures the scoring result.
type SubmitResponse struct {
	Score            int     `json:"score"`
	MaxPossibleScore int     `json:"max_possible_score"`
	AlreadyPlayed    bool    `json:"already_played"`
	AverageScore     float64 `json:"average_score"`
	SubmissionsCount int     `json:"submissions_count"`
}

// StatsResponse captures the day's aggregate.
type StatsResponse struct {
	AverageScore float64 `json:"average_score"`
	Total        int     `json:"total"`
	Distribution [6]int  `json:"distribution"`
}

// Player is one simulated browser: its own cookie jar, its own identity.
type Player struct {
	Client *http.Client
	Score  int
}

// --- Main Test Execution ---

func main() {
	log.Println("--- Starting API Load Test ---")
	rand.New(rand.NewSource(time.Now().UnixNano()))

	// --- Step 1: Login as Admin ---
	// The seeder must have run; the admin grows the catalog before play.
	log.Println("🔹 [Phase 1] Admin Setup")
	adminToken := login(adminUsername, adminPassword)
	if adminToken == "" {
		log.Fatal("❌ Failed to get admin token. Aborting test.")
	}
	log.Println("✅ Admin logged in successfully.")

	// --- Step 2: Admin Adds Synthetic Universities ---
	added := addSyntheticUniversities(adminToken)
	log.Printf("✅ Admin added %d synthetic universities.\n", added)

	// --- Step 3: Fetch Today's Game ---
	// The first visit generates today's game; a second fetch must agree.
	log.Println("🔹 [Phase 2] Daily Game Generation")
	game := fetchDaily()
	again := fetchDaily()
	if game.RankingBy != again.RankingBy || len(game.Universities) != len(again.Universities) {
		log.Fatal("❌ Two fetches of the daily game disagreed.")
	}
	for i := range game.Universities {
		if game.Universities[i].ID != again.Universities[i].ID {
			log.Fatal("❌ Two fetches of the daily game selected different universities.")
		}
	}
	log.Printf("✅ Daily game for %s is stable (ranking by %s, %d universities).\n",
		game.DateKey, game.RankingBy, len(game.Universities))

	// --- Step 4: Concurrent Player Submissions ---
	log.Println("🔹 [Phase 3] Player Submissions (100 players, 10 at a time)")
	players := simulateSubmissions(game)
	log.Printf("✅ %d players submitted an ordering.\n", len(players))

	// --- Step 5: Replay Attempts ---
	// A random subset submits again; the stored score must not move.
	log.Println("🔹 [Phase 4] Replay Attempts (5 random players)")
	verifyReplays(players, game)

	// --- Step 6: Read the Aggregate ---
	log.Println("🔹 [Phase 5] Daily Statistics")
	stats := fetchStats(game.DateKey)
	if stats.Total < len(players) {
		log.Fatalf("❌ Stats report %d submissions, expected at least %d.", stats.Total, len(players))
	}
	log.Printf("✅ Day %s: %d submissions, average %.1f, distribution %v.\n",
		game.DateKey, stats.Total, stats.AverageScore, stats.Distribution)

	log.Println("\n--- ✅ Load Test Finished Successfully ---")
}

// --- Test Logic Functions ---

// addSyntheticUniversities grows the catalog with generated names so the
// daily pick has more to choose from. Conflicts with earlier runs are fine.
func addSyntheticUniversities(adminToken string) int {
	schema := []namegen.DictType{namegen.Adjectives, namegen.Colors}
	ngen := namegen.NewWithPostfixId(schema, namegen.Numeric, 4)

	added := 0
	for i := 0; i < syntheticCount; i++ {
		body, _ := json.Marshal(map[string]any{
			"name":          fmt.Sprintf("University of %s", ngen.Get()),
			"country":       "Testland",
			"image_url":     "/images/synthetic.jpg",
			"ranking":       500 + rand.Intn(500),
			"student_count": 1000 + rand.Intn(60000),
			"founded_year":  1400 + rand.Intn(600),
			"campus_area":   float64(5 + rand.Intn(500)),
		})
		req, _ := http.NewRequest("POST", apiURL+"/universities", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+adminToken)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Fatalf("❌ Add university request failed: %v", err)
		}
		if resp.StatusCode == http.StatusCreated {
			added++
		} else if resp.StatusCode != http.StatusConflict {
			log.Fatalf("❌ Add university returned status %s", resp.Status)
		}
		resp.Body.Close()
	}
	return added
}

// simulateSubmissions has every player fetch the game and submit a random
// permutation, in concurrent batches.
func simulateSubmissions(game DailyResponse) []*Player {
	players := make([]*Player, 0, numPlayers)
	var wg sync.WaitGroup
	sem := make(chan struct{}, submitBatch)
	var mu sync.Mutex

	for i := 0; i < numPlayers; i++ {
		wg.Add(1)
		sem <- struct{}{} // Acquire a slot
		go func() {
			defer wg.Done()
			defer func() { <-sem }() // Release the slot

			jar, _ := cookiejar.New(nil)
			p := &Player{Client: &http.Client{Jar: jar}}

			// Visiting /daily first mints the identity cookie.
			resp, err := p.Client.Get(apiURL + "/daily")
			if err != nil {
				log.Printf("❌ Daily fetch failed: %v", err)
				return
			}
			resp.Body.Close()

			result, ok := submit(p.Client, game.DateKey, shuffledOrder(game))
			if !ok {
				return
			}
			if result.AlreadyPlayed {
				log.Println("❌ Fresh player was reported as having already played.")
				return
			}
			p.Score = result.Score

			mu.Lock()
			players = append(players, p)
			mu.Unlock()
		}()
	}
	wg.Wait()
	return players
}

// verifyReplays re-submits for a few players and checks the score is frozen.
func verifyReplays(players []*Player, game DailyResponse) {
	for i := 0; i < replayTestCount && len(players) > 0; i++ {
		p := players[rand.Intn(len(players))]
		result, ok := submit(p.Client, game.DateKey, shuffledOrder(game))
		if !ok {
			log.Fatal("❌ Replay submission request failed.")
		}
		if !result.AlreadyPlayed {
			log.Fatal("❌ Replay was accepted as a fresh submission.")
		}
		if result.Score != p.Score {
			log.Fatalf("❌ Replay changed the stored score: %d -> %d.", p.Score, result.Score)
		}
	}
	log.Println("✅ Replays returned the original scores unchanged.")
}

// --- HTTP Helpers ---

func login(username, password string) string {
	body, _ := json.Marshal(map[string]string{"username": username, "password": password})
	resp, err := http.Post(apiURL+"/login", "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Fatalf("❌ Login request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return ""
	}
	var loginResp LoginResponse
	json.NewDecoder(resp.Body).Decode(&loginResp)
	return loginResp.Token
}

func fetchDaily() DailyResponse {
	resp, err := http.Get(apiURL + "/daily")
	if err != nil {
		log.Fatalf("❌ Daily request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("❌ Daily request returned status %s", resp.Status)
	}
	var game DailyResponse
	if err := json.NewDecoder(resp.Body).Decode(&game); err != nil {
		log.Fatalf("❌ Failed to decode daily response: %v", err)
	}
	return game
}

func fetchStats(dateKey string) StatsResponse {
	resp, err := http.Get(apiURL + "/stats?dateKey=" + dateKey)
	if err != nil {
		log.Fatalf("❌ Stats request failed: %v", err)
	}
	defer resp.Body.Close()
	var stats StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		log.Fatalf("❌ Failed to decode stats response: %v", err)
	}
	return stats
}

func submit(client *http.Client, dateKey string, order []string) (SubmitResponse, bool) {
	body, _ := json.Marshal(map[string]any{"date_key": dateKey, "order": order})
	resp, err := client.Post(apiURL+"/submissions", "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("❌ Submission request failed: %v", err)
		return SubmitResponse{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Printf("❌ Submission returned status %s", resp.Status)
		return SubmitResponse{}, false
	}
	var result SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("❌ Failed to decode submission response: %v", err)
		return SubmitResponse{}, false
	}
	return result, true
}

// shuffledOrder returns the day's university ids in a random order.
func shuffledOrder(game DailyResponse) []string {
	order := make([]string, len(game.Universities))
	for i, u := range game.Universities {
		order[i] = u.ID
	}
	rand.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	return order
}
