/*
 * main.go
 * Entry point for the UniRankle API.
 *
 * Project: UniRankle
 */

package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gseier/UniRankle/ent"

	handler "github.com/gseier/UniRankle/internal/handlers"
	auth_middleware "github.com/gseier/UniRankle/internal/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {

	/* Environmental variable loading ********************************************/

	// A local .env is a convenience; absence is fine in deployment
	_ = godotenv.Load()

	// Load jwt secret key from environment variable
	jwtSecret, ok := os.LookupEnv("JWT_SECRET_KEY")
	if !ok {
		log.Fatal("JWT_SECRET_KEY environment variable not set")
	}
	// Load database connection string from environment variable
	connStr, ok := os.LookupEnv("DB_SOURCE")
	if !ok {
		log.Fatal("DB_SOURCE environment variable not set")
	}
	port, ok := os.LookupEnv("APP_PORT")
	if !ok {
		port = "8080"
	}

	/* Database Init ************************************************************/

	// Connect to the database
	db, err := ent.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	log.Println("Successfully connected to the database!")

	/* Server and Routes Init ***************************************************/

	r := chi.NewRouter()
	r.Use(auth_middleware.Telemetry)

	// Initialize handlers with dependencies
	userHandler := &handler.UserHandler{
		Database:  db,
		JWTSecret: []byte(jwtSecret),
	}

	dailyHandler := &handler.DailyHandler{
		Database: db,
	}

	submissionHandler := &handler.SubmissionHandler{
		Database: db,
	}

	statsHandler := &handler.StatsHandler{
		Database: db,
	}

	universityHandler := &handler.UniversityHandler{
		Database: db,
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("UniRankle API is running and database connection is successful!"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/login", userHandler.Login)
	r.Get("/daily", dailyHandler.GetDaily)
	r.Post("/submissions", submissionHandler.SubmitOrder)
	r.Get("/played", submissionHandler.CheckPlayed)
	r.Get("/stats", statsHandler.DailyStats)
	r.Get("/me/stats", statsHandler.UserStats)
	r.Get("/me/history", statsHandler.UserHistory)
	r.Get("/universities", universityHandler.ListUniversities)

	r.Group(func(r chi.Router) {

		// Protected maintenance routes that require authentication
		r.Use(auth_middleware.AuthMiddleware([]byte(jwtSecret)))

		r.Post("/universities", universityHandler.AddUniversity)
		r.Post("/admin/prewarm", dailyHandler.Prewarm)
	})

	// Start the server

	log.Printf("UniRankle API server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
