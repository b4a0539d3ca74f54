package main

import (
	"context"
	"log"
	"os"

	"github.com/gseier/UniRankle/ent"
	"github.com/gseier/UniRankle/ent/user"

	_ "github.com/lib/pq"
)

func main() {
	log.Println("--- Starting Database Reset ---")

	// Get database connection string from environment variable
	connStr := os.Getenv("DB_SOURCE")
	if connStr == "" {
		log.Fatal("DB_SOURCE environment variable not set")
	}

	// Connect to the database
	client, err := ent.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("failed opening connection to postgres: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	// Step 1: Delete all submissions
	// This is done first because submissions have foreign keys to games.
	deletedSubmissions, err := client.Submission.Delete().Exec(ctx)
	if err != nil {
		log.Fatalf("failed to delete submissions: %v", err)
	}
	log.Printf("✅ Deleted %d submissions.", deletedSubmissions)

	// Step 2: Delete all game entries
	deletedEntries, err := client.GameEntry.Delete().Exec(ctx)
	if err != nil {
		log.Fatalf("failed to delete game entries: %v", err)
	}
	log.Printf("✅ Deleted %d game entries.", deletedEntries)

	// Step 3: Delete all daily games
	deletedGames, err := client.DailyGame.Delete().Exec(ctx)
	if err != nil {
		log.Fatalf("failed to delete daily games: %v", err)
	}
	log.Printf("✅ Deleted %d daily games.", deletedGames)

	// Step 4: Delete all operator accounts EXCEPT the admin user
	// The university catalog stays; it is seed data, not gameplay state.
	deletedUsers, err := client.User.
		Delete().
		Where(user.UsernameNEQ("admin")). // Use the NEQ (Not Equal) predicate
		Exec(ctx)
	if err != nil {
		log.Fatalf("failed to delete non-admin users: %v", err)
	}
	log.Printf("✅ Deleted %d non-admin users.", deletedUsers)

	log.Println("--- ✅ Database Reset Complete. Catalog and admin account remain. ---")
}
