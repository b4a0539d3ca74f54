package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"github.com/gseier/UniRankle/ent"
	"github.com/gseier/UniRankle/ent/university"
	"github.com/gseier/UniRankle/ent/user"

	_ "github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// seedUniversity mirrors one row of the catalog file.
type seedUniversity struct {
	Name         string  `json:"name"`
	Country      string  `json:"country"`
	ImageURL     string  `json:"image_url"`
	Ranking      int     `json:"ranking"`
	StudentCount int     `json:"student_count"`
	FoundedYear  int     `json:"founded_year"`
	CampusArea   float64 `json:"campus_area"`
}

func main() {
	log.Println("Starting database seeder...")

	// --- Connect to the Database ---
	connStr := os.Getenv("DB_SOURCE")
	client, err := ent.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("failed opening connection to postgres: %v", err)
	}
	defer client.Close()

	ctx := context.Background()

	// --- Seed the University Catalog ---
	catalogPath := os.Getenv("CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = "data/universities.json"
	}

	raw, err := os.ReadFile(catalogPath)
	if err != nil {
		log.Fatalf("failed reading catalog file %s: %v", catalogPath, err)
	}
	var catalog []seedUniversity
	if err := json.Unmarshal(raw, &catalog); err != nil {
		log.Fatalf("failed parsing catalog file: %v", err)
	}

	log.Printf("Upserting %d universities...", len(catalog))
	for _, u := range catalog {
		existing, err := client.University.
			Query().
			Where(university.NameEQ(u.Name)).
			Only(ctx)

		switch {
		case ent.IsNotFound(err):
			_, err = client.University.
				Create().
				SetName(u.Name).
				SetCountry(u.Country).
				SetImageURL(u.ImageURL).
				SetRanking(u.Ranking).
				SetStudentCount(u.StudentCount).
				SetFoundedYear(u.FoundedYear).
				SetCampusArea(u.CampusArea).
				Save(ctx)
			if err != nil {
				log.Fatalf("failed creating university %q: %v", u.Name, err)
			}
		case err != nil:
			log.Fatalf("failed checking for university %q: %v", u.Name, err)
		default:
			_, err = existing.
				Update().
				SetCountry(u.Country).
				SetImageURL(u.ImageURL).
				SetRanking(u.Ranking).
				SetStudentCount(u.StudentCount).
				SetFoundedYear(u.FoundedYear).
				SetCampusArea(u.CampusArea).
				Save(ctx)
			if err != nil {
				log.Fatalf("failed updating university %q: %v", u.Name, err)
			}
		}
	}
	log.Println("University catalog seeded.")

	// --- Check if admin user already exists ---
	adminUsername := "admin"
	exists, err := client.User.Query().Where(user.UsernameEQ(adminUsername)).Exist(ctx)
	if err != nil {
		log.Fatalf("failed checking for admin user: %v", err)
	}

	if exists {
		log.Println("Admin user already exists. Seeder finished.")
		return
	}

	// --- Create Admin User ---
	// WARNING: Not production ready: hardcoded password for seeding purposes
	adminPassword := "admin123!"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	_, err = client.User.Create().
		SetUsername(adminUsername).
		SetPasswordHash(string(hashedPassword)).
		SetRole(user.RoleAdmin). // Set the role to admin
		Save(ctx)

	if err != nil {
		log.Fatalf("failed creating admin user: %v", err)
	}

	log.Println("Admin user created successfully.")
}
