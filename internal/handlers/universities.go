package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gseier/UniRankle/ent"

	"github.com/gseier/UniRankle/internal/decoder"
	auth_middleware "github.com/gseier/UniRankle/internal/middleware"
)

// UniversityHandler holds dependencies for catalog endpoints.
type UniversityHandler struct {
	Database *ent.Client
}

// AddUniversityRequest defines the shape of the request body for adding a
// new university to the catalog.
type AddUniversityRequest struct {
	Name         string  `json:"name"`
	Country      string  `json:"country"`
	ImageURL     string  `json:"image_url"`
	Ranking      int     `json:"ranking"`
	StudentCount int     `json:"student_count"`
	FoundedYear  int     `json:"founded_year"`
	CampusArea   float64 `json:"campus_area"`
}

// UniversityResponse defines the shape of the catalog rows returned in the
// response.
type UniversityResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Country      string  `json:"country"`
	ImageURL     string  `json:"image_url"`
	Ranking      int     `json:"ranking"`
	StudentCount int     `json:"student_count"`
	FoundedYear  int     `json:"founded_year"`
	CampusArea   float64 `json:"campus_area"`
}

// AddUniversity handles the addition of a new university to the catalog.
func (h *UniversityHandler) AddUniversity(w http.ResponseWriter, r *http.Request) {

	claims, ok := auth_middleware.ClaimsFromContext(r.Context())
	if !ok {
		http.Error(w, "Could not retrieve user claims", http.StatusInternalServerError)
		return
	}

	// Only admins can grow the catalog
	if claims.Role != "admin" {
		http.Error(w, "Forbidden: This action requires admin privileges", http.StatusForbidden)
		return
	}

	var req AddUniversityRequest

	err := decoder.DecodeJSONBody(w, r, &req)
	if err != nil {
		log.Printf("Failed to decode add university request: %v", err)
		return
	}

	if req.Name == "" {
		http.Error(w, "University name cannot be empty", http.StatusBadRequest)
		return
	}
	if req.Country == "" {
		http.Error(w, "Country cannot be empty", http.StatusBadRequest)
		return
	}
	if req.Ranking <= 0 || req.StudentCount <= 0 || req.FoundedYear <= 0 || req.CampusArea <= 0 {
		http.Error(w, "Ranking, student count, founded year and campus area must all be positive", http.StatusBadRequest)
		return
	}

	newUniversity, err := h.Database.University.
		Create().
		SetName(req.Name).
		SetCountry(req.Country).
		SetImageURL(req.ImageURL).
		SetRanking(req.Ranking).
		SetStudentCount(req.StudentCount).
		SetFoundedYear(req.FoundedYear).
		SetCampusArea(req.CampusArea).
		Save(r.Context())

	if ent.IsConstraintError(err) {
		log.Printf("University with this name already exists: %v", err)
		http.Error(w, "University with this name already exists", http.StatusConflict)
		return
	}
	if err != nil {
		log.Printf("Failed to create university: %v", err)
		http.Error(w, "Failed to create university", http.StatusInternalServerError)
		return
	}

	log.Printf("University added successfully: %s, ID: %s", newUniversity.Name, newUniversity.ID)
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{
		"message": "University added successfully",
		"id":      newUniversity.ID.String(),
	})
}

// ListUniversities retrieves the full catalog and returns it as a JSON response.
func (h *UniversityHandler) ListUniversities(w http.ResponseWriter, r *http.Request) {

	catalog, err := h.Database.University.
		Query().
		All(r.Context())

	if err != nil {
		log.Printf("Failed to retrieve universities %v", err)
		http.Error(w, "Failed to retrieve universities", http.StatusInternalServerError)
		return
	}

	responses := make([]UniversityResponse, len(catalog))
	for i, u := range catalog {
		responses[i] = UniversityResponse{
			ID:           u.ID.String(),
			Name:         u.Name,
			Country:      u.Country,
			ImageURL:     u.ImageURL,
			Ranking:      u.Ranking,
			StudentCount: u.StudentCount,
			FoundedYear:  u.FoundedYear,
			CampusArea:   u.CampusArea,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responses)
}
