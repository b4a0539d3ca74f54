package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gseier/UniRankle/ent"
	"github.com/gseier/UniRankle/ent/user"
	"github.com/gseier/UniRankle/internal/auth"
	"github.com/gseier/UniRankle/internal/decoder"

	"golang.org/x/crypto/bcrypt"
)

// UserHandler holds dependencies for operator account handlers. There is no
// public registration: operator accounts are created by the seeder, and
// players never log in at all.
type UserHandler struct {
	Database  *ent.Client
	JWTSecret []byte
}

// LoginRequest defines the shape of the login request body.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse defines the shape of the successful login response.
type LoginResponse struct {
	Token string `json:"token"`
}

// Login handles operator authentication and JWT issuance.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest

	err := decoder.DecodeJSONBody(w, r, &req)
	if err != nil {
		log.Printf("Failed to decode login request: %v", err)
		return
	}

	// Find the user by username in the database
	foundUser, err := h.Database.User.
		Query().
		Where(user.UsernameEQ(req.Username)).
		Only(r.Context())

	if err != nil {
		// If user is not found, return a generic unauthorized error
		if ent.IsNotFound(err) {
			http.Error(w, "Invalid username or password", http.StatusUnauthorized)
			return
		}
		log.Printf("Failed to query user: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Compare the provided password with the stored hash
	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(req.Password)); err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	// If password is correct, generate a JWT
	tokenString, err := auth.GenerateJWT(foundUser, h.JWTSecret)
	if err != nil {
		log.Printf("Failed to generate JWT: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Send the token back to the client
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{Token: tokenString})
}
