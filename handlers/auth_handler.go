package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"heartrisk/auth"
	"heartrisk/models"
	"heartrisk/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Repo   repository.UserRepository
	Tokens *auth.TokenService
}

// Register handler
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		msgJSON(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if in.Name == "" || in.Email == "" || in.Password == "" {
		msgJSON(w, http.StatusBadRequest, "Missing fields")
		return
	}

	user := &models.AppUser{
		Name:     in.Name,
		Email:    in.Email,
		Password: in.Password,
	}
	if err := h.Repo.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			msgJSON(w, http.StatusConflict, "Email already exists")
			return
		}
		errorJSON(w, http.StatusInternalServerError, "Failed to create user: "+err.Error())
		return
	}

	msgJSON(w, http.StatusCreated, "User registered successfully")
}

// Login handler
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		msgJSON(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if creds.Email == "" || creds.Password == "" {
		msgJSON(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := h.Repo.GetUserByEmail(creds.Email)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, err.Error())
		return
	}
	if user == nil {
		msgJSON(w, http.StatusNotFound, "User not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		msgJSON(w, http.StatusUnauthorized, "Incorrect password")
		return
	}

	access, refresh, err := h.Tokens.IssueTokens(user.ID)
	if err != nil {
		errorJSON(w, http.StatusInternalServerError, "token error")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token":  access,
		"refresh_token": refresh,
		"user": map[string]string{
			"name":  user.Name,
			"email": user.Email,
		},
	})
}
