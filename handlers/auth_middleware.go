package handlers

import (
	"net/http"
	"strings"

	"heartrisk/auth"
)

// AuthedHandler is a handler that additionally receives the authenticated
// user's id, resolved from the bearer token.
type AuthedHandler func(w http.ResponseWriter, r *http.Request, userID string)

// RequireAuth validates the Authorization bearer token before running the
// handler. Missing, malformed, and expired tokens all yield a 401.
func RequireAuth(tokens *auth.TokenService, next AuthedHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			errorJSON(w, http.StatusUnauthorized, "missing Authorization header")
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		if tokenStr == header {
			errorJSON(w, http.StatusUnauthorized, "invalid Authorization header format")
			return
		}

		userID, err := tokens.Authenticate(tokenStr)
		if err != nil {
			errorJSON(w, http.StatusUnauthorized, err.Error())
			return
		}

		next(w, r, userID)
	}
}
