package routes

import (
	"net/http"
	"strings"

	"heartrisk/auth"
	"heartrisk/handlers"
)

// CORS middleware; allowed origins come from configuration
func withCORS(allowedOrigins []string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		for _, o := range allowedOrigins {
			if o == origin || o == "*" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				break
			}
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	corsOrigin string,
	tokens *auth.TokenService,
	authHandler *handlers.AuthHandler,
	analyzeHandler *handlers.AnalyzeHandler,
	historyHandler *handlers.HistoryHandler,
	reportHandler *handlers.ReportHandler,
) *http.ServeMux {
	var origins []string
	for _, o := range strings.Split(corsOrigin, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	cors := func(h http.HandlerFunc) http.Handler {
		return withCORS(origins, handlers.RecoverWrapper(h))
	}

	mux := http.NewServeMux()

	// Auth routes
	mux.Handle("/api/register", cors(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		authHandler.Register(w, r)
	}))
	mux.Handle("/api/login", cors(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		authHandler.Login(w, r)
	}))

	// Analysis route
	mux.Handle("/api/analyze", cors(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handlers.RequireAuth(tokens, analyzeHandler.Analyze)(w, r)
	}))

	// History routes
	mux.Handle("/api/history", cors(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			handlers.RequireAuth(tokens, historyHandler.List)(w, r)
		case http.MethodDelete:
			handlers.RequireAuth(tokens, historyHandler.DeleteAll)(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}))

	// Delete one record / export its report
	mux.Handle("/api/history/", cors(func(w http.ResponseWriter, r *http.Request) {
		rest := strings.TrimPrefix(r.URL.Path, "/api/history/")
		if rest == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		if id, ok := strings.CutSuffix(rest, "/report"); ok && r.Method == http.MethodGet {
			handlers.RequireAuth(tokens, func(w http.ResponseWriter, r *http.Request, userID string) {
				reportHandler.Report(w, r, userID, id)
			})(w, r)
			return
		}

		if r.Method == http.MethodDelete && !strings.Contains(rest, "/") {
			handlers.RequireAuth(tokens, func(w http.ResponseWriter, r *http.Request, userID string) {
				historyHandler.DeleteOne(w, r, userID, rest)
			})(w, r)
			return
		}

		w.WriteHeader(http.StatusNotFound)
	}))

	// Health
	mux.Handle("/healthz", cors(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))

	return mux
}
