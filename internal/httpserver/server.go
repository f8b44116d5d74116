// internal/httpserver/server.go
//
// HTTP wiring for the wordroom server.
// Responsibilities:
//   - Router + middleware (request IDs, real IP, panic recovery).
//   - Socket.IO endpoint mounted at /socket.io/ (the realtime gateway).
//   - Diagnostics: "/", "/health", "/debug/words".
//   - Optional static client serving from PUBLIC_DIR.
//
// Notes:
//   - CORS for the JSON routes is origin-aware and credentials-enabled;
//     the socket.io handler manages its own CORS headers, so the
//     middleware is scoped to the plain routes only.

package httpserver

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/wordroom/go-server/internal/words"
)

// Server bundles the router with its collaborators.
type Server struct {
	r     *chi.Mux
	words *words.List
}

// New constructs a Server, installs middleware, and registers routes.
// sio is the socket.io gateway handler; publicDir optionally points at a
// static client bundle to serve at the root.
func New(sio http.Handler, list *words.List, publicDir string) *Server {
	s := &Server{r: chi.NewRouter(), words: list}

	// --- middleware ---
	s.r.Use(chimw.RequestID) // add X-Request-ID
	s.r.Use(chimw.RealIP)    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer) // recover from panics

	// Realtime gateway. Mounted outside the JSON group: the engine.io
	// handler negotiates its own content types and CORS.
	s.r.Handle("/socket.io/", sio)
	s.r.Handle("/socket.io/*", sio)

	// --- diagnostics (JSON) ---
	s.r.Group(func(r chi.Router) {
		r.Use(jsonContentType)
		r.Use(corsFromEnv)

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"ok":true}`))
		})
		r.Get("/debug/words", func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]int{"words": s.words.Len()})
		})
	})

	// --- client ---
	if publicDir != "" {
		fileServer := http.FileServer(http.Dir(publicDir))
		s.r.Handle("/*", fileServer)
	} else {
		s.r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"service":"wordroom-go","endpoints":["/health","/debug/words","/socket.io/"]}`))
		})
	}

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromEnv enables credentialed CORS for a single origin.
// Uses CLIENT_ORIGIN env var; defaults to allowing any origin, which
// suits same-origin deployments where the server also hosts the client.
func corsFromEnv(next http.Handler) http.Handler {
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "*"
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
