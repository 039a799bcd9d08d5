package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/campusdesk/meritbot/internal/dialogue"
)

type Server struct {
	router  *chi.Mux
	port    int
	manager *dialogue.Manager
	records int
}

func NewServer(port int, manager *dialogue.Manager, staticDir string, records int) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	s := &Server{
		router:  router,
		port:    port,
		manager: manager,
		records: records,
	}

	router.Get("/health", s.health)
	router.Get("/api/v1/meritbot/status", s.status)
	router.Post("/chat", s.chat)

	if staticDir != "" {
		if _, err := os.Stat(staticDir); err == nil {
			router.Handle("/*", http.FileServer(http.Dir(staticDir)))
		}
	}

	return s
}

func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	slog.Info("API server starting", "addr", addr)
	return http.ListenAndServe(addr, s.router)
}

type chatRequest struct {
	Message   string `json:"message"`
	Session   string `json:"session"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

func (s *Server) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf(`{"error":"invalid JSON: %v"}`, err), http.StatusBadRequest)
		return
	}

	sessionID := req.Session
	if sessionID == "" {
		sessionID = req.SessionID
	}
	if sessionID == "" {
		sessionID = r.RemoteAddr
	}
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	reply := s.manager.Respond(r.Context(), sessionID, req.Message)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(chatResponse{Reply: reply})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"service": "meritbot",
		"status":  "ready",
		"records": s.records,
	})
}
