// Package httpapi exposes the execution core over a JSON REST surface:
// agent CRUD backed by an AgentStore, plus execution endpoints. This is
// the boundary the studio UI talks to; the engine itself stays transport
// free.
package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/angjelo/AIAgentStudio"
	"github.com/angjelo/AIAgentStudio/pkg/domain"
	"github.com/angjelo/AIAgentStudio/pkg/ports"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server wires the engine and an agent store into HTTP handlers.
type Server struct {
	engine *agentstudio.Engine
	store  ports.AgentStore
	logger *slog.Logger
}

// executeRequest is the body of the execution endpoints.
type executeRequest struct {
	Agent     *domain.Agent  `json:"agent,omitempty"`
	InputData map[string]any `json:"input_data"`
}

// NewHandler creates the HTTP handler for the engine and store.
func NewHandler(engine *agentstudio.Engine, store ports.AgentStore, logger *slog.Logger) http.Handler {
	s := &Server{engine: engine, store: store, logger: logger}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/agents", func(r chi.Router) {
		r.Get("/", s.handleListAgents)
		r.Post("/", s.handleSaveAgent)
		r.Get("/{id}", s.handleGetAgent)
		r.Delete("/{id}", s.handleDeleteAgent)
		r.Post("/{id}/execute", s.handleExecuteStored)
	})
	r.Post("/execute", s.handleExecuteInline)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListAgents(w http.ResponseWriter, r *http.Request) {
	ids, err := s.store.List(r.Context())
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"agents": ids})
}

func (s *Server) handleSaveAgent(w http.ResponseWriter, r *http.Request) {
	var agent domain.Agent
	if err := json.NewDecoder(r.Body).Decode(&agent); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if agent.ID == "" {
		agent.ID = uuid.NewString()
	}

	// Reject structurally broken graphs at the door; execution would
	// fail on them anyway.
	if err := s.engine.Validate(&agent); err != nil {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	if err := s.store.Save(r.Context(), &agent); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.logger.Info("agent saved", "agent_id", agent.ID, "name", agent.Name)
	s.writeJSON(w, http.StatusCreated, agent)
}

func (s *Server) handleGetAgent(w http.ResponseWriter, r *http.Request) {
	agent, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrAgentNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.writeJSON(w, http.StatusOK, agent)
}

func (s *Server) handleDeleteAgent(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleExecuteStored(w http.ResponseWriter, r *http.Request) {
	agent, err := s.store.Load(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, domain.ErrAgentNotFound) {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}

	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	s.execute(w, r, agent, req.InputData)
}

func (s *Server) handleExecuteInline(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Agent == nil {
		s.writeError(w, http.StatusBadRequest, errors.New("agent is required"))
		return
	}
	s.execute(w, r, req.Agent, req.InputData)
}

func (s *Server) execute(w http.ResponseWriter, r *http.Request, agent *domain.Agent, inputData map[string]any) {
	results, err := s.engine.Execute(r.Context(), agent, inputData)
	if err != nil {
		// Structural failures only; node errors are inside the results.
		s.logger.Error("agent execution failed", "agent", agent.Name, "err", err)
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"results": results})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("response encode failed", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
