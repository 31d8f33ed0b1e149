package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"

	"github.com/sudoDevesh/swagger2jmeter/internal/jmx"
	"github.com/sudoDevesh/swagger2jmeter/internal/models"
	"github.com/sudoDevesh/swagger2jmeter/internal/openapi"
)

type endpointsResponse struct {
	Source  string             `json:"source"`
	BaseURL string             `json:"baseUrl"`
	Total   int                `json:"total"`
	Groups  []openapi.TagGroup `json:"groups"`
}

type planRequest struct {
	Config    models.PlanConfig `json:"config"`
	Endpoints []models.Endpoint `json:"endpoints"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Alive"))
	})
	r.Route("/api", func(r chi.Router) {
		r.Get("/endpoints", s.endpointsHandler)
		r.Post("/plan", s.planHandler)
	})
	return r
}

// endpointsHandler fetches the spec named in the url query parameter and
// returns its operations grouped by tag.
func (s *Server) endpointsHandler(w http.ResponseWriter, r *http.Request) {
	specURL := r.URL.Query().Get("url")
	if specURL == "" {
		writeError(w, http.StatusBadRequest, "missing url parameter")
		return
	}

	doc, err := s.loader.Load(r.Context(), specURL)
	if err != nil {
		writeError(w, http.StatusBadGateway, fmt.Sprintf("failed to load spec: %v", err))
		return
	}

	endpoints := openapi.Extract(doc)
	writeJSON(w, http.StatusOK, endpointsResponse{
		Source:  specURL,
		BaseURL: openapi.ResolveBaseURL("", doc),
		Total:   len(endpoints),
		Groups:  openapi.GroupByTag(endpoints),
	})
}

// planHandler serializes the posted configuration and endpoint selection
// into a plan document and returns it as a file download. An empty
// selection is rejected here; the serializer is never invoked for it.
func (s *Server) planHandler(w http.ResponseWriter, r *http.Request) {
	var req planRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if len(req.Endpoints) == 0 {
		writeError(w, http.StatusBadRequest, "no endpoints selected")
		return
	}

	plan, err := jmx.Serialize(req.Config, req.Endpoints)
	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("failed to serialize plan: %v", err))
		return
	}

	filename := jmx.Filename(req.Config.Title)
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(plan))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Infof("%s %s %d %v", r.Method, r.URL.Path, ww.Status(), time.Since(start))
	})
}
